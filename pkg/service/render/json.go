package render

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

func renderJSON(w io.Writer, entries []*model.DirectoryEntry) error {
	if entries == nil {
		entries = []*model.DirectoryEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal directory to JSON")
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return goerr.Wrap(err, "failed to write JSON output")
	}
	return nil
}
