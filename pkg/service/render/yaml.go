package render

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, entries []*model.DirectoryEntry) error {
	if entries == nil {
		entries = []*model.DirectoryEntry{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return goerr.Wrap(err, "failed to encode directory to YAML")
	}
	if err := enc.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush YAML output")
	}
	return nil
}
