package render

import (
	"encoding/csv"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

var csvHeader = []string{
	"name",
	"handle",
	"email",
	"phone_number",
	"picture_url",
	"presence_status",
}

// renderCSV writes absent optional fields as empty cells
func renderCSV(w io.Writer, entries []*model.DirectoryEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, e := range entries {
		record := []string{
			e.Name,
			e.Handle,
			e.Email,
			e.PhoneNumber,
			e.PictureURL,
			e.PresenceStatus.String(),
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV record",
				goerr.V("handle", e.Handle))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV output")
	}
	return nil
}
