package render

import (
	"embed"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

// DirectoryTitle is the heading used by document formats
const DirectoryTitle = "Slack Team Directory"

//go:embed templates/*
var templateFS embed.FS

// Render writes the whole directory to w in the given format. Entries
// are rendered in the order given.
func Render(w io.Writer, format model.OutputFormat, entries []*model.DirectoryEntry) error {
	switch format {
	case model.OutputFormatTable:
		return renderTable(w, entries)
	case model.OutputFormatJSON:
		return renderJSON(w, entries)
	case model.OutputFormatHTML:
		return renderHTML(w, entries)
	case model.OutputFormatCSV:
		return renderCSV(w, entries)
	case model.OutputFormatMarkdown:
		return renderMarkdown(w, entries)
	case model.OutputFormatYAML:
		return renderYAML(w, entries)
	default:
		return goerr.New("unsupported output format",
			goerr.T(model.ErrTagInvalidOutputFormat),
			goerr.V("format", format))
	}
}
