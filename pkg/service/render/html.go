package render

import (
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

// documentData is shared by the HTML and Markdown templates
type documentData struct {
	Title   string
	Entries []*model.DirectoryEntry
}

var htmlTemplate = template.Must(template.ParseFS(templateFS, "templates/directory.html"))

// renderHTML escapes every profile value through html/template
func renderHTML(w io.Writer, entries []*model.DirectoryEntry) error {
	data := documentData{
		Title:   DirectoryTitle,
		Entries: entries,
	}
	if err := htmlTemplate.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render HTML directory")
	}
	return nil
}
