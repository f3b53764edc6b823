package render

import (
	"io"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

var markdownCellReplacer = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\r\n", " ",
	"\n", " ",
)

var markdownTemplate = template.Must(
	template.New("directory.md").
		Funcs(template.FuncMap{"cell": markdownCell}).
		ParseFS(templateFS, "templates/directory.md"),
)

// markdownCell keeps a value inside a single table cell
func markdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}

func renderMarkdown(w io.Writer, entries []*model.DirectoryEntry) error {
	data := documentData{
		Title:   DirectoryTitle,
		Entries: entries,
	}
	if err := markdownTemplate.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render Markdown directory")
	}
	return nil
}
