package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackline/pkg/domain/model"
)

type tableColumn struct {
	title string
	width int
	value func(e *model.DirectoryEntry) string
}

// The last column is not padded
var tableColumns = []tableColumn{
	{title: "Name", width: 24, value: func(e *model.DirectoryEntry) string { return e.Name }},
	{title: "handle", width: 16, value: func(e *model.DirectoryEntry) string { return e.Handle }},
	{title: "phone", width: 16, value: (*model.DirectoryEntry).DisplayPhoneNumber},
	{title: "email", width: 32, value: (*model.DirectoryEntry).DisplayEmail},
	// Presence is never queried, so status is always N/A here
	{title: "status", width: 8, value: func(*model.DirectoryEntry) string { return model.NotAvailable }},
	{title: "picture url", width: 0, value: (*model.DirectoryEntry).DisplayPictureURL},
}

func renderTable(w io.Writer, entries []*model.DirectoryEntry) error {
	titles := make([]string, len(tableColumns))
	for i, col := range tableColumns {
		titles[i] = col.title
	}
	if err := writeTableRow(w, titles); err != nil {
		return err
	}

	cells := make([]string, len(tableColumns))
	for _, entry := range entries {
		for i, col := range tableColumns {
			cells[i] = col.value(entry)
		}
		if err := writeTableRow(w, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeTableRow(w io.Writer, cells []string) error {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(pad(cell, tableColumns[i].width))
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write table row")
	}
	return nil
}

// pad left-aligns s in a column of width runes. Longer values are kept
// whole.
func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
