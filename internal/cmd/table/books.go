// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/shelfmark/shelfmark/pkg/books"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts book records to table format.
func BooksToTableData(records []books.Record) Data {
	headers := []string{"Title", "Author", "ISBN", "Copies"}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Title,
			r.Author,
			r.ISBN,
			strconv.Itoa(r.Copies),
		})
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,
			AlignLeft,
			AlignLeft,
			AlignRight,
		},
	}
}
