// Package books defines the book record type and the codec and validation
// rules for the flat-file catalog format. A catalog line holds exactly four
// colon-delimited fields: Title:Author:ISBN:Copies.
package books

import (
	"strconv"
	"strings"

	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// Record represents a single book entry in the catalog.
type Record struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	ISBN   string `json:"isbn" yaml:"isbn"`
	Copies int    `json:"copies" yaml:"copies"`
}

// ParseRecord decodes and validates a single catalog line or operation
// string. The line is split on the field delimiter preserving empty fields;
// anything other than exactly four fields is a malformed entry. Each field
// is trimmed before validation.
func ParseRecord(line string) (Record, error) {
	fields := SplitFields(line)
	if len(fields) != constants.FieldCount {
		return Record{}, errors.NewMalformedEntryError("", line, constants.ErrMsgFieldCount)
	}

	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return validate(fields)
}

// SplitFields splits a line on the field delimiter. Trailing empty fields
// are preserved so that "a:b:c:" still counts four fields.
func SplitFields(line string) []string {
	return strings.Split(line, constants.FieldDelimiter)
}

// CatalogLine encodes the record back to its on-disk line format.
// ParseRecord(r.CatalogLine()) round-trips for any valid record.
func (r Record) CatalogLine() string {
	return strings.Join([]string{
		r.Title,
		r.Author,
		r.ISBN,
		strconv.Itoa(r.Copies),
	}, constants.FieldDelimiter)
}

// String implements fmt.Stringer using the catalog line format.
func (r Record) String() string {
	return r.CatalogLine()
}

// TitleContains reports whether the record title contains the keyword,
// ignoring case. Only the title participates in keyword search.
func (r Record) TitleContains(keyword string) bool {
	return strings.Contains(strings.ToLower(r.Title), strings.ToLower(keyword))
}

// validate enforces field-level constraints on the four trimmed fields in
// order: title, author, ISBN, copies-parse, copies-positive. The first
// failing check wins.
func validate(fields []string) (Record, error) {
	title, author, isbn, copiesStr := fields[0], fields[1], fields[2], fields[3]

	if title == "" {
		return Record{}, errors.NewMalformedEntryError("title", title, constants.ErrMsgEmptyTitle)
	}
	if author == "" {
		return Record{}, errors.NewMalformedEntryError("author", author, constants.ErrMsgEmptyAuthor)
	}
	if !IsISBN(isbn) {
		return Record{}, errors.NewInvalidISBNError(isbn, constants.ErrMsgInvalidISBN)
	}

	copies, err := strconv.Atoi(copiesStr)
	if err != nil {
		return Record{}, errors.NewMalformedEntryError("copies", copiesStr, constants.ErrMsgCopiesNotInteger)
	}
	if copies <= 0 {
		return Record{}, errors.NewMalformedEntryError("copies", copiesStr, constants.ErrMsgCopiesNotPositive)
	}

	return Record{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		Copies: copies,
	}, nil
}

// IsISBN reports whether s is exactly 13 ASCII digit characters.
// Length is checked before the character class, so a 12-digit string and a
// 13-character string with a letter both fail, for different reasons that
// collapse into the same error.
func IsISBN(s string) bool {
	if len(s) != constants.ISBNLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
