package catalog

import (
	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// OpKind identifies the shape of an operation string.
type OpKind int

const (
	// OpInsert is a new-record operation: four delimiter-separated fields.
	OpInsert OpKind = iota
	// OpISBNLookup is an exact lookup: the string is exactly 13 digits.
	OpISBNLookup
	// OpKeywordSearch is the default: case-insensitive title substring match.
	OpKeywordSearch
)

// String returns a human-readable name for the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpISBNLookup:
		return "isbn"
	case OpKeywordSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Classify determines the operation kind from the shape of the operation
// string. Shapes are tried in order: new-record form, exact-ISBN form,
// keyword form; the first match wins. A bare 13-digit string has no
// delimiters so it can never classify as an insert.
func Classify(op string) OpKind {
	if len(books.SplitFields(op)) == constants.FieldCount {
		return OpInsert
	}
	if books.IsISBN(op) {
		return OpISBNLookup
	}
	return OpKeywordSearch
}

// Result reports the outcome of one executed operation.
type Result struct {
	Kind    OpKind
	Records []books.Record // matches for lookups and searches
	Added   *books.Record  // the new record for inserts
}

// Execute classifies and runs one operation against the catalog.
//
// Inserts parse and validate the operation string; on success the record is
// appended, the list is re-sorted by title, and the file is persisted. A
// validation failure leaves both the list and the file untouched.
//
// ISBN lookups scan linearly: zero matches is an empty result, one match
// returns the record, and two or more fail with a DuplicateISBN error since
// that signals a corrupt catalog.
//
// Keyword searches match the operation string against record titles only,
// case-insensitively, returning matches in current list order.
func (c *Catalog) Execute(op string) (*Result, error) {
	kind := Classify(op)

	switch kind {
	case OpInsert:
		record, err := c.Insert(op)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Added: &record, Records: []books.Record{record}}, nil

	case OpISBNLookup:
		matches, err := c.FindByISBN(op)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: kind, Records: matches}, nil

	default:
		return &Result{Kind: kind, Records: c.SearchTitle(op)}, nil
	}
}

// Insert parses and validates a new-record operation string, appends the
// record, re-sorts by title, and persists the catalog. On any failure the
// in-memory list and the file are left unchanged.
func (c *Catalog) Insert(op string) (books.Record, error) {
	record, err := books.ParseRecord(op)
	if err != nil {
		return books.Record{}, err
	}

	c.Append(record)
	c.SortByTitle()

	if err := c.Save(); err != nil {
		// Roll the in-memory list back so a failed write doesn't leave
		// phantom state for a later operation.
		c.removeISBNOnce(record)
		return books.Record{}, err
	}

	return record, nil
}

// FindByISBN linearly scans for records with exactly the given ISBN.
// More than one match means the catalog is corrupt: the operation aborts
// with a DuplicateISBN error and no partial results.
func (c *Catalog) FindByISBN(isbn string) ([]books.Record, error) {
	var matches []books.Record
	for _, r := range c.records {
		if r.ISBN == isbn {
			matches = append(matches, r)
		}
	}

	if len(matches) > 1 {
		return nil, errors.NewDuplicateISBNError(isbn, len(matches))
	}
	return matches, nil
}

// SearchTitle returns every record whose title contains the keyword,
// ignoring case, in current list order.
func (c *Catalog) SearchTitle(keyword string) []books.Record {
	var matches []books.Record
	for _, r := range c.records {
		if r.TitleContains(keyword) {
			matches = append(matches, r)
		}
	}
	return matches
}

// removeISBNOnce removes the first record equal to r from the list.
func (c *Catalog) removeISBNOnce(target books.Record) {
	for i, r := range c.records {
		if r == target {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}
