// Package catalog implements the flat-file catalog store and the query
// engine that runs insert, ISBN lookup, and keyword search operations
// against it. The store owns the ordered in-memory record list for the
// duration of one process invocation; any write rewrites the file in full.
package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// Catalog holds the loaded record list and the path it was loaded from.
type Catalog struct {
	path    string
	records []books.Record
}

// Bootstrap ensures the catalog file and its parent directory exist.
// It never touches an existing file.
func Bootstrap(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.WrapIO("stat", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	return f.Close()
}

// Load reads every line of the catalog file. Blank lines are skipped
// silently. Each remaining line runs through the record codec and
// validator: valid records accumulate in file order, failures are
// collected as LineErrors without aborting the load. An unreadable file
// is a fatal error, returned separately.
func Load(path string) (*Catalog, []*errors.LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.WrapIO("read", path, err)
	}
	defer f.Close()

	cat := &Catalog{path: path}
	var lineErrs []*errors.LineError

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := books.ParseRecord(line)
		if err != nil {
			lineErrs = append(lineErrs, &errors.LineError{Line: line, Err: err})
			continue
		}
		cat.records = append(cat.records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.WrapIO("read", path, err)
	}

	return cat, lineErrs, nil
}

// Path returns the file path the catalog was loaded from.
func (c *Catalog) Path() string {
	return c.path
}

// Records returns the in-memory record list in its current order.
func (c *Catalog) Records() []books.Record {
	return c.records
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Append adds a record to the end of the list without sorting or persisting.
func (c *Catalog) Append(r books.Record) {
	c.records = append(c.records, r)
}

// SortByTitle sorts the record list by title, case-insensitively. The sort
// is stable so records with equal titles keep their relative order.
func (c *Catalog) SortByTitle() {
	sort.SliceStable(c.records, func(i, j int) bool {
		return strings.ToLower(c.records[i].Title) < strings.ToLower(c.records[j].Title)
	})
}

// Save rewrites the catalog file from the in-memory list, one encoded
// record per line. There is no partial or append write on this path.
func (c *Catalog) Save() error {
	return Persist(c.path, c.records)
}

// Persist writes records to path, overwriting the file completely.
func Persist(path string, records []books.Record) error {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(r.CatalogLine())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// AuditLogPath returns the path of the error log that lives next to the
// given catalog file.
func AuditLogPath(catalogPath string) string {
	abs, err := filepath.Abs(catalogPath)
	if err != nil {
		return constants.AuditLogName
	}
	return filepath.Join(filepath.Dir(abs), constants.AuditLogName)
}
