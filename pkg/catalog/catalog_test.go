package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/catalog"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// writeCatalog writes content to a catalog file in a temp dir and returns its path.
func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBootstrap(t *testing.T) {
	t.Run("creates file and parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "library.txt")
		require.NoError(t, catalog.Bootstrap(path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("leaves existing file untouched", func(t *testing.T) {
		path := writeCatalog(t, "Dune:Herbert:9780441013593:3\n")
		require.NoError(t, catalog.Bootstrap(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Dune:Herbert:9780441013593:3\n", string(data))
	})
}

func TestLoad(t *testing.T) {
	t.Run("valid records in file order", func(t *testing.T) {
		path := writeCatalog(t, "Zen:Pirsig:9780060589462:2\nDune:Herbert:9780441013593:3\n")

		cat, lineErrs, err := catalog.Load(path)
		require.NoError(t, err)
		assert.Empty(t, lineErrs)
		require.Equal(t, 2, cat.Len())
		assert.Equal(t, "Zen", cat.Records()[0].Title)
		assert.Equal(t, "Dune", cat.Records()[1].Title)
	})

	t.Run("blank lines skipped silently", func(t *testing.T) {
		path := writeCatalog(t, "\n  \nDune:Herbert:9780441013593:3\n\n")

		cat, lineErrs, err := catalog.Load(path)
		require.NoError(t, err)
		assert.Empty(t, lineErrs, "blank lines are not errors")
		assert.Equal(t, 1, cat.Len())
	})

	t.Run("malformed lines reported and skipped", func(t *testing.T) {
		path := writeCatalog(t, "OnlyTitle:OnlyAuthor\nDune:Herbert:9780441013593:3\nBad:Author:123:5\n")

		cat, lineErrs, err := catalog.Load(path)
		require.NoError(t, err, "per-line failures are not fatal")
		assert.Equal(t, 1, cat.Len())

		require.Len(t, lineErrs, 2)
		assert.Equal(t, "OnlyTitle:OnlyAuthor", lineErrs[0].Line)
		assert.True(t, errors.IsMalformedEntry(lineErrs[0].Err))
		assert.Equal(t, "Bad:Author:123:5", lineErrs[1].Line)
		assert.True(t, errors.IsInvalidISBN(lineErrs[1].Err))
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, _, err := catalog.Load(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)

		var ioErr *errors.IOError
		assert.True(t, errors.As(err, &ioErr))
	})
}

func TestSaveRewritesFile(t *testing.T) {
	path := writeCatalog(t, "Old:Content:9780000000000:1\ngarbage line\n")

	cat, _, err := catalog.Load(path)
	require.NoError(t, err)

	cat.Append(books.Record{Title: "Dune", Author: "Herbert", ISBN: "9780441013593", Copies: 3})
	cat.SortByTitle()
	require.NoError(t, cat.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dune:Herbert:9780441013593:3\nOld:Content:9780000000000:1\n", string(data),
		"save rewrites the whole file; invalid lines do not survive a write")
}

func TestSortByTitle(t *testing.T) {
	cat := &catalog.Catalog{}
	cat.Append(books.Record{Title: "zebra", Author: "A", ISBN: "9780000000001", Copies: 1})
	cat.Append(books.Record{Title: "Apple", Author: "B", ISBN: "9780000000002", Copies: 1})
	cat.Append(books.Record{Title: "mango", Author: "C", ISBN: "9780000000003", Copies: 1})

	cat.SortByTitle()

	titles := []string{cat.Records()[0].Title, cat.Records()[1].Title, cat.Records()[2].Title}
	assert.Equal(t, []string{"Apple", "mango", "zebra"}, titles, "sort is case-insensitive")
}

func TestAuditLogPath(t *testing.T) {
	dir := t.TempDir()
	path := catalog.AuditLogPath(filepath.Join(dir, "library.txt"))
	assert.Equal(t, filepath.Join(dir, "errors.log"), path)
}
