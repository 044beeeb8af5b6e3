package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shelfmark/shelfmark/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/logging"
)

func newTestRunner() (*Runner, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Runner{out: buf, logger: &logging.Nop}, buf
}

func writeTestCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_KeywordSearch(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "dune"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Dune") {
		t.Errorf("expected Dune row in output, got:\n%s", out)
	}
	if !strings.Contains(out, "Valid records processed: 1") {
		t.Errorf("expected load count in summary, got:\n%s", out)
	}
	if !strings.Contains(out, "Search results: 1") {
		t.Errorf("expected one search result, got:\n%s", out)
	}
	if !strings.Contains(out, "Errors encountered: 0") {
		t.Errorf("expected zero errors, got:\n%s", out)
	}
}

func TestRun_ISBNLookup(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "9780441013593"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got := r.Stats().SearchResults; got != 1 {
		t.Errorf("SearchResults = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "Dune") {
		t.Errorf("expected Dune row, got:\n%s", buf.String())
	}
}

func TestRun_ISBNLookupNoMatch(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "9999999999999"}); err != nil {
		t.Fatalf("no match must not be an error, got: %v", err)
	}
	if got := r.Stats().SearchResults; got != 0 {
		t.Errorf("SearchResults = %d, want 0", got)
	}
	if !strings.Contains(buf.String(), "Title") {
		t.Errorf("header prints even with no rows, got:\n%s", buf.String())
	}
}

func TestRun_DuplicateISBNIsFatal(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\nDune Copy:Herbert:9780441013593:1\n")
	r, buf := newTestRunner()

	err := r.Run([]string{path, "9780441013593"})
	if !errors.IsDuplicateISBN(err) {
		t.Fatalf("expected DuplicateISBN, got: %v", err)
	}
	if got := r.Stats().Errors; got != 1 {
		t.Errorf("Errors = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "Error: More than one book with this ISBN was found: 9780441013593") {
		t.Errorf("expected duplicate ISBN message, got:\n%s", buf.String())
	}

	// Fatal operation errors land in the audit log next to the catalog.
	logData, readErr := os.ReadFile(filepath.Join(filepath.Dir(path), "errors.log"))
	if readErr != nil {
		t.Fatalf("expected errors.log: %v", readErr)
	}
	if !strings.Contains(string(logData), "DuplicateISBN") {
		t.Errorf("expected DuplicateISBN entry in errors.log, got:\n%s", logData)
	}
}

func TestRun_InsertAppendsAndSorts(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "Foundation:Asimov:9780553293357:5"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Books added: 1") {
		t.Errorf("expected books added in summary, got:\n%s", buf.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Dune:Herbert:9780441013593:3\nFoundation:Asimov:9780553293357:5\n"
	if string(data) != want {
		t.Errorf("catalog = %q, want %q (sorted by title)", data, want)
	}
}

func TestRun_InvalidInsertIsRecovered(t *testing.T) {
	path := writeTestCatalog(t, "Dune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "Bad:Book:123:5"}); err != nil {
		t.Fatalf("a failed insert is recovered locally, got: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Error: ISBN is not exactly 13 digits or contains non-numeric characters") {
		t.Errorf("expected validation message, got:\n%s", out)
	}
	if !strings.Contains(out, "Books added: 0") {
		t.Errorf("expected zero books added, got:\n%s", out)
	}
	if !strings.Contains(out, "Errors encountered: 1") {
		t.Errorf("expected one error counted, got:\n%s", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Dune:Herbert:9780441013593:3\n" {
		t.Errorf("catalog must be unchanged, got %q", data)
	}
}

func TestRun_MalformedLinesCountedAndSkipped(t *testing.T) {
	path := writeTestCatalog(t, "OnlyTitle:OnlyAuthor\nDune:Herbert:9780441013593:3\n")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "onlytitle"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Valid records processed: 1") {
		t.Errorf("invalid line must not load, got:\n%s", out)
	}
	if !strings.Contains(out, "Search results: 0") {
		t.Errorf("invalid line must never appear in search results, got:\n%s", out)
	}
	if !strings.Contains(out, "Errors encountered: 1") {
		t.Errorf("invalid line must be counted, got:\n%s", out)
	}

	logData, err := os.ReadFile(filepath.Join(filepath.Dir(path), "errors.log"))
	if err != nil {
		t.Fatalf("expected errors.log: %v", err)
	}
	if !strings.Contains(string(logData), `"OnlyTitle:OnlyAuthor"`) {
		t.Errorf("expected offending line in errors.log, got:\n%s", logData)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	t.Run("fewer than two arguments", func(t *testing.T) {
		r, buf := newTestRunner()

		err := r.Run([]string{"library.txt"})
		if !errors.IsUsageError(err) {
			t.Fatalf("expected usage error, got: %v", err)
		}
		if !strings.Contains(buf.String(), "Errors encountered: 1") {
			t.Errorf("usage errors are counted, got:\n%s", buf.String())
		}
	})

	t.Run("catalog path without .txt extension", func(t *testing.T) {
		r, _ := newTestRunner()

		err := r.Run([]string{"library.csv", "dune"})
		if !errors.Is(err, errors.ErrInvalidFileName) {
			t.Fatalf("expected InvalidFileName, got: %v", err)
		}
	})
}

func TestRun_BootstrapCreatesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "library.txt")
	r, buf := newTestRunner()

	if err := r.Run([]string{path, "dune"}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("catalog file should exist after bootstrap: %v", err)
	}
	if !strings.Contains(buf.String(), "Valid records processed: 0") {
		t.Errorf("fresh catalog is empty, got:\n%s", buf.String())
	}
}

func TestRun_SummaryAlwaysPrints(t *testing.T) {
	r, buf := newTestRunner()
	_ = r.Run(nil)

	if !strings.Contains(buf.String(), "Thank you for using the shelfmark book tracker.") {
		t.Errorf("summary must print on every path, got:\n%s", buf.String())
	}
}
