package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shelfmark/shelfmark/internal/auditlog"
	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/catalog"
	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// Fixed-width layout of the classic result table.
const (
	headerFormat = "%-30s %-20s %-15s %5s\n"
	rowFormat    = "%-30.30s %-20.20s %-15.15s %5d\n"
)

// Runner executes the classic two-argument form of the CLI:
// validate arguments, bootstrap the catalog file, load it, classify and run
// the operation, and print the result table followed by a run summary.
// The summary prints on every path, including failures.
type Runner struct {
	out    io.Writer
	logger *zerolog.Logger
	stats  catalog.Stats
}

// NewRunner creates a Runner writing its report to out.
func (a *App) NewRunner(out io.Writer) *Runner {
	return &Runner{out: out, logger: a.logger}
}

// Stats returns the counters accumulated by the last Run.
func (r *Runner) Stats() catalog.Stats {
	return r.stats
}

// Run executes one catalog operation and always finishes with the summary
// block. Per-line load errors and failed inserts are recovered locally;
// anything else aborts the run with a non-nil error after being counted
// and reported.
func (r *Runner) Run(args []string) error {
	err := r.run(args)
	if err != nil {
		r.stats.Errors++
		r.reportFailure(err)
	}

	r.printSummary()
	return err
}

// run performs the whole operation flow without summary handling.
func (r *Runner) run(args []string) error {
	if len(args) < 2 {
		return errors.NewInsufficientArgumentsError(
			"Fewer than two command-line arguments provided. Expected: <catalog.txt> <operation>")
	}

	catalogPath := args[0]
	if !strings.HasSuffix(strings.ToLower(catalogPath), constants.CatalogExtension) {
		return errors.NewInvalidFileNameError("First argument must end with " + constants.CatalogExtension)
	}

	if err := catalog.Bootstrap(catalogPath); err != nil {
		return err
	}

	audit := auditlog.New(catalog.AuditLogPath(catalogPath))

	cat, lineErrs, err := catalog.Load(catalogPath)
	if err != nil {
		audit.BestEffort("I/O operation", err)
		return err
	}

	r.stats.ValidRecords = cat.Len()
	for _, le := range lineErrs {
		r.stats.Errors++
		audit.BestEffort(le.Line, le.Err)
		r.logger.Debug().
			Str("line", le.Line).
			Err(le.Err).
			Msg("Skipping invalid catalog line")
	}

	op := args[1]
	result, err := cat.Execute(op)
	if err != nil {
		audit.BestEffort(op, err)

		// A failed insert is recovered within the operation: reported and
		// counted, with no catalog mutation. Everything else is fatal.
		if catalog.Classify(op) == catalog.OpInsert &&
			(errors.IsMalformedEntry(err) || errors.IsInvalidISBN(err)) {
			r.stats.Errors++
			fmt.Fprintf(r.out, "Error: %s\n", err.Error())
			return nil
		}
		return err
	}

	r.printHeader()
	for _, record := range result.Records {
		r.printRow(record)
	}

	if result.Kind == catalog.OpInsert {
		r.stats.BooksAdded = 1
		r.logger.Info().
			Str("title", result.Added.Title).
			Str("isbn", result.Added.ISBN).
			Msg("Added book to catalog")
	} else {
		r.stats.SearchResults = len(result.Records)
	}

	return nil
}

// reportFailure prints the user-facing message for a fatal error.
func (r *Runner) reportFailure(err error) {
	var ioErr *errors.IOError
	switch {
	case errors.As(err, &ioErr):
		fmt.Fprintf(r.out, "Error: I/O failure - %s\n", err.Error())
	case errors.Kind(err) == "Unexpected":
		fmt.Fprintf(r.out, "Error: Unexpected failure - %s\n", err.Error())
	default:
		fmt.Fprintf(r.out, "Error: %s\n", err.Error())
	}
}

func (r *Runner) printHeader() {
	fmt.Fprintf(r.out, headerFormat, "Title", "Author", "ISBN", "Copies")
}

func (r *Runner) printRow(record books.Record) {
	fmt.Fprintf(r.out, rowFormat, record.Title, record.Author, record.ISBN, record.Copies)
}

func (r *Runner) printSummary() {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Valid records processed: %d\n", r.stats.ValidRecords)
	fmt.Fprintf(r.out, "Search results: %d\n", r.stats.SearchResults)
	fmt.Fprintf(r.out, "Books added: %d\n", r.stats.BooksAdded)
	fmt.Fprintf(r.out, "Errors encountered: %d\n", r.stats.Errors)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Thank you for using the shelfmark book tracker.")
}
