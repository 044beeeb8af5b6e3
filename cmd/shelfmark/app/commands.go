package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfmark/shelfmark/internal/auditlog"
	"github.com/shelfmark/shelfmark/internal/cmd/output"
	"github.com/shelfmark/shelfmark/internal/cmd/table"
	"github.com/shelfmark/shelfmark/pkg/books"
	"github.com/shelfmark/shelfmark/pkg/catalog"
	"github.com/shelfmark/shelfmark/pkg/constants"
	"github.com/shelfmark/shelfmark/pkg/errors"
)

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [catalog.txt]",
		Short: "List every record in the catalog",
		Args:  cobra.MaximumNArgs(1),
		Example: `  shelfmark list library.txt
  shelfmark list library.txt --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog(cmd, args, 0)
			if err != nil {
				return err
			}
			return a.formatRecords(cmd.OutOrStdout(), cat.Records())
		},
	}
}

// NewAddCommand creates the add command.
func (a *App) NewAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [catalog.txt] <Title:Author:ISBN:Copies>",
		Short: "Validate and append a new record",
		Long: `Add validates a colon-delimited record and appends it to the catalog.
The catalog is re-sorted by title (case-insensitive) before being written
back, so on-disk order stays alphabetical after any write.`,
		Args: cobra.RangeArgs(1, 2),
		Example: `  shelfmark add library.txt "Foundation:Asimov:9780553293357:5"
  shelfmark add "Foundation:Asimov:9780553293357:5"   # catalog from config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog(cmd, args, 1)
			if err != nil {
				return err
			}

			record, err := cat.Insert(args[len(args)-1])
			if err != nil {
				auditlog.New(catalog.AuditLogPath(cat.Path())).BestEffort(args[len(args)-1], err)
				return err
			}

			a.logger.Info().
				Str("title", record.Title).
				Str("isbn", record.ISBN).
				Msg("Added book to catalog")
			return a.formatRecords(cmd.OutOrStdout(), []books.Record{record})
		},
	}
}

// NewFindCommand creates the find command for exact ISBN lookup.
func (a *App) NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find [catalog.txt] <isbn>",
		Short: "Look up a record by exact 13-digit ISBN",
		Long: `Find scans the catalog for a record with exactly the given ISBN.
No match is an empty result. More than one match means the catalog is
corrupt and the lookup fails with a duplicate-ISBN error.`,
		Args:    cobra.RangeArgs(1, 2),
		Example: `  shelfmark find library.txt 9780441013593`,
		RunE: func(cmd *cobra.Command, args []string) error {
			isbn := args[len(args)-1]
			if !books.IsISBN(isbn) {
				return errors.NewInvalidISBNError(isbn, constants.ErrMsgInvalidISBN)
			}

			cat, err := a.openCatalog(cmd, args, 1)
			if err != nil {
				return err
			}

			matches, err := cat.FindByISBN(isbn)
			if err != nil {
				auditlog.New(catalog.AuditLogPath(cat.Path())).BestEffort(isbn, err)
				return err
			}
			return a.formatRecords(cmd.OutOrStdout(), matches)
		},
	}
}

// NewSearchCommand creates the search command for title keyword search.
func (a *App) NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "search [catalog.txt] <keyword>",
		Short:   "Search records by title keyword",
		Long:    `Search matches the keyword against record titles only, ignoring case.`,
		Args:    cobra.RangeArgs(1, 2),
		Example: `  shelfmark search library.txt dune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.openCatalog(cmd, args, 1)
			if err != nil {
				return err
			}
			return a.formatRecords(cmd.OutOrStdout(), cat.SearchTitle(args[len(args)-1]))
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "shelfmark version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// openCatalog resolves the catalog path from the command arguments or the
// configuration, bootstraps it, and loads it. operands is the number of
// trailing non-path arguments the command expects; the catalog path, when
// present, always comes first. Invalid lines are reported to the audit log
// and the application logger, never fatally.
func (a *App) openCatalog(cmd *cobra.Command, args []string, operands int) (*catalog.Catalog, error) {
	path := a.config.CatalogPath
	if len(args) > operands {
		path = args[0]
	}
	if path == "" {
		return nil, errors.NewInsufficientArgumentsError(
			"no catalog path: pass <catalog" + constants.CatalogExtension + "> or set SHELFMARK_CATALOG")
	}
	if !strings.HasSuffix(strings.ToLower(path), constants.CatalogExtension) {
		return nil, errors.NewInvalidFileNameError("catalog path must end with " + constants.CatalogExtension)
	}

	if err := catalog.Bootstrap(path); err != nil {
		return nil, err
	}

	cat, lineErrs, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	if len(lineErrs) > 0 {
		audit := auditlog.New(catalog.AuditLogPath(path))
		for _, le := range lineErrs {
			audit.BestEffort(le.Line, le.Err)
			a.logger.Warn().
				Str("line", le.Line).
				Err(le.Err).
				Msg("Skipping invalid catalog line")
		}
	}

	return cat, nil
}

// formatRecords writes records using the configured output format.
func (a *App) formatRecords(w io.Writer, records []books.Record) error {
	format := output.DetectFormat(a.config.Format)
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatWide:
		return formatter.Format(w, table.BooksToTableData(records))
	default:
		return formatter.Format(w, records)
	}
}
