package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the shelfmark CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "shelfmark <catalog.txt> <operation>",
		Short:   "Flat-file book catalog CLI",
		Version: a.version,
		Long: `Shelfmark maintains a flat-file catalog of books and looks them up by
ISBN or title keyword.

The classic form takes a catalog path and a single operation whose shape
selects the behavior:

  Title:Author:ISBN:Copies   add a new record (catalog is re-sorted by title)
  13 digits                  exact ISBN lookup
  anything else              case-insensitive title keyword search

Explicit subcommands (list, add, find, search) cover the same operations
with structured output formats.`,
		Example: `  shelfmark library.txt "Foundation:Asimov:9780553293357:5"
  shelfmark library.txt 9780441013593
  shelfmark library.txt dune
  shelfmark list library.txt --format json`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.NewRunner(cmd.OutOrStdout()).Run(args)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.shelfmark.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("shelfmark {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewAddCommand())
	rootCmd.AddCommand(a.NewFindCommand())
	rootCmd.AddCommand(a.NewSearchCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
