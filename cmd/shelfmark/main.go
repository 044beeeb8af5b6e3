// Package main provides the entry point for the shelfmark CLI tool.
package main

import (
	"context"
	"os"

	"github.com/shelfmark/shelfmark/cmd/shelfmark/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	// Execute with context
	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
