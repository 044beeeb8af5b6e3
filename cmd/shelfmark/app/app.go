// Package app provides the application context and dependency management
// for the shelfmark CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"github.com/rs/zerolog"
)

// App represents the shelfmark application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// catalog operations, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Option customizes an App during construction.
type Option func(*App) error

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// WithConfig overrides the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}
