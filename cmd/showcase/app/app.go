// Package app provides the application context and dependency
// management for the showcase CLI: configuration, logging, and the
// build pipeline wiring commands consume.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dooosp/agent-showcase/internal/build"
	"github.com/dooosp/agent-showcase/pkg/errors"
)

// App represents the showcase application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// BuildConfig assembles the pipeline configuration from the app config.
func (a *App) BuildConfig() build.Config {
	return build.Config{
		CatalogPath:      a.config.CatalogPath,
		SubagentsDir:     a.config.SubagentsDir,
		ProjectsPath:     a.config.ProjectsPath,
		TranslationsPath: a.config.TranslationsPath,
		ConnectionsPath:  a.config.ConnectionsPath,
		OutputDir:        a.config.OutputDir,
	}
}

// ExitOnError prints the error to stderr and exits with status 1.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
