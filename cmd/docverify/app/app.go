// Package app provides the application context and dependency management
// for the docverify CLI: configuration, logging, the field catalog and the
// lazily built reconciliation engine.
package app

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/docverify/cmd/application"
	"github.com/agentstation/docverify/internal/cmd/output"
	"github.com/agentstation/docverify/internal/embedded"
	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the docverify application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config  *Config
	logger  *zerolog.Logger
	catalog *documents.Catalog

	// Engine (lazy-initialized, singleton)
	mu     sync.RWMutex
	engine *reconcile.Engine
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from LoadConfig that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		catalog: documents.DefaultCatalog(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
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

// OutputFormat returns the configured format, auto-detected when unset.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// RiskThreshold returns the configured risk threshold.
func (a *App) RiskThreshold() int {
	return a.config.RiskThreshold
}

// Catalog returns the field catalog.
func (a *App) Catalog() *documents.Catalog {
	return a.catalog
}

// Engine returns the reconciliation engine, creating it lazily if needed.
func (a *App) Engine() (*reconcile.Engine, error) {
	a.mu.RLock()
	if a.engine != nil {
		e := a.engine
		a.mu.RUnlock()
		return e, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.engine != nil {
		return a.engine, nil
	}

	e, err := reconcile.New(reconcile.WithCatalog(a.catalog))
	if err != nil {
		return nil, errors.NewConfigError("engine", "failed to create reconciliation engine", err)
	}
	a.engine = e
	return e, nil
}

// LoadCase reads and validates the case file at path, or the configured
// case_file when path is empty. Cases without a name are named after the file.
func (a *App) LoadCase(path string) (*documents.Case, error) {
	if path == "" {
		path = a.config.CaseFile
	}
	if path == "" {
		return nil, errors.NewValidationError("case_file", "", "no case file given: pass a path, set case_file, or use --sample")
	}

	a.logger.Debug().Str("path", path).Msg("loading case file")

	c, err := documents.LoadCase(path)
	if err != nil {
		return nil, err
	}
	if c.Name == "" {
		c.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := c.Validate(a.catalog); err != nil {
		return nil, err
	}

	a.logger.Info().
		Str("case", c.Name).
		Int("documents", len(c.Documents)).
		Msg("case loaded")
	return c, nil
}

// SampleCase returns the embedded sample case.
func (a *App) SampleCase() (*documents.Case, error) {
	c, err := embedded.SampleCase()
	if err != nil {
		return nil, err
	}
	if err := c.Validate(a.catalog); err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("case", constants.SampleCaseName).
		Int("documents", len(c.Documents)).
		Msg("using embedded sample case")
	return c, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config cannot be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog replaces the default field catalog.
func WithCatalog(catalog *documents.Catalog) Option {
	return func(a *App) error {
		if catalog == nil {
			return errors.NewConfigError("app", "catalog cannot be nil", nil)
		}
		a.catalog = catalog
		return nil
	}
}
