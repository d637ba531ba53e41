// Package application provides the application interface for docverify commands.
//
// Commands accept an Application rather than the concrete App type so they
// can be tested with internal/cmd/application.Mock.
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            c, err := app.LoadCase(args[0])
//	            if err != nil {
//	                return err
//	            }
//	            engine, err := app.Engine()
//	            if err != nil {
//	                return err
//	            }
//	            report := engine.Reconcile(c.Documents)
//	            // ... render report
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Application provides the dependencies that commands need.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the field catalog reconciliation runs over.
	Catalog() *documents.Catalog

	// Engine returns the reconciliation engine bound to Catalog.
	Engine() (*reconcile.Engine, error)

	// LoadCase reads and validates a case file. An empty path falls back to
	// the configured case_file.
	LoadCase(path string) (*documents.Case, error)

	// SampleCase returns the embedded sample case.
	SampleCase() (*documents.Case, error)

	// RiskThreshold is the configured risk score at which check fails.
	// Zero disables the threshold.
	RiskThreshold() int

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
