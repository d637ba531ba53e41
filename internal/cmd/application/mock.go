// Package application provides test doubles for cmd/application.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/docverify/internal/embedded"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/logging"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method falls back to the real default:
// the default catalog, the embedded sample and documents.LoadCase.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := check.NewCommand(mock)
type Mock struct {
	CatalogFunc       func() *documents.Catalog
	EngineFunc        func() (*reconcile.Engine, error)
	LoadCaseFunc      func(path string) (*documents.Case, error)
	SampleCaseFunc    func() (*documents.Case, error)
	RiskThresholdFunc func() int
	NoColorFunc       func() bool
	LoggerFunc        func() *zerolog.Logger
	OutputFormatFunc  func() string
	VersionFunc       func() string
	CommitFunc        func() string
	DateFunc          func() string
	BuiltByFunc       func() string
}

// Catalog returns the mock catalog or the default one.
func (m *Mock) Catalog() *documents.Catalog {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return documents.DefaultCatalog()
}

// Engine returns the mock engine or one bound to Catalog.
func (m *Mock) Engine() (*reconcile.Engine, error) {
	if m.EngineFunc != nil {
		return m.EngineFunc()
	}
	return reconcile.New(reconcile.WithCatalog(m.Catalog()))
}

// LoadCase uses the mock function or documents.LoadCase.
func (m *Mock) LoadCase(path string) (*documents.Case, error) {
	if m.LoadCaseFunc != nil {
		return m.LoadCaseFunc(path)
	}
	return documents.LoadCase(path)
}

// SampleCase uses the mock function or the embedded sample.
func (m *Mock) SampleCase() (*documents.Case, error) {
	if m.SampleCaseFunc != nil {
		return m.SampleCaseFunc()
	}
	return embedded.SampleCase()
}

// RiskThreshold returns the mock threshold or zero.
func (m *Mock) RiskThreshold() int {
	if m.RiskThresholdFunc != nil {
		return m.RiskThresholdFunc()
	}
	return 0
}

// NoColor returns the mock setting or true.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return true
}

// Logger returns the mock logger or the package default, so tests can
// silence or capture it through pkg/logging.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.Default()
}

// OutputFormat returns the mock format or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns a version string using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns a commit hash using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns a build date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns a builder identifier using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
