// Package reconcile cross-references field values extracted from a set of
// registration documents. For every catalog field it picks a canonical value
// (the normalized mode), flags document types that disagree with it, checks
// the MV-tax to sale-amount ratio and folds the findings into a risk score.
//
// The engine is pure: it performs no I/O, never fails, and returns the same
// report for the same document sequence.
package reconcile

import (
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
)

// Engine reconciles document sets against a fixed field catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *documents.Catalog
}

// Option configures an Engine
type Option func(*Engine) error

// New creates an Engine. Without options it uses documents.DefaultCatalog.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog: documents.DefaultCatalog(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// WithCatalog sets the field catalog
func WithCatalog(catalog *documents.Catalog) Option {
	return func(e *Engine) error {
		if catalog == nil {
			return errors.NewValidationError("catalog", nil, "cannot be nil")
		}
		e.catalog = catalog
		return nil
	}
}

// Catalog returns the catalog the engine reconciles against.
func (e *Engine) Catalog() *documents.Catalog {
	return e.catalog
}

// Reconcile builds the full report for docs. The result is recomputed from
// scratch on every call.
func (e *Engine) Reconcile(docs []documents.Document) *Report {
	return Reconcile(e.catalog, docs)
}

// Reconcile builds the report for docs against catalog.
func Reconcile(catalog *documents.Catalog, docs []documents.Document) *Report {
	byField, mismatches := BuildFieldSummary(catalog, docs)
	taxOK := TaxSanityCheck(byField)

	return &Report{
		Fields:     catalog.Keys(),
		ByField:    byField,
		Mismatches: mismatches,
		TaxOK:      taxOK,
		Risk:       RiskScore(len(mismatches), taxOK),
		DocTypes:   distinctTypes(docs),
		TotalPages: totalPages(docs),
		CaseName:   CaseName(canonicalOf(byField, documents.FieldBuyerName), canonicalOf(byField, documents.FieldVIN)),
		Documents:  len(docs),
	}
}

func distinctTypes(docs []documents.Document) []documents.DocType {
	seen := make(map[documents.DocType]bool, len(docs))
	types := make([]documents.DocType, 0, len(docs))
	for i := range docs {
		if t := docs[i].Type; !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	return types
}

func totalPages(docs []documents.Document) int {
	total := 0
	for i := range docs {
		total += docs[i].Pages
	}
	return total
}
