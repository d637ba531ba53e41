package reconcile

import (
	"fmt"

	"github.com/agentstation/docverify/pkg/documents"
)

// Report is the outcome of reconciling one document set.
type Report struct {
	// CaseName is derived from the canonical buyer name and VIN.
	CaseName string `json:"case_name" yaml:"case_name"`

	// Documents is the number of documents reconciled.
	Documents int `json:"documents" yaml:"documents"`

	// DocTypes lists the distinct document types in first-seen order.
	DocTypes []documents.DocType `json:"doc_types" yaml:"doc_types"`

	// TotalPages sums the page counts of all documents.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// Fields lists the catalog fields in order.
	Fields []documents.FieldKey `json:"fields" yaml:"fields"`

	// ByField has one summary per catalog field.
	ByField map[documents.FieldKey]*FieldSummary `json:"by_field" yaml:"by_field"`

	// Mismatches holds fields with at least one disagreeing type, in catalog order.
	Mismatches []Mismatch `json:"mismatches" yaml:"mismatches"`

	// TaxOK is the result of the MV-tax ratio check.
	TaxOK bool `json:"tax_ok" yaml:"tax_ok"`

	// Risk is the bounded risk score in [0, 100].
	Risk int `json:"risk" yaml:"risk"`
}

// Field returns the summary for key.
func (r *Report) Field(key documents.FieldKey) (*FieldSummary, bool) {
	s, ok := r.ByField[key]
	return s, ok
}

// HasMismatches reports whether any field disagrees across documents.
func (r *Report) HasMismatches() bool {
	return len(r.Mismatches) > 0
}

// Clean reports whether the case has no mismatches and passes the tax check.
func (r *Report) Clean() bool {
	return !r.HasMismatches() && r.TaxOK
}

// Summary returns a one-line human-readable summary.
func (r *Report) Summary() string {
	tax := "tax check passed"
	if !r.TaxOK {
		tax = "tax check failed"
	}
	noun := "mismatches"
	if len(r.Mismatches) == 1 {
		noun = "mismatch"
	}
	return fmt.Sprintf("%s: %d documents, %d pages, %d %s, %s, risk %d/100",
		r.CaseName, r.Documents, r.TotalPages, len(r.Mismatches), noun, tax, r.Risk)
}
