package reconcile

import (
	"github.com/agentstation/docverify/pkg/documents"
)

// FieldSummary is the reconciled view of one catalog field.
type FieldSummary struct {
	// Canonical is the mode value, in its original casing and spacing.
	Canonical string `json:"canonical" yaml:"canonical"`

	// Values holds one value per document type. A later document of the
	// same type overwrites an earlier one.
	Values map[documents.DocType]string `json:"values" yaml:"values"`

	// Sources lists the keys of Values in the order the types were first seen.
	Sources []documents.DocType `json:"sources" yaml:"sources"`

	// Mismatching lists the types whose value disagrees with Canonical, in
	// Sources order.
	Mismatching []documents.DocType `json:"mismatching" yaml:"mismatching"`
}

// Value returns the value supplied by docType.
func (s *FieldSummary) Value(docType documents.DocType) (string, bool) {
	v, ok := s.Values[docType]
	return v, ok
}

// Matches reports whether docType supplied a value that agrees with the
// canonical one. Types that supplied nothing are not mismatches, but they
// do not match either.
func (s *FieldSummary) Matches(docType documents.DocType) bool {
	v, ok := s.Values[docType]
	if !ok || Normalize(v) == "" {
		return false
	}
	return !s.IsMismatching(docType)
}

// IsMismatching reports whether docType is in the mismatch set.
func (s *FieldSummary) IsMismatching(docType documents.DocType) bool {
	for _, t := range s.Mismatching {
		if t == docType {
			return true
		}
	}
	return false
}

// Mismatch records a field on which at least one document type disagrees.
type Mismatch struct {
	Field     documents.FieldKey  `json:"field" yaml:"field"`
	Label     string              `json:"label" yaml:"label"`
	Canonical string              `json:"canonical" yaml:"canonical"`
	DocTypes  []documents.DocType `json:"doc_types" yaml:"doc_types"`
}

// BuildFieldSummary reconciles docs against every field in catalog. The
// returned map has an entry for every catalog field; the mismatch list holds
// only fields with at least one disagreeing type, in catalog order.
func BuildFieldSummary(catalog *documents.Catalog, docs []documents.Document) (map[documents.FieldKey]*FieldSummary, []Mismatch) {
	byField := make(map[documents.FieldKey]*FieldSummary, catalog.Len())
	mismatches := make([]Mismatch, 0)

	for _, field := range catalog.Fields() {
		summary := collect(field.Key, docs)

		values := make([]string, len(summary.Sources))
		for i, t := range summary.Sources {
			values[i] = summary.Values[t]
		}
		summary.Canonical = PickCanonical(values)

		canonical := Normalize(summary.Canonical)
		for _, t := range summary.Sources {
			v := Normalize(summary.Values[t])
			if v != "" && canonical != "" && v != canonical {
				summary.Mismatching = append(summary.Mismatching, t)
			}
		}

		byField[field.Key] = summary
		if len(summary.Mismatching) > 0 {
			mismatches = append(mismatches, Mismatch{
				Field:     field.Key,
				Label:     field.Label,
				Canonical: summary.Canonical,
				DocTypes:  append([]documents.DocType(nil), summary.Mismatching...),
			})
		}
	}

	return byField, mismatches
}

// collect gathers the per-type values of key. A type keeps the slot where it
// was first seen even when a later document overwrites its value.
func collect(key documents.FieldKey, docs []documents.Document) *FieldSummary {
	summary := &FieldSummary{
		Values:      make(map[documents.DocType]string),
		Sources:     []documents.DocType{},
		Mismatching: []documents.DocType{},
	}
	for i := range docs {
		v, ok := docs[i].Value(key)
		if !ok {
			continue
		}
		t := docs[i].Type
		if _, seen := summary.Values[t]; !seen {
			summary.Sources = append(summary.Sources, t)
		}
		summary.Values[t] = v
	}
	return summary
}
