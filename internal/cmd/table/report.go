package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/docverify/internal/cmd/emoji"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// SummaryToTableData renders the headline numbers of a report.
func SummaryToTableData(report *reconcile.Report) Data {
	tax := emoji.Success + " passed"
	if !report.TaxOK {
		tax = emoji.Error + " failed"
	}

	types := make([]string, len(report.DocTypes))
	for i, t := range report.DocTypes {
		types[i] = string(t)
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Case", report.CaseName},
			{"Documents", strconv.Itoa(report.Documents)},
			{"Pages", strconv.Itoa(report.TotalPages)},
			{"Types", orDash(strings.Join(types, ", "))},
			{"Mismatches", strconv.Itoa(len(report.Mismatches))},
			{"Tax Check", tax},
			{"Risk", fmt.Sprintf("%d/100", report.Risk)},
		},
	}
}

// MismatchesToTableData lists the fields on which document types disagree.
func MismatchesToTableData(mismatches []reconcile.Mismatch) Data {
	rows := make([][]string, 0, len(mismatches))
	for _, m := range mismatches {
		types := make([]string, len(m.DocTypes))
		for i, t := range m.DocTypes {
			types[i] = string(t)
		}
		rows = append(rows, []string{m.Label, m.Canonical, strings.Join(types, ", ")})
	}

	return Data{
		Headers: []string{"Field", "Canonical", "Disagreeing"},
		Rows:    rows,
	}
}

// FieldsReportToTableData renders one row per catalog field with its
// canonical value and status. With mismatchesOnly, agreeing fields are
// skipped. Wide output adds one column per document type holding that
// type's value, prefixed with a match marker.
func FieldsReportToTableData(catalog *documents.Catalog, report *reconcile.Report, mismatchesOnly, wide bool) Data {
	headers := []string{"Field", "Canonical", "Status", "Sources"}
	align := []Align{AlignLeft, AlignLeft, AlignCenter, AlignRight}
	if wide {
		for _, t := range report.DocTypes {
			headers = append(headers, string(t))
			align = append(align, AlignLeft)
		}
	}

	rows := make([][]string, 0, len(report.Fields))
	for _, key := range report.Fields {
		s, ok := report.Field(key)
		if !ok {
			continue
		}
		if mismatchesOnly && len(s.Mismatching) == 0 {
			continue
		}

		row := []string{
			Label(catalog, key),
			orDash(s.Canonical),
			status(s),
			strconv.Itoa(len(s.Sources)),
		}
		if wide {
			for _, t := range report.DocTypes {
				row = append(row, cell(s, t))
			}
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

func status(s *reconcile.FieldSummary) string {
	switch {
	case len(s.Sources) == 0 || s.Canonical == "":
		return emoji.Optional
	case len(s.Mismatching) > 0:
		return emoji.Error
	default:
		return emoji.Success
	}
}

func cell(s *reconcile.FieldSummary, t documents.DocType) string {
	v, ok := s.Value(t)
	switch {
	case !ok || reconcile.Normalize(v) == "":
		return emoji.Optional
	case s.IsMismatching(t):
		return emoji.Error + " " + Truncate(v, 32)
	default:
		return emoji.Success + " " + Truncate(v, 32)
	}
}
