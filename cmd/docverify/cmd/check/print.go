package check

import (
	"fmt"
	"io"

	"github.com/agentstation/docverify/internal/cmd/emoji"
	"github.com/agentstation/docverify/internal/cmd/output"
	"github.com/agentstation/docverify/internal/cmd/table"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Result is the structured output of check for json and yaml formats.
type Result struct {
	Case   string            `json:"case" yaml:"case"`
	Report *reconcile.Report `json:"report,omitempty" yaml:"report,omitempty"`

	// Mismatches replaces Report when only mismatches are requested.
	Mismatches []reconcile.Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
	Risk       *int                 `json:"risk,omitempty" yaml:"risk,omitempty"`
}

// FieldResult is the structured output of check --field.
type FieldResult struct {
	Case  string             `json:"case" yaml:"case"`
	Field documents.FieldKey `json:"field" yaml:"field"`
	Label string             `json:"label" yaml:"label"`

	*reconcile.FieldSummary `json:",inline" yaml:",inline"`
}

// printField writes what every document type supplied for key.
func printField(w io.Writer, catalog *documents.Catalog, name string, report *reconcile.Report, key documents.FieldKey, format output.Format) error {
	summary, ok := report.Field(key)
	if !ok {
		return errors.NewNotFoundError("field", string(key))
	}
	label := table.Label(catalog, key)

	if !format.IsTable() {
		return output.NewFormatter(format).Format(w, FieldResult{Case: name, Field: key, Label: label, FieldSummary: summary})
	}

	fmt.Fprintf(w, "Case: %s\n", name)
	fmt.Fprintf(w, "%s: %s\n", label, summary.Canonical)
	if len(summary.Sources) == 0 {
		fmt.Fprintf(w, "%s No document supplies this field\n", emoji.Optional)
		return nil
	}
	return output.NewFormatter(format).Format(w, summary)
}

// printReport writes report in format to w.
func printReport(w io.Writer, catalog *documents.Catalog, name string, report *reconcile.Report, format output.Format, mismatchesOnly bool) error {
	if !format.IsTable() {
		result := Result{Case: name}
		if mismatchesOnly {
			risk := report.Risk
			result.Mismatches = report.Mismatches
			result.Risk = &risk
		} else {
			result.Report = report
		}
		return output.NewFormatter(format).Format(w, result)
	}

	formatter := output.NewFormatter(format)

	fmt.Fprintf(w, "Case: %s\n", name)
	if err := formatter.Format(w, report); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if mismatchesOnly && !report.HasMismatches() {
		fmt.Fprintf(w, "%s All fields agree across documents\n", emoji.Success)
		return nil
	}

	fmt.Fprintln(w, "Fields:")
	fieldsData := table.FieldsReportToTableData(catalog, report, mismatchesOnly, format == output.FormatWide)
	if err := formatter.Format(w, fieldsData); err != nil {
		return err
	}

	if report.HasMismatches() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s Mismatches:\n", emoji.Error)
		if err := formatter.Format(w, report.Mismatches); err != nil {
			return err
		}
	}
	return nil
}
