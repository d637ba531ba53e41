// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agentstation/docverify/internal/cmd/table"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Format selects how a command prints its result.
type Format string

// Output formats accepted by -o/--format.
const (
	FormatTable Format = "table"
	FormatWide  Format = "wide"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// IsTable reports whether f renders as a table. The empty format is a table.
func (f Format) IsTable() bool {
	return f == FormatTable || f == FormatWide || f == ""
}

// Data is the table payload understood by TableFormatter.
type Data = table.Data

// Formatter writes a command result to w.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(io.Writer, any) error

// Format calls f.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter returns the formatter for format. Unknown formats render as tables.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return FormatterFunc(writeYAML)
	default:
		return &TableFormatter{Wide: format == FormatWide}
	}
}

// JSONFormatter writes one JSON document per call. Values such as the
// "₹1,10,501" amounts and "<" in previews are written unescaped.
type JSONFormatter struct {
	Indent string
}

// Format writes data to w as JSON.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", f.Indent)
	return enc.Encode(data)
}

// writeYAML writes data as YAML with block sequences flush against their key.
func writeYAML(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TableFormatter renders tables. It understands table.Data and the domain
// values commands print: documents, catalog fields, reports, mismatches and
// single field summaries. Anything else falls back to indented JSON.
type TableFormatter struct {
	// Wide adds per-document columns where a value has them.
	Wide bool
}

// Format writes data to w as a table.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	d, ok := f.tableData(data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
	return render(w, d)
}

func (f *TableFormatter) tableData(data any) (Data, bool) {
	switch v := data.(type) {
	case Data:
		return v, true
	case *Data:
		if v != nil {
			return *v, true
		}
	case []documents.Field:
		return table.FieldsToTableData(v), true
	case []documents.Document:
		return table.DocumentsToTableData(v, f.Wide), true
	case documents.Document:
		return table.DocumentToTableData(&v), true
	case *documents.Document:
		if v != nil {
			return table.DocumentToTableData(v), true
		}
	case *reconcile.Report:
		if v != nil {
			return table.SummaryToTableData(v), true
		}
	case []reconcile.Mismatch:
		return table.MismatchesToTableData(v), true
	case *reconcile.FieldSummary:
		if v != nil {
			return table.FieldSummaryToTableData(v), true
		}
	}
	return Data{}, false
}

var alignments = map[table.Align]tw.Align{
	table.AlignLeft:   tw.AlignLeft,
	table.AlignCenter: tw.AlignCenter,
	table.AlignRight:  tw.AlignRight,
}

func render(w io.Writer, data Data) error {
	var cfg tablewriter.Config
	if n := len(data.ColumnAlignment); n > 0 {
		perColumn := make([]tw.Align, n)
		for i, a := range data.ColumnAlignment {
			align, ok := alignments[a]
			if !ok {
				align = tw.Skip
			}
			perColumn[i] = align
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: perColumn}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: perColumn}
	}

	tbl := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	if len(data.Headers) > 0 {
		tbl.Header(cells(data.Headers)...)
	}
	for _, row := range data.Rows {
		if err := tbl.Append(cells(row)...); err != nil {
			return err
		}
	}
	return tbl.Render()
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

// DetectFormat returns the explicit format when one is given. Otherwise a
// terminal gets a table and a pipe gets JSON.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return FormatTable
	}
	return FormatJSON
}

// ParseFormat validates a -o/--format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", fmt.Errorf("output format %q (want table, wide, json or yaml): %w", s, errors.ErrUnsupportedFormat)
}
