package table

import (
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/docverify/internal/cmd/emoji"
	"github.com/agentstation/docverify/pkg/documents"
)

// FieldsToTableData lists catalog fields in reconciliation order.
func FieldsToTableData(fields []documents.Field) Data {
	rows := make([][]string, 0, len(fields))
	for i, f := range fields {
		marker := ""
		if f.Important {
			marker = emoji.Important
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), string(f.Key), f.Label, marker})
	}

	return Data{
		Headers:         []string{"#", "Key", "Label", "Important"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignCenter},
	}
}

// DocumentsToTableData lists the documents of a case. Wide output adds the
// field keys each document supplies and its source file.
func DocumentsToTableData(docs []documents.Document, wide bool) Data {
	headers := []string{"ID", "Type", "Title", "Pages", "Fields"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Keys", "Source")
		align = append(align, AlignLeft, AlignLeft)
	}

	catalog := documents.DefaultCatalog()
	rows := make([][]string, 0, len(docs))
	for i := range docs {
		d := &docs[i]
		supplied := suppliedKeys(catalog, d)
		row := []string{
			d.ID,
			string(d.Type),
			Truncate(d.DisplayName(), 48),
			strconv.Itoa(d.Pages),
			strconv.Itoa(len(supplied)),
		}
		if wide {
			row = append(row, orDash(strings.Join(supplied, ", ")), orDash(d.SourceHint))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// suppliedKeys lists the non-empty fields of d, catalog fields first in
// catalog order, then any others sorted.
func suppliedKeys(catalog *documents.Catalog, d *documents.Document) []string {
	keys := make([]string, 0, len(d.Fields))
	for _, k := range catalog.Keys() {
		if _, ok := d.Value(k); ok {
			keys = append(keys, string(k))
		}
	}
	var extra []string
	for k := range d.Fields {
		if _, ok := d.Value(k); ok && !catalog.Contains(k) {
			extra = append(extra, string(k))
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}
