package table

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/docverify/internal/cmd/emoji"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/reconcile"
)

// Label returns the catalog label for key. Keys outside the catalog get a
// label derived from the key itself, so "ownerName" reads "Owner Name".
func Label(catalog *documents.Catalog, key documents.FieldKey) string {
	if catalog != nil {
		if f, ok := catalog.Lookup(key); ok {
			return f.Label
		}
	}

	var words strings.Builder
	prev := rune(0)
	for _, r := range string(key) {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			words.WriteByte(' ')
		}
		if r == '_' || r == '-' {
			r = ' '
		}
		words.WriteRune(r)
		prev = r
	}
	// Casers carry state; build one per call.
	return cases.Title(language.English).String(words.String())
}

// DocumentToTableData renders one document as Property/Value rows: its
// metadata, then every supplied field in catalog order.
func DocumentToTableData(doc *documents.Document) Data {
	catalog := documents.DefaultCatalog()
	rows := [][]string{
		{"ID", doc.ID},
		{"Type", string(doc.Type)},
		{"Title", orDash(doc.Title)},
		{"Pages", strconv.Itoa(doc.Pages)},
		{"Source", orDash(doc.SourceHint)},
	}
	for _, key := range suppliedKeys(catalog, doc) {
		k := documents.FieldKey(key)
		rows = append(rows, []string{Label(catalog, k), doc.Fields[k]})
	}

	return Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// FieldSummaryToTableData lists what each document type supplied for one
// field and whether it agrees with the canonical value.
func FieldSummaryToTableData(s *reconcile.FieldSummary) Data {
	rows := make([][]string, 0, len(s.Sources))
	for _, t := range s.Sources {
		v := s.Values[t]
		mark := emoji.Optional
		switch {
		case s.IsMismatching(t):
			mark = emoji.Error
		case s.Matches(t):
			mark = emoji.Success
		}
		rows = append(rows, []string{string(t), orDash(v), mark})
	}

	return Data{
		Headers:         []string{"Document Type", "Value", "Match"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignCenter},
	}
}
