package reconcile

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/agentstation/docverify/pkg/documents"
)

// Motor-vehicle tax is expected to be 11% of the sale amount, give or take
// one percentage point.
const (
	TaxRate      = 0.11
	TaxTolerance = 0.01
)

// ParseAmount parses a currency-ish string such as "₹1,10,501" by dropping
// currency symbols, thousands separators and whitespace. ok is false for
// empty, malformed or non-finite input.
func ParseAmount(s string) (amount float64, ok bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// CheckTax reports whether tax is within TaxTolerance of TaxRate times sale.
// Missing, unparseable or zero amounts pass: absent data is not a finding.
func CheckTax(sale, tax string) bool {
	s, okSale := ParseAmount(sale)
	t, okTax := ParseAmount(tax)
	if !okSale || !okTax || s == 0 || t == 0 {
		return true
	}
	return math.Abs(t/s-TaxRate) <= TaxTolerance
}

// TaxSanityCheck runs CheckTax over the canonical sale amount and MV tax.
func TaxSanityCheck(summaries map[documents.FieldKey]*FieldSummary) bool {
	return CheckTax(canonicalOf(summaries, documents.FieldSaleAmount), canonicalOf(summaries, documents.FieldMVTax))
}

func canonicalOf(summaries map[documents.FieldKey]*FieldSummary, key documents.FieldKey) string {
	if s, ok := summaries[key]; ok && s != nil {
		return s.Canonical
	}
	return ""
}
