package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/reconcile"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"₹1,10,501", 110501, true},
		{"₹12,156", 12156, true},
		{" $ 1,234.50 ", 1234.5, true},
		{"€99", 99, true},
		{"12 156", 12156, true},
		{"", 0, false},
		{"₹", 0, false},
		{"twelve", 0, false},
		{"1.2.3", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := reconcile.ParseAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCheckTax(t *testing.T) {
	tests := []struct {
		name string
		sale string
		tax  string
		want bool
	}{
		{"ratio about 0.11 passes", "₹1,10,501", "₹12,156", true},
		{"ratio about 0.045 fails", "₹1,10,501", "₹5,000", false},
		{"just under upper bound passes", "1000", "119", true},
		{"just over lower bound passes", "1000", "101", true},
		{"above tolerance fails", "1000", "125", false},
		{"below tolerance fails", "1000", "95", false},
		{"missing sale passes", "", "₹12,156", true},
		{"missing tax passes", "₹1,10,501", "", true},
		{"garbage passes", "n/a", "₹12,156", true},
		{"zero sale passes", "₹0", "₹12,156", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.CheckTax(tt.sale, tt.tax))
		})
	}
}

func TestTaxSanityCheckUsesCanonicalValues(t *testing.T) {
	summaries := map[documents.FieldKey]*reconcile.FieldSummary{
		documents.FieldSaleAmount: {Canonical: "₹1,10,501"},
		documents.FieldMVTax:      {Canonical: "₹5,000"},
	}
	assert.False(t, reconcile.TaxSanityCheck(summaries))

	summaries[documents.FieldMVTax] = &reconcile.FieldSummary{Canonical: "₹12,156"}
	assert.True(t, reconcile.TaxSanityCheck(summaries))

	assert.True(t, reconcile.TaxSanityCheck(nil))
}
