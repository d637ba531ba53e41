package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/docverify/pkg/reconcile"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"trims and lowers", "  Honda UNICORN  ", "honda unicorn"},
		{"collapses runs", "Sadaf   Colony,\tKat\nKat Gate", "sadaf colony, kat kat gate"},
		{"non-breaking space", "Pearl Igneous Black", "pearl igneous black"},
		{"already normal", "cpbpd4502g", "cpbpd4502g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.Normalize(tt.input))
		})
	}
}

func TestPickCanonical(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"no values", nil, ""},
		{"all empty", []string{"", "  ", "\t"}, ""},
		{"single value", []string{"KC40EA4102672"}, "KC40EA4102672"},
		{"mode wins", []string{"CSN", "Chhatrapati Sambhajinagar", "csn", "CSN "}, "CSN"},
		{"tie breaks on first seen", []string{"A", "a", "B"}, "A"},
		{"equal counts keep first form", []string{"B", "A", "A", "B"}, "B"},
		{"returns first original spelling", []string{"x", "honda  unicorn", "Honda Unicorn", "x "}, "x"},
		{"empty values do not vote", []string{"", "", "Red", ""}, "Red"},
		{"original casing kept", []string{"  Pearl Igneous Black", "pearl igneous black"}, "  Pearl Igneous Black"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.PickCanonical(tt.values))
		})
	}
}
