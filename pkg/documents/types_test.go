package documents_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
)

func TestAllDocTypes(t *testing.T) {
	types := documents.AllDocTypes()
	require.Len(t, types, 9)
	assert.Equal(t, documents.DocTypeForm20, types[0])
	assert.Equal(t, documents.DocTypeAccessoriesInvoice, types[8])

	types[0] = "mutated"
	assert.Equal(t, documents.DocTypeForm20, documents.AllDocTypes()[0])

	for _, dt := range documents.AllDocTypes() {
		assert.True(t, dt.IsValid(), dt)
	}
	assert.False(t, documents.DocType("Passport").IsValid())
}

func TestParseDocType(t *testing.T) {
	tests := []struct {
		input   string
		want    documents.DocType
		wantErr bool
	}{
		{"Form20", documents.DocTypeForm20, false},
		{"form21", documents.DocTypeForm21, false},
		{"  rto   slip ", documents.DocTypeRTOSlip, false},
		{"AADHAAR", documents.DocTypeAadhaar, false},
		{"accessories invoice", documents.DocTypeAccessoriesInvoice, false},
		{"Passport", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := documents.ParseDocType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentValue(t *testing.T) {
	d := documents.Document{
		ID:   "doc_pan",
		Type: documents.DocTypePAN,
		Fields: map[documents.FieldKey]string{
			documents.FieldPAN:   "CPBPD4502G",
			documents.FieldColor: "",
		},
	}

	v, ok := d.Value(documents.FieldPAN)
	assert.True(t, ok)
	assert.Equal(t, "CPBPD4502G", v)

	_, ok = d.Value(documents.FieldColor)
	assert.False(t, ok, "empty value counts as absent")

	_, ok = d.Value(documents.FieldVIN)
	assert.False(t, ok)

	var empty documents.Document
	_, ok = empty.Value(documents.FieldVIN)
	assert.False(t, ok)
}

func TestDocumentDisplayName(t *testing.T) {
	assert.Equal(t, "PAN card", (&documents.Document{ID: "p", Title: "PAN card", SourceHint: "a.pdf"}).DisplayName())
	assert.Equal(t, "a.pdf", (&documents.Document{ID: "p", SourceHint: "a.pdf"}).DisplayName())
	assert.Equal(t, "p.pdf", (&documents.Document{ID: "p"}).DisplayName())
}
