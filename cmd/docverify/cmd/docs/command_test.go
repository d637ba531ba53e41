package docs

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmock "github.com/agentstation/docverify/internal/cmd/application"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
	"github.com/agentstation/docverify/pkg/logging"
)

func run(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	logging.DisableLoggingForTest(t)
	cmd := NewCommand(&appmock.Mock{OutputFormatFunc: func() string { return format }})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDocsList(t *testing.T) {
	out, err := run(t, "wide", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "doc_form21")
	assert.Contains(t, out, "Image_008.pdf")

	out, err = run(t, "json", "--sample")
	require.NoError(t, err)
	var docs []documents.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 8)
}

func TestDocsShow(t *testing.T) {
	t.Run("raw markdown", func(t *testing.T) {
		out, err := run(t, "table", "show", "doc_rto", "--sample", "--raw")
		require.NoError(t, err)
		assert.Contains(t, out, "# RTO Application Summary & MV-Tax")
		assert.Contains(t, out, "| MV Tax | ₹12,156 |")
		assert.Contains(t, out, "**Source**: Image_001.pdf")
	})

	t.Run("rendered", func(t *testing.T) {
		out, err := run(t, "table", "show", "doc_pan", "--sample")
		require.NoError(t, err)
		assert.Contains(t, out, "CPBPD4502G")
	})

	t.Run("structured", func(t *testing.T) {
		out, err := run(t, "yaml", "show", "doc_pan", "--sample")
		require.NoError(t, err)
		assert.Contains(t, out, "id: doc_pan")
	})

	t.Run("unknown document", func(t *testing.T) {
		_, err := run(t, "table", "show", "doc_passport", "--sample")
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestDocumentMarkdown(t *testing.T) {
	doc := &documents.Document{
		ID:    "doc_x",
		Type:  documents.DocTypeInvoice,
		Pages: 1,
		Fields: map[documents.FieldKey]string{
			documents.FieldAddress: "Plot 4 | Lane 2",
			documents.FieldVIN:     "ME4KC407JSA102577",
		},
	}

	md := documentMarkdown(documents.DefaultCatalog(), doc)
	assert.Contains(t, md, "# doc_x.pdf")
	assert.Contains(t, md, `| Address | Plot 4 \| Lane 2 |`)
	assert.Less(t, bytes.Index([]byte(md), []byte("Chassis / VIN")), bytes.Index([]byte(md), []byte("Address")))
	assert.NotContains(t, md, "\n---\n")

	empty := documentMarkdown(documents.DefaultCatalog(), &documents.Document{ID: "e", Type: documents.DocTypePAN})
	assert.Contains(t, empty, "| - | - |")
}
