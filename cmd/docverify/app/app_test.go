package app

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/docverify/cmd/docverify/cmd/check"
	"github.com/agentstation/docverify/pkg/documents"
	"github.com/agentstation/docverify/pkg/errors"
)

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	if config.LogOutput == "" {
		config.LogOutput = "discard"
	}
	logger := zerolog.Nop()
	a, err := New("1.2.3", "abc123", "2026-01-02", "test", WithConfig(config), WithLogger(&logger))
	require.NoError(t, err)
	return a
}

func run(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := a.createRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestNewOptions(t *testing.T) {
	_, err := New("dev", "", "", "", WithConfig(nil))
	assert.Error(t, err)

	_, err = New("dev", "", "", "", WithConfig(&Config{}), WithCatalog(nil))
	assert.Error(t, err)

	catalog := documents.MustCatalog(documents.Field{Key: documents.FieldVIN, Label: "VIN"})
	a := newTestApp(t, &Config{})
	require.NoError(t, WithCatalog(catalog)(a))
	assert.Same(t, catalog, a.Catalog())
}

func TestAppAccessors(t *testing.T) {
	a := newTestApp(t, &Config{Format: "yaml", NoColor: true, RiskThreshold: 40})

	assert.Equal(t, "1.2.3", a.Version())
	assert.Equal(t, "abc123", a.Commit())
	assert.Equal(t, "2026-01-02", a.Date())
	assert.Equal(t, "test", a.BuiltBy())
	assert.Equal(t, "yaml", a.OutputFormat())
	assert.True(t, a.NoColor())
	assert.Equal(t, 40, a.RiskThreshold())
	assert.Equal(t, 16, a.Catalog().Len())
	assert.NotNil(t, a.Logger())
	assert.NotNil(t, a.Config())
}

func TestEngineIsShared(t *testing.T) {
	a := newTestApp(t, &Config{})

	first, err := a.Engine()
	require.NoError(t, err)
	second, err := a.Engine()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, a.Catalog(), first.Catalog())
}

func TestLoadCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unicorn.json")
	writeFile(t, path, `{"documents": [{"id": "doc_pan", "type": "PAN", "pages": 1, "fields": {"pan": "CPBPD4502G"}}]}`)

	t.Run("named after file", func(t *testing.T) {
		a := newTestApp(t, &Config{})
		c, err := a.LoadCase(path)
		require.NoError(t, err)
		assert.Equal(t, "unicorn", c.Name)
	})

	t.Run("configured default", func(t *testing.T) {
		a := newTestApp(t, &Config{CaseFile: path})
		c, err := a.LoadCase("")
		require.NoError(t, err)
		assert.Len(t, c.Documents, 1)
	})

	t.Run("nothing configured", func(t *testing.T) {
		a := newTestApp(t, &Config{})
		_, err := a.LoadCase("")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("invalid case", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		writeFile(t, bad, "documents:\n  - id: a\n    type: Passport\n")
		a := newTestApp(t, &Config{})
		_, err := a.LoadCase(bad)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestExecuteVersion(t *testing.T) {
	isolate(t)
	a := newTestApp(t, &Config{})

	out, err := run(t, a, "version")
	require.NoError(t, err)
	assert.Equal(t, "docverify 1.2.3\n", out)

	out, err = run(t, a, "version", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","date":"2026-01-02","built_by":"test"}`, out)
}

func TestExecuteCheckSample(t *testing.T) {
	isolate(t)
	a := newTestApp(t, &Config{Format: "json"})

	out, err := run(t, a, "check", "--sample")
	require.NoError(t, err)

	var result struct {
		Case   string `json:"case"`
		Report struct {
			CaseName string `json:"case_name"`
			Risk     int    `json:"risk"`
			TaxOK    bool   `json:"tax_ok"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Honda UNICORN registration pack", result.Case)
	assert.Equal(t, "aasim-durrani-ME4KC407JSA102577", result.Report.CaseName)
	assert.Equal(t, 8, result.Report.Risk)
	assert.True(t, result.Report.TaxOK)
}

func TestExecuteConfigFlag(t *testing.T) {
	dir := isolate(t)
	configPath := filepath.Join(dir, "strict.yaml")
	writeFile(t, configPath, "risk_threshold: 5\nformat: yaml\n")
	a := newTestApp(t, &Config{})

	out, err := run(t, a, "check", "--sample", "--config", configPath)
	var riskErr *check.RiskError
	require.ErrorAs(t, err, &riskErr)
	assert.Equal(t, 5, riskErr.Threshold)
	assert.Contains(t, out, "case_name: aasim-durrani-ME4KC407JSA102577")
	assert.Equal(t, "yaml", a.Config().Format)

	_, err = run(t, a, "check", "--sample", "--config", configPath, "--fail-on-risk", "0", "-o", "json")
	assert.NoError(t, err)
}

func TestExecuteRejectsInvalidFormat(t *testing.T) {
	isolate(t)
	a := newTestApp(t, &Config{})

	_, err := run(t, a, "fields", "-o", "xml")
	assert.True(t, errors.IsUnsupportedFormat(err))
}

func TestExecuteFieldsAndDocs(t *testing.T) {
	isolate(t)
	a := newTestApp(t, &Config{})

	out, err := run(t, a, "fields", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "key: vin")

	out, err = run(t, a, "docs", "show", "doc_pan", "--sample", "--raw", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "| PAN | CPBPD4502G |")
}
