package documents

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/docverify/pkg/constants"
	"github.com/agentstation/docverify/pkg/errors"
)

// Format is a case file serialization format.
type Format string

// Supported case file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the case file format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("case file %s: %w", path, errors.ErrUnsupportedFormat)
	}
}

// Case is a named bundle of documents submitted together for verification.
type Case struct {
	Name      string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Documents []Document `json:"documents" yaml:"documents" toml:"documents"`
}

// ParseCase decodes a case from data. Unknown keys are rejected so that a
// misspelt field name does not silently vanish from reconciliation.
func ParseCase(data []byte, format Format) (*Case, error) {
	return parseCase(data, format, "")
}

// LoadCase reads and decodes the case file at path.
func LoadCase(path string) (*Case, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, constants.MaxCaseFileSize+1))
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(data) > constants.MaxCaseFileSize {
		return nil, errors.NewValidationError("size", len(data), fmt.Sprintf("case file %s exceeds %d bytes", path, constants.MaxCaseFileSize))
	}

	return parseCase(data, format, path)
}

// LoadCaseFS reads and decodes the case file name from fsys.
func LoadCaseFS(fsys fs.FS, name string) (*Case, error) {
	format, err := FormatFromPath(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return parseCase(data, format, name)
}

func parseCase(data []byte, format Format, file string) (*Case, error) {
	var c Case
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &c, yaml.DisallowUnknownField()); err != nil {
			return nil, decodeError(format, file, err, 0)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&c); err != nil {
			return nil, decodeError(format, file, err, jsonLine(data, err))
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &c)
		if err != nil {
			var perr toml.ParseError
			line := 0
			if errors.As(err, &perr) {
				line = perr.Position.Line
			}
			return nil, decodeError(format, file, err, line)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewParseError(string(format), file, fmt.Sprintf("unknown key %q", undecoded[0].String()), nil)
		}
	default:
		return nil, fmt.Errorf("case format %q: %w", format, errors.ErrUnsupportedFormat)
	}
	return &c, nil
}

func decodeError(format Format, file string, err error, line int) error {
	perr := errors.NewParseError(string(format), file, err.Error(), err)
	perr.Line = line
	return perr
}

// jsonLine maps the byte offset carried by encoding/json errors to a line.
func jsonLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// Validate checks the case against the closed document type set and the
// given catalog. It reports the first problem found.
func (c *Case) Validate(catalog *Catalog) error {
	seen := make(map[string]bool, len(c.Documents))
	for i := range c.Documents {
		d := &c.Documents[i]
		if strings.TrimSpace(d.ID) == "" {
			return errors.NewValidationError("id", i, fmt.Sprintf("document %d has no id", i))
		}
		if seen[d.ID] {
			return errors.NewValidationError("id", d.ID, "duplicate document id")
		}
		seen[d.ID] = true

		if !d.Type.IsValid() {
			return errors.NewValidationError("type", d.Type, fmt.Sprintf("document %s has unknown type %q", d.ID, d.Type))
		}
		if d.Pages < 0 {
			return errors.NewValidationError("pages", d.Pages, fmt.Sprintf("document %s has a negative page count", d.ID))
		}
		if catalog == nil {
			continue
		}
		var unknown []string
		for key := range d.Fields {
			if !catalog.Contains(key) {
				unknown = append(unknown, string(key))
			}
		}
		if len(unknown) > 0 {
			slices.Sort(unknown)
			return errors.NewValidationError("fields", unknown, fmt.Sprintf("document %s has unknown fields %q", d.ID, unknown))
		}
	}
	return nil
}

// Find returns the document with the given id.
func (c *Case) Find(id string) (*Document, error) {
	for i := range c.Documents {
		if c.Documents[i].ID == id {
			return &c.Documents[i], nil
		}
	}
	return nil, errors.NewNotFoundError("document", id)
}
