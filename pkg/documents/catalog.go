package documents

import (
	"github.com/agentstation/docverify/pkg/errors"
)

// Field describes one semantic field of the catalog.
type Field struct {
	Key       FieldKey `json:"key" yaml:"key"`
	Label     string   `json:"label" yaml:"label"`
	Important bool     `json:"important,omitempty" yaml:"important,omitempty"`
}

// Catalog is the ordered, immutable list of fields that reconciliation runs
// over. Build one with NewCatalog or use DefaultCatalog; there are no
// mutators, so a *Catalog can be shared freely.
type Catalog struct {
	fields []Field
	index  map[FieldKey]int
}

// NewCatalog validates fields and returns a catalog that preserves their order.
func NewCatalog(fields ...Field) (*Catalog, error) {
	c := &Catalog{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[FieldKey]int, len(fields)),
	}
	for i, f := range fields {
		if f.Key == "" {
			return nil, errors.NewValidationError("key", i, "field key cannot be empty")
		}
		if f.Label == "" {
			return nil, errors.NewValidationError("label", f.Key, "field label cannot be empty")
		}
		if _, dup := c.index[f.Key]; dup {
			return nil, errors.NewValidationError("key", f.Key, "duplicate field key")
		}
		c.index[f.Key] = len(c.fields)
		c.fields = append(c.fields, f)
	}
	return c, nil
}

// MustCatalog is NewCatalog for static field lists; it panics on invalid input.
func MustCatalog(fields ...Field) *Catalog {
	c, err := NewCatalog(fields...)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultFields = []Field{
	{Key: FieldVIN, Label: "Chassis / VIN", Important: true},
	{Key: FieldEngine, Label: "Engine No.", Important: true},
	{Key: FieldBuyerName, Label: "Buyer Name"},
	{Key: FieldFatherName, Label: "Father's Name"},
	{Key: FieldPAN, Label: "PAN"},
	{Key: FieldAadhaar, Label: "Aadhaar"},
	{Key: FieldModel, Label: "Model"},
	{Key: FieldColor, Label: "Colour"},
	{Key: FieldAddress, Label: "Address"},
	{Key: FieldSaleAmount, Label: "Sale Amount"},
	{Key: FieldMVTax, Label: "MV Tax"},
	{Key: FieldInvoiceDate, Label: "Invoice Date"},
	{Key: FieldSaleDate, Label: "Sale Date"},
	{Key: FieldInsurancePolicy, Label: "Insurance Policy"},
	{Key: FieldInsuranceStart, Label: "Insurance Start"},
	{Key: FieldInsuranceEnd, Label: "Insurance End"},
}

// DefaultCatalog returns the registration field catalog.
func DefaultCatalog() *Catalog {
	return MustCatalog(defaultFields...)
}

// Fields returns a copy of the catalog fields in order.
func (c *Catalog) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Keys returns the field keys in catalog order.
func (c *Catalog) Keys() []FieldKey {
	keys := make([]FieldKey, len(c.fields))
	for i, f := range c.fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of fields.
func (c *Catalog) Len() int {
	return len(c.fields)
}

// Lookup returns the field for key.
func (c *Catalog) Lookup(key FieldKey) (Field, bool) {
	i, ok := c.index[key]
	if !ok {
		return Field{}, false
	}
	return c.fields[i], true
}

// Contains reports whether key is part of the catalog.
func (c *Catalog) Contains(key FieldKey) bool {
	_, ok := c.index[key]
	return ok
}

// Label returns the human-readable label for key, or the key itself when
// the catalog does not know it.
func (c *Catalog) Label(key FieldKey) string {
	if f, ok := c.Lookup(key); ok {
		return f.Label
	}
	return string(key)
}
