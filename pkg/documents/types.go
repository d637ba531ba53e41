package documents

import (
	"strings"

	"github.com/agentstation/docverify/pkg/errors"
)

// DocType tags a document with its category.
type DocType string

// Document categories.
const (
	DocTypeForm20             DocType = "Form20"
	DocTypeForm21             DocType = "Form21"
	DocTypeForm22             DocType = "Form22"
	DocTypeInvoice            DocType = "Invoice"
	DocTypeRTOSlip            DocType = "RTO Slip"
	DocTypePAN                DocType = "PAN"
	DocTypeAadhaar            DocType = "Aadhaar"
	DocTypeInsurance          DocType = "Insurance"
	DocTypeAccessoriesInvoice DocType = "Accessories Invoice"
)

var allDocTypes = []DocType{
	DocTypeForm20,
	DocTypeForm21,
	DocTypeForm22,
	DocTypeInvoice,
	DocTypeRTOSlip,
	DocTypePAN,
	DocTypeAadhaar,
	DocTypeInsurance,
	DocTypeAccessoriesInvoice,
}

// AllDocTypes returns every document category in declaration order.
func AllDocTypes() []DocType {
	out := make([]DocType, len(allDocTypes))
	copy(out, allDocTypes)
	return out
}

// String returns the string representation of a document type.
func (t DocType) String() string {
	return string(t)
}

// IsValid reports whether t belongs to the closed set of categories.
func (t DocType) IsValid() bool {
	for _, known := range allDocTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseDocType resolves s to a DocType ignoring case and surrounding or
// repeated whitespace, so "rto  slip" parses as DocTypeRTOSlip.
func ParseDocType(s string) (DocType, error) {
	want := strings.Join(strings.Fields(s), " ")
	for _, known := range allDocTypes {
		if strings.EqualFold(want, string(known)) {
			return known, nil
		}
	}
	return "", errors.NewValidationError("type", s, "unknown document type")
}

// UnmarshalText lets case files spell types loosely ("invoice", "rto  slip").
// Unknown names are kept as written so Case.Validate can report them
// against the document id.
func (t *DocType) UnmarshalText(text []byte) error {
	parsed, err := ParseDocType(string(text))
	if err != nil {
		*t = DocType(strings.TrimSpace(string(text)))
		return nil
	}
	*t = parsed
	return nil
}

// FieldKey names a semantic field extracted from documents.
type FieldKey string

// Semantic fields.
const (
	FieldBuyerName       FieldKey = "buyerName"
	FieldFatherName      FieldKey = "fatherName"
	FieldPAN             FieldKey = "pan"
	FieldAadhaar         FieldKey = "aadhaar"
	FieldVIN             FieldKey = "vin"
	FieldEngine          FieldKey = "engine"
	FieldModel           FieldKey = "model"
	FieldColor           FieldKey = "color"
	FieldAddress         FieldKey = "address"
	FieldSaleAmount      FieldKey = "saleAmount"
	FieldMVTax           FieldKey = "mvTax"
	FieldInvoiceDate     FieldKey = "invoiceDate"
	FieldSaleDate        FieldKey = "saleDate"
	FieldInsurancePolicy FieldKey = "insurancePolicy"
	FieldInsuranceStart  FieldKey = "insuranceStart"
	FieldInsuranceEnd    FieldKey = "insuranceEnd"
)

// String returns the string representation of a field key.
func (k FieldKey) String() string {
	return string(k)
}

// Document is one uploaded document with its extracted field values.
type Document struct {
	ID         string              `json:"id" yaml:"id" toml:"id"`
	Type       DocType             `json:"type" yaml:"type" toml:"type"`
	Title      string              `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Pages      int                 `json:"pages" yaml:"pages" toml:"pages"`
	Fields     map[FieldKey]string `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
	Preview    string              `json:"preview,omitempty" yaml:"preview,omitempty" toml:"preview,omitempty"`
	SourceHint string              `json:"source_hint,omitempty" yaml:"source_hint,omitempty" toml:"source_hint,omitempty"`
}

// Value returns the raw value of key. An empty string counts as absent.
func (d *Document) Value(key FieldKey) (string, bool) {
	v, ok := d.Fields[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// DisplayName is the title when known, otherwise the source file name,
// otherwise "<id>.pdf".
func (d *Document) DisplayName() string {
	switch {
	case d.Title != "":
		return d.Title
	case d.SourceHint != "":
		return d.SourceHint
	default:
		return d.ID + ".pdf"
	}
}
