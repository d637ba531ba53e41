// Package documents defines the document model for vehicle-registration
// case verification: the closed set of document types, the semantic field
// keys extracted from them, the immutable field catalog, and case files that
// bundle a set of documents in YAML, JSON or TOML.
//
// Documents carry already-extracted string values; nothing in this package
// reads scanned images.
package documents
