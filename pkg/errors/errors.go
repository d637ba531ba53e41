// Package errors defines the failures docverify reports while loading case
// files, building field catalogs and reading configuration. Every typed
// error maps onto one of the sentinels below so callers can branch with
// errors.Is without knowing the concrete type.
package errors

import (
	"errors"
	"fmt"
)

// Aliases for the standard library helpers so callers need one errors import.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Sentinels.
var (
	// ErrNotFound reports a missing document, field or file.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a case or catalog that breaks a rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat reports a case file or output format docverify cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// NotFoundError names the kind and id of something that was looked up and missing,
// e.g. a document id passed to "docs show".
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports the offending part of a case, catalog or flag.
// Field is the part that failed ("type", "fields", "fail-on-risk") and
// Value what was supplied.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError reports a bad configuration file, environment value or option.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	msg := "config"
	if e.Component != "" {
		msg += " " + e.Component
	}
	return msg + ": " + e.Message
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError reports a case file that could not be decoded. Line is 1-based
// and zero when the decoder gave no position.
type ParseError struct {
	Format  string
	File    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var where string
	switch {
	case e.File != "" && e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.File, e.Line)
	case e.File != "":
		where = e.File
	case e.Line > 0:
		where = fmt.Sprintf("line %d", e.Line)
	default:
		return fmt.Sprintf("decode %s case: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("%s: decode %s case: %s", where, e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError without position information.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError reports a failed filesystem operation on a case or config file.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError creates an IOError.
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidationError reports whether err is, or wraps, ErrInvalidInput.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsUnsupportedFormat reports whether err is, or wraps, ErrUnsupportedFormat.
func IsUnsupportedFormat(err error) bool { return errors.Is(err, ErrUnsupportedFormat) }

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps a decoder error as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
