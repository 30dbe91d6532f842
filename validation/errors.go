package validation

import (
	"fmt"

	"github.com/declo/declo/config"
	"github.com/hashicorp/hcl/v2"
)

// An UnknownTypeError is returned when a descriptor's type has no entry in
// the schema table.
type UnknownTypeError struct {
	Type       string
	Suggestion string // closest known type, if any
	Subject    hcl.Range
}

func (e *UnknownTypeError) Error() string {
	msg := fmt.Sprintf("%s: unknown type %q", e.Subject, e.Type)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// A MissingFieldError is returned when a schema-required attribute is absent
// from a descriptor.
type MissingFieldError struct {
	Key     config.Key
	Field   string
	Subject hcl.Range
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required attribute %q in %s", e.Subject, e.Field, e.Key)
}

// A TypeMismatchError is returned when an attribute's value kind disagrees
// with the schema.
type TypeMismatchError struct {
	Key     config.Key
	Field   string
	Want    config.Kind
	Got     config.Kind
	Subject hcl.Range
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: attribute %q in %s must be %s, got %s",
		e.Subject, e.Field, e.Key, e.Want, e.Got)
}

// An UnknownFieldError is returned when a strict block contains an attribute
// the schema does not list.
type UnknownFieldError struct {
	Key        config.Key
	Field      string
	Suggestion string // closest known attribute, if any
	Subject    hcl.Range
}

func (e *UnknownFieldError) Error() string {
	msg := fmt.Sprintf("%s: unsupported attribute %q in %s", e.Subject, e.Field, e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

// An UnreadableFileError is returned when a file reference points to a path
// that does not exist or cannot be read.
type UnreadableFileError struct {
	Path     string // path as written in the configuration
	Resolved string // path that was checked on disk
	Err      error
	Subject  hcl.Range
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("%s: cannot read %q: %v", e.Subject, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *UnreadableFileError) Unwrap() error { return e.Err }
