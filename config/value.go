package config

import (
	"math/big"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// A Kind discriminates the variants of an attribute Value.
type Kind int

// Value kinds.
const (
	Invalid Kind = iota
	String
	Number
	Bool
	List
	Block
	File
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case List:
		return "list"
	case Block:
		return "block"
	case File:
		return "file"
	default:
		return "invalid"
	}
}

// A Value is a single attribute value: a scalar, a list, a nested block body
// or an unresolved file reference.
//
// Scalars are backed by cty values, so numbers keep arbitrary precision.
// File references are not resolved when the value is built; they carry the
// path as written plus the directory of the declaring file so a validator
// can resolve them later.
type Value struct {
	kind  Kind
	val   cty.Value
	list  []Value
	attrs []Attribute
	ref   FileRef
	rng   hcl.Range
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// Range returns the source range the value was parsed from.
func (v Value) Range() hcl.Range { return v.rng }

// Scalar returns the underlying cty value for string, number and bool
// values. It returns cty.NilVal for all other kinds.
func (v Value) Scalar() cty.Value {
	switch v.kind {
	case String, Number, Bool:
		return v.val
	default:
		return cty.NilVal
	}
}

// AsString returns the string value. ok is false if the value is not a
// string.
func (v Value) AsString() (str string, ok bool) {
	if v.kind != String {
		return "", false
	}
	return v.val.AsString(), true
}

// AsNumber returns the numeric value. ok is false if the value is not a
// number.
func (v Value) AsNumber() (n *big.Float, ok bool) {
	if v.kind != Number {
		return nil, false
	}
	return v.val.AsBigFloat(), true
}

// AsBool returns the boolean value. ok is false if the value is not a bool.
func (v Value) AsBool() (b, ok bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.val.True(), true
}

// Elements returns the element values of a list. The result is nil for
// non-list values.
func (v Value) Elements() []Value {
	if v.kind != List {
		return nil
	}
	return v.list
}

// Attributes returns the entries of a nested block or object value in source
// order. The result is nil for other kinds.
func (v Value) Attributes() []Attribute {
	if v.kind != Block {
		return nil
	}
	return v.attrs
}

// AsFileRef returns the unresolved file reference. ok is false if the value
// is not a file reference.
func (v Value) AsFileRef() (ref FileRef, ok bool) {
	if v.kind != File {
		return FileRef{}, false
	}
	return v.ref, true
}

// A FileRef is a file() reference captured at parse time. The referenced
// path is not touched until a validator resolves it.
type FileRef struct {
	// Path is the path exactly as written in the configuration.
	Path string

	// Dir is the directory containing the file the reference was declared
	// in. Relative paths resolve against it.
	Dir string
}

// Resolve returns the path to check on disk. Absolute paths are returned
// unchanged; relative paths are joined to the declaring file's directory.
func (r FileRef) Resolve() string {
	if filepath.IsAbs(r.Path) {
		return r.Path
	}
	return filepath.Join(r.Dir, r.Path)
}
