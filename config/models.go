package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// A Key is the identity of a descriptor within one load.
type Key struct {
	Type string
	Name string
}

func (k Key) String() string {
	if k.Name == "" {
		return k.Type
	}
	return fmt.Sprintf("%s.%s", k.Type, k.Name)
}

// A Descriptor is one declared configuration block.
//
// The identity of a descriptor is its (type, name) pair. For resource blocks
// the type is the first label and the name the second:
//
//	resource "key_pair" "deploy" {}   // key_pair.deploy
//
// Other blocks use the block keyword as the type and the label, if any, as
// the name:
//
//	provider "aws" {}                 // provider.aws
//	terraform {}                      // terraform
type Descriptor struct {
	// Block is the keyword the block was declared with, such as "resource"
	// or "provider".
	Block string

	// Type and Name identify the descriptor.
	Type string
	Name string

	// Attributes holds the block contents in source order. Nested blocks
	// appear as block-valued attributes, interleaved with plain attributes
	// at the position they were written.
	Attributes []Attribute

	// DefRange is the range of the block header in the source file.
	DefRange hcl.Range
}

// Key returns the descriptor's (type, name) identity.
func (d *Descriptor) Key() Key {
	return Key{Type: d.Type, Name: d.Name}
}

// Attr returns the named attribute. ok is false if the descriptor has no
// such attribute.
func (d *Descriptor) Attr(name string) (attr Attribute, ok bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// An Attribute is a single named value within a descriptor or nested block.
type Attribute struct {
	Name  string
	Value Value

	// Labels holds the labels of a nested block, for block-valued
	// attributes declared as blocks with labels. Empty otherwise.
	Labels []string

	// Range covers the whole attribute, NameRange just the name.
	Range     hcl.Range
	NameRange hcl.Range
}
