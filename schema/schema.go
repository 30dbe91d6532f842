// Package schema defines the schema table descriptors are validated
// against: which attributes a block type requires and what kind of value
// each attribute must hold.
package schema

import (
	"sort"

	"github.com/declo/declo/config"
)

// An Attribute describes a single attribute within a block schema.
type Attribute struct {
	// Kind is the value kind the attribute must hold.
	Kind config.Kind

	// Required marks the attribute as mandatory.
	Required bool
}

// A Block describes the expected shape of one descriptor type.
type Block struct {
	// Attributes maps attribute names to their schema.
	Attributes map[string]Attribute

	// Strict rejects attributes that are not listed in Attributes. Loose
	// blocks ignore unknown attributes so provider-specific extras pass
	// through.
	Strict bool
}

// Required returns the names of required attributes, sorted, so validation
// reports missing fields in a stable order.
func (b Block) Required() []string {
	var names []string
	for name, a := range b.Attributes {
		if a.Required {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Names returns all attribute names in the block schema, sorted.
func (b Block) Names() []string {
	names := make([]string, 0, len(b.Attributes))
	for name := range b.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A Schema maps descriptor types to their block schema.
type Schema map[string]Block

// Types returns the descriptor types the schema knows about, sorted.
func (s Schema) Types() []string {
	types := make([]string, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Merge returns a new schema containing the entries of s overlaid with
// other. Entries in other win on conflict. Neither input is modified.
func (s Schema) Merge(other Schema) Schema {
	out := make(Schema, len(s)+len(other))
	for t, b := range s {
		out[t] = b
	}
	for t, b := range other {
		out[t] = b
	}
	return out
}
