// Package registry holds the validated descriptors for a single load.
//
// A Registry owns its descriptors: it deduplicates (type, name) identities
// as descriptors are merged in across files, and exposes lookup and
// source-order iteration once sealed. A registry is never updated
// incrementally between loads; the next load builds a new one.
package registry

import (
	"fmt"
	"sort"

	"github.com/declo/declo/config"
	"github.com/hashicorp/hcl/v2"
)

// A Registry is the collection of descriptors for one load.
//
// Descriptors are added during validation. After Seal is called the registry
// is read-only; Add panics on a sealed registry.
type Registry struct {
	descs  []*config.Descriptor
	index  map[config.Key]*config.Descriptor
	sealed bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		index: make(map[config.Key]*config.Descriptor),
	}
}

// Add merges a descriptor into the registry. If another descriptor with the
// same (type, name) identity has already been added, a *DuplicateError is
// returned and the registry is left unchanged.
func (r *Registry) Add(d *config.Descriptor) error {
	if r.sealed {
		panic("registry: Add on sealed registry")
	}
	key := d.Key()
	if prev, ok := r.index[key]; ok {
		return &DuplicateError{
			Key:      key,
			First:    prev.DefRange,
			Conflict: d.DefRange,
		}
	}
	r.index[key] = d
	r.descs = append(r.descs, d)
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed = true
}

// Get returns the descriptor with the given type and name. ok is false if no
// such descriptor exists; an absent key is not an error, so callers can
// distinguish an optional reference being unset from a failure.
func (r *Registry) Get(typ, name string) (d *config.Descriptor, ok bool) {
	d, ok = r.index[config.Key{Type: typ, Name: name}]
	return d, ok
}

// All returns the descriptors in source order. The returned slice is a copy;
// modifying it does not affect the registry.
func (r *Registry) All() []*config.Descriptor {
	out := make([]*config.Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// Len returns the number of descriptors in the registry.
func (r *Registry) Len() int {
	return len(r.descs)
}

// Types returns the distinct descriptor types in the registry,
// lexicographically sorted.
func (r *Registry) Types() []string {
	seen := make(map[string]struct{}, len(r.descs))
	var types []string
	for _, d := range r.descs {
		if _, ok := seen[d.Type]; ok {
			continue
		}
		seen[d.Type] = struct{}{}
		types = append(types, d.Type)
	}
	sort.Strings(types)
	return types
}

// A DuplicateError is returned when two descriptors declare the same
// (type, name) identity.
type DuplicateError struct {
	Key      config.Key
	First    hcl.Range // where the identity was first declared
	Conflict hcl.Range // the duplicate declaration
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: duplicate declaration of %s; first declared at %s",
		e.Conflict, e.Key, e.First)
}
