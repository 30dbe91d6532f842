// Package validation checks an ordered descriptor sequence against a schema
// table and builds the registry for the load.
//
// Validation runs in source order and is fail-fast by default: the first
// error encountered is returned. Setting AccumulateAll collects every error
// instead; this changes reporting only, never the pass/fail outcome.
package validation

import (
	"os"

	"github.com/declo/declo/config"
	"github.com/declo/declo/registry"
	"github.com/declo/declo/schema"
	"github.com/declo/declo/suggest"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Files supplies existence and readability checks for file references. The
// capability is external to the validator so tests and embedders can
// substitute their own filesystem.
type Files interface {
	// Readable returns an error if the given path does not exist or cannot
	// be opened for reading.
	Readable(path string) error
}

// osFiles checks readability against the real filesystem.
type osFiles struct{}

func (osFiles) Readable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

// A Validator validates descriptors against a schema table.
type Validator struct {
	// Schema is the table of known descriptor types. Descriptors with a
	// type not present in the table fail with *UnknownTypeError.
	Schema schema.Schema

	// Files checks file references. If nil, the OS filesystem is used.
	Files Files

	// AccumulateAll collects all validation errors instead of stopping at
	// the first one. The combined error unwraps to the individual errors.
	AccumulateAll bool

	// Logger, if set, receives debug output.
	Logger *zap.Logger
}

// Validate checks every descriptor in order and merges them into a new
// registry. On success the returned registry is sealed; no registry is
// returned on failure, partial or otherwise.
//
// Within a single descriptor, problems are reported in a fixed order:
// unknown type, duplicate identity, missing required attributes (by name),
// then per-attribute checks in source order.
func (v *Validator) Validate(descs []*config.Descriptor) (*registry.Registry, error) {
	reg := registry.New()
	var errs []error
	for _, d := range descs {
		found := v.check(d, reg)
		errs = append(errs, found...)
		if len(errs) > 0 && !v.AccumulateAll {
			return nil, errs[0]
		}
		if len(found) == 0 {
			v.logger().Debug("descriptor valid", zap.String("id", d.Key().String()))
		}
	}
	if len(errs) > 0 {
		return nil, multierr.Combine(errs...)
	}
	reg.Seal()
	v.logger().Debug("validation complete", zap.Int("descriptors", reg.Len()))
	return reg, nil
}

func (v *Validator) check(d *config.Descriptor, reg *registry.Registry) []error {
	bs, ok := v.Schema[d.Type]
	if !ok {
		return []error{&UnknownTypeError{
			Type:       d.Type,
			Suggestion: suggest.Closest(d.Type, v.Schema.Types()),
			Subject:    d.DefRange,
		}}
	}

	var errs []error
	if err := reg.Add(d); err != nil {
		errs = append(errs, err)
	}

	for _, name := range bs.Required() {
		if _, ok := d.Attr(name); !ok {
			errs = append(errs, &MissingFieldError{
				Key:     d.Key(),
				Field:   name,
				Subject: d.DefRange,
			})
		}
	}

	for _, a := range d.Attributes {
		as, known := bs.Attributes[a.Name]
		if !known {
			if bs.Strict {
				errs = append(errs, &UnknownFieldError{
					Key:        d.Key(),
					Field:      a.Name,
					Suggestion: suggest.Closest(a.Name, bs.Names()),
					Subject:    a.NameRange,
				})
			}
			continue
		}
		if got := a.Value.Kind(); got != as.Kind {
			errs = append(errs, &TypeMismatchError{
				Key:     d.Key(),
				Field:   a.Name,
				Want:    as.Kind,
				Got:     got,
				Subject: a.Range,
			})
			continue
		}
		errs = append(errs, v.checkFiles(a.Value)...)
	}
	return errs
}

// checkFiles resolves every file reference within a value, descending into
// lists and nested blocks. This is the only point where referenced paths
// touch the filesystem; parsing never does.
func (v *Validator) checkFiles(val config.Value) []error {
	switch val.Kind() {
	case config.File:
		ref, _ := val.AsFileRef()
		if err := v.files().Readable(ref.Resolve()); err != nil {
			return []error{&UnreadableFileError{
				Path:     ref.Path,
				Resolved: ref.Resolve(),
				Err:      err,
				Subject:  val.Range(),
			}}
		}
	case config.List:
		var errs []error
		for _, e := range val.Elements() {
			errs = append(errs, v.checkFiles(e)...)
		}
		return errs
	case config.Block:
		var errs []error
		for _, a := range val.Attributes() {
			errs = append(errs, v.checkFiles(a.Value)...)
		}
		return errs
	}
	return nil
}

func (v *Validator) files() Files {
	if v.Files == nil {
		return osFiles{}
	}
	return v.Files
}

func (v *Validator) logger() *zap.Logger {
	if v.Logger == nil {
		return zap.NewNop()
	}
	return v.Logger
}
