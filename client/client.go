// Package client drives a single load: parse configuration files, validate
// the descriptors and expose the resulting registry.
//
// A Client is single-threaded. Validating two independent configuration
// sets in parallel is safe only with a separate client for each; nothing is
// shared between them, so no locking is involved.
package client

import (
	"io"

	"github.com/declo/declo/config"
	"github.com/declo/declo/registry"
	"github.com/declo/declo/schema"
	"github.com/declo/declo/validation"
	"github.com/hashicorp/hcl/v2"
	"go.uber.org/zap"
)

// State is the phase of the current load.
type State int

// Load states. Ready and Failed are terminal for a load; the next call to
// Validate restarts at Empty.
const (
	Empty State = iota
	Parsing
	Validating
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Parsing:
		return "parsing"
	case Validating:
		return "validating"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// A Client loads and validates one configuration set at a time.
type Client struct {
	// Schema is the table to validate against. If nil, schema.Builtin() is
	// used.
	Schema schema.Schema

	// Files overrides the filesystem used to resolve file references.
	Files validation.Files

	// AccumulateAll reports every validation error instead of the first.
	AccumulateAll bool

	// Logger, if set, receives progress output.
	Logger *zap.Logger

	state  State
	loader *config.Loader
	reg    *registry.Registry
}

// Validate runs one full load against the files under dir: parse, validate,
// build registry. Any previous load result is discarded first.
//
// On success the returned registry is also available from Registry() until
// the next load.
func (c *Client) Validate(dir string) (*registry.Registry, error) {
	c.state = Empty
	c.reg = nil
	c.loader = &config.Loader{Logger: c.Logger}

	c.state = Parsing
	c.logger().Debug("load started", zap.String("dir", dir))
	descs, err := c.loader.Load(dir)
	if err != nil {
		c.state = Failed
		return nil, err
	}

	c.state = Validating
	v := &validation.Validator{
		Schema:        c.schema(),
		Files:         c.Files,
		AccumulateAll: c.AccumulateAll,
		Logger:        c.Logger,
	}
	reg, err := v.Validate(descs)
	if err != nil {
		c.state = Failed
		return nil, err
	}

	c.state = Ready
	c.reg = reg
	c.logger().Debug("load ready", zap.Int("descriptors", reg.Len()))
	return reg, nil
}

// State returns the phase of the current load.
func (c *Client) State() State { return c.state }

// Registry returns the registry from the last load, or nil if the client is
// not in the Ready state.
func (c *Client) Registry() *registry.Registry {
	if c.state != Ready {
		return nil
	}
	return c.reg
}

// FindRoot locates the configuration root for dir by walking parent
// directories for the root marker. If no marker exists, dir itself is
// returned.
func (c *Client) FindRoot(dir string) (string, error) {
	l := &config.Loader{}
	root, err := l.Root(dir)
	if err != nil {
		return "", err
	}
	if root == "" {
		return dir, nil
	}
	return root, nil
}

// WriteDiagnostics renders parser diagnostics from the current load as a
// human readable report to w. It should be used with the diagnostics of a
// *config.SyntaxError returned from Validate, so the report can quote the
// offending source.
func (c *Client) WriteDiagnostics(w io.Writer, diags hcl.Diagnostics) {
	if c.loader == nil {
		c.loader = &config.Loader{}
	}
	c.loader.WriteDiagnostics(w, diags)
}

func (c *Client) schema() schema.Schema {
	if c.Schema == nil {
		return schema.Builtin()
	}
	return c.Schema
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
