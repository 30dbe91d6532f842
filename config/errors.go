package config

import "github.com/hashicorp/hcl/v2"

// A SyntaxError is returned when a configuration file cannot be parsed into
// descriptors: unmatched braces, missing '=', illegal tokens or unsupported
// expressions.
type SyntaxError struct {
	Diags hcl.Diagnostics
}

func (e *SyntaxError) Error() string {
	if len(e.Diags) == 0 {
		return "syntax error"
	}
	return e.Diags.Error()
}

// Diagnostics returns the underlying parser diagnostics, carrying the file
// and position of each problem.
func (e *SyntaxError) Diagnostics() hcl.Diagnostics { return e.Diags }
