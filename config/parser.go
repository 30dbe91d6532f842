package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// decodeFile converts a parsed file body into descriptors, in the order the
// blocks appear in the source.
func decodeFile(body *hclsyntax.Body, dir string) ([]*Descriptor, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if len(body.Attributes) > 0 {
		attr := sortedAttrs(body.Attributes)[0]
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("Attribute %q is not allowed at the top level; only blocks may appear here.", attr.Name),
			Subject:  attr.NameRange.Ptr(),
			Context:  attr.SrcRange.Ptr(),
		}}
	}

	descs := make([]*Descriptor, 0, len(body.Blocks))
	for _, b := range body.Blocks {
		d, dd := decodeBlock(b, dir)
		diags = append(diags, dd...)
		if dd.HasErrors() {
			return nil, diags
		}
		descs = append(descs, d)
	}
	return descs, diags
}

func decodeBlock(b *hclsyntax.Block, dir string) (*Descriptor, hcl.Diagnostics) {
	d := &Descriptor{Block: b.Type, Type: b.Type, DefRange: b.DefRange()}
	switch {
	case b.Type == "resource":
		if len(b.Labels) != 2 {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid resource block",
				Detail:   `A resource block must have exactly two labels: resource "type" "name".`,
				Subject:  b.DefRange().Ptr(),
			}}
		}
		d.Type = b.Labels[0]
		d.Name = b.Labels[1]
	case len(b.Labels) == 1:
		d.Name = b.Labels[0]
	case len(b.Labels) > 1:
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Extraneous block label",
			Detail:   fmt.Sprintf("A %s block takes at most one label.", b.Type),
			Subject:  b.LabelRanges[1].Ptr(),
			Context:  b.DefRange().Ptr(),
		}}
	}

	attrs, diags := decodeBody(b.Body, dir)
	if diags.HasErrors() {
		return nil, diags
	}
	d.Attributes = attrs
	return d, diags
}

// decodeBody flattens a block body into attributes. Nested blocks become
// block-valued attributes, interleaved with plain attributes at their source
// position.
func decodeBody(body *hclsyntax.Body, dir string) ([]Attribute, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	attrs := make([]Attribute, 0, len(body.Attributes)+len(body.Blocks))

	for _, a := range sortedAttrs(body.Attributes) {
		v, dd := decodeExpr(a.Expr, dir)
		diags = append(diags, dd...)
		if dd.HasErrors() {
			return nil, diags
		}
		attrs = append(attrs, Attribute{
			Name:      a.Name,
			Value:     v,
			Range:     a.SrcRange,
			NameRange: a.NameRange,
		})
	}

	for _, b := range body.Blocks {
		inner, dd := decodeBody(b.Body, dir)
		diags = append(diags, dd...)
		if dd.HasErrors() {
			return nil, diags
		}
		attrs = append(attrs, Attribute{
			Name:      b.Type,
			Labels:    b.Labels,
			Value:     Value{kind: Block, attrs: inner, rng: b.Body.SrcRange},
			Range:     b.DefRange(),
			NameRange: b.TypeRange,
		})
	}

	sort.SliceStable(attrs, func(i, j int) bool {
		return attrs[i].Range.Start.Byte < attrs[j].Range.Start.Byte
	})
	return attrs, diags
}

func decodeExpr(expr hclsyntax.Expression, dir string) (Value, hcl.Diagnostics) {
	switch e := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		return decodeFileRef(e, dir)

	case *hclsyntax.TupleConsExpr:
		var diags hcl.Diagnostics
		elems := make([]Value, 0, len(e.Exprs))
		for _, el := range e.Exprs {
			v, dd := decodeExpr(el, dir)
			diags = append(diags, dd...)
			if dd.HasErrors() {
				return Value{}, diags
			}
			elems = append(elems, v)
		}
		return Value{kind: List, list: elems, rng: e.Range()}, diags

	case *hclsyntax.ObjectConsExpr:
		var diags hcl.Diagnostics
		attrs := make([]Attribute, 0, len(e.Items))
		for _, item := range e.Items {
			key, dd := item.KeyExpr.Value(nil)
			if dd.HasErrors() || key.IsNull() || !key.Type().Equals(cty.String) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid object key",
					Detail:   "Object keys must be static names or strings.",
					Subject:  item.KeyExpr.Range().Ptr(),
					Context:  e.Range().Ptr(),
				})
				return Value{}, diags
			}
			v, vd := decodeExpr(item.ValueExpr, dir)
			diags = append(diags, vd...)
			if vd.HasErrors() {
				return Value{}, diags
			}
			attrs = append(attrs, Attribute{
				Name:      key.AsString(),
				Value:     v,
				Range:     hcl.RangeBetween(item.KeyExpr.Range(), item.ValueExpr.Range()),
				NameRange: item.KeyExpr.Range(),
			})
		}
		return Value{kind: Block, attrs: attrs, rng: e.Range()}, diags

	default:
		v, diags := expr.Value(nil)
		if diags.HasErrors() {
			return Value{}, diags
		}
		return valueFromCty(v, expr.Range())
	}
}

// decodeFileRef captures a file() call as an unresolved reference. The path
// must be a static string; the file itself is not read here.
func decodeFileRef(e *hclsyntax.FunctionCallExpr, dir string) (Value, hcl.Diagnostics) {
	if e.Name != "file" {
		return Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported function",
			Detail:   fmt.Sprintf("The function %q is not supported; only file() references may be used.", e.Name),
			Subject:  e.NameRange.Ptr(),
			Context:  e.Range().Ptr(),
		}}
	}
	if len(e.Args) != 1 {
		return Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid file() reference",
			Detail:   "file() takes exactly one argument: the path to reference.",
			Subject:  e.Range().Ptr(),
		}}
	}
	arg, diags := e.Args[0].Value(nil)
	if diags.HasErrors() {
		return Value{}, diags
	}
	if arg.IsNull() || !arg.Type().Equals(cty.String) {
		return Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid file() reference",
			Detail:   "The file() argument must be a static string.",
			Subject:  e.Args[0].Range().Ptr(),
			Context:  e.Range().Ptr(),
		}}
	}
	return Value{
		kind: File,
		ref:  FileRef{Path: arg.AsString(), Dir: dir},
		rng:  e.Range(),
	}, nil
}

// valueFromCty converts an evaluated cty value. Collections recurse so that
// every element carries its own kind.
func valueFromCty(v cty.Value, rng hcl.Range) (Value, hcl.Diagnostics) {
	if v.IsNull() {
		return Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Null value",
			Detail:   "Attribute values must not be null.",
			Subject:  rng.Ptr(),
		}}
	}
	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return Value{kind: String, val: v, rng: rng}, nil
	case t.Equals(cty.Number):
		return Value{kind: Number, val: v, rng: rng}, nil
	case t.Equals(cty.Bool):
		return Value{kind: Bool, val: v, rng: rng}, nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var elems []Value
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			e, diags := valueFromCty(ev, rng)
			if diags.HasErrors() {
				return Value{}, diags
			}
			elems = append(elems, e)
		}
		return Value{kind: List, list: elems, rng: rng}, nil
	case t.IsObjectType() || t.IsMapType():
		var names []string
		element := make(map[string]cty.Value)
		if t.IsObjectType() {
			for name := range t.AttributeTypes() {
				names = append(names, name)
				element[name] = v.GetAttr(name)
			}
		} else {
			for it := v.ElementIterator(); it.Next(); {
				k, ev := it.Element()
				names = append(names, k.AsString())
				element[k.AsString()] = ev
			}
		}
		sort.Strings(names)
		attrs := make([]Attribute, 0, len(names))
		for _, name := range names {
			e, diags := valueFromCty(element[name], rng)
			if diags.HasErrors() {
				return Value{}, diags
			}
			attrs = append(attrs, Attribute{Name: name, Value: e, Range: rng, NameRange: rng})
		}
		return Value{kind: Block, attrs: attrs, rng: rng}, nil
	default:
		return Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsuitable value",
			Detail:   fmt.Sprintf("A value of type %s cannot be used as an attribute.", t.FriendlyName()),
			Subject:  rng.Ptr(),
		}}
	}
}

func sortedAttrs(attrs hclsyntax.Attributes) []*hclsyntax.Attribute {
	out := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SrcRange.Start.Byte < out[j].SrcRange.Start.Byte
	})
	return out
}
