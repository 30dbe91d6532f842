package schema_test

import (
	"testing"

	"github.com/declo/declo/config"
	"github.com/declo/declo/schema"
	"github.com/google/go-cmp/cmp"
)

func TestBlock_Required(t *testing.T) {
	b := schema.Block{
		Attributes: map[string]schema.Attribute{
			"zebra":  {Kind: config.String, Required: true},
			"apple":  {Kind: config.String, Required: true},
			"middle": {Kind: config.Number},
		},
	}
	got := b.Required()
	want := []string{"apple", "zebra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Required() (-want +got)\n%s", diff)
	}
}

func TestSchema_Merge(t *testing.T) {
	base := schema.Schema{
		"provider": {Attributes: map[string]schema.Attribute{
			"region": {Kind: config.String, Required: true},
		}},
		"key_pair": {Attributes: map[string]schema.Attribute{
			"key_name": {Kind: config.String, Required: true},
		}},
	}
	override := schema.Schema{
		"key_pair": {Attributes: map[string]schema.Attribute{
			"key_name": {Kind: config.String},
		}},
		"custom": {Attributes: map[string]schema.Attribute{
			"setting": {Kind: config.Bool},
		}},
	}

	merged := base.Merge(override)

	if got := merged.Types(); !cmp.Equal(got, []string{"custom", "key_pair", "provider"}) {
		t.Errorf("Types() = %v", got)
	}
	if merged["key_pair"].Attributes["key_name"].Required {
		t.Errorf("Merge did not overwrite key_pair from other")
	}
	// inputs unchanged
	if !base["key_pair"].Attributes["key_name"].Required {
		t.Errorf("Merge modified receiver")
	}
}

func TestBuiltin(t *testing.T) {
	s := schema.Builtin()

	kp, ok := s["key_pair"]
	if !ok {
		t.Fatalf("builtin schema has no key_pair type")
	}
	if !kp.Attributes["public_key"].Required {
		t.Errorf("key_pair public_key should be required")
	}
	if kp.Attributes["public_key"].Kind != config.File {
		t.Errorf("key_pair public_key kind = %s, want file", kp.Attributes["public_key"].Kind)
	}
	if !s["provider"].Attributes["region"].Required {
		t.Errorf("provider region should be required")
	}
}
