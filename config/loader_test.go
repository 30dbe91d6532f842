package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/declo/declo/config"
	"github.com/google/go-cmp/cmp"
)

func TestLoader_Load(t *testing.T) {
	l := &config.Loader{}
	descs, err := l.Load("testdata/valid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Files are loaded in path order, so keys.tf comes first.
	var got []config.Key
	for _, d := range descs {
		got = append(got, d.Key())
	}
	want := []config.Key{
		{Type: "key_pair", Name: "deploy"},
		{Type: "terraform"},
		{Type: "provider", Name: "aws"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() keys (-want +got)\n%s", diff)
	}
}

func TestLoader_Load_attributes(t *testing.T) {
	l := &config.Loader{}
	descs, err := l.Load("testdata/valid")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var provider, keypair *config.Descriptor
	for _, d := range descs {
		switch d.Type {
		case "provider":
			provider = d
		case "key_pair":
			keypair = d
		}
	}
	if provider == nil || keypair == nil {
		t.Fatalf("descriptors not loaded: provider = %v, key_pair = %v", provider, keypair)
	}

	region, ok := provider.Attr("region")
	if !ok {
		t.Fatalf("provider has no region attribute")
	}
	if str, _ := region.Value.AsString(); str != "us-west-2" {
		t.Errorf("region = %q, want %q", str, "us-west-2")
	}

	pub, ok := keypair.Attr("public_key")
	if !ok {
		t.Fatalf("key_pair has no public_key attribute")
	}
	if pub.Value.Kind() != config.File {
		t.Fatalf("public_key kind = %s, want file", pub.Value.Kind())
	}
	ref, _ := pub.Value.AsFileRef()
	if ref.Path != "./id_rsa.pub" {
		t.Errorf("public_key path = %q, want %q", ref.Path, "./id_rsa.pub")
	}
	if ref.Dir != filepath.Join("testdata", "valid") {
		t.Errorf("public_key dir = %q, want %q", ref.Dir, filepath.Join("testdata", "valid"))
	}
}

func TestLoader_Load_syntaxError(t *testing.T) {
	l := &config.Loader{}
	_, err := l.Load("testdata/invalid")
	var syn *config.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("Load() error = %v, want *SyntaxError", err)
	}
	if len(syn.Diagnostics()) == 0 {
		t.Errorf("SyntaxError has no diagnostics")
	}
}

func TestLoader_Load_notFound(t *testing.T) {
	l := &config.Loader{}
	if _, err := l.Load("testdata/nonexisting"); err == nil {
		t.Errorf("Load() error = nil, want error for missing path")
	}
}

func TestLoader_Root(t *testing.T) {
	rooted, err := filepath.Abs(filepath.Join("testdata", "rooted"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		want    string
		wantErr bool
	}{
		{"Exact", "testdata/rooted", rooted, false},
		{"Subdir", "testdata/rooted/src", rooted, false},
		{"NoRoot", os.TempDir(), "", false},
		{"NotFound", "nonexisting", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &config.Loader{}
			got, err := l.Root(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("Loader.Root() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Loader.Root() = %v, want %v", got, tt.want)
			}
		})
	}
}
