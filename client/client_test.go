package client_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/declo/declo/client"
	"github.com/declo/declo/config"
	"github.com/declo/declo/validation"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestClient_Validate_ready(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.tf": `
provider "aws" {
  profile = "udacity"
  region  = "us-west-2"
}

resource "key_pair" "k" {
  key_name   = "udacity-dend-4-key"
  public_key = file("./id_rsa.pub")
}
`,
		"id_rsa.pub": "key material",
	})

	cli := &client.Client{}
	if got := cli.State(); got != client.Empty {
		t.Errorf("initial State() = %s, want empty", got)
	}

	reg, err := cli.Validate(dir)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := cli.State(); got != client.Ready {
		t.Errorf("State() = %s, want ready", got)
	}
	if cli.Registry() != reg {
		t.Errorf("Registry() does not return the validated registry")
	}
	if _, ok := reg.Get("key_pair", "k"); !ok {
		t.Errorf("key_pair.k missing from registry")
	}
}

func TestClient_Validate_failed(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		check func(t *testing.T, err error)
	}{
		{
			"Syntax",
			map[string]string{"main.tf": `provider "aws" {`},
			func(t *testing.T, err error) {
				var syn *config.SyntaxError
				if !errors.As(err, &syn) {
					t.Errorf("error = %v, want *SyntaxError", err)
				}
			},
		},
		{
			"Schema",
			map[string]string{"main.tf": `provider "aws" {}`},
			func(t *testing.T, err error) {
				var missing *validation.MissingFieldError
				if !errors.As(err, &missing) {
					t.Errorf("error = %v, want *MissingFieldError", err)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFiles(t, tt.files)
			cli := &client.Client{}

			_, err := cli.Validate(dir)
			if err == nil {
				t.Fatalf("Validate() succeeded, want error")
			}
			tt.check(t, err)

			if got := cli.State(); got != client.Failed {
				t.Errorf("State() = %s, want failed", got)
			}
			if cli.Registry() != nil {
				t.Errorf("Registry() = %v after failure, want nil", cli.Registry())
			}
		})
	}
}

func TestClient_Validate_restartsLoad(t *testing.T) {
	bad := writeFiles(t, map[string]string{"main.tf": `provider "aws" {}`})
	good := writeFiles(t, map[string]string{
		"main.tf": `
provider "aws" {
  region = "us-west-2"
}
`,
	})

	cli := &client.Client{}
	if _, err := cli.Validate(bad); err == nil {
		t.Fatalf("Validate(bad) succeeded")
	}
	if cli.State() != client.Failed {
		t.Fatalf("State() = %s, want failed", cli.State())
	}

	// A failed load is terminal for that load only; the next one starts
	// fresh.
	reg, err := cli.Validate(good)
	if err != nil {
		t.Fatalf("Validate(good) error = %v", err)
	}
	if cli.State() != client.Ready {
		t.Errorf("State() = %s, want ready", cli.State())
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d descriptors, want 1", reg.Len())
	}
}

func TestClient_FindRoot(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		".declo/root": "",
		"src/main.tf": `provider "aws" { region = "us-west-2" }`,
	})

	cli := &client.Client{}
	root, err := cli.FindRoot(filepath.Join(dir, "src"))
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("FindRoot() = %s, want %s", got, want)
	}
}

func TestClient_FindRoot_noMarker(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.tf": `provider "aws" { region = "us-west-2" }`,
	})

	cli := &client.Client{}
	root, err := cli.FindRoot(dir)
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	if root != dir {
		t.Errorf("FindRoot() = %s, want %s", root, dir)
	}
}
