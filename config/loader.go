package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// RootMarker is the file that marks the root directory of a configuration
// set. The contents of the file are not significant.
const RootMarker = ".declo/root"

// A Loader loads configuration files from disk.
//
// The zero value is ready to load files. The loader retains parsed sources
// so diagnostics that point into them can be rendered with
// WriteDiagnostics. A loader holds the files for one load; create a new one
// for the next load.
type Loader struct {
	// Logger, if set, receives debug output about processed files.
	Logger *zap.Logger

	parser *hclparse.Parser
}

// Load parses all config files under root, traversing into sub directories.
// If root is a single file, only that file is loaded.
//
// Descriptors are returned in deterministic source order: files sorted by
// path, blocks in the order they appear within each file. Returns a
// *SyntaxError if any file is malformed.
func (l *Loader) Load(root string) ([]*Descriptor, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, "stat config path")
	}
	if !info.IsDir() {
		return l.loadPaths([]string{root})
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isConfigFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walk config directory")
	}
	sort.Strings(paths)
	return l.loadPaths(paths)
}

func (l *Loader) loadPaths(paths []string) ([]*Descriptor, error) {
	if l.parser == nil {
		l.parser = hclparse.NewParser()
	}
	var descs []*Descriptor
	for _, path := range paths {
		f, diags := l.parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, &SyntaxError{Diags: diags}
		}
		body, ok := f.Body.(*hclsyntax.Body)
		if !ok {
			return nil, errors.Errorf("%s: not a native syntax file", path)
		}
		dd, diags := decodeFile(body, filepath.Dir(path))
		if diags.HasErrors() {
			return nil, &SyntaxError{Diags: diags}
		}
		l.logger().Debug("parsed config file",
			zap.String("file", path),
			zap.Int("blocks", len(dd)))
		descs = append(descs, dd...)
	}
	return descs, nil
}

// Root finds the root directory of a configuration set. The returned string
// is the absolute path on disk.
//
// The root directory is determined by the file .declo/root existing. If the
// given dir does not contain the marker, parent directories are traversed
// until one is found.
//
// An error is returned if the dir cannot be opened. An empty string is
// returned if no root was found.
func (l *Loader) Root(dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", err
	}
	marker := filepath.Join(dir, filepath.FromSlash(RootMarker))
	stat, err := os.Stat(marker)
	if err == nil && !stat.IsDir() {
		return filepath.Abs(dir)
	}

	parent := filepath.Dir(dir)
	if parent == dir || parent[len(parent)-1] == filepath.Separator {
		return "", nil
	}
	return l.Root(parent)
}

// WriteDiagnostics writes diagnostics as a human readable string to w. It
// should only be used for diagnostics that originate from files loaded by
// this Loader.
//
// If a TTY is attached, the output is colorized and wraps at the terminal
// width. Otherwise, wrap occurs at 78 characters and the output contains no
// ANSI escape characters.
func (l *Loader) WriteDiagnostics(w io.Writer, diags hcl.Diagnostics) {
	var files map[string]*hcl.File
	if l.parser != nil {
		files = l.parser.Files()
	}
	cols, _, err := term.GetSize(0)
	if err != nil {
		cols = 78
	}
	color := term.IsTerminal(0)
	wr := hcl.NewDiagnosticTextWriter(w, files, uint(cols), color)
	if err := wr.WriteDiagnostics(diags); err != nil {
		fmt.Fprintln(w, err)
	}
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func isConfigFile(filename string) bool {
	ext := filepath.Ext(filename)
	return ext == ".hcl" || ext == ".tf"
}
