package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Defaults.
const (
	DefaultVersion           = "1"
	DefaultOutput            = "builders.gen.go"
	DefaultConstructorPrefix = "New"
	DefaultFileName          = "objbuild.yaml"
)

var ErrInvalid = errors.New("invalid configuration")

// File is the root of the configuration file.
type File struct {
	Version  string    `yaml:"version"`
	Packages []Package `yaml:"packages"`

	// Dir is the directory package paths are relative to. It is set by
	// LoadFile and not serialized.
	Dir string `yaml:"-"`
}

// Package configures generation for one Go package.
type Package struct {
	// Path is a package pattern matching exactly one package.
	Path string `yaml:"path"`
	// Output is the name of the generated file inside the package directory.
	Output string `yaml:"output,omitempty"`
	// Types restricts generation to the named struct types.
	Types []string `yaml:"types,omitempty"`
	// ConstructorPrefix selects constructor candidates by function name.
	ConstructorPrefix string `yaml:"constructor_prefix,omitempty"`
	// Constructors lists the constructor candidates per type, in tie-break
	// order, replacing prefix discovery for that type.
	Constructors map[string][]string `yaml:"constructors,omitempty"`
}

// Includes reports whether the type name is selected by the Types filter.
func (p *Package) Includes(name string) bool {
	return len(p.Types) == 0 || slices.Contains(p.Types, name)
}

// Validate checks the file for structural errors.
func (f *File) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(f.Packages))

	for i, p := range f.Packages {
		switch {
		case p.Path == "":
			errs = append(errs, fmt.Errorf("packages[%d]: path is required", i))
		case seen[p.Path]:
			errs = append(errs, fmt.Errorf("packages[%d]: duplicate path %q", i, p.Path))
		}

		seen[p.Path] = true

		if p.Output != "" && (filepath.Base(p.Output) != p.Output || !strings.HasSuffix(p.Output, ".go")) {
			errs = append(errs, fmt.Errorf("packages[%d]: output %q must be a .go file name", i, p.Output))
		}

		for typ := range p.Constructors {
			if !p.Includes(typ) {
				errs = append(errs, fmt.Errorf("packages[%d]: constructors for %s, which is filtered out", i, typ))
			}
		}
	}

	if len(f.Packages) == 0 {
		errs = append(errs, errors.New("no packages configured"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}
