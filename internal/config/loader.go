package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile loads, parses and validates the configuration file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses and validates YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// ForPackage builds a single-package File, as configured by CLI flags.
func ForPackage(pkg Package) (*File, error) {
	f := &File{Packages: []Package{pkg}, Dir: "."}

	applyDefaults(f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	for i := range f.Packages {
		p := &f.Packages[i]

		if p.Output == "" {
			p.Output = DefaultOutput
		}

		if p.ConstructorPrefix == "" {
			p.ConstructorPrefix = DefaultConstructorPrefix
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
