// Package config loads the objbuild-gen configuration file.
//
// The file lists the packages to generate construction routines for:
//
//	version: "1"
//	packages:
//	  - path: ./examples/filekey
//	    output: builders.gen.go        # default
//	    types: [ImmutableFileKey]      # optional filter, default all structs
//	    constructor_prefix: New        # default
//	    constructors:                  # optional explicit candidates
//	      ImmutableFileKey: [NewImmutableFileKey]
//
// Package paths are resolved relative to the directory of the file.
// Without explicit constructors, every exported function whose name starts
// with the constructor prefix and that returns T, *T, (T, error) or
// (*T, error) is a candidate for T.
package config
