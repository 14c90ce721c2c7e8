// Package gen provides deterministic Go code generation for builder
// construction routines.
//
// Generation approach uses text/template + goimports for readable,
// reflection-free Go code. One file is written per package; its init
// function registers a routine per struct type with builder.MustRegisterFactory.
//
// Codegen patterns:
//   - Override lookup with a source getter fallback (override.Resolve)
//   - Constructor call, with error wrapping and nil checks
//   - Allocation with new(T) when there is no constructor
//   - Field assignment or SetX call for the remaining properties
package gen
