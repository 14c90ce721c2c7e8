// Package match provides property-name keys and near-miss suggestions.
//
// Property names are compared case-insensitively: Key folds a Go identifier
// (field, method or constructor parameter name) into the key used by
// descriptors, override stores and generated code. When a name has no
// property, type or constructor with the same key, Suggest ranks the
// existing names by edit distance so errors and diagnostics can say
// "did you mean".
package match
