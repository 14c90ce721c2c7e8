// Package introspect derives the construction descriptor of a struct type.
//
// A Descriptor records, once per type:
//   - the properties of the type: exported direct fields and getter methods
//     of the pointer method set, keyed by their case-folded name
//   - the chosen constructor: the candidate with the most parameters, the
//     first declared on ties, the implicit new(T) constructor last
//   - the partition of properties into constructor arguments, post
//     construction assignments and inert properties
//
// Descriptors are plain data. Compiling them into a construction routine is
// the job of package factory.
package introspect
