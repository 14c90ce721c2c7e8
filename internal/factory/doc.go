// Package factory compiles and caches one construction routine per target
// type.
//
// A routine is a Func: given the override store of a builder and an optional
// source instance, it resolves every constructor argument and settable
// property (override, then source, then zero value), calls the constructor
// and assigns the remaining properties.
//
// Routines come from two places. Generated code installs them ahead of time
// with Install. Otherwise For compiles one from the type's descriptor on first
// use. Either way the cache holds exactly one routine per type for the
// lifetime of the process, and a failed compilation is remembered: every later
// For of that type returns the same error.
package factory
