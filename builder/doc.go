// Package builder assembles instances of struct types from named property
// values.
//
// A Builder collects property values, optionally on top of an existing
// source instance, and constructs a new instance on Build:
//
//	key, err := builder.New[filekey.ImmutableFileKey]().
//		Set("accountId", 123).
//		Set("createTime", time.Now()).
//		Build()
//
// Property names are case-insensitive. The first value set for a property
// wins; later sets of the same property are ignored. A property that is not
// set takes the value of the source instance, or its zero value when the
// builder has no source.
//
// Properties can also be named through accessors checked by the compiler:
//
//	b := builder.From(&key)
//	builder.Getter(b, (*filekey.ImmutableFileKey).AccountID, ptr(234))
//	builder.Field(b, func(k *filekey.MutableFileKey) **int { return &k.AccountID }, ptr(234))
//
// The first Build of a type derives how to construct it: the registered
// constructor with the most parameters (see RegisterConstructor), falling
// back to new(T). Constructor parameters are matched to properties by name;
// the remaining settable properties are assigned after construction. The
// resulting routine is cached for the lifetime of the process. Types
// processed by objbuild-gen register generated routines instead and are
// never inspected at run time.
//
// Errors found by Set and its variants are recorded on the builder and
// returned by Build. Schema errors of a type are permanent: every Build of
// that type fails the same way.
package builder
