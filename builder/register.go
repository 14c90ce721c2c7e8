package builder

import (
	"fmt"
	"reflect"

	"object-builder/internal/factory"
	"object-builder/internal/introspect"
	"object-builder/override"
)

// RegisterConstructor registers fn as a constructor candidate of T. names
// gives the parameter names in order; each must match a property of T
// case-insensitively. fn returns T or *T, optionally followed by an error.
//
// Registration must happen before the first Build of T, typically in init.
func RegisterConstructor[T any](fn any, names ...string) error {
	c, err := introspect.ParseConstructor(fn, names...)
	if err != nil {
		return err
	}

	if t := reflect.TypeFor[T](); c.Target != t {
		return fmt.Errorf("%w: %s builds %s, not %s", ErrTargetMismatch, c, c.Target, t)
	}

	return factory.AddConstructor(c)
}

// MustRegisterConstructor is like RegisterConstructor but panics on error.
func MustRegisterConstructor[T any](fn any, names ...string) {
	if err := RegisterConstructor[T](fn, names...); err != nil {
		panic(err)
	}
}

// RegisterFactory installs fn as the construction routine of T, replacing
// run time inspection. Generated code calls it from init.
func RegisterFactory[T any](fn func(o *override.Store, src *T) (*T, error)) error {
	return factory.Install[T](fn)
}

// MustRegisterFactory is like RegisterFactory but panics on error.
func MustRegisterFactory[T any](fn func(o *override.Store, src *T) (*T, error)) {
	if err := RegisterFactory(fn); err != nil {
		panic(err)
	}
}
