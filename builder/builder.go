package builder

import (
	"fmt"
	"reflect"
	"sync"

	"object-builder/internal/factory"
	"object-builder/internal/introspect"
	"object-builder/internal/match"
	"object-builder/override"
)

// Builder assembles one instance of T.
type Builder[T any] struct {
	store *override.Store
	src   *T

	mu  sync.Mutex
	err error
}

// New returns a builder without a source: unset properties take their zero
// value.
func New[T any]() *Builder[T] {
	return &Builder[T]{store: override.NewStore()}
}

// From returns a builder whose unset properties take the values of src.
// src is only read. A nil src is the same as New.
func From[T any](src *T) *Builder[T] {
	return &Builder[T]{store: override.NewStore(), src: src}
}

// Set sets the property name to v unless the property is already set.
// Names are case-insensitive.
func (b *Builder[T]) Set(name string, v any) *Builder[T] {
	if name == "" {
		b.fail(&InvalidExpressionError{Type: reflect.TypeFor[T](), Expr: `""`, Reason: "empty property name"})
		return b
	}

	b.store.Set(match.Key(name), v)

	return b
}

// SetFunc is reserved for lazily provided values and always records
// ErrNotSupported.
func (b *Builder[T]) SetFunc(name string, provider any) *Builder[T] {
	b.fail(fmt.Errorf("%w: property %q", ErrNotSupported, name))
	return b
}

// Build constructs the instance. It returns the first error recorded by a
// setter, the schema error of T, or the error of the construction itself.
func (b *Builder[T]) Build() (*T, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	build, err := factory.For[T]()
	if err != nil {
		return nil, err
	}

	return build(b.store, b.src)
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() *T {
	obj, err := b.Build()
	if err != nil {
		panic(err)
	}

	return obj
}

// Err returns the first error recorded by a setter.
func (b *Builder[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.err
}

// Source returns the source instance, or nil.
func (b *Builder[T]) Source() *T {
	return b.src
}

func (b *Builder[T]) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err == nil {
		b.err = err
	}
}

// invalid builds the accessor error for T.
func invalid[T any](expr, reason string) error {
	return &introspect.InvalidExpressionError{Type: reflect.TypeFor[T](), Expr: expr, Reason: reason}
}
