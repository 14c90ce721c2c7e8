package builder

import (
	"fmt"
	"reflect"
	"unsafe"

	"object-builder/internal/introspect"
)

// Field sets the field selected by field to v. field must return the address
// of an exported field declared directly in T, e.g.
//
//	func(k *MutableFileKey) **int { return &k.AccountID }
func Field[T, P any](b *Builder[T], field func(*T) *P, v P) *Builder[T] {
	name, err := fieldName(field)
	if err != nil {
		b.fail(err)
		return b
	}

	return b.Set(name, v)
}

// Getter sets the property read by the method expression get to v, e.g.
// (*ImmutableFileKey).AccountID.
func Getter[T, P any](b *Builder[T], get func(*T) P, v P) *Builder[T] {
	name, err := introspect.MethodName(reflect.TypeFor[T](), get)
	if err != nil {
		b.fail(err)
		return b
	}

	return b.Set(name, v)
}

// FieldFunc is reserved for lazily provided field values and always records
// ErrNotSupported.
func FieldFunc[T, P any](b *Builder[T], field func(*T) *P, provider func() P) *Builder[T] {
	b.fail(fmt.Errorf("%w: field accessor", ErrNotSupported))
	return b
}

// GetterFunc is reserved for lazily provided property values and always
// records ErrNotSupported.
func GetterFunc[T, P any](b *Builder[T], get func(*T) P, provider func() P) *Builder[T] {
	b.fail(fmt.Errorf("%w: getter accessor", ErrNotSupported))
	return b
}

// fieldName calls field on a fresh *T and maps the returned address back
// to a direct field of T.
func fieldName[T, P any](field func(*T) *P) (name string, err error) {
	if field == nil {
		return "", invalid[T]("<nil>", "nil accessor")
	}

	defer func() {
		if r := recover(); r != nil {
			name, err = "", invalid[T](fmt.Sprint(r), "accessor panicked")
		}
	}()

	sample := new(T)

	p := field(sample)
	if p == nil {
		return "", invalid[T]("<nil>", "accessor returned nil")
	}

	base := uintptr(unsafe.Pointer(sample))
	addr := uintptr(unsafe.Pointer(p))

	if addr < base || addr >= base+unsafe.Sizeof(*sample) {
		return "", invalid[T](fmt.Sprintf("%p", p), "address is outside the instance")
	}

	return introspect.FieldName(reflect.TypeFor[T](), addr-base, reflect.TypeFor[P]())
}
