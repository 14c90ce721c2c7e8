package introspect

import (
	"reflect"

	"object-builder/internal/match"
)

// Property is a readable member of the target type.
type Property struct {
	Name string
	Key  string
	Type reflect.Type
	Kind PropertyKind
	// Index is the field index for KindField.
	Index int
	// Getter is the X() method of *T for KindMethod.
	Getter reflect.Method
	// Setter is the SetX(P) method of *T for a settable KindMethod.
	Setter reflect.Method
	// Settable is set for fields and for methods with a setter.
	Settable bool
}

// Get reads the property from ptr, a non-nil *T.
func (p *Property) Get(ptr reflect.Value) reflect.Value {
	if p.Kind == KindField {
		return ptr.Elem().Field(p.Index)
	}

	return p.Getter.Func.Call([]reflect.Value{ptr})[0]
}

// Set writes v, already of the property type, to ptr, a non-nil *T.
func (p *Property) Set(ptr, v reflect.Value) {
	if p.Kind == KindField {
		ptr.Elem().Field(p.Index).Set(v)
		return
	}

	p.Setter.Func.Call([]reflect.Value{ptr, v})
}

// Properties lists the properties of struct type t: exported direct fields
// in declaration order, then getter methods of *t in method set order.
// Embedded fields are skipped; methods they promote are included.
func Properties(t reflect.Type) []Property {
	var props []Property

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		props = append(props, Property{
			Name:     f.Name,
			Key:      match.Key(f.Name),
			Type:     f.Type,
			Kind:     KindField,
			Index:    i,
			Settable: true,
		})
	}

	pt := reflect.PointerTo(t)

	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if !isGetter(m) {
			continue
		}

		prop := Property{
			Name:   m.Name,
			Key:    match.Key(m.Name),
			Type:   m.Type.Out(0),
			Kind:   KindMethod,
			Getter: m,
		}

		if setter, ok := pt.MethodByName("Set" + m.Name); ok && isSetter(setter, prop.Type) {
			prop.Setter = setter
			prop.Settable = true
		}

		props = append(props, prop)
	}

	return props
}

// isGetter matches func(*T) P where P is not an error.
func isGetter(m reflect.Method) bool {
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return false
	}

	return !isError(m.Type.Out(0))
}

// isSetter matches func(*T, P).
func isSetter(m reflect.Method, p reflect.Type) bool {
	return m.Type.NumIn() == 2 && m.Type.NumOut() == 0 && m.Type.In(1) == p
}
