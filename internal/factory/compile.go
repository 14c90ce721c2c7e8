package factory

import (
	"fmt"
	"reflect"

	"object-builder/internal/introspect"
	"object-builder/override"
)

// Func is a construction routine for T. src may be nil.
type Func[T any] func(o *override.Store, src *T) (*T, error)

// slot is a precomputed property resolution: the store key, the property
// read from the source and the type the value is cast to.
type slot struct {
	key  string
	prop *introspect.Property
	to   reflect.Type
}

// resolve returns the value for s: the stored override, else the source
// property, else the zero value. The result is memoized in o.
func (s slot) resolve(o *override.Store, src reflect.Value) (reflect.Value, error) {
	v := o.GetOrAdd(s.key, func() any {
		if !src.IsValid() {
			return reflect.Zero(s.prop.Type).Interface()
		}

		return s.prop.Get(src).Interface()
	})

	return override.Convert(s.key, v, s.to)
}

// compile turns a descriptor into a construction routine. All lookups happen
// here; the returned routine only resolves values and calls the constructor.
func compile[T any](d *introspect.Descriptor) Func[T] {
	ctor := d.Constructor

	args := make([]slot, len(d.Args))
	for i, idx := range d.Args {
		args[i] = slot{
			key:  d.Properties[idx].Key,
			prop: &d.Properties[idx],
			to:   ctor.Params[i].Type,
		}
	}

	setters := make([]slot, len(d.Setters))
	for i, idx := range d.Setters {
		setters[i] = slot{
			key:  d.Properties[idx].Key,
			prop: &d.Properties[idx],
			to:   d.Properties[idx].Type,
		}
	}

	return func(o *override.Store, src *T) (*T, error) {
		var srcVal reflect.Value
		if src != nil {
			srcVal = reflect.ValueOf(src)
		}

		in := make([]reflect.Value, len(args))

		for i, s := range args {
			v, err := s.resolve(o, srcVal)
			if err != nil {
				return nil, err
			}

			in[i] = v
		}

		obj, err := construct[T](ctor, in)
		if err != nil {
			return nil, err
		}

		ptr := reflect.ValueOf(obj)

		for _, s := range setters {
			v, err := s.resolve(o, srcVal)
			if err != nil {
				return nil, err
			}

			s.prop.Set(ptr, v)
		}

		return obj, nil
	}
}

func construct[T any](c introspect.Constructor, in []reflect.Value) (*T, error) {
	if c.Implicit() {
		return new(T), nil
	}

	out := c.Fn.Call(in)

	if c.HasErr {
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, fmt.Errorf("calling %s: %w", c.Name, err)
		}
	}

	if !c.ReturnsPointer {
		obj, _ := out[0].Interface().(T)
		return &obj, nil
	}

	obj, _ := out[0].Interface().(*T)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilInstance, c.Name)
	}

	return obj, nil
}
