package introspect

import (
	"fmt"
	"reflect"

	"object-builder/internal/match"
)

// Descriptor is the construction descriptor of a struct type.
// It is immutable once returned by Inspect.
type Descriptor struct {
	Type       reflect.Type
	Properties []Property
	// Constructor is the chosen constructor.
	Constructor Constructor
	// Args maps each constructor parameter to the index of its property.
	Args []int
	// Setters lists, in property order, the settable properties that are
	// not constructor arguments.
	Setters []int
	// Inert lists the properties that are neither arguments nor settable.
	Inert []int
}

// Inspect derives the descriptor of struct type t from its properties and
// the registered constructors ctors, in registration order.
func Inspect(t reflect.Type, ctors []Constructor) (*Descriptor, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	d := &Descriptor{
		Type:       t,
		Properties: Properties(t),
	}

	byKey := make(map[string]int, len(d.Properties))
	for i, p := range d.Properties {
		if prev, ok := byKey[p.Key]; ok {
			return nil, &SchemaMismatchError{
				Type:        t,
				Name:        p.Name,
				Reason:      ReasonAmbiguous,
				Suggestions: []string{d.Properties[prev].Name},
			}
		}

		byKey[p.Key] = i
	}

	for _, c := range ctors {
		if c.Target != t {
			return nil, fmt.Errorf("%w: %s builds %s, not %s", ErrConstructorTargetMismatch, c, c.Target, t)
		}
	}

	d.Constructor = SelectConstructor(t, ctors)

	consumed := make([]bool, len(d.Properties))
	d.Args = make([]int, 0, len(d.Constructor.Params))

	for _, param := range d.Constructor.Params {
		idx, ok := byKey[param.Key]
		if !ok {
			return nil, &SchemaMismatchError{
				Type:        t,
				Name:        param.Name,
				Reason:      ReasonNoProperty,
				Suggestions: match.Suggest(param.Name, d.propertyNames()),
			}
		}

		if !d.Properties[idx].Type.AssignableTo(param.Type) {
			return nil, &SchemaMismatchError{
				Type:   t,
				Name:   param.Name,
				Reason: ReasonTypeMismatch,
			}
		}

		consumed[idx] = true
		d.Args = append(d.Args, idx)
	}

	for i, p := range d.Properties {
		switch {
		case consumed[i]:
		case p.Settable:
			d.Setters = append(d.Setters, i)
		default:
			d.Inert = append(d.Inert, i)
		}
	}

	return d, nil
}

// SelectConstructor picks the candidate with the most parameters among ctors
// and the implicit constructor of t. The first candidate wins ties, and the
// implicit constructor comes last.
func SelectConstructor(t reflect.Type, ctors []Constructor) Constructor {
	best := ImplicitConstructor(t)
	found := false

	for _, c := range ctors {
		if !found || len(c.Params) > len(best.Params) {
			best = c
			found = true
		}
	}

	return best
}

// Property returns the property stored under key.
func (d *Descriptor) Property(key string) (*Property, bool) {
	for i := range d.Properties {
		if d.Properties[i].Key == key {
			return &d.Properties[i], true
		}
	}

	return nil, false
}

func (d *Descriptor) propertyNames() []string {
	names := make([]string, 0, len(d.Properties))
	for _, p := range d.Properties {
		names = append(names, p.Name)
	}

	return names
}
