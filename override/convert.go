package override

import (
	"errors"
	"math"
	"reflect"
)

// ErrConversion is matched by every ConversionError.
var ErrConversion = errors.New("value not convertible")

// ConversionError reports a stored value that cannot be cast to the static
// type of the property or parameter consuming it.
type ConversionError struct {
	// Key is the property key the value was stored under.
	Key string
	// From is the dynamic type of the stored value.
	From reflect.Type
	// To is the type the value had to be cast to.
	To reflect.Type
	// Overflow is set when the kinds are compatible but the value does not fit.
	Overflow bool
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	msg := "cannot use " + e.From.String() + " value for " + e.Key + " (" + e.To.String() + ")"
	if e.Overflow {
		msg += ": value overflows"
	}

	return msg
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// Convert casts v to type to. The rules, in order:
//   - nil becomes the zero value of to
//   - values assignable to to are used as is
//   - a value convertible to the element of pointer type to is lifted
//     into a new pointer (123 -> *int)
//   - a pointer whose element is assignable to to is dereferenced; nil
//     pointers become the zero value
//   - numeric kinds convert to numeric kinds when the value fits;
//     floating point never converts to integers
//   - string kinds convert to string kinds
func Convert(key string, v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(to), nil
	}

	rv := reflect.ValueOf(v)

	out, overflow, ok := convertValue(rv, to)
	if !ok {
		return reflect.Value{}, &ConversionError{Key: key, From: rv.Type(), To: to, Overflow: overflow}
	}

	return out, nil
}

func convertValue(rv reflect.Value, to reflect.Type) (out reflect.Value, overflow, ok bool) {
	from := rv.Type()

	switch {
	case from.AssignableTo(to):
		return rv, false, true

	case to.Kind() == reflect.Pointer && from.Kind() != reflect.Pointer:
		inner, overflow, ok := convertValue(rv, to.Elem())
		if !ok {
			return reflect.Value{}, overflow, false
		}

		p := reflect.New(to.Elem())
		p.Elem().Set(inner)

		return p, false, true

	case from.Kind() == reflect.Pointer && from.Elem().AssignableTo(to):
		if rv.IsNil() {
			return reflect.Zero(to), false, true
		}

		return rv.Elem(), false, true

	case isNumeric(from.Kind()) && isNumeric(to.Kind()):
		if isFloat(from.Kind()) && !isFloat(to.Kind()) {
			return reflect.Value{}, false, false
		}

		if overflows(rv, to) {
			return reflect.Value{}, true, false
		}

		return rv.Convert(to), false, true

	case from.Kind() == reflect.String && to.Kind() == reflect.String:
		return rv.Convert(to), false, true
	}

	return reflect.Value{}, false, false
}

// overflows reports whether the numeric value rv does not fit in type to.
func overflows(rv reflect.Value, to reflect.Type) bool {
	target := reflect.Zero(to)

	switch {
	case isInt(rv.Kind()):
		x := rv.Int()

		switch {
		case isInt(to.Kind()):
			return target.OverflowInt(x)
		case isUint(to.Kind()):
			return x < 0 || target.OverflowUint(uint64(x))
		}

	case isUint(rv.Kind()):
		x := rv.Uint()

		switch {
		case isInt(to.Kind()):
			return x > math.MaxInt64 || target.OverflowInt(int64(x))
		case isUint(to.Kind()):
			return target.OverflowUint(x)
		}

	case isFloat(rv.Kind()):
		return target.OverflowFloat(rv.Float())
	}

	return false
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
