package override

import (
	"reflect"
)

// Resolve returns the value for key typed as P. A stored override wins;
// otherwise fallback supplies the value, which is stored so that every later
// Resolve of the same key sees it.
func Resolve[P any](s *Store, key string, fallback func() P) (P, error) {
	v := s.GetOrAdd(key, func() any { return fallback() })

	if p, ok := v.(P); ok {
		return p, nil
	}

	var zero P

	rv, err := Convert(key, v, reflect.TypeFor[P]())
	if err != nil {
		return zero, err
	}

	if !rv.IsValid() {
		return zero, nil
	}

	p, _ := rv.Interface().(P)

	return p, nil
}
