package factory

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"object-builder/internal/introspect"
)

// entry is the cache slot of one type. once guards the single assignment of
// fn or err; both are read only after once.Do returns.
type entry struct {
	once sync.Once
	fn   any
	err  error
}

var (
	entries sync.Map // reflect.Type -> *entry

	ctorsMu sync.Mutex
	ctors   = make(map[reflect.Type][]introspect.Constructor)

	compilations atomic.Int64
)

// For returns the construction routine of T, compiling it on first use.
// Concurrent first calls compile once; all callers observe the same routine
// or the same error.
func For[T any]() (Func[T], error) {
	t := reflect.TypeFor[T]()

	v, _ := entries.LoadOrStore(t, new(entry))
	e, _ := v.(*entry)

	e.once.Do(func() {
		compilations.Add(1)

		d, err := introspect.Inspect(t, constructors(t))
		if err != nil {
			e.err = err
			return
		}

		e.fn = compile[T](d)
	})

	if e.err != nil {
		return nil, e.err
	}

	fn, _ := e.fn.(Func[T])

	return fn, nil
}

// Install sets fn as the construction routine of T. It fails with ErrSealed
// when T already has a routine or a cached compilation error.
func Install[T any](fn Func[T]) error {
	t := reflect.TypeFor[T]()

	e := &entry{fn: fn}
	e.once.Do(func() {})

	if _, loaded := entries.LoadOrStore(t, e); loaded {
		return fmt.Errorf("%w: %s", ErrSealed, t)
	}

	return nil
}

// AddConstructor registers c as a constructor candidate of c.Target.
// Candidates are considered in registration order. Registration is closed
// once the type has a routine.
func AddConstructor(c introspect.Constructor) error {
	ctorsMu.Lock()
	defer ctorsMu.Unlock()

	if _, ok := entries.Load(c.Target); ok {
		return fmt.Errorf("%w: %s", ErrSealed, c.Target)
	}

	ctors[c.Target] = append(ctors[c.Target], c)

	return nil
}

// Compilations returns the number of compilations For has run, failed ones
// included.
func Compilations() int64 {
	return compilations.Load()
}

func constructors(t reflect.Type) []introspect.Constructor {
	ctorsMu.Lock()
	defer ctorsMu.Unlock()

	return append([]introspect.Constructor(nil), ctors[t]...)
}
