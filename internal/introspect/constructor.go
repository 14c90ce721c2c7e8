package introspect

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"object-builder/internal/match"
	"object-builder/utils"
)

// Param is a constructor parameter.
type Param struct {
	Name string
	Key  string
	Type reflect.Type
}

// Constructor is a function producing an instance of Target.
type Constructor struct {
	// Target is the struct type the constructor builds.
	Target reflect.Type
	// Fn is the constructor function; invalid for the implicit constructor.
	Fn reflect.Value
	// PackageAlias and Name identify the function symbol.
	PackageAlias string
	Name         string
	Params       []Param
	// ReturnsPointer is set for constructors returning *Target.
	ReturnsPointer bool
	// HasErr is set for constructors with a trailing error result.
	HasErr bool
}

// ImplicitConstructor returns the zero-parameter constructor every struct
// has: new(t).
func ImplicitConstructor(t reflect.Type) Constructor {
	return Constructor{
		Target:         t,
		Name:           "new",
		ReturnsPointer: true,
	}
}

// Implicit reports whether c is the implicit new(T) constructor.
func (c Constructor) Implicit() bool {
	return !c.Fn.IsValid()
}

// String returns the constructor signature with parameter names.
func (c Constructor) String() string {
	params := make([]string, 0, len(c.Params))
	for _, p := range c.Params {
		params = append(params, p.Name+" "+p.Type.String())
	}

	name := c.Name
	if c.PackageAlias != "" {
		name = c.PackageAlias + "." + name
	}

	return name + "(" + strings.Join(params, ", ") + ")"
}

// ParseConstructor inspects fn and returns a Constructor if it is a valid
// constructor function. names gives the parameter names in order, since
// they are not available through reflection.
//
// Supports signatures:
//   - func(...) T
//   - func(...) *T
//   - func(...) (T, error)
//   - func(...) (*T, error)
//
// where T is a struct type.
func ParseConstructor(fn any, names ...string) (Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Constructor{}, ErrNotAConstructor
	}

	c := Constructor{Fn: fnVal}

	target := fnType.Out(0)
	if target.Kind() == reflect.Pointer {
		if target.Elem().Kind() == reflect.Pointer {
			return Constructor{}, ErrDoublePointer
		}

		target = target.Elem()
		c.ReturnsPointer = true
	}

	if target.Kind() != reflect.Struct {
		return Constructor{}, ErrNotAConstructor
	}

	c.Target = target

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Constructor{}, ErrNotAConstructor
		}

		c.HasErr = true
	}

	if len(names) != fnType.NumIn() {
		return Constructor{}, fmt.Errorf("%w: %d names for %d parameters", ErrParameterNames, len(names), fnType.NumIn())
	}

	seen := make(map[string]string, len(names))
	c.Params = make([]Param, 0, len(names))

	for i, name := range names {
		if name == "" {
			return Constructor{}, fmt.Errorf("%w: parameter %d has no name", ErrParameterNames, i)
		}

		key := match.Key(name)
		if prev, ok := seen[key]; ok {
			return Constructor{}, fmt.Errorf("%w: %q and %q name the same property", ErrParameterNames, prev, name)
		}

		seen[key] = name
		c.Params = append(c.Params, Param{Name: name, Key: key, Type: fnType.In(i)})
	}

	c.PackageAlias, c.Name = splitSymbol(runtime.FuncForPC(fnVal.Pointer()).Name())

	return c, nil
}

// splitSymbol splits a runtime function symbol such as
// "example.com/pkg.(*T).Method" into the package alias "pkg" and the
// remainder "(*T).Method".
func splitSymbol(symbol string) (alias, name string) {
	if i := strings.LastIndex(symbol, "/"); i >= 0 {
		symbol = symbol[i+1:]
	}

	return utils.Unpack2(strings.SplitN(symbol, ".", 2))
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(reflect.TypeFor[error]())
}
