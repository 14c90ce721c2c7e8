package introspect

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"object-builder/utils"
)

// FieldName resolves a field accessor to a property name. offset is the
// distance of the returned pointer from the start of the sampled *T and ft
// the pointed-to type.
func FieldName(t reflect.Type, offset uintptr, ft reflect.Type) (string, error) {
	expr := "field at offset " + strconv.FormatUint(uint64(offset), 10)

	if t.Kind() != reflect.Struct {
		return "", &InvalidExpressionError{Type: t, Expr: expr, Reason: "target is not a struct"}
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if f.Offset != offset || f.Type != ft {
			continue
		}

		switch {
		case f.Anonymous:
			return "", &InvalidExpressionError{Type: t, Expr: f.Name, Reason: "embedded field is not a property"}
		case !f.IsExported():
			return "", &InvalidExpressionError{Type: t, Expr: f.Name, Reason: "field is not exported"}
		}

		return f.Name, nil
	}

	return "", &InvalidExpressionError{Type: t, Expr: expr, Reason: "not a direct field of the type"}
}

// MethodName resolves a method expression such as (*T).AccountID to the
// name of the getter property it reads. Closures, functions of other types
// and methods that are not getters are rejected.
func MethodName(t reflect.Type, fn any) (string, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "", &InvalidExpressionError{Type: t, Expr: "<nil>", Reason: "not a function"}
	}

	symbol := strings.TrimSuffix(runtime.FuncForPC(v.Pointer()).Name(), "-fm")

	if !strings.HasPrefix(symbol, t.PkgPath()+".") {
		return "", &InvalidExpressionError{Type: t, Expr: symbol, Reason: "not a method of the type"}
	}

	name := utils.Second(splitSymbol(symbol))

	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return "", &InvalidExpressionError{Type: t, Expr: symbol, Reason: "not a method expression"}
	}

	recv, method := name[:dot], name[dot+1:]
	recv = strings.TrimSuffix(strings.TrimPrefix(recv, "(*"), ")")

	if baseName(recv) != baseName(t.Name()) {
		return "", &InvalidExpressionError{Type: t, Expr: symbol, Reason: "not a method of the type"}
	}

	m, ok := reflect.PointerTo(t).MethodByName(method)
	if !ok || m.Type != v.Type() || !isGetter(m) {
		return "", &InvalidExpressionError{Type: t, Expr: symbol, Reason: "not a getter method"}
	}

	return m.Name, nil
}

// baseName strips type arguments from a type name.
func baseName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}

	return name
}
