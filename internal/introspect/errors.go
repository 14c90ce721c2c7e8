package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrUnsupportedType           = errors.New("target type is not a struct")
	ErrSchemaMismatch            = errors.New("schema mismatch")
	ErrInvalidExpression         = errors.New("invalid property expression")
	ErrNotAConstructor           = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrParameterNames            = errors.New("constructor parameter names do not match its signature")
	ErrConstructorTargetMismatch = errors.New("constructor does not build the target type")
)

// Schema mismatch reasons.
const (
	ReasonNoProperty   = "no matching property for parameter"
	ReasonTypeMismatch = "property type is not assignable to parameter"
	ReasonAmbiguous    = "ambiguous property"
)

// SchemaMismatchError reports a type whose shape cannot be built: a
// constructor parameter without a matching property, or properties whose
// keys collide.
type SchemaMismatchError struct {
	// Type is the target type.
	Type reflect.Type
	// Name is the offending parameter or property name.
	Name string
	// Reason is one of the Reason constants.
	Reason string
	// Suggestions lists similarly named properties, best first.
	Suggestions []string
}

func (e *SchemaMismatchError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s %q", ErrSchemaMismatch, e.Type, e.Reason, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// InvalidExpressionError reports an accessor that is not a direct property
// access of the target type.
type InvalidExpressionError struct {
	// Type is the target type.
	Type reflect.Type
	// Expr describes the accessor, e.g. a function symbol or a field offset.
	Expr string
	// Reason explains the rejection.
	Reason string
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("%s: %s on %s: %s", ErrInvalidExpression, e.Expr, e.Type, e.Reason)
}

func (e *InvalidExpressionError) Is(target error) bool {
	return target == ErrInvalidExpression
}
