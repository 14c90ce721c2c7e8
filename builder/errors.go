package builder

import (
	"errors"

	"object-builder/internal/factory"
	"object-builder/internal/introspect"
	"object-builder/override"
)

var (
	// ErrNotSupported is returned for value providers passed to SetFunc,
	// FieldFunc and GetterFunc.
	ErrNotSupported = errors.New("value providers are not supported")

	ErrSchemaMismatch    = introspect.ErrSchemaMismatch
	ErrInvalidExpression = introspect.ErrInvalidExpression
	ErrUnsupportedType   = introspect.ErrUnsupportedType
	ErrTargetMismatch    = introspect.ErrConstructorTargetMismatch
	ErrSealed            = factory.ErrSealed
	ErrNilInstance       = factory.ErrNilInstance
	ErrConversion        = override.ErrConversion
)

type (
	SchemaMismatchError    = introspect.SchemaMismatchError
	InvalidExpressionError = introspect.InvalidExpressionError
	ConversionError        = override.ConversionError
)
