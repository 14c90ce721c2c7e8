package diagnostic

// Diagnostic codes.
const (
	CodeSchemaMismatch      = "schema_mismatch"
	CodeAmbiguousProperty   = "ambiguous_property"
	CodeTypeMismatch        = "type_mismatch"
	CodeUnnamedParameter    = "unnamed_parameter"
	CodeUnknownType         = "unknown_type"
	CodeUnknownConstructor  = "unknown_constructor"
	CodeInertProperty       = "inert_property"
	CodeConstructorTie      = "constructor_tie"
	CodeImplicitConstructor = "implicit_constructor"
)
