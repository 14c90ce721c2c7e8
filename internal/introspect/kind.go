package introspect

//go:generate go tool stringer -type=PropertyKind -trimprefix=Kind -output=kind_string.go

// PropertyKind tells how a property is read and written.
type PropertyKind int

const (
	_ PropertyKind = iota // zero value is invalid

	// KindField is an exported struct field, read and written directly.
	KindField
	// KindMethod is a getter method X(), writable through SetX when present.
	KindMethod
)
