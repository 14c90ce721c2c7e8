package plan

import (
	"go/types"

	"object-builder/internal/analyze"
	"object-builder/internal/diagnostic"
	"object-builder/internal/introspect"
)

// Plan is the final output of the planning pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Packages holds one entry per requested package, in request order.
	Packages []PackagePlan
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// PackagePlan lists the builders generated into one package.
type PackagePlan struct {
	Info *analyze.PackageInfo
	// Output is the file name of the generated file inside Info.Dir.
	Output   string
	Builders []TypePlan
}

// TypePlan describes how one struct type is constructed.
type TypePlan struct {
	Type *analyze.StructInfo
	// Constructor is nil when the type is allocated with new(T).
	Constructor *analyze.FuncInfo
	// Args are the constructor arguments, in parameter order.
	Args []Binding
	// Setters are the settable properties not consumed by the constructor.
	Setters []Binding
	// Inert lists the properties that are neither consumed nor settable.
	Inert []string
}

// Implicit reports whether the type is allocated with new(T).
func (p *TypePlan) Implicit() bool {
	return p.Constructor == nil
}

// Binding ties a property to a constructor parameter or an assignment.
type Binding struct {
	Property Property
	// Param is the constructor parameter name; empty for setters.
	Param string
	// Type is the static type the value is resolved as.
	Type types.Type
}

// Property is a named value readable from the struct.
type Property struct {
	Name string
	Key  string
	Type types.Type
	Kind introspect.PropertyKind
	// Settable is set for exported fields and getters with a SetX method.
	Settable bool
}
