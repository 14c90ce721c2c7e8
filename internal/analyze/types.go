package analyze

import (
	"go/token"
	"go/types"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "object-builder/examples/filekey"
	Name    string // e.g., "ImmutableFileKey"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct type.
type StructInfo struct {
	ID     TypeID
	GoType *types.Named
	Pos    token.Position
	// Fields are the exported, directly declared, non-embedded fields in
	// declaration order.
	Fields []FieldInfo
	// Getters are the getter methods of the pointer method set, sorted by
	// name. Promoted methods are included.
	Getters []MethodInfo
	// Constructors are the functions matching the constructor prefix, in
	// source order.
	Constructors []*FuncInfo
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name  string     // Go field name
	Type  types.Type // Field type
	Index int        // Field index in the struct
}

// MethodInfo describes a getter method X() P and its optional setter SetX(P).
type MethodInfo struct {
	Name      string
	Type      types.Type // result type of the getter
	HasSetter bool
}

// FuncInfo describes a constructor candidate.
type FuncInfo struct {
	Name   string
	Params []ParamInfo
	// Result is the struct type built by the function.
	Result         TypeID
	ReturnsPointer bool
	HasErr         bool
	Pos            token.Position
}

// ParamInfo describes a function parameter.
type ParamInfo struct {
	Name string
	Type types.Type
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to StructInfo for all exported named structs.
	Types map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the StructInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *StructInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory of the package sources
	Types []TypeID // Exported struct types defined in this package, in source order
	// Funcs maps the names of exported functions with a constructor shape
	// to their info, whatever their prefix.
	Funcs map[string]*FuncInfo
	// Package is the type-checked package, used to qualify type names.
	Package *types.Package
}
