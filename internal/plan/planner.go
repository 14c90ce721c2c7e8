package plan

import (
	"fmt"
	"go/types"
	"maps"
	"slices"

	"object-builder/internal/analyze"
	"object-builder/internal/config"
	"object-builder/internal/diagnostic"
	"object-builder/internal/introspect"
	"object-builder/internal/match"
)

// Request selects the types of one analyzed package.
type Request struct {
	Package *analyze.PackageInfo
	Config  config.Package
}

// Planner builds plans from a type graph.
type Planner struct {
	graph *analyze.TypeGraph
}

// NewPlanner creates a Planner over graph.
func NewPlanner(graph *analyze.TypeGraph) *Planner {
	return &Planner{graph: graph}
}

// Plan plans every request. Types reporting errors are left out of the
// result; the errors are collected in Plan.Diagnostics.
func (p *Planner) Plan(reqs ...Request) *Plan {
	out := &Plan{}

	for _, req := range reqs {
		pp := PackagePlan{
			Info:   req.Package,
			Output: req.Config.Output,
		}

		if pp.Output == "" {
			pp.Output = config.DefaultOutput
		}

		for _, name := range req.Config.Types {
			if p.graph.GetType(analyze.TypeID{PkgPath: req.Package.Path, Name: name}) == nil {
				out.Diagnostics.AddError(diagnostic.CodeUnknownType,
					fmt.Sprintf("no exported struct %s in %s", name, req.Package.Path),
					name, "", match.Suggest(name, typeNames(req.Package))...)
			}
		}

		for _, id := range req.Package.Types {
			if !req.Config.Includes(id.Name) {
				continue
			}

			s := p.graph.GetType(id)
			if s == nil {
				continue
			}

			var diags diagnostic.Diagnostics

			tp := p.planType(s, req, &diags)
			out.Diagnostics.Merge(diags)

			if tp != nil && !diags.HasErrors() {
				pp.Builders = append(pp.Builders, *tp)
			}
		}

		out.Packages = append(out.Packages, pp)
	}

	return out
}

// planType binds the properties of s to the selected constructor and the
// setters. It returns nil when the type cannot be built.
func (p *Planner) planType(s *analyze.StructInfo, req Request, diags *diagnostic.Diagnostics) *TypePlan {
	typeName := s.ID.Name

	props, ok := Properties(s, diags)
	if !ok {
		return nil
	}

	ctors, ok := p.candidates(s, req, diags)
	if !ok {
		return nil
	}

	tp := &TypePlan{Type: s, Constructor: selectConstructor(ctors)}

	if tp.Implicit() {
		diags.AddInfo(diagnostic.CodeImplicitConstructor, "no constructor, allocating with new("+typeName+")", typeName, "")
	} else {
		for _, c := range ctors {
			if c != tp.Constructor && len(c.Params) == len(tp.Constructor.Params) {
				diags.AddInfo(diagnostic.CodeConstructorTie,
					fmt.Sprintf("%s ties with %s; using the first declared", c.Name, tp.Constructor.Name),
					typeName, c.Name)
			}
		}
	}

	consumed := make(map[string]bool)

	if !tp.Implicit() {
		for _, param := range tp.Constructor.Params {
			b, ok := bindParam(s, tp.Constructor, param, props, diags)
			if !ok {
				continue
			}

			consumed[b.Property.Key] = true
			tp.Args = append(tp.Args, b)
		}
	}

	for _, prop := range props {
		if consumed[prop.Key] {
			continue
		}

		if !prop.Settable {
			tp.Inert = append(tp.Inert, prop.Name)
			diags.AddInfo(diagnostic.CodeInertProperty, "property is never set by the builder", typeName, prop.Name)

			continue
		}

		tp.Setters = append(tp.Setters, Binding{Property: prop, Type: prop.Type})
	}

	return tp
}

// candidates returns the constructor candidates of s, either the ones named
// in the configuration or the ones found by prefix.
func (p *Planner) candidates(s *analyze.StructInfo, req Request, diags *diagnostic.Diagnostics) ([]*analyze.FuncInfo, bool) {
	names, pinned := req.Config.Constructors[s.ID.Name]
	if !pinned {
		return s.Constructors, true
	}

	ok := true
	out := make([]*analyze.FuncInfo, 0, len(names))

	for _, name := range names {
		fn := req.Package.Funcs[name]

		switch {
		case fn == nil:
			diags.AddError(diagnostic.CodeUnknownConstructor,
				fmt.Sprintf("no constructor function %s in %s", name, req.Package.Path),
				s.ID.Name, name, match.Suggest(name, funcNames(req.Package))...)

			ok = false

		case fn.Result != s.ID:
			diags.AddError(diagnostic.CodeUnknownConstructor,
				fmt.Sprintf("%s builds %s, not %s", name, fn.Result.Name, s.ID.Name),
				s.ID.Name, name)

			ok = false

		default:
			out = append(out, fn)
		}
	}

	return out, ok
}

// selectConstructor returns the candidate with the most parameters, the
// first one on ties, or nil when there is none.
func selectConstructor(ctors []*analyze.FuncInfo) *analyze.FuncInfo {
	var best *analyze.FuncInfo

	for _, c := range ctors {
		if best == nil || len(c.Params) > len(best.Params) {
			best = c
		}
	}

	return best
}

// bindParam matches a constructor parameter to the property with the same key.
func bindParam(
	s *analyze.StructInfo,
	fn *analyze.FuncInfo,
	param analyze.ParamInfo,
	props []Property,
	diags *diagnostic.Diagnostics,
) (Binding, bool) {
	typeName := s.ID.Name

	if param.Name == "" || param.Name == "_" {
		diags.AddError(diagnostic.CodeUnnamedParameter, fn.Name+" has unnamed parameters", typeName, fn.Name)

		return Binding{}, false
	}

	key := match.Key(param.Name)

	for _, prop := range props {
		if prop.Key != key {
			continue
		}

		if !types.AssignableTo(prop.Type, param.Type) {
			diags.AddError(diagnostic.CodeTypeMismatch,
				fmt.Sprintf("%s: %s %q: %s is not assignable to %s",
					fn.Name, introspect.ReasonTypeMismatch, param.Name, prop.Type, param.Type),
				typeName, param.Name)

			return Binding{}, false
		}

		return Binding{Property: prop, Param: param.Name, Type: param.Type}, true
	}

	names := make([]string, 0, len(props))
	for _, prop := range props {
		names = append(names, prop.Name)
	}

	diags.AddError(diagnostic.CodeSchemaMismatch,
		fmt.Sprintf("%s: %s %q", fn.Name, introspect.ReasonNoProperty, param.Name),
		typeName, param.Name, match.Suggest(param.Name, names)...)

	return Binding{}, false
}

// Properties lists the properties of s: exported fields in declaration
// order, then getters sorted by name. Two properties folding to the same key
// are reported and make the result unusable.
func Properties(s *analyze.StructInfo, diags *diagnostic.Diagnostics) ([]Property, bool) {
	props := make([]Property, 0, len(s.Fields)+len(s.Getters))

	for _, f := range s.Fields {
		props = append(props, Property{
			Name:     f.Name,
			Key:      match.Key(f.Name),
			Type:     f.Type,
			Kind:     introspect.KindField,
			Settable: true,
		})
	}

	for _, m := range s.Getters {
		props = append(props, Property{
			Name:     m.Name,
			Key:      match.Key(m.Name),
			Type:     m.Type,
			Kind:     introspect.KindMethod,
			Settable: m.HasSetter,
		})
	}

	ok := true
	seen := make(map[string]string, len(props))

	for _, prop := range props {
		if other, dup := seen[prop.Key]; dup {
			diags.AddError(diagnostic.CodeAmbiguousProperty,
				fmt.Sprintf("%s and %s fold to the same name %q", other, prop.Name, prop.Key),
				s.ID.Name, prop.Name)

			ok = false

			continue
		}

		seen[prop.Key] = prop.Name
	}

	return props, ok
}

func typeNames(pkg *analyze.PackageInfo) []string {
	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

func funcNames(pkg *analyze.PackageInfo) []string {
	return slices.Sorted(maps.Keys(pkg.Funcs))
}
