package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Options configures an Analyzer.
type Options struct {
	// Dir is the directory package patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// ConstructorPrefix selects constructor candidates by name. Empty means
	// every function with a constructor shape.
	ConstructorPrefix string
}

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	opts  Options
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{
		opts:  opts,
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and adds them to the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/filekey").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	_, err := a.load(patterns...)
	if err != nil {
		return nil, err
	}

	return a.graph, nil
}

// LoadPackage loads a pattern that must match exactly one package and
// returns its info.
func (a *Analyzer) LoadPackage(pattern string) (*PackageInfo, error) {
	infos, err := a.load(pattern)
	if err != nil {
		return nil, err
	}

	if len(infos) != 1 {
		return nil, fmt.Errorf("pattern %q matches %d packages, want 1", pattern, len(infos))
	}

	return infos[0], nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

func (a *Analyzer) load(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.opts.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	infos := make([]*PackageInfo, 0, len(pkgs))

	for _, pkg := range pkgs {
		info, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// processPackage extracts structs and constructor candidates from a loaded
// package.
func (a *Analyzer) processPackage(pkg *packages.Package) (*PackageInfo, error) {
	if pkg.Types == nil {
		return nil, errors.New("no type information")
	}

	pkgInfo := &PackageInfo{
		Path:    pkg.PkgPath,
		Name:    pkg.Name,
		Funcs:   make(map[string]*FuncInfo),
		Package: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var structs []*StructInfo

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		switch o := obj.(type) {
		case *types.TypeName:
			if info := a.analyzeStruct(pkg, o); info != nil {
				structs = append(structs, info)
			}

		case *types.Func:
			if fn := a.analyzeFunc(pkg, o); fn != nil {
				pkgInfo.Funcs[fn.Name] = fn
			}
		}
	}

	sort.SliceStable(structs, func(i, j int) bool {
		return before(structs[i].Pos.Offset, structs[j].Pos.Offset, structs[i].Pos.Filename, structs[j].Pos.Filename)
	})

	for _, s := range structs {
		a.graph.Types[s.ID] = s
		pkgInfo.Types = append(pkgInfo.Types, s.ID)
	}

	a.collectConstructors(pkgInfo)

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return pkgInfo, nil
}

// analyzeStruct returns the StructInfo of a non-generic named struct, or nil.
func (a *Analyzer) analyzeStruct(pkg *packages.Package, obj *types.TypeName) *StructInfo {
	if obj.IsAlias() {
		return nil
	}

	named, ok := obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	info := &StructInfo{
		ID:     TypeID{PkgPath: pkg.PkgPath, Name: obj.Name()},
		GoType: named,
		Pos:    pkg.Fset.Position(obj.Pos()),
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:  field.Name(),
			Type:  field.Type(),
			Index: i,
		})
	}

	info.Getters = getters(named)

	return info
}

// getters lists the getter methods of *named, sorted by name.
func getters(named *types.Named) []MethodInfo {
	mset := types.NewMethodSet(types.NewPointer(named))

	var out []MethodInfo

	for i := range mset.Len() {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, _ := fn.Type().(*types.Signature)
		if sig == nil || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}

		result := sig.Results().At(0).Type()
		if isError(result) {
			continue
		}

		out = append(out, MethodInfo{
			Name:      fn.Name(),
			Type:      result,
			HasSetter: hasSetter(mset, fn.Pkg(), "Set"+fn.Name(), result),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

func hasSetter(mset *types.MethodSet, pkg *types.Package, name string, p types.Type) bool {
	sel := mset.Lookup(pkg, name)
	if sel == nil {
		return false
	}

	sig, _ := sel.Obj().Type().(*types.Signature)

	return sig != nil &&
		sig.Params().Len() == 1 &&
		sig.Results().Len() == 0 &&
		!sig.Variadic() &&
		types.Identical(sig.Params().At(0).Type(), p)
}

// analyzeFunc returns the FuncInfo of a function with a constructor shape:
// non-generic, non-variadic, returning T or *T of a struct T declared in the
// same package, optionally followed by an error.
func (a *Analyzer) analyzeFunc(pkg *packages.Package, fn *types.Func) *FuncInfo {
	sig, _ := fn.Type().(*types.Signature)
	if sig == nil || sig.Recv() != nil || sig.Variadic() || sig.TypeParams().Len() > 0 {
		return nil
	}

	results := sig.Results()
	if results.Len() == 0 || results.Len() > 2 {
		return nil
	}

	info := &FuncInfo{
		Name: fn.Name(),
		Pos:  pkg.Fset.Position(fn.Pos()),
	}

	result := results.At(0).Type()
	if ptr, ok := result.(*types.Pointer); ok {
		result = ptr.Elem()
		info.ReturnsPointer = true
	}

	named, ok := result.(*types.Named)
	if !ok || named.Obj().Pkg() != pkg.Types {
		return nil
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil
	}

	info.Result = TypeID{PkgPath: pkg.PkgPath, Name: named.Obj().Name()}

	if results.Len() == 2 {
		if !isError(results.At(1).Type()) {
			return nil
		}

		info.HasErr = true
	}

	for i := range sig.Params().Len() {
		p := sig.Params().At(i)
		info.Params = append(info.Params, ParamInfo{Name: p.Name(), Type: p.Type()})
	}

	return info
}

// collectConstructors attaches the functions matching the constructor prefix
// to the struct they build, in source order.
func (a *Analyzer) collectConstructors(pkgInfo *PackageInfo) {
	fns := make([]*FuncInfo, 0, len(pkgInfo.Funcs))
	for _, fn := range pkgInfo.Funcs {
		fns = append(fns, fn)
	}

	sort.Slice(fns, func(i, j int) bool {
		return before(fns[i].Pos.Offset, fns[j].Pos.Offset, fns[i].Pos.Filename, fns[j].Pos.Filename)
	})

	for _, fn := range fns {
		if !strings.HasPrefix(fn.Name, a.opts.ConstructorPrefix) {
			continue
		}

		if s := a.graph.Types[fn.Result]; s != nil {
			s.Constructors = append(s.Constructors, fn)
		}
	}
}

// before orders source positions by file name, then offset.
func before(offA, offB int, fileA, fileB string) bool {
	if fileA != fileB {
		return fileA < fileB
	}

	return offA < offB
}

func isError(t types.Type) bool {
	return types.Implements(t, types.Universe.Lookup("error").Type().Underlying().(*types.Interface))
}

// GetStruct returns the StructInfo for a named struct.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("struct type %s not found", id)
	}

	return info, nil
}
