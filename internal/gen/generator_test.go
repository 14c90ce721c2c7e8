package gen

import (
	"context"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-builder/internal/analyze"
	"object-builder/internal/config"
	"object-builder/internal/introspect"
	"object-builder/internal/match"
	"object-builder/internal/plan"
)

func testGenerator() *Generator {
	return NewGenerator(GeneratorConfig{Workers: 2})
}

func loadExamplePlan(t *testing.T) *plan.Plan {
	t.Helper()

	analyzer := analyze.NewAnalyzer(analyze.Options{ConstructorPrefix: config.DefaultConstructorPrefix})

	var reqs []plan.Request

	for _, path := range []string{"object-builder/examples/filekey", "object-builder/examples/document"} {
		info, err := analyzer.LoadPackage(path)
		require.NoError(t, err)

		reqs = append(reqs, plan.Request{Package: info})
	}

	p := plan.NewPlanner(analyzer.Graph()).Plan(reqs...)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	return p
}

func TestGenerate_CheckedInFilesAreCurrent(t *testing.T) {
	files, err := testGenerator().Generate(context.Background(), loadExamplePlan(t))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "object-builder/examples/filekey", files[0].Package)
	assert.Equal(t, 3, files[0].Builders)
	assert.Equal(t, "object-builder/examples/document", files[1].Package)

	for _, f := range files {
		assert.Equal(t, config.DefaultOutput, f.Filename)

		onDisk, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, string(onDisk), string(f.Content), "%s is stale; run go generate", f.Path)

		fresh, err := f.UpToDate()
		require.NoError(t, err)
		assert.True(t, fresh)
	}
}

func TestGenerate_SkipsPackagesWithoutBuilders(t *testing.T) {
	p := &plan.Plan{Packages: []plan.PackagePlan{
		{Info: &analyze.PackageInfo{Path: "test/empty", Name: "empty"}, Output: config.DefaultOutput},
	}}

	files, err := testGenerator().Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerate_CanceledContext(t *testing.T) {
	p := singleTypePlan(t, &plan.TypePlan{Type: &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Key"}}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testGenerator().Generate(ctx, p)
	require.ErrorIs(t, err, context.Canceled)
}

const testPkg = "test/keys"

func singleTypePlan(t *testing.T, tp *plan.TypePlan) *plan.Plan {
	t.Helper()

	return &plan.Plan{Packages: []plan.PackagePlan{{
		Info:     &analyze.PackageInfo{Path: testPkg, Name: "keys", Dir: t.TempDir()},
		Output:   config.DefaultOutput,
		Builders: []plan.TypePlan{*tp},
	}}}
}

func generateOne(t *testing.T, tp *plan.TypePlan) string {
	t.Helper()

	files, err := testGenerator().Generate(context.Background(), singleTypePlan(t, tp))
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, parser.AllErrors)
	require.NoError(t, err, "generated code must parse")

	return string(files[0].Content)
}

func getter(name string, typ types.Type) plan.Property {
	return plan.Property{Name: name, Key: match.Key(name), Type: typ, Kind: introspect.KindMethod}
}

func field(name string, typ types.Type) plan.Property {
	return plan.Property{Name: name, Key: match.Key(name), Type: typ, Kind: introspect.KindField, Settable: true}
}

func TestGenerate_ValueConstructor(t *testing.T) {
	intType := types.Typ[types.Int]
	tp := &plan.TypePlan{
		Type:        &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Counter"}},
		Constructor: &analyze.FuncInfo{Name: "NewCounter"},
		Args:        []plan.Binding{{Property: getter("Start", intType), Param: "start", Type: intType}},
	}

	src := generateOne(t, tp)

	assert.Contains(t, src, "// buildCounter constructs Counter with NewCounter.")
	assert.Contains(t, src, `arg0, err := override.Resolve(o, "start", func() (v int) {`)
	assert.Contains(t, src, "v = src.Start()")
	assert.Contains(t, src, "val := NewCounter(arg0)\n\tobj := &val")
	assert.NotContains(t, src, `"fmt"`, "no constructor check needs fmt")
}

func TestGenerate_FallibleValueConstructor(t *testing.T) {
	tp := &plan.TypePlan{
		Type:        &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Counter"}},
		Constructor: &analyze.FuncInfo{Name: "NewCounter", HasErr: true},
	}

	src := generateOne(t, tp)

	assert.Contains(t, src, "val, err := NewCounter()")
	assert.Contains(t, src, `return nil, fmt.Errorf("calling NewCounter: %w", err)`)
	assert.Contains(t, src, "obj := &val")
	assert.NotContains(t, src, "ErrNilInstance")
}

func TestGenerate_ImplicitWithSetters(t *testing.T) {
	strType := types.Typ[types.String]
	tp := &plan.TypePlan{
		Type: &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Label"}},
		Setters: []plan.Binding{
			{Property: field("Text", strType), Type: strType},
			{Property: plan.Property{Name: "Color", Key: "color", Type: strType, Kind: introspect.KindMethod, Settable: true}, Type: strType},
		},
	}

	src := generateOne(t, tp)

	assert.Contains(t, src, "builder.MustRegisterFactory(buildLabel)")
	assert.Contains(t, src, "constructs Label with new(Label).")
	assert.Contains(t, src, "obj := new(Label)")
	assert.Contains(t, src, "obj.Text = prop0")
	assert.Contains(t, src, "v = src.Color()")
	assert.Contains(t, src, "obj.SetColor(prop1)")
}

func TestGenerate_QualifiesForeignTypes(t *testing.T) {
	stdTime := types.NewPackage("time", "time")
	otherTime := types.NewPackage("example.com/acme/time", "time")
	self := types.NewPackage(testPkg, "keys")

	named := func(pkg *types.Package, name string) types.Type {
		return types.NewNamed(types.NewTypeName(token.NoPos, pkg, name, nil), types.Typ[types.Int64], nil)
	}

	stamp := types.NewPointer(named(stdTime, "Time"))
	tick := named(otherTime, "Tick")
	local := named(self, "Zone")

	tp := &plan.TypePlan{
		Type: &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Event"}},
		Setters: []plan.Binding{
			{Property: field("At", stamp), Type: stamp},
			{Property: field("Tick", tick), Type: tick},
			{Property: field("Zone", local), Type: local},
		},
	}

	src := generateOne(t, tp)

	assert.Contains(t, src, "func() (v *time.Time)")
	assert.Contains(t, src, "func() (v time2.Tick)")
	assert.Contains(t, src, "func() (v Zone)")
	assert.Contains(t, src, `time2 "example.com/acme/time"`)
}

func TestGenerate_AliasesPackagesShadowedByDeclarations(t *testing.T) {
	self := types.NewPackage(testPkg, "keys")
	for _, name := range []string{"builder", "override", "fmt"} {
		self.Scope().Insert(types.NewVar(token.NoPos, self, name, types.Typ[types.Int]))
	}

	intType := types.Typ[types.Int]
	p := singleTypePlan(t, &plan.TypePlan{
		Type:        &analyze.StructInfo{ID: analyze.TypeID{PkgPath: testPkg, Name: "Key"}},
		Constructor: &analyze.FuncInfo{Name: "NewKey", ReturnsPointer: true, HasErr: true},
		Args:        []plan.Binding{{Property: getter("ID", intType), Param: "id", Type: intType}},
	})
	p.Packages[0].Info.Package = self

	files, err := testGenerator().Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, files, 1)

	src := string(files[0].Content)

	assert.Contains(t, src, `builder2 "object-builder/builder"`)
	assert.Contains(t, src, `override2 "object-builder/override"`)
	assert.Contains(t, src, `fmt2 "fmt"`)
	assert.Contains(t, src, "builder2.MustRegisterFactory(buildKey)")
	assert.Contains(t, src, "func buildKey(o *override2.Store, src *Key) (*Key, error) {")
	assert.Contains(t, src, `arg0, err := override2.Resolve(o, "id", func() (v int) {`)
	assert.Contains(t, src, `return nil, fmt2.Errorf("calling NewKey: %w", err)`)
	assert.Contains(t, src, `return nil, fmt2.Errorf("%w: NewKey", builder2.ErrNilInstance)`)
	assert.NotContains(t, src, "\tbuilder.")
}

func TestImportSet_Groups(t *testing.T) {
	s := newImportSet("object-builder/examples/filekey")
	s.add("time", "time")
	s.add("github.com/google/uuid", "uuid")
	s.add("fmt", "fmt")
	s.add("gopkg.in/yaml.v3", "yaml")

	assert.Equal(t, [][]importSpec{
		{{Path: "fmt"}, {Path: "time"}},
		{{Path: "github.com/google/uuid"}, {Alias: "yaml", Path: "gopkg.in/yaml.v3"}},
		{{Path: BuilderImportPath}, {Path: OverrideImportPath}},
	}, s.groups())
}

func TestImportSet_AliasesCollisions(t *testing.T) {
	s := newImportSet("example.com/app")

	assert.Equal(t, "builder", s.add(BuilderImportPath, "builder"))
	assert.Equal(t, "builder2", s.add("example.com/other/builder", "builder"))
	assert.Equal(t, "builder3", s.add("example.com/third/builder", "builder"))
	assert.Equal(t, "builder2", s.add("example.com/other/builder", "builder"))
}

func TestImportSet_ReservedNames(t *testing.T) {
	s := newImportSet("example.com/app", "builder", "Config")

	assert.Equal(t, "builder2", s.builder)
	assert.Equal(t, "override", s.override)
	assert.Equal(t, "src2", s.add("example.com/acme/src", "src"), "locals of generated routines are taken")
	assert.Equal(t, "config", s.add("example.com/acme/config", "config"))
}
