package gen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"object-builder/internal/introspect"
	"object-builder/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Workers bounds the number of packages generated concurrently.
	Workers int
	// DebugUnformatted writes the raw template output next to the intended
	// file when formatting fails.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Workers:          runtime.GOMAXPROCS(0),
		DebugUnformatted: true,
	}
}

// Generator generates Go code from a builder plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Workers < 1 {
		config.Workers = 1
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is the file path, inside the package directory.
	Path string
	// Filename is the base name of Path.
	Filename string
	// Package is the import path of the package the file belongs to.
	Package string
	// Builders is the number of construction routines in the file.
	Builders int
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per package plan holding at least one builder.
// Files are returned in plan order.
func (g *Generator) Generate(ctx context.Context, p *plan.Plan) ([]GeneratedFile, error) {
	results := make([]*GeneratedFile, len(p.Packages))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for i := range p.Packages {
		pp := &p.Packages[i]
		if len(pp.Builders) == 0 {
			continue
		}

		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := g.generatePackage(pp)
			if err != nil {
				return fmt.Errorf("generating %s: %w", pp.Info.Path, err)
			}

			results[i] = file

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(results))

	for _, f := range results {
		if f != nil {
			files = append(files, *f)
		}
	}

	return files, nil
}

// generatePackage renders and formats the file of one package.
func (g *Generator) generatePackage(pp *plan.PackagePlan) (*GeneratedFile, error) {
	data, err := buildFileData(pp)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	path := filepath.Join(pp.Info.Dir, pp.Output)

	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(pp.Info.Dir, pp.Output, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Path:     path,
		Filename: pp.Output,
		Package:  pp.Info.Path,
		Builders: len(pp.Builders),
		Content:  formatted,
	}, nil
}

// buildFileData lowers a package plan into template data.
func buildFileData(pp *plan.PackagePlan) (*fileData, error) {
	var reserved []string
	if pp.Info.Package != nil {
		reserved = pp.Info.Package.Scope().Names()
	}

	imps := newImportSet(pp.Info.Path, reserved...)
	data := &fileData{
		Package:  pp.Info.Name,
		Builder:  imps.builder,
		Override: imps.override,
	}

	for i := range pp.Builders {
		b, err := buildBuilderData(&pp.Builders[i], imps)
		if err != nil {
			return nil, err
		}

		data.Builders = append(data.Builders, *b)
	}

	data.Imports = imps.groups()

	return data, nil
}

// buildBuilderData renders the body of one construction routine.
func buildBuilderData(tp *plan.TypePlan, imps *importSet) (*builderData, error) {
	name := tp.Type.ID.Name
	b := &builderData{
		Func: "build" + name,
		Type: name,
		Via:  "new(" + name + ")",
	}

	for i, arg := range tp.Args {
		block, err := resolveBlock(fmt.Sprintf("arg%d", i), arg, imps)
		if err != nil {
			return nil, err
		}

		b.Blocks = append(b.Blocks, block)
	}

	if tp.Implicit() {
		b.Blocks = append(b.Blocks, "\tobj := new("+name+")")
	} else {
		b.Via = tp.Constructor.Name
		b.Blocks = append(b.Blocks, constructBlocks(tp, imps)...)
	}

	for i, set := range tp.Setters {
		v := fmt.Sprintf("prop%d", i)

		block, err := resolveBlock(v, set, imps)
		if err != nil {
			return nil, err
		}

		b.Blocks = append(b.Blocks, block, assignStatement(set.Property, v))
	}

	return b, nil
}

func resolveBlock(v string, bind plan.Binding, imps *importSet) (string, error) {
	read := bind.Property.Name
	if bind.Property.Kind == introspect.KindMethod {
		read += "()"
	}

	var buf bytes.Buffer

	err := resolveTemplate.Execute(&buf, resolveData{
		Override: imps.override,
		Var:      v,
		Key:      bind.Property.Key,
		Type:     imps.typeString(bind.Type),
		Read:     read,
	})
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", bind.Property.Name, err)
	}

	return buf.String(), nil
}

// constructBlocks calls the constructor and leaves a non-nil *T in obj.
func constructBlocks(tp *plan.TypePlan, imps *importSet) []string {
	fn := tp.Constructor

	args := make([]string, len(tp.Args))
	for i := range tp.Args {
		args[i] = fmt.Sprintf("arg%d", i)
	}

	lhs := "val"
	if fn.ReturnsPointer {
		lhs = "obj"
	}

	if fn.HasErr {
		lhs += ", err"
	}

	call := fmt.Sprintf("\t%s := %s(%s)", lhs, fn.Name, strings.Join(args, ", "))

	var blocks []string

	if fn.HasErr {
		blocks = append(blocks, call+fmt.Sprintf(`
	if err != nil {
		return nil, %s.Errorf("calling %s: %%w", err)
	}`, imps.add("fmt", "fmt"), fn.Name))
		call = ""
	}

	var tail string

	if fn.ReturnsPointer {
		tail = fmt.Sprintf(`	if obj == nil {
		return nil, %s.Errorf("%%w: %s", %s.ErrNilInstance)
	}`, imps.add("fmt", "fmt"), fn.Name, imps.builder)
	} else {
		tail = "\tobj := &val"
	}

	if call != "" {
		tail = call + "\n" + tail
	}

	return append(blocks, tail)
}

func assignStatement(p plan.Property, v string) string {
	if p.Kind == introspect.KindMethod {
		return "\tobj.Set" + p.Name + "(" + v + ")"
	}

	return "\tobj." + p.Name + " = " + v
}
