// Command objbuild-gen generates reflection-free construction routines for
// object-builder.
//
// For every selected struct it:
//   - Parses the package (AST + go/types) to find properties and constructors
//   - Binds constructor parameters and setters to properties by folded name
//   - Writes a builders file whose init registers one routine per type
//
// Packages come from objbuild.yaml or, for go:generate use, from -pkg.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"object-builder/internal/analyze"
	"object-builder/internal/config"
	"object-builder/internal/diagnostic"
	"object-builder/internal/gen"
	"object-builder/internal/plan"
)

var (
	errPlanning = errors.New("planning failed")
	errStale    = errors.New("generated files are out of date")
)

// options holds the parsed command line.
type options struct {
	configPath  string
	pkg         string
	out         string
	types       string
	prefix      string
	logLevel    string
	logFormat   string
	workers     int
	dryRun      bool
	check       bool
	dump        bool
	printConfig bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(args []string, errW io.Writer) (*options, error) {
	opts := &options{}

	flags := flag.NewFlagSet("objbuild-gen", flag.ContinueOnError)
	flags.SetOutput(errW)

	flags.StringVar(&opts.configPath, "config", config.DefaultFileName, "configuration file, ignored when -pkg is set")
	flags.StringVar(&opts.pkg, "pkg", "", "generate for this single package pattern instead of the configuration")
	flags.StringVar(&opts.out, "out", config.DefaultOutput, "generated file name, with -pkg")
	flags.StringVar(&opts.types, "types", "", "comma-separated struct names to generate, with -pkg (default all)")
	flags.StringVar(&opts.prefix, "prefix", config.DefaultConstructorPrefix, "constructor name prefix, with -pkg")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flags.IntVar(&opts.workers, "workers", gen.DefaultGeneratorConfig().Workers, "packages generated concurrently")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the files that would be written")
	flags.BoolVar(&opts.check, "check", false, "fail when a generated file differs from the one on disk")
	flags.BoolVar(&opts.dump, "dump", false, "dump the plan at debug level")
	flags.BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration and exit")

	flags.Usage = func() {
		fmt.Fprintln(errW, "Usage: objbuild-gen [flags]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	return opts, nil
}

// run encapsulates the command for testing. Generated file listings go to
// outW, logs to errW.
func run(ctx context.Context, args []string, outW, errW io.Writer) error {
	opts, err := parseFlags(args, errW)
	if err != nil {
		return err
	}

	logger := newLogger(opts.logLevel, opts.logFormat, errW)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.printConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding configuration: %w", err)
		}

		_, err = outW.Write(data)

		return err
	}

	p, err := buildPlan(cfg, logger)
	if err != nil {
		return err
	}

	if opts.dump {
		logger.Debug("plan", "builders", spew.Sdump(summarize(p)))
	}

	logDiagnostics(logger, &p.Diagnostics)

	if p.Diagnostics.HasErrors() {
		return fmt.Errorf("%w: %w", errPlanning, p.Diagnostics.Error())
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Workers = opts.workers

	files, err := gen.NewGenerator(genCfg).Generate(ctx, p)
	if err != nil {
		return err
	}

	switch {
	case opts.check:
		return checkFiles(files, logger)

	case opts.dryRun:
		for _, f := range files {
			fmt.Fprintf(outW, "%s\t%d builders\n", f.Path, f.Builders)
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("generated", "file", f.Path, "builders", f.Builders)
	}

	return nil
}

func loadConfig(opts *options) (*config.File, error) {
	if opts.pkg == "" {
		return config.LoadFile(opts.configPath)
	}

	pkg := config.Package{
		Path:              opts.pkg,
		Output:            opts.out,
		ConstructorPrefix: opts.prefix,
	}

	if opts.types != "" {
		for _, name := range strings.Split(opts.types, ",") {
			if name = strings.TrimSpace(name); name != "" {
				pkg.Types = append(pkg.Types, name)
			}
		}
	}

	return config.ForPackage(pkg)
}

// buildPlan analyzes and plans every configured package.
func buildPlan(cfg *config.File, logger *slog.Logger) (*plan.Plan, error) {
	out := &plan.Plan{}

	for _, pkgCfg := range cfg.Packages {
		analyzer := analyze.NewAnalyzer(analyze.Options{
			Dir:               cfg.Dir,
			ConstructorPrefix: pkgCfg.ConstructorPrefix,
		})

		info, err := analyzer.LoadPackage(pkgCfg.Path)
		if err != nil {
			return nil, fmt.Errorf("analyzing %s: %w", pkgCfg.Path, err)
		}

		logger.Debug("analyzed", "package", info.Path, "structs", len(info.Types))

		p := plan.NewPlanner(analyzer.Graph()).Plan(plan.Request{Package: info, Config: pkgCfg})

		out.Packages = append(out.Packages, p.Packages...)
		out.Diagnostics.Merge(p.Diagnostics)
	}

	return out, nil
}

func logDiagnostics(logger *slog.Logger, d *diagnostic.Diagnostics) {
	for _, x := range d.Errors {
		logger.Error(x.String())
	}

	for _, x := range d.Warnings {
		logger.Warn(x.String())
	}

	for _, x := range d.Infos {
		logger.Debug(x.String())
	}
}

func checkFiles(files []gen.GeneratedFile, logger *slog.Logger) error {
	var stale []string

	for _, f := range files {
		fresh, err := f.UpToDate()
		if err != nil {
			return err
		}

		if !fresh {
			logger.Error("stale", "file", f.Path)
			stale = append(stale, f.Path)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", errStale, strings.Join(stale, ", "))
	}

	return nil
}

// builderSummary is the dumped form of a TypePlan.
type builderSummary struct {
	Type        string
	Constructor string
	Args        []string
	Setters     []string
	Inert       []string
}

func summarize(p *plan.Plan) map[string][]builderSummary {
	out := make(map[string][]builderSummary, len(p.Packages))

	for _, pp := range p.Packages {
		for _, tp := range pp.Builders {
			s := builderSummary{Type: tp.Type.ID.Name, Constructor: "new", Inert: tp.Inert}
			if !tp.Implicit() {
				s.Constructor = tp.Constructor.Name
			}

			for _, b := range tp.Args {
				s.Args = append(s.Args, b.Param+"="+b.Property.Name)
			}

			for _, b := range tp.Setters {
				s.Setters = append(s.Setters, b.Property.Name)
			}

			out[pp.Info.Path] = append(out[pp.Info.Path], s)
		}
	}

	return out
}
