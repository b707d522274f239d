// Package main provides the CLI entrypoint for variant-from-gen.
//
// variant-from-gen reads a YAML manifest describing Rust enums and writes
// one `impl From<T> for Enum` block per eligible single-field variant:
//   - Loads and validates the manifest
//   - Resolves it into a plan of impls, reporting conflicts
//   - Generates formatted Rust files, or prints them with -stdout
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/internal/gen"
	"variant-from-generator/internal/manifest"
	"variant-from-generator/internal/plan"
	"variant-from-generator/options"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	manifest   string
	out        string
	single     bool
	stdout     bool
	bindings   string
	noComments bool
	verbose    bool
	dump       bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("variant-from-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	fs.StringVar(&f.manifest, "manifest", "variants.yaml", "path to the YAML manifest")
	fs.StringVar(&f.out, "out", gen.DefaultGeneratorConfig().OutputDir, "output directory")
	fs.BoolVar(&f.single, "single", false, "write all impls into a single file")
	fs.BoolVar(&f.stdout, "stdout", false, "print generated code instead of writing files")
	fs.StringVar(&f.bindings, "bindings", "", "override manifest bindings (std or core)")
	fs.BoolVar(&f.noComments, "no-comments", false, "omit per-enum comments")
	fs.BoolVar(&f.verbose, "v", false, "print the resolution report")
	fs.BoolVar(&f.dump, "dump", false, "dump the resolved plan")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintln(stderr, err)

		return 2
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(f, logger, stdout, stderr); err != nil {
		logger.Error("generation failed", "error", err)
		return 1
	}

	return 0
}

func generate(f *cliFlags, logger *slog.Logger, stdout, stderr io.Writer) error {
	mf, err := manifest.LoadFile(f.manifest)
	if err != nil {
		return err
	}

	logger.Info("loaded manifest", "path", f.manifest, "enums", len(mf.Enums))

	cfg := plan.DefaultConfig()

	if f.bindings != "" {
		b, err := options.ParseBindings(f.bindings)
		if err != nil {
			return err
		}

		cfg.Bindings = &b
	}

	p, resolveErr := plan.NewResolver(mf, cfg).Resolve()
	if p != nil {
		printDiagnostics(stderr, &p.Diagnostics)

		if f.dump {
			spew.Fdump(stderr, p)
		}

		if f.verbose {
			fmt.Fprint(stderr, plan.FormatReport(plan.GenerateReport(p)))
		}
	}

	if resolveErr != nil {
		return resolveErr
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.OutputDir = f.out
	genCfg.SingleFile = f.single
	genCfg.GenerateComments = !f.noComments

	files, err := gen.NewGenerator(genCfg).Generate(p)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		logger.Warn("nothing to generate", "manifest", f.manifest)
		return nil
	}

	if f.stdout {
		return gen.PrintFiles(stdout, files)
	}

	if err := gen.WriteFiles(files, genCfg.OutputDir); err != nil {
		return err
	}

	logger.Info("wrote files", "dir", genCfg.OutputDir, "files", len(files), "impls", p.ImplCount())

	return nil
}

// printDiagnostics writes errors and warnings; infos only reach the report.
func printDiagnostics(w io.Writer, d *diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		fmt.Fprintf(w, "error: %s\n", e)
	}

	for _, warn := range d.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}
