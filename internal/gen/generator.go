package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/viant/tagly/format/text"

	"variant-from-generator/internal/plan"
	"variant-from-generator/tokens"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// SingleFile puts every enum into SingleFileName.
	SingleFile bool
	// SingleFileName is the file name used when SingleFile is set.
	SingleFileName string
	// FileSuffix is appended to the snake_case enum name of per-enum files.
	FileSuffix string
	// GenerateComments adds a comment line above the impls of each enum.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		SingleFileName:   "from_impls.rs",
		FileSuffix:       "_from.rs",
		GenerateComments: true,
	}
}

// Generator generates Rust code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Rust source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "message_kind_from.rs").
	Filename string
	// Content is the formatted Rust source code.
	Content []byte
}

// fileData holds all data needed for the file template.
type fileData struct {
	GenerateComments bool
	Sections         []section
}

// section is the rendered impls of one enum.
type section struct {
	Enum string
	Body string
}

// Generate generates Rust code from a Plan. Enums without impls produce no
// output. Returns a list of generated files.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	var sections []section

	for _, ep := range p.Enums {
		if len(ep.Impls) == 0 {
			continue
		}

		body, err := renderEnum(&ep)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", ep.Name, err)
		}

		sections = append(sections, section{Enum: ep.Name, Body: body})
	}

	if len(sections) == 0 {
		return nil, nil
	}

	if g.config.SingleFile {
		file, err := g.generateFile(g.singleFileName(), sections)
		if err != nil {
			return nil, err
		}

		return []GeneratedFile{*file}, nil
	}

	files := make([]GeneratedFile, 0, len(sections))
	seen := map[string]string{}

	for _, s := range sections {
		name := g.filename(s.Enum)
		if other, ok := seen[name]; ok {
			return nil, fmt.Errorf("enums %s and %s both map to file %s", other, s.Enum, name)
		}

		seen[name] = s.Enum

		file, err := g.generateFile(name, []section{s})
		if err != nil {
			return nil, err
		}

		files = append(files, *file)
	}

	return files, nil
}

func renderEnum(ep *plan.EnumPlan) (string, error) {
	var s tokens.Stream

	for _, fi := range ep.Impls {
		impl, err := fi.Render()
		if err != nil {
			return "", err
		}

		s.Push(impl...)
	}

	return tokens.Format(s), nil
}

func (g *Generator) generateFile(name string, sections []section) (*GeneratedFile, error) {
	data := &fileData{
		GenerateComments: g.config.GenerateComments,
		Sections:         sections,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Filename: name,
		Content:  buf.Bytes(),
	}, nil
}

func (g *Generator) singleFileName() string {
	if g.config.SingleFileName == "" {
		return DefaultGeneratorConfig().SingleFileName
	}

	return g.config.SingleFileName
}

// filename returns "<snake_case enum><suffix>", e.g. "message_kind_from.rs".
func (g *Generator) filename(enum string) string {
	suffix := g.config.FileSuffix
	if suffix == "" {
		suffix = DefaultGeneratorConfig().FileSuffix
	}

	return snakeCase(enum) + suffix
}

func snakeCase(name string) string {
	name = strings.TrimPrefix(name, "r#")
	if strings.Contains(name, "_") {
		return strings.ToLower(name)
	}

	return text.CaseFormatUpperCamel.Format(name, text.CaseFormatLowerUnderscore)
}

// Template for a generated file

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by variant-from-gen. DO NOT EDIT.
{{range .Sections}}
{{if $.GenerateComments}}// From impls for enum {{.Enum}}.
{{end}}{{.Body}}
{{end}}`))
