package gen

import (
	_ "embed"
	"strings"

	"resloader-generator/internal/config"
	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
)

//go:embed resloader.java.tmpl
var classTemplate string

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Template is the class template text with the five placeholders.
	Template string
}

// DefaultGeneratorConfig returns the configuration using the embedded class template.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{Template: classTemplate}
}

// Generator renders the accessor class for a set of string entries.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// RenderedUnit is a generated source file and where it belongs.
type RenderedUnit struct {
	// Path is the file the content must be written to.
	Path string
	// Content is the generated source text.
	Content []byte
	// Fields is the number of accessor fields in Content.
	Fields int
}

// Render produces the accessor class for entries.
//
// Every identifier becomes a public final String field named after the
// upper-cased identifier, assigned in the constructor from the resource with
// the original identifier. Fields appear in identifier order.
func (g *Generator) Render(entries map[string]string, cfg *config.GenerationConfig) (*RenderedUnit, error) {
	if strings.TrimSpace(g.config.Template) == "" {
		return nil, errors.Template(errors.WithHint(
			errors.New("class template is empty"), "the binary was built without its embedded template"))
	}

	pkg, name, err := cfg.SplitClassName()
	if err != nil {
		return nil, err
	}

	path, err := cfg.TargetPath()
	if err != nil {
		return nil, err
	}

	fields := buildFields(entries)

	declarations, assignments, err := buildBlocks(fields)
	if err != nil {
		return nil, err
	}

	content := expand(g.config.Template, map[string]string{
		PlaceholderApplicationID:     cfg.ApplicationID,
		PlaceholderPackageName:       pkg,
		PlaceholderClassName:         name,
		PlaceholderFieldDeclarations: declarations,
		PlaceholderFieldAssignments:  assignments,
	})

	logger.Logger.Debugw("rendered class", "class", cfg.ClassName, "fields", len(fields))

	return &RenderedUnit{
		Path:    path,
		Content: []byte(content),
		Fields:  len(fields),
	}, nil
}
