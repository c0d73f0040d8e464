// Package pipeline runs one generation: extract and merge every input,
// render the accessor class, and write it if the output is stale.
package pipeline

import (
	"context"

	"resloader-generator/internal/config"
	"resloader-generator/internal/diagnostic"
	"resloader-generator/internal/errors"
	"resloader-generator/internal/gen"
	"resloader-generator/internal/logger"
	"resloader-generator/internal/output"
	"resloader-generator/internal/resource"
)

// Result describes a finished run.
type Result struct {
	// Outcome tells whether the output was written or already up to date.
	Outcome output.Outcome
	// Path is the generated file.
	Path string
	// Fields is the number of accessor fields generated.
	Fields int
	// Diagnostics holds the per-file problems met while loading inputs.
	Diagnostics diagnostic.Diagnostics
}

// Run performs one generation for cfg.
func Run(ctx context.Context, cfg *config.GenerationConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	set, err := load(cfg)
	if err != nil {
		return nil, err
	}

	unit, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Render(set.Entries, cfg)
	if err != nil {
		return nil, err
	}

	outcome, err := output.Write(unit, set.Newest)
	if err != nil {
		return nil, err
	}

	logger.Logger.Infow("generation finished",
		"outcome", outcome.String(),
		"path", unit.Path,
		"fields", unit.Fields,
		"inputs", len(cfg.Inputs))

	return &Result{
		Outcome:     outcome,
		Path:        unit.Path,
		Fields:      unit.Fields,
		Diagnostics: set.Diagnostics,
	}, nil
}

// Status describes whether an existing output is current.
type Status struct {
	// Path is the file the output would be written to.
	Path string
	// UpToDate is true if a run would be skipped.
	UpToDate bool
}

// Check reports whether a run for cfg would rewrite the output, without writing.
func Check(ctx context.Context, cfg *config.GenerationConfig) (*Status, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	path, err := cfg.TargetPath()
	if err != nil {
		return nil, err
	}

	set, err := load(cfg)
	if err != nil {
		return nil, err
	}

	fresh, err := output.IsFresh(path, set.Newest)
	if err != nil {
		return nil, errors.Wrap(err, "checking output")
	}

	return &Status{Path: path, UpToDate: fresh}, nil
}

// load extracts and merges the inputs and logs what went wrong on the way.
// In strict mode any failed input fails the run.
func load(cfg *config.GenerationConfig) (*resource.ResourceSet, error) {
	set := resource.Load(cfg.Inputs)
	set.Diagnostics.Merge(gen.FieldCollisions(set.Entries))

	report(set.Diagnostics)

	if cfg.Strict {
		if err := set.Diagnostics.Error(); err != nil {
			return nil, errors.Wrap(err, "strict mode")
		}
	}

	return set, nil
}

func report(d diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		logger.Logger.Errorw("resource file skipped", "file", e.File, "code", e.Code, "error", e.Message)
	}

	for _, w := range d.Warnings {
		logger.Logger.Warnw(w.Message, "file", w.File, "code", w.Code)
	}

	for _, i := range d.Infos {
		logger.Logger.Debugw(i.Message, "file", i.File, "identifier", i.Identifier)
	}
}
