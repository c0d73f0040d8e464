// Package errors provides error handling for resloader-generator.
//
// It re-exports github.com/cockroachdb/errors and adds the four failure
// kinds the generator distinguishes:
//
//   - ErrConfig: invalid or missing configuration, fatal, no output produced
//   - ErrIO: unreadable input or unwritable output
//   - ErrParse: malformed resource markup
//   - ErrTemplate: embedded template missing or corrupt (packaging defect)
//
// A kind is attached with Mark, so it survives further wrapping:
//
//	err := errors.Parse(errors.Wrapf(err, "parsing %s", path))
//	...
//	if errors.Is(err, errors.ErrParse) {
//	    // isolate the failing file
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

// User-facing hints
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	GetAllHints = crdb.GetAllHints
)

// Error inspection
var Is = crdb.Is

// Failure kinds. Use with Is; attach with the helpers below.
var (
	// ErrConfig indicates invalid or missing generator configuration.
	ErrConfig = New("configuration error")

	// ErrIO indicates a filesystem fault on an input or the output.
	ErrIO = New("i/o error")

	// ErrParse indicates a resource file is not well-formed markup.
	ErrParse = New("parse error")

	// ErrTemplate indicates the embedded template cannot be used.
	ErrTemplate = New("template error")
)

// Config marks err as a configuration failure.
func Config(err error) error { return mark(err, ErrConfig) }

// IO marks err as a filesystem failure.
func IO(err error) error { return mark(err, ErrIO) }

// Parse marks err as a markup failure.
func Parse(err error) error { return mark(err, ErrParse) }

// Template marks err as a template failure.
func Template(err error) error { return mark(err, ErrTemplate) }

func mark(err, kind error) error {
	if err == nil {
		return nil
	}

	return Mark(err, kind)
}

// KindOf returns the failure kind attached to err, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrConfig, ErrIO, ErrParse, ErrTemplate} {
		if Is(err, kind) {
			return kind
		}
	}

	return nil
}
