package diagnostic

import (
	"fmt"
	"strings"

	"resloader-generator/internal/common"
	"resloader-generator/internal/errors"
)

// Diagnostic codes reported while loading resource files.
const (
	CodeUnreadable  = "unreadable"
	CodeMalformed   = "malformed"
	CodeMissingName = "missing-name"
	CodeOverride    = "override"
	CodeCollision   = "field-collision"
)

// Diagnostics holds all diagnostic information from a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// File identifies which input file this relates to (if any).
	File string
	// Identifier identifies which string entry this relates to (if any).
	Identifier string
	// Err is the underlying failure, if the diagnostic was raised by one.
	Err error
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError records a failure. err may be nil.
func (d *Diagnostics) AddError(code, file string, err error) {
	msg := code
	if err != nil {
		msg = err.Error()
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  msg,
		File:     file,
		Err:      err,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, file, identifier string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   DiagnosticWarning,
		Code:       code,
		Message:    message,
		File:       file,
		Identifier: identifier,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, file, identifier string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   DiagnosticInfo,
		Code:       code,
		Message:    message,
		File:       file,
		Identifier: identifier,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
// The kind of the first underlying failure is carried over.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	err := errors.New(strings.Join(parts, "; "))
	if kind := errors.KindOf(d.Errors[0].Err); kind != nil {
		err = errors.Mark(err, kind)
	}

	return err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		prefix = append(prefix, d.File)
	}

	if d.Identifier != "" {
		prefix = append(prefix, "["+d.Identifier+"]")
	}

	msg := d.Message
	if d.Code != "" && d.Code != msg {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
