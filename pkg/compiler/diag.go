package compiler

import (
	"fmt"
	"io"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityFatal
)

func (s Severity) label() string {
	if s == SeverityFatal {
		return "***ERROR***"
	}
	return "***WARNING***"
}

// Diagnostic is a single recoverable compile-time message tied to a source
// position. Unlike a Go error, appending a Diagnostic never stops the walk
// that produced it; only Diagnostics.ErrorOccurred reports whether any
// fatal diagnostic was ever recorded.
type Diagnostic struct {
	Pos      Position
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d %s %s", d.Pos.Line, d.Pos.Col, d.Severity.label(), d.Message)
}

// Diagnostics is an ordered, append-only sink for every recoverable message
// produced while lexing, parsing, and resolving a program. It mirrors the
// non-aborting ErrMsg.fatal/ErrMsg.warn convention: a fatal diagnostic only
// sets an internal flag, it never unwinds the call stack.
type Diagnostics struct {
	records []Diagnostic
	errored bool
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Warn appends a warning-severity diagnostic.
func (d *Diagnostics) Warn(pos Position, format string, args ...any) {
	d.records = append(d.records, Diagnostic{Pos: pos, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Fatal appends an error-severity diagnostic and sets ErrorOccurred. It does
// not stop the caller; the caller decides whether to keep walking.
func (d *Diagnostics) Fatal(pos Position, format string, args ...any) {
	d.records = append(d.records, Diagnostic{Pos: pos, Severity: SeverityFatal, Message: fmt.Sprintf(format, args...)})
	d.errored = true
}

// ErrorOccurred reports whether any Fatal diagnostic has been recorded.
func (d *Diagnostics) ErrorOccurred() bool {
	return d.errored
}

// Records returns every diagnostic in the order it was recorded.
func (d *Diagnostics) Records() []Diagnostic {
	return d.records
}

// WriteTo writes every diagnostic, one per line, in recording order.
func (d *Diagnostics) WriteTo(w io.Writer) {
	for _, rec := range d.records {
		fmt.Fprintln(w, rec.String())
	}
}
