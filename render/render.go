// Package render turns diagnostics into output. The text renderer produces
// annotated source blocks with underlined spans; the JSON renderer produces a
// machine-readable document. Rendering is the only layer that looks at the
// raw source text.
package render

import (
	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/syntax"
)

// Renderer consumes per-file diagnostics and a final summary.
type Renderer interface {
	Render(file *syntax.File, diags []lint.Diagnostic) error
	Close(summary Summary) error
}

// Summary aggregates severities across all rendered files and decides the
// process exit status.
type Summary struct {
	Errors   int
	Warnings int
}

// Add counts the severities of one diagnostic batch.
func (s *Summary) Add(diags []lint.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case lint.SeverityError:
			s.Errors++
		case lint.SeverityWarning:
			s.Warnings++
		}
	}
}

// Failed reports whether any error-severity diagnostic was rendered.
func (s Summary) Failed() bool {
	return s.Errors > 0
}
