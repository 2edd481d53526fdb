// Package lint defines the diagnostic model shared by all analyzers: lints
// with configurable levels, structured diagnostics, and the per-file pass
// that buffers findings and flushes them in source order.
package lint

import "github.com/dhamidi/ironlint/syntax"

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Label attaches a message to a source span. The primary label carries the
// diagnostic's main span; secondary labels annotate related locations
// ("value partially moved here", "help: remove these parentheses").
type Label struct {
	Span    syntax.Span
	Message string
}

// Diagnostic is one finding. Analyzers construct these and hand them to a
// Pass; they never render or print themselves.
type Diagnostic struct {
	Lint      *Lint
	Severity  Severity
	Code      string // error code such as "E0382"; empty for plain lints
	Message   string
	Primary   Label
	Secondary []Label
	Notes     []string
}
