// Package syntax holds the shared source model: positions and spans, the
// uniform expression tree delivered by the external parser, and resolved
// types as delivered by the external type checker.
package syntax

import "fmt"

// Position is a location in a source file. Offset is the byte offset from the
// start of the file; Line and Column are 1-based.
type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open source region [Start, End).
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return s.Start.String()
}

// IsZero reports whether the span carries no location information.
func (s Span) IsZero() bool {
	return s.Start.Line == 0 && s.End.Line == 0
}

// Before reports whether s starts strictly before other in the same file,
// giving the source order used when flushing diagnostics.
func (s Span) Before(other Span) bool {
	if s.Start.Line != other.Start.Line {
		return s.Start.Line < other.Start.Line
	}
	return s.Start.Column < other.Start.Column
}
