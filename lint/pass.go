package lint

import (
	"sort"

	"github.com/dhamidi/ironlint/syntax"
)

// Pass collects diagnostics for one compilation unit. Analyzers report into
// it as they traverse their inputs; the configured levels decide whether a
// finding is suppressed, warned or denied. Reported diagnostics are buffered
// and flushed in source order, so the emission order does not depend on the
// order analyzers happen to run in.
//
// A Pass is not safe for concurrent use; create one per file.
type Pass struct {
	File   *syntax.File
	Levels Levels

	diags []Diagnostic
}

// NewPass returns a pass for file with the given level configuration.
// A nil levels map means every lint runs at its default level.
func NewPass(file *syntax.File, levels Levels) *Pass {
	return &Pass{File: file, Levels: levels}
}

// Report buffers a diagnostic after applying the effective level of its lint.
// Diagnostics whose lint is allowed are dropped. Hard lints always report at
// error severity.
func (p *Pass) Report(d Diagnostic) {
	if d.Lint != nil {
		level := p.Levels.For(d.Lint)
		if level == LevelAllow {
			return
		}
		d.Severity = level.Severity()
	}
	p.diags = append(p.diags, d)
}

// Diagnostics flushes the buffered findings sorted by primary span. The sort
// is stable, so diagnostics on the same span keep their report order (the
// parentheses finding precedes the loop-style finding on a `while (true)`).
func (p *Pass) Diagnostics() []Diagnostic {
	diags := make([]Diagnostic, len(p.diags))
	copy(diags, p.diags)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Primary.Span.Before(diags[j].Primary.Span)
	})
	return diags
}

// ErrorCount returns the number of buffered error-severity diagnostics.
func (p *Pass) ErrorCount() int {
	n := 0
	for _, d := range p.diags {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}
