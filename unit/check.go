package unit

import (
	"github.com/dhamidi/ironlint/borrow"
	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/parens"
)

// Check runs both analyzers over a unit and returns the diagnostics in
// source order. Each call owns its own pass, so independent units can be
// checked concurrently.
func Check(u *Unit, levels lint.Levels) []lint.Diagnostic {
	pass := lint.NewPass(u.File, levels)
	for _, input := range u.Borrow {
		borrow.Check(pass, input.Binding, input.Events)
	}
	parens.Check(pass)
	return pass.Diagnostics()
}
