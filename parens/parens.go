// Package parens implements the redundant-parentheses analysis over a
// position-tagged syntax tree, plus the companion style lint for
// `while true` loops.
package parens

import (
	"fmt"

	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/syntax"
)

// UnusedParens reports parentheses that can be removed without changing how
// the surrounding code parses.
var UnusedParens = lint.Register(&lint.Lint{
	Name:    "unused_parens",
	Doc:     "Reports parentheses that are unnecessary in their grammatical position.",
	Default: lint.LevelDeny,
})

// WhileTrue suggests the dedicated unconditional-loop form for loops whose
// condition is the literal `true`. It co-occurs with, and never suppresses,
// an unused_parens finding on the same condition.
var WhileTrue = lint.Register(&lint.Lint{
	Name:    "while_true",
	Doc:     "Suggests `loop { ... }` for `while` loops with a literal `true` condition.",
	Default: lint.LevelWarn,
})

// rule is the per-position redundancy rule. braceSensitive positions are the
// ones where a bare brace-led expression would be a genuine parse ambiguity,
// so parentheses around such an expression are kept.
type rule struct {
	label          string
	braceSensitive bool
}

// ruleFor is the closed rule table over position tags. Adding a grammatical
// position means adding a case here; PosNone returns ok=false.
func ruleFor(tag syntax.PositionTag) (rule, bool) {
	switch tag {
	case syntax.PosReturnValue:
		return rule{label: "`return` value"}, true
	case syntax.PosType:
		return rule{label: "type"}, true
	case syntax.PosCallArg:
		return rule{label: "function argument"}, true
	case syntax.PosMethodArg:
		return rule{label: "method argument"}, true
	case syntax.PosIfCond:
		return rule{label: "`if` condition", braceSensitive: true}, true
	case syntax.PosWhileCond:
		return rule{label: "`while` condition", braceSensitive: true}, true
	case syntax.PosMatchHead:
		return rule{label: "`match` head expression", braceSensitive: true}, true
	case syntax.PosLetHead:
		return rule{label: "`let` head expression", braceSensitive: true}, true
	case syntax.PosAssignedValue:
		return rule{label: "assigned value"}, true
	case syntax.PosAssignRHS:
		return rule{label: "assignment right-hand side"}, true
	case syntax.PosCompoundAssignRHS:
		return rule{label: "compound assignment right-hand side"}, true
	default:
		return rule{}, false
	}
}

// Check reports redundant parentheses and `while true` loops. The two rules
// are independent: each gets its own walk, so a `while (true)` condition
// yields both findings, with the parentheses one reported first.
func Check(pass *lint.Pass) {
	if pass.File == nil || pass.File.Root == nil {
		return
	}
	syntax.Walk(pass.File.Root, func(e *syntax.Expr) bool {
		if e.Kind == syntax.ExprParen {
			checkParen(pass, e)
		}
		return true
	})
	syntax.Walk(pass.File.Root, func(e *syntax.Expr) bool {
		if e.Kind == syntax.ExprWhile {
			checkWhileTrue(pass, e)
		}
		return true
	})
}

func checkParen(pass *lint.Pass, e *syntax.Expr) {
	r, ok := ruleFor(e.Pos)
	if !ok {
		return
	}
	if r.braceSensitive && containsExteriorStructLit(e.Inner()) {
		return
	}
	pass.Report(lint.Diagnostic{
		Lint:    UnusedParens,
		Message: fmt.Sprintf("unnecessary parentheses around %s", r.label),
		Primary: lint.Label{
			Span:    e.Span,
			Message: "help: remove these parentheses",
		},
	})
}

func checkWhileTrue(pass *lint.Pass, e *syntax.Expr) {
	if len(e.Children) == 0 {
		return
	}
	cond := e.Children[0]
	inner := cond
	for inner != nil && inner.Kind == syntax.ExprParen {
		inner = inner.Inner()
	}
	if !inner.IsLiteralTrue() {
		return
	}
	pass.Report(lint.Diagnostic{
		Lint:    WhileTrue,
		Message: "denote infinite loops with `loop { ... }`",
		Primary: lint.Label{
			Span:    cond.Span,
			Message: "help: use `loop`",
		},
	})
}

// containsExteriorStructLit reports whether a struct literal appears at the
// "edge" of the expression, where a bare occurrence would make the opening
// brace of the literal ambiguous with the block that follows the position.
func containsExteriorStructLit(e *syntax.Expr) bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case syntax.ExprStructLit:
		return true
	case syntax.ExprBinary, syntax.ExprAssign, syntax.ExprCompoundAssign, syntax.ExprRange:
		for _, child := range e.Children {
			if containsExteriorStructLit(child) {
				return true
			}
		}
		return false
	case syntax.ExprUnary, syntax.ExprReference,
		syntax.ExprFieldAccess, syntax.ExprMethodCall, syntax.ExprIndex:
		// Only the receiver side is exposed; arguments are bracketed.
		if len(e.Children) == 0 {
			return false
		}
		return containsExteriorStructLit(e.Children[0])
	default:
		return false
	}
}
