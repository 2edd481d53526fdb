// Package borrow implements the partial-move analysis: it replays the
// move/use events an external resolver recorded for one root binding and
// reports uses of the whole value after a sub-path was moved out of it.
package borrow

import (
	"fmt"

	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/syntax"
)

// UseOfPartiallyMovedValue is the hard error reported when a whole value is
// read after one of its sub-paths was consumed by a pattern binding.
var UseOfPartiallyMovedValue = lint.Register(&lint.Lint{
	Name: "use_of_partially_moved_value",
	Code: "E0382",
	Doc:  "Reports reads of a whole value after a pattern moved one of its elements or fields out.",
	Hard: true,
})

// Binding is the root value under analysis.
type Binding struct {
	Name string
	Type *syntax.Type
}

// EventKind distinguishes the two events the resolver records.
type EventKind int

const (
	// EventMove records a place consumed by value during pattern destructuring.
	EventMove EventKind = iota
	// EventUse records a read of the whole root value.
	EventUse
)

// Event is one entry of the ordered per-binding event stream.
type Event struct {
	Kind  EventKind
	Place Place
	Span  syntax.Span
}

// moveRecord is an outstanding move of a non-copy place.
type moveRecord struct {
	place Place
	span  syntax.Span
	typ   *syntax.Type
}

// Check replays events for binding in order and reports one diagnostic per
// conflicting use. Moves of copy-exempt places record nothing; moves are
// never undone (re-initialization is an external event this analysis does
// not model).
func Check(pass *lint.Pass, binding Binding, events []Event) {
	var outstanding []moveRecord
	for _, ev := range events {
		switch ev.Kind {
		case EventMove:
			typ := typeAt(binding.Type, ev.Place.Path)
			if typ.IsCopy() {
				continue
			}
			outstanding = append(outstanding, moveRecord{place: ev.Place, span: ev.Span, typ: typ})

		case EventUse:
			moved, ok := firstConflict(outstanding, ev.Place)
			if !ok {
				continue
			}
			pass.Report(lint.Diagnostic{
				Lint:    UseOfPartiallyMovedValue,
				Code:    UseOfPartiallyMovedValue.Code,
				Message: fmt.Sprintf("use of partially moved value: `%s`", binding.Name),
				Primary: lint.Label{
					Span:    ev.Span,
					Message: "value used here after partial move",
				},
				Secondary: []lint.Label{{
					Span:    moved.span,
					Message: "value partially moved here",
				}},
				Notes: []string{fmt.Sprintf(
					"partial move occurs because `%s` has type `%s`, which does not implement the `Copy` trait",
					moved.place, moved.typ,
				)},
			})
		}
	}
}

// firstConflict returns the representative moved place for a use: the
// earliest outstanding move that overlaps it. A use conflicts against the
// union of outstanding moves, but is reported at most once.
func firstConflict(outstanding []moveRecord, use Place) (moveRecord, bool) {
	for _, rec := range outstanding {
		if rec.place.Conflicts(use) {
			return rec, true
		}
	}
	return moveRecord{}, false
}
