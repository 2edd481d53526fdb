package borrow

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ironlint/syntax"
)

// ProjKind is one step from a value to a part of it.
type ProjKind int

const (
	ProjIndex ProjKind = iota // a[i]
	ProjField                 // a.0 (tuple field)
	ProjRest                  // a contiguous run of remaining elements (x @ ..)
)

// Projection is a single step in a place path.
type Projection struct {
	Kind  ProjKind
	Index int // element or field index; unused for ProjRest
}

// overlaps reports whether two projection steps can refer to overlapping
// storage. A rest projection covers a run of indices, so it overlaps any
// index step at the same depth.
func (p Projection) overlaps(q Projection) bool {
	if p.Kind == ProjRest || q.Kind == ProjRest {
		return p.Kind != ProjField && q.Kind != ProjField
	}
	return p.Kind == q.Kind && p.Index == q.Index
}

// Place is a storage location: a root binding plus a projection path. The
// place hierarchy is a strict tree, so conflict detection is an element-wise
// prefix comparison rather than graph reachability.
type Place struct {
	Root string
	Path []Projection
}

// Conflicts reports whether two places can refer to overlapping storage:
// same root, and one path is an ancestor of (or equal to) the other.
func (p Place) Conflicts(q Place) bool {
	if p.Root != q.Root {
		return false
	}
	n := len(p.Path)
	if len(q.Path) < n {
		n = len(q.Path)
	}
	for i := 0; i < n; i++ {
		if !p.Path[i].overlaps(q.Path[i]) {
			return false
		}
	}
	return true
}

// String renders the place the way diagnostics cite it: index and rest
// projections as `[..]`, tuple fields as `.N`.
func (p Place) String() string {
	var b strings.Builder
	b.WriteString(p.Root)
	for _, step := range p.Path {
		switch step.Kind {
		case ProjField:
			fmt.Fprintf(&b, ".%d", step.Index)
		default:
			b.WriteString("[..]")
		}
	}
	return b.String()
}

// typeAt resolves the type of the place reached by path from root. Rest
// projections produce a slice of the element type; the exact length of the
// covered run does not matter for copy-exemption or diagnostics.
func typeAt(root *syntax.Type, path []Projection) *syntax.Type {
	t := root
	for _, step := range path {
		if t == nil {
			return nil
		}
		switch step.Kind {
		case ProjIndex:
			t = t.Elem
		case ProjRest:
			t = &syntax.Type{Kind: syntax.TypeSlice, Elem: t.Elem}
		case ProjField:
			if step.Index < 0 || step.Index >= len(t.Elems) {
				return nil
			}
			t = t.Elems[step.Index]
		}
	}
	return t
}
