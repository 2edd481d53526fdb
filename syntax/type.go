package syntax

import (
	"fmt"
	"strings"
)

// TypeKind classifies the resolved type of a place. The set is deliberately
// small: the borrow analysis only needs to decide copy-exemption and to print
// a type back in diagnostics.
type TypeKind int

const (
	TypePrim  TypeKind = iota // trivially duplicable scalar (integers, bool, char, ...)
	TypeOwned                 // owning type such as String; never trivially duplicable
	TypeRef                   // shared reference; trivially duplicable
	TypeTuple
	TypeArray
	TypeSlice
)

// Type is a resolved semantic type as delivered by the external type checker.
type Type struct {
	Kind  TypeKind
	Name  string  // display name for TypePrim and TypeOwned
	Elem  *Type   // element type for TypeArray, TypeSlice, TypeRef
	Len   int     // element count for TypeArray
	Elems []*Type // field types for TypeTuple
}

// IsCopy reports whether values of the type are exempt from move semantics:
// a composite is exempt only when every part is.
func (t *Type) IsCopy() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case TypePrim, TypeRef:
		return true
	case TypeOwned:
		return false
	case TypeTuple:
		for _, elem := range t.Elems {
			if !elem.IsCopy() {
				return false
			}
		}
		return true
	case TypeArray, TypeSlice:
		return t.Elem.IsCopy()
	default:
		return false
	}
}

func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}
	switch t.Kind {
	case TypePrim, TypeOwned:
		return t.Name
	case TypeRef:
		return "&" + t.Elem.String()
	case TypeTuple:
		parts := make([]string, len(t.Elems))
		for i, elem := range t.Elems {
			parts[i] = elem.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case TypeArray:
		return fmt.Sprintf("[%s; %d]", t.Elem, t.Len)
	case TypeSlice:
		return "[" + t.Elem.String() + "]"
	default:
		return "<unknown>"
	}
}
