package unit

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ironlint/syntax"
)

// typeNode mirrors the resolved-type schema:
//
//	type: {array: {len: 3, elem: {tuple: [{owned: String}, {owned: String}]}}}
type typeNode struct {
	Prim  string     `yaml:"prim"`
	Owned string     `yaml:"owned"`
	Ref   *typeNode  `yaml:"ref"`
	Tuple []typeNode `yaml:"tuple"`
	Array *arrayNode `yaml:"array"`
	Slice *typeNode  `yaml:"slice"`
}

type arrayNode struct {
	Len  int      `yaml:"len"`
	Elem typeNode `yaml:"elem"`
}

func decodeType(t *typeNode) (*syntax.Type, error) {
	if t == nil {
		return nil, fmt.Errorf("missing type")
	}
	switch {
	case t.Prim != "":
		return &syntax.Type{Kind: syntax.TypePrim, Name: t.Prim}, nil
	case t.Owned != "":
		return &syntax.Type{Kind: syntax.TypeOwned, Name: t.Owned}, nil
	case t.Ref != nil:
		elem, err := decodeType(t.Ref)
		if err != nil {
			return nil, err
		}
		return &syntax.Type{Kind: syntax.TypeRef, Elem: elem}, nil
	case t.Tuple != nil:
		elems := make([]*syntax.Type, 0, len(t.Tuple))
		for i := range t.Tuple {
			elem, err := decodeType(&t.Tuple[i])
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return &syntax.Type{Kind: syntax.TypeTuple, Elems: elems}, nil
	case t.Array != nil:
		elem, err := decodeType(&t.Array.Elem)
		if err != nil {
			return nil, err
		}
		return &syntax.Type{Kind: syntax.TypeArray, Elem: elem, Len: t.Array.Len}, nil
	case t.Slice != nil:
		elem, err := decodeType(t.Slice)
		if err != nil {
			return nil, err
		}
		return &syntax.Type{Kind: syntax.TypeSlice, Elem: elem}, nil
	default:
		return nil, fmt.Errorf("empty type node")
	}
}

// exprNode mirrors the syntax-tree schema: kind name, span, optional position
// tag (paren nodes), literal text, children.
type exprNode struct {
	Kind     string     `yaml:"kind"`
	Span     string     `yaml:"span"`
	Pos      string     `yaml:"pos"`
	Text     string     `yaml:"text"`
	Children []exprNode `yaml:"children"`
}

var exprKinds = map[string]syntax.ExprKind{
	"ident":           syntax.ExprIdent,
	"literal":         syntax.ExprLiteral,
	"path":            syntax.ExprPath,
	"paren":           syntax.ExprParen,
	"struct-lit":      syntax.ExprStructLit,
	"tuple":           syntax.ExprTuple,
	"array":           syntax.ExprArray,
	"binary":          syntax.ExprBinary,
	"unary":           syntax.ExprUnary,
	"ref":             syntax.ExprReference,
	"call":            syntax.ExprCall,
	"method-call":     syntax.ExprMethodCall,
	"field-access":    syntax.ExprFieldAccess,
	"index":           syntax.ExprIndex,
	"range":           syntax.ExprRange,
	"block":           syntax.ExprBlock,
	"if":              syntax.ExprIf,
	"while":           syntax.ExprWhile,
	"loop":            syntax.ExprLoop,
	"match":           syntax.ExprMatch,
	"match-arm":       syntax.ExprMatchArm,
	"return":          syntax.ExprReturn,
	"let":             syntax.ExprLet,
	"assign":          syntax.ExprAssign,
	"compound-assign": syntax.ExprCompoundAssign,
}

func decodeExpr(n *exprNode, filename string, offsets []int) (*syntax.Expr, error) {
	kind, ok := exprKinds[n.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
	e := &syntax.Expr{Kind: kind, Text: n.Text}
	if n.Span != "" {
		span, err := parseSpan(n.Span, filename, offsets)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.Kind, err)
		}
		e.Span = span
	}
	if n.Pos != "" {
		tag, ok := syntax.PositionTagFromName(n.Pos)
		if !ok {
			return nil, fmt.Errorf("node %s: unknown position tag %q", n.Kind, n.Pos)
		}
		e.Pos = tag
	}
	for i := range n.Children {
		child, err := decodeExpr(&n.Children[i], filename, offsets)
		if err != nil {
			return nil, err
		}
		e.Children = append(e.Children, child)
	}
	return e, nil
}

// parseSpan reads the compact "line:col-line:col" form used throughout unit
// files, e.g. "2:11-2:17". Columns are 1-based and the end is exclusive.
func parseSpan(s, filename string, offsets []int) (syntax.Span, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return syntax.Span{}, fmt.Errorf("bad span %q (want line:col-line:col)", s)
	}
	start, err := parsePosition(parts[0], filename, offsets)
	if err != nil {
		return syntax.Span{}, fmt.Errorf("bad span %q: %w", s, err)
	}
	end, err := parsePosition(parts[1], filename, offsets)
	if err != nil {
		return syntax.Span{}, fmt.Errorf("bad span %q: %w", s, err)
	}
	return syntax.Span{Start: start, End: end}, nil
}

func parsePosition(s, filename string, offsets []int) (syntax.Position, error) {
	var line, col int
	if _, err := fmt.Sscanf(s, "%d:%d", &line, &col); err != nil {
		return syntax.Position{}, fmt.Errorf("bad position %q", s)
	}
	if line < 1 || col < 1 {
		return syntax.Position{}, fmt.Errorf("position %q out of range", s)
	}
	pos := syntax.Position{File: filename, Line: line, Column: col}
	if line-1 < len(offsets) {
		pos.Offset = offsets[line-1] + col - 1
	}
	return pos, nil
}

// lineOffsets returns the byte offset of the start of each line.
func lineOffsets(source string) []int {
	offsets := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
