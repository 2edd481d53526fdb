package syntax

// ExprKind identifies the kind of a syntax node. The tree is produced by an
// external parser/resolver; only the kinds the analyzers inspect are modeled.
type ExprKind int

const (
	ExprError ExprKind = iota

	// Atoms
	ExprIdent
	ExprLiteral // integer, float, string, char, bool (Text holds the source form)
	ExprPath    // possibly-qualified name, also used for type paths

	// Composite expressions
	ExprParen // parenthesized expression or type; Pos carries the position tag
	ExprStructLit
	ExprTuple
	ExprArray
	ExprBinary
	ExprUnary
	ExprReference
	ExprCall
	ExprMethodCall
	ExprFieldAccess
	ExprIndex
	ExprRange

	// Statements and control flow
	ExprBlock
	ExprIf
	ExprWhile
	ExprLoop
	ExprMatch
	ExprMatchArm
	ExprReturn
	ExprLet
	ExprAssign
	ExprCompoundAssign
)

// PositionTag is the grammatical position a parenthesized node occupies,
// assigned by the external parser. It is a closed set: the redundancy rule
// table switches over every variant.
type PositionTag int

const (
	PosNone PositionTag = iota
	PosReturnValue
	PosType
	PosCallArg
	PosMethodArg
	PosIfCond
	PosWhileCond
	PosMatchHead
	PosLetHead
	PosAssignedValue
	PosAssignRHS
	PosCompoundAssignRHS
)

var positionTagNames = map[PositionTag]string{
	PosNone:              "none",
	PosReturnValue:       "return-value",
	PosType:              "type",
	PosCallArg:           "call-argument",
	PosMethodArg:         "method-argument",
	PosIfCond:            "if-condition",
	PosWhileCond:         "while-condition",
	PosMatchHead:         "match-head",
	PosLetHead:           "let-head",
	PosAssignedValue:     "assigned-value",
	PosAssignRHS:         "assignment-rhs",
	PosCompoundAssignRHS: "compound-assignment-rhs",
}

func (p PositionTag) String() string {
	if name, ok := positionTagNames[p]; ok {
		return name
	}
	return "unknown"
}

// PositionTagFromName is the inverse of String, used by the fixture decoder.
func PositionTagFromName(name string) (PositionTag, bool) {
	for tag, n := range positionTagNames {
		if n == name {
			return tag, true
		}
	}
	return PosNone, false
}

// Expr is a uniform syntax node. Children ordering is positional: the first
// child of ExprParen is the wrapped node, the first child of ExprIf/ExprWhile
// is the condition, the first child of ExprMatch is the head expression.
type Expr struct {
	Kind     ExprKind
	Span     Span
	Pos      PositionTag // set on ExprParen nodes only
	Text     string      // source text for atoms (identifier, literal)
	Children []*Expr
}

// Inner returns the node wrapped by a parenthesized node, or nil.
func (e *Expr) Inner() *Expr {
	if e == nil || e.Kind != ExprParen || len(e.Children) == 0 {
		return nil
	}
	return e.Children[0]
}

// IsLiteralTrue reports whether the node is the bare boolean literal `true`.
func (e *Expr) IsLiteralTrue() bool {
	return e != nil && e.Kind == ExprLiteral && e.Text == "true"
}

// Walk visits e and its children in pre-order. If fn returns false the
// node's children are skipped.
func Walk(e *Expr, fn func(*Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		Walk(child, fn)
	}
}

// File is one pre-analyzed compilation unit: the raw source (kept for
// diagnostic rendering) plus the position-tagged tree. Root may be nil when a
// fixture exercises only the borrow analysis.
type File struct {
	Name   string
	Source string
	Root   *Expr
}
