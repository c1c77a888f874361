// Package lang implements the quilt language: an indentation-sensitive
// grammar for procedural shape scripts, a parallel memoizing evaluator that
// reduces a parsed tree to a single shape graph, and a minifier.
package lang

import (
	"github.com/quiltlang/quilt/shape"
)

// Tree is a parsed script: an ordered list of top-level definitions.
type Tree struct {
	Defs []*Definition
}

// Definition is one `name[@weight] param… = body` form, either top-level or
// introduced by let.
type Definition struct {
	Body   Expr
	Name   string
	Params []string
	Weight float32
}

// Expr is a node of the expression tree.
type Expr interface {
	exprNode()
}

// LitExpr is a literal constant.
type LitExpr struct {
	Lit Literal
}

// ListExpr is a bracketed list of arbitrary subexpressions.
type ListExpr struct {
	Elems []Expr
}

// UnaryExpr applies a prefix operator to its operand.
type UnaryExpr struct {
	Operand Expr
	Op      UnaryOp
}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	LHS, RHS Expr
	Op       BinaryOp
}

// CallExpr invokes a builtin or user definition with zero or more arguments.
type CallExpr struct {
	Name string
	Args []Expr
}

// LetExpr introduces local definitions visible in its body.
type LetExpr struct {
	Body Expr
	Defs []*Definition
}

// IfExpr evaluates exactly one of its branches.
type IfExpr struct {
	Cond, Then, Else Expr
}

// MatchExpr tests a scrutinee against literal patterns in order.
type MatchExpr struct {
	Scrutinee Expr
	Arms      []MatchArm
}

// MatchArm is a single pattern block. A wildcard arm matches any value;
// otherwise the arm matches when the scrutinee equals any of its patterns.
type MatchArm struct {
	Body     Expr
	Patterns []Literal
	Wildcard bool
}

// ForExpr binds Var to each item of Iter and collects the body results.
type ForExpr struct {
	Iter Expr
	Body Expr
	Var  string
}

// LoopExpr evaluates its body Count times and collects the results.
type LoopExpr struct {
	Count Expr
	Body  Expr
}

func (*LitExpr) exprNode()    {}
func (*ListExpr) exprNode()   {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) exprNode() {}
func (*CallExpr) exprNode()   {}
func (*LetExpr) exprNode()    {}
func (*IfExpr) exprNode()     {}
func (*MatchExpr) exprNode()  {}
func (*ForExpr) exprNode()    {}
func (*LoopExpr) exprNode()   {}

// LiteralKind discriminates the variants of Literal.
type LiteralKind uint8

const (
	LitInteger LiteralKind = iota
	LitFloat
	LitBoolean
	LitHex
	LitShape
	LitList
)

// Literal is a constant that can appear directly in source text, including
// as a match pattern.
type Literal struct {
	List  []Literal
	Float float32
	Int   int32
	Hex   [3]uint8
	Bool  bool
	Shape shape.Kind
	Kind  LiteralKind
}

// IntegerLit returns an integer literal.
func IntegerLit(v int32) Literal { return Literal{Kind: LitInteger, Int: v} }

// FloatLit returns a float literal.
func FloatLit(v float32) Literal { return Literal{Kind: LitFloat, Float: v} }

// BooleanLit returns a boolean literal.
func BooleanLit(v bool) Literal { return Literal{Kind: LitBoolean, Bool: v} }

// HexLit returns a hex color literal.
func HexLit(r, g, b uint8) Literal {
	return Literal{Kind: LitHex, Hex: [3]uint8{r, g, b}}
}

// ShapeLit returns a shape constant literal.
func ShapeLit(k shape.Kind) Literal { return Literal{Kind: LitShape, Shape: k} }

// ListLit returns a list literal.
func ListLit(elems ...Literal) Literal {
	return Literal{Kind: LitList, List: elems}
}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
)

// Name returns the builtin implementing the operator.
func (op UnaryOp) Name() string {
	if op == OpNot {
		return "not"
	}

	return "neg"
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	OpCompose BinaryOp = iota
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpOr
	OpAnd
	OpRange
	OpRangeIncl
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

// String returns the operator's source spelling, which doubles as its key in
// the builtin table.
func (op BinaryOp) String() string {
	switch op {
	case OpCompose:
		return ":"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	case OpOr:
		return "||"
	case OpAnd:
		return "&&"
	case OpRange:
		return ".."
	case OpRangeIncl:
		return "..="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpPow:
		return "**"
	default:
		return "?"
	}
}

// Precedence returns the operator's binding strength. Higher binds tighter.
// All tiers associate left.
func (op BinaryOp) Precedence() int {
	switch op {
	case OpCompose, OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		return 0
	case OpOr:
		return 1
	case OpAnd:
		return 2
	case OpRange, OpRangeIncl:
		return 3
	case OpAdd, OpSub:
		return 4
	case OpMul, OpDiv, OpMod:
		return 5
	case OpPow:
		return 6
	default:
		return 0
	}
}
