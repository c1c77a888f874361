package lang

import (
	"fmt"
	"strconv"
	"strings"
)

// Minify renders a tree as compact single-line source that parses back to
// the same tree. Indentation blocks collapse to arrow and semicolon forms,
// and every definition takes exactly one line.
func Minify(tree *Tree) string {
	defs := make([]string, len(tree.Defs))
	for i, def := range tree.Defs {
		defs[i] = minifyDefinition(def)
	}

	return strings.Join(defs, "\n")
}

func minifyDefinition(def *Definition) string {
	var buf strings.Builder

	buf.WriteString(def.Name)

	if def.Weight != 1 {
		buf.WriteByte('@')
		buf.WriteString(minifyNumber(def.Weight))
	}

	for _, param := range def.Params {
		buf.WriteByte(' ')
		buf.WriteString(param)
	}

	buf.WriteByte('=')
	minifyExpr(&buf, def.Body)

	return buf.String()
}

func minifyExpr(buf *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LitExpr:
		minifyLiteral(buf, e.Lit)
	case *ListExpr:
		buf.WriteByte('[')

		for i, el := range e.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}

			minifyExpr(buf, el)
		}

		buf.WriteByte(']')
	case *UnaryExpr:
		// Rendered as a parenthesized call so the operand cannot bind to
		// surrounding operators.
		buf.WriteByte('(')
		buf.WriteString(e.Op.Name())
		buf.WriteByte(' ')
		minifyArg(buf, e.Operand)
		buf.WriteByte(')')
	case *BinaryExpr:
		buf.WriteByte('(')
		minifyOperand(buf, e.LHS)
		buf.WriteString(e.Op.String())
		minifyOperand(buf, e.RHS)
		buf.WriteByte(')')
	case *CallExpr:
		if len(e.Args) == 0 {
			buf.WriteString(e.Name)

			return
		}

		buf.WriteByte('(')
		buf.WriteString(e.Name)

		for _, arg := range e.Args {
			buf.WriteByte(' ')
			minifyArg(buf, arg)
		}

		buf.WriteByte(')')
	case *LetExpr:
		buf.WriteString("let ")

		body := minifyLetDefs(buf, e)

		buf.WriteString("->")
		minifyExpr(buf, body)
	case *IfExpr:
		buf.WriteString("if ")
		minifyOperand(buf, e.Cond)
		buf.WriteString("->")
		minifyExpr(buf, e.Then)
		buf.WriteString(";else->")
		minifyExpr(buf, e.Else)
	case *MatchExpr:
		buf.WriteString("match ")
		minifyOperand(buf, e.Scrutinee)
		buf.WriteString("->")

		for i, arm := range e.Arms {
			if i > 0 {
				buf.WriteByte(';')
			}

			if arm.Wildcard {
				buf.WriteByte('_')
			} else {
				for j, pat := range arm.Patterns {
					if j > 0 {
						buf.WriteByte(',')
					}

					minifyLiteral(buf, pat)
				}
			}

			buf.WriteString("->")
			minifyExpr(buf, arm.Body)
		}
	case *ForExpr:
		buf.WriteString("for ")
		buf.WriteString(e.Var)
		buf.WriteString(" in ")
		minifyOperand(buf, e.Iter)
		buf.WriteString("->")
		minifyExpr(buf, e.Body)
	case *LoopExpr:
		buf.WriteString("loop ")
		minifyOperand(buf, e.Count)
		buf.WriteString("->")
		minifyExpr(buf, e.Body)
	}
}

// minifyLetDefs writes a let's bindings, flattening directly nested lets
// into one semicolon-joined chain, and returns the innermost body.
func minifyLetDefs(buf *strings.Builder, e *LetExpr) Expr {
	first := true

	for {
		for _, def := range e.Defs {
			if !first {
				buf.WriteByte(';')
			}

			first = false

			buf.WriteString(def.Name)

			for _, param := range def.Params {
				buf.WriteByte(' ')
				buf.WriteString(param)
			}

			buf.WriteByte('=')
			minifyOperand(buf, def.Body)
		}

		inner, ok := e.Body.(*LetExpr)
		if !ok {
			return e.Body
		}

		e = inner
	}
}

// minifyArg writes a call argument, parenthesizing anything that is not a
// literal or a bare name, since arguments bind at maximum precedence.
func minifyArg(buf *strings.Builder, arg Expr) {
	switch a := arg.(type) {
	case *LitExpr:
		minifyLiteral(buf, a.Lit)

		return
	case *ListExpr:
		minifyExpr(buf, a)

		return
	case *CallExpr:
		if len(a.Args) == 0 {
			buf.WriteString(a.Name)

			return
		}
	}

	minifyOperand(buf, arg)
}

// minifyOperand writes a subexpression in operand position. Block forms
// would greedily swallow the surrounding operator, so they get parentheses;
// everything else already renders self-delimited.
func minifyOperand(buf *strings.Builder, expr Expr) {
	switch expr.(type) {
	case *LetExpr, *IfExpr, *MatchExpr, *ForExpr, *LoopExpr:
		buf.WriteByte('(')
		minifyExpr(buf, expr)
		buf.WriteByte(')')
	default:
		minifyExpr(buf, expr)
	}
}

func minifyLiteral(buf *strings.Builder, lit Literal) {
	switch lit.Kind {
	case LitInteger:
		buf.WriteString(strconv.FormatInt(int64(lit.Int), 10))
	case LitFloat:
		buf.WriteString(formatFloat(lit.Float))
	case LitBoolean:
		buf.WriteString(strconv.FormatBool(lit.Bool))
	case LitHex:
		fmt.Fprintf(buf, "#%02x%02x%02x", lit.Hex[0], lit.Hex[1], lit.Hex[2])
	case LitShape:
		buf.WriteString(lit.Shape.String())
	case LitList:
		buf.WriteByte('[')

		for i, el := range lit.List {
			if i > 0 {
				buf.WriteByte(',')
			}

			minifyLiteral(buf, el)
		}

		buf.WriteByte(']')
	}
}

func minifyNumber(v float32) string {
	if v == float32(int32(v)) {
		return strconv.FormatInt(int64(int32(v)), 10)
	}

	return formatFloat(v)
}
