package lang

import "strings"

// Format renders a tree as conventionally spaced source that parses back to
// the same tree. Operators are padded, block forms expand onto indented
// lines under their introducers, and parentheses appear only where binding
// strength demands them.
func Format(tree *Tree, indent int) string {
	if indent < 1 {
		indent = 2
	}

	f := &formatter{pad: strings.Repeat(" ", indent)}

	for i, def := range tree.Defs {
		if i > 0 {
			f.buf.WriteByte('\n')
		}

		f.definition(def)
		f.buf.WriteByte('\n')
	}

	return f.buf.String()
}

type formatter struct {
	buf   strings.Builder
	pad   string
	depth int
}

func (f *formatter) line() {
	f.buf.WriteByte('\n')

	for range f.depth {
		f.buf.WriteString(f.pad)
	}
}

func (f *formatter) definition(def *Definition) {
	f.buf.WriteString(def.Name)

	if def.Weight != 1 {
		f.buf.WriteByte('@')
		f.buf.WriteString(minifyNumber(def.Weight))
	}

	for _, param := range def.Params {
		f.buf.WriteByte(' ')
		f.buf.WriteString(param)
	}

	f.buf.WriteString(" =")
	f.body(def.Body)
}

// body writes a statement-position expression. Block forms expand onto their
// own indented lines; everything else stays on the current one.
func (f *formatter) body(e Expr) {
	if !isBlock(e) {
		f.buf.WriteByte(' ')
		f.expr(e)

		return
	}

	f.depth++
	f.line()
	f.statement(e)
	f.depth--
}

func isBlock(e Expr) bool {
	switch e.(type) {
	case *LetExpr, *IfExpr, *MatchExpr, *ForExpr, *LoopExpr:
		return true
	default:
		return false
	}
}

// statement writes a block form in multi-line layout at the current depth.
func (f *formatter) statement(e Expr) {
	switch s := e.(type) {
	case *LetExpr:
		f.buf.WriteString("let ")

		for i, def := range s.Defs {
			if i > 0 {
				f.buf.WriteString("; ")
			}

			f.letDef(def)
		}

		f.buf.WriteString(" ->")
		f.body(s.Body)
	case *IfExpr:
		f.buf.WriteString("if ")
		f.operand(s.Cond, 0)
		f.branch(s.Then)
		f.line()
		f.buf.WriteString("else")

		if chained, ok := s.Else.(*IfExpr); ok {
			f.buf.WriteByte(' ')
			f.statement(chained)

			return
		}

		f.branch(s.Else)
	case *MatchExpr:
		f.buf.WriteString("match ")
		f.operand(s.Scrutinee, 0)
		f.depth++

		for _, arm := range s.Arms {
			f.line()

			if arm.Wildcard {
				f.buf.WriteByte('_')
			} else {
				for i, pat := range arm.Patterns {
					if i > 0 {
						f.buf.WriteString(", ")
					}

					f.literal(pat)
				}
			}

			f.buf.WriteString(" ->")
			f.body(arm.Body)
		}

		f.depth--
	case *ForExpr:
		f.buf.WriteString("for ")
		f.buf.WriteString(s.Var)
		f.buf.WriteString(" in ")
		f.operand(s.Iter, 0)
		f.branch(s.Body)
	case *LoopExpr:
		f.buf.WriteString("loop ")
		f.operand(s.Count, 0)
		f.branch(s.Body)
	default:
		f.expr(e)
	}
}

// branch writes a block body on its own indented line, so the parser takes
// the line ending as the arrow.
func (f *formatter) branch(e Expr) {
	f.depth++
	f.line()

	if isBlock(e) {
		f.statement(e)
	} else {
		f.expr(e)
	}

	f.depth--
}

// expr writes an expression inline. Block forms render in their arrow and
// semicolon spelling so they stay on one line.
func (f *formatter) expr(e Expr) {
	switch v := e.(type) {
	case *LitExpr:
		f.literal(v.Lit)
	case *ListExpr:
		f.buf.WriteByte('[')

		for i, el := range v.Elems {
			if i > 0 {
				f.buf.WriteString(", ")
			}

			f.expr(el)
		}

		f.buf.WriteByte(']')
	case *UnaryExpr:
		if v.Op == OpNot {
			f.buf.WriteByte('!')
		} else {
			f.buf.WriteByte('-')
		}

		f.unaryOperand(v.Operand)
	case *BinaryExpr:
		f.operand(v.LHS, v.Op.Precedence())

		// Ranges read as one token; every other operator gets padding.
		if v.Op == OpRange || v.Op == OpRangeIncl {
			f.buf.WriteString(v.Op.String())
		} else {
			f.buf.WriteByte(' ')
			f.buf.WriteString(v.Op.String())
			f.buf.WriteByte(' ')
		}

		f.operand(v.RHS, v.Op.Precedence()+1)
	case *CallExpr:
		f.buf.WriteString(v.Name)

		for _, arg := range v.Args {
			f.buf.WriteByte(' ')
			f.arg(arg)
		}
	case *LetExpr:
		f.buf.WriteString("let ")

		for i, def := range v.Defs {
			if i > 0 {
				f.buf.WriteString("; ")
			}

			f.letDef(def)
		}

		f.buf.WriteString(" -> ")
		f.expr(v.Body)
	case *IfExpr:
		f.buf.WriteString("if ")
		f.operand(v.Cond, 0)
		f.buf.WriteString(" -> ")
		f.expr(v.Then)
		f.buf.WriteString("; else -> ")
		f.expr(v.Else)
	case *MatchExpr:
		f.buf.WriteString("match ")
		f.operand(v.Scrutinee, 0)
		f.buf.WriteString(" -> ")

		for i, arm := range v.Arms {
			if i > 0 {
				f.buf.WriteString("; ")
			}

			if arm.Wildcard {
				f.buf.WriteByte('_')
			} else {
				for j, pat := range arm.Patterns {
					if j > 0 {
						f.buf.WriteString(", ")
					}

					f.literal(pat)
				}
			}

			f.buf.WriteString(" -> ")
			f.expr(arm.Body)
		}
	case *ForExpr:
		f.buf.WriteString("for ")
		f.buf.WriteString(v.Var)
		f.buf.WriteString(" in ")
		f.operand(v.Iter, 0)
		f.buf.WriteString(" -> ")
		f.expr(v.Body)
	case *LoopExpr:
		f.buf.WriteString("loop ")
		f.operand(v.Count, 0)
		f.buf.WriteString(" -> ")
		f.expr(v.Body)
	}
}

func (f *formatter) letDef(def *Definition) {
	f.buf.WriteString(def.Name)

	for _, param := range def.Params {
		f.buf.WriteByte(' ')
		f.buf.WriteString(param)
	}

	f.buf.WriteString(" = ")
	f.operand(def.Body, 0)
}

// operand writes a subexpression in operand position. Binary children that
// bind looser than their parent and block forms that would swallow the
// surrounding operator get parentheses.
func (f *formatter) operand(e Expr, minPrec int) {
	paren := isBlock(e)

	if b, ok := e.(*BinaryExpr); ok {
		paren = b.Op.Precedence() < minPrec
	}

	if paren {
		f.buf.WriteByte('(')
	}

	f.expr(e)

	if paren {
		f.buf.WriteByte(')')
	}
}

// arg writes a call argument. Arguments bind at maximum precedence, so
// anything that is not self-delimited gets parentheses.
func (f *formatter) arg(e Expr) {
	switch v := e.(type) {
	case *LitExpr, *ListExpr:
		f.expr(v)

		return
	case *CallExpr:
		if len(v.Args) == 0 {
			f.buf.WriteString(v.Name)

			return
		}
	}

	f.buf.WriteByte('(')
	f.expr(e)
	f.buf.WriteByte(')')
}

func (f *formatter) unaryOperand(e Expr) {
	switch v := e.(type) {
	case *LitExpr:
		f.literal(v.Lit)

		return
	case *CallExpr:
		if len(v.Args) == 0 {
			f.buf.WriteString(v.Name)

			return
		}
	}

	f.buf.WriteByte('(')
	f.expr(e)
	f.buf.WriteByte(')')
}

func (f *formatter) literal(lit Literal) {
	if lit.Kind != LitList {
		minifyLiteral(&f.buf, lit)

		return
	}

	f.buf.WriteByte('[')

	for i, el := range lit.List {
		if i > 0 {
			f.buf.WriteString(", ")
		}

		f.literal(el)
	}

	f.buf.WriteByte(']')
}
