package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/klauspost/readahead"

	"github.com/quiltlang/quilt/log"
	"github.com/quiltlang/quilt/shape"
)

// Keywords are reserved and cannot name definitions or parameters.
var keywords = map[string]bool{
	"let":   true,
	"if":    true,
	"else":  true,
	"match": true,
	"for":   true,
	"loop":  true,
}

// precMax is the sentinel precedence used for call arguments: the argument
// parser accepts a single primary expression and never consumes a trailing
// binary operator, so `f a+b` parses as `(f a) + b`.
const precMax = 255

// ParseOption configures parsing.
type ParseOption func(*parser)

// WithParseLogger supplies the logger used for parse diagnostics.
func WithParseLogger(logger log.Logger) ParseOption {
	return func(p *parser) { p.logger = logger }
}

// ParseReader parses a script tree from an io.Reader. The reader is
// buffered with asynchronous read-ahead, which keeps large scripts flowing
// from slow media while the parser works.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...ParseOption,
) (*Tree, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a script tree from a string.
func ParseString(
	ctx context.Context,
	s string,
	opts ...ParseOption,
) (*Tree, error) {
	p := &parser{input: s}

	for _, opt := range opts {
		opt(p)
	}

	tree, err := p.parseTree()
	if err != nil {
		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("definitions", len(tree.Defs)))

	return tree, nil
}

// parser holds the parser state. Backtracking restores pos; furthest and
// expected remember the deepest failure for error reporting.
type parser struct {
	logger   log.Logger
	input    string
	expected string
	pos      int
	furthest int
}

// errSyntax is the internal backtracking signal. Alternatives treat it as
// "try the next branch"; the top level converts it to a ParseError.
var errSyntax = NewError("syntax error")

// fail records the failure position and returns the backtracking signal.
func (p *parser) fail(expected string) error {
	if p.pos >= p.furthest {
		p.furthest = p.pos
		p.expected = expected
	}

	return errSyntax
}

// parseError converts the deepest recorded failure into a ParseError.
func (p *parser) parseError() error {
	line, col := p.position(p.furthest)

	return &ParseError{
		Source:  p.input,
		Message: "expected " + p.expected,
		Line:    line,
		Column:  col,
	}
}

// position computes the 1-based line and column of a byte offset.
func (p *parser) position(pos int) (line, col int) {
	line = 1 + strings.Count(p.input[:min(pos, len(p.input))], "\n")
	start := strings.LastIndexByte(p.input[:min(pos, len(p.input))], '\n') + 1
	col = utf8.RuneCountInString(p.input[start:min(pos, len(p.input))]) + 1

	return line, col
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.input[p.pos]
}

// eat consumes s if it is next in the input.
func (p *parser) eat(s string) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)

		return true
	}

	return false
}

// spaces consumes inline spaces and tabs, returning how many were consumed.
func (p *parser) spaces() int {
	n := 0
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
		n++
	}

	return n
}

// newline consumes a single \n or \r\n.
func (p *parser) newline() bool {
	return p.eat("\r\n") || p.eat("\n")
}

// multispace consumes any run of spaces, tabs, and newlines.
func (p *parser) multispace() int {
	n := 0

	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
			n++
		default:
			return n
		}
	}

	return n
}

// indentation skips any blank space before the next token. If one or more
// newlines were crossed, the following indentation must be at least indent
// columns deep and becomes the new block indent; otherwise the current
// indent is kept.
func (p *parser) indentation(indent int) (int, error) {
	crossed := false

	for {
		mark := p.pos

		p.spaces()

		if !p.newline() {
			p.pos = mark

			break
		}

		crossed = true
	}

	spacing := p.spaces()

	if crossed {
		if spacing < indent {
			return 0, p.fail("indented continuation")
		}

		return spacing, nil
	}

	return indent, nil
}

// end consumes a definition terminator: optional spaces then a semicolon,
// a newline, or end of input.
func (p *parser) end() error {
	p.spaces()

	if p.eat(";") || p.newline() || p.eof() {
		return nil
	}

	return p.fail("end of definition")
}

// arrowOrNewline consumes the block introducer: `->` possibly on a later
// line, or a peeked line ending for an indented block.
func (p *parser) arrowOrNewline() error {
	mark := p.pos

	p.multispace()

	if p.eat("->") {
		return nil
	}

	p.pos = mark
	p.spaces()

	if p.peek() == '\n' || p.peek() == '\r' {
		p.pos = mark

		return nil
	}

	p.pos = mark

	return p.fail("'->' or newline")
}

// parseTree parses the whole input as top-level definitions.
func (p *parser) parseTree() (*Tree, error) {
	tree := new(Tree)

	for {
		p.skipBlankLines()

		if p.eof() {
			break
		}

		def, err := p.parseDefinition()
		if err != nil {
			return nil, p.parseError()
		}

		tree.Defs = append(tree.Defs, def)
	}

	return tree, nil
}

// skipBlankLines consumes complete blank (or whitespace-only) lines, plus
// trailing whitespace before end of input.
func (p *parser) skipBlankLines() {
	for {
		mark := p.pos

		p.spaces()

		if p.newline() {
			continue
		}

		if p.eof() {
			return
		}

		p.pos = mark

		return
	}
}

// parseDefinition parses `name[@weight] param… = block`.
func (p *parser) parseDefinition() (*Definition, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	weight := float32(1)

	if p.eat("@") {
		weight, err = p.number()
		if err != nil {
			return nil, err
		}
	}

	params, err := p.params()
	if err != nil {
		return nil, err
	}

	p.multispace()

	if !p.eat("=") {
		return nil, p.fail("'='")
	}

	body, err := p.expr(1, true, 0)
	if err != nil {
		return nil, err
	}

	if err := p.end(); err != nil {
		return nil, err
	}

	return &Definition{
		Name:   name,
		Weight: weight,
		Params: params,
		Body:   body,
	}, nil
}

// params parses zero or more whitespace-separated parameter names.
func (p *parser) params() ([]string, error) {
	var params []string

	for {
		mark := p.pos

		if p.multispace() == 0 {
			break
		}

		name, err := p.identifier()
		if err != nil {
			p.pos = mark

			break
		}

		params = append(params, name)
	}

	return params, nil
}

// identifier parses a name: a letter or underscore followed by letters,
// digits, and underscores. Keywords are rejected.
func (p *parser) identifier() (string, error) {
	start := p.pos

	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	if r == utf8.RuneError || (!unicode.IsLetter(r) && r != '_') {
		return "", p.fail("identifier")
	}

	p.pos += size

	for !p.eof() {
		r, size = utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}

		p.pos += size
	}

	name := p.input[start:p.pos]
	if keywords[name] {
		p.pos = start

		return "", p.fail("identifier")
	}

	return name, nil
}

// number parses a definition weight: a float or integer value.
func (p *parser) number() (float32, error) {
	if f, err := p.floatValue(); err == nil {
		return f, nil
	}

	n, err := p.integerValue()
	if err != nil {
		return 0, err
	}

	return float32(n), nil
}

// expr parses an expression at the given block indent and minimum operator
// precedence. A trailing semicolon is consumed only when consumeSemi is set,
// so list and let-definition contexts can use it as a separator.
func (p *parser) expr(indent int, consumeSemi bool, minPrec int) (Expr, error) {
	indent, err := p.indentation(indent)
	if err != nil {
		return nil, err
	}

	unary, hasUnary := p.unaryOp()

	lhs, err := p.primary(indent, minPrec)
	if err != nil {
		return nil, err
	}

	if hasUnary {
		lhs = &UnaryExpr{Op: unary, Operand: lhs}
	}

	for {
		mark := p.pos

		// An operator on a new line is a block continuation and must meet
		// the indent of its expression.
		if _, err := p.indentation(indent); err != nil {
			p.pos = mark

			break
		}

		op, ok := p.binaryOp()
		if !ok || op.Precedence() < minPrec {
			p.pos = mark

			break
		}

		// Separators belong to the enclosing context, never to an operand.
		rhs, err := p.expr(indent+1, false, op.Precedence()+1)
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Op: op, LHS: lhs, RHS: rhs}
	}

	if consumeSemi {
		mark := p.pos

		p.spaces()

		if !p.eat(";") {
			p.pos = mark
		}
	}

	return lhs, nil
}

// primary parses a single operand. At precMax only bare identifiers are
// accepted as calls, so call arguments never recursively take arguments.
func (p *parser) primary(indent, minPrec int) (Expr, error) {
	mark := p.pos

	if lit, err := p.literal(); err == nil {
		return &LitExpr{Lit: lit}, nil
	}

	p.pos = mark

	switch p.peek() {
	case '[':
		return p.list()
	case '(':
		return p.paren()
	}

	if e, err := p.letStatement(indent); err == nil {
		return e, nil
	}

	p.pos = mark

	if e, err := p.ifStatement(indent); err == nil {
		return e, nil
	}

	p.pos = mark

	if e, err := p.matchStatement(indent); err == nil {
		return e, nil
	}

	p.pos = mark

	if e, err := p.forStatement(indent); err == nil {
		return e, nil
	}

	p.pos = mark

	if e, err := p.loopStatement(indent); err == nil {
		return e, nil
	}

	p.pos = mark

	return p.call(indent, minPrec)
}

// paren parses a parenthesized expression, which resets indentation and
// precedence.
func (p *parser) paren() (Expr, error) {
	if !p.eat("(") {
		return nil, p.fail("'('")
	}

	p.multispace()

	e, err := p.expr(0, true, 0)
	if err != nil {
		return nil, err
	}

	p.multispace()

	if !p.eat(")") {
		return nil, p.fail("')'")
	}

	return e, nil
}

// list parses `[expr, expr, …]`, which may span lines freely.
func (p *parser) list() (Expr, error) {
	if !p.eat("[") {
		return nil, p.fail("'['")
	}

	p.multispace()

	list := new(ListExpr)

	mark := p.pos

	if first, err := p.expr(0, false, 0); err == nil {
		list.Elems = append(list.Elems, first)

		for {
			mark = p.pos

			p.multispace()

			if !p.eat(",") {
				p.pos = mark

				break
			}

			p.multispace()

			next, err := p.expr(0, false, 0)
			if err != nil {
				p.pos = mark

				break
			}

			list.Elems = append(list.Elems, next)
		}
	} else {
		p.pos = mark
	}

	p.multispace()

	if !p.eat("]") {
		return nil, p.fail("']'")
	}

	return list, nil
}

// call parses `name arg…`. Arguments bind at maximum precedence and must be
// separated by inline spaces on the same line.
func (p *parser) call(indent, minPrec int) (Expr, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	callExpr := &CallExpr{Name: name}

	if minPrec >= precMax {
		return callExpr, nil
	}

	for {
		mark := p.pos

		if p.spaces() == 0 {
			break
		}

		arg, err := p.expr(indent+1, false, precMax)
		if err != nil {
			p.pos = mark

			break
		}

		callExpr.Args = append(callExpr.Args, arg)
	}

	return callExpr, nil
}

// letStatement parses `let defs… -> body` with definitions separated by
// semicolons or newlines.
func (p *parser) letStatement(indent int) (Expr, error) {
	if !p.eat("let") {
		return nil, p.fail("'let'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'let'")
	}

	first, err := p.letDefinition(indent + 1)
	if err != nil {
		return nil, err
	}

	defs := []*Definition{first}

	for {
		mark := p.pos

		if err := p.end(); err != nil {
			p.pos = mark

			break
		}

		p.multispace()

		def, err := p.letDefinition(indent + 1)
		if err != nil {
			p.pos = mark

			break
		}

		defs = append(defs, def)
	}

	if err := p.letTerminator(); err != nil {
		return nil, err
	}

	body, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	return &LetExpr{Defs: defs, Body: body}, nil
}

// letTerminator consumes the separator between let definitions and body:
// `->`, an inline semicolon, or a peeked newline.
func (p *parser) letTerminator() error {
	mark := p.pos

	p.multispace()

	if p.eat("->") {
		return nil
	}

	p.pos = mark
	p.spaces()

	if p.eat(";") {
		return nil
	}

	if p.peek() == '\n' || p.peek() == '\r' {
		return nil
	}

	p.pos = mark

	return p.fail("'->', ';', or newline")
}

// letDefinition parses one `name param… = expr` binding.
func (p *parser) letDefinition(indent int) (*Definition, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	params, err := p.params()
	if err != nil {
		return nil, err
	}

	p.multispace()

	if !p.eat("=") {
		return nil, p.fail("'='")
	}

	body, err := p.expr(indent+1, false, 0)
	if err != nil {
		return nil, err
	}

	return &Definition{
		Name:   name,
		Weight: 1,
		Params: params,
		Body:   body,
	}, nil
}

// ifStatement parses `if cond -> then else -> else` including chained
// `else if` forms.
func (p *parser) ifStatement(indent int) (Expr, error) {
	if !p.eat("if") {
		return nil, p.fail("'if'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'if'")
	}

	cond, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	if err := p.arrowOrNewline(); err != nil {
		return nil, err
	}

	then, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	p.multispace()

	if !p.eat("else") {
		return nil, p.fail("'else'")
	}

	var elseBranch Expr

	if p.peekElseIf() {
		p.multispace()

		elseBranch, err = p.ifStatement(indent)
		if err != nil {
			return nil, err
		}
	} else {
		if err := p.arrowOrNewline(); err != nil {
			return nil, err
		}

		elseBranch, err = p.expr(indent+1, true, 0)
		if err != nil {
			return nil, err
		}
	}

	return &IfExpr{Cond: cond, Then: then, Else: elseBranch}, nil
}

// peekElseIf reports whether `else` is chained to another `if` without
// consuming anything.
func (p *parser) peekElseIf() bool {
	mark := p.pos
	defer func() { p.pos = mark }()

	if p.multispace() == 0 {
		return false
	}

	return p.eat("if")
}

// matchStatement parses `match expr -> pattern-block…`.
func (p *parser) matchStatement(indent int) (Expr, error) {
	if !p.eat("match") {
		return nil, p.fail("'match'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'match'")
	}

	scrutinee, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	if err := p.arrowOrNewline(); err != nil {
		return nil, err
	}

	arm, err := p.patternBlock(indent + 1)
	if err != nil {
		return nil, err
	}

	arms := []MatchArm{arm}

	for {
		mark := p.pos

		arm, err := p.patternBlock(indent + 1)
		if err != nil {
			p.pos = mark

			break
		}

		arms = append(arms, arm)
	}

	return &MatchExpr{Scrutinee: scrutinee, Arms: arms}, nil
}

// patternBlock parses one `pattern -> body` arm.
func (p *parser) patternBlock(indent int) (MatchArm, error) {
	var arm MatchArm

	if _, err := p.indentation(indent); err != nil {
		return arm, err
	}

	if lit, err := p.patternLiteral(); err == nil {
		arm.Patterns = append(arm.Patterns, lit)

		for {
			mark := p.pos

			p.spaces()

			if !p.eat(",") {
				p.pos = mark

				break
			}

			p.spaces()

			next, err := p.patternLiteral()
			if err != nil {
				return arm, err
			}

			arm.Patterns = append(arm.Patterns, next)
		}
	} else if p.eat("_") {
		arm.Wildcard = true
	} else {
		return arm, p.fail("pattern or '_'")
	}

	if err := p.arrowOrNewline(); err != nil {
		return arm, err
	}

	body, err := p.expr(indent+1, true, 0)
	if err != nil {
		return arm, err
	}

	arm.Body = body

	return arm, nil
}

// forStatement parses `for var in iter -> body`.
func (p *parser) forStatement(indent int) (Expr, error) {
	if !p.eat("for") {
		return nil, p.fail("'for'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'for'")
	}

	name, err := p.identifier()
	if err != nil {
		return nil, err
	}

	if p.multispace() == 0 || !p.eat("in") {
		return nil, p.fail("'in'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'in'")
	}

	iter, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	if err := p.arrowOrNewline(); err != nil {
		return nil, err
	}

	body, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	return &ForExpr{Var: name, Iter: iter, Body: body}, nil
}

// loopStatement parses `loop count -> body`.
func (p *parser) loopStatement(indent int) (Expr, error) {
	if !p.eat("loop") {
		return nil, p.fail("'loop'")
	}

	if p.spaces() == 0 {
		return nil, p.fail("space after 'loop'")
	}

	count, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	if err := p.arrowOrNewline(); err != nil {
		return nil, err
	}

	body, err := p.expr(indent+1, true, 0)
	if err != nil {
		return nil, err
	}

	return &LoopExpr{Count: count, Body: body}, nil
}

// unaryOp parses an optional prefix operator. `-` is only an operator when
// not introducing a block arrow or a signed numeric literal.
func (p *parser) unaryOp() (UnaryOp, bool) {
	mark := p.pos

	if p.eat("-") {
		next := p.peek()
		if next != '>' && (next < '0' || next > '9') {
			return OpNeg, true
		}

		p.pos = mark

		return 0, false
	}

	if p.eat("!") {
		return OpNot, true
	}

	return 0, false
}

// binaryOp parses an infix operator, longest spelling first.
func (p *parser) binaryOp() (BinaryOp, bool) {
	switch {
	case p.eat("**"):
		return OpPow, true
	case p.eat("=="):
		return OpEq, true
	case p.eat("!="):
		return OpNeq, true
	case p.eat("<="):
		return OpLte, true
	case p.eat(">="):
		return OpGte, true
	case p.eat("&&"):
		return OpAnd, true
	case p.eat("||"):
		return OpOr, true
	case p.eat("..="):
		return OpRangeIncl, true
	case p.eat(".."):
		return OpRange, true
	case p.eat("+"):
		return OpAdd, true
	case p.eat("*"):
		return OpMul, true
	case p.eat("/"):
		return OpDiv, true
	case p.eat("%"):
		return OpMod, true
	case p.eat(":"):
		return OpCompose, true
	case p.eat("<"):
		return OpLt, true
	case p.eat(">"):
		return OpGt, true
	}

	// '-' is an operator only when not part of '->'.
	mark := p.pos
	if p.eat("-") {
		if p.peek() != '>' {
			return OpSub, true
		}

		p.pos = mark
	}

	return 0, false
}

// patternLiteral parses a match pattern: any literal, or a bracketed list
// of literals for membership tests.
func (p *parser) patternLiteral() (Literal, error) {
	if p.peek() == '[' {
		return p.listLiteral()
	}

	return p.literal()
}

// listLiteral parses `[lit, lit, …]`.
func (p *parser) listLiteral() (Literal, error) {
	if !p.eat("[") {
		return Literal{}, p.fail("'['")
	}

	p.multispace()

	var elems []Literal

	if first, err := p.literal(); err == nil {
		elems = append(elems, first)

		for {
			mark := p.pos

			p.multispace()

			if !p.eat(",") {
				p.pos = mark

				break
			}

			p.multispace()

			next, err := p.literal()
			if err != nil {
				return Literal{}, err
			}

			elems = append(elems, next)
		}
	}

	p.multispace()

	if !p.eat("]") {
		return Literal{}, p.fail("']'")
	}

	return ListLit(elems...), nil
}

// literal parses a constant: hex color, float, integer, boolean, or shape.
func (p *parser) literal() (Literal, error) {
	if p.peek() == '#' {
		return p.hexLiteral()
	}

	mark := p.pos

	if f, err := p.floatValue(); err == nil {
		return FloatLit(f), nil
	}

	p.pos = mark

	if n, err := p.integerValue(); err == nil {
		return IntegerLit(n), nil
	}

	p.pos = mark

	if lit, ok := p.keywordLiteral(); ok {
		return lit, nil
	}

	return Literal{}, p.fail("literal")
}

// keywordLiteral parses booleans and shape constants, requiring a word
// boundary so identifiers with these prefixes parse as calls.
func (p *parser) keywordLiteral() (Literal, bool) {
	for _, kw := range [...]struct {
		name string
		lit  Literal
	}{
		{"true", BooleanLit(true)},
		{"false", BooleanLit(false)},
		{"SQUARE", ShapeLit(shape.KindSquare)},
		{"CIRCLE", ShapeLit(shape.KindCircle)},
		{"TRIANGLE", ShapeLit(shape.KindTriangle)},
		{"FILL", ShapeLit(shape.KindFill)},
		{"EMPTY", ShapeLit(shape.KindEmpty)},
	} {
		mark := p.pos

		if p.eat(kw.name) {
			r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
				p.pos = mark

				continue
			}

			return kw.lit, true
		}
	}

	return Literal{}, false
}

// hexLiteral parses `#RRGGBB` or `#RGB`; the shorthand duplicates each
// nibble.
func (p *parser) hexLiteral() (Literal, error) {
	if !p.eat("#") {
		return Literal{}, p.fail("'#'")
	}

	digits := 0
	for digits < 6 && p.pos+digits < len(p.input) && isHexDigit(p.input[p.pos+digits]) {
		digits++
	}

	// Anything shorter than the full form falls back to the shorthand.
	if digits < 6 {
		digits = 3
	}

	if p.pos+digits > len(p.input) {
		return Literal{}, p.fail("hex color")
	}

	rgb, err := shape.ParseHex(p.input[p.pos : p.pos+digits])
	if err != nil {
		return Literal{}, p.fail("hex color")
	}

	p.pos += digits

	return HexLit(rgb[0], rgb[1], rgb[2]), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F')
}

// floatValue parses a float: `digit*.digit+` or a digit run with an
// exponent, either with an optional leading minus.
func (p *parser) floatValue() (float32, error) {
	start := p.pos

	p.eat("-")

	intDigits := p.digits()

	if p.eat(".") {
		if p.digits() == 0 {
			p.pos = start

			return 0, p.fail("float")
		}
	} else if intDigits == 0 {
		p.pos = start

		return 0, p.fail("float")
	}

	hasExp := false

	mark := p.pos
	if p.eat("e") || p.eat("E") {
		if !p.eat("+") {
			p.eat("-")
		}

		if p.digits() == 0 {
			p.pos = mark
		} else {
			hasExp = true
		}
	}

	text := p.input[start:p.pos]
	if !strings.Contains(text, ".") && !hasExp {
		p.pos = start

		return 0, p.fail("float")
	}

	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		p.pos = start

		return 0, p.fail("float")
	}

	return float32(f), nil
}

// integerValue parses a signed decimal i32.
func (p *parser) integerValue() (int32, error) {
	start := p.pos

	p.eat("-")

	if p.digits() == 0 {
		p.pos = start

		return 0, p.fail("integer")
	}

	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 32)
	if err != nil {
		p.pos = start

		return 0, p.fail("integer")
	}

	return int32(n), nil
}

// digits consumes a run of decimal digits.
func (p *parser) digits() int {
	n := 0
	for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
		n++
	}

	return n
}
