package parser

import (
	"fmt"
	"runtime"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/printfmt"
	"github.com/pontaoski/chic/typeenv"
	"github.com/pontaoski/chic/types"
)

type Parser struct {
	env *typeenv.Env
}

func NewParser(env *typeenv.Env) *Parser {
	return &Parser{env: env}
}

func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(runtime.Error); ok {
		panic(r)
	}
	rerr, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = tracerr.Wrap(rerr)
}

// Parse segments tokens into statements and builds one node per statement,
// binding every declaration it meets in the parser's Env.
func (p *Parser) Parse(tokens []types.Token) (nodes []ast.Node, err error) {
	defer recoverInto(&err)

	stmts, err := Segment(tokens)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	for _, stmt := range stmts {
		nodes = append(nodes, p.build(stmt))
	}

	return nodes, nil
}

// Build turns a single statement slice into a node.
func (p *Parser) Build(stmt []types.Token) (node ast.Node, err error) {
	defer recoverInto(&err)

	return p.build(stmt), nil
}

func fail(toks []types.Token, format string, args ...interface{}) {
	var loc types.Span
	if len(toks) > 0 {
		loc = toks[0].Location
	}
	panic(errors.ParseError{
		Reason:   fmt.Sprintf(format, args...),
		Tokens:   toks,
		Location: loc,
	})
}

func (p *Parser) build(toks []types.Token) ast.Node {
	if len(toks) == 0 {
		fail(toks, "empty statement")
	}

	first := toks[0]

	if len(toks) == 1 {
		if first.IsKeyword(types.KwReturn) {
			return ast.Return{}
		}
		return p.leaf(first)
	}

	switch first.Kind {
	case types.KEYWORD:
		switch {
		case first.Keyword.IsType():
			return p.declaration(toks)
		case first.Keyword == types.KwFn:
			return p.function(toks)
		case first.Keyword == types.KwIf:
			return p.ifStatement(toks)
		case first.Keyword == types.KwWhile:
			return p.whileLoop(toks)
		case first.Keyword == types.KwFor:
			return p.forLoop(toks)
		case first.Keyword == types.KwReturn:
			return ast.Return{Value: p.expression(toks[1:])}
		case first.Keyword == types.KwNot:
			return ast.UnaryExpression{Operator: ast.Not, Operand: p.build(toks[1:])}
		case first.Keyword == types.KwElif, first.Keyword == types.KwElse:
			fail(toks, "`%s` without a preceding if", first.Lit)
		}
	case types.IDENT:
		if toks[1].Kind == types.LPAREN && matchParen(toks, 1) == len(toks)-1 {
			return p.call(toks)
		}
		return p.expression(toks)
	case types.LPAREN:
		if matchParen(toks, 0) == len(toks)-1 {
			return p.build(toks[1 : len(toks)-1])
		}
		return p.expression(toks)
	case types.BANG:
		return ast.UnaryExpression{Operator: ast.Not, Operand: p.build(toks[1:])}
	case types.MINUS:
		return p.expression(toks)
	default:
		if first.IsOperand() {
			return p.expression(toks)
		}
	}

	fail(toks, "statement does not start a declaration, definition, call or expression")
	return nil
}

// leaf converts a lone operand token, checking that names were declared.
func (p *Parser) leaf(tok types.Token) ast.Node {
	node, ok := ast.Literal(tok)
	if !ok {
		fail([]types.Token{tok}, "expected a value, got %s", tok)
	}
	if call, ok := node.(ast.VariableCall); ok {
		if _, err := p.env.Lookup(call.Name); err != nil {
			terr := err.(errors.TypeError)
			terr.Location = tok.Location
			panic(terr)
		}
	}
	return node
}

// expression builds a value: a single token becomes a leaf, anything longer
// goes through the operator-precedence parser.
func (p *Parser) expression(toks []types.Token) ast.Node {
	if len(toks) == 0 {
		fail(toks, "missing expression")
	}
	if len(toks) == 1 {
		return p.leaf(toks[0])
	}
	return p.parseExpression(toks)
}

func (p *Parser) declaration(toks []types.Token) ast.Node {
	c := newCursor(toks)
	kw := c.Lex()
	name := c.LexExpecting(types.IDENT)
	vt := types.FromKeyword(kw.Keyword)

	if vt == types.None {
		fail(toks, "cannot declare %s as none", name.Lit)
	}

	if !c.PeekIs(types.ASSIGN) {
		if len(c.Rest()) > 0 {
			fail(c.Rest(), "unexpected tokens after declaration of %s", name.Lit)
		}
		if vt == types.Auto {
			panic(errors.TypeError{Name: name.Lit, Reason: "auto declaration needs an initializer", Location: name.Location})
		}
		p.env.Bind(name.Lit, vt)
		return ast.VariableDeclaration{Name: name.Lit, Type: vt}
	}

	c.LexExpecting(types.ASSIGN)
	if len(c.Rest()) == 0 {
		fail(toks, "missing initializer for %s", name.Lit)
	}
	value := p.expression(c.Rest())

	if vt == types.Auto {
		resolved, err := p.env.Evaluate(value)
		if err != nil {
			panic(err)
		}
		if resolved == types.None || resolved == types.Auto {
			panic(errors.TypeError{Name: name.Lit, Reason: "cannot infer a type from the initializer", Location: name.Location})
		}
		vt = resolved
	}

	p.env.Bind(name.Lit, vt)
	return ast.VariableInitialization{Name: name.Lit, Type: vt, Value: value}
}

func (p *Parser) parseType(c *cursor, allowNone bool) types.VarType {
	tok := c.Lex()
	if tok.Kind != types.KEYWORD || !tok.Keyword.IsType() || tok.Keyword == types.KwAuto || (!allowNone && tok.Keyword == types.KwNone) {
		fail([]types.Token{tok}, "expected a type, got %s", tok)
	}
	return types.FromKeyword(tok.Keyword)
}

func (p *Parser) function(toks []types.Token) ast.Node {
	c := newCursor(toks)
	c.LexKeyword("fn", types.KwFn)
	name := c.LexExpecting(types.IDENT)

	def := ast.FunctionDefinition{Name: name.Lit, ReturnType: types.None}

	c.LexExpecting(types.LPAREN)
	if !c.PeekIs(types.RPAREN) {
		for {
			arg := c.LexExpecting(types.IDENT)
			c.LexExpecting(types.COLON)
			kind := p.parseType(c, false)

			def.ArgNames = append(def.ArgNames, arg.Lit)
			def.ArgTypes = append(def.ArgTypes, kind)
			p.env.Bind(arg.Lit, kind)

			if c.PeekIs(types.COMMA) {
				c.LexExpecting(types.COMMA)
				continue
			}
			break
		}
	}
	c.LexExpecting(types.RPAREN)

	if c.PeekIs(types.ARROW) {
		c.LexExpecting(types.ARROW)
		def.ReturnType = p.parseType(c, true)
	}
	if c.PeekIs(types.COLON) {
		c.LexExpecting(types.COLON)
	}

	rest := c.Rest()
	if len(rest) == 0 || rest[0].Kind != types.EOL {
		fail(rest, "function %s: expected the body on the lines after the signature", name.Lit)
	}

	end := blockEnd(rest, 0, false)
	if end != len(rest)-1 {
		fail(rest[end:], "unexpected tokens after end of function %s", name.Lit)
	}

	p.env.BindFunc(def.Name, typeenv.Signature{Params: def.ArgTypes, Returns: def.ReturnType})
	def.Body = p.block(rest[:end])

	return def
}

// block builds every statement in a body slice.
func (p *Parser) block(toks []types.Token) []ast.Node {
	stmts, err := Segment(toks)
	if err != nil {
		panic(err)
	}

	var ret []ast.Node
	for _, stmt := range stmts {
		ret = append(ret, p.build(stmt))
	}
	return ret
}

// conditional parses `<kw> cond :` followed by a body. rest starts at the
// token that closed the body: an `end`, or with branches an `elif`/`else`.
func (p *Parser) conditional(toks []types.Token, branches bool) (cond ast.Node, body []ast.Node, rest []types.Token) {
	colon := findColon(toks)
	if colon < 0 {
		fail(toks, "`%s` condition is missing its terminating `:`", toks[0].Lit)
	}
	if colon == 1 {
		fail(toks, "`%s` is missing its condition", toks[0].Lit)
	}

	cond = p.expression(toks[1:colon])
	end := blockEnd(toks, colon+1, branches)
	body = p.block(toks[colon+1 : end])

	return cond, body, toks[end:]
}

func (p *Parser) ifStatement(toks []types.Token) ast.Node {
	cond, body, rest := p.conditional(toks, true)
	elseBranch := p.elseChain(rest)

	if toks[0].IsKeyword(types.KwElif) {
		return ast.ElifStatement{Condition: cond, Body: body, Else: elseBranch}
	}
	return ast.IfStatement{Condition: cond, Body: body, Else: elseBranch}
}

func (p *Parser) elseChain(rest []types.Token) ast.Node {
	switch {
	case rest[0].IsKeyword(types.KwElif):
		return p.ifStatement(rest)
	case rest[0].IsKeyword(types.KwElse):
		return p.elseStatement(rest)
	}

	if len(rest) != 1 {
		fail(rest[1:], "unexpected tokens after end")
	}
	return nil
}

func (p *Parser) elseStatement(toks []types.Token) ast.Node {
	start := 1
	if len(toks) > 1 && toks[1].Kind == types.COLON {
		start++
	}

	end := blockEnd(toks, start, true)
	if !toks[end].IsKeyword(types.KwEnd) {
		fail(toks[end:], "else must be the last branch")
	}
	if end != len(toks)-1 {
		fail(toks[end+1:], "unexpected tokens after end")
	}

	return ast.ElseStatement{Body: p.block(toks[start:end])}
}

func (p *Parser) whileLoop(toks []types.Token) ast.Node {
	cond, body, rest := p.conditional(toks, false)
	if len(rest) != 1 {
		fail(rest[1:], "unexpected tokens after end")
	}
	return ast.WhileLoop{Condition: cond, Body: body}
}

func (p *Parser) forLoop(toks []types.Token) ast.Node {
	c := newCursor(toks)
	c.LexKeyword("for", types.KwFor)
	name := c.LexExpecting(types.IDENT)
	c.LexExpecting(types.ASSIGN)

	colon := findColon(toks)
	if colon < 0 {
		fail(toks, "`for` is missing its terminating `:`")
	}

	to := -1
	for i := 3; i < colon; i++ {
		if toks[i].IsKeyword(types.KwTo) {
			to = i
			break
		}
	}
	if to < 0 {
		fail(toks[:colon], "`for` range is missing `to`")
	}

	start := p.expression(toks[3:to])
	stop := p.expression(toks[to+1 : colon])

	startType, err := p.env.Evaluate(start)
	if err != nil {
		panic(err)
	}
	stopType, err := p.env.Evaluate(stop)
	if err != nil {
		panic(err)
	}
	vt := p.env.Promote(startType, stopType)
	if !vt.IsNumeric() {
		panic(errors.TypeError{Name: name.Lit, Reason: "loop bounds must be numeric", Location: name.Location})
	}
	p.env.Bind(name.Lit, vt)

	end := blockEnd(toks, colon+1, false)
	if end != len(toks)-1 {
		fail(toks[end+1:], "unexpected tokens after end")
	}

	return ast.ForLoop{
		Name:  name.Lit,
		Type:  vt,
		Start: start,
		Stop:  stop,
		Body:  p.block(toks[colon+1 : end]),
	}
}

func (p *Parser) call(toks []types.Token) ast.Node {
	return p.functionCall(toks[0], toks[2:len(toks)-1])
}

func (p *Parser) functionCall(name types.Token, inner []types.Token) ast.FunctionCall {
	call := ast.FunctionCall{
		Name: name.Lit,
		Args: p.arguments(inner),
	}
	if call.Name == "print" {
		call.Types = p.printTypes(call.Args, name)
	}
	return call
}

// printTypes resolves what print formats against the bindings visible at
// the call, since a later declaration may rebind the same name. A literal
// first argument yields one type per placeholder, anything else one type per
// argument.
func (p *Parser) printTypes(args []ast.Node, at types.Token) []types.VarType {
	if len(args) == 0 {
		return nil
	}

	var ret []types.VarType
	if lit, ok := args[0].(ast.Str); ok {
		for _, ph := range printfmt.Locate(lit.Value) {
			t, err := p.env.Lookup(ph.Name)
			if err != nil {
				panic(errors.TypeError{Name: ph.Name, Reason: "print placeholder does not name a declared variable", Location: at.Location})
			}
			ret = append(ret, t)
		}
		return ret
	}

	for _, arg := range args {
		t, err := p.env.Evaluate(arg)
		if err != nil {
			panic(err)
		}
		ret = append(ret, t)
	}
	return ret
}

// arguments splits a call's inner tokens on top level commas. A comma free
// run of plain operands is one argument per token.
func (p *Parser) arguments(toks []types.Token) []ast.Node {
	if len(toks) == 0 {
		return nil
	}

	var parts [][]types.Token
	depth, start := 0, 0
	for i, tok := range toks {
		switch tok.Kind {
		case types.LPAREN:
			depth++
		case types.RPAREN:
			depth--
		case types.COMMA:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, toks[start:])

	if len(parts) == 1 && allOperands(toks) {
		var args []ast.Node
		for _, tok := range toks {
			args = append(args, p.leaf(tok))
		}
		return args
	}

	var args []ast.Node
	for _, part := range parts {
		if len(part) == 0 {
			fail(toks, "empty argument")
		}
		args = append(args, p.expression(part))
	}
	return args
}

func allOperands(toks []types.Token) bool {
	for _, tok := range toks {
		if !tok.IsOperand() {
			return false
		}
	}
	return true
}

// matchParen returns the index of the `)` closing the `(` at open, or -1.
func matchParen(toks []types.Token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Kind {
		case types.LPAREN:
			depth++
		case types.RPAREN:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// findColon returns the first top level `:` on the statement's first line.
func findColon(toks []types.Token) int {
	depth := 0
	for i, tok := range toks {
		switch tok.Kind {
		case types.EOL:
			return -1
		case types.LPAREN:
			depth++
		case types.RPAREN:
			depth--
		case types.COLON:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// blockEnd finds the `end` closing the body that starts at from, skipping
// nested blocks. With branches it also stops at a sibling elif or else.
func blockEnd(toks []types.Token, from int, branches bool) int {
	depth := 0
	for i := from; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind != types.KEYWORD {
			continue
		}
		switch {
		case tok.Keyword.OpensBlock():
			depth++
		case tok.Keyword == types.KwEnd:
			if depth == 0 {
				return i
			}
			depth--
		case branches && depth == 0 && (tok.Keyword == types.KwElif || tok.Keyword == types.KwElse):
			return i
		}
	}

	fail(toks, "block is missing its `end`")
	return -1
}
