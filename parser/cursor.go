package parser

import (
	"fmt"

	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

// cursor walks a statement slice the way the lexer used to walk a reader:
// peek at the next token, or consume it while insisting on its kind.
type cursor struct {
	toks []types.Token
	pos  int
}

func newCursor(toks []types.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) Peek() types.Token {
	if c.pos >= len(c.toks) {
		tok := types.Token{Kind: types.EOL}
		if len(c.toks) > 0 {
			tok.Location = c.toks[len(c.toks)-1].Location
		}
		return tok
	}
	return c.toks[c.pos]
}

func (c *cursor) PeekIs(k ...types.TokenKind) bool {
	return c.Peek().Is(k...)
}

func (c *cursor) Lex() types.Token {
	tok := c.Peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return tok
}

func (c *cursor) LexExpecting(k ...types.TokenKind) types.Token {
	tok := c.Lex()
	if tok.Is(k...) {
		return tok
	}

	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{Expected: k[0], Got: tok, Location: tok.Location})
	}
	panic(errors.ParseError{
		Reason:   fmt.Sprintf("got a %s, expected one of %v", tok, k),
		Location: tok.Location,
	})
}

func (c *cursor) LexKeyword(what string, kws ...types.Keyword) types.Token {
	tok := c.Lex()
	if tok.IsKeyword(kws...) {
		return tok
	}

	panic(errors.ParseError{
		Reason:   fmt.Sprintf("got a %s, expected %s", tok, what),
		Location: tok.Location,
	})
}

func (c *cursor) Rest() []types.Token {
	return c.toks[c.pos:]
}
