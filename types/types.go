package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	ILLEGAL TokenKind = iota

	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	STRING

	IDENT
	KEYWORD

	PLUS
	MINUS
	STAR
	SLASH
	FLOORDIV
	POW
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ
	ASSIGN
	EQEQ
	NOTEQ
	LT
	GT
	LTEQ
	GTEQ
	ANDAND
	OROR
	BANG
	ARROW
	COLON
	COMMA
	LPAREN
	RPAREN

	EOL
)

var tokenKindNames = map[TokenKind]string{
	ILLEGAL:  "ILLEGAL",
	INT8:     "INT8",
	INT16:    "INT16",
	INT32:    "INT32",
	INT64:    "INT64",
	UINT8:    "UINT8",
	UINT16:   "UINT16",
	UINT32:   "UINT32",
	UINT64:   "UINT64",
	FLOAT32:  "FLOAT32",
	FLOAT64:  "FLOAT64",
	STRING:   "STRING",
	IDENT:    "IDENT",
	KEYWORD:  "KEYWORD",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	FLOORDIV: "FLOORDIV",
	POW:      "POW",
	PLUSEQ:   "PLUSEQ",
	MINUSEQ:  "MINUSEQ",
	STAREQ:   "STAREQ",
	SLASHEQ:  "SLASHEQ",
	ASSIGN:   "ASSIGN",
	EQEQ:     "EQEQ",
	NOTEQ:    "NOTEQ",
	LT:       "LT",
	GT:       "GT",
	LTEQ:     "LTEQ",
	GTEQ:     "GTEQ",
	ANDAND:   "ANDAND",
	OROR:     "OROR",
	BANG:     "BANG",
	ARROW:    "ARROW",
	COLON:    "COLON",
	COMMA:    "COMMA",
	LPAREN:   "LPAREN",
	RPAREN:   "RPAREN",
	EOL:      "EOL",
}

func (t TokenKind) String() string {
	if name, ok := tokenKindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is one lexical unit. Numeric tokens carry their parsed value in
// Int, Uint or Float according to Kind; Lit always holds the source text.
type Token struct {
	Kind     TokenKind
	Keyword  Keyword
	Lit      string
	Int      int64
	Uint     uint64
	Float    float64
	Location Span
}

func (t Token) Is(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func (t Token) IsKeyword(kws ...Keyword) bool {
	if t.Kind != KEYWORD {
		return false
	}
	for _, kw := range kws {
		if t.Keyword == kw {
			return true
		}
	}
	return false
}

// IsNumber reports whether the token is an integer or float literal.
func (t Token) IsNumber() bool {
	return t.Kind >= INT8 && t.Kind <= FLOAT64
}

// IsOperand reports whether the token can stand on its own as a value.
func (t Token) IsOperand() bool {
	return t.IsNumber() || t.Kind == STRING || t.Kind == IDENT
}

// VarType is the literal type a numeric token was narrowed to.
func (t Token) VarType() VarType {
	switch t.Kind {
	case INT8:
		return I8
	case INT16:
		return I16
	case INT32:
		return I32
	case INT64:
		return I64
	case UINT8:
		return U8
	case UINT16:
		return U16
	case UINT32:
		return U32
	case UINT64:
		return U64
	case FLOAT32:
		return F32
	case FLOAT64:
		return F64
	case STRING:
		return Str
	}
	return None
}

func (t Token) String() string {
	if t.Kind == EOL {
		return "EOL"
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Lit)
}
