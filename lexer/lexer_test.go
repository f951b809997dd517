package lexer

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

func kinds(toks []types.Token) []types.TokenKind {
	var ret []types.TokenKind
	for _, tok := range toks {
		ret = append(ret, tok.Kind)
	}
	return ret
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []types.TokenKind
	}{
		{"declaration", "i32 x = 5", []types.TokenKind{types.KEYWORD, types.IDENT, types.ASSIGN, types.UINT8, types.EOL}},
		{"blank lines", "\n\n", []types.TokenKind{types.EOL, types.EOL, types.EOL}},
		{"comment", "x # the rest is ignored", []types.TokenKind{types.IDENT, types.EOL}},
		{"compound operators", "a ** b // c -> d", []types.TokenKind{types.IDENT, types.POW, types.IDENT, types.FLOORDIV, types.IDENT, types.ARROW, types.IDENT, types.EOL}},
		{"comparison", "a <= b != c", []types.TokenKind{types.IDENT, types.LTEQ, types.IDENT, types.NOTEQ, types.IDENT, types.EOL}},
		{"subtraction is not folded", "a - 1", []types.TokenKind{types.IDENT, types.MINUS, types.UINT8, types.EOL}},
		{"sign is folded", "x = -1", []types.TokenKind{types.IDENT, types.ASSIGN, types.INT8, types.EOL}},
		{"sign after paren is subtraction", "(a) - 1", []types.TokenKind{types.LPAREN, types.IDENT, types.RPAREN, types.MINUS, types.UINT8, types.EOL}},
		{"string with hash", `print("a # b")`, []types.TokenKind{types.IDENT, types.LPAREN, types.STRING, types.RPAREN, types.EOL}},
		{"logical", "a && b || !c", []types.TokenKind{types.IDENT, types.ANDAND, types.IDENT, types.OROR, types.BANG, types.IDENT, types.EOL}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.input, "test.ch")
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got := kinds(toks); repr.String(got) != repr.String(c.want) {
				t.Fatalf("got %s, want %s", repr.String(got), repr.String(c.want))
			}
		})
	}
}

func TestNarrowing(t *testing.T) {
	cases := []struct {
		text string
		want types.TokenKind
	}{
		{"0", types.UINT8},
		{"255", types.UINT8},
		{"256", types.UINT16},
		{"65536", types.UINT32},
		{"4294967296", types.UINT64},
		{"-128", types.INT8},
		{"-129", types.INT16},
		{"-32769", types.INT32},
		{"-2147483649", types.INT64},
		{"1.5", types.FLOAT32},
		{"400000000000000000000000000000000000000.0", types.FLOAT64},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			tok, err := Classify(c.text, types.Span{})
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if tok.Kind != c.want {
				t.Fatalf("%s narrowed to %s, want %s", c.text, tok.Kind, c.want)
			}
		})
	}
}

func TestClassifyWords(t *testing.T) {
	tok, err := Classify("while", types.Span{})
	if err != nil || !tok.IsKeyword(types.KwWhile) {
		t.Fatalf("while: got %s, %v", repr.String(tok), err)
	}

	tok, err = Classify("counter_2", types.Span{})
	if err != nil || tok.Kind != types.IDENT {
		t.Fatalf("counter_2: got %s, %v", repr.String(tok), err)
	}
}

func TestLocations(t *testing.T) {
	toks, err := Tokenize("a\n  bb", "loc.ch")
	if err != nil {
		t.Fatal(err)
	}

	bb := toks[2]
	if bb.Lit != "bb" {
		t.Fatalf("expected bb, got %s", bb)
	}
	if bb.Location.From.Line != 2 || bb.Location.From.Column != 3 || bb.Location.To.Column != 4 {
		t.Fatalf("bad location %s", bb.Location)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"overflow", "x = 18446744073709551616"},
		{"negative overflow", "x = -9223372036854775809"},
		{"digit led identifier", "x = 12ab"},
		{"dotted identifier", "x = a.5"},
		{"unknown character", "x = 5 $ 3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Tokenize(c.input, "bad.ch")
			if err == nil {
				t.Fatalf("expected an error")
			}
			if _, ok := tracerr.Unwrap(err).(errors.LexError); !ok {
				t.Fatalf("expected a LexError, got %T: %s", err, err)
			}
		})
	}
}
