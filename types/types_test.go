package types

import "testing"

func TestTokenPredicates(t *testing.T) {
	num := Token{Kind: UINT16, Lit: "300", Uint: 300}
	kw := Token{Kind: KEYWORD, Keyword: KwWhile, Lit: "while"}
	str := Token{Kind: STRING, Lit: `"s"`}

	if !num.IsNumber() || !num.IsOperand() || num.VarType() != U16 {
		t.Errorf("bad predicates for %s", num)
	}
	if !str.IsOperand() || str.IsNumber() || str.VarType() != Str {
		t.Errorf("bad predicates for %s", str)
	}
	if kw.IsOperand() || !kw.IsKeyword(KwIf, KwWhile) || kw.IsKeyword() || kw.IsKeyword(KwFor) {
		t.Errorf("bad predicates for %s", kw)
	}
	if !kw.Is(IDENT, KEYWORD) || kw.Is() {
		t.Errorf("Is is wrong for %s", kw)
	}
	if (Token{Kind: IDENT, Lit: "while"}).IsKeyword(KwWhile) {
		t.Errorf("identifiers are never keywords")
	}
}

func TestKeywords(t *testing.T) {
	for name, kw := range Keywords {
		if kw.String() != name {
			t.Errorf("%s round trips to %s", name, kw)
		}
	}

	if !KwAuto.IsType() || !KwNone.IsType() || KwIf.IsType() {
		t.Errorf("IsType is wrong")
	}
	if !KwFn.OpensBlock() || KwElif.OpensBlock() || KwEnd.OpensBlock() {
		t.Errorf("OpensBlock is wrong")
	}
	if FromKeyword(KwU32) != U32 || FromKeyword(KwAuto) != Auto || FromKeyword(KwIf) != None {
		t.Errorf("FromKeyword is wrong")
	}
}

func TestRank(t *testing.T) {
	order := []VarType{None, I8, U8, I16, U16, I32, U32, F32, I64, U64, F64}
	for i, v := range order {
		r, ok := v.Rank()
		if !ok || r != i {
			t.Errorf("rank(%s) = %d, %v, want %d", v, r, ok, i)
		}
	}
	if _, ok := Str.Rank(); ok {
		t.Errorf("str has no rank")
	}
}

func TestSpanString(t *testing.T) {
	from := Position{Line: 2, Column: 3, Filename: "a.ch"}
	to := Position{Line: 2, Column: 5, Filename: "a.ch"}
	if got := (Span{From: from, To: to}).String(); got != "a.ch:2:3-2:5" {
		t.Fatalf("got %s", got)
	}
	if got := SingleCharSpan(Position{Line: 1, Column: 1}).From.String(); got != "<unknown>:1:1" {
		t.Fatalf("got %s", got)
	}
}
