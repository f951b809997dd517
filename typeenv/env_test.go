package typeenv

import (
	"strings"
	"testing"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

var allTypes = []types.VarType{
	types.None, types.I8, types.I16, types.I32, types.I64,
	types.U8, types.U16, types.U32, types.U64,
	types.F32, types.F64, types.Str,
}

func TestPromote(t *testing.T) {
	cases := []struct {
		a, b, want types.VarType
	}{
		{types.I8, types.U8, types.U8},
		{types.U16, types.I32, types.I32},
		{types.U32, types.F32, types.F32},
		{types.F32, types.I64, types.I64},
		{types.U64, types.F64, types.F64},
		{types.U64, types.F32, types.U64},
		{types.None, types.I8, types.I8},
		{types.Str, types.Str, types.Str},
		{types.Str, types.I32, types.None},
	}

	env := New()
	for _, c := range cases {
		if got := env.Promote(c.a, c.b); got != c.want {
			t.Errorf("promote(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestPromoteLaws(t *testing.T) {
	env := New()
	for _, a := range allTypes {
		if got := env.Promote(a, a); got != a {
			t.Errorf("promote(%s, %s) = %s", a, a, got)
		}
		for _, b := range allTypes {
			if env.Promote(a, b) != env.Promote(b, a) {
				t.Errorf("promote is not commutative for %s, %s", a, b)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	env := New()
	env.Bind("x", types.I16)
	env.Bind("x", types.F64)

	got, err := env.Lookup("x")
	if err != nil || got != types.F64 {
		t.Fatalf("x = %s (%v), want the rebound f64", got, err)
	}

	_, err = env.Lookup("missing")
	if _, ok := tracerr.Unwrap(err).(errors.TypeError); !ok {
		t.Fatalf("expected a TypeError, got %T", err)
	}
}

func TestEvaluate(t *testing.T) {
	env := New()
	env.Bind("a", types.I32)
	env.Bind("s", types.Str)
	env.BindFunc("half", Signature{Params: []types.VarType{types.F64}, Returns: types.F64})

	cases := []struct {
		name string
		node ast.Node
		want types.VarType
	}{
		{"int literal", ast.Int{Value: -3, Type: types.I8}, types.I8},
		{"string literal", ast.Str{Value: `"x"`}, types.Str},
		{"variable", ast.VariableCall{Name: "a"}, types.I32},
		{"binary", ast.BinaryExpression{Operator: ast.Plus, Left: ast.VariableCall{Name: "a"}, Right: ast.UInt{Value: 7, Type: types.U8}}, types.I32},
		{"unary", ast.UnaryExpression{Operator: ast.Neg, Operand: ast.Float{Value: 1, Type: types.F32}}, types.F32},
		{"known call", ast.FunctionCall{Name: "half", Args: []ast.Node{ast.VariableCall{Name: "a"}}}, types.F64},
		{"unknown call", ast.FunctionCall{Name: "print"}, types.None},
		{"string with number", ast.BinaryExpression{Operator: ast.Plus, Left: ast.VariableCall{Name: "s"}, Right: ast.UInt{Value: 1, Type: types.U8}}, types.None},
		{"statement", ast.WhileLoop{}, types.None},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := env.Evaluate(c.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("got %s, want %s", got, c.want)
			}
		})
	}

	if _, err := env.Evaluate(ast.VariableCall{Name: "nope"}); err == nil {
		t.Fatalf("expected an error for an unbound name")
	}
}

func TestTypeInfo(t *testing.T) {
	env := New()
	env.Bind("count", types.U16)
	env.BindFunc("add", Signature{Params: []types.VarType{types.I32, types.I32}, Returns: types.I32})

	info := env.TypeInfo()
	if info.Functions["add"] != "fn(i32, i32) -> i32" {
		t.Fatalf("bad signature %q", info.Functions["add"])
	}

	out, err := info.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "count: u16") {
		t.Fatalf("variables missing from\n%s", out)
	}
}
