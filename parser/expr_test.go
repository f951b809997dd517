package parser

import (
	"testing"

	"github.com/alecthomas/repr"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/types"
)

func TestPrecedence(t *testing.T) {
	prelude := "i32 a = 1\ni32 b = 2\n"

	cases := []struct {
		name  string
		input string
		want  ast.Node
	}{
		{"mul over add", "2 + 3 * 4", bin(ast.Plus, u8(2), bin(ast.Mul, u8(3), u8(4)))},
		{"left associative division", "8 / 4 / 2", bin(ast.Div, bin(ast.Div, u8(8), u8(4)), u8(2))},
		{"right associative power", "2 ** 3 ** 2", bin(ast.Pow, u8(2), bin(ast.Pow, u8(3), u8(2)))},
		{"power over mul", "2 * 3 ** 2", bin(ast.Mul, u8(2), bin(ast.Pow, u8(3), u8(2)))},
		{"floor division", "7 // 2 + 1", bin(ast.Plus, bin(ast.FloorDiv, u8(7), u8(2)), u8(1))},
		{"parentheses", "(2 + 3) * 4", bin(ast.Mul, bin(ast.Plus, u8(2), u8(3)), u8(4))},
		{"relational below arithmetic", "a + 1 < b * 2", bin(ast.Lt, bin(ast.Plus, ref("a"), u8(1)), bin(ast.Mul, ref("b"), u8(2)))},
		{"and over or", "a or b and a", bin(ast.Or, ref("a"), bin(ast.And, ref("b"), ref("a")))},
		{"symbolic logical", "a < b && b > a", bin(ast.And, bin(ast.Lt, ref("a"), ref("b")), bin(ast.Gt, ref("b"), ref("a")))},
		{"leading not wraps the statement", "not a and b", ast.UnaryExpression{Operator: ast.Not, Operand: bin(ast.And, ref("a"), ref("b"))}},
		{"not over and", "a = not a and b", bin(ast.Assign, ref("a"), bin(ast.And, ast.UnaryExpression{Operator: ast.Not, Operand: ref("a")}, ref("b")))},
		{"not under relational", "a = !a == b", bin(ast.Assign, ref("a"), ast.UnaryExpression{Operator: ast.Not, Operand: bin(ast.EqEq, ref("a"), ref("b"))})},
		{"not under relational", "!a == b", ast.UnaryExpression{Operator: ast.Not, Operand: bin(ast.EqEq, ref("a"), ref("b"))}},
		{"negation", "-a * b", bin(ast.Mul, ast.UnaryExpression{Operator: ast.Neg, Operand: ref("a")}, ref("b"))},
		{"subtraction of a literal", "a - 1", bin(ast.Minus, ref("a"), u8(1))},
		{"assignment is lowest", "a = b + 1", bin(ast.Assign, ref("a"), bin(ast.Plus, ref("b"), u8(1)))},
		{"chained assignment", "a = b = 3", bin(ast.Assign, ref("a"), bin(ast.Assign, ref("b"), u8(3)))},
		{"compound assignment", "a += b * 2", bin(ast.PlusEq, ref("a"), bin(ast.Mul, ref("b"), u8(2)))},
		{"signed literal operand", "a * -2", bin(ast.Mul, ref("a"), ast.Int{Value: -2, Type: types.I8})},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			nodes, _, err := parse(t, prelude+c.input)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			got := nodes[len(nodes)-1]
			if repr.String(got) != repr.String(c.want) {
				t.Fatalf("got\n%s\nwant\n%s", repr.String(got), repr.String(c.want))
			}
		})
	}
}

func TestCallsInExpressions(t *testing.T) {
	src := `fn sq(x: i64) -> i64:
  return x * x
end
i64 n = sq(3) + sq(1 + 1)
print(n, 2)`

	nodes, _, err := parse(t, src)
	if err != nil {
		t.Fatal(err)
	}

	want := ast.VariableInitialization{
		Name: "n",
		Type: types.I64,
		Value: bin(ast.Plus,
			ast.FunctionCall{Name: "sq", Args: []ast.Node{u8(3)}},
			ast.FunctionCall{Name: "sq", Args: []ast.Node{bin(ast.Plus, u8(1), u8(1))}},
		),
	}
	if repr.String(nodes[1]) != repr.String(want) {
		t.Fatalf("got\n%s\nwant\n%s", repr.String(nodes[1]), repr.String(want))
	}

	call := nodes[2].(ast.FunctionCall)
	if len(call.Args) != 2 {
		t.Fatalf("expected two arguments, got %s", repr.String(call))
	}
}

func TestSpaceSeparatedArguments(t *testing.T) {
	nodes, _, err := parse(t, "i32 a = 1\nprint(a 2)")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.FunctionCall{
		Name:  "print",
		Args:  []ast.Node{ref("a"), u8(2)},
		Types: []types.VarType{types.I32, types.U8},
	}
	if repr.String(nodes[1]) != repr.String(want) {
		t.Fatalf("got %s", repr.String(nodes[1]))
	}
}
