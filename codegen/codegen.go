// Package codegen renders the AST as C source.
package codegen

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/printfmt"
)

const Preamble = "#include<stdio.h>\n#include<math.h>\n"

// Generator renders nodes as built by the parser. Print format specifiers
// come from the types the parser stored on each print call.
type Generator struct{}

func New() *Generator {
	return &Generator{}
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

func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

// Render returns the text of a single node, without a statement terminator.
func (g *Generator) Render(n ast.Node) (out string, err error) {
	defer recoverInto(&err)

	return g.render(n), nil
}

// Program renders a whole compilation unit. When the program does not define
// main itself, its top level statements are wrapped into one. Top level
// variables stay at file scope so functions can read them. An initializer
// that is not a literal becomes an assignment in main, where the
// declaration stood.
func (g *Generator) Program(nodes []ast.Node) (out string, err error) {
	defer recoverInto(&err)

	var b strings.Builder
	b.WriteString(Preamble)

	if definesMain(nodes) {
		for _, n := range nodes {
			b.WriteString(g.statement(n))
		}
		return b.String(), nil
	}

	var stmts []ast.Node
	wrap := false
	for _, n := range nodes {
		switch node := n.(type) {
		case ast.FunctionDefinition:
			b.WriteString(g.statement(n))
			continue
		case ast.VariableDeclaration:
			b.WriteString(g.statement(n))
		case ast.VariableInitialization:
			if isConstant(node.Value) {
				b.WriteString(g.statement(n))
				break
			}
			b.WriteString(g.statement(ast.VariableDeclaration{Name: node.Name, Type: node.Type}))
			stmts = append(stmts, ast.BinaryExpression{
				Operator: ast.Assign,
				Left:     ast.VariableCall{Name: node.Name},
				Right:    node.Value,
			})
		default:
			stmts = append(stmts, n)
		}
		wrap = true
	}

	if wrap {
		b.WriteString("int main(){\n")
		for _, n := range stmts {
			b.WriteString(g.statement(n))
		}
		b.WriteString("return 0;\n}\n")
	}

	return b.String(), nil
}

// isConstant reports whether n can initialize a file scope variable in C.
func isConstant(n ast.Node) bool {
	switch n.(type) {
	case ast.Int, ast.UInt, ast.Float, ast.Str:
		return true
	}
	return false
}

func definesMain(nodes []ast.Node) bool {
	for _, n := range nodes {
		if fn, ok := n.(ast.FunctionDefinition); ok && fn.Name == "main" {
			return true
		}
	}
	return false
}

func (g *Generator) statement(n ast.Node) string {
	if ast.IsBlock(n) {
		return g.render(n) + "\n"
	}
	return g.render(n) + ";\n"
}

func (g *Generator) body(nodes []ast.Node) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, n := range nodes {
		b.WriteString(g.statement(n))
	}
	b.WriteString("}")
	return b.String()
}

func (g *Generator) render(n ast.Node) string {
	switch node := n.(type) {
	case ast.Int:
		return strconv.FormatInt(node.Value, 10)
	case ast.UInt:
		return strconv.FormatUint(node.Value, 10)
	case ast.Float:
		return FormatFloat(node.Value)
	case ast.Str:
		return node.Value
	case ast.VariableCall:
		return node.Name
	case ast.VariableDeclaration:
		return must(TypeKeyword(node.Type)) + node.Name + " = " + must(ZeroValue(node.Type))
	case ast.VariableInitialization:
		return must(TypeKeyword(node.Type)) + node.Name + " = " + g.render(node.Value)
	case ast.UnaryExpression:
		return g.unaryOperator(node.Operator) + "(" + g.render(node.Operand) + ")"
	case ast.BinaryExpression:
		return g.binary(node)
	case ast.IfStatement:
		return g.conditional(node.Condition, node.Body, node.Else)
	case ast.ElifStatement:
		return g.conditional(node.Condition, node.Body, node.Else)
	case ast.ElseStatement:
		return "else" + g.body(node.Body)
	case ast.WhileLoop:
		return "while(" + g.render(node.Condition) + ")" + g.body(node.Body)
	case ast.ForLoop:
		return fmt.Sprintf("for(%s%s = %s; %s < %s; %s++)%s",
			must(TypeKeyword(node.Type)), node.Name, g.render(node.Start),
			node.Name, g.render(node.Stop),
			node.Name, g.body(node.Body))
	case ast.FunctionDefinition:
		return g.function(node)
	case ast.FunctionCall:
		if node.Name == "print" {
			return g.print(node)
		}
		return node.Name + "(" + g.list(node.Args) + ")"
	case ast.Return:
		if node.Value == nil {
			return "return"
		}
		return "return " + g.render(node.Value)
	case ast.Empty, nil:
		panic(errors.RenderError{Node: "empty node", Reason: "placeholder node reached code generation"})
	}

	panic(errors.RenderError{Node: fmt.Sprintf("%T", n), Reason: "unhandled node"})
}

// FormatFloat prints f in base 10, always with a decimal point or exponent.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func (g *Generator) unaryOperator(op ast.Operator) string {
	switch op {
	case ast.Not:
		return "!"
	case ast.Neg:
		return "-"
	}
	panic(errors.RenderError{Node: op.String(), Reason: "not a unary operator"})
}

func (g *Generator) binary(node ast.BinaryExpression) string {
	left, right := g.render(node.Left), g.render(node.Right)

	switch node.Operator {
	case ast.Pow:
		return "pow(" + left + ", " + right + ")"
	case ast.FloorDiv:
		return "(" + left + " / " + right + ")"
	case ast.And:
		return "(" + left + " && " + right + ")"
	case ast.Or:
		return "(" + left + " || " + right + ")"
	case ast.OpNone, ast.Not, ast.Neg:
		panic(errors.RenderError{Node: "binary expression", Reason: fmt.Sprintf("invalid operator %q", node.Operator)})
	}

	return "(" + left + " " + node.Operator.String() + " " + right + ")"
}

func (g *Generator) conditional(cond ast.Node, body []ast.Node, elseBranch ast.Node) string {
	out := "if(" + g.render(cond) + ")" + g.body(body)

	switch elseBranch.(type) {
	case nil:
		return out
	case ast.ElifStatement:
		return out + "else " + g.render(elseBranch)
	}
	return out + g.render(elseBranch)
}

func (g *Generator) function(node ast.FunctionDefinition) string {
	var params []string
	for i, name := range node.ArgNames {
		params = append(params, must(TypeKeyword(node.ArgTypes[i]))+name)
	}

	return must(TypeKeyword(node.ReturnType)) + node.Name + "(" + strings.Join(params, ", ") + ")" + g.body(node.Body)
}

func (g *Generator) list(nodes []ast.Node) string {
	var args []string
	for _, arg := range nodes {
		args = append(args, g.render(arg))
	}
	return strings.Join(args, ", ")
}

// print rewrites print calls into printf. A literal first argument has its
// {name} placeholders replaced by format specifiers, and the names are
// appended as arguments in the same order.
func (g *Generator) print(node ast.FunctionCall) string {
	if len(node.Args) == 0 {
		panic(errors.RenderError{Node: "print", Reason: "print needs an argument"})
	}

	lit, ok := node.Args[0].(ast.Str)
	if !ok {
		if len(node.Types) != len(node.Args) {
			panic(errors.RenderError{Node: "print", Reason: "argument types were not resolved"})
		}
		var spec strings.Builder
		for _, t := range node.Types {
			spec.WriteString(must(FormatSpecifier(t)))
		}
		return `printf("` + spec.String() + `", ` + g.list(node.Args) + ")"
	}

	placeholders := printfmt.Locate(lit.Value)
	if len(placeholders) != len(node.Types) {
		panic(errors.RenderError{Node: "print " + lit.Value, Reason: "placeholder types were not resolved"})
	}
	for i := range placeholders {
		placeholders[i].Type = node.Types[i]
	}
	format := must(printfmt.Substitute(lit.Value, placeholders, FormatSpecifier))

	args := []string{format}
	for _, ph := range placeholders {
		args = append(args, ph.Name)
	}
	for _, arg := range node.Args[1:] {
		args = append(args, g.render(arg))
	}

	return "printf(" + strings.Join(args, ", ") + ")"
}
