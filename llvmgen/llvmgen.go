// Package llvmgen lowers the AST to LLVM IR text, as an alternative to the
// C back end for toolchains that take .ll input directly.
package llvmgen

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/printfmt"
	"github.com/pontaoski/chic/typeenv"
	vt "github.com/pontaoski/chic/types"
)

type variable struct {
	ptr value.Value
	t   vt.VarType
}

// typed is a generated value with its source type. Comparisons and logical
// operators produce i1 values, flagged with boolean.
type typed struct {
	v       value.Value
	t       vt.VarType
	boolean bool
}

type stringConstant struct {
	global *ir.Global
	typ    types.Type
}

type ctx struct {
	module   *ir.Module
	env      *typeenv.Env
	builtins builtins
	funcs    map[string]*ir.Func
	strings  map[string]stringConstant

	fn     *ir.Func
	fnRet  vt.VarType
	entry  *ir.Block
	block  *ir.Block
	names  []map[string]variable
	labels int

	// globals holds the top level variables of a program without its own
	// main. topLevel is set while main's outermost statements are lowered.
	globals  map[string]variable
	topLevel bool
}

func (c *ctx) pushScope() {
	c.names = append(c.names, make(map[string]variable))
}

func (c *ctx) popScope() {
	c.names = c.names[:len(c.names)-1]
}

func (c *ctx) top() map[string]variable {
	return c.names[len(c.names)-1]
}

func (c *ctx) lookup(name string) variable {
	for i := len(c.names) - 1; i >= 0; i-- {
		if v, ok := c.names[i][name]; ok {
			return v
		}
	}
	if v, ok := c.globals[name]; ok {
		return v
	}

	panic(errors.RenderError{Node: name, Reason: "variable is not in scope"})
}

func (c *ctx) lookupType(name string) (vt.VarType, error) {
	for i := len(c.names) - 1; i >= 0; i-- {
		if v, ok := c.names[i][name]; ok {
			return v.t, nil
		}
	}
	if v, ok := c.globals[name]; ok {
		return v.t, nil
	}
	return vt.None, errors.TypeError{Name: name, Reason: "variable is not in scope"}
}

func (c *ctx) label(prefix string) string {
	c.labels++
	return fmt.Sprintf("%s.%d", prefix, c.labels)
}

func (c *ctx) newBlock(prefix string) *ir.Block {
	return c.fn.NewBlock(c.label(prefix))
}

// declare reserves a stack slot in the entry block so loops do not grow the
// stack on every iteration.
func (c *ctx) declare(name string, t vt.VarType, init value.Value) variable {
	slot := c.entry.NewAlloca(llvmType(t))
	c.block.NewStore(init, slot)

	v := variable{ptr: slot, t: t}
	c.top()[name] = v
	return v
}

// bind declares a variable, or stores into its global when the statement sits
// at the top level of a synthesized main.
func (c *ctx) bind(name string, t vt.VarType, init value.Value) {
	if g, ok := c.globals[name]; ok && c.topLevel && len(c.names) == 1 {
		c.block.NewStore(init, g.ptr)
		return
	}
	c.declare(name, t, init)
}

// addGlobals gives every top level variable a zero initialized global so
// function bodies can read it.
func (c *ctx) addGlobals(stmts []ast.Node, reserved map[string]*ir.Func) {
	for _, n := range stmts {
		var name string
		var t vt.VarType
		switch node := n.(type) {
		case ast.VariableDeclaration:
			name, t = node.Name, node.Type
		case ast.VariableInitialization:
			name, t = node.Name, node.Type
		default:
			continue
		}
		if t == vt.Auto || t == vt.None {
			panic(errors.RenderError{Node: name, Reason: "declared with unresolved type " + t.String()})
		}

		if prev, ok := c.globals[name]; ok {
			if prev.t != t {
				panic(errors.RenderError{Node: name, Reason: "top level variable redeclared with type " + t.String()})
			}
			continue
		}
		if _, ok := reserved[name]; ok {
			panic(errors.RenderError{Node: name, Reason: "top level variable shares its name with a function"})
		}
		if _, ok := c.funcs[name]; ok {
			panic(errors.RenderError{Node: name, Reason: "top level variable shares its name with a function"})
		}

		c.globals[name] = variable{ptr: c.module.NewGlobalDef(name, zero(t)), t: t}
	}
}

// Module lowers a whole program. Top level statements become the body of
// main, with top level variables kept as globals; a program that also
// defines main itself is rejected.
func Module(nodes []ast.Node, env *typeenv.Env) (out string, err error) {
	defer func() {
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
		err = tracerr.Wrap(rerr)
	}()

	m := ir.NewModule()
	c := &ctx{
		module:  m,
		env:     env,
		funcs:   make(map[string]*ir.Func),
		strings: make(map[string]stringConstant),
		globals: make(map[string]variable),
	}
	c.builtins = addBuiltins(m)
	reserved := c.builtins.names()

	var defs []ast.FunctionDefinition
	var stmts []ast.Node
	for _, n := range nodes {
		if def, ok := n.(ast.FunctionDefinition); ok {
			defs = append(defs, def)
			continue
		}
		stmts = append(stmts, n)
	}

	// forward declarations first so calls can precede definitions
	for _, def := range defs {
		if _, ok := reserved[def.Name]; ok {
			panic(errors.RenderError{Node: def.Name, Reason: "redefines a builtin function"})
		}
		var params []*ir.Param
		for i, name := range def.ArgNames {
			params = append(params, ir.NewParam(name, llvmType(def.ArgTypes[i])))
		}
		c.funcs[def.Name] = m.NewFunc(def.Name, llvmType(def.ReturnType), params...)
	}

	if len(stmts) > 0 {
		if _, ok := c.funcs["main"]; ok {
			panic(errors.RenderError{Node: "main", Reason: "top level statements cannot be combined with a main function"})
		}
		c.addGlobals(stmts, reserved)
	}

	for _, def := range defs {
		c.function(def)
	}

	if len(stmts) > 0 {
		c.topLevel = true
		c.function(ast.FunctionDefinition{Name: "main", ReturnType: vt.I32, Body: stmts})
		c.topLevel = false
	}

	embedTypeInfo(m, env)

	return m.String(), nil
}

// embedTypeInfo stores the Env summary as a NUL terminated YAML document in
// the __chi_types global so tools can read it back from the object file.
func embedTypeInfo(m *ir.Module, env *typeenv.Env) {
	data, err := env.TypeInfo().Marshal()
	if err != nil {
		panic(err)
	}

	g := m.NewGlobalDef("__chi_types", constant.NewCharArray(append(data, 0)))
	g.Immutable = true
}

func (c *ctx) function(def ast.FunctionDefinition) {
	fn, ok := c.funcs[def.Name]
	if !ok {
		fn = c.module.NewFunc(def.Name, llvmType(def.ReturnType))
		c.funcs[def.Name] = fn
	}

	c.fn = fn
	c.fnRet = def.ReturnType
	c.entry = fn.NewBlock("entry")
	c.block = c.entry

	c.pushScope()
	for i, param := range fn.Params {
		c.declare(def.ArgNames[i], def.ArgTypes[i], param)
	}
	for _, stmt := range def.Body {
		c.statement(stmt)
	}
	c.popScope()

	if c.block.Term == nil {
		if def.ReturnType == vt.None {
			c.block.NewRet(nil)
		} else {
			c.block.NewRet(zero(def.ReturnType))
		}
	}
}

func (c *ctx) scoped(body []ast.Node) {
	c.pushScope()
	for _, stmt := range body {
		c.statement(stmt)
	}
	c.popScope()
}

func (c *ctx) statement(n ast.Node) {
	switch node := n.(type) {
	case ast.VariableDeclaration:
		if node.Type == vt.Auto || node.Type == vt.None {
			panic(errors.RenderError{Node: node.Name, Reason: "declared with unresolved type " + node.Type.String()})
		}
		c.bind(node.Name, node.Type, zero(node.Type))
	case ast.VariableInitialization:
		if node.Type == vt.Auto || node.Type == vt.None {
			panic(errors.RenderError{Node: node.Name, Reason: "declared with unresolved type " + node.Type.String()})
		}
		val := c.convert(c.expr(node.Value), node.Type)
		c.bind(node.Name, node.Type, val)
	case ast.IfStatement:
		c.ifChain(node.Condition, node.Body, node.Else)
	case ast.WhileLoop:
		c.whileLoop(node)
	case ast.ForLoop:
		c.forLoop(node)
	case ast.Return:
		if node.Value == nil || c.fnRet == vt.None {
			if node.Value != nil {
				c.expr(node.Value)
			}
			c.block.NewRet(nil)
		} else {
			c.block.NewRet(c.convert(c.expr(node.Value), c.fnRet))
		}
		c.block = c.newBlock("after.return")
	case ast.FunctionDefinition:
		panic(errors.RenderError{Node: node.Name, Reason: "functions cannot be nested"})
	case ast.ElifStatement, ast.ElseStatement:
		panic(errors.RenderError{Node: fmt.Sprintf("%T", n), Reason: "branch outside of an if statement"})
	default:
		c.expr(n)
	}
}

func (c *ctx) ifChain(cond ast.Node, body []ast.Node, elseNode ast.Node) {
	test := c.truth(c.expr(cond))

	then := c.newBlock("if.then")
	var otherwise *ir.Block
	if elseNode != nil {
		otherwise = c.newBlock("if.else")
	}
	merge := c.newBlock("if.end")

	if otherwise != nil {
		c.block.NewCondBr(test, then, otherwise)
	} else {
		c.block.NewCondBr(test, then, merge)
	}

	c.block = then
	c.scoped(body)
	if c.block.Term == nil {
		c.block.NewBr(merge)
	}

	if otherwise != nil {
		c.block = otherwise
		switch e := elseNode.(type) {
		case ast.ElifStatement:
			c.ifChain(e.Condition, e.Body, e.Else)
		case ast.ElseStatement:
			c.scoped(e.Body)
		default:
			panic(errors.RenderError{Node: fmt.Sprintf("%T", e), Reason: "not an elif or else branch"})
		}
		if c.block.Term == nil {
			c.block.NewBr(merge)
		}
	}

	c.block = merge
}

func (c *ctx) whileLoop(node ast.WhileLoop) {
	head := c.newBlock("while.cond")
	body := c.newBlock("while.body")
	exit := c.newBlock("while.end")

	c.block.NewBr(head)
	c.block = head
	c.block.NewCondBr(c.truth(c.expr(node.Condition)), body, exit)

	c.block = body
	c.scoped(node.Body)
	if c.block.Term == nil {
		c.block.NewBr(head)
	}

	c.block = exit
}

func (c *ctx) forLoop(node ast.ForLoop) {
	c.pushScope()
	defer c.popScope()

	counter := c.declare(node.Name, node.Type, c.convert(c.expr(node.Start), node.Type))

	head := c.newBlock("for.cond")
	body := c.newBlock("for.body")
	step := c.newBlock("for.inc")
	exit := c.newBlock("for.end")

	c.block.NewBr(head)
	c.block = head
	current := typed{v: c.block.NewLoad(llvmType(node.Type), counter.ptr), t: node.Type}
	stop := typed{v: c.convert(c.expr(node.Stop), node.Type), t: node.Type}
	c.block.NewCondBr(c.compare(ast.Lt, current, stop).v, body, exit)

	c.block = body
	c.scoped(node.Body)
	if c.block.Term == nil {
		c.block.NewBr(step)
	}

	c.block = step
	loaded := c.block.NewLoad(llvmType(node.Type), counter.ptr)
	var next value.Value
	if node.Type.IsFloat() {
		next = c.block.NewFAdd(loaded, constant.NewFloat(llvmType(node.Type).(*types.FloatType), 1))
	} else {
		next = c.block.NewAdd(loaded, constant.NewInt(llvmType(node.Type).(*types.IntType), 1))
	}
	c.block.NewStore(next, counter.ptr)
	c.block.NewBr(head)

	c.block = exit
}

func (c *ctx) expr(n ast.Node) typed {
	switch node := n.(type) {
	case ast.Int:
		return typed{v: constant.NewInt(llvmType(node.Type).(*types.IntType), node.Value), t: node.Type}
	case ast.UInt:
		return typed{v: constant.NewInt(llvmType(node.Type).(*types.IntType), int64(node.Value)), t: node.Type}
	case ast.Float:
		return typed{v: constant.NewFloat(llvmType(node.Type).(*types.FloatType), node.Value), t: node.Type}
	case ast.Str:
		s, err := strconv.Unquote(node.Value)
		if err != nil {
			panic(errors.RenderError{Node: node.Value, Reason: "invalid string literal: " + err.Error()})
		}
		return typed{v: c.stringPointer(s), t: vt.Str}
	case ast.VariableCall:
		v := c.lookup(node.Name)
		return typed{v: c.block.NewLoad(llvmType(v.t), v.ptr), t: v.t}
	case ast.UnaryExpression:
		return c.unary(node)
	case ast.BinaryExpression:
		return c.binary(node)
	case ast.FunctionCall:
		if node.Name == "print" {
			return c.print(node)
		}
		return c.call(node)
	}

	panic(errors.RenderError{Node: fmt.Sprintf("%T", n), Reason: "is not a value"})
}

func (c *ctx) stringPointer(s string) value.Value {
	sc, ok := c.strings[s]
	if !ok {
		data := constant.NewCharArrayFromString(s + "\x00")
		g := c.module.NewGlobalDef(fmt.Sprintf(".str.%d", len(c.strings)), data)
		g.Immutable = true
		sc = stringConstant{global: g, typ: data.Type()}
		c.strings[s] = sc
	}

	idx := constant.NewInt(types.I64, 0)
	return c.block.NewGetElementPtr(sc.typ, sc.global, idx, idx)
}

// truth turns any scalar into an i1.
func (c *ctx) truth(x typed) value.Value {
	switch {
	case x.boolean:
		return x.v
	case x.t.IsInteger():
		return c.block.NewICmp(enum.IPredNE, x.v, zero(x.t))
	case x.t.IsFloat():
		return c.block.NewFCmp(enum.FPredONE, x.v, zero(x.t))
	}
	panic(errors.RenderError{Node: x.t.String(), Reason: "cannot be used as a condition"})
}

func (c *ctx) convert(x typed, to vt.VarType) value.Value {
	if x.boolean {
		switch {
		case to.IsInteger():
			return c.block.NewZExt(x.v, llvmType(to))
		case to.IsFloat():
			return c.block.NewUIToFP(x.v, llvmType(to))
		}
		panic(errors.RenderError{Node: "condition", Reason: "cannot convert to " + to.String()})
	}

	from := x.t
	switch {
	case from == to:
		return x.v
	case from.IsInteger() && to.IsInteger():
		switch {
		case bits(from) == bits(to):
			return x.v
		case bits(from) > bits(to):
			return c.block.NewTrunc(x.v, llvmType(to))
		case from.IsSigned():
			return c.block.NewSExt(x.v, llvmType(to))
		}
		return c.block.NewZExt(x.v, llvmType(to))
	case from.IsInteger() && to.IsFloat():
		if from.IsSigned() {
			return c.block.NewSIToFP(x.v, llvmType(to))
		}
		return c.block.NewUIToFP(x.v, llvmType(to))
	case from.IsFloat() && to.IsInteger():
		if to.IsSigned() {
			return c.block.NewFPToSI(x.v, llvmType(to))
		}
		return c.block.NewFPToUI(x.v, llvmType(to))
	case from == vt.F32 && to == vt.F64:
		return c.block.NewFPExt(x.v, llvmType(to))
	case from == vt.F64 && to == vt.F32:
		return c.block.NewFPTrunc(x.v, llvmType(to))
	}

	panic(errors.RenderError{Node: from.String(), Reason: "cannot convert to " + to.String()})
}

func (c *ctx) unary(node ast.UnaryExpression) typed {
	operand := c.expr(node.Operand)

	switch node.Operator {
	case ast.Not:
		return typed{v: c.block.NewXor(c.truth(operand), constant.True), t: vt.U8, boolean: true}
	case ast.Neg:
		t := operand.t
		if operand.boolean {
			t = vt.I8
		}
		v := c.convert(operand, t)
		if t.IsFloat() {
			return typed{v: c.block.NewFSub(zero(t), v), t: t}
		}
		if !t.IsInteger() {
			panic(errors.RenderError{Node: t.String(), Reason: "cannot be negated"})
		}
		return typed{v: c.block.NewSub(zero(t), v), t: t}
	}

	panic(errors.RenderError{Node: node.Operator.String(), Reason: "not a unary operator"})
}

var compoundBase = map[ast.Operator]ast.Operator{
	ast.PlusEq:  ast.Plus,
	ast.MinusEq: ast.Minus,
	ast.MulEq:   ast.Mul,
	ast.DivEq:   ast.Div,
}

func (c *ctx) binary(node ast.BinaryExpression) typed {
	switch {
	case node.Operator.IsAssignment():
		return c.assign(node)
	case node.Operator.IsLogical():
		left := c.truth(c.expr(node.Left))
		right := c.truth(c.expr(node.Right))
		if node.Operator == ast.And {
			return typed{v: c.block.NewAnd(left, right), t: vt.U8, boolean: true}
		}
		return typed{v: c.block.NewOr(left, right), t: vt.U8, boolean: true}
	case node.Operator.IsComparison():
		return c.compare(node.Operator, c.expr(node.Left), c.expr(node.Right))
	}

	return c.arith(node.Operator, c.expr(node.Left), c.expr(node.Right))
}

func (c *ctx) assign(node ast.BinaryExpression) typed {
	target, ok := node.Left.(ast.VariableCall)
	if !ok {
		panic(errors.RenderError{Node: fmt.Sprintf("%T", node.Left), Reason: "cannot be assigned to"})
	}
	v := c.lookup(target.Name)
	rhs := c.expr(node.Right)

	if base, ok := compoundBase[node.Operator]; ok {
		current := typed{v: c.block.NewLoad(llvmType(v.t), v.ptr), t: v.t}
		rhs = c.arith(base, current, rhs)
	}

	result := c.convert(rhs, v.t)
	c.block.NewStore(result, v.ptr)
	return typed{v: result, t: v.t}
}

func (c *ctx) operandType(left, right typed) vt.VarType {
	t := vt.Promote(left.t, right.t)
	if !t.IsNumeric() {
		panic(errors.RenderError{Node: left.t.String() + " and " + right.t.String(), Reason: "have no common numeric type"})
	}
	return t
}

var signedPreds = map[ast.Operator]enum.IPred{
	ast.EqEq:  enum.IPredEQ,
	ast.NotEq: enum.IPredNE,
	ast.Lt:    enum.IPredSLT,
	ast.Gt:    enum.IPredSGT,
	ast.LtEq:  enum.IPredSLE,
	ast.GtEq:  enum.IPredSGE,
}

var unsignedPreds = map[ast.Operator]enum.IPred{
	ast.EqEq:  enum.IPredEQ,
	ast.NotEq: enum.IPredNE,
	ast.Lt:    enum.IPredULT,
	ast.Gt:    enum.IPredUGT,
	ast.LtEq:  enum.IPredULE,
	ast.GtEq:  enum.IPredUGE,
}

var floatPreds = map[ast.Operator]enum.FPred{
	ast.EqEq:  enum.FPredOEQ,
	ast.NotEq: enum.FPredONE,
	ast.Lt:    enum.FPredOLT,
	ast.Gt:    enum.FPredOGT,
	ast.LtEq:  enum.FPredOLE,
	ast.GtEq:  enum.FPredOGE,
}

func (c *ctx) compare(op ast.Operator, left, right typed) typed {
	t := c.operandType(left, right)
	l, r := c.convert(left, t), c.convert(right, t)

	var v value.Value
	switch {
	case t.IsFloat():
		v = c.block.NewFCmp(floatPreds[op], l, r)
	case t.IsSigned():
		v = c.block.NewICmp(signedPreds[op], l, r)
	default:
		v = c.block.NewICmp(unsignedPreds[op], l, r)
	}
	return typed{v: v, t: vt.U8, boolean: true}
}

func (c *ctx) arith(op ast.Operator, left, right typed) typed {
	t := c.operandType(left, right)

	if op == ast.Pow {
		x, y := c.convert(left, vt.F64), c.convert(right, vt.F64)
		result := typed{v: c.block.NewCall(c.builtins.pow, x, y), t: vt.F64}
		return typed{v: c.convert(result, t), t: t}
	}

	l, r := c.convert(left, t), c.convert(right, t)

	if t.IsFloat() {
		switch op {
		case ast.Plus:
			return typed{v: c.block.NewFAdd(l, r), t: t}
		case ast.Minus:
			return typed{v: c.block.NewFSub(l, r), t: t}
		case ast.Mul:
			return typed{v: c.block.NewFMul(l, r), t: t}
		case ast.Div:
			return typed{v: c.block.NewFDiv(l, r), t: t}
		case ast.FloorDiv:
			quotient := typed{v: c.block.NewFDiv(l, r), t: t}
			floored := typed{v: c.block.NewCall(c.builtins.floor, c.convert(quotient, vt.F64)), t: vt.F64}
			return typed{v: c.convert(floored, t), t: t}
		}
	} else {
		switch op {
		case ast.Plus:
			return typed{v: c.block.NewAdd(l, r), t: t}
		case ast.Minus:
			return typed{v: c.block.NewSub(l, r), t: t}
		case ast.Mul:
			return typed{v: c.block.NewMul(l, r), t: t}
		case ast.Div, ast.FloorDiv:
			if t.IsSigned() {
				return typed{v: c.block.NewSDiv(l, r), t: t}
			}
			return typed{v: c.block.NewUDiv(l, r), t: t}
		}
	}

	panic(errors.RenderError{Node: op.String(), Reason: "not an arithmetic operator"})
}

func (c *ctx) call(node ast.FunctionCall) typed {
	fn, ok := c.funcs[node.Name]
	if !ok {
		panic(errors.RenderError{Node: node.Name, Reason: "call to an undefined function"})
	}
	sig, ok := c.env.LookupFunc(node.Name)
	if !ok {
		panic(errors.RenderError{Node: node.Name, Reason: "function has no recorded signature"})
	}
	if len(sig.Params) != len(node.Args) {
		panic(errors.RenderError{Node: node.Name, Reason: fmt.Sprintf("takes %d arguments, got %d", len(sig.Params), len(node.Args))})
	}

	var args []value.Value
	for i, arg := range node.Args {
		args = append(args, c.convert(c.expr(arg), sig.Params[i]))
	}

	return typed{v: c.block.NewCall(fn, args...), t: sig.Returns}
}

// variadic applies C's default argument promotions, widened to 64 bits so
// every integer matches a %lld or %llu conversion.
func (c *ctx) variadic(x typed) (value.Value, vt.VarType) {
	switch {
	case x.boolean, x.t.IsUnsigned():
		return c.convert(x, vt.U64), vt.U64
	case x.t.IsSigned():
		return c.convert(x, vt.I64), vt.I64
	case x.t.IsFloat():
		return c.convert(x, vt.F64), vt.F64
	case x.t == vt.Str:
		return x.v, vt.Str
	}
	panic(errors.RenderError{Node: x.t.String(), Reason: "cannot be printed"})
}

func (c *ctx) print(node ast.FunctionCall) typed {
	if len(node.Args) == 0 {
		panic(errors.RenderError{Node: "print", Reason: "print needs an argument"})
	}

	var format string
	var args []value.Value

	if lit, ok := node.Args[0].(ast.Str); ok {
		placeholders, err := printfmt.Extract(lit.Value, c.lookupType)
		if err != nil {
			panic(err)
		}
		substituted, err := printfmt.Substitute(lit.Value, placeholders, formatSpecifier)
		if err != nil {
			panic(err)
		}
		format, err = strconv.Unquote(substituted)
		if err != nil {
			panic(errors.RenderError{Node: lit.Value, Reason: "invalid string literal: " + err.Error()})
		}
		for _, ph := range placeholders {
			v, _ := c.variadic(c.expr(ast.VariableCall{Name: ph.Name}))
			args = append(args, v)
		}
		for _, arg := range node.Args[1:] {
			v, _ := c.variadic(c.expr(arg))
			args = append(args, v)
		}
	} else {
		for _, arg := range node.Args {
			v, t := c.variadic(c.expr(arg))
			spec, err := formatSpecifier(t)
			if err != nil {
				panic(err)
			}
			format += spec
			args = append(args, v)
		}
	}

	args = append([]value.Value{c.stringPointer(format)}, args...)
	return typed{v: c.block.NewCall(c.builtins.printf, args...), t: vt.I32}
}
