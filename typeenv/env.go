// Package typeenv tracks the types bound to names during one compilation.
// An Env is not safe for concurrent use; every compilation gets its own.
package typeenv

import (
	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/errors"
	"github.com/pontaoski/chic/types"
)

type Signature struct {
	Params  []types.VarType
	Returns types.VarType
}

type Env struct {
	vars  map[string]types.VarType
	funcs map[string]Signature
}

func New() *Env {
	return &Env{
		vars:  make(map[string]types.VarType),
		funcs: make(map[string]Signature),
	}
}

// Bind inserts or overwrites the type of name.
func (e *Env) Bind(name string, t types.VarType) {
	e.vars[name] = t
}

func (e *Env) Lookup(name string) (types.VarType, error) {
	t, ok := e.vars[name]
	if !ok {
		return types.None, errors.TypeError{Name: name, Reason: "variable used before it was declared"}
	}
	return t, nil
}

func (e *Env) BindFunc(name string, sig Signature) {
	e.funcs[name] = sig
}

func (e *Env) LookupFunc(name string) (Signature, bool) {
	sig, ok := e.funcs[name]
	return sig, ok
}

func (e *Env) Promote(a, b types.VarType) types.VarType {
	return types.Promote(a, b)
}

// Evaluate folds the type of an expression bottom up. Leaves report their
// own type; nodes it does not recognise evaluate to None.
func (e *Env) Evaluate(n ast.Node) (types.VarType, error) {
	switch node := n.(type) {
	case ast.Int:
		return node.Type, nil
	case ast.UInt:
		return node.Type, nil
	case ast.Float:
		return node.Type, nil
	case ast.Str:
		return types.Str, nil
	case ast.VariableCall:
		return e.Lookup(node.Name)
	case ast.UnaryExpression:
		return e.Evaluate(node.Operand)
	case ast.BinaryExpression:
		left, err := e.Evaluate(node.Left)
		if err != nil {
			return types.None, err
		}
		right, err := e.Evaluate(node.Right)
		if err != nil {
			return types.None, err
		}
		return e.Promote(left, right), nil
	case ast.FunctionCall:
		if sig, ok := e.LookupFunc(node.Name); ok {
			return sig.Returns, nil
		}
		return types.None, nil
	}
	return types.None, nil
}
