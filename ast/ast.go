// Package ast holds the tree produced by the parser. The Node variants live
// in nodes_gen.go, generated from nodes.adt.
package ast

//go:generate go run ../tool nodes.adt nodes_gen.go ast types=github.com/pontaoski/chic/types

import "github.com/pontaoski/chic/types"

type Operator int

const (
	OpNone Operator = iota

	Plus
	Minus
	Mul
	Div
	FloorDiv
	Pow

	Assign
	PlusEq
	MinusEq
	MulEq
	DivEq

	EqEq
	NotEq
	Lt
	Gt
	LtEq
	GtEq

	And
	Or
	Not
	Neg
)

var operatorText = map[Operator]string{
	OpNone:   "",
	Plus:     "+",
	Minus:    "-",
	Mul:      "*",
	Div:      "/",
	FloorDiv: "//",
	Pow:      "**",
	Assign:   "=",
	PlusEq:   "+=",
	MinusEq:  "-=",
	MulEq:    "*=",
	DivEq:    "/=",
	EqEq:     "==",
	NotEq:    "!=",
	Lt:       "<",
	Gt:       ">",
	LtEq:     "<=",
	GtEq:     ">=",
	And:      "and",
	Or:       "or",
	Not:      "not",
	Neg:      "-",
}

func (o Operator) String() string {
	return operatorText[o]
}

func (o Operator) IsAssignment() bool {
	return o >= Assign && o <= DivEq
}

func (o Operator) IsComparison() bool {
	return o >= EqEq && o <= GtEq
}

func (o Operator) IsLogical() bool {
	return o == And || o == Or || o == Not
}

// BinaryOperator maps an infix token onto its operator. `and`/`&&` and
// `or`/`||` are the same operator.
func BinaryOperator(t types.Token) Operator {
	switch t.Kind {
	case types.PLUS:
		return Plus
	case types.MINUS:
		return Minus
	case types.STAR:
		return Mul
	case types.SLASH:
		return Div
	case types.FLOORDIV:
		return FloorDiv
	case types.POW:
		return Pow
	case types.ASSIGN:
		return Assign
	case types.PLUSEQ:
		return PlusEq
	case types.MINUSEQ:
		return MinusEq
	case types.STAREQ:
		return MulEq
	case types.SLASHEQ:
		return DivEq
	case types.EQEQ:
		return EqEq
	case types.NOTEQ:
		return NotEq
	case types.LT:
		return Lt
	case types.GT:
		return Gt
	case types.LTEQ:
		return LtEq
	case types.GTEQ:
		return GtEq
	case types.ANDAND:
		return And
	case types.OROR:
		return Or
	case types.KEYWORD:
		switch t.Keyword {
		case types.KwAnd:
			return And
		case types.KwOr:
			return Or
		}
	}
	return OpNone
}

// IsBlock reports whether n renders as a braced block rather than a simple
// statement.
func IsBlock(n Node) bool {
	switch n.(type) {
	case IfStatement, ElifStatement, ElseStatement, WhileLoop, ForLoop, FunctionDefinition:
		return true
	}
	return false
}

// Literal converts a single operand token into its leaf node.
func Literal(t types.Token) (Node, bool) {
	switch t.Kind {
	case types.INT8, types.INT16, types.INT32, types.INT64:
		return Int{Value: t.Int, Type: t.VarType()}, true
	case types.UINT8, types.UINT16, types.UINT32, types.UINT64:
		return UInt{Value: t.Uint, Type: t.VarType()}, true
	case types.FLOAT32, types.FLOAT64:
		return Float{Value: t.Float, Type: t.VarType()}, true
	case types.STRING:
		return Str{Value: t.Lit}, true
	case types.IDENT:
		return VariableCall{Name: t.Lit}, true
	}
	return nil, false
}
