package parser

import (
	"github.com/pontaoski/chic/ast"
	"github.com/pontaoski/chic/types"
)

// Precedence bands, lowest first. Relational and logical operators bind
// looser than every arithmetic operator.
var precedence = map[ast.Operator]int{
	ast.Assign:   1,
	ast.PlusEq:   1,
	ast.MinusEq:  1,
	ast.MulEq:    1,
	ast.DivEq:    1,
	ast.Or:       2,
	ast.And:      3,
	ast.Not:      4,
	ast.EqEq:     5,
	ast.NotEq:    5,
	ast.Lt:       5,
	ast.Gt:       5,
	ast.LtEq:     5,
	ast.GtEq:     5,
	ast.Plus:     6,
	ast.Minus:    6,
	ast.Mul:      7,
	ast.Div:      7,
	ast.Pow:      8,
	ast.FloorDiv: 8,
	ast.Neg:      9,
}

func rightAssociative(op ast.Operator) bool {
	return op == ast.Pow || op.IsAssignment()
}

type stackEntry struct {
	op    ast.Operator
	unary bool
	paren bool
	tok   types.Token
}

// shouldReduce reports whether top must be applied before incoming is
// pushed: it binds tighter, or as tightly and incoming is left associative.
func shouldReduce(top stackEntry, incoming ast.Operator) bool {
	if top.paren {
		return false
	}
	tp, ip := precedence[top.op], precedence[incoming]
	if rightAssociative(incoming) {
		return tp > ip
	}
	return tp >= ip
}

type exprState struct {
	toks      []types.Token
	operands  []ast.Node
	operators []stackEntry
}

func (s *exprState) reduce() {
	top := s.operators[len(s.operators)-1]
	s.operators = s.operators[:len(s.operators)-1]

	if top.unary {
		if len(s.operands) < 1 {
			fail(s.toks, "`%s` is missing its operand", top.tok.Lit)
		}
		operand := s.operands[len(s.operands)-1]
		s.operands[len(s.operands)-1] = ast.UnaryExpression{Operator: top.op, Operand: operand}
		return
	}

	if len(s.operands) < 2 {
		fail(s.toks, "`%s` is missing an operand", top.tok.Lit)
	}
	left, right := s.operands[len(s.operands)-2], s.operands[len(s.operands)-1]
	if top.op.IsAssignment() {
		if _, ok := left.(ast.VariableCall); !ok {
			fail(s.toks, "left side of `%s` must be a variable", top.tok.Lit)
		}
	}
	s.operands = s.operands[:len(s.operands)-2]
	s.operands = append(s.operands, ast.BinaryExpression{Operator: top.op, Left: left, Right: right})
}

// parseExpression runs the shunting-yard algorithm over an infix token
// slice, building the tree as operators are popped.
func (p *Parser) parseExpression(toks []types.Token) ast.Node {
	s := &exprState{toks: toks}
	expectOperand := true

	for i := 0; i < len(toks); i++ {
		tok := toks[i]

		if expectOperand {
			switch {
			case tok.Kind == types.IDENT && i+1 < len(toks) && toks[i+1].Kind == types.LPAREN:
				closing := matchParen(toks, i+1)
				if closing < 0 {
					fail(toks[i:], "call to %s is missing its `)`", tok.Lit)
				}
				s.operands = append(s.operands, p.functionCall(tok, toks[i+2:closing]))
				i = closing
				expectOperand = false
			case tok.IsOperand():
				s.operands = append(s.operands, p.leaf(tok))
				expectOperand = false
			case tok.Kind == types.LPAREN:
				s.operators = append(s.operators, stackEntry{paren: true, tok: tok})
			case tok.Kind == types.BANG, tok.IsKeyword(types.KwNot):
				s.operators = append(s.operators, stackEntry{op: ast.Not, unary: true, tok: tok})
			case tok.Kind == types.MINUS:
				s.operators = append(s.operators, stackEntry{op: ast.Neg, unary: true, tok: tok})
			default:
				fail(toks[i:], "expected a value, got %s", tok)
			}
			continue
		}

		if tok.Kind == types.RPAREN {
			for len(s.operators) > 0 && !s.operators[len(s.operators)-1].paren {
				s.reduce()
			}
			if len(s.operators) == 0 {
				fail(toks[i:], "unbalanced `)`")
			}
			s.operators = s.operators[:len(s.operators)-1]
			continue
		}

		op := ast.BinaryOperator(tok)
		if op == ast.OpNone {
			fail(toks[i:], "expected an operator, got %s", tok)
		}
		for len(s.operators) > 0 && shouldReduce(s.operators[len(s.operators)-1], op) {
			s.reduce()
		}
		s.operators = append(s.operators, stackEntry{op: op, tok: tok})
		expectOperand = true
	}

	if expectOperand {
		fail(toks, "expression ends with an operator")
	}

	for len(s.operators) > 0 {
		if s.operators[len(s.operators)-1].paren {
			fail(toks, "unbalanced `(`")
		}
		s.reduce()
	}

	if len(s.operands) != 1 {
		fail(toks, "malformed expression")
	}
	return s.operands[0]
}
