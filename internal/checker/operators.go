package checker

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

var arithmeticOps = map[ast.BinOp]bool{
	ast.OpAdd: true, ast.OpSub: true, ast.OpMul: true, ast.OpDiv: true, ast.OpMod: true,
}

var comparisonOps = map[ast.BinOp]bool{
	ast.OpEq: true, ast.OpNeq: true, ast.OpLt: true, ast.OpLe: true, ast.OpGt: true, ast.OpGe: true,
}

var logicalOps = map[ast.BinOp]bool{
	ast.OpAnd: true, ast.OpOr: true,
}

// checkBinary implements rules 3-5: arithmetic, comparison, and logical
// binary operators.
func (c *Checker) checkBinary(env *Env, n *ast.BinaryExpr) (types.Type, error) {
	leftT, err := c.check(env, n.Left)
	if err != nil {
		return nil, err
	}
	rightT, err := c.check(env, n.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case arithmeticOps[n.Op]:
		if _, ok := leftT.(types.Int); !ok {
			return nil, typeErr(n.Left.Pos(), "type_mismatch", "left operand of %s must be int, got %s", n.Op, leftT)
		}
		if _, ok := rightT.(types.Int); !ok {
			return nil, typeErr(n.Right.Pos(), "type_mismatch", "right operand of %s must be int, got %s", n.Op, rightT)
		}
		return types.Int{}, nil

	case comparisonOps[n.Op]:
		if !types.Comparable(leftT) {
			return nil, typeErr(n.Left.Pos(), "type_mismatch", "type %s is not comparable", leftT)
		}
		if !leftT.Equals(rightT) {
			return nil, typeErr(n.Pos(), "type_mismatch", "cannot compare %s with %s", leftT, rightT)
		}
		return types.Bool{}, nil

	case logicalOps[n.Op]:
		if _, ok := leftT.(types.Bool); !ok {
			return nil, typeErr(n.Left.Pos(), "type_mismatch", "left operand of %s must be bool, got %s", n.Op, leftT)
		}
		if _, ok := rightT.(types.Bool); !ok {
			return nil, typeErr(n.Right.Pos(), "type_mismatch", "right operand of %s must be bool, got %s", n.Op, rightT)
		}
		return types.Bool{}, nil
	}

	return nil, typeErr(n.Pos(), "type_mismatch", "unknown operator %s", n.Op)
}

// checkUnary implements rule 6.
func (c *Checker) checkUnary(env *Env, n *ast.UnaryExpr) (types.Type, error) {
	operandT, err := c.check(env, n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNeg:
		if _, ok := operandT.(types.Int); !ok {
			return nil, typeErr(n.Operand.Pos(), "type_mismatch", "unary - requires int, got %s", operandT)
		}
		return types.Int{}, nil
	case ast.OpNot:
		if _, ok := operandT.(types.Bool); !ok {
			return nil, typeErr(n.Operand.Pos(), "type_mismatch", "unary ! requires bool, got %s", operandT)
		}
		return types.Bool{}, nil
	}
	return nil, typeErr(n.Pos(), "type_mismatch", "unknown unary operator %s", n.Op)
}
