package interp

import (
	"strings"

	"github.com/cwbudde/lumen/internal/ast"
)

func (ev *Evaluator) evalBinary(env *Environment, n *ast.BinaryExpr) (Value, error) {
	// && and || short-circuit: the right operand is evaluated only when
	// its value can still change the result.
	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		left, err := ev.eval(env, n.Left)
		if err != nil {
			return nil, err
		}
		lb := bool(left.(VBool))
		if n.Op == ast.OpAnd && !lb {
			return VBool(false), nil
		}
		if n.Op == ast.OpOr && lb {
			return VBool(true), nil
		}
		right, err := ev.eval(env, n.Right)
		if err != nil {
			return nil, err
		}
		return right, nil
	}

	left, err := ev.eval(env, n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.eval(env, n.Right)
	if err != nil {
		return nil, err
	}

	if n.Op == ast.OpEq || n.Op == ast.OpNeq {
		eq := valuesEqual(left, right)
		if n.Op == ast.OpNeq {
			eq = !eq
		}
		return VBool(eq), nil
	}

	switch n.Op {
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return compareValues(n, left, right)
	}

	l, lok := left.(VInt)
	r, rok := right.(VInt)
	if !lok || !rok {
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "operator %s requires int operands", n.Op)
	}

	switch n.Op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return nil, runtimeErr(n.Pos(), "div_by_zero", "division by zero")
		}
		return l / r, nil
	case ast.OpMod:
		if r == 0 {
			return nil, runtimeErr(n.Pos(), "div_by_zero", "division by zero")
		}
		return l % r, nil
	}

	return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unsupported operator %s", n.Op)
}

// compareValues implements <, <=, >, >= over the same types valuesEqual
// covers (int, bool, string); bool orders false < true and string
// orders lexicographically, matching the checker's types.Comparable set.
func compareValues(n *ast.BinaryExpr, left, right Value) (Value, error) {
	var cmp int
	switch l := left.(type) {
	case VInt:
		r, ok := right.(VInt)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "operator %s requires operands of the same type", n.Op)
		}
		cmp = intCompare(int64(l), int64(r))
	case VBool:
		r, ok := right.(VBool)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "operator %s requires operands of the same type", n.Op)
		}
		cmp = intCompare(boolRank(l), boolRank(r))
	case VString:
		r, ok := right.(VString)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "operator %s requires operands of the same type", n.Op)
		}
		cmp = strings.Compare(string(l), string(r))
	default:
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "operator %s requires int, bool, or string operands", n.Op)
	}

	switch n.Op {
	case ast.OpLt:
		return VBool(cmp < 0), nil
	case ast.OpLe:
		return VBool(cmp <= 0), nil
	case ast.OpGt:
		return VBool(cmp > 0), nil
	case ast.OpGe:
		return VBool(cmp >= 0), nil
	}
	return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unsupported operator %s", n.Op)
}

func intCompare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolRank(b VBool) int64 {
	if b {
		return 1
	}
	return 0
}

func (ev *Evaluator) evalUnary(env *Environment, n *ast.UnaryExpr) (Value, error) {
	v, err := ev.eval(env, n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.OpNeg:
		i, ok := v.(VInt)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unary - requires an int operand")
		}
		return -i, nil
	case ast.OpNot:
		b, ok := v.(VBool)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unary ! requires a bool operand")
		}
		return !b, nil
	}
	return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unsupported unary operator %s", n.Op)
}

// valuesEqual implements == / != over the comparable types (int, bool,
// string); the checker rejects any other operand type before the
// evaluator ever sees one.
func valuesEqual(a, b Value) bool {
	switch x := a.(type) {
	case VInt:
		y, ok := b.(VInt)
		return ok && x == y
	case VBool:
		y, ok := b.(VBool)
		return ok && x == y
	case VString:
		y, ok := b.(VString)
		return ok && x == y
	}
	return false
}
