package checker

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// checkLet implements rule 8, extended with the mutable-cell promotion
// described in the design notes: if the body contains an Assign
// targeting x directly, x is bound mutable in Γ for the body's check.
func (c *Checker) checkLet(env *Env, n *ast.LetExpr) (types.Type, error) {
	valueT, err := c.check(env, n.Value)
	if err != nil {
		return nil, err
	}

	child := env.Extend()
	child.Define(n.Name.Name, Binding{Type: valueT, Mutable: assignsTo(n.Body, n.Name.Name)})

	return c.check(child, n.Body)
}

// checkFun implements rule 9: under Γ extended with every parameter, the
// body must check as τret; the result is the curried arrow type
// τ1 -> τ2 -> ... -> τret.
func (c *Checker) checkFun(env *Env, n *ast.FunExpr) (types.Type, error) {
	child := env.Extend()
	paramTypes := make([]types.Type, len(n.Params))
	for i, p := range n.Params {
		pt, err := resolveType(c.decls, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = pt
		child.Define(p.Name.Name, Binding{Type: pt})
	}

	bodyT, err := c.check(child, n.Body)
	if err != nil {
		return nil, err
	}

	if n.RetType != nil {
		retT, err := resolveType(c.decls, n.RetType)
		if err != nil {
			return nil, err
		}
		if !bodyT.Equals(retT) {
			return nil, typeErr(n.Body.Pos(), "type_mismatch", "function body has type %s, declared return type is %s", bodyT, retT)
		}
		bodyT = retT
	}

	result := bodyT
	for i := len(paramTypes) - 1; i >= 0; i-- {
		result = types.Function{Param: paramTypes[i], Result: result}
	}
	return result, nil
}

// checkFix implements rule 10: under Γ[f ↦ τ], the enclosed Fun must
// check as τ.
func (c *Checker) checkFix(env *Env, n *ast.FixExpr) (types.Type, error) {
	declaredT, err := resolveType(c.decls, n.Type)
	if err != nil {
		return nil, err
	}

	child := env.Extend()
	child.Define(n.Name.Name, Binding{Type: declaredT})

	funT, err := c.checkFun(child, n.Fun)
	if err != nil {
		return nil, err
	}
	if !funT.Equals(declaredT) {
		return nil, typeErr(n.Pos(), "type_mismatch", "recursive function %q has type %s, declared as %s", n.Name.Name, funT, declaredT)
	}
	return declaredT, nil
}

// checkApp implements rule 11.
func (c *Checker) checkApp(env *Env, n *ast.AppExpr) (types.Type, error) {
	fnT, err := c.check(env, n.Fun)
	if err != nil {
		return nil, err
	}
	fn, ok := fnT.(types.Function)
	if !ok {
		return nil, typeErr(n.Fun.Pos(), "not_a_function", "cannot apply non-function type %s", fnT)
	}
	argT, err := c.check(env, n.Arg)
	if err != nil {
		return nil, err
	}
	if !argT.Equals(fn.Param) {
		return nil, typeErr(n.Arg.Pos(), "type_mismatch", "argument has type %s, expected %s", argT, fn.Param)
	}
	return fn.Result, nil
}
