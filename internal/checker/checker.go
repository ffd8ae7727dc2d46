// Package checker implements the syntax-directed type checker
// Γ; D ⊢ e : τ described by the language's component design: twenty
// deterministic rules over the expression grammar, fail-fast on the
// first type error.
package checker

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// Checker holds the record declaration table D, built once from a
// program's leading type declarations before the body is walked.
type Checker struct {
	decls *types.Decls
}

// New creates a Checker with an empty declaration table.
func New() *Checker {
	return &Checker{decls: types.NewDecls()}
}

// Decls returns the record declaration table accumulated by Check,
// available for reuse by the evaluator's rendering logic.
func (c *Checker) Decls() *types.Decls {
	return c.decls
}

// Check type-checks a full program: it first populates D from the
// leading type declarations (type declarations must precede their use
// in the concrete syntax, so a single left-to-right pass suffices), then
// checks the body expression under an empty Γ.
func (c *Checker) Check(prog *ast.Program) (types.Type, error) {
	for _, td := range prog.TypeDecls {
		decl, err := c.declareRecord(td)
		if err != nil {
			return nil, err
		}
		if err := c.decls.Declare(decl); err != nil {
			return nil, typeErr(td.Pos(), "record_field_mismatch", "%s", err)
		}
	}

	return c.check(NewEnv(), prog.Body)
}

func (c *Checker) declareRecord(td *ast.TypeDecl) (*types.RecordDecl, error) {
	decl := &types.RecordDecl{Name: td.Name}
	for _, f := range td.Fields {
		ft, err := resolveType(c.decls, f.Type)
		if err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, types.FieldDecl{Name: f.Name, Type: ft, Mutable: f.Mutable})
	}
	return decl, nil
}

// check implements the judgement Γ; D ⊢ e : τ.
func (c *Checker) check(env *Env, e ast.Expression) (types.Type, error) {
	switch n := e.(type) {

	case *ast.IntegerLiteral:
		return types.Int{}, nil
	case *ast.BooleanLiteral:
		return types.Bool{}, nil
	case *ast.StringLiteral:
		return types.String{}, nil
	case *ast.UnitLiteral:
		return types.Unit{}, nil

	case *ast.Identifier:
		b, ok := env.Get(n.Name)
		if !ok {
			return nil, typeErr(n.Pos(), "unbound_variable", "unbound variable %q", n.Name)
		}
		return b.Type, nil

	case *ast.BinaryExpr:
		return c.checkBinary(env, n)

	case *ast.UnaryExpr:
		return c.checkUnary(env, n)

	case *ast.IfExpr:
		condT, err := c.check(env, n.Cond)
		if err != nil {
			return nil, err
		}
		if _, ok := condT.(types.Bool); !ok {
			return nil, typeErr(n.Cond.Pos(), "type_mismatch", "if condition must be bool, got %s", condT)
		}
		thenT, err := c.check(env, n.Then)
		if err != nil {
			return nil, err
		}
		elseT, err := c.check(env, n.Else)
		if err != nil {
			return nil, err
		}
		if !thenT.Equals(elseT) {
			return nil, typeErr(n.Pos(), "type_mismatch", "if branches disagree: %s vs %s", thenT, elseT)
		}
		return thenT, nil

	case *ast.LetExpr:
		return c.checkLet(env, n)

	case *ast.FunExpr:
		return c.checkFun(env, n)

	case *ast.FixExpr:
		return c.checkFix(env, n)

	case *ast.AppExpr:
		return c.checkApp(env, n)

	case *ast.SeqExpr:
		firstT, err := c.check(env, n.First)
		if err != nil {
			return nil, err
		}
		if _, ok := firstT.(types.Unit); !ok {
			return nil, typeErr(n.First.Pos(), "type_mismatch", "left side of ';' must be unit, got %s", firstT)
		}
		return c.check(env, n.Next)

	case *ast.WhileExpr:
		condT, err := c.check(env, n.Cond)
		if err != nil {
			return nil, err
		}
		if _, ok := condT.(types.Bool); !ok {
			return nil, typeErr(n.Cond.Pos(), "type_mismatch", "while condition must be bool, got %s", condT)
		}
		bodyT, err := c.check(env, n.Body)
		if err != nil {
			return nil, err
		}
		if _, ok := bodyT.(types.Unit); !ok {
			return nil, typeErr(n.Body.Pos(), "type_mismatch", "while body must be unit, got %s", bodyT)
		}
		return types.Unit{}, nil

	case *ast.AssignExpr:
		b, ok := env.Get(n.Name.Name)
		if !ok {
			return nil, typeErr(n.Pos(), "unbound_variable", "unbound variable %q", n.Name.Name)
		}
		if !b.Mutable {
			return nil, typeErr(n.Pos(), "not_mutable", "%q is not a mutable binding", n.Name.Name)
		}
		valT, err := c.check(env, n.Value)
		if err != nil {
			return nil, err
		}
		if !valT.Equals(b.Type) {
			return nil, typeErr(n.Value.Pos(), "type_mismatch", "cannot assign %s to %q of type %s", valT, n.Name.Name, b.Type)
		}
		return types.Unit{}, nil

	case *ast.StructExpr:
		return c.checkStruct(env, n)

	case *ast.GetFieldExpr:
		return c.checkGetField(env, n)

	case *ast.SetFieldExpr:
		return c.checkSetField(env, n)

	case *ast.ArrayExpr:
		return c.checkArray(env, n)

	case *ast.GetIndexExpr:
		return c.checkGetIndex(env, n)

	case *ast.SetIndexExpr:
		return c.checkSetIndex(env, n)
	}

	return nil, typeErr(e.Pos(), "type_mismatch", "unsupported expression form %T", e)
}
