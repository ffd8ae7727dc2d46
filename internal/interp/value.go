// Package interp implements the runtime value model, heap, environment,
// and tree-walking evaluator for Lumen: the judgement ρ; H ⊢ e ⇓ v, with
// H (the heap) mutated in place.
package interp

import (
	"github.com/cwbudde/lumen/internal/ast"
)

// Value is implemented by every runtime value:
// VInt | VBool | VString | VUnit | *Closure | VPtr.
type Value interface {
	isValue()
}

// VInt is a 64-bit signed integer value.
type VInt int64

func (VInt) isValue() {}

// VBool is a boolean value.
type VBool bool

func (VBool) isValue() {}

// VString is a string value.
type VString string

func (VString) isValue() {}

// VUnit is the sole inhabitant of the unit type.
type VUnit struct{}

func (VUnit) isValue() {}

// VPtr is a heap pointer: the only way to reach a record instance, an
// array instance, or (for the Fix recursion device and mutable-cell
// promotion) a single mutable scalar/closure cell. Pointers compare by
// identity (their N field).
type VPtr struct {
	N int
}

func (VPtr) isValue() {}

// Closure is `VClosure(param, body, env, [remaining_params])`: an
// immutable function value bundling one parameter, the body to
// evaluate once every parameter is supplied, the captured environment,
// and the parameters still to be curried in. Applying a Closure to an
// argument either produces the next Closure in the chain (if
// RemainingParams is non-empty) or evaluates Body under the extended
// environment.
type Closure struct {
	Param           ast.Param
	RemainingParams []ast.Param
	Body            ast.Expression
	RetType         ast.TypeExpr
	Env             *Environment
}

func (*Closure) isValue() {}
