package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/lumen/internal/lexer"
)

// Param is one formal parameter `(x : τ)` of a Fun node.
type Param struct {
	Name Identifier
	Type TypeExpr
}

func (p Param) String() string {
	return fmt.Sprintf("(%s: %s)", p.Name.Name, p.Type.String())
}

// LetExpr is `Let(x, e1, e2)`.
//
// The parser desugars multi-parameter `let f (x:t1) (y:t2) : tret = body in rest`
// into `Let(f, Fun([...], body, tret), rest)`, and `let rec` into
// `Let(f, Fix(f, tfun, Fun(...)), rest)`, by populating the Value field
// with a FunExpr or FixExpr directly rather than running a separate
// desugaring pass.
type LetExpr struct {
	Token lexer.Token // the 'let' token
	Name  *Identifier
	Value Expression
	Body  Expression
}

func (e *LetExpr) expressionNode()      {}
func (e *LetExpr) TokenLiteral() string { return e.Token.Literal }
func (e *LetExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *LetExpr) String() string {
	return fmt.Sprintf("let %s = %s in %s", e.Name.Name, e.Value.String(), e.Body.String())
}

// FunExpr is `Fun([(xi,ti)], body, tret)`. A FunExpr always carries its
// full, un-curried parameter list; currying to one parameter per
// application step is something the checker's result type construction
// and the evaluator's closure construction each do on the fly, not
// something baked into the AST shape.
type FunExpr struct {
	Token   lexer.Token // the 'let' token of the binding that introduced it
	Params  []Param
	Body    Expression
	RetType TypeExpr
}

func (e *FunExpr) expressionNode()      {}
func (e *FunExpr) TokenLiteral() string { return e.Token.Literal }
func (e *FunExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *FunExpr) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("fun %s -> %s", strings.Join(parts, " "), e.Body.String())
}

// FixExpr is `Fix(f, τ, Fun(...))`, produced by the parser for `let rec`.
type FixExpr struct {
	Token lexer.Token // the 'let' token of the 'let rec' binding
	Name  *Identifier
	Type  TypeExpr // the declared function type τ1 -> τ2 -> ... -> τret
	Fun   *FunExpr
}

func (e *FixExpr) expressionNode()      {}
func (e *FixExpr) TokenLiteral() string { return e.Token.Literal }
func (e *FixExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *FixExpr) String() string {
	return fmt.Sprintf("fix %s = %s", e.Name.Name, e.Fun.String())
}

// AppExpr is `App(e1, e2)`, left-associative function application built
// one argument at a time: `f x y` parses as `App(App(f,x),y)`.
type AppExpr struct {
	Token lexer.Token
	Fun   Expression
	Arg   Expression
}

func (e *AppExpr) expressionNode()      {}
func (e *AppExpr) TokenLiteral() string { return e.Token.Literal }
func (e *AppExpr) Pos() lexer.Position  { return e.Fun.Pos() }
func (e *AppExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Fun.String(), e.Arg.String())
}
