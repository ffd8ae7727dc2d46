package ast

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/lexer"
)

// TypeExpr is the syntactic representation of a type annotation, as
// written by the programmer, before the checker resolves it against the
// record table into an internal/types.Type. It mirrors the atom_type /
// type grammar in the language specification directly.
type TypeExpr interface {
	Node
	typeExprNode()
	String() string
}

// NamedType is one of the primitive type keywords (int, bool, unit,
// string) or a record name written as a bare identifier.
type NamedType struct {
	Token lexer.Token // the keyword or IDENT token
	Name  string
}

func (t *NamedType) typeExprNode()          {}
func (t *NamedType) TokenLiteral() string   { return t.Token.Literal }
func (t *NamedType) Pos() lexer.Position    { return t.Token.Pos }
func (t *NamedType) String() string         { return t.Name }

// ArrayType is `elem array`.
type ArrayType struct {
	Token lexer.Token // the 'array' token
	Elem  TypeExpr
}

func (t *ArrayType) typeExprNode()        {}
func (t *ArrayType) TokenLiteral() string { return t.Token.Literal }
func (t *ArrayType) Pos() lexer.Position  { return t.Elem.Pos() }
func (t *ArrayType) String() string       { return fmt.Sprintf("%s array", t.Elem.String()) }

// FunctionType is `param -> result`, right-associative.
type FunctionType struct {
	Token  lexer.Token // the '->' token
	Param  TypeExpr
	Result TypeExpr
}

func (t *FunctionType) typeExprNode()        {}
func (t *FunctionType) TokenLiteral() string { return t.Token.Literal }
func (t *FunctionType) Pos() lexer.Position  { return t.Param.Pos() }
func (t *FunctionType) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Param.String(), t.Result.String())
}
