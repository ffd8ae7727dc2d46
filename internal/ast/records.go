package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/lumen/internal/lexer"
)

// Field is one field declaration `['mutable'] name : type` inside a
// TypeDecl.
type Field struct {
	Name    string
	Type    TypeExpr
	Mutable bool
}

func (f Field) String() string {
	if f.Mutable {
		return fmt.Sprintf("mutable %s: %s", f.Name, f.Type.String())
	}
	return fmt.Sprintf("%s: %s", f.Name, f.Type.String())
}

// TypeDecl is `TypeDecl(name, fields, e)` — syntactically a top-level
// declaration, but modeled as an expression-adjacent node since the
// program grammar is `type_decls expression`; TypeDecl nodes live in
// Program.TypeDecls rather than nested in the expression tree.
type TypeDecl struct {
	Token  lexer.Token // the 'type' token
	Name   string
	Fields []Field
}

func (d *TypeDecl) TokenLiteral() string { return d.Token.Literal }
func (d *TypeDecl) Pos() lexer.Position  { return d.Token.Pos }
func (d *TypeDecl) String() string {
	parts := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("type %s = { %s }", d.Name, strings.Join(parts, "; "))
}

// FieldInit is a `name = e` binding inside a Strct literal.
type FieldInit struct {
	Name  string
	Value Expression
}

// StructExpr is `Strct(name, [(field, e)])`.
type StructExpr struct {
	Token  lexer.Token // the '{' token
	Name   string
	Fields []FieldInit
}

func (e *StructExpr) expressionNode()      {}
func (e *StructExpr) TokenLiteral() string { return e.Token.Literal }
func (e *StructExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *StructExpr) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s=%s", f.Name, f.Value.String())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, "; "))
}

// GetFieldExpr is `GetF(e, field)`: `e.field`.
type GetFieldExpr struct {
	Token lexer.Token // the '.' token
	Recv  Expression
	Field string
}

func (e *GetFieldExpr) expressionNode()      {}
func (e *GetFieldExpr) TokenLiteral() string { return e.Token.Literal }
func (e *GetFieldExpr) Pos() lexer.Position  { return e.Recv.Pos() }
func (e *GetFieldExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Recv.String(), e.Field)
}

// SetFieldExpr is `SetF(e, field, e')`: `e.field <- e'`.
type SetFieldExpr struct {
	Token lexer.Token // the '<-' token
	Recv  Expression
	Field string
	Value Expression
}

func (e *SetFieldExpr) expressionNode()      {}
func (e *SetFieldExpr) TokenLiteral() string { return e.Token.Literal }
func (e *SetFieldExpr) Pos() lexer.Position  { return e.Recv.Pos() }
func (e *SetFieldExpr) String() string {
	return fmt.Sprintf("%s.%s <- %s", e.Recv.String(), e.Field, e.Value.String())
}
