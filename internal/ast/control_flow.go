package ast

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/lexer"
)

// IfExpr is `If(e, e, e)`.
type IfExpr struct {
	Token     lexer.Token // the 'if' token
	Cond      Expression
	Then      Expression
	Else      Expression
}

func (e *IfExpr) expressionNode()      {}
func (e *IfExpr) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *IfExpr) String() string {
	return fmt.Sprintf("if %s then %s else %s", e.Cond.String(), e.Then.String(), e.Else.String())
}

// WhileExpr is `While(e, e)`.
type WhileExpr struct {
	Token lexer.Token // the 'while' token
	Cond  Expression
	Body  Expression
}

func (e *WhileExpr) expressionNode()      {}
func (e *WhileExpr) TokenLiteral() string { return e.Token.Literal }
func (e *WhileExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *WhileExpr) String() string {
	return fmt.Sprintf("while %s do %s done", e.Cond.String(), e.Body.String())
}

// SeqExpr is `Seq(e, e)`, right-associative sequencing via ';'.
type SeqExpr struct {
	Token lexer.Token // the ';' token
	First Expression
	Next  Expression
}

func (e *SeqExpr) expressionNode()      {}
func (e *SeqExpr) TokenLiteral() string { return e.Token.Literal }
func (e *SeqExpr) Pos() lexer.Position  { return e.First.Pos() }
func (e *SeqExpr) String() string {
	return fmt.Sprintf("%s; %s", e.First.String(), e.Next.String())
}

// AssignExpr is `Assign(x, e)`: `x <- e`.
type AssignExpr struct {
	Token lexer.Token // the '<-' token
	Name  *Identifier
	Value Expression
}

func (e *AssignExpr) expressionNode()      {}
func (e *AssignExpr) TokenLiteral() string { return e.Token.Literal }
func (e *AssignExpr) Pos() lexer.Position  { return e.Name.Pos() }
func (e *AssignExpr) String() string {
	return fmt.Sprintf("%s <- %s", e.Name.String(), e.Value.String())
}
