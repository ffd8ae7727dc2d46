package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/lumen/internal/lexer"
)

// ArrayExpr is `Array([e])`, a bracketed array literal `[e1; e2; ...]`.
type ArrayExpr struct {
	Token    lexer.Token // the '[' token
	Elements []Expression
}

func (e *ArrayExpr) expressionNode()      {}
func (e *ArrayExpr) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *ArrayExpr) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, "; "))
}

// GetIndexExpr is `GetA(e, e)`: `e.(i)`.
type GetIndexExpr struct {
	Token lexer.Token // the '.(' token
	Recv  Expression
	Index Expression
}

func (e *GetIndexExpr) expressionNode()      {}
func (e *GetIndexExpr) TokenLiteral() string { return e.Token.Literal }
func (e *GetIndexExpr) Pos() lexer.Position  { return e.Recv.Pos() }
func (e *GetIndexExpr) String() string {
	return fmt.Sprintf("%s.(%s)", e.Recv.String(), e.Index.String())
}

// SetIndexExpr is `SetA(e, e, e)`: `e.(i) <- v`.
type SetIndexExpr struct {
	Token lexer.Token // the '<-' token
	Recv  Expression
	Index Expression
	Value Expression
}

func (e *SetIndexExpr) expressionNode()      {}
func (e *SetIndexExpr) TokenLiteral() string { return e.Token.Literal }
func (e *SetIndexExpr) Pos() lexer.Position  { return e.Recv.Pos() }
func (e *SetIndexExpr) String() string {
	return fmt.Sprintf("%s.(%s) <- %s", e.Recv.String(), e.Index.String(), e.Value.String())
}
