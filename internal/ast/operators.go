package ast

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/lexer"
)

// BinOp identifies a binary operator ⊕ in Bop(⊕, e, e).
type BinOp string

const (
	OpAdd BinOp = "+"
	OpSub BinOp = "-"
	OpMul BinOp = "*"
	OpDiv BinOp = "/"
	OpMod BinOp = "mod"

	OpEq  BinOp = "=="
	OpNeq BinOp = "!="
	OpLt  BinOp = "<"
	OpLe  BinOp = "<="
	OpGt  BinOp = ">"
	OpGe  BinOp = ">="

	OpAnd BinOp = "&&"
	OpOr  BinOp = "||"
)

// UnOp identifies a unary operator ⊖ in Uop(⊖, e).
type UnOp string

const (
	OpNeg UnOp = "-"
	OpNot UnOp = "!"
)

// BinaryExpr is `Bop(⊕, e, e)`.
type BinaryExpr struct {
	Token lexer.Token // the operator token
	Op    BinOp
	Left  Expression
	Right Expression
}

func (e *BinaryExpr) expressionNode()      {}
func (e *BinaryExpr) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// UnaryExpr is `Uop(⊖, e)`.
type UnaryExpr struct {
	Token   lexer.Token
	Op      UnOp
	Operand Expression
}

func (e *UnaryExpr) expressionNode()      {}
func (e *UnaryExpr) TokenLiteral() string { return e.Token.Literal }
func (e *UnaryExpr) Pos() lexer.Position  { return e.Token.Pos }
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Op, e.Operand.String())
}
