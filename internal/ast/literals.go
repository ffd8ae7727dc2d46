package ast

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/lumen/internal/lexer"
)

// IntegerLiteral is `Int n`.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (e *IntegerLiteral) expressionNode()      {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *IntegerLiteral) String() string       { return strconv.FormatInt(e.Value, 10) }

// BooleanLiteral is `Bool b`.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (e *BooleanLiteral) expressionNode()      {}
func (e *BooleanLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *BooleanLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *BooleanLiteral) String() string       { return strconv.FormatBool(e.Value) }

// StringLiteral is `String s`, already unescaped by the lexer.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (e *StringLiteral) expressionNode()      {}
func (e *StringLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *StringLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *StringLiteral) String() string       { return fmt.Sprintf("%q", e.Value) }

// UnitLiteral is the nullary `()` literal. The unit value is also what
// the statement-like forms While, SetF, SetA and Assign evaluate to.
type UnitLiteral struct {
	Token lexer.Token
}

func (e *UnitLiteral) expressionNode()      {}
func (e *UnitLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *UnitLiteral) Pos() lexer.Position  { return e.Token.Pos }
func (e *UnitLiteral) String() string       { return "()" }

// Identifier is `Var x`.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) Pos() lexer.Position  { return e.Token.Pos }
func (e *Identifier) String() string       { return e.Name }
