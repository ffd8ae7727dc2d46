// Package ast declares the abstract syntax tree for Lumen programs.
//
// Lumen has no separate statement category: every construct, including
// sequencing and assignment, is an expression. This mirrors the teacher's
// Node/Expression split but collapses Statement into Expression, since
// the grammar described in the language specification has nothing that
// isn't one.
package ast

import (
	"strings"

	"github.com/cwbudde/lumen/internal/lexer"
)

// Node is the common interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a Node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a parsed Lumen source file: zero or more type
// declarations (recorded separately so the checker can populate the
// record table before walking the body) followed by a single body
// expression.
type Program struct {
	TypeDecls []*TypeDecl
	Body      Expression
}

func (p *Program) TokenLiteral() string {
	if p.Body != nil {
		return p.Body.TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.TypeDecls) > 0 {
		return p.TypeDecls[0].Pos()
	}
	if p.Body != nil {
		return p.Body.Pos()
	}
	return lexer.Position{}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, td := range p.TypeDecls {
		sb.WriteString(td.String())
		sb.WriteString("\n")
	}
	if p.Body != nil {
		sb.WriteString(p.Body.String())
	}
	return sb.String()
}
