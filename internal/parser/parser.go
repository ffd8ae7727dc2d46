// Package parser implements a precedence-climbing descent parser that
// turns a Lumen token stream into an internal/ast.Program, following the
// precedence table and grammar productions of the language's expression
// grammar. The structure — a Parser holding current/peek tokens advanced
// by a single next() call, with the first error recorded and every later
// step stopping on it — follows the teacher's Pratt parser shape, generalized
// here to an expression-only grammar.
package parser

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/lexer"
)

// ParseError reports a syntax error with the offending token's position.
type ParseError struct {
	Kind    string // "unexpected_token", "expecting", "unclosed"
	Message string
	Pos     lexer.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parser consumes tokens from a lexer.Lexer and builds an AST.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	err error
}

// New creates a Parser over the given lexer. Lex errors encountered while
// priming the first two tokens are surfaced from the first ParseProgram
// call.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	if p.err != nil {
		return
	}
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		p.err = err
		return
	}
	p.peekToken = tok
}

func (p *Parser) fail(kind, message string) {
	if p.err == nil {
		p.err = &ParseError{Kind: kind, Message: message, Pos: p.curToken.Pos}
	}
}

func (p *Parser) failAt(kind, message string, pos lexer.Position) {
	if p.err == nil {
		p.err = &ParseError{Kind: kind, Message: message, Pos: pos}
	}
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expect asserts the current token's type, consuming it, or records a
// ParseError and returns false.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.err != nil {
		return false
	}
	if !p.curIs(t) {
		p.fail("unexpected_token", fmt.Sprintf("expected %s, got %s (%q)", t, p.curToken.Type, p.curToken.Literal))
		return false
	}
	p.next()
	return true
}

// ParseProgram parses a full Lumen source file: its leading type
// declarations, each optionally followed by 'in', then a single body
// expression. Returns the first
// error encountered by either the lexer or the parser.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.err == nil && p.curIs(lexer.TYPE) {
		decl := p.parseTypeDecl()
		if p.err != nil {
			return nil, p.err
		}
		prog.TypeDecls = append(prog.TypeDecls, decl)
		if p.curIs(lexer.IN) {
			p.next()
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	body := p.parseExpression()
	if p.err != nil {
		return nil, p.err
	}
	prog.Body = body

	if !p.curIs(lexer.EOF) {
		p.fail("unexpected_token", fmt.Sprintf("unexpected trailing token %s (%q)", p.curToken.Type, p.curToken.Literal))
		return nil, p.err
	}

	return prog, nil
}

// parseTypeDecl parses `type IDENT = { field (';' field)* [';'] }`.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	tok := p.curToken
	p.next() // consume 'type'

	if !p.curIs(lexer.IDENT) {
		p.fail("expecting", "expecting \"identifier\" after 'type'")
		return nil
	}
	name := p.curToken.Literal
	p.next()

	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	decl := &ast.TypeDecl{Token: tok, Name: name}
	for !p.curIs(lexer.RBRACE) {
		if p.err != nil {
			return nil
		}
		field := p.parseField()
		if p.err != nil {
			return nil
		}
		decl.Fields = append(decl.Fields, field)
		if p.curIs(lexer.SEMICOLON) {
			p.next()
			continue
		}
		break
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}
	return decl
}

// parseField parses `['mutable'] IDENT ':' type`.
func (p *Parser) parseField() ast.Field {
	mutable := false
	if p.curIs(lexer.MUTABLE) {
		mutable = true
		p.next()
	}
	if !p.curIs(lexer.IDENT) {
		p.fail("unexpected_token", fmt.Sprintf("expected field name, got %s", p.curToken.Type))
		return ast.Field{}
	}
	name := p.curToken.Literal
	p.next()
	if !p.expect(lexer.COLON) {
		return ast.Field{}
	}
	typ := p.parseType()
	return ast.Field{Name: name, Type: typ, Mutable: mutable}
}
