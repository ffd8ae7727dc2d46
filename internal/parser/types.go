package parser

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/lexer"
)

// parseType parses `atom_type ('->' type)?`, right-associative.
func (p *Parser) parseType() ast.TypeExpr {
	left := p.parseAtomType()
	if p.err != nil {
		return nil
	}
	if p.curIs(lexer.ARROW) {
		tok := p.curToken
		p.next()
		result := p.parseType()
		if p.err != nil {
			return nil
		}
		return &ast.FunctionType{Token: tok, Param: left, Result: result}
	}
	return left
}

// parseAtomType parses `'int' | 'bool' | 'unit' | 'string' | IDENT |
// atom_type 'array' | '(' type ')'`, then greedily consumes any number
// of trailing `array` suffixes (`int array array` is `(int array) array`).
func (p *Parser) parseAtomType() ast.TypeExpr {
	var t ast.TypeExpr

	switch p.curToken.Type {
	case lexer.INT_TYPE, lexer.BOOL_TYPE, lexer.UNIT_TYPE, lexer.STRING_TYPE:
		t = &ast.NamedType{Token: p.curToken, Name: p.curToken.Literal}
		p.next()
	case lexer.IDENT:
		t = &ast.NamedType{Token: p.curToken, Name: p.curToken.Literal}
		p.next()
	case lexer.LPAREN:
		p.next()
		t = p.parseType()
		if p.err != nil {
			return nil
		}
		if !p.curIs(lexer.RPAREN) {
			p.fail("unclosed", "unclosed \"parenthesis\" in type")
			return nil
		}
		p.next()
	default:
		p.fail("unexpected_token", fmt.Sprintf("expected a type, got %s (%q)", p.curToken.Type, p.curToken.Literal))
		return nil
	}

	for p.curIs(lexer.ARRAY_TYPE) {
		tok := p.curToken
		p.next()
		t = &ast.ArrayType{Token: tok, Elem: t}
	}
	return t
}
