package parser

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/lexer"
)

// parseLet parses:
//
//	'let' ['rec'] IDENT params? [':' type] '=' expression 'in' expression
//	params := ('(' IDENT ':' type ')')+
//
// Multi-parameter bindings desugar here into a single FunExpr carrying
// the full parameter list; `rec` additionally wraps that FunExpr in a
// FixExpr with the declared function type τ1 -> τ2 -> ... -> τret.
func (p *Parser) parseLet() ast.Expression {
	tok := p.curToken
	p.next() // consume 'let'

	isRec := false
	if p.curIs(lexer.REC) {
		isRec = true
		p.next()
	}

	if !p.curIs(lexer.IDENT) {
		p.fail("expecting", "expecting \"identifier\" after 'let'")
		return nil
	}
	nameTok := p.curToken
	name := &ast.Identifier{Token: nameTok, Name: nameTok.Literal}
	p.next()

	var params []ast.Param
	for p.curIs(lexer.LPAREN) {
		p.next() // consume '('
		if !p.curIs(lexer.IDENT) {
			p.fail("expecting", "expecting \"identifier\" in parameter list")
			return nil
		}
		paramTok := p.curToken
		p.next()
		if !p.expect(lexer.COLON) {
			return nil
		}
		paramType := p.parseType()
		if p.err != nil {
			return nil
		}
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		params = append(params, ast.Param{
			Name: ast.Identifier{Token: paramTok, Name: paramTok.Literal},
			Type: paramType,
		})
	}

	var retType ast.TypeExpr
	if p.curIs(lexer.COLON) {
		p.next()
		retType = p.parseType()
		if p.err != nil {
			return nil
		}
	}

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	value := p.parseExpression()
	if p.err != nil {
		return nil
	}

	if !p.expect(lexer.IN) {
		return nil
	}

	body := p.parseExpression()
	if p.err != nil {
		return nil
	}

	var bound ast.Expression = value
	if len(params) > 0 {
		bound = &ast.FunExpr{Token: tok, Params: params, Body: value, RetType: retType}
	}

	if isRec {
		funExpr, ok := bound.(*ast.FunExpr)
		if !ok {
			p.failAt("unexpected_token", "'let rec' requires at least one parameter", tok.Pos)
			return nil
		}
		bound = &ast.FixExpr{
			Token: tok,
			Name:  name,
			Type:  buildFunctionType(params, retType),
			Fun:   funExpr,
		}
	}

	return &ast.LetExpr{Token: tok, Name: name, Value: bound, Body: body}
}

// buildFunctionType folds a parameter list and a return type into the
// right-nested arrow type τ1 -> τ2 -> ... -> τret.
func buildFunctionType(params []ast.Param, ret ast.TypeExpr) ast.TypeExpr {
	if len(params) == 0 {
		return ret
	}
	return &ast.FunctionType{
		Token:  params[0].Name.Token,
		Param:  params[0].Type,
		Result: buildFunctionType(params[1:], ret),
	}
}

// parseIf parses `'if' cond 'then' expression 'else' expression`. The
// condition is parsed at binop level (not full expression) so that
// `then` unambiguously terminates it.
func (p *Parser) parseIf() ast.Expression {
	tok := p.curToken
	p.next() // consume 'if'

	cond := p.parseAssignOrBinop()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.THEN) {
		return nil
	}
	thenExpr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.ELSE) {
		return nil
	}
	elseExpr := p.parseExpression()
	if p.err != nil {
		return nil
	}
	return &ast.IfExpr{Token: tok, Cond: cond, Then: thenExpr, Else: elseExpr}
}

// parseWhile parses `'while' cond 'do' body 'done'`.
func (p *Parser) parseWhile() ast.Expression {
	tok := p.curToken
	p.next() // consume 'while'

	cond := p.parseAssignOrBinop()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.DO) {
		return nil
	}
	body := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.expect(lexer.DONE) {
		return nil
	}
	return &ast.WhileExpr{Token: tok, Cond: cond, Body: body}
}
