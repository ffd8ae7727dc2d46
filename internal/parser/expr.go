package parser

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/lexer"
)

// parseExpression is the top-level expression production:
//
//	expression := 'let' ['rec'] ... | if_expr | while_expr | seq_expr
//
// 'let'/'if'/'while' are parsed by dedicated functions; everything else
// falls through to the assignment/binop chain. Sequencing (';') wraps
// whatever was parsed, right-associatively, regardless of which
// alternative produced the left operand — this lets `while ... done; s`
// and `let x = 1 in body; more` both parse as a trailing Seq.
func (p *Parser) parseExpression() ast.Expression {
	var left ast.Expression

	switch p.curToken.Type {
	case lexer.LET:
		left = p.parseLet()
	case lexer.IF:
		left = p.parseIf()
	case lexer.WHILE:
		left = p.parseWhile()
	default:
		left = p.parseAssignOrBinop()
	}
	if p.err != nil {
		return nil
	}

	if p.curIs(lexer.SEMICOLON) {
		tok := p.curToken
		p.next()
		right := p.parseExpression()
		if p.err != nil {
			return nil
		}
		return &ast.SeqExpr{Token: tok, First: left, Next: right}
	}
	return left
}

// parseAssignOrBinop parses `target <- value` when applicable, otherwise
// falls through to the binary-operator precedence chain. The assignment
// target must be an identifier, field access, or index access; anything
// else is a parse error.
func (p *Parser) parseAssignOrBinop() ast.Expression {
	left := p.parseBinExpr(precOr)
	if p.err != nil {
		return nil
	}
	if !p.curIs(lexer.LARROW) {
		return left
	}
	tok := p.curToken
	p.next()
	value := p.parseBinExpr(precOr)
	if p.err != nil {
		return nil
	}

	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.AssignExpr{Token: tok, Name: target, Value: value}
	case *ast.GetFieldExpr:
		return &ast.SetFieldExpr{Token: tok, Recv: target.Recv, Field: target.Field, Value: value}
	case *ast.GetIndexExpr:
		return &ast.SetIndexExpr{Token: tok, Recv: target.Recv, Index: target.Index, Value: value}
	default:
		p.failAt("unexpected_token", "invalid assignment target", tok.Pos)
		return nil
	}
}

// parseBinExpr implements precedence climbing over the operator table
// down through unary, application, and postfix forms.
func (p *Parser) parseBinExpr(minPrec int) ast.Expression {
	left := p.parseUnary()
	if p.err != nil {
		return nil
	}
	for {
		prec, ok := binOpPrecedence[p.curToken.Type]
		if !ok || prec < minPrec {
			return left
		}
		tok := p.curToken
		op := ast.BinOp(binOpSymbol[tok.Type])
		p.next()
		right := p.parseBinExpr(prec + 1)
		if p.err != nil {
			return nil
		}
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
}

// parseUnary parses `right unary !, unary -`, which bind tighter than
// any binary operator but looser than application.
func (p *Parser) parseUnary() ast.Expression {
	switch p.curToken.Type {
	case lexer.MINUS:
		tok := p.curToken
		p.next()
		operand := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return &ast.UnaryExpr{Token: tok, Op: ast.OpNeg, Operand: operand}
	case lexer.NOT:
		tok := p.curToken
		p.next()
		operand := p.parseUnary()
		if p.err != nil {
			return nil
		}
		return &ast.UnaryExpr{Token: tok, Op: ast.OpNot, Operand: operand}
	default:
		return p.parseApplication()
	}
}

// startsAtom reports whether t can begin an atom, used to decide whether
// application (left-associative juxtaposition) continues.
func startsAtom(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENT, lexer.INT, lexer.STRING, lexer.TRUE, lexer.FALSE,
		lexer.LPAREN, lexer.LBRACE, lexer.LBRACK:
		return true
	default:
		return false
	}
}

// parseApplication parses `f x y` as `App(App(f,x),y)`: application binds
// tighter than any binary operator but looser than postfix field/index
// access, which parsePostfix resolves on each operand first.
func (p *Parser) parseApplication() ast.Expression {
	fn := p.parsePostfix()
	if p.err != nil {
		return nil
	}
	for startsAtom(p.curToken.Type) {
		tok := p.curToken
		arg := p.parsePostfix()
		if p.err != nil {
			return nil
		}
		fn = &ast.AppExpr{Token: tok, Fun: fn, Arg: arg}
	}
	return fn
}

// parsePostfix parses `atom ( '.' IDENT | '.(' expression ')' )*`.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseAtom()
	if p.err != nil {
		return nil
	}
	for {
		switch p.curToken.Type {
		case lexer.DOT:
			tok := p.curToken
			p.next()
			if !p.curIs(lexer.IDENT) {
				p.fail("expecting", "expecting \"identifier\" after '.'")
				return nil
			}
			field := p.curToken.Literal
			p.next()
			expr = &ast.GetFieldExpr{Token: tok, Recv: expr, Field: field}
		case lexer.DOTLPAREN:
			tok := p.curToken
			p.next()
			idx := p.parseExpression()
			if p.err != nil {
				return nil
			}
			if !p.curIs(lexer.RPAREN) {
				p.fail("unclosed", "unclosed \"parenthesis\" in index expression")
				return nil
			}
			p.next()
			expr = &ast.GetIndexExpr{Token: tok, Recv: expr, Index: idx}
		default:
			return expr
		}
	}
}

// parseAtom parses `literal | IDENT | '(' expression ')' | '{' field_assignments '}' | '[' expression_list ']'`.
func (p *Parser) parseAtom() ast.Expression {
	switch p.curToken.Type {
	case lexer.INT:
		return p.parseIntegerLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBooleanLiteral()
	case lexer.STRING:
		tok := p.curToken
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case lexer.IDENT:
		tok := p.curToken
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	case lexer.LPAREN:
		return p.parseParenOrUnit()
	case lexer.LBRACE:
		return p.parseStruct()
	case lexer.LBRACK:
		return p.parseArray()
	default:
		p.fail("unexpected_token", fmt.Sprintf("unexpected token %s (%q)", p.curToken.Type, p.curToken.Literal))
		return nil
	}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curToken
	var value int64
	for _, r := range tok.Literal {
		value = value*10 + int64(r-'0')
	}
	p.next()
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.curToken
	p.next()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Type == lexer.TRUE}
}

// parseParenOrUnit parses `( )` as the unit literal and `( expression )`
// as a grouped expression (grouping is resolved away — the parenthesized
// expression's own AST node is returned directly).
func (p *Parser) parseParenOrUnit() ast.Expression {
	tok := p.curToken
	p.next() // consume '('
	if p.curIs(lexer.RPAREN) {
		p.next()
		return &ast.UnitLiteral{Token: tok}
	}
	inner := p.parseExpression()
	if p.err != nil {
		return nil
	}
	if !p.curIs(lexer.RPAREN) {
		p.fail("unclosed", "unclosed \"parenthesis\"")
		return nil
	}
	p.next()
	return inner
}

// parseStruct parses `{ IDENT '=' expression (';' IDENT '=' expression)* [';'] }`.
// Lumen's literal struct syntax carries no explicit record name token,
// so the parser leaves Name empty and the checker resolves the record by
// matching the literal's field names, in order, against the declaration
// table D (see internal/checker).
func (p *Parser) parseStruct() ast.Expression {
	tok := p.curToken
	p.next() // consume '{'

	s := &ast.StructExpr{Token: tok}
	for !p.curIs(lexer.RBRACE) {
		if p.err != nil {
			return nil
		}
		if !p.curIs(lexer.IDENT) {
			p.fail("unexpected_token", fmt.Sprintf("expected field name, got %s", p.curToken.Type))
			return nil
		}
		name := p.curToken.Literal
		p.next()
		if !p.expect(lexer.ASSIGN) {
			return nil
		}
		value := p.parseAssignOrBinop()
		if p.err != nil {
			return nil
		}
		s.Fields = append(s.Fields, ast.FieldInit{Name: name, Value: value})
		if p.curIs(lexer.SEMICOLON) {
			p.next()
			continue
		}
		break
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}
	return s
}

// parseArray parses `[ expression (';' expression)* ]`.
func (p *Parser) parseArray() ast.Expression {
	tok := p.curToken
	p.next() // consume '['

	arr := &ast.ArrayExpr{Token: tok}
	if p.curIs(lexer.RBRACK) {
		p.next()
		return arr
	}
	for {
		elem := p.parseAssignOrBinop()
		if p.err != nil {
			return nil
		}
		arr.Elements = append(arr.Elements, elem)
		if p.curIs(lexer.SEMICOLON) {
			p.next()
			continue
		}
		break
	}
	if !p.expect(lexer.RBRACK) {
		return nil
	}
	return arr
}
