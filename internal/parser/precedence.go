package parser

import "github.com/cwbudde/lumen/internal/lexer"

// Precedence levels for binop_expr, lowest to highest, matching the
// grammar's precedence table. Application and postfix field/index access
// bind tighter than any binary operator and are handled by dedicated
// parse functions rather than this table.
const (
	_ int = iota
	precOr
	precAnd
	precCompare
	precAdditive
	precMultiplicative
)

var binOpPrecedence = map[lexer.TokenType]int{
	lexer.OR:    precOr,
	lexer.AND:   precAnd,
	lexer.EQ:    precCompare,
	lexer.NEQ:   precCompare,
	lexer.LT:    precCompare,
	lexer.LE:    precCompare,
	lexer.GT:    precCompare,
	lexer.GE:    precCompare,
	lexer.PLUS:  precAdditive,
	lexer.MINUS: precAdditive,
	lexer.STAR:  precMultiplicative,
	lexer.SLASH: precMultiplicative,
	lexer.MOD:   precMultiplicative,
}

var binOpSymbol = map[lexer.TokenType]string{
	lexer.OR:    "||",
	lexer.AND:   "&&",
	lexer.EQ:    "==",
	lexer.NEQ:   "!=",
	lexer.LT:    "<",
	lexer.LE:    "<=",
	lexer.GT:    ">",
	lexer.GE:    ">=",
	lexer.PLUS:  "+",
	lexer.MINUS: "-",
	lexer.STAR:  "*",
	lexer.SLASH: "/",
	lexer.MOD:   "mod",
}
