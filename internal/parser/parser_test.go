package parser

import (
	"testing"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return prog
}

func TestParseProgram_IntegerLiteral(t *testing.T) {
	prog := mustParse(t, "42")
	lit, ok := prog.Body.(*ast.IntegerLiteral)
	if !ok {
		t.Fatalf("got %T, want *ast.IntegerLiteral", prog.Body)
	}
	if lit.Value != 42 {
		t.Errorf("got %d, want 42", lit.Value)
	}
}

func TestParseProgram_ApplicationLeftAssociative(t *testing.T) {
	prog := mustParse(t, "f x y")
	outer, ok := prog.Body.(*ast.AppExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.AppExpr", prog.Body)
	}
	inner, ok := outer.Fun.(*ast.AppExpr)
	if !ok {
		t.Fatalf("got %T, want inner *ast.AppExpr", outer.Fun)
	}
	if inner.Fun.(*ast.Identifier).Name != "f" {
		t.Errorf("got %s, want f", inner.Fun.(*ast.Identifier).Name)
	}
	if inner.Arg.(*ast.Identifier).Name != "x" {
		t.Errorf("got %s, want x", inner.Arg.(*ast.Identifier).Name)
	}
	if outer.Arg.(*ast.Identifier).Name != "y" {
		t.Errorf("got %s, want y", outer.Arg.(*ast.Identifier).Name)
	}
}

func TestParseProgram_PrecedenceAdditiveOverComparison(t *testing.T) {
	prog := mustParse(t, "1 + 2 < 3")
	cmp, ok := prog.Body.(*ast.BinaryExpr)
	if !ok || cmp.Op != ast.OpLt {
		t.Fatalf("got %#v, want top-level <", prog.Body)
	}
	add, ok := cmp.Left.(*ast.BinaryExpr)
	if !ok || add.Op != ast.OpAdd {
		t.Fatalf("got %#v, want left side +", cmp.Left)
	}
}

func TestParseProgram_FactorialFixpoint(t *testing.T) {
	src := `let rec factorial (n:int):int = if n <= 1 then 1 else n * factorial (n-1) in factorial 5`
	prog := mustParse(t, src)
	let, ok := prog.Body.(*ast.LetExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.LetExpr", prog.Body)
	}
	fix, ok := let.Value.(*ast.FixExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.FixExpr", let.Value)
	}
	if len(fix.Fun.Params) != 1 || fix.Fun.Params[0].Name.Name != "n" {
		t.Errorf("got params %+v, want single param n", fix.Fun.Params)
	}
}

func TestParseProgram_RecordLiteralAndFieldAssign(t *testing.T) {
	src := `type point = { mutable x:int; mutable y:int } in let p = {x=10; y=20} in p.x <- 15; p.x + p.y`
	prog := mustParse(t, src)
	if len(prog.TypeDecls) != 1 || prog.TypeDecls[0].Name != "point" {
		t.Fatalf("got type decls %+v", prog.TypeDecls)
	}
	let, ok := prog.Body.(*ast.LetExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.LetExpr", prog.Body)
	}
	strct, ok := let.Value.(*ast.StructExpr)
	if !ok || len(strct.Fields) != 2 {
		t.Fatalf("got %#v, want 2-field struct literal", let.Value)
	}
	seq, ok := let.Body.(*ast.SeqExpr)
	if !ok {
		t.Fatalf("got %T, want *ast.SeqExpr", let.Body)
	}
	if _, ok := seq.First.(*ast.SetFieldExpr); !ok {
		t.Fatalf("got %T, want *ast.SetFieldExpr", seq.First)
	}
}

func TestParseProgram_ArrayIndexAssign(t *testing.T) {
	src := `let arr = [1;2;3;4;5] in arr.(0) <- 10; arr.(0)`
	prog := mustParse(t, src)
	let := prog.Body.(*ast.LetExpr)
	arr, ok := let.Value.(*ast.ArrayExpr)
	if !ok || len(arr.Elements) != 5 {
		t.Fatalf("got %#v, want 5-element array literal", let.Value)
	}
	seq := let.Body.(*ast.SeqExpr)
	if _, ok := seq.First.(*ast.SetIndexExpr); !ok {
		t.Fatalf("got %T, want *ast.SetIndexExpr", seq.First)
	}
}

func TestParseProgram_WhileLoop(t *testing.T) {
	src := `let x = 0 in let s = 0 in while x < 10 do s <- s + x; x <- x + 1 done; s`
	prog := mustParse(t, src)
	_ = prog
}

func TestParseProgram_UnclosedParenError(t *testing.T) {
	p := New(lexer.New("(1 + 2"))
	_, err := p.ParseProgram()
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if parseErr.Kind != "unclosed" {
		t.Errorf("got kind %q, want unclosed", parseErr.Kind)
	}
}

func TestParseProgram_LetMissingIdentifier(t *testing.T) {
	p := New(lexer.New("let = 1 in 2"))
	_, err := p.ParseProgram()
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if parseErr.Kind != "expecting" {
		t.Errorf("got kind %q, want expecting", parseErr.Kind)
	}
}

func TestParseProgram_HigherOrderFunctionArrowType(t *testing.T) {
	src := `let apply (f:int->int) (x:int):int = f x in let double (n:int):int = n * 2 in apply double 5`
	prog := mustParse(t, src)
	outerLet := prog.Body.(*ast.LetExpr)
	fn := outerLet.Value.(*ast.FunExpr)
	arrow, ok := fn.Params[0].Type.(*ast.FunctionType)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionType for f's type", fn.Params[0].Type)
	}
	if arrow.Param.String() != "int" || arrow.Result.String() != "int" {
		t.Errorf("got %s -> %s, want int -> int", arrow.Param, arrow.Result)
	}
}
