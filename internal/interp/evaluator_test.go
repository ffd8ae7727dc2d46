package interp

import (
	"testing"

	"github.com/cwbudde/lumen/internal/checker"
	"github.com/cwbudde/lumen/internal/lexer"
	"github.com/cwbudde/lumen/internal/parser"
	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, src string) (Value, *Evaluator) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	c := checker.New()
	if _, err := c.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	ev := New(c.Decls())
	v, err := ev.Eval(prog)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	return v, ev
}

func TestEval_Factorial(t *testing.T) {
	v, ev := run(t, `let rec factorial (n:int):int = if n <= 1 then 1 else n * factorial (n-1) in factorial 5`)
	if got := Render(v, ev.Heap()); got != "120" {
		t.Errorf("got %s, want 120", got)
	}
}

func TestEval_Fibonacci(t *testing.T) {
	v, ev := run(t, `let rec fib (n:int):int = if n <= 1 then n else fib (n-1) + fib (n-2) in fib 10`)
	if got := Render(v, ev.Heap()); got != "55" {
		t.Errorf("got %s, want 55", got)
	}
}

func TestEval_RecordMutationAliasing(t *testing.T) {
	src := `type point = { mutable x:int; mutable y:int } in let p = {x=10; y=20} in let s = p.x + p.y in p.x <- 15; p.x + p.y`
	v, ev := run(t, src)
	if got := Render(v, ev.Heap()); got != "35" {
		t.Errorf("got %s, want 35", got)
	}
}

func TestEval_ArrayMutation(t *testing.T) {
	src := `let arr = [1;2;3;4;5] in let s = arr.(0)+arr.(1)+arr.(2) in arr.(0) <- 10; arr.(0) + s`
	v, ev := run(t, src)
	if got := Render(v, ev.Heap()); got != "16" {
		t.Errorf("got %s, want 16", got)
	}
}

func TestEval_WhileAccumulator(t *testing.T) {
	src := `let x = 0 in let s = 0 in while x < 10 do s <- s + x; x <- x + 1 done; s`
	v, ev := run(t, src)
	if got := Render(v, ev.Heap()); got != "45" {
		t.Errorf("got %s, want 45", got)
	}
}

func TestEval_CurriedHigherOrderFunction(t *testing.T) {
	src := `let apply (f:int->int) (x:int):int = f x in let double (n:int):int = n * 2 in apply double 5`
	v, ev := run(t, src)
	if got := Render(v, ev.Heap()); got != "10" {
		t.Errorf("got %s, want 10", got)
	}
}

func TestEval_DivByZero(t *testing.T) {
	p := parser.New(lexer.New("1 / 0"))
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	c := checker.New()
	if _, err := c.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	_, err = New(c.Decls()).Eval(prog)
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
	if re.Kind != "div_by_zero" {
		t.Errorf("got kind %q, want div_by_zero", re.Kind)
	}
}

func TestEval_IndexOutOfBounds(t *testing.T) {
	p := parser.New(lexer.New("let arr = [1;2;3] in arr.(5)"))
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	c := checker.New()
	if _, err := c.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	_, err = New(c.Decls()).Eval(prog)
	re, ok := err.(*RuntimeError)
	if !ok {
		t.Fatalf("got %T, want *RuntimeError", err)
	}
	if re.Kind != "index_out_of_bounds" {
		t.Errorf("got kind %q, want index_out_of_bounds", re.Kind)
	}
}

func TestRender_RecordAndArray(t *testing.T) {
	src := `type point = { mutable x:int; mutable y:int } in {x=1; y=2}`
	v, ev := run(t, src)
	if got := Render(v, ev.Heap()); got != "{x=1; y=2}" {
		t.Errorf("got %s, want {x=1; y=2}", got)
	}

	v2, ev2 := run(t, "[1;2;3]")
	if got := Render(v2, ev2.Heap()); got != "[|1; 2; 3|]" {
		t.Errorf("got %s, want [|1; 2; 3|]", got)
	}
}

func TestEval_StringAndBoolRelationalComparison(t *testing.T) {
	v, ev := run(t, `"abc" < "abd"`)
	if got := Render(v, ev.Heap()); got != "true" {
		t.Errorf("got %s, want true", got)
	}

	v2, ev2 := run(t, "true < false")
	if got := Render(v2, ev2.Heap()); got != "false" {
		t.Errorf("got %s, want false", got)
	}

	v3, ev3 := run(t, "false <= true")
	if got := Render(v3, ev3.Heap()); got != "true" {
		t.Errorf("got %s, want true", got)
	}

	v4, ev4 := run(t, `"xyz" >= "abc"`)
	if got := Render(v4, ev4.Heap()); got != "true" {
		t.Errorf("got %s, want true", got)
	}
}

func TestEval_RecordFieldsHoldIndependentValuesAfterMutation(t *testing.T) {
	src := `type point = { mutable x:int; mutable y:int } in let p = {x=1; y=2} in p.x <- 9; p`
	v, ev := run(t, src)
	ptr := v.(VPtr)
	rec := ev.Heap().Get(ptr).(*RecordInstance)

	want := map[string]Value{"x": VInt(9), "y": VInt(2)}
	if diff := cmp.Diff(want, rec.Fields); diff != "" {
		t.Errorf("record fields mismatch (-want +got):\n%s", diff)
	}
}
