package checker

import (
	"testing"

	"github.com/cwbudde/lumen/internal/lexer"
	"github.com/cwbudde/lumen/internal/parser"
	"github.com/cwbudde/lumen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSource(t *testing.T, src string) (types.Type, error) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, err := p.ParseProgram()
	require.NoError(t, err, "unexpected parse error")
	return New().Check(prog)
}

func TestCheck_Factorial(t *testing.T) {
	src := `let rec factorial (n:int):int = if n <= 1 then 1 else n * factorial (n-1) in factorial 5`
	ty, err := checkSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, types.Int{}, ty)
}

func TestCheck_HigherOrderFunction(t *testing.T) {
	src := `let apply (f:int->int) (x:int):int = f x in let double (n:int):int = n * 2 in apply double 5`
	ty, err := checkSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, types.Int{}, ty)
}

func TestCheck_RecordMutation(t *testing.T) {
	src := `type point = { mutable x:int; mutable y:int } in let p = {x=10; y=20} in let s = p.x + p.y in p.x <- 15; p.x + p.y`
	ty, err := checkSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, types.Int{}, ty)
}

func TestCheck_ArrayMutation(t *testing.T) {
	src := `let arr = [1;2;3;4;5] in let s = arr.(0)+arr.(1)+arr.(2) in arr.(0) <- 10; arr.(0) + s`
	ty, err := checkSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, types.Int{}, ty)
}

func TestCheck_WhileAccumulator(t *testing.T) {
	src := `let x = 0 in let s = 0 in while x < 10 do s <- s + x; x <- x + 1 done; s`
	ty, err := checkSource(t, src)
	require.NoError(t, err)
	assert.Equal(t, types.Int{}, ty)
}

func TestCheck_MixedArithmeticOperandFails(t *testing.T) {
	_, err := checkSource(t, "1 + true")
	te := requireTypeError(t, err)
	assert.Equal(t, "type_mismatch", te.Kind)
}

func TestCheck_NotAFunction(t *testing.T) {
	_, err := checkSource(t, "let f = 1 in f 2")
	te := requireTypeError(t, err)
	assert.Equal(t, "not_a_function", te.Kind)
}

func TestCheck_ArrayElementTypeMismatch(t *testing.T) {
	_, err := checkSource(t, "[1; true]")
	te := requireTypeError(t, err)
	assert.Equal(t, "type_mismatch", te.Kind)
}

func TestCheck_UnknownField(t *testing.T) {
	src := `type point = { mutable x:int } in {x=1}.y`
	_, err := checkSource(t, src)
	te := requireTypeError(t, err)
	assert.Equal(t, "record_field_mismatch", te.Kind)
}

func TestCheck_RecordEqualityRejected(t *testing.T) {
	src := `type point = { mutable x:int } in let a = {x=1} in let b = {x=1} in a == b`
	_, err := checkSource(t, src)
	te := requireTypeError(t, err)
	assert.Equal(t, "type_mismatch", te.Kind)
}

func TestCheck_LetPromotesMutableCellWhenAssigned(t *testing.T) {
	ty, err := checkSource(t, "let x = 1 in x <- 2")
	require.NoError(t, err)
	assert.Equal(t, types.Unit{}, ty)
}

func TestCheck_AssignToFunctionParameterFails(t *testing.T) {
	// Function parameters are never promoted to mutable cells — only
	// plain let-bound identifiers are, per rule 14.
	_, err := checkSource(t, "let f (x:int):int = x <- 1 in f 2")
	te := requireTypeError(t, err)
	assert.Equal(t, "not_mutable", te.Kind)
}

func TestCheck_StringAndBoolRelationalComparison(t *testing.T) {
	ty, err := checkSource(t, `"abc" < "abd"`)
	require.NoError(t, err)
	assert.Equal(t, types.Bool{}, ty)

	ty2, err := checkSource(t, "true < false")
	require.NoError(t, err)
	assert.Equal(t, types.Bool{}, ty2)
}

func TestCheck_MonomorphicLetAcceptsSingleTypeUse(t *testing.T) {
	src := `let id (x:int) : int = x in let y = id 1 in y`
	_, err := checkSource(t, src)
	require.NoError(t, err, "unexpected error for monomorphic use")
}

func requireTypeError(t *testing.T, err error) *TypeError {
	t.Helper()
	te, ok := err.(*TypeError)
	require.Truef(t, ok, "got %T, want *TypeError", err)
	return te
}
