package interp

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/lexer"
)

// RuntimeError reports one of the three runtime failure modes named by
// the language's error handling design: div_by_zero,
// index_out_of_bounds, and runtime_type_mismatch (the last is
// unreachable in well-typed programs; it is present defensively should
// the evaluator ever be driven without a prior successful type check).
type RuntimeError struct {
	Kind    string
	Message string
	Pos     lexer.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func runtimeErr(pos lexer.Position, kind, format string, args ...any) error {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}
