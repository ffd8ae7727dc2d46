package checker

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/lexer"
)

// TypeError reports a static type error, as enumerated in the language's
// error handling design: unbound_variable, type_mismatch, not_a_function,
// not_mutable, arity_mismatch, record_field_mismatch, unknown_record.
type TypeError struct {
	Kind    string
	Message string
	Pos     lexer.Position
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func typeErr(pos lexer.Position, kind, format string, args ...any) error {
	return &TypeError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}
