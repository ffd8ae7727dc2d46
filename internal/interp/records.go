package interp

import (
	"strings"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// resolveStructRecord re-derives, at evaluation time, the same record
// identity the checker inferred structurally for a literal with no
// explicit name token. A program that reached evaluation already passed
// the checker, so this always succeeds against a well-typed program;
// the error path only matters for driving the evaluator directly
// without a prior check.
func resolveStructRecord(decls *types.Decls, n *ast.StructExpr) (*types.RecordDecl, error) {
	for _, name := range decls.Names() {
		decl, _ := decls.Lookup(name)
		if len(decl.Fields) != len(n.Fields) {
			continue
		}
		match := true
		for i, f := range n.Fields {
			if decl.Fields[i].Name != f.Name {
				match = false
				break
			}
		}
		if match {
			return decl, nil
		}
	}
	written := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		written[i] = f.Name
	}
	return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "no record declaration matches fields {%s}", strings.Join(written, ", "))
}
