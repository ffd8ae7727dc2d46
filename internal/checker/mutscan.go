package checker

import "github.com/cwbudde/lumen/internal/ast"

// assignsTo performs the syntactic scan described in the design notes:
// an identifier is promoted to a mutable cell only if its binding's body
// contains at least one `Assign(x, ...)` naming it directly (field and
// index mutation go through SetF/SetA and never promote the receiver
// identifier itself). The scan does not track shadowing — it is a
// textual search over the body, matching the specified "syntactic scan"
// rule exactly.
func assignsTo(body ast.Expression, name string) bool {
	found := false
	walk(body, func(e ast.Expression) {
		if found {
			return
		}
		if a, ok := e.(*ast.AssignExpr); ok && a.Name.Name == name {
			found = true
		}
	})
	return found
}

// walk visits every expression node reachable from e, including e
// itself, calling visit on each.
func walk(e ast.Expression, visit func(ast.Expression)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *ast.BinaryExpr:
		walk(n.Left, visit)
		walk(n.Right, visit)
	case *ast.UnaryExpr:
		walk(n.Operand, visit)
	case *ast.IfExpr:
		walk(n.Cond, visit)
		walk(n.Then, visit)
		walk(n.Else, visit)
	case *ast.WhileExpr:
		walk(n.Cond, visit)
		walk(n.Body, visit)
	case *ast.SeqExpr:
		walk(n.First, visit)
		walk(n.Next, visit)
	case *ast.AssignExpr:
		walk(n.Value, visit)
	case *ast.LetExpr:
		walk(n.Value, visit)
		walk(n.Body, visit)
	case *ast.FunExpr:
		walk(n.Body, visit)
	case *ast.FixExpr:
		walk(n.Fun, visit)
	case *ast.AppExpr:
		walk(n.Fun, visit)
		walk(n.Arg, visit)
	case *ast.StructExpr:
		for _, f := range n.Fields {
			walk(f.Value, visit)
		}
	case *ast.GetFieldExpr:
		walk(n.Recv, visit)
	case *ast.SetFieldExpr:
		walk(n.Recv, visit)
		walk(n.Value, visit)
	case *ast.ArrayExpr:
		for _, el := range n.Elements {
			walk(el, visit)
		}
	case *ast.GetIndexExpr:
		walk(n.Recv, visit)
		walk(n.Index, visit)
	case *ast.SetIndexExpr:
		walk(n.Recv, visit)
		walk(n.Index, visit)
		walk(n.Value, visit)
	}
}
