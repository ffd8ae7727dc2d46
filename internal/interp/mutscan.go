package interp

import "github.com/cwbudde/lumen/internal/ast"

// assignsTo performs the same syntactic scan the checker uses to decide
// mutable-cell promotion: a let-bound identifier is backed by a heap
// cell only if its body contains an Assign naming it directly.
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
// itself.
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
