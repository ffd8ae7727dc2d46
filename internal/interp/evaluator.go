package interp

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// Evaluator holds the pieces the judgement ρ; H ⊢ e ⇓ v threads through
// every rule: the record declaration table D (needed to resolve an
// unnamed struct literal back to its declared record, same as the
// checker) and the heap H itself.
type Evaluator struct {
	decls *types.Decls
	heap  *Heap

	// Trace, if set, receives one line per Fix allocation, App entry,
	// and Assign mutation. It is nil by default; cmd/lumen wires it to
	// stderr when --trace is given.
	Trace func(format string, args ...any)
}

// New creates an Evaluator over decls, the record table a prior
// checker.Check run accumulated, with a fresh empty heap.
func New(decls *types.Decls) *Evaluator {
	return &Evaluator{decls: decls, heap: NewHeap()}
}

func (ev *Evaluator) trace(format string, args ...any) {
	if ev.Trace != nil {
		ev.Trace(format, args...)
	}
}

// Heap exposes the evaluator's heap, so callers can render the result
// value after Eval returns.
func (ev *Evaluator) Heap() *Heap {
	return ev.heap
}

// Eval runs a whole program's body expression under an empty ρ.
func (ev *Evaluator) Eval(prog *ast.Program) (Value, error) {
	return ev.eval(NewEnvironment(), prog.Body)
}

func (ev *Evaluator) eval(env *Environment, e ast.Expression) (Value, error) {
	switch n := e.(type) {

	case *ast.IntegerLiteral:
		return VInt(n.Value), nil
	case *ast.BooleanLiteral:
		return VBool(n.Value), nil
	case *ast.StringLiteral:
		return VString(n.Value), nil
	case *ast.UnitLiteral:
		return VUnit{}, nil

	case *ast.Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unbound variable %q", n.Name)
		}
		if p, ok := v.(VPtr); ok {
			if cell, ok := ev.heap.Get(p).(*Cell); ok {
				return cell.Value, nil
			}
		}
		return v, nil

	case *ast.BinaryExpr:
		return ev.evalBinary(env, n)

	case *ast.UnaryExpr:
		return ev.evalUnary(env, n)

	case *ast.IfExpr:
		cond, err := ev.eval(env, n.Cond)
		if err != nil {
			return nil, err
		}
		if bool(cond.(VBool)) {
			return ev.eval(env, n.Then)
		}
		return ev.eval(env, n.Else)

	case *ast.LetExpr:
		return ev.evalLet(env, n)

	case *ast.FunExpr:
		return ev.buildClosure(env, n), nil

	case *ast.FixExpr:
		return ev.evalFix(env, n)

	case *ast.AppExpr:
		return ev.evalApp(env, n)

	case *ast.SeqExpr:
		if _, err := ev.eval(env, n.First); err != nil {
			return nil, err
		}
		return ev.eval(env, n.Next)

	case *ast.WhileExpr:
		for {
			cond, err := ev.eval(env, n.Cond)
			if err != nil {
				return nil, err
			}
			if !bool(cond.(VBool)) {
				break
			}
			if _, err := ev.eval(env, n.Body); err != nil {
				return nil, err
			}
		}
		return VUnit{}, nil

	case *ast.AssignExpr:
		return ev.evalAssign(env, n)

	case *ast.StructExpr:
		return ev.evalStruct(env, n)

	case *ast.GetFieldExpr:
		return ev.evalGetField(env, n)

	case *ast.SetFieldExpr:
		return ev.evalSetField(env, n)

	case *ast.ArrayExpr:
		return ev.evalArray(env, n)

	case *ast.GetIndexExpr:
		return ev.evalGetIndex(env, n)

	case *ast.SetIndexExpr:
		return ev.evalSetIndex(env, n)
	}

	return nil, runtimeErr(e.Pos(), "runtime_type_mismatch", "unsupported expression form %T", e)
}

// buildClosure constructs a Closure from a Fun node's full parameter
// list, peeling off the first parameter and keeping the rest for the
// curry chain Apply walks one argument at a time.
func (ev *Evaluator) buildClosure(env *Environment, n *ast.FunExpr) *Closure {
	return &Closure{
		Param:           n.Params[0],
		RemainingParams: n.Params[1:],
		Body:            n.Body,
		RetType:         n.RetType,
		Env:             env,
	}
}

// resolveClosure follows VPtr indirection (the Fix recursion device)
// down to the underlying Closure, if any.
func resolveClosure(heap *Heap, v Value) (*Closure, bool) {
	for {
		switch x := v.(type) {
		case *Closure:
			return x, true
		case VPtr:
			cell, ok := heap.Get(x).(*Cell)
			if !ok {
				return nil, false
			}
			v = cell.Value
		default:
			return nil, false
		}
	}
}

func (ev *Evaluator) evalLet(env *Environment, n *ast.LetExpr) (Value, error) {
	v, err := ev.eval(env, n.Value)
	if err != nil {
		return nil, err
	}
	child := env.Extend()
	if assignsTo(n.Body, n.Name.Name) {
		ptr := ev.heap.Alloc(&Cell{Value: v})
		child.Define(n.Name.Name, ptr)
	} else {
		child.Define(n.Name.Name, v)
	}
	return ev.eval(child, n.Body)
}

// evalFix implements `Fix(f, τ, Fun(...))` via heap-pointer
// indirection: a cell is allocated first, f is bound to a pointer at
// that cell while the closure's own body is built (so recursive calls
// resolve back through the same pointer), and only then is the cell
// filled in, closing the knot.
func (ev *Evaluator) evalFix(env *Environment, n *ast.FixExpr) (Value, error) {
	ptr := ev.heap.Alloc(&Cell{})
	ev.trace("fix: allocated cell %d for %q", ptr.N, n.Name.Name)
	child := env.Extend()
	child.Define(n.Name.Name, ptr)
	closure := ev.buildClosure(child, n.Fun)
	ev.heap.Get(ptr).(*Cell).Value = closure
	return ptr, nil
}

func (ev *Evaluator) evalApp(env *Environment, n *ast.AppExpr) (Value, error) {
	fnVal, err := ev.eval(env, n.Fun)
	if err != nil {
		return nil, err
	}
	closure, ok := resolveClosure(ev.heap, fnVal)
	if !ok {
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "attempt to apply a non-function value")
	}
	argVal, err := ev.eval(env, n.Arg)
	if err != nil {
		return nil, err
	}
	ev.trace("app: binding %q", closure.Param.Name.Name)
	callEnv := closure.Env.Extend()
	callEnv.Define(closure.Param.Name.Name, argVal)
	if len(closure.RemainingParams) == 0 {
		return ev.eval(callEnv, closure.Body)
	}
	return &Closure{
		Param:           closure.RemainingParams[0],
		RemainingParams: closure.RemainingParams[1:],
		Body:            closure.Body,
		RetType:         closure.RetType,
		Env:             callEnv,
	}, nil
}

func (ev *Evaluator) evalAssign(env *Environment, n *ast.AssignExpr) (Value, error) {
	v, ok := env.Get(n.Name.Name)
	if !ok {
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "unbound variable %q", n.Name.Name)
	}
	ptr, ok := v.(VPtr)
	if !ok {
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "%q is not a mutable binding", n.Name.Name)
	}
	cell, ok := ev.heap.Get(ptr).(*Cell)
	if !ok {
		return nil, runtimeErr(n.Pos(), "runtime_type_mismatch", "%q is not a mutable binding", n.Name.Name)
	}
	newVal, err := ev.eval(env, n.Value)
	if err != nil {
		return nil, err
	}
	ev.trace("assign: %q <- cell %d", n.Name.Name, ptr.N)
	cell.Value = newVal
	return VUnit{}, nil
}

func (ev *Evaluator) evalStruct(env *Environment, n *ast.StructExpr) (Value, error) {
	decl, err := resolveStructRecord(ev.decls, n)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]Value, len(n.Fields))
	for _, f := range n.Fields {
		v, err := ev.eval(env, f.Value)
		if err != nil {
			return nil, err
		}
		fields[f.Name] = v
	}
	return ev.heap.Alloc(&RecordInstance{Decl: decl, Fields: fields}), nil
}

func (ev *Evaluator) recordAt(pos ast.Expression, recv Value) (*RecordInstance, error) {
	ptr, ok := recv.(VPtr)
	if !ok {
		return nil, runtimeErr(pos.Pos(), "runtime_type_mismatch", "field access on non-record value")
	}
	rec, ok := ev.heap.Get(ptr).(*RecordInstance)
	if !ok {
		return nil, runtimeErr(pos.Pos(), "runtime_type_mismatch", "field access on non-record value")
	}
	return rec, nil
}

func (ev *Evaluator) evalGetField(env *Environment, n *ast.GetFieldExpr) (Value, error) {
	recv, err := ev.eval(env, n.Recv)
	if err != nil {
		return nil, err
	}
	rec, err := ev.recordAt(n.Recv, recv)
	if err != nil {
		return nil, err
	}
	return rec.Fields[n.Field], nil
}

func (ev *Evaluator) evalSetField(env *Environment, n *ast.SetFieldExpr) (Value, error) {
	recv, err := ev.eval(env, n.Recv)
	if err != nil {
		return nil, err
	}
	rec, err := ev.recordAt(n.Recv, recv)
	if err != nil {
		return nil, err
	}
	val, err := ev.eval(env, n.Value)
	if err != nil {
		return nil, err
	}
	rec.Fields[n.Field] = val
	return VUnit{}, nil
}

func (ev *Evaluator) evalArray(env *Environment, n *ast.ArrayExpr) (Value, error) {
	elems := make([]Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := ev.eval(env, el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return ev.heap.Alloc(&ArrayInstance{Elements: elems}), nil
}

func (ev *Evaluator) arrayAt(pos ast.Expression, recv Value) (*ArrayInstance, error) {
	ptr, ok := recv.(VPtr)
	if !ok {
		return nil, runtimeErr(pos.Pos(), "runtime_type_mismatch", "index access on non-array value")
	}
	arr, ok := ev.heap.Get(ptr).(*ArrayInstance)
	if !ok {
		return nil, runtimeErr(pos.Pos(), "runtime_type_mismatch", "index access on non-array value")
	}
	return arr, nil
}

func (ev *Evaluator) evalGetIndex(env *Environment, n *ast.GetIndexExpr) (Value, error) {
	recv, err := ev.eval(env, n.Recv)
	if err != nil {
		return nil, err
	}
	arr, err := ev.arrayAt(n.Recv, recv)
	if err != nil {
		return nil, err
	}
	idxVal, err := ev.eval(env, n.Index)
	if err != nil {
		return nil, err
	}
	idx := int64(idxVal.(VInt))
	if idx < 0 || idx >= int64(len(arr.Elements)) {
		return nil, runtimeErr(n.Pos(), "index_out_of_bounds", "index %d out of bounds for array of length %d", idx, len(arr.Elements))
	}
	return arr.Elements[idx], nil
}

func (ev *Evaluator) evalSetIndex(env *Environment, n *ast.SetIndexExpr) (Value, error) {
	recv, err := ev.eval(env, n.Recv)
	if err != nil {
		return nil, err
	}
	arr, err := ev.arrayAt(n.Recv, recv)
	if err != nil {
		return nil, err
	}
	idxVal, err := ev.eval(env, n.Index)
	if err != nil {
		return nil, err
	}
	idx := int64(idxVal.(VInt))
	if idx < 0 || idx >= int64(len(arr.Elements)) {
		return nil, runtimeErr(n.Pos(), "index_out_of_bounds", "index %d out of bounds for array of length %d", idx, len(arr.Elements))
	}
	val, err := ev.eval(env, n.Value)
	if err != nil {
		return nil, err
	}
	arr.Elements[idx] = val
	return VUnit{}, nil
}
