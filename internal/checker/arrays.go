package checker

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// checkArray implements rule 18: an empty literal has type `unit array`;
// otherwise every element must share one type.
func (c *Checker) checkArray(env *Env, n *ast.ArrayExpr) (types.Type, error) {
	if len(n.Elements) == 0 {
		return types.Array{Elem: types.Unit{}}, nil
	}
	elemT, err := c.check(env, n.Elements[0])
	if err != nil {
		return nil, err
	}
	for _, el := range n.Elements[1:] {
		t, err := c.check(env, el)
		if err != nil {
			return nil, err
		}
		if !t.Equals(elemT) {
			return nil, typeErr(el.Pos(), "type_mismatch", "array element has type %s, expected %s", t, elemT)
		}
	}
	return types.Array{Elem: elemT}, nil
}

// checkGetIndex implements rule 19.
func (c *Checker) checkGetIndex(env *Env, n *ast.GetIndexExpr) (types.Type, error) {
	recvT, err := c.check(env, n.Recv)
	if err != nil {
		return nil, err
	}
	arr, ok := recvT.(types.Array)
	if !ok {
		return nil, typeErr(n.Recv.Pos(), "type_mismatch", "index access on non-array type %s", recvT)
	}
	idxT, err := c.check(env, n.Index)
	if err != nil {
		return nil, err
	}
	if _, ok := idxT.(types.Int); !ok {
		return nil, typeErr(n.Index.Pos(), "type_mismatch", "array index must be int, got %s", idxT)
	}
	return arr.Elem, nil
}

// checkSetIndex implements rule 20.
func (c *Checker) checkSetIndex(env *Env, n *ast.SetIndexExpr) (types.Type, error) {
	recvT, err := c.check(env, n.Recv)
	if err != nil {
		return nil, err
	}
	arr, ok := recvT.(types.Array)
	if !ok {
		return nil, typeErr(n.Recv.Pos(), "type_mismatch", "index assignment on non-array type %s", recvT)
	}
	idxT, err := c.check(env, n.Index)
	if err != nil {
		return nil, err
	}
	if _, ok := idxT.(types.Int); !ok {
		return nil, typeErr(n.Index.Pos(), "type_mismatch", "array index must be int, got %s", idxT)
	}
	valT, err := c.check(env, n.Value)
	if err != nil {
		return nil, err
	}
	if !valT.Equals(arr.Elem) {
		return nil, typeErr(n.Value.Pos(), "type_mismatch", "cannot assign %s to array of %s", valT, arr.Elem)
	}
	return types.Unit{}, nil
}
