package checker

import (
	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// resolveType turns the syntactic type annotation written by the
// programmer into the internal type grammar, looking up record names
// against the declaration table D.
func resolveType(d *types.Decls, te ast.TypeExpr) (types.Type, error) {
	switch t := te.(type) {
	case *ast.NamedType:
		switch t.Name {
		case "int":
			return types.Int{}, nil
		case "bool":
			return types.Bool{}, nil
		case "unit":
			return types.Unit{}, nil
		case "string":
			return types.String{}, nil
		default:
			if _, ok := d.Lookup(t.Name); !ok {
				return nil, typeErr(t.Pos(), "unknown_record", "unknown record type %q", t.Name)
			}
			return types.Record{Name: t.Name}, nil
		}
	case *ast.ArrayType:
		elem, err := resolveType(d, t.Elem)
		if err != nil {
			return nil, err
		}
		return types.Array{Elem: elem}, nil
	case *ast.FunctionType:
		param, err := resolveType(d, t.Param)
		if err != nil {
			return nil, err
		}
		result, err := resolveType(d, t.Result)
		if err != nil {
			return nil, err
		}
		return types.Function{Param: param, Result: result}, nil
	default:
		return nil, typeErr(te.Pos(), "unknown_record", "unrecognized type annotation")
	}
}
