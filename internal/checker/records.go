package checker

import (
	"strings"

	"github.com/cwbudde/lumen/internal/ast"
	"github.com/cwbudde/lumen/internal/types"
)

// resolveStructRecord finds the first declared record, in declaration
// order, whose field names appear, in order, exactly as written in a
// struct literal. Lumen's
// literal syntax carries no explicit record name (`{x=10; y=20}`), so the
// record is identified structurally against the declaration table D,
// per rule 15's requirement that field names and order match D(name)
// exactly.
func (c *Checker) resolveStructRecord(n *ast.StructExpr) (*types.RecordDecl, error) {
	for _, name := range c.decls.Names() {
		decl, _ := c.decls.Lookup(name)
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
	return nil, typeErr(n.Pos(), "unknown_record", "no record declaration matches fields {%s}", strings.Join(written, ", "))
}

// checkStruct implements rule 15.
func (c *Checker) checkStruct(env *Env, n *ast.StructExpr) (types.Type, error) {
	decl, err := c.resolveStructRecord(n)
	if err != nil {
		return nil, err
	}
	for i, f := range n.Fields {
		valT, err := c.check(env, f.Value)
		if err != nil {
			return nil, err
		}
		declared := decl.Fields[i]
		if !valT.Equals(declared.Type) {
			return nil, typeErr(f.Value.Pos(), "type_mismatch", "field %q has type %s, expected %s", f.Name, valT, declared.Type)
		}
	}
	return types.Record{Name: decl.Name}, nil
}

// checkGetField implements rule 16.
func (c *Checker) checkGetField(env *Env, n *ast.GetFieldExpr) (types.Type, error) {
	recvT, err := c.check(env, n.Recv)
	if err != nil {
		return nil, err
	}
	rec, ok := recvT.(types.Record)
	if !ok {
		return nil, typeErr(n.Recv.Pos(), "type_mismatch", "field access on non-record type %s", recvT)
	}
	decl, ok := c.decls.Lookup(rec.Name)
	if !ok {
		return nil, typeErr(n.Pos(), "unknown_record", "unknown record type %q", rec.Name)
	}
	_, field, ok := decl.FieldIndex(n.Field)
	if !ok {
		return nil, typeErr(n.Pos(), "record_field_mismatch", "record %q has no field %q", rec.Name, n.Field)
	}
	return field.Type, nil
}

// checkSetField implements rule 17.
func (c *Checker) checkSetField(env *Env, n *ast.SetFieldExpr) (types.Type, error) {
	recvT, err := c.check(env, n.Recv)
	if err != nil {
		return nil, err
	}
	rec, ok := recvT.(types.Record)
	if !ok {
		return nil, typeErr(n.Recv.Pos(), "type_mismatch", "field assignment on non-record type %s", recvT)
	}
	decl, ok := c.decls.Lookup(rec.Name)
	if !ok {
		return nil, typeErr(n.Pos(), "unknown_record", "unknown record type %q", rec.Name)
	}
	_, field, ok := decl.FieldIndex(n.Field)
	if !ok {
		return nil, typeErr(n.Pos(), "record_field_mismatch", "record %q has no field %q", rec.Name, n.Field)
	}
	if !field.Mutable {
		return nil, typeErr(n.Pos(), "not_mutable", "field %q of record %q is not mutable", n.Field, rec.Name)
	}
	valT, err := c.check(env, n.Value)
	if err != nil {
		return nil, err
	}
	if !valT.Equals(field.Type) {
		return nil, typeErr(n.Value.Pos(), "type_mismatch", "cannot assign %s to field %q of type %s", valT, n.Field, field.Type)
	}
	return types.Unit{}, nil
}
