package types

import "fmt"

// FieldDecl is one entry in a record's declared field list: an ordered
// (name, type, mutable?) triple, per the type grammar's Record(name)
// resolution rule.
type FieldDecl struct {
	Name    string
	Type    Type
	Mutable bool
}

// RecordDecl is a fully-resolved record declaration: its name plus its
// ordered field list.
type RecordDecl struct {
	Name   string
	Fields []FieldDecl
}

// FieldIndex returns the position and declaration of the named field, or
// ok=false if no such field exists.
func (d *RecordDecl) FieldIndex(name string) (int, FieldDecl, bool) {
	for i, f := range d.Fields {
		if f.Name == name {
			return i, f, true
		}
	}
	return -1, FieldDecl{}, false
}

// Decls is the record declaration table D: a mapping from declared
// record name to its RecordDecl. Declarations accumulate as type_decls
// are processed; by the time the checker or evaluator walks the body
// expression, D is fully populated (declarations must precede use in the
// concrete syntax).
type Decls struct {
	byName map[string]*RecordDecl
	order  []string
}

// NewDecls creates an empty record declaration table.
func NewDecls() *Decls {
	return &Decls{byName: make(map[string]*RecordDecl)}
}

// Declare registers a new record declaration. It returns an error if a
// record of the same name was already declared (a record name is
// declared at most once) or if the declaration repeats a field name.
func (d *Decls) Declare(decl *RecordDecl) error {
	if _, exists := d.byName[decl.Name]; exists {
		return fmt.Errorf("record %q declared more than once", decl.Name)
	}
	seen := make(map[string]bool, len(decl.Fields))
	for _, f := range decl.Fields {
		if seen[f.Name] {
			return fmt.Errorf("record %q: duplicate field %q", decl.Name, f.Name)
		}
		seen[f.Name] = true
	}
	d.byName[decl.Name] = decl
	d.order = append(d.order, decl.Name)
	return nil
}

// Lookup returns the declaration for a record name, or ok=false if it
// was never declared.
func (d *Decls) Lookup(name string) (*RecordDecl, bool) {
	decl, ok := d.byName[name]
	return decl, ok
}

// Names returns declared record names in declaration order.
func (d *Decls) Names() []string {
	return d.order
}
