package types

import "testing"

func TestEquals_Primitives(t *testing.T) {
	if !(Int{}).Equals(Int{}) {
		t.Error("Int should equal Int")
	}
	if (Int{}).Equals(Bool{}) {
		t.Error("Int should not equal Bool")
	}
}

func TestEquals_Function(t *testing.T) {
	a := Function{Param: Int{}, Result: Bool{}}
	b := Function{Param: Int{}, Result: Bool{}}
	c := Function{Param: Bool{}, Result: Bool{}}
	if !a.Equals(b) {
		t.Error("identical function types should be equal")
	}
	if a.Equals(c) {
		t.Error("function types with differing params should not be equal")
	}
}

func TestEquals_Array(t *testing.T) {
	a := Array{Elem: Int{}}
	b := Array{Elem: Int{}}
	c := Array{Elem: String{}}
	if !a.Equals(b) {
		t.Error("int array should equal int array")
	}
	if a.Equals(c) {
		t.Error("int array should not equal string array")
	}
}

func TestEquals_RecordByNameOnly(t *testing.T) {
	point := Record{Name: "point"}
	samePoint := Record{Name: "point"}
	other := Record{Name: "vec"}
	if !point.Equals(samePoint) {
		t.Error("records with the same name should be equal")
	}
	if point.Equals(other) {
		t.Error("records with different names should not be equal")
	}
}

func TestComparable(t *testing.T) {
	cases := []struct {
		t    Type
		want bool
	}{
		{Int{}, true},
		{Bool{}, true},
		{String{}, true},
		{Unit{}, false},
		{Array{Elem: Int{}}, false},
		{Record{Name: "r"}, false},
		{Function{Param: Int{}, Result: Int{}}, false},
	}
	for _, c := range cases {
		if got := Comparable(c.t); got != c.want {
			t.Errorf("Comparable(%s) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestDecls_DuplicateName(t *testing.T) {
	d := NewDecls()
	decl := &RecordDecl{Name: "point", Fields: []FieldDecl{{Name: "x", Type: Int{}}}}
	if err := d.Declare(decl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Declare(decl); err == nil {
		t.Error("expected error declaring the same record twice")
	}
}

func TestDecls_DuplicateField(t *testing.T) {
	d := NewDecls()
	decl := &RecordDecl{Name: "point", Fields: []FieldDecl{
		{Name: "x", Type: Int{}},
		{Name: "x", Type: Int{}},
	}}
	if err := d.Declare(decl); err == nil {
		t.Error("expected error for duplicate field name")
	}
}

func TestDecls_FieldIndex(t *testing.T) {
	d := NewDecls()
	decl := &RecordDecl{Name: "point", Fields: []FieldDecl{
		{Name: "x", Type: Int{}, Mutable: true},
		{Name: "y", Type: Int{}, Mutable: true},
	}}
	if err := d.Declare(decl); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := d.Lookup("point")
	idx, field, ok := got.FieldIndex("y")
	if !ok || idx != 1 || field.Name != "y" {
		t.Errorf("got (%d, %+v, %v), want (1, y, true)", idx, field, ok)
	}
	if _, _, ok := got.FieldIndex("z"); ok {
		t.Error("expected lookup of undeclared field to fail")
	}
}
