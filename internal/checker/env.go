package checker

import "github.com/cwbudde/lumen/internal/types"

// Binding is what Γ maps an identifier to: its type, and whether it was
// promoted to a mutable cell (rule 14 — only identifiers targeted by an
// Assign in their binding's body are mutable; everything else is bound
// by value).
type Binding struct {
	Type    types.Type
	Mutable bool
}

// Env is the typing environment Γ: a chain of scopes from identifier to
// Binding, extended (never mutated) by each binding form. This mirrors
// the teacher's nested-scope Environment, specialized to carry a single
// Binding value instead of an arbitrary object.
type Env struct {
	store map[string]Binding
	outer *Env
}

// NewEnv creates a root environment with no outer scope.
func NewEnv() *Env {
	return &Env{store: make(map[string]Binding)}
}

// Extend returns a new scope nested under e; bindings defined in the
// child never affect e.
func (e *Env) Extend() *Env {
	return &Env{store: make(map[string]Binding), outer: e}
}

// Define binds name in this scope only.
func (e *Env) Define(name string, b Binding) {
	e.store[name] = b
}

// Get resolves name through this scope and its outer chain.
func (e *Env) Get(name string) (Binding, bool) {
	if b, ok := e.store[name]; ok {
		return b, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return Binding{}, false
}
