package interp

import "github.com/cwbudde/lumen/internal/types"

// HeapObject is implemented by everything a VPtr can address:
// a single mutable Cell, a RecordInstance, or an ArrayInstance.
type HeapObject interface {
	isHeapObject()
}

// Cell is a single mutable slot. It backs both the Fix recursion device
// (the slot holds the closure once it is built, closing the knot) and
// the mutable-cell promotion of a plain let-bound identifier that its
// body assigns to directly.
type Cell struct {
	Value Value
}

func (*Cell) isHeapObject() {}

// RecordInstance is a mutable record value: a field-keyed map reached
// only through a VPtr. Decl is kept alongside the fields so rendering
// can walk them in declaration order.
type RecordInstance struct {
	Decl   *types.RecordDecl
	Fields map[string]Value
}

func (*RecordInstance) isHeapObject() {}

// ArrayInstance is a mutable, fixed-length array value reached only
// through a VPtr.
type ArrayInstance struct {
	Elements []Value
}

func (*ArrayInstance) isHeapObject() {}

// Heap is Lumen's append-only store: nothing is ever freed or
// compacted, and pointers are stable integer indices for the lifetime
// of the run.
type Heap struct {
	objects []HeapObject
}

// NewHeap returns an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc appends o and returns the VPtr addressing it.
func (h *Heap) Alloc(o HeapObject) VPtr {
	h.objects = append(h.objects, o)
	return VPtr{N: len(h.objects) - 1}
}

// Get dereferences a pointer.
func (h *Heap) Get(p VPtr) HeapObject {
	return h.objects[p.N]
}
