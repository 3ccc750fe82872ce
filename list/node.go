package list

import "github.com/cockroachdb/errors"

// Node is a handle to a node of a List. The zero Node refers to no node.
// Handles are small values and may be copied freely; all copies become
// invalid once the node is removed or its list is cleared.
type Node[T comparable] struct {
	list  *List[T]
	index int
	gen   uint64
}

// Valid reports whether the handle still refers to a node in its list.
func (n Node[T]) Valid() bool {
	return n.list != nil && n.list.owns(n)
}

// List returns the list the node belongs to, or nil for the zero Node.
func (n Node[T]) List() *List[T] {
	return n.list
}

// Value returns the value held by the node.
func (n Node[T]) Value() T {
	return n.slot().value
}

// SetValue replaces the value held by the node.
func (n Node[T]) SetValue(value T) {
	n.slot().value = value
}

// Next returns the following node. The tail's next node is the head.
func (n Node[T]) Next() Node[T] {
	return n.list.handle(n.slot().next)
}

// Previous returns the preceding node. The head's previous node is the tail.
func (n Node[T]) Previous() Node[T] {
	return n.list.handle(n.slot().prev)
}

func (n Node[T]) slot() *slot[T] {
	if !n.Valid() {
		panic(errors.Wrap(ErrForeignNode, "use of invalid node handle"))
	}
	return &n.list.slots[n.index]
}
