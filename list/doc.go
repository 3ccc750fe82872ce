// Package list implements a generic circular doubly linked list.
//
// Nodes live in an arena owned by the list and are linked by slot indices
// rather than pointers. The first node is the head; the head's previous node
// is the tail and the tail's next node is the head, so both ends are reachable
// in O(1). An empty list has no head, and a single-node list links the node
// to itself in both directions.
//
// Callers refer to nodes through Node handles. A handle stays valid while its
// node belongs to the list: inserting or removing other nodes never moves it.
// Each arena slot carries a generation that is bumped when its node is
// removed, so a handle to a removed node is detected instead of silently
// aliasing whichever node reuses the slot.
//
// Key features:
//   - O(1) insertion and removal at either end and next to a known node
//   - Ownership checks on every handle passed back to the list
//   - Forward and backward iteration via iter.Seq
//   - Conversion to array.Array preserving order
//
// Basic usage:
//
//	l := list.New[int]()
//	l.AddLast(1)
//	three := l.AddLast(3)
//	if _, err := l.AddBefore(three, 2); err != nil {
//	    log.Fatal(err)
//	}
//
//	for v := range l.All() {
//	    fmt.Println(v) // 1, 2, 3
//	}
//
// Reading through a handle whose node has been removed, or through the zero
// Node, violates a precondition and panics. Mutating methods that accept a
// handle report such handles with ErrForeignNode instead.
//
// A List is not safe for concurrent use.
package list
