package priority

import (
	"github.com/cockroachdb/errors"
	"github.com/davidvella/dsa/list"
)

// ListQueue keeps pairs unordered in a linked list and scans for the maximum.
// Once located, the maximum is unlinked in O(1).
type ListQueue struct {
	items *list.List[Pair]
}

// NewListQueue creates an empty linear-scan queue over a linked list.
func NewListQueue(_ ...Option) *ListQueue {
	return &ListQueue{items: list.New[Pair]()}
}

// Len returns the number of queued pairs.
func (q *ListQueue) Len() int {
	return q.items.Len()
}

// IsEmpty reports whether the queue holds no pairs.
func (q *ListQueue) IsEmpty() bool {
	return q.items.IsEmpty()
}

// Clear removes every pair.
func (q *ListQueue) Clear() {
	q.items.Clear()
}

// Enqueue appends the pair at the tail in O(1).
func (q *ListQueue) Enqueue(element, priority int) {
	q.items.AddLast(Pair{Element: element, Priority: priority})
}

// DequeueMax removes the maximum pair and returns its element.
func (q *ListQueue) DequeueMax() (int, error) {
	p, err := q.DequeueMaxPair()
	return p.Element, err
}

// PeekMax returns the element of the maximum pair without removing it.
func (q *ListQueue) PeekMax() (int, error) {
	p, err := q.PeekMaxPair()
	return p.Element, err
}

// PeekMaxPair scans from the head and returns the first pair whose
// priority is the maximum.
func (q *ListQueue) PeekMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("peek")
	}
	return q.max().Value(), nil
}

// DequeueMaxPair locates the maximum like PeekMaxPair and unlinks its node
// in O(1).
func (q *ListQueue) DequeueMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("dequeue")
	}
	node := q.max()
	p := node.Value()
	if err := q.items.Remove(node); err != nil {
		return Pair{}, errors.NewAssertionErrorWithWrappedErrf(err, "unlinking maximum")
	}
	return p, nil
}

// ModifyPriority updates the first pair holding element. An element that is
// not queued is ignored and nil is returned.
func (q *ListQueue) ModifyPriority(element, priority int) error {
	node := q.items.First()
	for i := 0; i < q.items.Len(); i++ {
		if node.Value().Element == element {
			node.SetValue(Pair{Element: element, Priority: priority})
			return nil
		}
		node = node.Next()
	}
	return nil
}

// max returns the first node, from the head, holding the maximum priority.
// The queue must not be empty.
func (q *ListQueue) max() list.Node[Pair] {
	node := q.items.First()
	best := node
	for i := 1; i < q.items.Len(); i++ {
		node = node.Next()
		if node.Value().Priority > best.Value().Priority {
			best = node
		}
	}
	return best
}
