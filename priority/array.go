package priority

import (
	"github.com/cockroachdb/errors"
	"github.com/davidvella/dsa/array"
)

// ArrayQueue keeps pairs unordered in an array and scans for the maximum.
type ArrayQueue struct {
	items *array.Array[Pair]
}

// NewArrayQueue creates an empty linear-scan queue over an array.
func NewArrayQueue(opts ...Option) *ArrayQueue {
	o := buildOptions(opts)
	return &ArrayQueue{items: array.WithCapacity[Pair](o.capacity)}
}

// Len returns the number of queued pairs.
func (q *ArrayQueue) Len() int {
	return q.items.Len()
}

// IsEmpty reports whether the queue holds no pairs.
func (q *ArrayQueue) IsEmpty() bool {
	return q.items.Len() == 0
}

// Clear removes every pair.
func (q *ArrayQueue) Clear() {
	q.items.Clear()
}

// Enqueue appends the pair in amortized O(1).
func (q *ArrayQueue) Enqueue(element, priority int) {
	q.items.Add(Pair{Element: element, Priority: priority})
}

// DequeueMax removes the maximum pair and returns its element.
func (q *ArrayQueue) DequeueMax() (int, error) {
	p, err := q.DequeueMaxPair()
	return p.Element, err
}

// PeekMax returns the element of the maximum pair without removing it.
func (q *ArrayQueue) PeekMax() (int, error) {
	p, err := q.PeekMaxPair()
	return p.Element, err
}

// PeekMaxPair returns the first pair, scanning from the front, whose
// priority is the maximum.
func (q *ArrayQueue) PeekMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("peek")
	}
	_, p := q.max()
	return p, nil
}

// DequeueMaxPair removes the pair PeekMaxPair would return. Later pairs shift
// left, so this is O(n) even after the scan.
func (q *ArrayQueue) DequeueMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("dequeue")
	}
	i, p := q.max()
	if err := q.items.RemoveAt(i); err != nil {
		return Pair{}, errors.NewAssertionErrorWithWrappedErrf(err, "removing maximum at %d", i)
	}
	return p, nil
}

// ModifyPriority updates the first pair holding element. An element that is
// not queued is ignored and nil is returned.
func (q *ArrayQueue) ModifyPriority(element, priority int) error {
	for i, p := range q.items.All() {
		if p.Element != element {
			continue
		}
		if err := q.items.Set(i, Pair{Element: element, Priority: priority}); err != nil {
			return errors.NewAssertionErrorWithWrappedErrf(err, "updating element %d", element)
		}
		return nil
	}
	return nil
}

// max returns the index and value of the first maximum. The queue must not
// be empty.
func (q *ArrayQueue) max() (int, Pair) {
	index, best := -1, Pair{}
	for i, p := range q.items.All() {
		if index < 0 || p.Priority > best.Priority {
			index, best = i, p
		}
	}
	return index, best
}
