package priority

import (
	"github.com/cockroachdb/errors"
	"github.com/davidvella/dsa/array"
)

// HeapQueue is a binary max-heap stored in an array. For every index i > 0
// the pair at (i-1)/2 has a priority at least as high as the pair at i.
type HeapQueue struct {
	items *array.Array[Pair]
}

// NewHeapQueue creates an empty heap-backed queue.
func NewHeapQueue(opts ...Option) *HeapQueue {
	o := buildOptions(opts)
	return &HeapQueue{items: array.WithCapacity[Pair](o.capacity)}
}

// Len returns the number of queued pairs.
func (q *HeapQueue) Len() int {
	return q.items.Len()
}

// IsEmpty reports whether the queue holds no pairs.
func (q *HeapQueue) IsEmpty() bool {
	return q.items.Len() == 0
}

// Clear removes every pair.
func (q *HeapQueue) Clear() {
	q.items.Clear()
}

// Enqueue appends the pair and sifts it up in O(log n).
func (q *HeapQueue) Enqueue(element, priority int) {
	q.items.Add(Pair{Element: element, Priority: priority})
	q.up(q.items.Len() - 1)
}

// DequeueMax removes the maximum pair and returns its element.
func (q *HeapQueue) DequeueMax() (int, error) {
	p, err := q.DequeueMaxPair()
	return p.Element, err
}

// PeekMax returns the element of the maximum pair without removing it.
func (q *HeapQueue) PeekMax() (int, error) {
	p, err := q.PeekMaxPair()
	return p.Element, err
}

// PeekMaxPair returns the root in O(1).
func (q *HeapQueue) PeekMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("peek")
	}
	return q.at(0), nil
}

// DequeueMaxPair removes the root, moves the last pair into its place and
// sifts that pair down.
func (q *HeapQueue) DequeueMaxPair() (Pair, error) {
	if q.IsEmpty() {
		return Pair{}, emptyError("dequeue")
	}
	top := q.at(0)
	q.set(0, q.at(q.items.Len()-1))
	if err := q.items.RemoveLast(); err != nil {
		return Pair{}, errors.NewAssertionErrorWithWrappedErrf(err, "shrinking heap")
	}
	if !q.IsEmpty() {
		q.down(0)
	}
	return top, nil
}

// ModifyPriority finds the first pair holding element by linear scan, then
// sifts it up or down depending on whether its priority grew or shrank.
// ErrNotFound is returned when the element is not queued.
func (q *HeapQueue) ModifyPriority(element, priority int) error {
	index := -1
	for i, p := range q.items.All() {
		if p.Element == element {
			index = i
			break
		}
	}
	if index < 0 {
		return errors.Wrapf(ErrNotFound, "element %d", element)
	}

	old := q.at(index).Priority
	q.set(index, Pair{Element: element, Priority: priority})
	switch {
	case priority > old:
		q.up(index)
	case priority < old:
		q.down(index)
	}
	return nil
}

// up moves the pair at index i towards the root while it outranks its parent.
func (q *HeapQueue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.at(i).Priority <= q.at(parent).Priority {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the pair at index i towards the leaves while a child outranks it.
func (q *HeapQueue) down(i int) {
	n := q.items.Len()
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && q.at(left).Priority > q.at(largest).Priority {
			largest = left
		}
		if right < n && q.at(right).Priority > q.at(largest).Priority {
			largest = right
		}

		if largest == i {
			break
		}

		q.swap(i, largest)
		i = largest
	}
}

// at, set and swap only see indices derived from the heap shape; a failure
// means the heap itself is corrupt.
func (q *HeapQueue) at(i int) Pair {
	p, err := q.items.Get(i)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "heap read"))
	}
	return p
}

func (q *HeapQueue) set(i int, p Pair) {
	if err := q.items.Set(i, p); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "heap write"))
	}
}

func (q *HeapQueue) swap(i, j int) {
	if err := q.items.Swap(i, j); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "heap swap"))
	}
}
