package priority

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/btree"
)

const orderedDegree = 16

// entry is a pair stamped with its enqueue sequence so equal priorities keep
// distinct, FIFO-ordered positions in the tree.
type entry struct {
	Pair
	seq uint64
}

// before orders entries by descending priority, then ascending sequence, so
// the tree minimum is the next pair to dequeue.
func before(a, b entry) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.seq < b.seq
}

// OrderedQueue keeps pairs in a B-tree and indexes them by element, so every
// operation, ModifyPriority included, runs in O(log n). Equal priorities are
// dequeued in insertion order.
type OrderedQueue struct {
	tree      *btree.BTreeG[entry]
	byElement map[int][]entry // live entries per element, oldest first
	seq       uint64
}

// NewOrderedQueue creates an empty B-tree backed queue.
func NewOrderedQueue(opts ...Option) *OrderedQueue {
	o := buildOptions(opts)
	return &OrderedQueue{
		tree:      btree.NewG[entry](orderedDegree, before),
		byElement: make(map[int][]entry, o.capacity),
	}
}

// Len returns the number of queued pairs.
func (q *OrderedQueue) Len() int {
	return q.tree.Len()
}

// IsEmpty reports whether the queue holds no pairs.
func (q *OrderedQueue) IsEmpty() bool {
	return q.tree.Len() == 0
}

// Clear removes every pair.
func (q *OrderedQueue) Clear() {
	q.tree.Clear(true)
	clear(q.byElement)
}

// Enqueue inserts the pair behind any queued pairs of equal priority.
func (q *OrderedQueue) Enqueue(element, priority int) {
	e := entry{Pair: Pair{Element: element, Priority: priority}, seq: q.seq}
	q.seq++
	q.tree.ReplaceOrInsert(e)
	q.byElement[element] = append(q.byElement[element], e)
}

// DequeueMax removes the maximum pair and returns its element.
func (q *OrderedQueue) DequeueMax() (int, error) {
	p, err := q.DequeueMaxPair()
	return p.Element, err
}

// PeekMax returns the element of the maximum pair without removing it.
func (q *OrderedQueue) PeekMax() (int, error) {
	p, err := q.PeekMaxPair()
	return p.Element, err
}

// PeekMaxPair returns the oldest pair of the highest priority.
func (q *OrderedQueue) PeekMaxPair() (Pair, error) {
	e, ok := q.tree.Min()
	if !ok {
		return Pair{}, emptyError("peek")
	}
	return e.Pair, nil
}

// DequeueMaxPair removes the pair PeekMaxPair would return.
func (q *OrderedQueue) DequeueMaxPair() (Pair, error) {
	e, ok := q.tree.DeleteMin()
	if !ok {
		return Pair{}, emptyError("dequeue")
	}
	if err := q.unindex(e); err != nil {
		return Pair{}, err
	}
	return e.Pair, nil
}

// ModifyPriority re-keys the oldest queued pair holding element.
// ErrNotFound is returned when the element is not queued.
func (q *OrderedQueue) ModifyPriority(element, priority int) error {
	entries := q.byElement[element]
	if len(entries) == 0 {
		return errors.Wrapf(ErrNotFound, "element %d", element)
	}

	old := entries[0]
	if _, ok := q.tree.Delete(old); !ok {
		return errors.AssertionFailedf("element %d indexed but missing from tree", element)
	}
	updated := old
	updated.Priority = priority
	q.tree.ReplaceOrInsert(updated)
	entries[0] = updated
	return nil
}

func (q *OrderedQueue) unindex(e entry) error {
	entries := q.byElement[e.Element]
	i := slices.IndexFunc(entries, func(x entry) bool { return x.seq == e.seq })
	if i < 0 {
		return errors.AssertionFailedf("element %d dequeued but not indexed", e.Element)
	}
	entries = slices.Delete(entries, i, i+1)
	if len(entries) == 0 {
		delete(q.byElement, e.Element)
		return nil
	}
	q.byElement[e.Element] = entries
	return nil
}
