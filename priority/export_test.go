package priority

// Pairs exposes the heap layout so tests can check the heap property.
func (q *HeapQueue) Pairs() []Pair {
	return q.items.Slice()
}
