// Package priority implements max-priority queues of integer elements keyed
// by integer priorities. Every queue satisfies the same Queue interface, so a
// caller picks a backend once, at construction time, and never has to know
// which one it got.
//
// Four backends are provided:
//   - HeapQueue: a binary max-heap laid out in an array.Array. O(log n)
//     enqueue and dequeue, O(1) peek, O(n) priority modification.
//   - ArrayQueue: unordered pairs in an array.Array, scanned linearly on every
//     peek and dequeue.
//   - ListQueue: unordered pairs in a list.List, scanned linearly, with O(1)
//     unlinking of the located maximum.
//   - OrderedQueue: a B-tree ordered by priority with an element index, giving
//     O(log n) for every operation including priority modification.
//
// Basic usage:
//
//	q, err := priority.New(priority.Heap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	q.Enqueue(1, 5)
//	q.Enqueue(2, 9)
//	q.Enqueue(3, 1)
//
//	top, _ := q.PeekMax() // 2
//
//	// Raise element 3 above everything else
//	if err := q.ModifyPriority(3, 20); err != nil {
//	    log.Fatal(err)
//	}
//
//	for p := range priority.Drain(q) {
//	    fmt.Println(p.Element, p.Priority) // 3 20, 2 9, 1 5
//	}
//
// PeekMax and DequeueMax return ErrEmpty on an empty queue. Which of several
// elements sharing the maximum priority is returned first depends on the
// backend and must not be relied upon.
//
// ModifyPriority behaves differently for an element that is not queued: the
// heap and ordered backends return ErrNotFound, while the two linear-scan
// backends treat the call as a no-op and return nil.
//
// Queues are not safe for concurrent use.
package priority
