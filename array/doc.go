// Package array implements a generic resizable array backed by a single
// contiguous buffer that the array owns and grows on demand.
//
// The array keeps a length L and a capacity C with C >= L at all times.
// Elements at positions [0, L) are valid; the rest of the buffer is scratch
// space. When an insertion finds the buffer full, the capacity is doubled
// before the element is written, so existing elements are never lost and
// appends run in amortized O(1).
//
// Key features:
//   - Generic implementation supporting any comparable element type
//   - Checked random access returning ErrOutOfRange for bad indices
//   - Insertion and removal at arbitrary positions with stable ordering
//   - O(1) Clear that keeps the allocated capacity
//   - Independent deep copies through Clone
//
// Basic usage:
//
//	a := array.New[int]()
//	a.Add(1)
//	a.Add(3)
//	if err := a.Insert(1, 2); err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, v := range a.All() {
//	    fmt.Println(i, v) // 0 1, 1 2, 2 3
//	}
//
//	if err := a.RemoveAt(0); err != nil {
//	    log.Fatal(err)
//	}
//
// An Array is not safe for concurrent use. Callers that share one between
// goroutines must synchronize access themselves.
package array
