package priority_test

import (
	"fmt"

	"github.com/davidvella/dsa/priority"
)

// ExampleHeapQueue demonstrates peeking, dequeuing and re-keying.
func ExampleHeapQueue() {
	const a, b, c = 1, 2, 3

	q := priority.NewHeapQueue()
	q.Enqueue(a, 5)
	q.Enqueue(b, 9)
	q.Enqueue(c, 1)

	top, _ := q.PeekMax()
	fmt.Println("peek:", top)

	top, _ = q.DequeueMax()
	fmt.Println("dequeue:", top)

	// Raise c above a
	if err := q.ModifyPriority(c, 20); err != nil {
		fmt.Println(err)
		return
	}
	top, _ = q.PeekMax()
	fmt.Println("peek:", top)

	// Output:
	// peek: 2
	// dequeue: 2
	// peek: 3
}

// ExampleNew demonstrates choosing a backend by name.
func ExampleNew() {
	kind, err := priority.ParseKind("list")
	if err != nil {
		fmt.Println(err)
		return
	}

	q, err := priority.New(kind)
	if err != nil {
		fmt.Println(err)
		return
	}

	q.Enqueue(100, 2)
	q.Enqueue(200, 8)
	q.Enqueue(300, 5)

	for p := range priority.Drain(q) {
		fmt.Printf("%d: %d\n", p.Element, p.Priority)
	}

	// Output:
	// 200: 8
	// 300: 5
	// 100: 2
}

// ExampleQueue_modifyPriority shows how backends differ for unknown elements.
func ExampleQueue_modifyPriority() {
	for _, kind := range []priority.Kind{priority.Heap, priority.Array} {
		q, _ := priority.New(kind)
		err := q.ModifyPriority(42, 1)
		fmt.Printf("%s: %v\n", kind, err)
	}

	// Output:
	// heap: element 42: priority: element not found
	// array: <nil>
}

// ExampleMerge demonstrates draining several queues in one priority order.
func ExampleMerge() {
	urgent := priority.NewHeapQueue()
	urgent.Enqueue(1, 90)
	urgent.Enqueue(2, 40)

	background := priority.NewOrderedQueue()
	background.Enqueue(3, 60)
	background.Enqueue(4, 10)

	for p := range priority.Merge(urgent, background) {
		fmt.Println(p.Element, p.Priority)
	}

	// Output:
	// 1 90
	// 3 60
	// 2 40
	// 4 10
}
