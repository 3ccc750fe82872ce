package array_test

import (
	"fmt"

	"github.com/davidvella/dsa/array"
)

// ExampleArray demonstrates growth and positional edits.
func ExampleArray() {
	a := array.New[int]()
	for i := 1; i <= 5; i++ {
		a.Add(i * 10)
	}
	fmt.Println(a.Len(), a.Cap())

	// Insert before the third element and drop the first one
	_ = a.Insert(2, 25)
	_ = a.RemoveFirst()

	fmt.Println(a.Slice())
	fmt.Println(a.IndexOf(25), a.LastIndexOf(99))

	// Output:
	// 5 8
	// [20 25 30 40 50]
	// 1 -1
}
