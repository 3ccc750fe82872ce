package array

import (
	"iter"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultCapacity is the capacity of an array created without an explicit one.
	DefaultCapacity = 4
	growthFactor    = 2
)

// ErrOutOfRange is returned when an index falls outside the valid bounds.
var ErrOutOfRange = errors.New("array: index out of range")

// Array is a growable sequence of elements stored in a contiguous buffer.
type Array[T comparable] struct {
	items  []T // len(items) is the capacity
	length int
}

// New creates an empty array with DefaultCapacity.
func New[T comparable]() *Array[T] {
	return WithCapacity[T](DefaultCapacity)
}

// WithCapacity creates an empty array able to hold capacity elements before
// it has to grow. A non-positive capacity falls back to DefaultCapacity.
func WithCapacity[T comparable](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Array[T]{items: make([]T, capacity)}
}

// Of creates an array holding items, sized exactly to fit them.
func Of[T comparable](items ...T) *Array[T] {
	a := WithCapacity[T](len(items))
	a.length = copy(a.items, items)
	return a
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.length
}

// Cap returns the number of elements the array can hold without growing.
func (a *Array[T]) Cap() int {
	return len(a.items)
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.items[index], nil
}

// Set replaces the element at index.
func (a *Array[T]) Set(index int, item T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.items[index] = item
	return nil
}

// Swap exchanges the elements at i and j.
func (a *Array[T]) Swap(i, j int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	if err := a.checkIndex(j); err != nil {
		return err
	}
	a.items[i], a.items[j] = a.items[j], a.items[i]
	return nil
}

// Add appends item, doubling the capacity first if the buffer is full.
func (a *Array[T]) Add(item T) {
	if a.length == len(a.items) {
		a.grow()
	}
	a.items[a.length] = item
	a.length++
}

// Insert places item at index, shifting the element currently there and
// everything after it one position to the right. An index equal to Len
// appends.
func (a *Array[T]) Insert(index int, item T) error {
	if index < 0 || index > a.length {
		return errors.Wrapf(ErrOutOfRange, "insert at %d, length %d", index, a.length)
	}

	if a.length < len(a.items) {
		copy(a.items[index+1:a.length+1], a.items[index:a.length])
		a.items[index] = item
		a.length++
		return nil
	}

	// Full: allocate once and copy the prefix and suffix around the new slot.
	items := make([]T, len(a.items)*growthFactor)
	copy(items, a.items[:index])
	items[index] = item
	copy(items[index+1:], a.items[index:a.length])
	a.items = items
	a.length++
	return nil
}

// Contains reports whether item is present.
func (a *Array[T]) Contains(item T) bool {
	return a.IndexOf(item) >= 0
}

// IndexOf returns the index of the first occurrence of item, or -1.
func (a *Array[T]) IndexOf(item T) int {
	for i := 0; i < a.length; i++ {
		if a.items[i] == item {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of item, or -1.
func (a *Array[T]) LastIndexOf(item T) int {
	for i := a.length - 1; i >= 0; i-- {
		if a.items[i] == item {
			return i
		}
	}
	return -1
}

// Clear removes every element in O(1). The capacity is retained and the
// old elements stay in the buffer until they are overwritten.
func (a *Array[T]) Clear() {
	a.length = 0
}

// RemoveAt removes the element at index and shifts the trailing elements
// one position to the left, preserving their relative order.
func (a *Array[T]) RemoveAt(index int) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	copy(a.items[index:a.length-1], a.items[index+1:a.length])
	a.truncate()
	return nil
}

// RemoveFirst removes the first element.
func (a *Array[T]) RemoveFirst() error {
	return a.RemoveAt(0)
}

// RemoveLast removes the last element in O(1).
func (a *Array[T]) RemoveLast() error {
	if a.length == 0 {
		return errors.Wrap(ErrOutOfRange, "remove last from empty array")
	}
	a.truncate()
	return nil
}

// Clone returns a deep copy with the same capacity. Later changes to either
// array are not visible through the other.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{items: make([]T, len(a.items)), length: a.length}
	copy(c.items, a.items[:a.length])
	return c
}

// Assign replaces the contents with items. The existing buffer is reused when
// it is large enough; otherwise the new capacity is len(items) when that is a
// multiple of DefaultCapacity, or the smallest doubling of DefaultCapacity
// that fits.
func (a *Array[T]) Assign(items ...T) {
	if len(a.items) < len(items) {
		capacity := len(items)
		if capacity%DefaultCapacity != 0 {
			capacity = DefaultCapacity
			for capacity < len(items) {
				capacity *= growthFactor
			}
		}
		a.items = make([]T, capacity)
	}
	a.length = copy(a.items, items)
}

// All returns an iterator over index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements as a slice.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.length)
	copy(out, a.items[:a.length])
	return out
}

func (a *Array[T]) grow() {
	items := make([]T, len(a.items)*growthFactor)
	copy(items, a.items[:a.length])
	a.items = items
}

// truncate drops the last element and zeroes its slot.
func (a *Array[T]) truncate() {
	var zero T
	a.length--
	a.items[a.length] = zero
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.length {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", index, a.length)
	}
	return nil
}
