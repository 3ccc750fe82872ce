package list

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/davidvella/dsa/array"
)

var (
	// ErrOutOfRange is returned for an index outside [0, Len()).
	ErrOutOfRange = errors.New("list: index out of range")
	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("list: list is empty")
	// ErrForeignNode is returned for a zero handle, a handle whose node was
	// removed, or a handle from another list.
	ErrForeignNode = errors.New("list: node does not belong to this list")
)

// slot is one arena cell. prev and next are slot indices.
type slot[T comparable] struct {
	value T
	prev  int
	next  int
	gen   uint64 // bumped on release so stale handles stop matching
	live  bool
}

// List is a circular doubly linked list. The zero value is an empty list
// ready to use.
type List[T comparable] struct {
	slots []slot[T]
	free  []int
	head  int // only meaningful when count > 0
	count int
}

// New creates an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Of creates a list holding values in order.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.count
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// First returns the head node, or the zero Node if the list is empty.
func (l *List[T]) First() Node[T] {
	if l.count == 0 {
		return Node[T]{}
	}
	return l.handle(l.head)
}

// Last returns the tail node, or the zero Node if the list is empty.
func (l *List[T]) Last() Node[T] {
	if l.count == 0 {
		return Node[T]{}
	}
	return l.handle(l.slots[l.head].prev)
}

// AddFirst inserts value at the front and returns its node.
func (l *List[T]) AddFirst(value T) Node[T] {
	i := l.push(value)
	l.head = i
	return l.handle(i)
}

// AddLast inserts value at the back and returns its node.
func (l *List[T]) AddLast(value T) Node[T] {
	return l.handle(l.push(value))
}

// AddAt inserts value so that it ends up at position index. The index must
// refer to an existing node.
func (l *List[T]) AddAt(index int, value T) (Node[T], error) {
	if err := l.checkIndex(index); err != nil {
		return Node[T]{}, err
	}
	if index == 0 {
		return l.AddFirst(value), nil
	}
	i := l.alloc(value)
	l.linkBefore(l.indexAt(index), i)
	l.count++
	return l.handle(i), nil
}

// AddBefore inserts value in front of node. Inserting before the head links
// the new node between the tail and the head, making it the new tail.
func (l *List[T]) AddBefore(node Node[T], value T) (Node[T], error) {
	if !l.owns(node) {
		return Node[T]{}, errors.Wrap(ErrForeignNode, "add before")
	}
	i := l.alloc(value)
	l.linkBefore(node.index, i)
	l.count++
	return l.handle(i), nil
}

// AddAfter inserts value behind node.
func (l *List[T]) AddAfter(node Node[T], value T) (Node[T], error) {
	if !l.owns(node) {
		return Node[T]{}, errors.Wrap(ErrForeignNode, "add after")
	}
	i := l.alloc(value)
	l.linkBefore(l.slots[node.index].next, i)
	l.count++
	return l.handle(i), nil
}

// Remove unlinks node in O(1). The handle, and any copy of it, is invalid
// afterwards.
func (l *List[T]) Remove(node Node[T]) error {
	if !l.owns(node) {
		return errors.Wrap(ErrForeignNode, "remove")
	}
	l.unlink(node.index)
	return nil
}

// RemoveFirst removes the head node.
func (l *List[T]) RemoveFirst() error {
	if l.count == 0 {
		return errors.Wrap(ErrEmpty, "remove first")
	}
	l.unlink(l.head)
	return nil
}

// RemoveLast removes the tail node.
func (l *List[T]) RemoveLast() error {
	if l.count == 0 {
		return errors.Wrap(ErrEmpty, "remove last")
	}
	l.unlink(l.slots[l.head].prev)
	return nil
}

// RemoveAt removes the node at position index.
func (l *List[T]) RemoveAt(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.unlink(l.indexAt(index))
	return nil
}

// Contains reports whether any node holds value.
func (l *List[T]) Contains(value T) bool {
	return l.Find(value).list != nil
}

// Find returns the first node holding value, or the zero Node.
func (l *List[T]) Find(value T) Node[T] {
	i := l.head
	for n := 0; n < l.count; n++ {
		if l.slots[i].value == value {
			return l.handle(i)
		}
		i = l.slots[i].next
	}
	return Node[T]{}
}

// FindLast returns the last node holding value, or the zero Node.
func (l *List[T]) FindLast(value T) Node[T] {
	if l.count == 0 {
		return Node[T]{}
	}
	i := l.slots[l.head].prev
	for n := 0; n < l.count; n++ {
		if l.slots[i].value == value {
			return l.handle(i)
		}
		i = l.slots[i].prev
	}
	return Node[T]{}
}

// ToArray copies the values into a new array, preserving order. The array's
// capacity is the smallest doubling of array.DefaultCapacity that fits.
func (l *List[T]) ToArray() *array.Array[T] {
	capacity := array.DefaultCapacity
	for capacity < l.count {
		capacity *= 2
	}
	a := array.WithCapacity[T](capacity)
	for v := range l.All() {
		a.Add(v)
	}
	return a
}

// Clone returns an independent copy of the list. Handles into l are not
// valid for the copy.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for v := range l.All() {
		c.AddLast(v)
	}
	return c
}

// Clear releases every node. Outstanding handles become invalid.
func (l *List[T]) Clear() {
	i := l.head
	for n := 0; n < l.count; n++ {
		next := l.slots[i].next
		l.release(i)
		i = next
	}
	l.count = 0
}

// All returns an iterator over the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		i := l.head
		for n := 0; n < l.count; n++ {
			if !yield(l.slots[i].value) {
				return
			}
			i = l.slots[i].next
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.count == 0 {
			return
		}
		i := l.slots[l.head].prev
		for n := 0; n < l.count; n++ {
			if !yield(l.slots[i].value) {
				return
			}
			i = l.slots[i].prev
		}
	}
}

// push links a new node at the tail and returns its slot.
func (l *List[T]) push(value T) int {
	i := l.alloc(value)
	if l.count == 0 {
		l.slots[i].prev, l.slots[i].next = i, i
		l.head = i
	} else {
		l.linkBefore(l.head, i)
	}
	l.count++
	return i
}

func (l *List[T]) alloc(value T) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[i].value = value
		l.slots[i].live = true
		return i
	}
	l.slots = append(l.slots, slot[T]{value: value, gen: 1, live: true})
	return len(l.slots) - 1
}

func (l *List[T]) release(i int) {
	var zero T
	s := &l.slots[i]
	s.value = zero
	s.prev, s.next = i, i
	s.live = false
	s.gen++
	l.free = append(l.free, i)
}

// linkBefore splices slot i in front of slot at.
func (l *List[T]) linkBefore(at, i int) {
	prev := l.slots[at].prev
	l.slots[i].prev = prev
	l.slots[i].next = at
	l.slots[prev].next = i
	l.slots[at].prev = i
}

func (l *List[T]) unlink(i int) {
	prev, next := l.slots[i].prev, l.slots[i].next
	l.slots[prev].next = next
	l.slots[next].prev = prev
	if i == l.head {
		l.head = next
	}
	l.count--
	l.release(i)
}

// indexAt walks to position index from whichever end is closer.
func (l *List[T]) indexAt(index int) int {
	i := l.head
	if index <= l.count/2 {
		for n := 0; n < index; n++ {
			i = l.slots[i].next
		}
		return i
	}
	for n := l.count; n > index; n-- {
		i = l.slots[i].prev
	}
	return i
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.count {
		return errors.Wrapf(ErrOutOfRange, "index %d, count %d", index, l.count)
	}
	return nil
}

func (l *List[T]) owns(n Node[T]) bool {
	if n.list != l || n.index < 0 || n.index >= len(l.slots) {
		return false
	}
	s := l.slots[n.index]
	return s.live && s.gen == n.gen
}

func (l *List[T]) handle(i int) Node[T] {
	return Node[T]{list: l, index: i, gen: l.slots[i].gen}
}
