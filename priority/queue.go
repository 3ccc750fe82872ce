package priority

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmpty is returned when peeking or dequeuing an empty queue.
	ErrEmpty = errors.New("priority: queue is empty")
	// ErrNotFound is returned by ModifyPriority on backends that report a
	// missing element.
	ErrNotFound = errors.New("priority: element not found")
	// ErrUnknownKind is returned by New and ParseKind for an unrecognized kind.
	ErrUnknownKind = errors.New("priority: unknown queue kind")
)

// Pair is a queued element together with its priority.
type Pair struct {
	Element  int
	Priority int
}

// Queue is the behaviour shared by every backend.
type Queue interface {
	// Len returns the number of queued pairs.
	Len() int
	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
	// Clear removes every pair.
	Clear()
	// Enqueue adds element with the given priority.
	Enqueue(element, priority int)
	// DequeueMax removes and returns an element with the highest priority.
	DequeueMax() (int, error)
	// PeekMax returns an element with the highest priority without removing it.
	PeekMax() (int, error)
	// ModifyPriority changes the priority of a queued element in place.
	ModifyPriority(element, priority int) error
}

// PairQueue is a Queue that can also report the priority of its maximum.
type PairQueue interface {
	Queue
	PeekMaxPair() (Pair, error)
	DequeueMaxPair() (Pair, error)
}

// Kind selects a backend.
type Kind int

const (
	Heap Kind = iota
	Array
	List
	Ordered
)

func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Array:
		return "array"
	case List:
		return "list"
	case Ordered:
		return "ordered"
	default:
		return "unknown"
	}
}

// ParseKind maps a backend name, as returned by Kind.String, to its Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heap":
		return Heap, nil
	case "array":
		return Array, nil
	case "list":
		return List, nil
	case "ordered":
		return Ordered, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// New creates an empty queue using the backend selected by kind.
func New(kind Kind, opts ...Option) (PairQueue, error) {
	switch kind {
	case Heap:
		return NewHeapQueue(opts...), nil
	case Array:
		return NewArrayQueue(opts...), nil
	case List:
		return NewListQueue(opts...), nil
	case Ordered:
		return NewOrderedQueue(opts...), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%d", int(kind))
	}
}

func emptyError(op string) error {
	return errors.Wrap(ErrEmpty, op)
}
