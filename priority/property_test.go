package priority_test

import (
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/davidvella/dsa/priority"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type opKind int

const (
	opEnqueue opKind = iota
	opDequeue
	opModify
	opClear
)

type operation struct {
	kind     opKind
	element  int
	priority int
}

// decode turns a generated code into an operation. Enqueues dominate so
// queues actually grow; clears are rare.
func decode(code int) operation {
	op := operation{element: (code / 16) % 12, priority: (code/192)%40 - 20}
	switch r := code % 16; {
	case r < 8:
		op.kind = opEnqueue
	case r < 12:
		op.kind = opDequeue
	case r < 15:
		op.kind = opModify
	default:
		op.kind = opClear
	}
	return op
}

func genCodes() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, math.MaxInt32))
}

// trace records what a queue observably did for a sequence of operations.
type trace struct {
	lens       []int
	priorities []int // priorities of dequeued pairs, in order
	elements   []int // dequeued elements, sorted, including the final drain
}

// without drops every code that decodes to one of the given operation kinds.
func without(codes []int, drop ...opKind) []int {
	return slices.DeleteFunc(slices.Clone(codes), func(c int) bool {
		return slices.Contains(drop, decode(c).kind)
	})
}

// replay runs codes against q and drains whatever is left at the end.
func replay(q priority.PairQueue, codes []int) trace {
	var tr trace
	for _, code := range codes {
		op := decode(code)
		switch op.kind {
		case opEnqueue:
			q.Enqueue(op.element, op.priority)
		case opDequeue:
			if p, err := q.DequeueMaxPair(); err == nil {
				tr.priorities = append(tr.priorities, p.Priority)
				tr.elements = append(tr.elements, p.Element)
			}
		case opModify:
			_ = q.ModifyPriority(op.element, op.priority)
		case opClear:
			q.Clear()
		}
		tr.lens = append(tr.lens, q.Len())
	}
	for p := range priority.Drain(q) {
		tr.priorities = append(tr.priorities, p.Priority)
		tr.elements = append(tr.elements, p.Element)
	}
	slices.Sort(tr.elements)
	return tr
}

func TestQueueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("heap property holds after every operation", prop.ForAll(
		func(codes []int) bool {
			q := priority.NewHeapQueue()
			for _, code := range codes {
				op := decode(code)
				switch op.kind {
				case opEnqueue:
					q.Enqueue(op.element, op.priority)
				case opDequeue:
					_, _ = q.DequeueMax()
				case opModify:
					_ = q.ModifyPriority(op.element, op.priority)
				case opClear:
					q.Clear()
				}
				pairs := q.Pairs()
				for i := 1; i < len(pairs); i++ {
					if pairs[(i-1)/2].Priority < pairs[i].Priority {
						return false
					}
				}
			}
			return true
		},
		genCodes(),
	))

	properties.Property("length counts enqueues minus dequeues and clears", prop.ForAll(
		func(codes []int) bool {
			for _, kind := range kinds {
				q, err := priority.New(kind)
				if err != nil {
					return false
				}
				want := 0
				for _, code := range codes {
					op := decode(code)
					switch op.kind {
					case opEnqueue:
						q.Enqueue(op.element, op.priority)
						want++
					case opDequeue:
						if _, err := q.DequeueMax(); err == nil {
							want--
						}
					case opClear:
						q.Clear()
						want = 0
					}
					if q.Len() != want || q.IsEmpty() != (want == 0) {
						return false
					}
				}
			}
			return true
		},
		genCodes(),
	))

	properties.Property("backends dequeue the same priority sequence", prop.ForAll(
		func(codes []int) bool {
			// With duplicate elements the backends may legitimately re-key
			// different pairs, so modifications are left out.
			codes = without(codes, opModify)
			want := replay(priority.NewHeapQueue(), codes)
			for _, kind := range kinds[1:] {
				q, err := priority.New(kind)
				if err != nil {
					return false
				}
				got := replay(q, codes)
				if !slices.Equal(want.lens, got.lens) ||
					!slices.Equal(want.priorities, got.priorities) {
					return false
				}
			}
			return true
		},
		genCodes(),
	))

	properties.TestingRun(t)
}

// TestBackendsAgreeConcurrently drives each backend from its own goroutine
// with an identical workload, then compares traces. Without clears every
// enqueued element is eventually dequeued, so the element multisets match
// even though ties may be broken differently.
func TestBackendsAgreeConcurrently(t *testing.T) {
	codes := make([]int, 0, 4000)
	for i := 0; i < cap(codes); i++ {
		codes = append(codes, (i*7919+13)%(1<<20))
	}
	codes = without(codes, opModify, opClear)

	var (
		mu     sync.Mutex
		traces = make(map[priority.Kind]trace, len(kinds))
	)

	var g errgroup.Group
	for _, kind := range kinds {
		g.Go(func() error {
			q, err := priority.New(kind)
			if err != nil {
				return err
			}
			tr := replay(q, codes)
			mu.Lock()
			traces[kind] = tr
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	want := traces[priority.Heap]
	require.NotEmpty(t, want.priorities)
	for _, kind := range kinds[1:] {
		got := traces[kind]
		assert.Equal(t, want.lens, got.lens, kind.String())
		assert.Equal(t, want.priorities, got.priorities, kind.String())
		assert.Equal(t, want.elements, got.elements, kind.String())
	}
}
