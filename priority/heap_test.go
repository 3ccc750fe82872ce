package priority_test

import (
	"math/rand"
	"testing"

	"github.com/davidvella/dsa/priority"
	"github.com/stretchr/testify/require"
)

// requireHeap fails the test if any pair outranks its parent.
func requireHeap(t testing.TB, q *priority.HeapQueue) {
	t.Helper()
	pairs := q.Pairs()
	for i := 1; i < len(pairs); i++ {
		parent := (i - 1) / 2
		require.GreaterOrEqual(t, pairs[parent].Priority, pairs[i].Priority,
			"parent %d (%v) below child %d (%v)", parent, pairs[parent], i, pairs[i])
	}
}

func TestHeapInvariantRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	q := priority.NewHeapQueue()

	for step := 0; step < 5000; step++ {
		switch r := rng.Intn(10); {
		case r < 5:
			q.Enqueue(rng.Intn(50), rng.Intn(100)-50)
		case r < 8:
			if _, err := q.DequeueMax(); err != nil {
				require.True(t, q.IsEmpty())
			}
		default:
			_ = q.ModifyPriority(rng.Intn(50), rng.Intn(100)-50)
		}
		requireHeap(t, q)
	}
}

func TestHeapDequeueReturnsMaxima(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := priority.NewHeapQueue(priority.WithCapacity(1))

	for i := 0; i < 257; i++ {
		q.Enqueue(i, rng.Intn(1000))
	}
	requireHeap(t, q)

	last := int(^uint(0) >> 1)
	for !q.IsEmpty() {
		p, err := q.DequeueMaxPair()
		require.NoError(t, err)
		require.LessOrEqual(t, p.Priority, last)
		last = p.Priority
		requireHeap(t, q)
	}
}

func TestHeapLayoutAfterEnqueue(t *testing.T) {
	q := priority.NewHeapQueue()
	for _, p := range []int{1, 5, 3, 9} {
		q.Enqueue(p, p)
	}

	// 9 sifts past 5 to the root; 1 ends up under 5.
	require.Equal(t, []priority.Pair{{9, 9}, {5, 5}, {3, 3}, {1, 1}}, q.Pairs())

	require.NoError(t, q.ModifyPriority(9, 0))
	require.Equal(t, []priority.Pair{{5, 5}, {1, 1}, {3, 3}, {9, 0}}, q.Pairs())
}
