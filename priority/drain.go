package priority

import (
	"iter"

	"github.com/davidvella/dsa/internal/tournament"
)

// Drain returns an iterator that dequeues q's maximum until q is empty or
// the loop stops. Pairs not yet yielded stay in the queue.
func Drain(q PairQueue) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for !q.IsEmpty() {
			p, err := q.DequeueMaxPair()
			if err != nil || !yield(p) {
				return
			}
		}
	}
}

// Merge drains several queues as one, yielding pairs in descending priority
// across all of them. Each queue is dequeued lazily, one pair ahead of the
// merged output.
func Merge(queues ...PairQueue) iter.Seq[Pair] {
	sources := make([]iter.Seq[Pair], len(queues))
	for i, q := range queues {
		sources[i] = Drain(q)
	}
	return tournament.New(sources, func(a, b Pair) bool {
		return a.Priority > b.Priority
	}).All()
}
