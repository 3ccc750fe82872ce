// Package tournament merges several ordered sequences into one using a
// tournament (loser) tree, in the style of https://github.com/bboreham/go-loser.
//
// The tree is laid out in a slice: for M sources, leaves sit at positions
// M..2M-1 and internal nodes at 1..M-1, with node N's parent at N/2. Each
// internal node remembers the leaf that lost the game played there; position
// 0 remembers the overall winner. Advancing the winner's source only replays
// the games on its path to the root, so each emitted value costs O(log M)
// comparisons.
package tournament

import "iter"

// Tree merges its sources in the order defined by less.
type Tree[E any] struct {
	sources []iter.Seq[E]
	less    func(a, b E) bool
}

type node[E any] struct {
	index int // losing leaf for internal nodes, winning leaf for node 0
	value E   // current head of the source; leaves only
	done  bool
	next  func() (E, bool) // leaves only
}

// New creates a tree over sources, each of which must already be ordered by
// less. Exhausted sources lose every game, so no sentinel value is needed.
func New[E any](sources []iter.Seq[E], less func(a, b E) bool) *Tree[E] {
	return &Tree[E]{sources: sources, less: less}
}

// All yields the merged values. Sources are pulled lazily, and each is
// consumed at most once, so All should only be ranged over once.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		m := len(t.sources)
		if m == 0 {
			return
		}

		nodes := make([]node[E], 2*m)
		for i, s := range t.sources {
			next, stop := iter.Pull(s)
			//nolint:gocritic // stopped when the merge returns
			defer stop()
			nodes[m+i].next = next
			advance(&nodes[m+i])
		}

		nodes[0].index = t.play(nodes, 1)
		for {
			w := nodes[0].index
			if nodes[w].done || !yield(nodes[w].value) {
				return
			}
			advance(&nodes[w])
			t.replay(nodes, w)
		}
	}
}

// play returns the winning leaf of the subtree rooted at pos, recording the
// loser of every internal game on the way.
func (t *Tree[E]) play(nodes []node[E], pos int) int {
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.play(nodes, 2*pos)
	right := t.play(nodes, 2*pos+1)
	if t.beats(nodes, right, left) {
		left, right = right, left
	}
	nodes[pos].index = right
	return left
}

// replay re-runs the games from leaf up to the root after the leaf's value
// changed.
func (t *Tree[E]) replay(nodes []node[E], leaf int) {
	winner := leaf
	for n := leaf / 2; n != 0; n /= 2 {
		if t.beats(nodes, nodes[n].index, winner) {
			nodes[n].index, winner = winner, nodes[n].index
		}
	}
	nodes[0].index = winner
}

// beats reports whether leaf a must be emitted strictly before leaf b.
func (t *Tree[E]) beats(nodes []node[E], a, b int) bool {
	switch {
	case nodes[a].done:
		return false
	case nodes[b].done:
		return true
	default:
		return t.less(nodes[a].value, nodes[b].value)
	}
}

func advance[E any](n *node[E]) {
	if v, ok := n.next(); ok {
		n.value = v
		return
	}
	var zero E
	n.value = zero
	n.done = true
}
