package filter

import (
	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/internal/conv"
	"github.com/hyppau/hyppau/internal/sparse"
)

// BudgetFilter strengthens CoR with a per-dimension lower bound: minDist[q][k]
// is the minimum number of dimension-k transitions any accepting path from q
// must still consume. A configuration whose remaining budget on some
// dimension falls short of that bound can never complete a match, even if
// its state is in CoR (spec.md §4.3, "stronger filter ... parameterized by
// remaining per-dimension budget").
type BudgetFilter struct {
	minDist [][]int // minDist[q][k], or -1 if q cannot reach a final state at all
	dims    int
}

// sentinelUnreachable marks a (state, dimension) pair with no path to a
// final state under the admitted alphabet.
const sentinelUnreachable = -1

// ComputeBudget computes minDist via D independent 0-1 breadth-first
// searches over the reverse graph, one per dimension, each admitting only
// edges whose action lies in that dimension's per-input alphabet (the same
// admission rule as Compute). A 0-1 BFS is used because an edge on
// dimension k costs 1 toward dimension k's distance and 0 toward every
// other dimension's.
func ComputeBudget(n *automaton.NFAH, sigma []map[automaton.ActionID]bool) *BudgetFilter {
	dims := n.Dimensions()
	minDist := make([][]int, n.NumStates())
	for q := range minDist {
		minDist[q] = make([]int, dims)
		for k := range minDist[q] {
			minDist[q][k] = sentinelUnreachable
		}
	}

	// One SparseSet, reused and Clear()'d across all D passes instead of
	// allocating a fresh visited slice per pass: SparseSet.Clear is O(1)
	// regardless of |Q|, unlike re-zeroing a []bool.
	visited := sparse.NewSparseSet(conv.IntToUint32(n.NumStates()))
	for k := 0; k < dims; k++ {
		visited.Clear()
		zeroOneBFS(n, sigma, k, minDist, visited)
	}

	return &BudgetFilter{minDist: minDist, dims: dims}
}

func zeroOneBFS(n *automaton.NFAH, sigma []map[automaton.ActionID]bool, k int, minDist [][]int, visited *sparse.SparseSet) {
	dist := make([]int, n.NumStates())
	for i := range dist {
		dist[i] = -1
	}

	var deque []automaton.StateID
	for q := automaton.StateID(0); int(q) < n.NumStates(); q++ {
		if n.IsFinal(q) {
			dist[q] = 0
			deque = append(deque, q)
		}
	}

	for len(deque) > 0 {
		q := deque[0]
		deque = deque[1:]
		if visited.Contains(uint32(q)) {
			continue
		}
		visited.Insert(uint32(q))

		for _, t := range n.Predecessors(q) {
			if !sigma[t.Dim][t.Action] {
				continue
			}
			cost := 0
			if t.Dim == k {
				cost = 1
			}
			nd := dist[q] + cost
			if dist[t.From] == -1 || nd < dist[t.From] {
				dist[t.From] = nd
				if cost == 0 {
					deque = append([]automaton.StateID{t.From}, deque...)
				} else {
					deque = append(deque, t.From)
				}
			}
		}
	}

	for q, d := range dist {
		minDist[q][k] = d
	}
}

// Admits reports whether state q, with remaining[k] unread actions left on
// dimension k for every k, could still reach a final state. A false result
// is sound to prune; a true result is not a guarantee, only a failure to
// rule the configuration out.
func (b *BudgetFilter) Admits(q automaton.StateID, remaining []int) bool {
	row := b.minDist[q]
	for k := 0; k < b.dims; k++ {
		if row[k] == sentinelUnreachable {
			return false
		}
		if row[k] > remaining[k] {
			return false
		}
	}
	return true
}
