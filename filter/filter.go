// Package filter computes the co-reachability set CoR: the NFAH states from
// which a final state can still be reached using only actions that actually
// occur in the supplied input words. Matchers use CoR to prune configurations
// that provably cannot extend to a match (spec.md §4.3).
package filter

import (
	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/internal/bitset"
	"github.com/hyppau/hyppau/word"
)

// CoR is the frozen result of a co-reachability computation: a membership
// bitset over the automaton's dense state ids.
type CoR struct {
	states *bitset.Set
}

// Contains reports whether q can still reach a final state using only
// actions present in the per-dimension input alphabet this CoR was built
// from. A false result is a sound reason to prune (q,p); a true result is
// not a guarantee a match exists — only that one is not yet ruled out.
func (c *CoR) Contains(q automaton.StateID) bool {
	return c.states.Test(int(q))
}

// Compute runs a reverse breadth-first search from the final states,
// admitting predecessor edge (q, a, k, q') only if a occurs somewhere in
// dimension k of w (i.e. a ∈ Σ_k, the per-input alphabet — not to be
// confused with NFAH.AlphabetOf, which is the automaton's own label
// alphabet).
func Compute(n *automaton.NFAH, w *word.Words) *CoR {
	return &CoR{states: reverseReachable(n, perDimensionAlphabet(n, w))}
}

// ComputeAll computes both the co-reachability set and its stronger,
// budget-aware refinement in one pass over the per-input alphabet, since
// both are derived from the same sigma.
func ComputeAll(n *automaton.NFAH, w *word.Words) (*CoR, *BudgetFilter) {
	sigma := perDimensionAlphabet(n, w)
	return &CoR{states: reverseReachable(n, sigma)}, ComputeBudget(n, sigma)
}

func reverseReachable(n *automaton.NFAH, sigma []map[automaton.ActionID]bool) *bitset.Set {
	visited := bitset.New(n.NumStates())
	queue := make([]automaton.StateID, 0, n.NumStates())
	for q := automaton.StateID(0); int(q) < n.NumStates(); q++ {
		if n.IsFinal(q) {
			visited.Set(int(q))
			queue = append(queue, q)
		}
	}

	for head := 0; head < len(queue); head++ {
		q := queue[head]
		for _, t := range n.Predecessors(q) {
			if !sigma[t.Dim][t.Action] {
				continue
			}
			if visited.Test(int(t.From)) {
				continue
			}
			visited.Set(int(t.From))
			queue = append(queue, t.From)
		}
	}

	return visited
}

// perDimensionAlphabet builds, for each dimension k, the set of action ids
// present anywhere in w_k. It is not restricted to actions the automaton
// labels on dimension k; such extra ids never match a transition anyway.
func perDimensionAlphabet(n *automaton.NFAH, w *word.Words) []map[automaton.ActionID]bool {
	sigma := make([]map[automaton.ActionID]bool, n.Dimensions())
	for k := range sigma {
		sigma[k] = make(map[automaton.ActionID]bool)
		if k >= w.Dimensions() {
			continue
		}
		for i := 0; i < w.Len(k); i++ {
			sigma[k][w.Get(k, i)] = true
		}
	}
	return sigma
}
