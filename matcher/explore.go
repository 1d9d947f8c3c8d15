package matcher

import (
	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/filter"
	"github.com/hyppau/hyppau/word"
)

// explorer holds the per-run state every matcher mode shares: the automaton,
// the words, the optional filters, and admits, the one place that decides
// whether a configuration is explored at all. Naive explores through
// exploreFrom; Online and FJS drain their own queues (onlineLiveSet,
// fjsSweep) but admit configurations through the same admits method.
type explorer struct {
	n      *automaton.NFAH
	w      *word.Words
	cor    *filter.CoR
	budget *filter.BudgetFilter
	lens   []int // n_k per dimension, cached for visitedSet sizing
}

func newExplorer(n *automaton.NFAH, w *word.Words, cor *filter.CoR, budget *filter.BudgetFilter) *explorer {
	lens := make([]int, n.Dimensions())
	for k := range lens {
		lens[k] = w.Len(k)
	}
	return &explorer{n: n, w: w, cor: cor, budget: budget, lens: lens}
}

// configVisits counts configurations admits lets through. Every mode's
// exploration — Naive's exploreFrom, Online's live set, FJS's sweep —
// funnels through admits, so this one counter lets tests compare how many
// configurations a run actually explores (spec.md §8 Scenario F: a filtered
// mode must visit strictly fewer configurations than its unfiltered
// counterpart, not just discard more of the same attempts).
var configVisits int

// resetConfigVisits zeroes the counter before a run a test wants to measure.
func resetConfigVisits() { configVisits = 0 }

// admits reports whether configuration (q, pos) should be explored, applying
// the co-reachability and budget filters when present. A nil filter never
// prunes, so unfiltered modes and filtered modes share this same method.
func (ex *explorer) admits(q automaton.StateID, pos Position) bool {
	if ex.cor != nil && !ex.cor.Contains(q) {
		return false
	}
	if ex.budget != nil {
		remaining := make([]int, len(pos))
		for k := range pos {
			remaining[k] = ex.lens[k] - pos[k]
		}
		if !ex.budget.Admits(q, remaining) {
			return false
		}
	}
	configVisits++
	return true
}

// exploreFrom runs a breadth-first search over configurations reachable from
// (q0, b) for every initial state q0, emitting a MatchTuple each time a
// final state is reached. Each (state, position) pair is visited at most
// once, bounding the search by |Q| * prod_k(n_k - b_k + 1) as spec.md §4.4
// requires.
func (ex *explorer) exploreFrom(b Position, out *matchSet) {
	visited := newVisitedSet(ex.lens)

	type queued struct {
		state automaton.StateID
		pos   Position
	}
	var queue []queued

	for _, q0 := range ex.n.InitialStates() {
		if !ex.admits(q0, b) {
			continue
		}
		if !visited.visit(q0, b) {
			continue
		}
		queue = append(queue, queued{q0, b.clone()})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]

		if ex.n.IsFinal(cur.state) {
			out.add(tupleOf(b, cur.pos))
		}

		for k := 0; k < len(cur.pos); k++ {
			if cur.pos[k] >= ex.lens[k] {
				continue
			}
			a := ex.w.Get(k, cur.pos[k])
			for _, t := range ex.n.OutgoingByDimAction(cur.state, k, a) {
				next := cur.pos.clone()
				next[k]++
				if !ex.admits(t.To, next) {
					continue
				}
				if !visited.visit(t.To, next) {
					continue
				}
				queue = append(queue, queued{t.To, next})
			}
		}
	}
}

func tupleOf(b, e Position) MatchTuple {
	intervals := make([]Interval, len(b))
	for k := range b {
		intervals[k] = Interval{B: b[k], E: e[k]}
	}
	return MatchTuple{Intervals: intervals}
}
