package matcher

import (
	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/filter"
	"github.com/hyppau/hyppau/word"
)

// runNaive implements spec.md §4.4: for every start vector b in the product
// space, explore the reachable configurations and emit every match found.
func runNaive(n *automaton.NFAH, w *word.Words, cor *filter.CoR, budget *filter.BudgetFilter) []MatchTuple {
	ex := newExplorer(n, w, cor, budget)
	out := newMatchSet()

	forEachStartVector(ex.lens, func(b Position) {
		ex.exploreFrom(b, out)
	})

	return out.all()
}
