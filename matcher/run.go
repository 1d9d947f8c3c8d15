package matcher

import (
	"fmt"
	"io"
	"sort"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/filter"
	"github.com/hyppau/hyppau/word"
)

// Run executes mode over n and w and returns the deduplicated match set.
// stderr receives the fjs/fjs-filtered timing lines (spec.md §6); pass nil
// to discard them.
func Run(n *automaton.NFAH, w *word.Words, mode Mode, stderr io.Writer) ([]MatchTuple, error) {
	if n.Dimensions() != w.Dimensions() {
		return nil, fmt.Errorf("matcher: dimension mismatch: automaton has %d, words have %d", n.Dimensions(), w.Dimensions())
	}

	var cor *filter.CoR
	var budget *filter.BudgetFilter
	if mode.Filtered() {
		cor, budget = filter.ComputeAll(n, w)
	}

	var matches []MatchTuple
	switch mode {
	case Naive, NaiveFiltered:
		matches = runNaive(n, w, cor, budget)
	case Online, OnlineFiltered:
		matches = runOnline(n, w, cor, budget)
	case FJS, FJSFiltered:
		matches = runFJS(n, w, cor, budget, stderr)
	default:
		return nil, fmt.Errorf("matcher: unsupported mode %v", mode)
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Key() < matches[j].Key()
	})
	return matches, nil
}
