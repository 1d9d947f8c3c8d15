// Package hyppau is a hyper pattern matching engine: given a nondeterministic
// finite automaton over hyper-events (NFAH) of fixed dimension D and D input
// words, it enumerates every match tuple — the set of per-dimension
// sub-intervals whose some interleaving the automaton accepts.
//
// Basic usage:
//
//	table := intern.NewTable()
//	n, err := automaton.LoadJSON(nfahFile, table)
//	w, err := word.LoadWords(inputReaders, table)
//	h := hyppau.New(n, w)
//	matches, err := h.Match(matcher.Naive, nil)
//
// All four algorithmic strategies (Naive, Online, FJS, and their
// CoR-filtered variants) produce the same deduplicated match set; they
// differ only in how quickly they arrive at it.
package hyppau

import (
	"io"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/matcher"
	"github.com/hyppau/hyppau/word"
)

// Engine binds one automaton to one set of input words for the lifetime of
// a run. It holds no mutable state between Match calls, so Match may be
// called repeatedly with different modes. Calls must not overlap: every run
// updates a package-level configuration counter in package matcher without
// synchronization.
type Engine struct {
	n *automaton.NFAH
	w *word.Words
}

// New binds an automaton and input words into a reusable matching engine.
func New(n *automaton.NFAH, w *word.Words) *Engine {
	return &Engine{n: n, w: w}
}

// Match runs mode and returns the deduplicated, sorted match set.
// diagnostics receives the fjs/fjs-filtered timing side channel (spec.md
// §6); pass nil to discard it.
func (e *Engine) Match(mode matcher.Mode, diagnostics io.Writer) ([]matcher.MatchTuple, error) {
	return matcher.Run(e.n, e.w, mode, diagnostics)
}

// Automaton returns the bound NFAH.
func (e *Engine) Automaton() *automaton.NFAH { return e.n }

// Words returns the bound input words.
func (e *Engine) Words() *word.Words { return e.w }
