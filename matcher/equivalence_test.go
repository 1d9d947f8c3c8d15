package matcher

import (
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/intern"
	"github.com/hyppau/hyppau/word"
)

var allModes = []Mode{Naive, Online, FJS, NaiveFiltered, OnlineFiltered, FJSFiltered}

// buildScenarioA constructs the "small" NFAH of spec.md §8 Scenario A:
// D=2, states {0,1,2} with 0 initial and 1 final, transitions
// 0->1 [a,0], 0->2 [b,1], 1->2 [c,0], 2->0 [d,1].
func buildScenarioA(t *testing.T, table *intern.Table) (*automaton.NFAH, *word.Words) {
	t.Helper()
	b := automaton.NewBuilder(2)
	for _, id := range []automaton.StateID{0, 1, 2} {
		_ = b.AddState(id, id == 0, id == 1)
	}
	a := automaton.ActionID(table.Intern("a"))
	bb := automaton.ActionID(table.Intern("b"))
	c := automaton.ActionID(table.Intern("c"))
	d := automaton.ActionID(table.Intern("d"))
	mustAdd := func(from automaton.StateID, act automaton.ActionID, dim int, to automaton.StateID) {
		if err := b.AddTransition(from, act, dim, to); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(0, a, 0, 1)
	mustAdd(0, bb, 1, 2)
	mustAdd(1, c, 0, 2)
	mustAdd(2, d, 1, 0)

	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	w, err := word.LoadWords([]io.Reader{
		strings.NewReader("a\nc\na\n"),
		strings.NewReader("b\nd\nb\nd\n"),
	}, table)
	if err != nil {
		t.Fatal(err)
	}
	return n, w
}

func sortedKeys(matches []MatchTuple) []string {
	keys := make([]string, len(matches))
	for i, m := range matches {
		keys[i] = m.Key()
	}
	sort.Strings(keys)
	return keys
}

func TestModeEquivalence_ScenarioA(t *testing.T) {
	table := intern.NewTable()
	n, w := buildScenarioA(t, table)

	var reference []string
	for _, mode := range allModes {
		matches, err := Run(n, w, mode, nil)
		if err != nil {
			t.Fatalf("Run(%v) = %v", mode, err)
		}
		got := sortedKeys(matches)
		if reference == nil {
			reference = got
			continue
		}
		if len(got) != len(reference) {
			t.Fatalf("mode %v produced %d matches, reference has %d", mode, len(got), len(reference))
		}
		for i := range got {
			if got[i] != reference[i] {
				t.Errorf("mode %v match[%d] = %s, want %s", mode, i, got[i], reference[i])
			}
		}
	}
}

func TestModeEquivalence_TrivialAcceptance(t *testing.T) {
	table := intern.NewTable()
	b := automaton.NewBuilder(2)
	_ = b.AddState(0, true, true)
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	w, err := word.LoadWords([]io.Reader{
		strings.NewReader("x\ny\n"),
		strings.NewReader("z\n"),
	}, table)
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range allModes {
		matches, err := Run(n, w, mode, nil)
		if err != nil {
			t.Fatalf("Run(%v) = %v", mode, err)
		}
		// Every start vector b in the product space (0..2)x(0..1) must
		// produce at least the empty match (b,b).
		want := (w.Len(0) + 1) * (w.Len(1) + 1)
		count := 0
		for _, m := range matches {
			if m.Intervals[0].B == m.Intervals[0].E && m.Intervals[1].B == m.Intervals[1].E {
				count++
			}
		}
		if count != want {
			t.Errorf("mode %v: found %d empty matches, want %d", mode, count, want)
		}
	}
}

func TestModeEquivalence_ZeroLengthInputs(t *testing.T) {
	table := intern.NewTable()
	b := automaton.NewBuilder(1)
	_ = b.AddState(0, true, false)
	_ = b.AddState(1, false, true)
	act := automaton.ActionID(table.Intern("go"))
	if err := b.AddTransition(0, act, 0, 1); err != nil {
		t.Fatal(err)
	}
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	w, err := word.LoadWords([]io.Reader{strings.NewReader("")}, table)
	if err != nil {
		t.Fatal(err)
	}

	for _, mode := range allModes {
		matches, err := Run(n, w, mode, nil)
		if err != nil {
			t.Fatalf("Run(%v) = %v", mode, err)
		}
		if len(matches) != 0 {
			t.Errorf("mode %v: zero-length non-accepting automaton should produce no matches, got %v", mode, matches)
		}
	}
}

func TestIdempotence(t *testing.T) {
	table := intern.NewTable()
	n, w := buildScenarioA(t, table)

	for _, mode := range allModes {
		first, err := Run(n, w, mode, nil)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Run(n, w, mode, nil)
		if err != nil {
			t.Fatal(err)
		}
		if sortedStr(first) != sortedStr(second) {
			t.Errorf("mode %v is not idempotent", mode)
		}
	}
}

func sortedStr(matches []MatchTuple) string {
	return strings.Join(sortedKeys(matches), "|")
}

func TestBounds(t *testing.T) {
	table := intern.NewTable()
	n, w := buildScenarioA(t, table)

	matches, err := Run(n, w, Naive, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		for k, iv := range m.Intervals {
			if iv.B < 0 || iv.B > iv.E || iv.E > w.Len(k) {
				t.Errorf("match %v violates bounds on dim %d", m, k)
			}
		}
	}
}
