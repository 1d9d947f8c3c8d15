package matcher

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/intern"
	"github.com/hyppau/hyppau/word"
)

func TestCandidatesForDim_SkipsNonCandidates(t *testing.T) {
	table := intern.NewTable()
	aID := automaton.ActionID(table.Intern("a"))
	_ = aID
	r := strings.NewReader("x\na\nx\nx\na\n")
	w, err := word.LoadWords([]io.Reader{r}, table)
	if err != nil {
		t.Fatal(err)
	}
	firstSet := map[automaton.ActionID]bool{aID: true}
	got := candidatesForDim(nil, w, 0, firstSet)
	want := []int{1, 4}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidates[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCandidatesForDim_NoneFound(t *testing.T) {
	table := intern.NewTable()
	table.Intern("z")
	r := strings.NewReader("z\nz\n")
	w, err := word.LoadWords([]io.Reader{r}, table)
	if err != nil {
		t.Fatal(err)
	}
	got := candidatesForDim(nil, w, 0, map[automaton.ActionID]bool{})
	if len(got) != 0 {
		t.Errorf("candidates = %v, want none", got)
	}
}

// buildRepeatedActionChain constructs a D=1 automaton that forces maximum
// KMP failure-chain depth: 0->1->2->3(final), every transition the same
// action "a" on dimension 0, mirroring the classic pattern="aaa" worst case
// for naive string search.
func buildRepeatedActionChain(t *testing.T, table *intern.Table) *automaton.NFAH {
	t.Helper()
	b := automaton.NewBuilder(1)
	for _, id := range []automaton.StateID{0, 1, 2, 3} {
		_ = b.AddState(id, id == 0, id == 3)
	}
	a := automaton.ActionID(table.Intern("a"))
	mustAdd := func(from, to automaton.StateID) {
		if err := b.AddTransition(from, a, 0, to); err != nil {
			t.Fatal(err)
		}
	}
	mustAdd(0, 1)
	mustAdd(1, 2)
	mustAdd(2, 3)
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// TestComputeFailure_DeepChain exercises spec.md §8 Scenario E's failure
// function on a pattern where every state fails back through the same
// repeated action, the case that makes a plain forward-only scan (no
// failure fallback) degrade to a rescan from each mismatch.
func TestComputeFailure_DeepChain(t *testing.T) {
	table := intern.NewTable()
	n := buildRepeatedActionChain(t, table)
	a := automaton.ActionID(table.Intern("a"))

	failure := computeFailure(n, 0)
	if failure[1] != 0 {
		t.Errorf("failure[1] = %d, want 0", failure[1])
	}
	if failure[2] != 1 {
		t.Errorf("failure[2] = %d, want 1 (state 1 also has an outgoing %q)", failure[2], "a")
	}
	if failure[3] != 2 {
		t.Errorf("failure[3] = %d, want 2", failure[3])
	}

	shift := computeShiftTable(n, 0)
	if got := shiftFor(shift, a, 99); got != 1 {
		t.Errorf("shiftFor(a) = %d, want 1: action %q is directly enabled from the initial state, so no iteration may skip a position", got, "a")
	}
}

// TestScenarioE_RepeatedActionMatchesNaive runs a long run of the same
// action through the deep-failure-chain automaton and checks FJS's shift
// table still advances the sweep's b_0 by at least one position per
// iteration (it never stalls or jumps past a valid start vector), and that
// FJS's match set agrees with Naive's on the pathological input.
func TestScenarioE_RepeatedActionMatchesNaive(t *testing.T) {
	table := intern.NewTable()
	n := buildRepeatedActionChain(t, table)
	w, err := word.LoadWords([]io.Reader{strings.NewReader("a\na\na\na\na\na\na\n")}, table)
	if err != nil {
		t.Fatal(err)
	}

	shift := computeShiftTable(n, 0)
	for pos := 0; pos < w.Len(0); pos++ {
		if got := shiftFor(shift, w.Get(0, pos), 99); got < 1 {
			t.Fatalf("shiftFor at position %d = %d, want >= 1", pos, got)
		}
	}

	naive, err := Run(n, w, Naive, nil)
	if err != nil {
		t.Fatal(err)
	}
	fjs, err := Run(n, w, FJS, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sortedStr(naive) != sortedStr(fjs) {
		t.Errorf("FJS match set diverges from Naive on a repeated-action chain:\nnaive=%v\nfjs=%v", sortedKeys(naive), sortedKeys(fjs))
	}
	if len(naive) == 0 {
		t.Fatal("expected at least one match on a 7-long run of the pattern's own action")
	}
}

func TestRunFJS_EmitsTimingLines(t *testing.T) {
	table := intern.NewTable()
	n, w := buildScenarioA(t, table)
	var stderr bytes.Buffer

	_, err := Run(n, w, FJS, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	out := stderr.String()
	if !strings.Contains(out, "kmp") {
		t.Errorf("stderr should contain a kmp timing line, got %q", out)
	}
	if !strings.Contains(out, "quick_search") {
		t.Errorf("stderr should contain a quick_search timing line, got %q", out)
	}
}
