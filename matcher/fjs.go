package matcher

import (
	"fmt"
	"io"
	"time"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/filter"
	"github.com/hyppau/hyppau/word"
)

// runFJS implements spec.md §4.6: a Franek-Jennings-Smyth-style generalization
// combining three pieces.
//
// Quick-reject. A non-trivial match (one that touches at least one action)
// must have some dimension k that is the very first dimension touched by the
// underlying accepting run. That dimension's action at b_k must therefore be
// directly enabled from some initial state on dimension k — i.e. it lies in
// firstSetDirect_k. A start vector b is only worth seeding if the automaton
// accepts trivially or some dimension has w_k[b_k] in firstSetDirect_k;
// candidatesForDim/nextCandidateTable build this list per dimension.
//
// Failure function. failure[k][q] is a KMP/Aho-Corasick-style fallback: on a
// dimension-k mismatch at state q, the state to retry the same action from
// without re-reading anything already consumed. Built once via BFS over the
// dimension-k transitions reachable from the initial states. fjsSweep uses it
// only to score dimensions in scheduleFJSDim; step does not fall back along
// it.
//
// Shift table. shiftTable[k][a] is the smallest offset at which action a can
// appear on dimension k along any accepting-prefix run, plus one — the
// furthest the sweep frontier can jump on dimension k without passing a
// position whose action might start a run. It paces fjsSweep's frontier: each
// tick advances by shift_k[w_k[frontier[k]+1]] instead of by one, batching
// several rounds of seeding together, though every intermediate start vector
// in a skipped range is still seeded so no match is lost.
//
// Seeding and extension are carried out by a single fjsSweep whose queue and
// visited set every candidate shares. Visited keys include the start vector,
// so each candidate's configurations are still explored separately.
func runFJS(n *automaton.NFAH, w *word.Words, cor *filter.CoR, budget *filter.BudgetFilter, stderr io.Writer) []MatchTuple {
	ex := newExplorer(n, w, cor, budget)
	out := newMatchSet()
	dims := n.Dimensions()

	kmpStart := time.Now()
	firstSetDirect := computeFirstSetDirect(n)
	failure := make([]map[automaton.StateID]automaton.StateID, dims)
	for k := 0; k < dims; k++ {
		failure[k] = computeFailure(n, k)
	}
	kmpElapsed := time.Since(kmpStart)

	qsStart := time.Now()
	shiftTable := make([]map[automaton.ActionID]int, dims)
	candidateSet := make([]map[int]bool, dims)
	for k := 0; k < dims; k++ {
		shiftTable[k] = computeShiftTable(n, k)
		candidateSet[k] = make(map[int]bool)
		for _, pos := range candidatesForDim(n, w, k, firstSetDirect[k]) {
			candidateSet[k][pos] = true
		}
	}
	qsElapsed := time.Since(qsStart)

	if stderr != nil {
		fmt.Fprintf(stderr, "fjs kmp precompute duration %s\n", kmpElapsed)
		fmt.Fprintf(stderr, "fjs quick_search scan duration %s\n", qsElapsed)
	}

	trivial := n.HasTrivialAcceptance()
	sweep := newFJSSweep(n, w, ex, failure, out)

	quickRejectOK := func(b Position) bool {
		if trivial {
			return true
		}
		for k, v := range b {
			if candidateSet[k][v] {
				return true
			}
		}
		return false
	}
	seed := func(b Position) {
		if !quickRejectOK(b) {
			return
		}
		sweep.seed(b)
	}

	seed(make(Position, dims))

	frontier := make([]int, dims)
	for {
		k := scheduleFJSDim(sweep, frontier, ex.lens)
		if k < 0 {
			break
		}

		next := frontier[k] + 1
		if next < ex.lens[k] {
			a := w.Get(k, next)
			if shift := shiftFor(shiftTable[k], a, ex.lens[k]+1); shift > 1 {
				next = frontier[k] + shift
				if next > ex.lens[k] {
					next = ex.lens[k]
				}
			}
		}
		for v := frontier[k] + 1; v <= next; v++ {
			frontier[k] = v
			seedNewlyReachable(frontier, dims, k, seed)
		}
	}

	return out.all()
}

// fjsThread is a single live configuration carried across the whole sweep,
// tagged with the start vector it was seeded from.
type fjsThread struct {
	state automaton.StateID
	pos   Position
	b     Position
}

// fjsSweep is the live set of the FJS sweep: every candidate start vector
// feeds into the same queue and visited set. Visited keys include the start
// vector (taggedConfigKey), so a configuration reached from one candidate is
// explored again when another candidate reaches it.
type fjsSweep struct {
	n       *automaton.NFAH
	w       *word.Words
	ex      *explorer
	failure []map[automaton.StateID]automaton.StateID
	out     *matchSet
	visited map[string]struct{}
	queue   []fjsThread
}

func newFJSSweep(n *automaton.NFAH, w *word.Words, ex *explorer, failure []map[automaton.StateID]automaton.StateID, out *matchSet) *fjsSweep {
	return &fjsSweep{n: n, w: w, ex: ex, failure: failure, out: out, visited: make(map[string]struct{})}
}

// seed injects (q0, b, b) for every initial state admitted at b, then drains
// the shared queue until no new configuration is added. drain rescans the
// queue from its start; threads of earlier candidates add nothing new, since
// their successors are already visited.
func (s *fjsSweep) seed(b Position) {
	for _, q0 := range s.n.InitialStates() {
		s.enqueue(q0, b, b)
	}
	s.drain()
}

func (s *fjsSweep) enqueue(state automaton.StateID, pos, b Position) {
	if !s.ex.admits(state, pos) {
		return
	}
	key := taggedConfigKey(state, pos, b)
	if _, ok := s.visited[key]; ok {
		return
	}
	s.visited[key] = struct{}{}
	s.queue = append(s.queue, fjsThread{state, pos.clone(), b.clone()})
}

func (s *fjsSweep) drain() {
	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		if s.n.IsFinal(cur.state) {
			s.out.add(tupleOf(cur.b, cur.pos))
		}
		for k := 0; k < len(cur.pos); k++ {
			if cur.pos[k] >= s.ex.lens[k] {
				continue
			}
			s.step(cur, k, s.w.Get(k, cur.pos[k]))
		}
	}
}

// step extends cur along dimension k on action a. A thread with no
// transition on (a, k) is dropped; step does not fall back along the failure
// chain, since a fallback state reached while keeping cur.b would report an
// interval from cur.b that the automaton does not accept.
func (s *fjsSweep) step(cur fjsThread, k int, a automaton.ActionID) {
	trans := s.n.OutgoingByDimAction(cur.state, k, a)
	if len(trans) == 0 {
		return
	}
	next := cur.pos.clone()
	next[k]++
	for _, t := range trans {
		s.enqueue(t.To, next, cur.b)
	}
}

// enabledTransitions counts, among threads this sweep has ever seen, how
// many have a dimension-k continuation (direct or via failure fallback) for
// their next action.
func (s *fjsSweep) enabledTransitions(k int) int {
	count := 0
	for _, t := range s.queue {
		if t.pos[k] >= s.ex.lens[k] {
			continue
		}
		a := s.w.Get(k, t.pos[k])
		state := t.state
		for {
			if len(s.n.OutgoingByDimAction(state, k, a)) > 0 {
				count++
				break
			}
			fb, ok := s.failure[k][state]
			if !ok || fb == state {
				break
			}
			state = fb
		}
	}
	return count
}

// scheduleFJSDim picks the dimension to advance next as the one with the
// fewest enabled transitions among live threads (spec.md §4.6: "to maximize
// shift opportunities"), ties favoring the smallest index. A dimension
// already fully advanced is never chosen.
func scheduleFJSDim(s *fjsSweep, frontier, lens []int) int {
	best := -1
	bestCount := -1
	for k := range frontier {
		if frontier[k] >= lens[k] {
			continue
		}
		count := s.enabledTransitions(k)
		if best < 0 || count < bestCount {
			best, bestCount = k, count
		}
	}
	return best
}

// computeFailure builds the KMP/Aho-Corasick-style fallback function for
// dimension k via BFS over the dimension's transitions: a direct child of an
// initial state fails back to that initial state (the base case), and every
// deeper state's failure is found by climbing its parent's failure chain
// until a transition on the same action exists.
func computeFailure(n *automaton.NFAH, k int) map[automaton.StateID]automaton.StateID {
	failure := make(map[automaton.StateID]automaton.StateID)
	roots := make(map[automaton.StateID]bool)
	var queue []automaton.StateID
	for _, q0 := range n.InitialStates() {
		if _, ok := failure[q0]; ok {
			continue
		}
		roots[q0] = true
		failure[q0] = q0
		queue = append(queue, q0)
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, t := range n.OutgoingByDim(p, k) {
			if _, ok := failure[t.To]; ok {
				continue
			}
			if roots[p] {
				failure[t.To] = p
			} else {
				failure[t.To] = fjsFallback(n, k, failure, roots, p, t.Action)
			}
			queue = append(queue, t.To)
		}
	}
	return failure
}

// fjsFallback climbs p's failure chain looking for a state with its own
// transition on (a, k), mirroring Aho-Corasick's "goto via fail"
// construction; it terminates at a root if no such state exists.
func fjsFallback(n *automaton.NFAH, k int, failure map[automaton.StateID]automaton.StateID, roots map[automaton.StateID]bool, p automaton.StateID, a automaton.ActionID) automaton.StateID {
	f := failure[p]
	for {
		if trans := n.OutgoingByDimAction(f, k, a); len(trans) > 0 {
			return trans[0].To
		}
		if roots[f] {
			return f
		}
		f = failure[f]
	}
}

// computeShiftTable builds the Quick-Search-style shift table for dimension
// k: shift_k[a] is one more than the minimum number of dimension-k
// transitions from an initial state to a transition consuming a — the
// earliest offset at which a could appear in an accepting-prefix run.
// Actions that never label a reachable dimension-k transition have no entry;
// callers fall back to a generous default via shiftFor.
func computeShiftTable(n *automaton.NFAH, k int) map[automaton.ActionID]int {
	depth := make(map[automaton.StateID]int)
	var queue []automaton.StateID
	for _, q0 := range n.InitialStates() {
		if _, ok := depth[q0]; ok {
			continue
		}
		depth[q0] = 0
		queue = append(queue, q0)
	}

	shift := make(map[automaton.ActionID]int)
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		for _, t := range n.OutgoingByDim(p, k) {
			if cur, ok := shift[t.Action]; !ok || depth[p]+1 < cur {
				shift[t.Action] = depth[p] + 1
			}
			if _, ok := depth[t.To]; !ok {
				depth[t.To] = depth[p] + 1
				queue = append(queue, t.To)
			}
		}
	}
	return shift
}

// shiftFor looks up shiftTable[a], defaulting to max when the action never
// appears on this dimension at all — no accepting run can ever use it, so
// the whole remaining window is safe to skip.
func shiftFor(shiftTable map[automaton.ActionID]int, a automaton.ActionID, defaultShift int) int {
	if s, ok := shiftTable[a]; ok {
		return s
	}
	return defaultShift
}

// computeFirstSetDirect returns, for each dimension k, the set of actions
// directly enabled from some initial state on dimension k (no closure over
// other dimensions — this is deliberately the weakest, cheapest-to-compute
// set that is still sound for the whole-tuple quick reject).
func computeFirstSetDirect(n *automaton.NFAH) []map[automaton.ActionID]bool {
	sets := make([]map[automaton.ActionID]bool, n.Dimensions())
	for k := range sets {
		sets[k] = make(map[automaton.ActionID]bool)
	}
	for _, q0 := range n.InitialStates() {
		for k := 0; k < n.Dimensions(); k++ {
			for _, t := range n.OutgoingByDim(q0, k) {
				sets[k][t.Action] = true
			}
		}
	}
	return sets
}

// candidatesForDim lists every position i in [0, n_k) such that w_k[i] is in
// firstSet — a position where dimension k could be the first dimension
// touched by some accepting run — skipping non-candidate positions via the
// jump table instead of visiting every index one at a time.
func candidatesForDim(n *automaton.NFAH, w *word.Words, k int, firstSet map[automaton.ActionID]bool) []int {
	nk := w.Len(k)
	next := nextCandidateTable(w, k, firstSet)

	var out []int
	for i := next[0]; i < nk; i = next[i+1] {
		out = append(out, i)
	}
	return out
}

// nextCandidateTable builds next[i] = smallest j >= i with w_k[j] in
// firstSet, or n_k if none exists (mirroring a Quick-Search shift table:
// a single backward pass gives O(1) lookahead at every position).
func nextCandidateTable(w *word.Words, k int, firstSet map[automaton.ActionID]bool) []int {
	nk := w.Len(k)
	next := make([]int, nk+1)
	next[nk] = nk
	for i := nk - 1; i >= 0; i-- {
		if firstSet[w.Get(k, i)] {
			next[i] = i
		} else {
			next[i] = next[i+1]
		}
	}
	return next
}
