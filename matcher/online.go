package matcher

import (
	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/filter"
	"github.com/hyppau/hyppau/word"
)

// runOnline implements spec.md §4.5's synchronized sweep. A frontier is
// advanced one dimension at a time — always the least-advanced dimension,
// ties broken by smallest index — and every start vector that becomes
// reachable at the new frontier is seeded into a single live configuration
// set L shared across the whole sweep. A newly-seeded (q0, b) is pushed onto
// the same queue that holds the configurations of every earlier b, and the
// queue is drained until nothing new is added. Visited keys include b, so
// configurations reached from different start vectors are never merged:
// every start vector is still explored in full, as in Naive, only in a
// different order.
func runOnline(n *automaton.NFAH, w *word.Words, cor *filter.CoR, budget *filter.BudgetFilter) []MatchTuple {
	ex := newExplorer(n, w, cor, budget)
	out := newMatchSet()

	dims := len(ex.lens)
	frontier := make([]int, dims)
	live := newOnlineLiveSet(n, w, ex, out)

	// b = (0,...,0) is reachable before any dimension has advanced.
	live.seed(make(Position, dims))

	for {
		k := leastAdvancedDim(frontier, ex.lens)
		if k < 0 {
			break // every dimension is fully advanced
		}
		frontier[k]++

		seedNewlyReachable(frontier, dims, k, live.seed)
	}

	return out.all()
}

// onlineConfig is a single entry in the live set L: an automaton state and
// position, tagged with the start vector it was seeded from.
type onlineConfig struct {
	state automaton.StateID
	pos   Position
	b     Position
}

// onlineLiveSet is the incrementally-updated configuration set L of
// spec.md §4.5. Every start vector the sweep reaches seeds into the same
// queue and visited set; after each seed the queue is drained, from its
// start, until no new configuration is added. Visited keys are tagged with
// the start vector, so no configuration is shared between two start vectors.
type onlineLiveSet struct {
	n       *automaton.NFAH
	w       *word.Words
	ex      *explorer
	out     *matchSet
	visited map[string]struct{}
	queue   []onlineConfig
}

func newOnlineLiveSet(n *automaton.NFAH, w *word.Words, ex *explorer, out *matchSet) *onlineLiveSet {
	return &onlineLiveSet{n: n, w: w, ex: ex, out: out, visited: make(map[string]struct{})}
}

func (l *onlineLiveSet) seed(b Position) {
	for _, q0 := range l.n.InitialStates() {
		l.enqueue(q0, b, b)
	}
	l.drain()
}

func (l *onlineLiveSet) enqueue(state automaton.StateID, pos, b Position) {
	if !l.ex.admits(state, pos) {
		return
	}
	key := taggedConfigKey(state, pos, b)
	if _, ok := l.visited[key]; ok {
		return
	}
	l.visited[key] = struct{}{}
	l.queue = append(l.queue, onlineConfig{state, pos.clone(), b.clone()})
}

func (l *onlineLiveSet) drain() {
	for head := 0; head < len(l.queue); head++ {
		cur := l.queue[head]
		if l.n.IsFinal(cur.state) {
			l.out.add(tupleOf(cur.b, cur.pos))
		}
		for k := 0; k < len(cur.pos); k++ {
			if cur.pos[k] >= l.ex.lens[k] {
				continue
			}
			a := l.w.Get(k, cur.pos[k])
			next := cur.pos.clone()
			next[k]++
			for _, t := range l.n.OutgoingByDimAction(cur.state, k, a) {
				l.enqueue(t.To, next, cur.b)
			}
		}
	}
}

// leastAdvancedDim returns the dimension with the smallest frontier value
// that still has room to advance, breaking ties by smallest index. Returns
// -1 once every dimension has reached its length.
func leastAdvancedDim(frontier, lens []int) int {
	best := -1
	for k := range frontier {
		if frontier[k] >= lens[k] {
			continue
		}
		if best < 0 || frontier[k] < frontier[best] {
			best = k
		}
	}
	return best
}

// seedNewlyReachable seeds every start vector whose dimension-advanced
// component is exactly the new frontier value for k, and whose other
// components range over everything already reached on their dimension
// (0..frontier[j]). These are exactly the vectors that become newly
// reachable now that dimension k's cursor has advanced to frontier[k].
func seedNewlyReachable(frontier []int, dims, k int, seed func(Position)) {
	b := make(Position, dims)
	var rec func(j int)
	rec = func(j int) {
		if j == dims {
			seed(b.clone())
			return
		}
		if j == k {
			b[j] = frontier[j]
			rec(j + 1)
			return
		}
		for v := 0; v <= frontier[j]; v++ {
			b[j] = v
			rec(j + 1)
		}
	}
	rec(0)
}

func encodePosition(p Position) []byte {
	buf := make([]byte, 0, len(p)*4)
	for _, v := range p {
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return buf
}
