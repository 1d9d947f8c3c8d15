package automaton

import "fmt"

// StateID uniquely identifies an NFAH state. Ids are dense: 0..|Q|-1 after
// a Builder.Build call, mirroring the teacher's nfa.StateID convention.
type StateID uint32

// InvalidState marks the absence of a state, analogous to nfa.InvalidState.
const InvalidState StateID = 0xFFFFFFFF

// ActionID is an interned action token, shared across all dimensions of a
// single run (see package word for the interning table).
type ActionID uint32

// Transition is one edge of the NFAH: consuming Action on dimension Dim
// moves from From to To.
type Transition struct {
	From   StateID
	To     StateID
	Action ActionID
	Dim    int
}

// NFAH is the immutable, frozen automaton over hyper-events: D parallel
// dimensions, a dense state set, initial/final subsets, and a transition
// relation indexed for O(1)-ish successor/predecessor lookups.
//
// NFAH is never mutated after Builder.Build returns it; it is safe to share
// by reference across any number of concurrent matcher runs (§5).
type NFAH struct {
	dims int

	initial []StateID
	final   []bool // final[q] == true iff q is a final state

	transitions []Transition

	// outgoing[q] lists every transition leaving q.
	outgoing [][]Transition
	// outgoingByDim[q][k] lists transitions leaving q on dimension k.
	outgoingByDim [][][]Transition
	// outgoingByDimAction[q][k] indexes transitions leaving q on dimension k
	// by the action they consume, for O(1) lookup during matching.
	outgoingByDimAction []map[int]map[ActionID][]Transition
	// incoming[q] lists every transition entering q, for the co-reachability
	// filter's reverse search.
	incoming [][]Transition

	// alphabet[k] is the set of actions that label some transition on
	// dimension k anywhere in the automaton (not to be confused with the
	// per-input alphabet Σ_k computed by package filter from the words
	// actually supplied at run time).
	alphabet []map[ActionID]struct{}
}

// Dimensions returns D, the fixed dimension count.
func (n *NFAH) Dimensions() int { return n.dims }

// NumStates returns |Q|.
func (n *NFAH) NumStates() int { return len(n.final) }

// IsFinal reports whether q is a final state.
func (n *NFAH) IsFinal(q StateID) bool {
	if int(q) >= len(n.final) {
		return false
	}
	return n.final[q]
}

// InitialStates returns the (possibly empty) set of initial states.
// The returned slice must not be mutated by callers.
func (n *NFAH) InitialStates() []StateID { return n.initial }

// HasTrivialAcceptance reports whether some initial state is also final,
// in which case every start vector trivially matches the empty interval on
// every dimension (invariant 5 of spec.md §8).
func (n *NFAH) HasTrivialAcceptance() bool {
	for _, q := range n.initial {
		if n.IsFinal(q) {
			return true
		}
	}
	return false
}

// Outgoing returns every transition leaving q.
func (n *NFAH) Outgoing(q StateID) []Transition {
	if int(q) >= len(n.outgoing) {
		return nil
	}
	return n.outgoing[q]
}

// OutgoingByDim returns every transition leaving q on dimension k.
func (n *NFAH) OutgoingByDim(q StateID, k int) []Transition {
	if int(q) >= len(n.outgoingByDim) || k < 0 || k >= n.dims {
		return nil
	}
	return n.outgoingByDim[q][k]
}

// OutgoingByDimAction returns every transition leaving q on dimension k that
// consumes action a — the hot-path lookup used by every matcher.
func (n *NFAH) OutgoingByDimAction(q StateID, k int, a ActionID) []Transition {
	if int(q) >= len(n.outgoingByDimAction) || k < 0 || k >= n.dims {
		return nil
	}
	byAction := n.outgoingByDimAction[q][k]
	if byAction == nil {
		return nil
	}
	return byAction[a]
}

// Predecessors returns every transition entering q, used by the
// co-reachability filter's reverse breadth-first search.
func (n *NFAH) Predecessors(q StateID) []Transition {
	if int(q) >= len(n.incoming) {
		return nil
	}
	return n.incoming[q]
}

// AlphabetOf returns the set of actions appearing on dimension k anywhere in
// the automaton. The returned map must not be mutated.
func (n *NFAH) AlphabetOf(k int) map[ActionID]struct{} {
	if k < 0 || k >= n.dims {
		return nil
	}
	return n.alphabet[k]
}

// String renders a short human-readable summary, in the style of
// nfa.NFA.String.
func (n *NFAH) String() string {
	return fmt.Sprintf("NFAH{dims: %d, states: %d, initial: %d, transitions: %d}",
		n.dims, len(n.final), len(n.initial), len(n.transitions))
}
