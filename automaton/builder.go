package automaton

import "github.com/hyppau/hyppau/internal/conv"

// Builder constructs an NFAH incrementally, the way nfa.Builder constructs a
// Thompson NFA: states and transitions are added freely (including cycles —
// there is no owning-reference restriction, only arenas and adjacency
// lists), then Build validates and freezes the result.
type Builder struct {
	dims int

	stateSeen map[StateID]bool
	numStates int
	initial   map[StateID]bool
	final     map[StateID]bool

	transitions []Transition
	order       []StateID // declaration order, for dense remapping
}

// NewBuilder creates a Builder for an automaton with the given dimension
// count. dims must be >= 1.
func NewBuilder(dims int) *Builder {
	return &Builder{
		dims:      dims,
		stateSeen: make(map[StateID]bool),
		initial:   make(map[StateID]bool),
		final:     make(map[StateID]bool),
	}
}

// AddState declares a state. initial/final mark membership in Q0/F.
// Returns ErrDuplicateState if id was already declared.
func (b *Builder) AddState(id StateID, initial, final bool) error {
	if b.stateSeen[id] {
		return &BuildError{Err: ErrDuplicateState, StateID: id}
	}
	b.stateSeen[id] = true
	b.order = append(b.order, id)
	b.numStates++
	if initial {
		b.initial[id] = true
	}
	if final {
		b.final[id] = true
	}
	return nil
}

// AddTransition declares (from, action, dim, to). Both endpoints must
// already have been declared via AddState, and dim must be in [0, D).
// Duplicate transitions (identical fields) are silently deduplicated at
// Build time, per spec.md §3.
func (b *Builder) AddTransition(from StateID, action ActionID, dim int, to StateID) error {
	if !b.stateSeen[from] {
		return &BuildError{Err: ErrUnknownState, StateID: from, Detail: "transition source"}
	}
	if !b.stateSeen[to] {
		return &BuildError{Err: ErrUnknownState, StateID: to, Detail: "transition target"}
	}
	if dim < 0 || dim >= b.dims {
		return &BuildError{Err: ErrDimensionOutOfRange, Detail: "transition dimension", StateID: InvalidState}
	}
	b.transitions = append(b.transitions, Transition{From: from, To: to, Action: action, Dim: dim})
	return nil
}

// Build validates and freezes the automaton, remapping declared state ids to
// a dense range [0, |Q|) in declaration order and building every index
// described in spec.md §4.1.
func (b *Builder) Build() (*NFAH, error) {
	if b.dims <= 0 {
		return nil, &BuildError{Err: ErrEmptyDimensions, StateID: InvalidState}
	}

	dense := make(map[StateID]StateID, len(b.order))
	for i, id := range b.order {
		dense[id] = StateID(conv.IntToUint32(i))
	}

	n := &NFAH{
		dims:                b.dims,
		final:               make([]bool, len(b.order)),
		outgoing:            make([][]Transition, len(b.order)),
		outgoingByDim:       make([][][]Transition, len(b.order)),
		outgoingByDimAction: make([]map[int]map[ActionID][]Transition, len(b.order)),
		incoming:            make([][]Transition, len(b.order)),
		alphabet:            make([]map[ActionID]struct{}, b.dims),
	}
	for k := range n.alphabet {
		n.alphabet[k] = make(map[ActionID]struct{})
	}
	for q := range n.outgoingByDim {
		n.outgoingByDim[q] = make([][]Transition, b.dims)
		n.outgoingByDimAction[q] = make(map[int]map[ActionID][]Transition, b.dims)
		for k := 0; k < b.dims; k++ {
			n.outgoingByDimAction[q][k] = make(map[ActionID][]Transition)
		}
	}

	for id := range b.initial {
		dq, ok := dense[id]
		if !ok {
			return nil, &BuildError{Err: ErrUnknownState, StateID: id, Detail: "initial state"}
		}
		n.initial = append(n.initial, dq)
	}
	for id := range b.final {
		dq, ok := dense[id]
		if !ok {
			return nil, &BuildError{Err: ErrUnknownState, StateID: id, Detail: "final state"}
		}
		n.final[dq] = true
	}

	seen := make(map[Transition]struct{}, len(b.transitions))
	for _, t := range b.transitions {
		from, ok := dense[t.From]
		if !ok {
			return nil, &BuildError{Err: ErrUnknownState, StateID: t.From}
		}
		to, ok := dense[t.To]
		if !ok {
			return nil, &BuildError{Err: ErrUnknownState, StateID: t.To}
		}
		dt := Transition{From: from, To: to, Action: t.Action, Dim: t.Dim}
		if _, dup := seen[dt]; dup {
			continue
		}
		seen[dt] = struct{}{}

		n.transitions = append(n.transitions, dt)
		n.outgoing[from] = append(n.outgoing[from], dt)
		n.outgoingByDim[from][dt.Dim] = append(n.outgoingByDim[from][dt.Dim], dt)
		n.outgoingByDimAction[from][dt.Dim][dt.Action] = append(n.outgoingByDimAction[from][dt.Dim][dt.Action], dt)
		n.incoming[to] = append(n.incoming[to], dt)
		n.alphabet[dt.Dim][dt.Action] = struct{}{}
	}

	return n, nil
}
