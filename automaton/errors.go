// Package automaton implements the NFAH (nondeterministic finite automaton
// over hyper-events): an immutable graph of states whose transitions each
// consume one action from exactly one dimension.
package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Builder.Build and LoadJSON.
var (
	// ErrEmptyDimensions indicates the automaton declared zero dimensions.
	ErrEmptyDimensions = errors.New("automaton: dimension count must be at least 1")

	// ErrUnknownState indicates a transition or id set referenced a state
	// that was never declared.
	ErrUnknownState = errors.New("automaton: unknown state id")

	// ErrDuplicateState indicates the same state id was declared twice.
	ErrDuplicateState = errors.New("automaton: duplicate state id")

	// ErrDimensionOutOfRange indicates a transition's dimension index fell
	// outside [0, D).
	ErrDimensionOutOfRange = errors.New("automaton: dimension index out of range")

	// ErrMalformedJSON indicates the input could not be parsed as a valid
	// NFAH document (strict schema, unknown fields rejected).
	ErrMalformedJSON = errors.New("automaton: malformed NFAH document")
)

// BuildError wraps a build-time failure with the offending state or
// transition for diagnostics, following the teacher's BuildError/CompileError
// shape (nfa/error.go).
type BuildError struct {
	Err     error
	Detail  string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("%v: state %d: %s", e.Err, e.StateID, e.Detail)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Detail)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *BuildError) Unwrap() error {
	return e.Err
}
