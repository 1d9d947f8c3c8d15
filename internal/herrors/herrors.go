// Package herrors classifies every error the hyppau CLI can report into the
// five kinds of spec.md §7, so the caller (cmd/hyppau) can pick the right
// exit code and diagnostic line without re-deriving the kind from the
// underlying package error each time, mirroring how the teacher's
// CompileError/BuildError wrap a lower-level cause for diagnostics (see
// nfa/error.go, meta/config.go).
package herrors

import (
	"errors"
	"fmt"
)

// Kind is one of the five error classes of spec.md §7.
type Kind int

const (
	// ConfigError is a bad CLI combination: zero -i, missing -f, an
	// unparseable -m value.
	ConfigError Kind = iota
	// IoError is a failure to open, read, or write a file.
	IoError
	// ParseError is malformed JSON or a malformed log line.
	ParseError
	// SemanticError is a structurally valid but inconsistent automaton or
	// input set: dimension mismatch, unknown state id, dimension index out
	// of range.
	SemanticError
	// InternalInvariantViolated should never escape a shipped build; its
	// presence indicates a bug in the core rather than bad input.
	InternalInvariantViolated
)

// String renders the kind for diagnostic output.
func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "config error"
	case IoError:
		return "I/O error"
	case ParseError:
		return "parse error"
	case SemanticError:
		return "semantic error"
	case InternalInvariantViolated:
		return "internal invariant violated"
	default:
		return fmt.Sprintf("error(%d)", int(k))
	}
}

// ExitCode returns the process exit code spec.md §7 assigns to errors of
// this kind: 1 for usage/I/O/parse failures, 2 for semantic errors. An
// InternalInvariantViolated also exits 1 — it is a bug report, not a usage
// distinction the caller needs to act on differently.
func (k Kind) ExitCode() int {
	if k == SemanticError {
		return 2
	}
	return 1
}

// Error wraps an underlying cause with the Kind the CLI should report it
// as. Unwrap exposes the cause so callers can still use errors.Is/As against
// the originating package's sentinel (e.g. automaton.ErrUnknownState).
type Error struct {
	Kind Kind
	Err  error
}

// New classifies err as kind, wrapping it for diagnostic rendering.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf is New with a formatted message in place of a pre-built error.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Error implements the error interface, rendering "<kind>: <cause>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind err was classified as, defaulting to
// InternalInvariantViolated for any error that was never wrapped by this
// package — an unclassified error reaching the CLI boundary is itself a bug,
// per spec.md §7's policy that matching never raises unexpected errors.
func KindOf(err error) Kind {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind
	}
	return InternalInvariantViolated
}
