// Package word holds the D input words read for one matching run: per-
// dimension sequences of interned action tokens with O(1) indexed access.
package word

import (
	"errors"
	"strconv"
)

// ErrNoStreams indicates LoadWords was called with zero readers, which
// would make D ambiguous (the dimension count is fixed by the automaton,
// not the word loader, but a run needs at least one dimension of input).
var ErrNoStreams = errors.New("word: at least one input stream is required")

// ReadError wraps an I/O failure encountered while reading dimension Dim.
type ReadError struct {
	Dim int
	Err error
}

func (e *ReadError) Error() string {
	return "word: reading dimension " + strconv.Itoa(e.Dim) + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }
