// Package emit writes deduplicated match tuples to the documented text
// output format (spec.md §4.7, §6).
package emit

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hyppau/hyppau/matcher"
)

// Emitter accepts match tuples produced by a matcher run.
type Emitter interface {
	Emit(m matcher.MatchTuple) error
	Flush() error
}

// TextEmitter writes one line per distinct match tuple, fields
// space-separated in order b0 e0 b1 e1 ... b_{D-1} e_{D-1}. An I/O error is
// fatal for the run, per spec.md §4.7.
type TextEmitter struct {
	w    *bufio.Writer
	seen map[string]struct{}
}

// NewTextEmitter wraps w with buffered output (written through on Flush or
// when the buffer fills) and its own
// deduplication set, independent of any dedup already performed upstream by
// the matcher (so the emitter remains correct even if used standalone).
func NewTextEmitter(w io.Writer) *TextEmitter {
	return &TextEmitter{w: bufio.NewWriter(w), seen: make(map[string]struct{})}
}

// Emit writes m unless an equal tuple was already emitted.
func (e *TextEmitter) Emit(m matcher.MatchTuple) error {
	key := m.Key()
	if _, ok := e.seen[key]; ok {
		return nil
	}
	e.seen[key] = struct{}{}
	if _, err := fmt.Fprintln(e.w, m.String()); err != nil {
		return fmt.Errorf("emit: write failed: %w", err)
	}
	return nil
}

// Flush ensures buffered output reaches the underlying writer.
func (e *TextEmitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("emit: flush failed: %w", err)
	}
	return nil
}

// EmitAll emits every match in matches, then flushes. On the first error it
// stops emitting — partial output followed by failure is acceptable to the
// contract ("matchers never partially emit then fail" refers to upstream
// matching, not the emitter's own I/O boundary), but the error is always
// returned.
func EmitAll(e Emitter, matches []matcher.MatchTuple) error {
	for _, m := range matches {
		if err := e.Emit(m); err != nil {
			return err
		}
	}
	return e.Flush()
}

// QuietEmitter discards every match, backing the `-q` CLI flag.
type QuietEmitter struct{}

func (QuietEmitter) Emit(matcher.MatchTuple) error { return nil }
func (QuietEmitter) Flush() error                  { return nil }
