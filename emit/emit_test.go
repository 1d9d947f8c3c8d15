package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hyppau/hyppau/matcher"
)

func tuple(b0, e0, b1, e1 int) matcher.MatchTuple {
	return matcher.MatchTuple{Intervals: []matcher.Interval{{B: b0, E: e0}, {B: b1, E: e1}}}
}

func TestTextEmitter_WritesDocumentedFormat(t *testing.T) {
	var buf bytes.Buffer
	e := NewTextEmitter(&buf)
	if err := EmitAll(e, []matcher.MatchTuple{tuple(0, 1, 2, 4)}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0 1 2 4\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTextEmitter_Dedup(t *testing.T) {
	var buf bytes.Buffer
	e := NewTextEmitter(&buf)
	matches := []matcher.MatchTuple{tuple(0, 1, 0, 1), tuple(0, 1, 0, 1), tuple(1, 2, 1, 2)}
	if err := EmitAll(e, matches); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
}

type erroringWriter struct{}

func (erroringWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextEmitter_PropagatesWriteError(t *testing.T) {
	e := NewTextEmitter(erroringWriter{})
	err := EmitAll(e, []matcher.MatchTuple{tuple(0, 1, 0, 1)})
	if err == nil {
		t.Fatal("expected write error to propagate")
	}
}

func TestQuietEmitter_DiscardsEverything(t *testing.T) {
	var q QuietEmitter
	if err := EmitAll(q, []matcher.MatchTuple{tuple(0, 1, 0, 1)}); err != nil {
		t.Fatal(err)
	}
}
