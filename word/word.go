package word

import (
	"bufio"
	"io"
	"strings"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/intern"
)

// Word is one dimension's materialized action sequence.
type Word struct {
	actions []automaton.ActionID
}

// Len returns n_k, the number of actions in this word.
func (w Word) Len() int { return len(w.actions) }

// At returns the action id at position i. 0 <= i < Len().
func (w Word) At(i int) automaton.ActionID { return w.actions[i] }

// Words holds the D input words for one run plus the action interning table
// shared with the automaton that was (or will be) loaded alongside them.
type Words struct {
	dims  []Word
	table *intern.Table
}

// Dimensions returns D, the number of input words loaded.
func (w *Words) Dimensions() int { return len(w.dims) }

// Get returns the action id at w_k[i]. Panics if k or i is out of range,
// matching Word.At and the teacher's index-trusting convention for
// already-validated hot paths.
func (w *Words) Get(k, i int) automaton.ActionID { return w.dims[k].At(i) }

// Len returns n_k, the length of dimension k.
func (w *Words) Len(k int) int { return w.dims[k].Len() }

// Table returns the shared interning table, so callers can resolve action
// ids back to their source strings (e.g. for diagnostics).
func (w *Words) Table() *intern.Table { return w.table }

// LoadWords reads one action per non-empty line (after trimming leading and
// trailing whitespace) from each reader, in order, producing one Word per
// reader. Actions are interned into table — callers matching against an
// NFAH must pass the same table used to load it, so that action equality
// reduces to id equality across the whole run (spec.md §3).
//
// Each stream is read fully and exactly once; nothing is re-read.
func LoadWords(readers []io.Reader, table *intern.Table) (*Words, error) {
	if len(readers) == 0 {
		return nil, ErrNoStreams
	}

	dims := make([]Word, len(readers))
	for k, r := range readers {
		actions, err := loadOne(r, table)
		if err != nil {
			return nil, &ReadError{Dim: k, Err: err}
		}
		dims[k] = Word{actions: actions}
	}

	return &Words{dims: dims, table: table}, nil
}

func loadOne(r io.Reader, table *intern.Table) ([]automaton.ActionID, error) {
	var actions []automaton.ActionID
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		actions = append(actions, automaton.ActionID(table.Intern(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return actions, nil
}
