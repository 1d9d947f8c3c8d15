package hyppau

import (
	"io"
	"strings"
	"testing"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/intern"
	"github.com/hyppau/hyppau/matcher"
	"github.com/hyppau/hyppau/word"
)

func TestEngine_Match(t *testing.T) {
	table := intern.NewTable()
	b := automaton.NewBuilder(1)
	_ = b.AddState(0, true, false)
	_ = b.AddState(1, false, true)
	act := automaton.ActionID(table.Intern("go"))
	if err := b.AddTransition(0, act, 0, 1); err != nil {
		t.Fatal(err)
	}
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	w, err := word.LoadWords([]io.Reader{strings.NewReader("go\n")}, table)
	if err != nil {
		t.Fatal(err)
	}

	e := New(n, w)
	matches, err := e.Match(matcher.Naive, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if e.Automaton() != n {
		t.Error("Automaton() should return the bound automaton")
	}
	if e.Words() != w {
		t.Error("Words() should return the bound words")
	}
}
