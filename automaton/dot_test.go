package automaton

import (
	"strings"
	"testing"

	"github.com/hyppau/hyppau/intern"
)

func TestWriteDOT(t *testing.T) {
	table := intern.NewTable()
	action := ActionID(table.Intern("open"))

	b := NewBuilder(1)
	_ = b.AddState(0, true, false)
	_ = b.AddState(1, false, true)
	if err := b.AddTransition(0, action, 0, 1); err != nil {
		t.Fatal(err)
	}
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := WriteDOT(&sb, n, table); err != nil {
		t.Fatalf("WriteDOT() = %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "digraph NFAH") {
		t.Error("output should contain digraph header")
	}
	if !strings.Contains(out, "doublecircle") {
		t.Error("final state should render as doublecircle")
	}
	if !strings.Contains(out, `"open@0"`) {
		t.Errorf("edge label should be %q, got %s", "open@0", out)
	}
}

func TestWriteDOT_NilTable(t *testing.T) {
	b := NewBuilder(1)
	_ = b.AddState(0, true, true)
	if err := b.AddTransition(0, 3, 0, 0); err != nil {
		t.Fatal(err)
	}
	n, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := WriteDOT(&sb, n, nil); err != nil {
		t.Fatalf("WriteDOT() = %v", err)
	}
	if !strings.Contains(sb.String(), "#3@0") {
		t.Errorf("expected numeric fallback label, got %s", sb.String())
	}
}
