package automaton

import (
	"fmt"
	"io"

	"github.com/hyppau/hyppau/intern"
)

// WriteDOT renders the automaton as a Graphviz DOT digraph, labeling edges
// "action@dim" and double-circling final states, per the `-g` CLI flag of
// spec.md §6. table resolves action ids back to their source strings; pass
// nil to render raw numeric ids instead.
func WriteDOT(w io.Writer, n *NFAH, table *intern.Table) error {
	initialSet := make(map[StateID]bool, len(n.initial))
	for _, q := range n.initial {
		initialSet[q] = true
	}

	if _, err := fmt.Fprintln(w, "digraph NFAH {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\trankdir=LR;"); err != nil {
		return err
	}

	for q := 0; q < n.NumStates(); q++ {
		shape := "circle"
		if n.IsFinal(StateID(q)) {
			shape = "doublecircle"
		}
		style := ""
		if initialSet[StateID(q)] {
			style = ` style="bold"`
		}
		if _, err := fmt.Fprintf(w, "\t%d [shape=%s%s];\n", q, shape, style); err != nil {
			return err
		}
	}

	for _, t := range n.transitions {
		label := actionLabel(t.Action, table)
		if _, err := fmt.Fprintf(w, "\t%d -> %d [label=%q];\n", t.From, t.To, fmt.Sprintf("%s@%d", label, t.Dim)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func actionLabel(a ActionID, table *intern.Table) string {
	if table == nil {
		return fmt.Sprintf("#%d", a)
	}
	return table.String(uint32(a))
}
