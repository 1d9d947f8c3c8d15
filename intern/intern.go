// Package intern provides the shared action-token interning table used by
// both the automaton (transition labels) and the input words (logged
// actions), so that equality of actions across dimensions and across the
// automaton reduces to integer equality (spec.md §3, "Action token").
package intern

// Table interns byte-exact, case-sensitive action strings to dense
// non-negative ids. It is append-only: once assigned, an id never changes
// and never gets reused, mirroring the teacher's treatment of StateID
// assignment as a monotonically growing dense range.
type Table struct {
	ids     map[string]uint32
	strings []string
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{ids: make(map[string]uint32)}
}

// Intern returns the id for s, assigning a new one if s has not been seen
// before. Comparison is exact byte equality — no Unicode normalization or
// case-folding is performed (spec.md Non-goals).
func (t *Table) Intern(s string) uint32 {
	if id, ok := t.ids[s]; ok {
		return id
	}
	id := uint32(len(t.strings))
	t.ids[s] = id
	t.strings = append(t.strings, s)
	return id
}

// Lookup returns the id already assigned to s and true, or (0, false) if s
// has never been interned. Unlike Intern, this never assigns a new id.
func (t *Table) Lookup(s string) (uint32, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// String returns the action string for a previously interned id.
// Panics if id is out of range, matching the package's invariant that ids
// are only ever produced by this table.
func (t *Table) String(id uint32) string {
	return t.strings[id]
}

// Len returns the number of distinct actions interned so far.
func (t *Table) Len() int {
	return len(t.strings)
}
