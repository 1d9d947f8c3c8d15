// Package actionfilter provides a cheap multi-pattern prefilter over raw
// bytes: it answers "does this byte stream contain any of the automaton's
// known actions at all?" in one linear scan.
//
// This plays the same role the teacher gives github.com/coregx/ahocorasick
// in meta/compile.go: a cheap candidate-finding pass. Its one caller,
// cmd/hyppau at -v, builds one Filter per dimension after the words are
// loaded and scans bytes rebuilt from the interned tokens.
package actionfilter

import "github.com/coregx/ahocorasick"

// Filter wraps a built Aho-Corasick automaton over an NFAH's per-dimension
// action alphabet, treating each action string as a literal byte pattern.
type Filter struct {
	automaton *ahocorasick.Automaton
	patterns  []string
}

// Build compiles a Filter over actions. An empty actions list yields a
// Filter that never reports a hit, which callers should treat as "nothing
// to prefilter on" rather than an error.
func Build(actions []string) (*Filter, error) {
	if len(actions) == 0 {
		return &Filter{}, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, a := range actions {
		builder.AddPattern([]byte(a))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Filter{automaton: auto, patterns: actions}, nil
}

// ContainsKnownAction reports whether raw contains any action byte-string
// this Filter was built from, anywhere in the stream. A false result is a
// sound reason to skip the stream entirely (spec.md's "unknown action ...
// produces no new match"); a true result only means tokenizing is worth
// attempting, not that a match will be found.
func (f *Filter) ContainsKnownAction(raw []byte) bool {
	if f.automaton == nil {
		return false
	}
	return f.automaton.IsMatch(raw)
}

// FirstKnownAction returns the byte offset of the first occurrence of any
// known action in raw, or -1 if none occurs.
func (f *Filter) FirstKnownAction(raw []byte) int {
	if f.automaton == nil {
		return -1
	}
	m := f.automaton.Find(raw, 0)
	if m == nil {
		return -1
	}
	return m.Start
}

// Patterns returns the action strings this Filter was built from.
func (f *Filter) Patterns() []string { return f.patterns }
