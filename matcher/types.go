// Package matcher implements the four hyper pattern matching strategies
// (Naive, Online, FJS, and their CoR-filtered variants) over an NFAH and its
// D input words. All modes share one admission filter (explorer.admits) and
// one match dedup set; Naive explores with explorer.exploreFrom, while Online
// and FJS each drain their own live queue.
package matcher

import (
	"strconv"
	"strings"

	"github.com/hyppau/hyppau/automaton"
)

// Position is a D-dimensional cursor vector, p_k in [0, n_k] per dimension.
type Position []int

// Equal reports whether p and other have identical components.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for k := range p {
		if p[k] != other[k] {
			return false
		}
	}
	return true
}

func (p Position) clone() Position {
	c := make(Position, len(p))
	copy(c, p)
	return c
}

// Interval is one dimension's half-open matched sub-range [B, E).
type Interval struct {
	B, E int
}

// MatchTuple is one accepting match: one half-open interval per dimension.
type MatchTuple struct {
	Intervals []Interval
}

// Key returns a value comparable with ==, suitable for map-based
// deduplication (spec.md §4.7, "equality is tuple equality on the 2D
// integers"). Go forbids slice fields in map keys, so Key flattens the
// tuple into a string of decimal fields, "b,e;" per dimension.
func (m MatchTuple) Key() string {
	buf := make([]byte, 0, len(m.Intervals)*2*8)
	for _, iv := range m.Intervals {
		buf = strconv.AppendInt(buf, int64(iv.B), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(iv.E), 10)
		buf = append(buf, ';')
	}
	return string(buf)
}

// String renders the documented "b0 e0 b1 e1 ... " textual form (spec.md §6).
func (m MatchTuple) String() string {
	fields := make([]string, 0, len(m.Intervals)*2)
	for _, iv := range m.Intervals {
		fields = append(fields, strconv.Itoa(iv.B), strconv.Itoa(iv.E))
	}
	return strings.Join(fields, " ")
}

// Configuration is a point in the exploration graph: an NFAH state paired
// with the current per-dimension cursor position.
type Configuration struct {
	State automaton.StateID
	Pos   Position
}
