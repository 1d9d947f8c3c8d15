package automaton

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyppau/hyppau/intern"
)

// jsonState and jsonTransition mirror the strict NFAH JSON schema of
// spec.md §6. Unknown fields are rejected by the decoder, not by the struct
// shape, so no json:"-" bookkeeping is needed here.
type jsonState struct {
	ID        int  `json:"id"`
	IsInitial bool `json:"is_initial"`
	IsFinal   bool `json:"is_final"`
}

type jsonTransition struct {
	From  int          `json:"from"`
	To    int          `json:"to"`
	Label []jsonLabel_ `json:"label"`
}

// jsonLabel_ decodes either element of the heterogeneous ["action", dim]
// pair: label[0] must be a JSON string, label[1] must be a JSON number.
type jsonLabel_ struct {
	asString string
	asInt    int
	isString bool
}

func (l *jsonLabel_) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.asString, l.isString = s, true
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		l.asInt = i
		return nil
	}
	return fmt.Errorf("%w: transition label element is neither string nor number", ErrMalformedJSON)
}

type jsonDoc struct {
	Dimensions  int              `json:"dimensions"`
	States      []jsonState      `json:"states"`
	Transitions []jsonTransition `json:"transitions"`
}

// LoadJSON parses an NFAH document in the strict schema of spec.md §6 and
// builds the frozen automaton. Action strings are interned into table,
// which the caller should share with the input-word loader (package word)
// so that actions compare equal by id across the whole run.
//
// Unknown top-level or nested fields are rejected (DisallowUnknownFields),
// matching the "strict; unknown fields rejected" contract.
func LoadJSON(r io.Reader, table *intern.Table) (*NFAH, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc jsonDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedJSON)
	}

	if doc.Dimensions <= 0 {
		return nil, &BuildError{Err: ErrEmptyDimensions, StateID: InvalidState}
	}

	b := NewBuilder(doc.Dimensions)
	for _, s := range doc.States {
		if err := b.AddState(StateID(s.ID), s.IsInitial, s.IsFinal); err != nil {
			return nil, err
		}
	}
	for _, t := range doc.Transitions {
		if len(t.Label) != 2 || !t.Label[0].isString || t.Label[1].isString {
			return nil, fmt.Errorf("%w: transition label must be [string, int]", ErrMalformedJSON)
		}
		action := ActionID(table.Intern(t.Label[0].asString))
		dim := t.Label[1].asInt
		if err := b.AddTransition(StateID(t.From), action, dim, StateID(t.To)); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
