package tm

import (
	"fmt"

	"github.com/brunellolabs/revta"
)

// RuleTable is an immutable, deterministic map from (state, read symbol) to
// the transition that fires there. A missing entry means implicit reject
// during forward parsing.
type RuleTable[S, I, O comparable] struct {
	byFrom map[FromKey[S, I, O]]Transition[S, I, O]
	all    []Transition[S, I, O] // insertion order; the reverse index is built from this
}

// NewRuleTable builds a rule table from a flat transition list. Construction
// enforces two invariants: each transition's shape (see Transition.validate)
// and at most one transition per (state, read symbol) pair.
func NewRuleTable[S, I, O comparable](transitions []Transition[S, I, O]) (*RuleTable[S, I, O], error) {
	rt := &RuleTable[S, I, O]{
		byFrom: make(map[FromKey[S, I, O]]Transition[S, I, O], len(transitions)),
		all:    make([]Transition[S, I, O], 0, len(transitions)),
	}
	for _, t := range transitions {
		if err := t.validate(); err != nil {
			return nil, err
		}
		key := t.from()
		if _, dup := rt.byFrom[key]; dup {
			return nil, fmt.Errorf("tm: duplicate transition for state %v reading %s", t.From, t.Read)
		}
		rt.byFrom[key] = t
		rt.all = append(rt.all, t)
	}
	return rt, nil
}

func (rt *RuleTable[S, I, O]) lookup(state S, read revta.TapeSymbol[I, O]) (Transition[S, I, O], bool) {
	t, ok := rt.byFrom[FromKey[S, I, O]{State: state, Read: read}]
	return t, ok
}
