package tm

import "sync"

// Machine is an immutable linear-bounded Turing machine: a start state, a
// deterministic rule table, and a lazily-built, memoised reverse index. The
// zero value is not usable; build one with NewMachine.
type Machine[S, I, O comparable] struct {
	start S
	rules *RuleTable[S, I, O]

	indexOnce sync.Once
	index     *ReverseIndex[S, I, O]
}

// NewMachine validates transitions (shape and from-key uniqueness, see
// RuleTable) and returns a Machine starting in state start.
func NewMachine[S, I, O comparable](start S, transitions []Transition[S, I, O]) (*Machine[S, I, O], error) {
	rt, err := NewRuleTable(transitions)
	if err != nil {
		return nil, err
	}
	return &Machine[S, I, O]{start: start, rules: rt}, nil
}

// reverseIndex returns the machine's reverse index, building it on first
// use. The build is idempotent and safe under concurrent callers.
func (m *Machine[S, I, O]) reverseIndex() *ReverseIndex[S, I, O] {
	m.indexOnce.Do(func() {
		m.index = buildReverseIndex(m.rules)
		tracer().Debugf("built reverse index for %d transitions", len(m.rules.all))
	})
	return m.index
}

// Parse runs the machine forward over input until a terminal state, and
// reports whether it terminated in Accept.
func (m *Machine[S, I, O]) Parse(input []I) bool {
	c := forParsing(m, input)
	for !c.state.IsTerminal() {
		c = c.step()
	}
	tracer().Debugf("parse of length %d terminated in %s", len(input), c.state)
	return c.state.IsAccept()
}

// Generate returns a lazily-evaluated, depth-first stream of input lists
// the machine accepts, each of length at most maxTapeLength. Consume it by
// repeatedly calling Next until it returns ok == false; do not materialise
// it in full, since for most machines the accepted language is infinite
// absent the length bound.
func (m *Machine[S, I, O]) Generate(maxTapeLength int) *GenerateIterator[S, I, O] {
	return newGenerateIterator(m, maxTapeLength)
}
