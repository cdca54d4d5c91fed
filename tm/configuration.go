package tm

import "github.com/brunellolabs/revta"

// Configuration is a snapshot of a machine at one instant: which machine,
// which state, and the tape at that moment. Configurations are persistent
// value types; every operation below returns a fresh one rather than
// mutating the receiver.
type Configuration[S, I, O comparable] struct {
	machine *Machine[S, I, O]
	state   revta.MachineState[S]
	tape    Tape[I, O]
}

// forParsing builds the configuration a forward parse starts from: the
// machine's start state, over a bounded tape holding input.
func forParsing[S, I, O comparable](m *Machine[S, I, O], input []I) Configuration[S, I, O] {
	return Configuration[S, I, O]{
		machine: m,
		state:   revta.NonTerminal(m.start),
		tape:    NewBoundedTape[I, O](input),
	}
}

// forGenerating builds the seed configuration a reverse search starts
// from: Accept, over a completely empty, unbounded tape.
func forGenerating[S, I, O comparable](m *Machine[S, I, O]) Configuration[S, I, O] {
	return Configuration[S, I, O]{
		machine: m,
		state:   revta.Accept[S](),
		tape:    NewUnboundedTape[I, O](),
	}
}

// State returns the configuration's machine state.
func (c Configuration[S, I, O]) State() revta.MachineState[S] { return c.state }

// Tape returns the configuration's tape.
func (c Configuration[S, I, O]) Tape() Tape[I, O] { return c.tape }

// step runs one forward transition. If state is already terminal it is a
// no-op. A missing rule terminates in Reject, not an error: spec.md §7
// treats "no matching transition" as ordinary forward-parse behaviour.
func (c Configuration[S, I, O]) step() Configuration[S, I, O] {
	if c.state.IsTerminal() {
		return c
	}
	head, ok := c.tape.Head()
	if !ok {
		panic("tm: head undefined during forward step")
	}
	t, found := c.machine.rules.lookup(c.state.State(), head)
	if !found {
		return Configuration[S, I, O]{c.machine, revta.Reject[S](), c.tape}
	}
	tape := c.tape
	if t.Write != nil {
		tape = tape.Write(*t.Write)
	}
	switch t.Move {
	case revta.Left:
		tape = tape.MoveLeft()
	case revta.Right:
		tape = tape.MoveRight()
	}
	return Configuration[S, I, O]{c.machine, t.nextState(), tape}
}

// previousConfigurations enumerates every configuration that could have
// produced c under some rule of c.machine, dropping any whose tape would
// exceed maxTapeLength.
//
// For each candidate transition t, the predecessor tape is built by first
// undoing t's motion — the cursor moves in the direction *opposite* t.Move,
// since the head is currently sitting where t left it after moving — and
// then overlaying the cell t originally read: a marker read latches the
// corresponding boundary flag, anything else is written back verbatim.
// Writing back the unmodified read value (rather than t's write) is what
// lets an Input symbol appear on a reverse-generated tape at all: forward
// execution can only ever write an Output.
//
// The seed configuration built by forGenerating has an undefined head (its
// tape has never been touched); ri.predecessors handles that directly by
// falling back to its unrestricted candidate lists.
func (c Configuration[S, I, O]) previousConfigurations(maxTapeLength int) []Configuration[S, I, O] {
	left, hasLeft := c.tape.Left()
	head, hasHead := c.tape.Head()
	right, hasRight := c.tape.Right()
	ri := c.machine.reverseIndex()
	candidates := ri.predecessors(predKey[S, I, O]{
		next: c.state, left: left, head: head, right: right,
		hasLeft: hasLeft, hasHead: hasHead, hasRight: hasRight,
	})

	out := make([]Configuration[S, I, O], 0, len(candidates))
	for _, t := range candidates {
		tape := c.tape
		switch t.Move {
		case revta.Right:
			tape = tape.MoveLeft()
		case revta.Left:
			tape = tape.MoveRight()
		}
		switch {
		case t.Read.IsLeftMarker():
			tape = tape.BindLeft()
		case t.Read.IsRightMarker():
			tape = tape.BindRight()
		default:
			tape = tape.overlayHead(t.Read)
		}
		if tape.Size() > maxTapeLength {
			continue
		}
		out = append(out, Configuration[S, I, O]{c.machine, revta.NonTerminal(t.From), tape})
	}
	return out
}

// startTapeInputs reports whether c is a valid reverse-search yield point:
// its state is the machine's start state and there is nothing writable to
// the left of the head. If so, it projects the tape's writable cells to
// their input values, succeeding only if every cell is an Input (any
// Output residue means the search discovered a dead end; see spec's Open
// Question on well-formedness).
func (c Configuration[S, I, O]) startTapeInputs() ([]I, bool) {
	if !c.state.IsNonTerminalFor(c.machine.start) {
		return nil, false
	}
	if _, hasLeft := c.tape.LeftWritable(); hasLeft {
		return nil, false
	}
	cells := c.tape.ToList()
	vals := make([]I, 0, len(cells))
	for _, cell := range cells {
		if !cell.IsInput() {
			return nil, false
		}
		vals = append(vals, cell.InputValue())
	}
	return vals, true
}
