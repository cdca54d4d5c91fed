package tm

import (
	"fmt"

	"github.com/brunellolabs/revta"
)

// FromKey identifies a transition by the state it fires in and the symbol
// it reads. The rule table admits at most one transition per FromKey.
type FromKey[S, I, O comparable] struct {
	State S
	Read  revta.TapeSymbol[I, O]
}

// Transition is a single rule: reading Read while in state From, optionally
// writing Write, moving the head, and optionally changing state.
//
// Three shapes exist, distinguished by Read.Kind():
//   - FromMiddle: Read is Input or Output; may write; any Move.
//   - FromLeftEnd: Read is the left marker; never writes; Move is Hold or Right.
//   - FromRightEnd: Read is the right marker; never writes; Move is Hold or Left.
//
// Write is typed as *O rather than a general symbol, which makes the
// "input symbols are read-only" invariant unrepresentable rather than a
// runtime check: a transition can never be asked to write anything but an
// output value.
type Transition[S, I, O comparable] struct {
	From        S
	Read        revta.TapeSymbol[I, O]
	Write       *O
	Move        revta.Move
	ChangeState *revta.MachineState[S]
}

func (t Transition[S, I, O]) from() FromKey[S, I, O] {
	return FromKey[S, I, O]{State: t.From, Read: t.Read}
}

// leaveSymbol is the symbol left under the head once t has fired: Write if
// present, else Read unchanged (a transition without an explicit write
// never produces a new cell, even when Read happens to be an input value
// that coincides with some output value).
func (t Transition[S, I, O]) leaveSymbol() revta.TapeSymbol[I, O] {
	if t.Write != nil {
		return revta.Output[I, O](*t.Write)
	}
	return t.Read
}

// nextState is ChangeState if present, else the non-terminal t fired from.
func (t Transition[S, I, O]) nextState() revta.MachineState[S] {
	if t.ChangeState != nil {
		return *t.ChangeState
	}
	return revta.NonTerminal(t.From)
}

// validate enforces the shape invariants of the marker-reading transitions.
func (t Transition[S, I, O]) validate() error {
	switch t.Read.Kind() {
	case revta.LeftMarkerKind:
		if t.Write != nil {
			return fmt.Errorf("tm: transition reading the left marker from state %v may not write", t.From)
		}
		if t.Move == revta.Left {
			return fmt.Errorf("tm: transition reading the left marker from state %v may not move left", t.From)
		}
	case revta.RightMarkerKind:
		if t.Write != nil {
			return fmt.Errorf("tm: transition reading the right marker from state %v may not write", t.From)
		}
		if t.Move == revta.Right {
			return fmt.Errorf("tm: transition reading the right marker from state %v may not move right", t.From)
		}
	}
	return nil
}
