package revta

import "fmt"

// StateKind tags a MachineState: the two terminal states, or a live
// non-terminal carrying an application-defined state value.
type StateKind uint8

const (
	NonTerminalKind StateKind = iota
	AcceptKind
	RejectKind
)

// MachineState is Accept, Reject, or a NonTerminal carrying a user state
// value of type S.
type MachineState[S comparable] struct {
	kind StateKind
	s    S
}

// NonTerminal wraps a live, non-terminal user state.
func NonTerminal[S comparable](s S) MachineState[S] {
	return MachineState[S]{kind: NonTerminalKind, s: s}
}

// Accept is the unique accepting terminal state.
func Accept[S comparable]() MachineState[S] {
	return MachineState[S]{kind: AcceptKind}
}

// Reject is the unique rejecting terminal state.
func Reject[S comparable]() MachineState[S] {
	return MachineState[S]{kind: RejectKind}
}

func (m MachineState[S]) Kind() StateKind { return m.kind }

func (m MachineState[S]) IsTerminal() bool { return m.kind != NonTerminalKind }
func (m MachineState[S]) IsAccept() bool   { return m.kind == AcceptKind }
func (m MachineState[S]) IsReject() bool   { return m.kind == RejectKind }

// State returns the wrapped user value. Only meaningful when the state is
// NonTerminal.
func (m MachineState[S]) State() S { return m.s }

// IsNonTerminalFor reports whether m is the non-terminal state wrapping s.
func (m MachineState[S]) IsNonTerminalFor(s S) bool {
	return m.kind == NonTerminalKind && m.s == s
}

func (m MachineState[S]) String() string {
	switch m.kind {
	case AcceptKind:
		return "Accept"
	case RejectKind:
		return "Reject"
	default:
		return fmt.Sprintf("State(%v)", m.s)
	}
}
