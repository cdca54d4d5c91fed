package tm

import "github.com/brunellolabs/revta"

// cell is a node of an immutable singly linked list holding the writable
// cells strictly to one side of the head, nearest-to-head first. Tapes that
// differ only near the head share the unmodified tail of these lists.
type cell[I, O comparable] struct {
	value revta.TapeSymbol[I, O]
	next  *cell[I, O]
}

// edge records which boundary the head is virtually resting against while
// it has no writable cell of its own (head == nil below). It disambiguates
// the fallback marker an empty head reports: a tape that is bounded on
// both sides and has nothing written yet still needs to know whether a
// lookup should see the left marker or the right one.
type edge uint8

const (
	edgeNone edge = iota
	edgeLeft
	edgeRight
)

// Tape is a persistent, head-positioned sequence of writable cells flanked
// by optional end markers. Every operation below except ToList is O(1): it
// shares the unaffected list tails rather than copying them.
//
// Two flavors are used: bounded (both markers latched at construction, used
// for forward parsing) and unbounded (neither latched, used as the seed for
// reverse generation; a marker only becomes latched once a rule reads it).
type Tape[I, O comparable] struct {
	left       *cell[I, O]
	head       *revta.TapeSymbol[I, O]
	right      *cell[I, O]
	size       int
	leftBound  bool
	rightBound bool
	atEdge     edge
}

// NewBoundedTape builds a tape over a fixed input, both markers latched,
// head positioned at the first input cell, or resting against the right
// marker if the input is empty.
func NewBoundedTape[I, O comparable](input []I) Tape[I, O] {
	t := Tape[I, O]{leftBound: true, rightBound: true}
	if len(input) == 0 {
		t.atEdge = edgeRight
		return t
	}
	var right *cell[I, O]
	for i := len(input) - 1; i >= 1; i-- {
		sym := revta.Input[I, O](input[i])
		right = &cell[I, O]{value: sym, next: right}
	}
	head := revta.Input[I, O](input[0])
	t.head = &head
	t.right = right
	t.size = len(input)
	return t
}

// NewUnboundedTape builds an empty tape with neither marker latched, the
// seed for reverse generation.
func NewUnboundedTape[I, O comparable]() Tape[I, O] {
	return Tape[I, O]{}
}

// HeadWritable returns the real cell under the head, if any.
func (t Tape[I, O]) HeadWritable() (revta.TapeSymbol[I, O], bool) {
	if t.head == nil {
		var zero revta.TapeSymbol[I, O]
		return zero, false
	}
	return *t.head, true
}

// LeftWritable returns the real cell immediately left of the head, if any.
func (t Tape[I, O]) LeftWritable() (revta.TapeSymbol[I, O], bool) {
	if t.left == nil {
		var zero revta.TapeSymbol[I, O]
		return zero, false
	}
	return t.left.value, true
}

// RightWritable returns the real cell immediately right of the head, if any.
func (t Tape[I, O]) RightWritable() (revta.TapeSymbol[I, O], bool) {
	if t.right == nil {
		var zero revta.TapeSymbol[I, O]
		return zero, false
	}
	return t.right.value, true
}

// Head returns the cell under the head, falling back to the relevant
// boundary marker when the head has run off the writable extent on a
// bounded side. Absent only when that side is still unbounded.
func (t Tape[I, O]) Head() (revta.TapeSymbol[I, O], bool) {
	if t.head != nil {
		return *t.head, true
	}
	switch t.atEdge {
	case edgeLeft:
		if t.leftBound {
			return revta.LeftEndMarker[I, O](), true
		}
	case edgeRight:
		if t.rightBound {
			return revta.RightEndMarker[I, O](), true
		}
	}
	var zero revta.TapeSymbol[I, O]
	return zero, false
}

// Left returns the cell immediately left of the head, falling back to the
// left marker when the tape is left-bounded and has nothing written there.
func (t Tape[I, O]) Left() (revta.TapeSymbol[I, O], bool) {
	if t.left != nil {
		return t.left.value, true
	}
	if t.leftBound {
		return revta.LeftEndMarker[I, O](), true
	}
	var zero revta.TapeSymbol[I, O]
	return zero, false
}

// Right returns the cell immediately right of the head, falling back to
// the right marker when the tape is right-bounded and has nothing written
// there.
func (t Tape[I, O]) Right() (revta.TapeSymbol[I, O], bool) {
	if t.right != nil {
		return t.right.value, true
	}
	if t.rightBound {
		return revta.RightEndMarker[I, O](), true
	}
	var zero revta.TapeSymbol[I, O]
	return zero, false
}

// Size is the count of writable cells.
func (t Tape[I, O]) Size() int { return t.size }

// Write replaces the head cell with an output value, growing size by one
// if the head was beyond the tape's prior extent.
func (t Tape[I, O]) Write(o O) Tape[I, O] {
	return t.overlayHead(revta.Output[I, O](o))
}

// overlayHead sets the head cell to an arbitrary symbol, including markers'
// non-marker counterparts (an Input value, in particular). Only the reverse
// generator needs this; a forward rule can only ever write an Output.
func (t Tape[I, O]) overlayHead(sym revta.TapeSymbol[I, O]) Tape[I, O] {
	nt := t
	if t.head == nil {
		nt.size = t.size + 1
	}
	nt.head = &sym
	return nt
}

// MoveLeft shifts the head one cell to the left, preserving neighbours. If
// there is no cell to the left, the head becomes empty and subsequent
// lookups fall back to the left marker (if bound).
func (t Tape[I, O]) MoveLeft() Tape[I, O] {
	nt := t
	if t.head != nil {
		nt.right = &cell[I, O]{value: *t.head, next: t.right}
	}
	if t.left == nil {
		nt.head = nil
		nt.atEdge = edgeLeft
		return nt
	}
	v := t.left.value
	nt.head = &v
	nt.left = t.left.next
	return nt
}

// MoveRight is the mirror image of MoveLeft.
func (t Tape[I, O]) MoveRight() Tape[I, O] {
	nt := t
	if t.head != nil {
		nt.left = &cell[I, O]{value: *t.head, next: t.left}
	}
	if t.right == nil {
		nt.head = nil
		nt.atEdge = edgeRight
		return nt
	}
	v := t.right.value
	nt.head = &v
	nt.right = t.right.next
	return nt
}

// BindLeft latches the left boundary. Monotonic: once bound, always bound.
//
// A bind on a tape whose head is still undefined (no cell and no prior
// MoveLeft/MoveRight to pin an edge) fixes the head against the bound
// marker: that is the only way a bind without a write occurs during
// reverse generation, and it occurs precisely because the transition
// being undone read that marker.
func (t Tape[I, O]) BindLeft() Tape[I, O] {
	nt := t
	nt.leftBound = true
	if nt.head == nil && nt.atEdge == edgeNone {
		nt.atEdge = edgeLeft
	}
	return nt
}

// BindRight latches the right boundary. Monotonic: once bound, always bound.
func (t Tape[I, O]) BindRight() Tape[I, O] {
	nt := t
	nt.rightBound = true
	if nt.head == nil && nt.atEdge == edgeNone {
		nt.atEdge = edgeRight
	}
	return nt
}

// ToList materializes every writable cell left-to-right. The only operation
// here that is not O(1): it walks the full tape.
func (t Tape[I, O]) ToList() []revta.TapeSymbol[I, O] {
	var leftVals []revta.TapeSymbol[I, O]
	for c := t.left; c != nil; c = c.next {
		leftVals = append(leftVals, c.value)
	}
	out := make([]revta.TapeSymbol[I, O], 0, len(leftVals)+t.size)
	for i := len(leftVals) - 1; i >= 0; i-- {
		out = append(out, leftVals[i])
	}
	if t.head != nil {
		out = append(out, *t.head)
	}
	for c := t.right; c != nil; c = c.next {
		out = append(out, c.value)
	}
	return out
}
