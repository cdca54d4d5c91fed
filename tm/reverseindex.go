package tm

import (
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/brunellolabs/revta"
)

// symbolBucket groups the transitions sharing a (next_state, move) pair by
// the symbol they leave under the head once fired, plus an ungrouped `all`
// list used when the querying side of the tape is off-end and therefore
// cannot restrict by symbol.
type symbolBucket[S, I, O comparable] struct {
	grouped map[revta.TapeSymbol[I, O]]*arraylist.List
	all     *arraylist.List
}

func newSymbolBucket[S, I, O comparable]() *symbolBucket[S, I, O] {
	return &symbolBucket[S, I, O]{
		grouped: make(map[revta.TapeSymbol[I, O]]*arraylist.List),
		all:     arraylist.New(),
	}
}

func (b *symbolBucket[S, I, O]) add(leave revta.TapeSymbol[I, O], t Transition[S, I, O]) {
	b.all.Add(t)
	g, ok := b.grouped[leave]
	if !ok {
		g = arraylist.New()
		b.grouped[leave] = g
	}
	g.Add(t)
}

// candidates returns the transitions restricted to those leaving sym under
// the head, or every transition in the bucket if sym is not present (the
// tape ran off that end and nothing can be ruled out yet).
func (b *symbolBucket[S, I, O]) candidates(sym revta.TapeSymbol[I, O], present bool) []Transition[S, I, O] {
	var list *arraylist.List
	if !present {
		list = b.all
	} else if g, ok := b.grouped[sym]; ok {
		list = g
	} else {
		return nil
	}
	values := list.Values()
	out := make([]Transition[S, I, O], len(values))
	for i, v := range values {
		out[i] = v.(Transition[S, I, O])
	}
	return out
}

// moveBuckets holds, for one next_state, the three symbolBuckets keyed by
// the move the transition made to reach it.
type moveBuckets[S, I, O comparable] struct {
	left  *symbolBucket[S, I, O]
	right *symbolBucket[S, I, O]
	hold  *symbolBucket[S, I, O]
}

func newMoveBuckets[S, I, O comparable]() *moveBuckets[S, I, O] {
	return &moveBuckets[S, I, O]{
		left:  newSymbolBucket[S, I, O](),
		right: newSymbolBucket[S, I, O](),
		hold:  newSymbolBucket[S, I, O](),
	}
}

// predKey identifies one reverse-lookup query, for the result cache.
type predKey[S, I, O comparable] struct {
	next                       revta.MachineState[S]
	left, head, right          revta.TapeSymbol[I, O]
	hasLeft, hasHead, hasRight bool
}

// ReverseIndex answers, for a post-transition configuration, which
// transitions could have produced it: a two-level map keyed by next_state
// then by move, each leaf grouping transitions by the symbol they leave
// under the head. Built once per RuleTable (see Machine.reverseIndex) and
// safe for concurrent readers: byNextState is populated once at
// construction and never mutated afterwards, and cache is a sync.Map.
type ReverseIndex[S, I, O comparable] struct {
	byNextState map[revta.MachineState[S]]*moveBuckets[S, I, O]
	cache       sync.Map // predKey[S,I,O] -> []Transition[S,I,O]
}

func buildReverseIndex[S, I, O comparable](rt *RuleTable[S, I, O]) *ReverseIndex[S, I, O] {
	ri := &ReverseIndex[S, I, O]{byNextState: make(map[revta.MachineState[S]]*moveBuckets[S, I, O])}
	for _, t := range rt.all {
		next := t.nextState()
		mb, ok := ri.byNextState[next]
		if !ok {
			mb = newMoveBuckets[S, I, O]()
			ri.byNextState[next] = mb
		}
		var bucket *symbolBucket[S, I, O]
		switch t.Move {
		case revta.Left:
			bucket = mb.left
		case revta.Right:
			bucket = mb.right
		default:
			bucket = mb.hold
		}
		bucket.add(t.leaveSymbol(), t)
	}
	return ri
}

// predecessors returns every transition that could have produced the
// post-configuration (next, left, head, right), by three rules: right-movers restricted by left, left-movers restricted by
// right, Hold transitions restricted by head. hasHead is false only for the
// very first (seed) configuration of a reverse search, where the tape is
// completely empty; in that case neither marker-exclusion rule applies and
// all three buckets fall back to their unrestricted `all` list.
func (ri *ReverseIndex[S, I, O]) predecessors(key predKey[S, I, O]) []Transition[S, I, O] {
	if cached, ok := ri.cache.Load(key); ok {
		return cached.([]Transition[S, I, O])
	}
	out := ri.compute(key)
	ri.cache.Store(key, out)
	return out
}

func (ri *ReverseIndex[S, I, O]) compute(key predKey[S, I, O]) []Transition[S, I, O] {
	mb, ok := ri.byNextState[key.next]
	if !ok {
		return nil
	}
	var out []Transition[S, I, O]
	if !key.hasHead || !key.head.IsLeftMarker() {
		out = append(out, mb.right.candidates(key.left, key.hasLeft)...)
	}
	if !key.hasHead || !key.head.IsRightMarker() {
		out = append(out, mb.left.candidates(key.right, key.hasRight)...)
	}
	out = append(out, mb.hold.candidates(key.head, key.hasHead)...)
	return out
}
