package fringe

import "sync/atomic"

// uncomputed marks a heuristic value not yet evaluated in this generation.
// Valid heuristic values are never negative.
const uncomputed = -1.0

// generations hands out search generations process-wide, so no two binds ever
// share one even across different Search values.
var generations atomic.Uint64

func nextGeneration() uint64 { return generations.Add(1) }

// searchState is the per-node scratch slot of one search generation.
type searchState struct {
	previous NodeID
	g        float64
	h        float64

	next   NodeID
	prev   NodeID
	linked bool

	generation uint64
}

func (st *searchState) reset(generation uint64) {
	*st = searchState{
		previous:   NoNode,
		h:          uncomputed,
		next:       NoNode,
		prev:       NoNode,
		generation: generation,
	}
}

// fringeList is the head and tail of the doubly linked fringe. The links
// themselves live in the state slots.
type fringeList struct {
	head NodeID
	tail NodeID
}

func (l *fringeList) empty() bool { return l.head == NoNode }

// stateStore holds one lazily allocated slot per node, indexed by NodeID.
// Slots are never freed; a new generation overwrites them on first touch.
type stateStore struct {
	slots []*searchState
}

// ensure returns the node's slot, resetting it first when it is missing or
// belongs to another generation. The boolean is true if the slot was reset.
func (s *stateStore) ensure(id NodeID, generation uint64) (*searchState, bool) {
	if int(id) >= len(s.slots) {
		s.grow(int(id) + 1)
	}
	st := s.slots[id]
	if st == nil {
		st = new(searchState)
		s.slots[id] = st
	} else if st.generation == generation {
		return st, false
	}
	st.reset(generation)
	return st, true
}

// lookup returns the node's slot only if it is valid for generation.
func (s *stateStore) lookup(id NodeID, generation uint64) (*searchState, bool) {
	if int(id) >= len(s.slots) {
		return nil, false
	}
	st := s.slots[id]
	if st == nil || st.generation != generation {
		return nil, false
	}
	return st, true
}

// at returns a slot known to be valid, such as one currently in the fringe.
func (s *stateStore) at(id NodeID) *searchState { return s.slots[id] }

func (s *stateStore) grow(n int) {
	if n <= cap(s.slots) {
		s.slots = s.slots[:n]
		return
	}
	size := 2 * cap(s.slots)
	if size < n {
		size = n
	}
	slots := make([]*searchState, n, size)
	copy(slots, s.slots)
	s.slots = slots
}

// unlink removes the node from wherever it sits in l. Nodes that are not in
// the list are left untouched.
func (s *stateStore) unlink(l *fringeList, id NodeID) {
	st := s.slots[id]
	if !st.linked {
		return
	}
	if st.prev != NoNode {
		s.slots[st.prev].next = st.next
	} else {
		l.head = st.next
	}
	if st.next != NoNode {
		s.slots[st.next].prev = st.prev
	} else {
		l.tail = st.prev
	}
	st.next, st.prev, st.linked = NoNode, NoNode, false
}

// pushBack appends a node that is not in any list at the tail of l.
func (s *stateStore) pushBack(l *fringeList, id NodeID) {
	st := s.slots[id]
	st.prev, st.next, st.linked = l.tail, NoNode, true
	if l.tail != NoNode {
		s.slots[l.tail].next = id
	} else {
		l.head = id
	}
	l.tail = id
}

// members returns the node IDs of l in order.
func (s *stateStore) members(l *fringeList) []NodeID {
	var ids []NodeID
	for id := l.head; id != NoNode; id = s.slots[id].next {
		ids = append(ids, id)
	}
	return ids
}
