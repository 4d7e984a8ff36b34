package fringe

import (
	"fmt"
	"math"

	"github.com/pdrpinto/fringe/internal"
)

// scan is the cursor state of the search in progress.
type scan struct {
	target NodeID
	limit  float64
	minF   float64
	cursor NodeID
	pass   int

	visited  int
	expanded int
	done     bool
	found    bool
}

// prepare sets up a scan towards target, rebinding first if the current
// generation already cached heuristics for another target.
func (s *Search[N, E]) prepare(target NodeID) error {
	if s.start == NoNode {
		return ErrUnbound
	}
	if _, err := s.graph.node(target); err != nil {
		return err
	}
	if s.searched && s.target != target {
		s.options.Logger.Debug().
			Uint32("start", uint32(s.start)).
			Uint32("previous_target", uint32(s.target)).
			Uint32("target", uint32(target)).
			Msg("rebinding search for new target")
		s.bind(s.start)
	}
	s.searched = true
	s.target = target
	s.found = false
	s.scan = scan{
		target: target,
		minF:   math.Inf(1),
		cursor: s.fringe.head,
		pass:   1,
	}
	limit, err := s.estimate(s.states.at(s.start), s.start)
	if err != nil {
		return err
	}
	s.scan.limit = limit
	s.scan.done = s.fringe.empty()
	return nil
}

// advance visits the node under the cursor, then moves the cursor and starts
// a new pass when the end of the fringe is reached. Relaxations are only
// collected when record is set.
func (s *Search[N, E]) advance(record bool) (Visit, error) {
	sc := &s.scan
	current := sc.cursor
	currentState := s.states.at(current)

	h, err := s.estimate(currentState, current)
	if err != nil {
		return Visit{}, err
	}
	f := currentState.g + h
	sc.visited++
	visit := Visit{Node: current, F: f, Limit: sc.limit}

	switch {
	case f > sc.limit:
		// Stays in the fringe and is reconsidered in a later pass.
		if f < sc.minF {
			sc.minF = f
		}
		visit.Kind = VisitDeferred
		sc.cursor = currentState.next
	case current == sc.target:
		visit.Kind = VisitMatched
		sc.done, sc.found = true, true
		return visit, nil
	default:
		relaxed, err := s.expand(current, currentState, record)
		if err != nil {
			return Visit{}, err
		}
		visit.Kind = VisitExpanded
		visit.Relaxed = relaxed
		sc.expanded++
		// Children may have been appended after current, so read next only now.
		next := currentState.next
		s.states.unlink(&s.fringe, current)
		sc.cursor = next
	}

	if sc.cursor == NoNode {
		if err := s.endPass(); err != nil {
			return visit, err
		}
	}
	return visit, nil
}

// expand relaxes every outgoing edge of current.
func (s *Search[N, E]) expand(current NodeID, currentState *searchState, record bool) ([]Relaxation, error) {
	var relaxed []Relaxation
	for _, edgeID := range s.graph.nodes[current].outgoing {
		edge := s.graph.edges[edgeID]
		if edge.to == NoNode {
			continue
		}
		cost := s.graph.edgeCost(edge, currentState.g)
		if cost < 0 || math.IsNaN(cost) {
			return nil, fmt.Errorf("%w: %v on edge %d", ErrInvalidCost, cost, edgeID)
		}
		g := currentState.g + cost

		childState, fresh := s.states.ensure(edge.to, s.generation)
		if !fresh && childState.g <= g {
			continue
		}
		requeued := childState.linked
		childState.previous = current
		childState.g = g
		s.states.unlink(&s.fringe, edge.to)
		s.states.pushBack(&s.fringe, edge.to)

		if record {
			relaxed = append(relaxed, Relaxation{
				Edge:     edgeID,
				From:     current,
				To:       edge.to,
				G:        g,
				Requeued: requeued,
			})
		}
	}
	return relaxed, nil
}

// endPass finishes a scan pass: either the fringe ran dry, or the limit is
// raised to the smallest f seen beyond it and the scan restarts at the head.
func (s *Search[N, E]) endPass() error {
	sc := &s.scan
	if s.fringe.empty() {
		sc.done = true
		return nil
	}
	if s.options.MaxPasses > 0 && sc.pass >= s.options.MaxPasses {
		return fmt.Errorf("%w: %d passes", ErrPassLimit, sc.pass)
	}
	s.options.Logger.Trace().
		Int("pass", sc.pass).
		Float64("limit", sc.minF).
		Msg("raising fringe limit")
	sc.limit, sc.minF = sc.minF, math.Inf(1)
	sc.cursor = s.fringe.head
	sc.pass++
	return nil
}

// estimate returns the node's heuristic towards the scan target, computing
// and caching it on first use in this generation.
func (s *Search[N, E]) estimate(st *searchState, id NodeID) (float64, error) {
	if st.h >= 0 {
		return st.h, nil
	}
	h := s.graph.heuristic(s.graph.nodes[id], s.graph.nodes[s.scan.target])
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: %v for node %d", ErrInvalidHeuristic, h, id)
	}
	st.h = h
	return h, nil
}

// finish records the outcome of a completed scan.
func (s *Search[N, E]) finish() Result {
	sc := s.scan
	result := Result{
		Found:    sc.found,
		Visited:  sc.visited,
		Expanded: sc.expanded,
		Passes:   sc.pass,
	}
	if sc.found {
		result.Path = internal.ReconstructPath(s.predecessor, sc.target, s.start)
		result.Cost = s.states.at(sc.target).g
	}
	s.found = sc.found

	s.options.Logger.Debug().
		Uint32("start", uint32(s.start)).
		Uint32("target", uint32(sc.target)).
		Bool("found", result.Found).
		Float64("cost", result.Cost).
		Int("passes", result.Passes).
		Int("expanded", result.Expanded).
		Msg("fringe search finished")
	return result
}

func (s *Search[N, E]) predecessor(id NodeID) (NodeID, bool) {
	previous := s.states.at(id).previous
	return previous, previous != NoNode
}
