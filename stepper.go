package fringe

import "slices"

// StepSnapshot exposes the state of the search after one fringe visit.
type StepSnapshot struct {
	StepIndex int
	Pass      int
	Visit     Visit
	// Fringe lists the fringe contents in scan order after the visit.
	Fringe []NodeID
	Done   bool
	Found  bool
	Path   []NodeID
	Cost   float64
}

// Stepper drives a search one fringe visit at a time, e.g. to animate it or
// to inspect how the fringe evolves. It runs the same loop as Search.Search.
//
// While a Stepper is open its Search is busy: Search, Reset and Cost return
// ErrSearchInProgress until the stepper finishes or is closed.
type Stepper[N, E any] struct {
	search *Search[N, E]
	result Result
	fringe []NodeID // fringe members when the search finished
	steps  int
	open   bool
	err    error
}

// Stepper prepares a search towards target and returns a driver for it.
func (s *Search[N, E]) Stepper(target NodeID) (*Stepper[N, E], error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	if err := s.prepare(target); err != nil {
		s.release()
		return nil, err
	}
	st := &Stepper[N, E]{search: s, open: true}
	if s.scan.done {
		st.complete()
	}
	return st, nil
}

// Close releases the underlying search. A stepper closed before its search
// finished leaves the search bound to its start but discards the progress.
func (st *Stepper[N, E]) Close() {
	if !st.open {
		return
	}
	st.search.abort()
	st.open = false
	st.search.release()
}

// Done reports whether the search has finished.
func (st *Stepper[N, E]) Done() bool { return !st.open }

// Result returns the outcome once Done reports true.
func (st *Stepper[N, E]) Result() Result { return st.result }

// Step advances the search by one fringe visit and returns a snapshot. After
// the search has finished it keeps returning the final snapshot.
func (st *Stepper[N, E]) Step() (StepSnapshot, error) {
	if st.err != nil {
		return StepSnapshot{Done: true, StepIndex: st.steps}, st.err
	}
	if !st.open {
		return st.snapshot(Visit{Node: NoNode}), nil
	}

	s := st.search
	visit, err := s.advance(true)
	if err != nil {
		st.err = err
		st.Close()
		return StepSnapshot{Done: true, StepIndex: st.steps}, err
	}
	st.steps++
	if s.scan.done {
		st.complete()
	}
	return st.snapshot(visit), nil
}

func (st *Stepper[N, E]) complete() {
	st.result = st.search.finish()
	st.fringe = st.search.states.members(&st.search.fringe)
	st.open = false
	st.search.release()
}

func (st *Stepper[N, E]) snapshot(visit Visit) StepSnapshot {
	s := st.search
	snapshot := StepSnapshot{
		StepIndex: st.steps,
		Pass:      st.result.Passes,
		Visit:     visit,
		Fringe:    slices.Clone(st.fringe),
		Done:      !st.open,
	}
	if st.open {
		// The search state belongs to this stepper until it finishes.
		snapshot.Pass = s.scan.pass
		snapshot.Fringe = s.states.members(&s.fringe)
	} else {
		snapshot.Found = st.result.Found
		snapshot.Path = slices.Clone(st.result.Path)
		snapshot.Cost = st.result.Cost
	}
	return snapshot
}
