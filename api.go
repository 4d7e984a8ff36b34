package fringe

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Result contains the outcome of a search.
type Result struct {
	// Path lists the nodes to visit after the start, ending with the target.
	// It is empty when the target is the start and nil when Found is false.
	Path []NodeID
	// Cost is the accumulated edge cost of Path.
	Cost float64
	// Found reports whether the target is reachable.
	Found bool

	Visited  int
	Expanded int
	Passes   int
}

// Options defines parameters for a Search.
type Options struct {
	Logger    zerolog.Logger
	MaxPasses int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for search diagnostics. Searches log at
// debug level and limit raises at trace level.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxPasses bounds the number of fringe scan passes per search. Zero,
// the default, means no bound.
func WithMaxPasses(maxPasses int) Option {
	return func(options *Options) { options.MaxPasses = maxPasses }
}

// ctxCheckInterval is how many fringe visits may pass between context checks.
const ctxCheckInterval = 4096

// Search runs Fringe Search queries from one start node over a Graph.
//
// Search keeps its per-node scratch state between queries, tagged with a
// generation number. Rebinding with Reset starts a new generation instead of
// clearing the state of every node, so repeated queries on a large graph only
// pay for the nodes they touch.
//
// A Search value must not be used from multiple goroutines at once; doing so
// returns ErrSearchInProgress. Distinct Search values may share a graph.
type Search[N, E any] struct {
	graph   *Graph[N, E]
	options Options

	states     stateStore
	fringe     fringeList
	generation uint64
	start      NodeID

	// target of the current generation; a different one forces a rebind.
	target   NodeID
	searched bool
	found    bool

	scan scan
	busy atomic.Bool
}

// NewSearch creates a search over graph that is not bound to a start node yet.
// Call Reset before searching.
func NewSearch[N, E any](graph *Graph[N, E], options ...Option) *Search[N, E] {
	searchOptions := Options{
		Logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return &Search[N, E]{
		graph:   graph,
		options: searchOptions,
		fringe:  fringeList{head: NoNode, tail: NoNode},
		start:   NoNode,
		target:  NoNode,
	}
}

// NewSearchFrom creates a search over graph bound to start.
func NewSearchFrom[N, E any](graph *Graph[N, E], start NodeID, options ...Option) (*Search[N, E], error) {
	s := NewSearch(graph, options...)
	if err := s.Reset(start); err != nil {
		return nil, err
	}
	return s, nil
}

// Graph returns the graph being searched.
func (s *Search[N, E]) Graph() *Graph[N, E] { return s.graph }

// Start returns the current start node, or NoNode when unbound.
func (s *Search[N, E]) Start() NodeID { return s.start }

// Generation returns the generation of the current binding. It grows with
// every Reset and is unique process-wide.
func (s *Search[N, E]) Generation() uint64 { return s.generation }

// Reset binds the search to a new start node. Only the start node's state is
// reinitialized now; every other node is reinitialized when first touched.
func (s *Search[N, E]) Reset(start NodeID) error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSearchInProgress
	}
	defer s.busy.Store(false)

	if _, err := s.graph.node(start); err != nil {
		return err
	}
	s.bind(start)
	return nil
}

// Search looks for a lowest-cost path from the start node to target.
//
// An unreachable target is not an error: the returned Result has Found set to
// false. Searching for the same target again without Reset returns the same
// result. Searching for a different target rebinds to the same start first.
func (s *Search[N, E]) Search(ctx context.Context, target NodeID) (Result, error) {
	if err := s.acquire(); err != nil {
		return Result{}, err
	}
	defer s.release()

	if err := s.prepare(target); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		s.abort()
		return Result{}, err
	}

	for !s.scan.done {
		pass := s.scan.pass
		if _, err := s.advance(false); err != nil {
			s.abort()
			return Result{}, err
		}
		if s.scan.pass != pass || s.scan.visited%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				s.abort()
				return Result{}, err
			}
		}
	}
	return s.finish(), nil
}

// Cost returns the cost from the start node to node found by the last search.
// The last search must have succeeded and reached node; the value is exact for
// the target and an upper bound for other reached nodes.
func (s *Search[N, E]) Cost(node NodeID) (float64, error) {
	if s.busy.Load() {
		return 0, ErrSearchInProgress
	}
	if s.start == NoNode {
		return 0, ErrUnbound
	}
	if !s.found {
		return 0, fmt.Errorf("%w: %d", ErrNotReached, node)
	}
	st, ok := s.states.lookup(node, s.generation)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotReached, node)
	}
	return st.g, nil
}

// bind starts a new generation rooted at start.
func (s *Search[N, E]) bind(start NodeID) {
	s.generation = nextGeneration()
	s.start = start
	s.fringe = fringeList{head: NoNode, tail: NoNode}
	s.states.ensure(start, s.generation)
	s.states.pushBack(&s.fringe, start)
	s.target = NoNode
	s.searched = false
	s.found = false
	s.scan = scan{}
}

// abort discards a search that failed midway.
func (s *Search[N, E]) abort() {
	s.bind(s.start)
}

func (s *Search[N, E]) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrSearchInProgress
	}
	s.graph.active.Add(1)
	return nil
}

func (s *Search[N, E]) release() {
	s.graph.active.Add(-1)
	s.busy.Store(false)
}
