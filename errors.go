package fringe

import "errors"

// Sentinel errors. Callers should compare with errors.Is, since most are
// returned wrapped with the offending identifier.
var (
	// ErrUnknownNode is returned when a NodeID does not belong to the graph.
	ErrUnknownNode = errors.New("fringe: unknown node")

	// ErrUnknownEdge is returned when an EdgeID does not belong to the graph.
	ErrUnknownEdge = errors.New("fringe: unknown edge")

	// ErrInvalidWeight is returned for negative or NaN default edge weights.
	ErrInvalidWeight = errors.New("fringe: invalid edge weight")

	// ErrGraphFull is returned when no EdgeID is left below NoEdge.
	ErrGraphFull = errors.New("fringe: graph is full")

	// ErrGraphBusy is returned by graph mutators while a search is running.
	ErrGraphBusy = errors.New("fringe: graph is being searched")

	// ErrUnbound is returned when searching before a start node was set.
	ErrUnbound = errors.New("fringe: search has no start node")

	// ErrSearchInProgress is returned when a Search is reused while one of
	// its searches (or steppers) is still active.
	ErrSearchInProgress = errors.New("fringe: search already in progress")

	// ErrNotReached is returned by Cost for nodes the last successful search
	// did not reach.
	ErrNotReached = errors.New("fringe: node not reached by the last search")

	// ErrInvalidCost is returned when the edge-cost policy yields a negative
	// or NaN cost.
	ErrInvalidCost = errors.New("fringe: edge cost policy returned an invalid cost")

	// ErrInvalidHeuristic is returned when the heuristic yields a negative or
	// NaN estimate.
	ErrInvalidHeuristic = errors.New("fringe: heuristic returned an invalid estimate")

	// ErrPassLimit is returned when a search needs more scan passes than
	// allowed by WithMaxPasses.
	ErrPassLimit = errors.New("fringe: scan pass limit exceeded")
)
