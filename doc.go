// Package fringe provides a generic Fringe Search pathfinding implementation.
//
// Fringe Search is an iterative-deepening informed search. Like A* it finds a
// lowest-cost path when the heuristic never overestimates, but instead of a
// priority queue it keeps an unsorted doubly linked list (the fringe) that is
// scanned repeatedly with a rising cost limit.
//
// It exposes three main pieces:
//
//   - Graph: an arena of nodes and edges with caller payloads and the
//     heuristic and edge-cost policies used to search it.
//   - Search: run queries from a start node and get a Result.
//   - Stepper: iterate a query one fringe visit at a time to drive UIs or
//     debugging tools.
//
// Search state is kept per node and tagged with a generation, so rebinding a
// Search to a new start node costs O(1) rather than a pass over the graph.
package fringe
