package fringe

// Heuristic estimates the remaining cost from one node to the target. It must
// never overestimate the true cost for Search to return optimal paths.
type Heuristic[N any] func(from, to *Node[N]) float64

// EdgeCost returns the cost of traversing edge given the accumulated cost of
// reaching its source. It lets costs depend on time or load, not only on the
// edge's default weight.
type EdgeCost[E any] func(edge *Edge[E], costToSource float64) float64

// Policy bundles the heuristic and edge-cost functions a Graph is searched
// with. The zero Policy yields uniform-cost search over default weights.
type Policy[N, E any] struct {
	Heuristic Heuristic[N]
	EdgeCost  EdgeCost[E]
}

// ZeroHeuristic always returns 0. It is trivially admissible and makes Fringe
// Search behave like Dijkstra's algorithm.
func ZeroHeuristic[N any](_, _ *Node[N]) float64 { return 0 }

// StaticWeight returns the edge's default weight regardless of the cost so far.
func StaticWeight[E any](edge *Edge[E], _ float64) float64 { return edge.weight }
