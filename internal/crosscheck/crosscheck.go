// Package crosscheck generates random weighted digraphs and computes reference
// shortest-path distances for them, so the fringe engine can be checked
// against an independent algorithm.
package crosscheck

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/pdrpinto/fringe"
)

// Edge is a directed weighted edge between two node indices.
type Edge struct {
	From, To int
	Weight   float64
}

// Digraph is a plain edge list over nodes 0..Nodes-1. Parallel edges and
// self-loops are allowed.
type Digraph struct {
	Nodes int
	Edges []Edge
}

// ErdosRenyi draws a G(n, p) digraph without self-loops whose weights are
// uniform in [0, maxWeight).
func ErdosRenyi(rng *rand.Rand, nodes int, p, maxWeight float64) Digraph {
	g := Digraph{Nodes: nodes}
	for u := 0; u < nodes; u++ {
		for v := 0; v < nodes; v++ {
			if u == v || rng.Float64() >= p {
				continue
			}
			g.Edges = append(g.Edges, Edge{From: u, To: v, Weight: maxWeight * rng.Float64()})
		}
	}
	return g
}

// Dijkstra returns the shortest distance from source to every node, +Inf for
// unreachable ones. gonum's simple graphs hold one edge per ordered pair, so
// parallel edges collapse to the lightest and self-loops are dropped; neither
// changes shortest distances with non-negative weights.
func Dijkstra(g Digraph, source int) []float64 {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Nodes; i++ {
		wg.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges {
		if e.From == e.To {
			continue
		}
		if existing := wg.WeightedEdge(int64(e.From), int64(e.To)); existing != nil && existing.Weight() <= e.Weight {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), e.Weight))
	}

	shortest := path.DijkstraFrom(simple.Node(source), wg)
	dist := make([]float64, g.Nodes)
	for i := range dist {
		dist[i] = shortest.WeightTo(int64(i))
	}
	return dist
}

// Load copies g into a fringe graph. Node i gets NodeID i and carries its
// index as payload.
func Load(g Digraph, policy fringe.Policy[int, struct{}]) (*fringe.Graph[int, struct{}], error) {
	fg := fringe.NewGraph(policy)
	for i := 0; i < g.Nodes; i++ {
		fg.AddNode(i)
	}
	for _, e := range g.Edges {
		if _, err := fg.AddEdge(fringe.NodeID(e.From), fringe.NodeID(e.To), e.Weight, struct{}{}); err != nil {
			return nil, err
		}
	}
	return fg, nil
}

// PathCost sums the weights along route starting at source, choosing the
// lightest edge between consecutive nodes. It returns +Inf if some step has
// no edge.
func PathCost(g Digraph, source int, route []int) float64 {
	lightest := make(map[[2]int]float64, len(g.Edges))
	for _, e := range g.Edges {
		key := [2]int{e.From, e.To}
		if w, ok := lightest[key]; !ok || e.Weight < w {
			lightest[key] = e.Weight
		}
	}
	total, at := 0.0, source
	for _, next := range route {
		w, ok := lightest[[2]int{at, next}]
		if !ok {
			return math.Inf(1)
		}
		total += w
		at = next
	}
	return total
}
