package fringe

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"
)

// NodeID identifies a node within its Graph. IDs are dense and assigned in
// creation order starting at zero.
type NodeID uint32

// EdgeID identifies an edge within its Graph.
type EdgeID uint32

// NoNode marks an absent node reference, e.g. the source of a detached edge.
const NoNode NodeID = math.MaxUint32

// NoEdge marks an absent edge reference.
const NoEdge EdgeID = math.MaxUint32

// Node is a graph vertex carrying an optional payload of type N.
type Node[N any] struct {
	id       NodeID
	outgoing []EdgeID
	incoming []EdgeID
	data     N
}

// ID returns the node's identifier. It never changes.
func (n *Node[N]) ID() NodeID { return n.id }

// Data returns the node payload, or the zero value when none was set.
func (n *Node[N]) Data() N { return n.data }

// SetData replaces the node payload.
func (n *Node[N]) SetData(data N) { n.data = data }

// Outgoing returns a copy of the node's outgoing edges in insertion order.
func (n *Node[N]) Outgoing() []EdgeID { return slices.Clone(n.outgoing) }

// Incoming returns a copy of the node's incoming edges in insertion order.
func (n *Node[N]) Incoming() []EdgeID { return slices.Clone(n.incoming) }

// Edge is a directed, weighted connection between two nodes carrying an
// optional payload of type E.
type Edge[E any] struct {
	id     EdgeID
	from   NodeID
	to     NodeID
	weight float64
	data   E
}

// ID returns the edge's identifier.
func (e *Edge[E]) ID() EdgeID { return e.id }

// From returns the source node, or NoNode if detached.
func (e *Edge[E]) From() NodeID { return e.from }

// To returns the target node, or NoNode if detached.
func (e *Edge[E]) To() NodeID { return e.to }

// Weight returns the default weight used by StaticWeight.
func (e *Edge[E]) Weight() float64 { return e.weight }

// Data returns the edge payload.
func (e *Edge[E]) Data() E { return e.data }

// SetData replaces the edge payload.
func (e *Edge[E]) SetData(data E) { e.data = data }

// Graph owns the nodes and edges of a directed weighted graph. Nodes and edges
// live in an arena and refer to each other by ID only.
//
// A Graph is not safe for concurrent mutation. Any number of Search values may
// read it concurrently as long as nobody mutates it; mutators return
// ErrGraphBusy while a search is running.
type Graph[N, E any] struct {
	nodes []*Node[N]
	edges []*Edge[E]

	heuristic Heuristic[N]
	edgeCost  EdgeCost[E]

	active atomic.Int32
}

// NewGraph creates an empty graph using the given policy. Nil policy fields
// fall back to ZeroHeuristic and StaticWeight.
func NewGraph[N, E any](policy Policy[N, E]) *Graph[N, E] {
	g := &Graph[N, E]{
		heuristic: policy.Heuristic,
		edgeCost:  policy.EdgeCost,
	}
	if g.heuristic == nil {
		g.heuristic = ZeroHeuristic[N]
	}
	if g.edgeCost == nil {
		g.edgeCost = StaticWeight[E]
	}
	return g
}

// NumNodes returns the number of nodes created so far.
func (g *Graph[N, E]) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges created so far.
func (g *Graph[N, E]) NumEdges() int { return len(g.edges) }

// Node returns the node with the given ID, or nil if it doesn't exist.
func (g *Graph[N, E]) Node(id NodeID) *Node[N] {
	if int64(id) >= int64(len(g.nodes)) {
		return nil
	}
	return g.nodes[id]
}

// Edge returns the edge with the given ID, or nil if it doesn't exist.
func (g *Graph[N, E]) Edge(id EdgeID) *Edge[E] {
	if int64(id) >= int64(len(g.edges)) {
		return nil
	}
	return g.edges[id]
}

// maxNodes and maxEdges keep IDs clear of the NoNode and NoEdge sentinels.
var (
	maxNodes = int64(NoNode)
	maxEdges = int64(NoEdge)
)

// AddNode creates a node with empty adjacency and returns its ID. A graph
// holds at most math.MaxUint32 nodes; once full, AddNode returns NoNode and
// adds nothing.
func (g *Graph[N, E]) AddNode(data N) NodeID {
	if int64(len(g.nodes)) >= maxNodes {
		return NoNode
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &Node[N]{id: id, data: data})
	return id
}

// NewEdge creates a detached edge. Use SetFrom and SetTo to attach it.
func (g *Graph[N, E]) NewEdge(weight float64, data E) (EdgeID, error) {
	if err := g.mutable(); err != nil {
		return NoEdge, err
	}
	if err := g.checkCapacity(weight); err != nil {
		return NoEdge, err
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge[E]{id: id, from: NoNode, to: NoNode, weight: weight, data: data})
	return id, nil
}

// AddEdge creates an edge from one node to another and appends it to the
// source's outgoing and the target's incoming lists.
func (g *Graph[N, E]) AddEdge(from, to NodeID, weight float64, data E) (EdgeID, error) {
	if err := g.mutable(); err != nil {
		return NoEdge, err
	}
	if err := g.checkCapacity(weight); err != nil {
		return NoEdge, err
	}
	src, err := g.node(from)
	if err != nil {
		return NoEdge, err
	}
	dst, err := g.node(to)
	if err != nil {
		return NoEdge, err
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, &Edge[E]{id: id, from: from, to: to, weight: weight, data: data})
	src.outgoing = append(src.outgoing, id)
	dst.incoming = append(dst.incoming, id)
	return id, nil
}

// SetFrom attaches the edge's source to the given node. If the edge already
// had a different source, it is removed from that node's outgoing list.
func (g *Graph[N, E]) SetFrom(edge EdgeID, from NodeID) error {
	if err := g.mutable(); err != nil {
		return err
	}
	e, err := g.edge(edge)
	if err != nil {
		return err
	}
	n, err := g.node(from)
	if err != nil {
		return err
	}
	if e.from == from {
		return nil
	}
	if e.from != NoNode {
		old := g.nodes[e.from]
		old.outgoing = removeEdge(old.outgoing, edge)
	}
	e.from = from
	n.outgoing = append(n.outgoing, edge)
	return nil
}

// SetTo attaches the edge's target to the given node. If the edge already had
// a different target, it is removed from that node's incoming list.
func (g *Graph[N, E]) SetTo(edge EdgeID, to NodeID) error {
	if err := g.mutable(); err != nil {
		return err
	}
	e, err := g.edge(edge)
	if err != nil {
		return err
	}
	n, err := g.node(to)
	if err != nil {
		return err
	}
	if e.to == to {
		return nil
	}
	if e.to != NoNode {
		old := g.nodes[e.to]
		old.incoming = removeEdge(old.incoming, edge)
	}
	e.to = to
	n.incoming = append(n.incoming, edge)
	return nil
}

// DetachFrom clears the edge's source. Detaching a detached edge is a no-op.
func (g *Graph[N, E]) DetachFrom(edge EdgeID) error {
	if err := g.mutable(); err != nil {
		return err
	}
	e, err := g.edge(edge)
	if err != nil {
		return err
	}
	if e.from != NoNode {
		old := g.nodes[e.from]
		old.outgoing = removeEdge(old.outgoing, edge)
		e.from = NoNode
	}
	return nil
}

// DetachTo clears the edge's target. Detaching a detached edge is a no-op.
func (g *Graph[N, E]) DetachTo(edge EdgeID) error {
	if err := g.mutable(); err != nil {
		return err
	}
	e, err := g.edge(edge)
	if err != nil {
		return err
	}
	if e.to != NoNode {
		old := g.nodes[e.to]
		old.incoming = removeEdge(old.incoming, edge)
		e.to = NoNode
	}
	return nil
}

// SetWeight changes the edge's default weight.
func (g *Graph[N, E]) SetWeight(edge EdgeID, weight float64) error {
	if err := g.mutable(); err != nil {
		return err
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	e, err := g.edge(edge)
	if err != nil {
		return err
	}
	e.weight = weight
	return nil
}

// Incident returns the first outgoing edge of from whose target is to.
// Edges with a detached target never match.
func (g *Graph[N, E]) Incident(from, to NodeID) (EdgeID, bool) {
	src := g.Node(from)
	if src == nil || to == NoNode {
		return NoEdge, false
	}
	for _, id := range src.outgoing {
		if g.edges[id].to == to {
			return id, true
		}
	}
	return NoEdge, false
}

func (g *Graph[N, E]) node(id NodeID) (*Node[N], error) {
	n := g.Node(id)
	if n == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return n, nil
}

func (g *Graph[N, E]) edge(id EdgeID) (*Edge[E], error) {
	e := g.Edge(id)
	if e == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEdge, id)
	}
	return e, nil
}

func (g *Graph[N, E]) mutable() error {
	if g.active.Load() > 0 {
		return ErrGraphBusy
	}
	return nil
}

// checkCapacity validates a new edge's weight and that an EdgeID is left.
func (g *Graph[N, E]) checkCapacity(weight float64) error {
	if err := checkWeight(weight); err != nil {
		return err
	}
	if int64(len(g.edges)) >= maxEdges {
		return fmt.Errorf("%w: %d edges", ErrGraphFull, len(g.edges))
	}
	return nil
}

func checkWeight(w float64) error {
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, w)
	}
	return nil
}

// removeEdge drops the single occurrence of id from list, keeping order.
func removeEdge(list []EdgeID, id EdgeID) []EdgeID {
	if i := slices.Index(list, id); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}
