// Package graphfile loads road-network style graphs from YAML into a
// fringe.Graph and provides the heuristics and cost policies that go with
// them.
//
// File layout:
//
//	nodes:
//	  - {name: A, x: 0, y: 0}
//	  - {name: B, x: 1, y: 0}
//	edges:
//	  - {from: A, to: B, weight: 1.5, congestion: 0.2, label: main}
//
// Coordinates are optional; the Euclidean heuristic is only admissible when
// every edge weight is at least the straight-line distance of its endpoints.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/pdrpinto/fringe"
)

// Sentinel errors.
var (
	// ErrDuplicateNode is returned when two nodes share a name.
	ErrDuplicateNode = errors.New("graphfile: duplicate node")

	// ErrUnknownNode is returned when an edge or query names a missing node.
	ErrUnknownNode = errors.New("graphfile: unknown node")

	// ErrInvalidValue is returned for negative weights or congestion.
	ErrInvalidValue = errors.New("graphfile: invalid value")
)

// File is the decoded YAML document.
type File struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// NodeSpec declares a node. X and Y must be given together.
type NodeSpec struct {
	Name string   `yaml:"name"`
	X    *float64 `yaml:"x,omitempty"`
	Y    *float64 `yaml:"y,omitempty"`
}

// EdgeSpec declares a directed edge between two named nodes.
type EdgeSpec struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	Weight     float64 `yaml:"weight"`
	Congestion float64 `yaml:"congestion,omitempty"`
	Label      string  `yaml:"label,omitempty"`
}

// Place is the node payload.
type Place struct {
	Name    string
	X, Y    float64
	Located bool
}

// Road is the edge payload.
type Road struct {
	Label      string
	Congestion float64
}

// Network is a built graph plus the name index of its nodes.
type Network struct {
	Graph  *fringe.Graph[Place, Road]
	byName map[string]fringe.NodeID
}

// Decode reads a File from r. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&f); err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Build creates the graph described by f, searched with policy.
func (f *File) Build(policy fringe.Policy[Place, Road]) (*Network, error) {
	g := fringe.NewGraph(policy)
	byName := make(map[string]fringe.NodeID, len(f.Nodes))

	for _, n := range f.Nodes {
		if _, ok := byName[n.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		if (n.X == nil) != (n.Y == nil) {
			return nil, fmt.Errorf("%w: node %q needs both x and y", ErrInvalidValue, n.Name)
		}
		place := Place{Name: n.Name}
		if n.X != nil {
			place.X, place.Y, place.Located = *n.X, *n.Y, true
		}
		byName[n.Name] = g.AddNode(place)
	}

	for i, e := range f.Edges {
		from, ok := byName[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q (edge %d)", ErrUnknownNode, e.From, i)
		}
		to, ok := byName[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q (edge %d)", ErrUnknownNode, e.To, i)
		}
		if e.Congestion < 0 {
			return nil, fmt.Errorf("%w: congestion %v (edge %d)", ErrInvalidValue, e.Congestion, i)
		}
		if _, err := g.AddEdge(from, to, e.Weight, Road{Label: e.Label, Congestion: e.Congestion}); err != nil {
			return nil, fmt.Errorf("graphfile: edge %d: %w", i, err)
		}
	}
	return &Network{Graph: g, byName: byName}, nil
}

// Lookup returns the ID of the named node.
func (n *Network) Lookup(name string) (fringe.NodeID, error) {
	id, ok := n.byName[name]
	if !ok {
		return fringe.NoNode, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return id, nil
}

// Names maps node IDs to names, in order.
func (n *Network) Names(ids []fringe.NodeID) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, n.Graph.Node(id).Data().Name)
	}
	return names
}

// Located reports whether every node has coordinates.
func (n *Network) Located() bool {
	for i := 0; i < n.Graph.NumNodes(); i++ {
		if !n.Graph.Node(fringe.NodeID(i)).Data().Located {
			return false
		}
	}
	return true
}

// Euclidean is the straight-line distance between two located places, and 0
// when either lacks coordinates.
func Euclidean(from, to *fringe.Node[Place]) float64 {
	a, b := from.Data(), to.Data()
	if !a.Located || !b.Located {
		return 0
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Congested scales the edge weight by 1 + congestion.
func Congested(edge *fringe.Edge[Road], _ float64) float64 {
	return edge.Weight() * (1 + edge.Data().Congestion)
}

// RushHour returns a cost policy where congestion phases in as the trip goes
// on: an edge entered after period units of travel carries its full
// congestion, one entered at the start carries none.
func RushHour(period float64) fringe.EdgeCost[Road] {
	return func(edge *fringe.Edge[Road], costToSource float64) float64 {
		ramp := 1.0
		if period > 0 {
			ramp = math.Min(costToSource/period, 1)
		}
		return edge.Weight() * (1 + edge.Data().Congestion*ramp)
	}
}

// Policy resolves heuristic ("zero", "euclid") and cost ("static",
// "congestion", "rush") names. The rush policy uses rushPeriod.
func Policy(heuristic, cost string, rushPeriod float64) (fringe.Policy[Place, Road], error) {
	var policy fringe.Policy[Place, Road]
	switch heuristic {
	case "", "zero":
	case "euclid":
		policy.Heuristic = Euclidean
	default:
		return policy, fmt.Errorf("graphfile: unknown heuristic %q", heuristic)
	}
	switch cost {
	case "", "static":
	case "congestion":
		policy.EdgeCost = Congested
	case "rush":
		policy.EdgeCost = RushHour(rushPeriod)
	default:
		return policy, fmt.Errorf("graphfile: unknown cost policy %q", cost)
	}
	return policy, nil
}
