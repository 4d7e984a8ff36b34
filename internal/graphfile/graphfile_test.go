package graphfile

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/fringe"
)

const triangle = `
nodes:
  - {name: A, x: 0, y: 0}
  - {name: B, x: 3, y: 0}
  - {name: C, x: 3, y: 4}
edges:
  - {from: A, to: B, weight: 3, label: east}
  - {from: B, to: C, weight: 4, congestion: 1}
  - {from: A, to: C, weight: 9, label: direct}
`

func build(t *testing.T, doc string, policy fringe.Policy[Place, Road]) *Network {
	t.Helper()
	f, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	n, err := f.Build(policy)
	require.NoError(t, err)
	return n
}

func TestBuild(t *testing.T) {
	n := build(t, triangle, fringe.Policy[Place, Road]{})

	assert.Equal(t, 3, n.Graph.NumNodes())
	assert.Equal(t, 3, n.Graph.NumEdges())
	assert.True(t, n.Located())

	c, err := n.Lookup("C")
	require.NoError(t, err)
	assert.Equal(t, Place{Name: "C", X: 3, Y: 4, Located: true}, n.Graph.Node(c).Data())

	a, err := n.Lookup("A")
	require.NoError(t, err)
	direct, ok := n.Graph.Incident(a, c)
	require.True(t, ok)
	assert.Equal(t, Road{Label: "direct"}, n.Graph.Edge(direct).Data())

	_, err = n.Lookup("Z")
	assert.ErrorIs(t, err, ErrUnknownNode)

	assert.Equal(t, []string{"A", "C"}, n.Names([]fringe.NodeID{a, c}))
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "duplicate node",
			doc:  "nodes: [{name: A}, {name: A}]",
			want: ErrDuplicateNode,
		},
		{
			name: "unknown source",
			doc:  "nodes: [{name: A}]\nedges: [{from: Z, to: A, weight: 1}]",
			want: ErrUnknownNode,
		},
		{
			name: "unknown target",
			doc:  "nodes: [{name: A}]\nedges: [{from: A, to: Z, weight: 1}]",
			want: ErrUnknownNode,
		},
		{
			name: "x without y",
			doc:  "nodes: [{name: A, x: 1}]",
			want: ErrInvalidValue,
		},
		{
			name: "negative congestion",
			doc:  "nodes: [{name: A}]\nedges: [{from: A, to: A, weight: 1, congestion: -1}]",
			want: ErrInvalidValue,
		},
		{
			name: "negative weight",
			doc:  "nodes: [{name: A}]\nedges: [{from: A, to: A, weight: -1}]",
			want: fringe.ErrInvalidWeight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)
			_, err = f.Build(fringe.Policy[Place, Road]{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("nodes: [{name: A, colour: red}]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Nodes, 3)
	assert.Len(t, f.Edges, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocated(t *testing.T) {
	n := build(t, "nodes: [{name: A, x: 0, y: 0}, {name: B}]", fringe.Policy[Place, Road]{})
	assert.False(t, n.Located())

	a, _ := n.Lookup("A")
	b, _ := n.Lookup("B")
	assert.Equal(t, 0.0, Euclidean(n.Graph.Node(a), n.Graph.Node(b)))
}

func TestCostPolicies(t *testing.T) {
	n := build(t, triangle, fringe.Policy[Place, Road]{})
	b, _ := n.Lookup("B")
	c, _ := n.Lookup("C")
	id, ok := n.Graph.Incident(b, c)
	require.True(t, ok)
	edge := n.Graph.Edge(id)

	assert.Equal(t, 8.0, Congested(edge, 0))

	rush := RushHour(10)
	assert.Equal(t, 4.0, rush(edge, 0))
	assert.Equal(t, 6.0, rush(edge, 5))
	assert.Equal(t, 8.0, rush(edge, 50))

	assert.Equal(t, 8.0, RushHour(0)(edge, 0), "no ramp without a period")

	assert.Equal(t, 5.0, Euclidean(n.Graph.Node(c), n.Graph.Node(mustLookup(t, n, "A"))))
}

func mustLookup(t *testing.T, n *Network, name string) fringe.NodeID {
	t.Helper()
	id, err := n.Lookup(name)
	require.NoError(t, err)
	return id
}

func TestPolicy(t *testing.T) {
	for _, tt := range []struct {
		heuristic, cost string
		want            float64
	}{
		{"zero", "static", 7},
		{"euclid", "static", 7},
		{"", "", 7},
		// B->C doubles under congestion; A->C direct wins.
		{"euclid", "congestion", 9},
		// A->B costs 3, so B->C carries 30% of its congestion.
		{"zero", "rush", 3 + 4*1.3},
	} {
		policy, err := Policy(tt.heuristic, tt.cost, 10)
		require.NoError(t, err)

		n := build(t, triangle, policy)
		s, err := fringe.NewSearchFrom(n.Graph, mustLookup(t, n, "A"))
		require.NoError(t, err)
		result, err := s.Search(context.Background(), mustLookup(t, n, "C"))
		require.NoError(t, err)
		assert.InDelta(t, tt.want, result.Cost, 1e-9, "%s/%s", tt.heuristic, tt.cost)
	}

	_, err := Policy("manhattan", "static", 0)
	assert.Error(t, err)
	_, err = Policy("zero", "toll", 0)
	assert.Error(t, err)
}

func TestEuclideanIsAdmissibleHere(t *testing.T) {
	n := build(t, triangle, fringe.Policy[Place, Road]{})
	for i := 0; i < n.Graph.NumEdges(); i++ {
		e := n.Graph.Edge(fringe.EdgeID(i))
		h := Euclidean(n.Graph.Node(e.From()), n.Graph.Node(e.To()))
		assert.LessOrEqual(t, h, e.Weight()+1e-9)
	}
	assert.False(t, math.IsNaN(Euclidean(n.Graph.Node(0), n.Graph.Node(0))))
}
