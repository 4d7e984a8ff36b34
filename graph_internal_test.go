package fringe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCapacity(t *testing.T, nodes, edges int64) {
	t.Helper()
	oldNodes, oldEdges := maxNodes, maxEdges
	maxNodes, maxEdges = nodes, edges
	t.Cleanup(func() { maxNodes, maxEdges = oldNodes, oldEdges })
}

func TestAddNode_RefusesPastCapacity(t *testing.T) {
	withCapacity(t, 2, 8)
	g := NewGraph(Policy[string, struct{}]{})

	assert.Equal(t, NodeID(0), g.AddNode("a"))
	assert.Equal(t, NodeID(1), g.AddNode("b"))
	assert.Equal(t, NoNode, g.AddNode("c"))
	assert.Equal(t, 2, g.NumNodes())
	assert.Nil(t, g.Node(NoNode))
}

func TestAddEdge_RefusesPastCapacity(t *testing.T) {
	withCapacity(t, 8, 1)
	g := NewGraph(Policy[string, struct{}]{})
	a, b := g.AddNode("a"), g.AddNode("b")

	_, err := g.AddEdge(a, b, 1, struct{}{})
	require.NoError(t, err)

	id, err := g.AddEdge(a, b, 1, struct{}{})
	assert.ErrorIs(t, err, ErrGraphFull)
	assert.Equal(t, NoEdge, id)

	_, err = g.NewEdge(1, struct{}{})
	assert.ErrorIs(t, err, ErrGraphFull)
	assert.Equal(t, 1, g.NumEdges())
	assert.Len(t, g.Node(a).Outgoing(), 1)
}
