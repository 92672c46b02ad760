// Package core_test verifies whole-graph copying and resetting.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafnest/core"
)

func TestClone_DeepCopy(t *testing.T) {
	g := core.NewGraph(core.WithCompound(), core.WithMultigraph())
	g.SetLabel(LabelStar)
	g.SetNode(NodeA, LabelOne)
	require.NoError(t, g.SetParent(NodeB, NodeA))
	require.NoError(t, g.SetEdge(NodeA, NodeB, LabelBlue))
	require.NoError(t, g.SetEdge(NodeA, NodeB, LabelTwo, NameAlt))

	clone := g.Clone()

	assert.Equal(t, g.Nodes(), clone.Nodes())
	assert.Equal(t, g.Edges(), clone.Edges())
	assert.Equal(t, LabelStar, clone.Label())
	assert.Equal(t, LabelOne, clone.Node(NodeA))
	assert.Equal(t, LabelTwo, clone.Edge(NodeA, NodeB, NameAlt))

	p, _, err := clone.Parent(NodeB)
	require.NoError(t, err)
	assert.Equal(t, NodeA, p)

	// Mutations on either side stay on that side.
	clone.RemoveNode(NodeB)
	assert.True(t, g.HasNode(NodeB))
	assert.Equal(t, 2, g.EdgeCount())

	require.NoError(t, g.SetEdge(NodeA, NodeC))
	assert.False(t, clone.HasNode(NodeC))
}

func TestCloneEmpty_KeepsNodesDropsEdges(t *testing.T) {
	g := core.NewGraph(core.WithCompound())
	require.NoError(t, g.SetParent(NodeB, NodeA))
	require.NoError(t, g.SetEdge(NodeA, NodeB, LabelOne))

	clone := g.CloneEmpty()

	assert.Equal(t, g.Nodes(), clone.Nodes())
	assert.Equal(t, 0, clone.EdgeCount())

	p, _, err := clone.Parent(NodeB)
	require.NoError(t, err)
	assert.Equal(t, NodeA, p, "hierarchy survives without the edges")

	sucs, err := clone.Successors(NodeA)
	require.NoError(t, err)
	assert.Empty(t, sucs, "adjacency starts clean")
}

func TestClone_CarriesDefaultGenerators(t *testing.T) {
	calls := 0
	g := core.NewGraph(core.WithDefaultNodeLabel(core.NodeLabelFn(func(id string) any {
		calls++
		return id + "-label"
	})))
	g.SetNode(NodeA)

	clone := g.Clone()
	clone.SetNode(NodeB)

	assert.Equal(t, "B-label", clone.Node(NodeB), "the generator keeps minting on the clone")
	assert.Equal(t, 2, calls)
}

func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithCompound(), core.WithDefaultNodeLabel(LabelStar))
	g.SetLabel(LabelBlue)
	require.NoError(t, g.SetParent(NodeB, NodeA))
	require.NoError(t, g.SetEdge(NodeA, NodeB))

	g.Clear()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Nil(t, g.Label(), "the graph label is data and is dropped")
	assert.True(t, g.Compound(), "configuration flags survive")

	top, err := g.Children()
	require.NoError(t, err)
	assert.Empty(t, top)

	// The instance is immediately usable, defaults intact.
	g.SetNode(NodeC)
	assert.Equal(t, LabelStar, g.Node(NodeC))
}
