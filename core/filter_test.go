// Package core_test verifies FilterNodes: the induced subgraph, label and
// configuration carry-over, and ancestor promotion in compound graphs.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafnest/core"
)

func keepAll(string) bool  { return true }
func keepNone(string) bool { return false }

func TestFilterNodes_InducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	g.SetNode(NodeA, LabelOne)
	require.NoError(t, g.SetEdge(NodeA, NodeB, LabelBlue))
	require.NoError(t, g.SetEdge(NodeB, NodeC))
	require.NoError(t, g.SetEdge(NodeA, NodeC))

	sub := g.FilterNodes(func(id string) bool { return id != NodeC })

	assert.Equal(t, []string{NodeA, NodeB}, sub.Nodes())
	assert.Equal(t, []core.Edge{{V: NodeA, W: NodeB}}, sub.Edges(),
		"edges touching a dropped node vanish")
	assert.Equal(t, LabelOne, sub.Node(NodeA), "node labels carry over")
	assert.Equal(t, LabelBlue, sub.Edge(NodeA, NodeB), "edge labels carry over")

	// The copy is detached from the original.
	sub.SetNode(NodeZ)
	assert.False(t, g.HasNode(NodeZ))
}

func TestFilterNodes_CarriesConfiguration(t *testing.T) {
	g := core.NewGraph(
		core.WithDirected(false),
		core.WithCompound(),
		core.WithMultigraph(),
	)
	g.SetLabel(LabelStar)

	sub := g.FilterNodes(keepAll)

	assert.False(t, sub.Directed())
	assert.True(t, sub.Compound())
	assert.True(t, sub.Multigraph())
	assert.Equal(t, LabelStar, sub.Label())
}

func TestFilterNodes_KeepAllAndNone(t *testing.T) {
	g := buildNested(t) // root → A → B → C, plus X

	full := g.FilterNodes(keepAll)
	assert.Equal(t, g.Nodes(), full.Nodes())
	p, _, err := full.Parent(NodeC)
	require.NoError(t, err)
	assert.Equal(t, NodeB, p, "unbroken parent chains survive intact")

	empty := g.FilterNodes(keepNone)
	assert.Equal(t, 0, empty.NodeCount())
	assert.Equal(t, 0, empty.EdgeCount())
	assert.True(t, empty.Compound(), "configuration survives even an empty filter")
}

func TestFilterNodes_PromotesToSurvivingAncestor(t *testing.T) {
	g := newCompound()
	require.NoError(t, g.SetParent(NodeB, NodeA)) // A → B
	require.NoError(t, g.SetParent(NodeC, NodeB)) // B → C

	sub := g.FilterNodes(func(id string) bool { return id != NodeB })

	// C's parent B is gone; C is promoted to B's parent A.
	p, hasParent, err := sub.Parent(NodeC)
	require.NoError(t, err)
	assert.True(t, hasParent)
	assert.Equal(t, NodeA, p)

	kids, err := sub.Children(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeC}, kids)
}

func TestFilterNodes_PromotesToRoot(t *testing.T) {
	g := newCompound()
	require.NoError(t, g.SetParent(NodeB, NodeA))
	require.NoError(t, g.SetParent(NodeC, NodeB))

	// Drop the whole ancestor chain: C lands at the top level.
	sub := g.FilterNodes(func(id string) bool { return id == NodeC })

	_, hasParent, err := sub.Parent(NodeC)
	require.NoError(t, err)
	assert.False(t, hasParent)

	top, err := sub.Children()
	require.NoError(t, err)
	assert.Equal(t, []string{NodeC}, top)
}

func TestFilterNodes_MultigraphEdges(t *testing.T) {
	m := newMulti()
	require.NoError(t, m.SetEdge(NodeA, NodeB, LabelOne))
	require.NoError(t, m.SetEdge(NodeA, NodeB, LabelTwo, NameAlt))
	require.NoError(t, m.SetEdge(NodeB, NodeC, nil, NameAlt))

	sub := m.FilterNodes(func(id string) bool { return id != NodeC })

	assert.Equal(t, 2, sub.EdgeCount())
	assert.Equal(t, LabelTwo, sub.Edge(NodeA, NodeB, NameAlt),
		"parallel edges keep their names and labels")
}

func TestFilterNodes_UndirectedEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	require.NoError(t, g.SetEdge(NodeB, NodeA))
	require.NoError(t, g.SetEdge(NodeC, NodeB))

	sub := g.FilterNodes(func(id string) bool { return id != NodeC })

	assert.True(t, sub.HasEdge(NodeA, NodeB))
	assert.True(t, sub.HasEdge(NodeB, NodeA))
	assert.Equal(t, 1, sub.EdgeCount())
}

func TestFilterNodes_GeneratorsNotCopied(t *testing.T) {
	g := core.NewGraph(core.WithDefaultNodeLabel(LabelStar))

	g.SetNode(NodeA)
	sub := g.FilterNodes(keepAll)

	assert.Equal(t, LabelStar, sub.Node(NodeA),
		"already-resolved labels carry over as plain values")

	sub.SetNode(NodeB)
	assert.Nil(t, sub.Node(NodeB),
		"the filtered copy does not inherit default generators")
}
