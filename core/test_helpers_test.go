// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for grafnest/core tests.

package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafnest/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"

	NodeX = "X"
	NodeY = "Y"
	NodeZ = "Z"
)

// Common edge names used across core tests.
const (
	NameAlt  = "alt"
	NameFast = "fast"
	NameSlow = "slow"
)

// Common labels used across core tests (avoid magic values in test bodies).
const (
	LabelOne  = 1
	LabelTwo  = 2
	LabelBlue = "blue"
	LabelStar = "star"
)

// newCompound returns a directed compound graph.
func newCompound() *core.Graph {
	return core.NewGraph(core.WithCompound())
}

// newMulti returns a directed multigraph.
func newMulti() *core.Graph {
	return core.NewGraph(core.WithMultigraph())
}

// buildNested returns a compound graph with the parent chain A → B → C
// (A top-level) plus the detached node X.
func buildNested(t *testing.T) *core.Graph {
	t.Helper()

	g := newCompound()
	require.NoError(t, g.SetParent(NodeB, NodeA))
	require.NoError(t, g.SetParent(NodeC, NodeB))
	g.SetNode(NodeX)

	return g
}

// nodeRef exercises the fmt.Stringer path of the identity codec.
type nodeRef struct{ id int }

func (n nodeRef) String() string {
	return fmt.Sprintf("ref-%d", n.id)
}
