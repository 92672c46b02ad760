// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: configuration getters, graph-level label,
//       runtime default-label setters, and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Configuration flags are immutable after construction; only labels and
//     label defaults may change at runtime.

package core

// Directed reports whether edges are oriented.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	return g.directed
}

// Compound reports whether the parent/child hierarchy is enabled.
// Complexity: O(1).
func (g *Graph) Compound() bool {
	return g.compound
}

// Multigraph reports whether parallel (named) edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	return g.multigraph
}

// SetLabel assigns the graph-level label. nil clears it.
// Complexity: O(1).
func (g *Graph) SetLabel(label any) {
	g.label = label
}

// Label returns the graph-level label, or nil when none was assigned.
// Complexity: O(1).
func (g *Graph) Label() any {
	return g.label
}

// SetDefaultNodeLabel replaces the default applied to nodes created without
// an explicit label. A NodeLabelFn (or func(string) any) becomes a generator
// invoked once per created node; any other value is stored verbatim.
// Already-created nodes are not revisited.
// Complexity: O(1).
func (g *Graph) SetDefaultNodeLabel(label any) {
	switch fn := label.(type) {
	case NodeLabelFn:
		g.defaultNodeFn, g.defaultNodeValue = fn, nil
	case func(string) any:
		g.defaultNodeFn, g.defaultNodeValue = fn, nil
	default:
		g.defaultNodeFn, g.defaultNodeValue = nil, label
	}
}

// SetDefaultEdgeLabel replaces the default applied to edges created without
// an explicit label. An EdgeLabelFn (or func(string, string, string) any)
// becomes a generator invoked once per created edge with the caller-supplied
// endpoint order; any other value is stored verbatim.
// Complexity: O(1).
func (g *Graph) SetDefaultEdgeLabel(label any) {
	switch fn := label.(type) {
	case EdgeLabelFn:
		g.defaultEdgeFn, g.defaultEdgeValue = fn, nil
	case func(string, string, string) any:
		g.defaultEdgeFn, g.defaultEdgeValue = fn, nil
	default:
		g.defaultEdgeFn, g.defaultEdgeValue = nil, label
	}
}

// resolveNodeLabel produces the default label for a node being created.
func (g *Graph) resolveNodeLabel(id string) any {
	if g.defaultNodeFn != nil {
		return g.defaultNodeFn(id)
	}

	return g.defaultNodeValue
}

// resolveEdgeLabel produces the default label for an edge being created.
// v and w arrive in caller order, not canonical order.
func (g *Graph) resolveEdgeLabel(v, w, name string) any {
	if g.defaultEdgeFn != nil {
		return g.defaultEdgeFn(v, w, name)
	}

	return g.defaultEdgeValue
}

// Stats produces a read-only snapshot of configuration flags and catalog
// sizes.
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	return &GraphStats{
		Directed:   g.directed,
		Compound:   g.compound,
		Multigraph: g.multigraph,
		NodeCount:  len(g.nodes),
		EdgeCount:  len(g.edgeObjs),
	}
}
