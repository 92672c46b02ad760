// File: methods_clone.go
// Role: Whole-graph copying (CloneEmpty, Clone) and resetting (Clear).
// Determinism:
//   - Copies reuse the stored canonical orientations and identity strings,
//     so every listing on the clone matches the source exactly.

package core

// configOptions rebuilds the option list that reproduces g's flags.
func (g *Graph) configOptions() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.compound {
		opts = append(opts, WithCompound())
	}
	if g.multigraph {
		opts = append(opts, WithMultigraph())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration, defaults,
// graph label, nodes, and hierarchy — but no edges.
//
// Unlike FilterNodes, the default-label machinery travels with the copy:
// the clone keeps minting the same defaults the source would.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := NewGraph(g.configOptions()...)
	clone.label = g.label
	clone.defaultNodeFn = g.defaultNodeFn
	clone.defaultNodeValue = g.defaultNodeValue
	clone.defaultEdgeFn = g.defaultEdgeFn
	clone.defaultEdgeValue = g.defaultEdgeValue

	for id, label := range g.nodes {
		clone.addNode(id, label, true)
	}
	if g.compound {
		// addNode seated everyone under the root; restore the real nesting.
		for child, parent := range g.parent {
			if parent != rootID {
				clone.attachParent(child, parent)
			}
		}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, defaults, graph
// label, nodes, hierarchy, edges, and every adjacency index. Labels are
// copied by reference; shared mutable label values stay shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for key, e := range g.edgeObjs {
		clone.writeEdge(e.V, e.W, e.Name, g.edgeLabels[key], true)
	}

	return clone
}

// Clear resets the graph to an empty state: nodes, edges, hierarchy, and
// the graph label are dropped. Configuration flags and the default-label
// settings survive, so the instance behaves like a freshly constructed
// graph with the same options.
// Complexity: O(1) map reallocation.
func (g *Graph) Clear() {
	g.label = nil
	g.nodes = make(map[string]any)
	g.in = make(map[string]map[string]Edge)
	g.out = make(map[string]map[string]Edge)
	g.preds = make(map[string]map[string]int)
	g.sucs = make(map[string]map[string]int)
	g.edgeObjs = make(map[string]Edge)
	g.edgeLabels = make(map[string]any)
	if g.compound {
		g.parent = make(map[string]string)
		g.children = make(map[string]map[string]struct{})
		g.children[rootID] = make(map[string]struct{})
	}
}
