// SPDX-License-Identifier: MIT
//
// File: filter.go
// Role: Node-induced subgraph extraction with compound ancestor promotion.

package core

// FilterNodes returns a new Graph holding the nodes accepted by keep, the
// edges whose endpoints both survive, and — for compound graphs — a
// hierarchy where every kept node hangs from its nearest kept ancestor
// (nodes whose whole ancestor chain was dropped move to the implicit root).
// Configuration flags and the graph label carry over; node and edge labels
// are copied verbatim; the default-label generators are not carried, so the
// result starts with plain nil defaults. The source graph is not mutated.
//
// Steps:
//  1. Build an empty graph with the same flags and graph label.
//  2. Copy accepted nodes with their labels.
//  3. Copy edges with both endpoints kept, labels verbatim.
//  4. Promote: resolve each kept node's nearest surviving ancestor over the
//     ORIGINAL hierarchy, memoized so shared ancestor chains are walked once.
//
// Complexity: O(V + E) plus sorting-free map work; promotion is amortized
// O(V) thanks to the memo.
func (g *Graph) FilterNodes(keep func(id string) bool) *Graph {
	out := NewGraph(g.configOptions()...)
	out.label = g.label

	for id, label := range g.nodes {
		if keep(id) {
			out.addNode(id, label, true)
		}
	}

	for key, e := range g.edgeObjs {
		if _, kept := out.nodes[e.V]; !kept {
			continue
		}
		if _, kept := out.nodes[e.W]; !kept {
			continue
		}
		// Stored objects are already canonical; the label moves verbatim,
		// bypassing the fresh graph's defaults.
		out.writeEdge(e.V, e.W, e.Name, g.edgeLabels[key], true)
	}

	if g.compound {
		// memo maps a node to its promoted parent in the result
		// (rootID when no ancestor survived).
		memo := make(map[string]string, len(out.nodes))
		var surviving func(id string) string
		surviving = func(id string) string {
			if p, done := memo[id]; done {
				return p
			}
			parent, exists := g.parent[id]
			switch {
			case !exists || parent == rootID:
				parent = rootID
			case !out.HasNode(parent):
				parent = surviving(parent)
			}
			memo[id] = parent

			return parent
		}

		for id := range out.nodes {
			if p := surviving(id); p != rootID {
				out.attachParent(id, p)
			}
			// Fresh nodes already sit under the root; no re-attach needed.
		}
	}

	return out
}
