// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/SetEdgeObj/SetPath, label lookups,
//       HasEdge/RemoveEdge (argument and Edge-object forms), Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (V, W, Name) ascending.

package core

import "sort"

// SetEdge creates the edge (v, w) or updates its label. The trailing
// arguments are positional: the first is the label, the second the name
// that distinguishes parallel edges in a multigraph.
//
//	g.SetEdge("a", "b")               // unnamed, default label
//	g.SetEdge("a", "b", 7)            // unnamed, label 7
//	g.SetEdge("a", "b", 7, "alt")     // named parallel edge
//
// A supplied label always wins, including an explicit nil; without one, a
// newly created edge receives the default edge label and an existing edge
// keeps what it has. Missing endpoints are created through the same path as
// SetNode, so the default node label applies to them. In undirected graphs
// (v, w) and (w, v) address the same edge.
//
// Returns ErrMultiEdgeNotAllowed when a name is supplied on a non-multigraph;
// nothing is mutated in that case.
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(v, w any, labelAndName ...any) error {
	var label any
	labelSpecified := len(labelAndName) > 0
	if labelSpecified {
		label = labelAndName[0]
	}
	name := ""
	if len(labelAndName) > 1 {
		name = optionalName(labelAndName[1:])
	}

	return g.setEdge(stringifyID(v), stringifyID(w), name, label, labelSpecified)
}

// SetEdgeObj is the Edge-object form of SetEdge: it creates or re-labels the
// edge identified by e. Unlike SetEdge, it can create a named edge that
// still receives the default edge label (omit the label argument).
// Complexity: O(1) amortized.
func (g *Graph) SetEdgeObj(e Edge, label ...any) error {
	var lv any
	specified := len(label) > 0
	if specified {
		lv = label[0]
	}

	return g.setEdge(e.V, e.W, e.Name, lv, specified)
}

// SetPath applies SetEdge over consecutive pairs of ids, sharing one
// optional label. Fewer than two ids is a no-op. Edges on a path are always
// unnamed, so no multigraph rejection can arise.
// Complexity: O(len(ids)) amortized.
func (g *Graph) SetPath(ids []any, label ...any) {
	for i := 0; i+1 < len(ids); i++ {
		if len(label) > 0 {
			_ = g.SetEdge(ids[i], ids[i+1], label[0])
			continue
		}
		_ = g.SetEdge(ids[i], ids[i+1])
	}
}

// setEdge validates the name policy, then delegates to writeEdge.
// Validation precedes all mutation: a named edge key can only pre-exist on
// a multigraph, so rejecting before the existence check loses nothing.
func (g *Graph) setEdge(v, w, name string, label any, labelSpecified bool) error {
	if name != "" && !g.multigraph {
		return ErrMultiEdgeNotAllowed
	}
	g.writeEdge(v, w, name, label, labelSpecified)

	return nil
}

// writeEdge is the single edge-creation path (name already validated).
//
// Steps:
//  1. Existing key: update the label if one was supplied, otherwise no-op.
//  2. Ensure both endpoints through the node-creation path.
//  3. Resolve the label default with the caller-supplied endpoint order.
//  4. Canonicalize the endpoints (undirected sorts ascending) and register
//     the edge in the catalog, multiplicity counters, and in/out buckets.
func (g *Graph) writeEdge(v, w, name string, label any, labelSpecified bool) {
	key := g.edgeKeyOf(v, w, name)
	if _, exists := g.edgeLabels[key]; exists {
		if labelSpecified {
			g.edgeLabels[key] = label
		}
		return
	}

	g.addNode(v, nil, false)
	g.addNode(w, nil, false)

	if !labelSpecified {
		label = g.resolveEdgeLabel(v, w, name)
	}
	g.edgeLabels[key] = label

	if !g.directed && v > w {
		v, w = w, v
	}
	e := Edge{V: v, W: w, Name: name}
	g.edgeObjs[key] = e
	bumpEntry(g.preds[w], v)
	bumpEntry(g.sucs[v], w)
	g.in[w][key] = e
	g.out[v][key] = e
}

// Edge returns the label of the edge (v, w) — or of the named parallel edge
// when a name is given — and nil when no such edge exists. Use HasEdge to
// distinguish an absent edge from a nil label.
// Complexity: O(1).
func (g *Graph) Edge(v, w any, name ...any) any {
	return g.edgeLabels[g.edgeKeyOf(stringifyID(v), stringifyID(w), optionalName(name))]
}

// EdgeLabel is the Edge-object form of Edge.
// Complexity: O(1).
func (g *Graph) EdgeLabel(e Edge) any {
	return g.edgeLabels[g.edgeKeyOf(e.V, e.W, e.Name)]
}

// HasEdge reports whether the edge (v, w) — or its named variant — exists.
// Complexity: O(1).
func (g *Graph) HasEdge(v, w any, name ...any) bool {
	_, exists := g.edgeLabels[g.edgeKeyOf(stringifyID(v), stringifyID(w), optionalName(name))]

	return exists
}

// HasEdgeObj is the Edge-object form of HasEdge.
// Complexity: O(1).
func (g *Graph) HasEdgeObj(e Edge) bool {
	_, exists := g.edgeLabels[g.edgeKeyOf(e.V, e.W, e.Name)]

	return exists
}

// RemoveEdge deletes the edge (v, w) — or its named variant. Removing an
// absent edge is a no-op; endpoints stay in the graph.
// Complexity: O(1).
func (g *Graph) RemoveEdge(v, w any, name ...any) {
	g.removeEdgeByKey(g.edgeKeyOf(stringifyID(v), stringifyID(w), optionalName(name)))
}

// RemoveEdgeObj is the Edge-object form of RemoveEdge.
// Complexity: O(1).
func (g *Graph) RemoveEdgeObj(e Edge) {
	g.removeEdgeByKey(g.edgeKeyOf(e.V, e.W, e.Name))
}

// removeEdgeByKey unlinks one edge from the catalog, the multiplicity
// counters, and the in/out buckets. Unknown keys are ignored, which also
// makes the second encounter of a self-loop during RemoveNode harmless.
func (g *Graph) removeEdgeByKey(key string) {
	e, exists := g.edgeObjs[key]
	if !exists {
		return
	}
	delete(g.edgeLabels, key)
	delete(g.edgeObjs, key)
	dropEntry(g.preds[e.W], e.V)
	dropEntry(g.sucs[e.V], e.W)
	delete(g.in[e.W], key)
	delete(g.out[e.V], key)
}

// Edges returns all edges sorted by (V, W, Name) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeObjs))
	for _, e := range g.edgeObjs {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edgeObjs)
}

// sortEdges orders edges by (V, W, Name) ascending, in place.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].V != edges[j].V {
			return edges[i].V < edges[j].V
		}
		if edges[i].W != edges[j].W {
			return edges[i].W < edges[j].W
		}

		return edges[i].Name < edges[j].Name
	})
}
