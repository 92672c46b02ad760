// File: methods_nodes.go
// Role: Node lifecycle & queries: SetNode/SetNodes/Node/HasNode/RemoveNode,
//       plus Nodes/NodeCount/Sources/Sinks/IsLeaf.
// Determinism:
//   - Nodes(), Sources(), Sinks() return IDs sorted lexicographically asc.

package core

import "sort"

// SetNode creates the node or updates its label (create-or-update,
// idempotent). A supplied label always wins, including an explicit nil;
// without one, a newly created node receives the default node label and an
// existing node keeps what it has.
// Complexity: O(1) amortized.
func (g *Graph) SetNode(id any, label ...any) {
	if len(label) > 0 {
		g.addNode(stringifyID(id), label[0], true)
		return
	}

	g.addNode(stringifyID(id), nil, false)
}

// SetNodes applies SetNode to each of ids, sharing one optional label.
// Complexity: O(len(ids)) amortized.
func (g *Graph) SetNodes(ids []any, label ...any) {
	for _, id := range ids {
		g.SetNode(id, label...)
	}
}

// addNode is the single node-creation path, shared by SetNode, edge-endpoint
// auto-creation, and hierarchy bootstrap. It registers the label, hierarchy
// slot (under the implicit root), and empty adjacency buckets.
func (g *Graph) addNode(id string, label any, labelSpecified bool) {
	if _, exists := g.nodes[id]; exists {
		if labelSpecified {
			g.nodes[id] = label // update only; indexes stay intact
		}
		return
	}

	// New node: default label applies unless an explicit one was given.
	if !labelSpecified {
		label = g.resolveNodeLabel(id)
	}
	g.nodes[id] = label

	// Every compound node starts as a child of the implicit root.
	if g.compound {
		g.parent[id] = rootID
		g.children[id] = make(map[string]struct{})
		g.children[rootID][id] = struct{}{}
	}

	// Bootstrap adjacency buckets so edge methods can rely on their presence.
	g.in[id] = make(map[string]Edge)
	g.out[id] = make(map[string]Edge)
	g.preds[id] = make(map[string]int)
	g.sucs[id] = make(map[string]int)
}

// Node returns the node's label, or nil when the node is absent or
// unlabeled. Use HasNode to tell the two apart.
// Complexity: O(1).
func (g *Graph) Node(id any) any {
	return g.nodes[stringifyID(id)]
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *Graph) HasNode(id any) bool {
	_, exists := g.nodes[stringifyID(id)]

	return exists
}

// RemoveNode deletes the node together with every incident edge. In a
// compound graph the node's children are re-attached to the implicit root,
// never removed. Removing an absent node is a no-op.
//
// Steps:
//  1. Drop the node from the catalog.
//  2. Detach it from the hierarchy; re-parent its children to the root.
//  3. Remove all in-edges, then all out-edges (self-loops hit both key sets
//     but are removed once).
//  4. Drop the node's adjacency buckets.
//
// Complexity: O(deg(v) + children(v)).
func (g *Graph) RemoveNode(id any) {
	v := stringifyID(id)
	if _, exists := g.nodes[v]; !exists {
		return // no-op for absent node
	}
	delete(g.nodes, v)

	if g.compound {
		g.detachFromParent(v)
		delete(g.parent, v)
		// Snapshot the child set: attachParent mutates it while we iterate.
		orphans := make([]string, 0, len(g.children[v]))
		for child := range g.children[v] {
			orphans = append(orphans, child)
		}
		for _, child := range orphans {
			g.attachParent(child, rootID)
		}
		delete(g.children, v)
	}

	// Snapshot incident edge keys; removeEdgeByKey shrinks the buckets.
	for _, key := range bucketKeys(g.in[v]) {
		g.removeEdgeByKey(key)
	}
	delete(g.in, v)
	delete(g.preds, v)
	for _, key := range bucketKeys(g.out[v]) {
		g.removeEdgeByKey(key)
	}
	delete(g.out, v)
	delete(g.sucs, v)
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the current number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Sources returns the nodes with no incoming edges, sorted asc.
// Complexity: O(V log V).
func (g *Graph) Sources() []string {
	out := make([]string, 0)
	for id := range g.nodes {
		if len(g.in[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Sinks returns the nodes with no outgoing edges, sorted asc.
// Complexity: O(V log V).
func (g *Graph) Sinks() []string {
	out := make([]string, 0)
	for id := range g.nodes {
		if len(g.out[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// IsLeaf reports whether the node has no successors (directed) or no
// neighbors at all (undirected). Absent nodes are not leaves.
// Complexity: O(1).
func (g *Graph) IsLeaf(id any) bool {
	v := stringifyID(id)
	if _, exists := g.nodes[v]; !exists {
		return false
	}
	if g.directed {
		return len(g.sucs[v]) == 0
	}

	return len(g.sucs[v]) == 0 && len(g.preds[v]) == 0
}

// bucketKeys snapshots the keys of an edge bucket for mutation-safe
// iteration.
func bucketKeys(bucket map[string]Edge) []string {
	keys := make([]string, 0, len(bucket))
	for key := range bucket {
		keys = append(keys, key)
	}

	return keys
}
