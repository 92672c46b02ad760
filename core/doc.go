// Package core provides an in-memory labeled graph with optional parallel
// edges and an optional compound (nested) hierarchy.
//
// The Graph G = (V,E) supports a rich mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges distinguished by name / multigraphs (WithMultigraph)
//   - A strict parent/child forest over the nodes (WithCompound)
//   - Arbitrary labels on the graph, every node, and every edge
//   - Default-label generators for implicitly created nodes and edges
//     (WithDefaultNodeLabel / WithDefaultEdgeLabel)
//   - Constant-time edge operations via composite keys and nested maps
//   - Node-induced subgraphs with ancestor promotion (FilterNodes)
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Identity done once — any stringifiable value is a node ID; SetNode(1)
//     and SetNode("1") address the same node.
//   - Deterministic iteration — Nodes(), Edges(), Children(), Successors()
//     all return sorted results.
//   - Honest lifecycle — edges auto-create their endpoints, removals
//     cascade, children of a removed node re-attach to the root.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets edge orientation for the whole graph; the default is directed.
//	    • Directed graphs keep (v,w) and (w,v) apart.
//	    • Undirected graphs canonicalize endpoints ascending, so both
//	      orders address the same edge.
//
//	– WithMultigraph()
//	    Allows parallel edges between the same endpoints, told apart by
//	    name. Without it, naming an edge returns ErrMultiEdgeNotAllowed.
//
//	– WithCompound()
//	    Enables SetParent/Parent/Children. Parents form a forest under an
//	    implicit root; cycle-creating assignments are rejected atomically.
//
//	– WithDefaultNodeLabel(label) / WithDefaultEdgeLabel(label)
//	    Label defaults for implicit creation. A NodeLabelFn/EdgeLabelFn is
//	    invoked per created entity; any other value is stored as-is.
//	    Defaults resolve at creation time only — re-labeling never
//	    re-invokes them.
//
// Core Methods:
//
//	// Node lifecycle
//	SetNode(id, label?)                 // O(1), create-or-update
//	SetNodes(ids, label?)               // O(n)
//	Node(id) any                        // O(1), nil when absent/unlabeled
//	HasNode(id) bool                    // O(1)
//	RemoveNode(id)                      // O(deg+children), cascades
//
//	// Edge lifecycle
//	SetEdge(v, w, label?, name?) error  // O(1), auto-creates endpoints
//	SetEdgeObj(e, label?) error         // O(1), Edge-object form
//	SetPath(ids, label?)                // O(n) over consecutive pairs
//	Edge(v, w, name?) any               // O(1), nil when absent
//	HasEdge(v, w, name?) bool           // O(1)
//	RemoveEdge(v, w, name?)             // O(1), endpoints stay
//
//	// Hierarchy (compound graphs)
//	SetParent(child, parent?) error     // O(depth), cycle-checked first
//	Parent(v) (string, bool, error)     // parent / at-root / not-applicable
//	Children(v?) ([]string, error)      // no argument = the implicit root
//
//	// Query
//	Nodes() []string                    // O(V log V), sorted
//	Edges() []Edge                      // O(E log E), sorted by (V,W,Name)
//	Predecessors/Successors/Neighbors(v)// O(k log k), unique, sorted
//	InEdges/OutEdges/NodeEdges(v, u?)   // O(d log d), pair filter optional
//	Sources()/Sinks() []string          // O(V log V)
//	IsLeaf(id) bool                     // O(1)
//	NodeCount()/EdgeCount() int         // O(1)
//	Stats() *GraphStats                 // O(1) snapshot
//
//	// Extraction & copying
//	FilterNodes(keep) *Graph            // O(V+E), ancestor promotion
//	Clone() *Graph                      // O(V+E), deep copy
//	CloneEmpty() *Graph                 // O(V), nodes+hierarchy, no edges
//	Clear()                             // O(1), keep flags and defaults
//
// Edge struct fields:
//
//	V    string   // canonical source node ID
//	W    string   // canonical target node ID
//	Name string   // distinguishes parallel edges; "" = unnamed
//
// Errors:
//
//	ErrMultiEdgeNotAllowed – named edge on a non-multigraph
//	ErrNotCompound         – hierarchy API on a non-compound graph
//	ErrHierarchyCycle      – parent assignment would create a cycle
//	ErrNodeNotFound        – listing/adjacency query on an absent node
//
// Identity: node IDs may be any value; they are canonicalized to strings on
// entry (strconv formatting for numbers and bools, fmt.Stringer honored).
// IDs containing U+0000 or U+0001 are reserved for internal keys — avoid
// them. Labels are opaque to the graph and never inspected.
//
// Concurrency: a Graph confines itself to one goroutine at a time. It holds
// no locks; wrap it yourself if you share an instance.
package core
