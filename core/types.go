// File: types.go
// Role: Graph, Edge, GraphStats, construction options, and the NewGraph
//       constructor. Storage invariants live here; behavior lives in the
//       methods_* files.

package core

// Edge identifies a single edge: source, target, and the optional name that
// distinguishes parallel edges in a multigraph. In undirected graphs V and W
// are stored in ascending order, so Edge{V: "b", W: "a"} and
// Edge{V: "a", W: "b"} address the same edge. An empty Name means unnamed.
type Edge struct {
	// V is the canonical source node ID.
	V string

	// W is the canonical target node ID.
	W string

	// Name distinguishes parallel edges between the same endpoints.
	// Only multigraphs may carry non-empty names.
	Name string
}

// NodeLabelFn generates the label of a node created without an explicit one.
type NodeLabelFn func(id string) any

// EdgeLabelFn generates the label of an edge created without an explicit one.
// It receives the endpoints in the order the caller supplied them, plus the
// edge name ("" for unnamed).
type EdgeLabelFn func(v, w, name string) any

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets edge orientation for the whole graph
// (true = directed, false = undirected). The default is directed.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithCompound enables the parent/child hierarchy APIs (SetParent, Parent,
// Children). Without it those APIs report ErrNotCompound.
func WithCompound() GraphOption {
	return func(g *Graph) { g.compound = true }
}

// WithMultigraph permits parallel edges between the same endpoints,
// distinguished by name.
func WithMultigraph() GraphOption {
	return func(g *Graph) { g.multigraph = true }
}

// WithDefaultNodeLabel sets the label assigned to nodes created without an
// explicit one. A NodeLabelFn (or func(string) any) is invoked per node;
// any other value is stored as-is.
func WithDefaultNodeLabel(label any) GraphOption {
	return func(g *Graph) { g.SetDefaultNodeLabel(label) }
}

// WithDefaultEdgeLabel sets the label assigned to edges created without an
// explicit one. An EdgeLabelFn (or func(string, string, string) any) is
// invoked per edge; any other value is stored as-is.
func WithDefaultEdgeLabel(label any) GraphOption {
	return func(g *Graph) { g.SetDefaultEdgeLabel(label) }
}

// Graph is the core in-memory graph data structure: labeled nodes, labeled
// (optionally named) edges, and an optional compound hierarchy.
//
// Storage model:
//   - nodes holds node ID → label (a present key with a nil label is a
//     legitimate unlabeled node).
//   - edgeObjs and edgeLabels hold the edge catalog keyed by composite edge
//     key (see keys.go).
//   - in/out index incident edge keys per node; preds/sucs count edge
//     multiplicity per neighbor, so multigraph adjacency stays O(1).
//   - parent/children carry the compound hierarchy; children[rootID] is the
//     implicit root's child set.
//
// All indexes are maintained incrementally by every mutation; queries never
// recompute them. A Graph is not safe for concurrent use: callers that share
// an instance across goroutines must synchronize externally.
type Graph struct {
	// Configuration flags, fixed at construction
	directed   bool // edge orientation
	compound   bool // hierarchy enabled
	multigraph bool // parallel (named) edges enabled

	// label is the graph-level label (nil = unlabeled).
	label any

	// Default-label machinery. The fn field wins when non-nil; otherwise
	// the value field is used verbatim. Resolved at creation time only.
	defaultNodeFn    NodeLabelFn
	defaultNodeValue any
	defaultEdgeFn    EdgeLabelFn
	defaultEdgeValue any

	// Node catalog: node ID → label.
	nodes map[string]any

	// Hierarchy (nil unless compound): child → parent, parent → child set.
	parent   map[string]string
	children map[string]map[string]struct{}

	// Adjacency indexes: in[w][edgeKey] / out[v][edgeKey] hold incident
	// edges; preds[w][v] / sucs[v][w] hold per-pair edge multiplicity.
	in    map[string]map[string]Edge
	out   map[string]map[string]Edge
	preds map[string]map[string]int
	sucs  map[string]map[string]int

	// Edge catalog: edgeKey → canonical Edge / label.
	edgeObjs   map[string]Edge
	edgeLabels map[string]any
}

// GraphStats is a read-only snapshot of configuration flags and catalog
// sizes, handy for diagnostics and test assertions.
type GraphStats struct {
	Directed   bool
	Compound   bool
	Multigraph bool
	NodeCount  int
	EdgeCount  int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed, not compound, and not a multigraph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:   true,
		nodes:      make(map[string]any),
		in:         make(map[string]map[string]Edge),
		out:        make(map[string]map[string]Edge),
		preds:      make(map[string]map[string]int),
		sucs:       make(map[string]map[string]int),
		edgeObjs:   make(map[string]Edge),
		edgeLabels: make(map[string]any),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	// Hierarchy maps exist only on compound graphs; the implicit root's
	// child set is bootstrapped so Children() works on an empty graph.
	if g.compound {
		g.parent = make(map[string]string)
		g.children = make(map[string]map[string]struct{})
		g.children[rootID] = make(map[string]struct{})
	}

	return g
}
