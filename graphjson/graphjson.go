// File: graphjson.go
// Role: Lossless JSON codec for core.Graph — a stable wire shape holding
//       the configuration flags, every node with its label and parent,
//       and every edge with its name and label.
// Wire shape:
//
//	{
//	  "options": { "directed": true, "multigraph": false, "compound": false },
//	  "nodes":   [ { "v": "a", "value": 1, "parent": "p" }, ... ],
//	  "edges":   [ { "v": "a", "w": "b", "name": "alt", "value": 2 }, ... ],
//	  "value":   "graph label"
//	}

package graphjson

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/grafnest/core"
)

// Options mirrors the three construction flags of a core.Graph.
type Options struct {
	Directed   bool `json:"directed"`
	Multigraph bool `json:"multigraph"`
	Compound   bool `json:"compound"`
}

// Node is one serialized node. Parent is empty for top-level nodes and
// omitted on the wire. Value carries the label verbatim; an unlabeled
// node serializes as null.
type Node struct {
	V      string `json:"v"`
	Value  any    `json:"value"`
	Parent string `json:"parent,omitempty"`
}

// Edge is one serialized edge. Name is empty for the unnamed edge and
// omitted on the wire.
type Edge struct {
	V     string `json:"v"`
	W     string `json:"w"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value"`
}

// Doc is the full serialized form of a graph.
type Doc struct {
	Options Options `json:"options"`
	Nodes   []Node  `json:"nodes"`
	Edges   []Edge  `json:"edges"`
	Value   any     `json:"value"`
}

// Write captures g as a Doc. Node and edge listings inherit the sorted
// order of core, so the output is deterministic for a given graph.
// Complexity: O(V log V + E log E).
func Write(g *core.Graph) *Doc {
	doc := &Doc{
		Options: Options{
			Directed:   g.Directed(),
			Multigraph: g.Multigraph(),
			Compound:   g.Compound(),
		},
		Value: g.Label(),
	}

	ids := g.Nodes()
	doc.Nodes = make([]Node, 0, len(ids))
	for _, id := range ids {
		n := Node{V: id, Value: g.Node(id)}
		if g.Compound() {
			if parent, hasParent, err := g.Parent(id); err == nil && hasParent {
				n.Parent = parent
			}
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	edges := g.Edges()
	doc.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		doc.Edges = append(doc.Edges, Edge{
			V:     e.V,
			W:     e.W,
			Name:  e.Name,
			Value: g.EdgeLabel(e),
		})
	}

	return doc
}

// Read rebuilds a graph from a Doc. The graph is constructed with the
// Doc's options; nodes, parents, and edges are replayed through the
// regular mutators, so a Doc that violates its own options (a named
// edge without multigraph, a parent without compound, a parent cycle)
// fails with the corresponding core sentinel.
// Complexity: O(V + E) amortized.
func Read(doc *Doc) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(doc.Options.Directed)}
	if doc.Options.Multigraph {
		opts = append(opts, core.WithMultigraph())
	}
	if doc.Options.Compound {
		opts = append(opts, core.WithCompound())
	}

	g := core.NewGraph(opts...)
	g.SetLabel(doc.Value)

	for _, n := range doc.Nodes {
		g.SetNode(n.V, n.Value)
		if n.Parent != "" {
			if err := g.SetParent(n.V, n.Parent); err != nil {
				return nil, fmt.Errorf("graphjson: node %q: %w", n.V, err)
			}
		}
	}

	for _, e := range doc.Edges {
		err := g.SetEdgeObj(core.Edge{V: e.V, W: e.W, Name: e.Name}, e.Value)
		if err != nil {
			return nil, fmt.Errorf("graphjson: edge %q→%q: %w", e.V, e.W, err)
		}
	}

	return g, nil
}

// Marshal serializes g straight to JSON bytes.
func Marshal(g *core.Graph) ([]byte, error) {
	data, err := json.Marshal(Write(g))
	if err != nil {
		return nil, fmt.Errorf("graphjson: marshal: %w", err)
	}

	return data, nil
}

// Unmarshal parses JSON bytes and rebuilds the graph. JSON numbers
// decode as float64, so a graph labeled with int values comes back
// float64-labeled; identities are unaffected because they live in the
// string fields.
func Unmarshal(data []byte) (*core.Graph, error) {
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphjson: unmarshal: %w", err)
	}

	return Read(&doc)
}
