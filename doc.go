// Package grafnest is an in-memory home for labeled graphs — directed or
// undirected, with optional parallel edges and optional nested (compound)
// structure.
//
// 🚀 What is grafnest?
//
//	A small, focused library for the graph bookkeeping layer beneath
//	layout, scheduling and analysis code:
//		• Core primitives: nodes & edges with arbitrary labels
//		• Multigraphs: parallel edges distinguished by name
//		• Compound graphs: a strict parent/child tree over the nodes
//		• Induced subgraphs: FilterNodes with ancestor promotion
//		• Snapshots: Clone, CloneEmpty and Clear for cheap copies & resets
//		• JSON documents: Write/Read a graph as a plain document
//
// ✨ Why choose grafnest?
//
//   - Predictable – every listing is sorted, every failure is a sentinel error
//   - Faithful – undirected edges are order-insensitive, removals cascade
//   - Pure Go – a single test-only dependency, no cgo
//   - Honest – one goroutine at a time; no hidden locks to lull you
//
// Everything is organized under two subpackages:
//
//	core/      — the Graph type: nodes, edges, hierarchy, filtering
//	graphjson/ — serialize a core.Graph to and from a JSON document
//
// Quick ASCII example:
//
//	    root
//	    ├── group₁: A ⇉ B   (two parallel edges, "fast" and "slow")
//	    └── group₂: C ─ D
//
//	a compound multigraph with two groups and three edges.
//
// Dive into README.md for full examples and the package docs of core/ for
// the precise contracts.
//
//	go get github.com/katalvlaran/grafnest
package grafnest
