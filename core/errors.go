// File: errors.go
// Role: Sentinel errors shared by all core graph operations.
//
// Classification:
//   - Policy violations (graph was not configured for the request):
//     ErrMultiEdgeNotAllowed, ErrNotCompound.
//   - Structural violations (request would corrupt an invariant):
//     ErrHierarchyCycle.
//   - Lookup failures (request names a node the graph does not hold):
//     ErrNodeNotFound.
//
// All sentinels are plain errors.New values; match them with errors.Is.
// Mutating operations validate before touching any state, so a returned
// sentinel always means "graph unchanged".

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrMultiEdgeNotAllowed indicates a named (parallel) edge was supplied
	// to a graph constructed without WithMultigraph().
	ErrMultiEdgeNotAllowed = errors.New("core: named edge requires a multigraph")

	// ErrNotCompound indicates a hierarchy operation on a graph constructed
	// without WithCompound().
	ErrNotCompound = errors.New("core: not a compound graph")

	// ErrHierarchyCycle indicates a SetParent call that would make a node
	// its own ancestor.
	ErrHierarchyCycle = errors.New("core: parent assignment would create a cycle")

	// ErrNodeNotFound indicates a listing or adjacency query referenced a
	// node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)
