// File: methods_adjacent.go
// Role: Neighborhood APIs (Predecessors, Successors, Neighbors, InEdges,
//       OutEdges, NodeEdges) and the multiplicity-counter helpers.
// Determinism:
//   - Node listings are unique and sorted lex asc.
//   - Edge listings are sorted by (V, W, Name) asc.

package core

import "sort"

// Predecessors returns the unique nodes with an edge into v, sorted asc.
// A self-loop makes a node its own predecessor.
// Returns ErrNodeNotFound when v is absent.
// Complexity: O(k log k) for k predecessors.
func (g *Graph) Predecessors(v any) ([]string, error) {
	bucket, exists := g.preds[stringifyID(v)]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return sortedCounterKeys(bucket), nil
}

// Successors returns the unique nodes reachable by one edge from v, sorted
// asc. A self-loop makes a node its own successor.
// Returns ErrNodeNotFound when v is absent.
// Complexity: O(k log k) for k successors.
func (g *Graph) Successors(v any) ([]string, error) {
	bucket, exists := g.sucs[stringifyID(v)]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return sortedCounterKeys(bucket), nil
}

// Neighbors returns the union of predecessors and successors of v, unique
// and sorted asc.
// Returns ErrNodeNotFound when v is absent.
// Complexity: O(k log k) for k neighbors.
func (g *Graph) Neighbors(v any) ([]string, error) {
	vid := stringifyID(v)
	predBucket, exists := g.preds[vid]
	if !exists {
		return nil, ErrNodeNotFound
	}

	seen := make(map[string]struct{}, len(predBucket)+len(g.sucs[vid]))
	for id := range predBucket {
		seen[id] = struct{}{}
	}
	for id := range g.sucs[vid] {
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// InEdges returns the edges pointing into w, optionally restricted to those
// whose source is v. The multi-edge fan-out survives the restriction: all
// parallel edges between the pair are listed. For undirected graphs the
// buckets hold canonical orientations; prefer NodeEdges there.
// Returns ErrNodeNotFound when w is absent.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) InEdges(w any, v ...any) ([]Edge, error) {
	bucket, exists := g.in[stringifyID(w)]
	if !exists {
		return nil, ErrNodeNotFound
	}
	source, filtered := optionalID(v)

	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		if filtered && e.V != source {
			continue
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// OutEdges returns the edges leaving v, optionally restricted to those
// whose target is w. See InEdges for the undirected caveat.
// Returns ErrNodeNotFound when v is absent.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) OutEdges(v any, w ...any) ([]Edge, error) {
	bucket, exists := g.out[stringifyID(v)]
	if !exists {
		return nil, ErrNodeNotFound
	}
	target, filtered := optionalID(w)

	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		if filtered && e.W != target {
			continue
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// NodeEdges returns every edge incident to v — incoming, outgoing, and
// loops — each listed exactly once, optionally restricted to edges between
// v and w in either orientation.
// Returns ErrNodeNotFound when v is absent.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) NodeEdges(v any, w ...any) ([]Edge, error) {
	vid := stringifyID(v)
	if _, exists := g.nodes[vid]; !exists {
		return nil, ErrNodeNotFound
	}
	other, filtered := optionalID(w)

	// Union by edge key: a self-loop sits in both buckets under one key.
	seen := make(map[string]Edge, len(g.in[vid])+len(g.out[vid]))
	for key, e := range g.in[vid] {
		if filtered && e.V != other {
			continue
		}
		seen[key] = e
	}
	for key, e := range g.out[vid] {
		if filtered && e.W != other {
			continue
		}
		seen[key] = e
	}

	out := make([]Edge, 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// bumpEntry raises the multiplicity counter for key k.
// Called only by edge-mutation code.
func bumpEntry(counter map[string]int, k string) {
	counter[k]++
}

// dropEntry lowers the multiplicity counter for key k and prunes the entry
// when it reaches zero, keeping Predecessors/Successors listings exact.
// Called only by edge-mutation code.
func dropEntry(counter map[string]int, k string) {
	counter[k]--
	if counter[k] <= 0 {
		delete(counter, k)
	}
}

// sortedCounterKeys extracts counter keys sorted lex asc.
func sortedCounterKeys(counter map[string]int) []string {
	ids := make([]string, 0, len(counter))
	for id := range counter {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
