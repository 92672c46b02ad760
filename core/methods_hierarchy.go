// File: methods_hierarchy.go
// Role: Compound hierarchy: SetParent/Parent/Children and the child-list
//       helpers used by node removal and filtering.
//
// The hierarchy is a forest hanging under an implicit root. Every node in a
// compound graph carries a parent entry (rootID when top-level); only the
// root's own child set exists before the first node does. The forest
// invariant is enforced by walking the proposed ancestor chain before any
// mutation, so a rejected SetParent leaves the graph untouched.

package core

import "sort"

// SetParent makes child a child of parent, detaching it from its previous
// parent first. Without a parent argument (or with nil) the child moves
// directly under the implicit root. Both nodes are created if missing,
// through the same path as SetNode.
//
// Steps:
//  1. Reject on non-compound graphs (ErrNotCompound).
//  2. Walk up from the proposed parent over the current hierarchy; finding
//     child on that chain means a cycle (ErrHierarchyCycle, nothing mutated).
//     Self-parenting is the one-step case of the same walk.
//  3. Ensure both nodes exist, re-link the child.
//
// Complexity: O(depth(parent)).
func (g *Graph) SetParent(child any, parent ...any) error {
	if !g.compound {
		return ErrNotCompound
	}
	cid := stringifyID(child)

	pid, attach := optionalID(parent)
	if !attach {
		pid = rootID
	} else {
		// Cycle check precedes every mutation.
		for ancestor := pid; ; {
			if ancestor == cid {
				return ErrHierarchyCycle
			}
			next, known := g.parent[ancestor]
			if !known || next == rootID {
				break
			}
			ancestor = next
		}
		g.addNode(pid, nil, false)
	}

	g.addNode(cid, nil, false)
	g.attachParent(cid, pid)

	return nil
}

// Parent reports the parent of v. The three outcomes are kept apart:
// a real parent is (parent, true, nil); a top-level node directly under the
// implicit root is ("", false, nil); and "not applicable" is an error —
// ErrNotCompound for non-compound graphs, ErrNodeNotFound for absent nodes.
// Complexity: O(1).
func (g *Graph) Parent(v any) (parent string, hasParent bool, err error) {
	if !g.compound {
		return "", false, ErrNotCompound
	}
	p, exists := g.parent[stringifyID(v)]
	if !exists {
		return "", false, ErrNodeNotFound
	}
	if p == rootID {
		return "", false, nil
	}

	return p, true, nil
}

// Children returns the direct children of v, sorted asc. Without an
// argument (or with nil) it lists the children of the implicit root. On a
// non-compound graph the root query degenerates to all nodes and any
// existing node has no children; absent nodes report ErrNodeNotFound
// either way.
// Complexity: O(k log k) for k children.
func (g *Graph) Children(v ...any) ([]string, error) {
	vid, given := optionalID(v)
	if !given {
		vid = rootID
	}

	if !g.compound {
		if vid == rootID {
			return g.Nodes(), nil
		}
		if _, exists := g.nodes[vid]; exists {
			return []string{}, nil
		}

		return nil, ErrNodeNotFound
	}

	set, exists := g.children[vid]
	if !exists {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// attachParent re-links child under parent. Both must already exist (parent
// may be rootID); the previous link is removed first.
func (g *Graph) attachParent(child, parent string) {
	g.detachFromParent(child)
	g.parent[child] = parent
	g.children[parent][child] = struct{}{}
}

// detachFromParent removes child from its current parent's child set.
func (g *Graph) detachFromParent(child string) {
	if p, exists := g.parent[child]; exists {
		delete(g.children[p], child)
	}
}
