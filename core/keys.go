// File: keys.go
// Role: Identity codec: canonical node IDs and composite edge keys.
//
// Every identifier handed to the public API is normalized to a canonical
// string before it touches storage, so SetNode(1) and SetNode("1") address
// the same node. Edge keys concatenate the canonical endpoints and the edge
// name with an unprintable delimiter; for undirected graphs the endpoints
// are ordered ascending first, which makes (a,b) and (b,a) the same edge.
// Keys are opaque: equality is their only contract.

package core

import (
	"fmt"
	"strconv"
)

const (
	// rootID is the reserved identifier of the implicit hierarchy root.
	// It never collides with user nodes as long as IDs avoid U+0000/U+0001.
	rootID = "\x00"

	// defaultEdgeName fills the name slot of unnamed edge keys.
	defaultEdgeName = "\x00"

	// edgeKeyDelim separates the components of a composite edge key.
	edgeKeyDelim = "\x01"
)

// stringifyID converts any externally supplied identifier to its canonical
// string form. Strings pass through, fmt.Stringer is honored, and the
// numeric/bool fast paths match strconv formatting ("1", "1.5", "true").
// Anything else, including nil, falls through to fmt.Sprint.
// Complexity: O(len(result)).
func stringifyID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(id)
	}
}

// optionalID resolves a trailing variadic identifier argument.
// Returns ok=false when the argument is absent or nil.
func optionalID(args []any) (id string, ok bool) {
	if len(args) == 0 || args[0] == nil {
		return "", false
	}

	return stringifyID(args[0]), true
}

// optionalName resolves a trailing variadic edge-name argument.
// Absent, nil, and values that stringify to "" all mean "unnamed".
func optionalName(args []any) string {
	if len(args) == 0 || args[0] == nil {
		return ""
	}

	return stringifyID(args[0])
}

// edgeKeyOf builds the composite key for the edge (v, w, name).
// Undirected graphs order the endpoints ascending so that both argument
// orders address the same storage slot. An empty name selects the
// reserved unnamed slot.
// Complexity: O(len(v)+len(w)+len(name)).
func (g *Graph) edgeKeyOf(v, w, name string) string {
	if !g.directed && v > w {
		v, w = w, v
	}
	if name == "" {
		name = defaultEdgeName
	}

	return v + edgeKeyDelim + w + edgeKeyDelim + name
}
