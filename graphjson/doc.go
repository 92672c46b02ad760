// SPDX-License-Identifier: MIT

// Package graphjson serializes core.Graph values to a stable JSON form
// and rebuilds them, preserving:
//
//   - the construction flags (directed, multigraph, compound),
//   - every node with its label and, when compound, its parent,
//   - every edge with its name and label,
//   - the graph-level label.
//
// Two layers of API:
//
//	Write(g) → *Doc        capture into the wire struct
//	Read(doc) → *Graph     replay a wire struct into a fresh graph
//	Marshal(g) → []byte    Write + encoding/json in one step
//	Unmarshal(b) → *Graph  encoding/json + Read in one step
//
// Doc is exported so callers can embed graphs inside larger payloads or
// post-process the wire form before encoding.
//
// Fidelity notes:
//
//   - Output is deterministic: nodes sort lex asc, edges sort by
//     (v, w, name), so equal graphs marshal to equal bytes.
//   - Labels travel verbatim through the `any` Value fields. After a
//     JSON round-trip numeric labels are float64, the encoding/json
//     default for untyped numbers.
//   - Read replays through the regular mutators, so malformed docs
//     (named edges without multigraph, parents without compound, parent
//     cycles) surface the matching core sentinel via errors.Is.
package graphjson
