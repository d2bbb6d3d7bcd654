// Package dof parses and validates .dof keyboard layout documents.
//
// A document is resolved into an immutable Document:
//
//   - layers of classified keys, all sharing the shape of the main layer, with
//     shift derived from main when absent
//   - a board geometry from a preset name, a relative row description or
//     explicit key rectangles, bound to the layers through an anchor
//   - a per-slot fingering, explicit or expanded from a named preset
//   - combos per layer, with duplicate keys told apart by occurrence index
//
// Failures are reported as Issues (JSON Pointer, code, message) so that
// callers can point at the offending field.
//
// Design policy:
//   - Keep only public APIs in the root package; put token handling under internal/.
//   - Token sources live under source/, the CLI under cmd/dof.
//   - Parsing is pure: constant tables are built once and never mutated.
//
// Typical usage:
//
//	doc, err := dof.ParseBytes(ctx, data)
//	doc, err := dof.Parse(ctx, dof.YAMLBytes(data))
//	out, err := json.Marshal(doc)
package dof
