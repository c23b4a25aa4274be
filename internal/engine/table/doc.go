// Package table implements the piece chain at the heart of the text
// buffer: an ordered sequence of small descriptors whose concatenation is
// the current document. Edits never move the bulk of the text; they split
// and splice descriptors while the backing buffers only ever grow.
//
// Pieces live in an index arena with an explicit "next index or none"
// successor, so split, splice and free are integer operations and freed
// pieces cannot be reached through stale links. All mutators here are
// structural: they transform the chain without recording history, which
// lets the undo/redo machinery replay them directly.
//
// Invariants maintained after every operation:
//   - every piece reachable from the head has length > 0 (except the run
//     piece of an open micro-insert session)
//   - concatenating reachable pieces' bytes in order equals the document
//   - the sum of reachable piece lengths equals Len()
package table
