// Package history provides command-log undo/redo for the piece table.
//
// Every forward edit is recorded as a Command holding only its position
// and private copies of the inserted and removed text. Undo applies the
// inverse of the popped command directly against the current chain; redo
// replays it forward. Neither path records anything new; commands move
// between the undo and redo stacks, they are never duplicated.
//
// The log deliberately stores no piece-chain node identities. An earlier
// design that snapshotted chain pointers breaks as soon as a later edit
// frees a referenced node; a (position, text) record stays valid no matter
// how the chain has been restructured since.
package history
