// Package engine provides an editable text buffer built on a piece table:
// an immutable original buffer plus an append-only add buffer, addressed
// through an ordered chain of piece descriptors. Insert, remove and
// replace cost O(edit size) rather than O(document size), and every edit
// is recorded as a position/text command so undo and redo stay correct no
// matter how the chain has been restructured since.
//
// Basic usage:
//
//	buf := engine.NewFromString("Hola\nCola\nGola")
//	buf.Insert(14, ", Hehe")        // "Hola\nCola\nGola, Hehe"
//	buf.Undo()                      // "Hola\nCola\nGola"
//	buf.Replace(2, 5, "REPLACED")   // "HoREPLACEDla\nGola"
//	line, _ := buf.Line(1)          // "HoREPLACEDla"
//
// Text arguments are opaque byte sequences; the engine never validates or
// normalizes encodings. Positions and lengths are byte counts.
//
// The engine has three layers. The store owns the two backing buffers and
// is the only component that copies bulk text. The table owns the piece
// chain and mutates it through split and splice primitives. The history
// holds the undo and redo stacks of self-contained commands; undoing
// applies a command's inverse structurally against the current chain, so
// no chain node identity is ever saved.
//
// A new recorded edit discards the redo stack. Bursts of tiny inserts can
// be batched into one undo unit with StartMicroInserts, MicroInsert and
// StopMicroInserts.
//
// A TextBuffer is not safe for concurrent use; callers needing shared
// access must serialize externally.
package engine
