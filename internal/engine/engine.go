package engine

import (
	"fmt"
	"io"

	"github.com/dshills/piecetable/internal/engine/history"
	"github.com/dshills/piecetable/internal/engine/store"
	"github.com/dshills/piecetable/internal/engine/table"
)

// Slot identifies a backing buffer; re-exported for diagnostics.
type Slot = store.Slot

// Re-export the slot constants.
const (
	SlotOriginal = store.Original
	SlotAdd      = store.Add
)

// TextBuffer is the facade over the piece-table engine. It owns the
// backing store, the piece chain and the command log, and is the only
// place where forward edits are recorded.
//
// A TextBuffer is exclusively owned by one logical owner. Nothing here
// locks; callers needing shared access serialize externally.
type TextBuffer struct {
	store *store.Store
	table *table.Table
	hist  *history.History

	// Configuration
	maxUndoEntries int
	maxAddBytes    int
	initContent    string
}

// New creates an empty TextBuffer with the given options.
func New(opts ...Option) *TextBuffer {
	b := &TextBuffer{
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.store = store.New([]byte(b.initContent), b.maxAddBytes)
	b.table = table.New(b.store)
	b.hist = history.New(b.maxUndoEntries)
	return b
}

// NewFromString creates a TextBuffer whose original buffer holds s.
// The chain starts as a single original piece spanning the whole string,
// or empty when s is empty.
func NewFromString(s string, opts ...Option) *TextBuffer {
	return New(append([]Option{WithContent(s)}, opts...)...)
}

// NewFromReader creates a TextBuffer loaded from r.
func NewFromReader(r io.Reader, opts ...Option) (*TextBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

// Edit Operations

// Insert places text at byte position pos and records one Insert command.
func (b *TextBuffer) Insert(pos int, text string) error {
	if b.table.RunOpen() {
		return ErrSessionOpen
	}
	if text == "" {
		return ErrMissingText
	}
	if err := b.table.Insert(pos, []byte(text)); err != nil {
		return err
	}
	b.hist.Record(history.NewInsert(pos, []byte(text)))
	return nil
}

// Remove deletes length bytes starting at pos and records one Remove
// command. The removed text is captured before the chain is touched.
func (b *TextBuffer) Remove(pos, length int) error {
	if b.table.RunOpen() {
		return ErrSessionOpen
	}
	removed, err := b.table.Slice(pos, length)
	if err != nil {
		return err
	}
	if err := b.table.Remove(pos, length); err != nil {
		return err
	}
	b.hist.Record(history.NewRemove(pos, removed))
	return nil
}

// Replace deletes length bytes at pos and places text there, recorded as a
// single Replace command so undo and redo treat it atomically.
func (b *TextBuffer) Replace(pos, length int, text string) error {
	if b.table.RunOpen() {
		return ErrSessionOpen
	}
	if text == "" {
		return ErrMissingText
	}
	removed, err := b.table.Slice(pos, length)
	if err != nil {
		return err
	}
	if err := b.table.Replace(pos, length, []byte(text)); err != nil {
		return err
	}
	b.hist.Record(history.NewReplace(pos, removed, []byte(text)))
	return nil
}

// Undo / Redo

// Undo reverses the most recent recorded edit.
func (b *TextBuffer) Undo() error {
	if b.table.RunOpen() {
		return ErrSessionOpen
	}
	return b.hist.Undo(b.table)
}

// Redo re-applies the most recently undone edit.
func (b *TextBuffer) Redo() error {
	if b.table.RunOpen() {
		return ErrSessionOpen
	}
	return b.hist.Redo(b.table)
}

// CanUndo reports whether an undo is available.
func (b *TextBuffer) CanUndo() bool { return b.hist.CanUndo() }

// CanRedo reports whether a redo is available.
func (b *TextBuffer) CanRedo() bool { return b.hist.CanRedo() }

// UndoCount returns the number of undoable edits.
func (b *TextBuffer) UndoCount() int { return b.hist.UndoCount() }

// RedoCount returns the number of redoable edits.
func (b *TextBuffer) RedoCount() int { return b.hist.RedoCount() }

// ClearHistory discards all undo and redo records.
func (b *TextBuffer) ClearHistory() { b.hist.Clear() }

// Micro-insert sessions

// StartMicroInserts opens a batching session at pos: consecutive small
// inserts accumulate into one pending add-buffer extension and become a
// single undo unit. Other edits and undo/redo are rejected until the
// session is stopped.
func (b *TextBuffer) StartMicroInserts(pos int) error {
	return b.table.OpenRun(pos)
}

// MicroInsert appends text to the open session. The document reflects the
// bytes immediately; only the history record is deferred.
func (b *TextBuffer) MicroInsert(text string) error {
	if text == "" {
		return ErrMissingText
	}
	return b.table.ExtendRun([]byte(text))
}

// StopMicroInserts closes the session and records the whole accumulated
// run as one Insert command. A session that received no bytes records
// nothing.
func (b *TextBuffer) StopMicroInserts() error {
	pos, text, err := b.table.CloseRun()
	if err != nil {
		return err
	}
	if len(text) > 0 {
		b.hist.Record(history.NewInsert(pos, text))
	}
	return nil
}

// Queries

// ByteAt returns the byte at position pos.
func (b *TextBuffer) ByteAt(pos int) (byte, error) {
	return b.table.ByteAt(pos)
}

// Slice returns a copy of length bytes starting at pos.
func (b *TextBuffer) Slice(pos, length int) (string, error) {
	s, err := b.table.Slice(pos, length)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// Line returns the n-th line, 1-based, without its newline.
func (b *TextBuffer) Line(n int) (string, error) {
	s, err := b.table.Line(n)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// Len returns the document length in bytes.
func (b *TextBuffer) Len() int { return b.table.Len() }

// String renders the whole document.
func (b *TextBuffer) String() string { return b.table.String() }

// PieceCount returns the number of pieces in the chain.
func (b *TextBuffer) PieceCount() int { return b.table.PieceCount() }

// Dump writes a diagnostic view of the chain, buffers and history to w.
// Debug aid only; the format is not a compatibility surface.
func (b *TextBuffer) Dump(w io.Writer) {
	b.table.Dump(w)
	fmt.Fprintf(w, "history: undo=%d redo=%d\n", b.hist.UndoCount(), b.hist.RedoCount())
	if desc, ok := b.hist.PeekUndo(); ok {
		fmt.Fprintf(w, "next undo: %s\n", desc)
	}
	if desc, ok := b.hist.PeekRedo(); ok {
		fmt.Fprintf(w, "next redo: %s\n", desc)
	}
}
