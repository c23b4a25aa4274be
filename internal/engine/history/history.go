package history

import (
	"errors"

	"github.com/dshills/piecetable/internal/engine/table"
)

// Errors returned by history operations.
var (
	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// History holds the two LIFO command stacks that drive undo and redo.
// A command moves between the stacks on undo/redo; it is never duplicated
// or re-derived. Undoing inverts the popped command against the current
// chain, redoing replays it forward; neither records anything new.
type History struct {
	undo       []*Command
	redo       []*Command
	maxEntries int
}

// New creates a history bounded to maxEntries undo records.
// Values <= 0 select DefaultMaxEntries.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record pushes a freshly executed forward edit onto the undo stack.
// Any redoable commands are discarded: once the document diverges, a stale
// redo record may address text that no longer exists.
func (h *History) Record(cmd *Command) {
	h.undo = append(h.undo, cmd)
	h.redo = nil

	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = h.undo[excess:]
	}
}

// Undo pops the most recent command, applies its inverse against the
// current chain and moves the command to the redo stack.
func (h *History) Undo(t *table.Table) error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	if err := cmd.revert(t); err != nil {
		h.undo = append(h.undo, cmd)
		return err
	}
	h.redo = append(h.redo, cmd)
	return nil
}

// Redo pops the most recently undone command, replays it forward and moves
// it back onto the undo stack.
func (h *History) Redo(t *table.Table) error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	if err := cmd.apply(t); err != nil {
		h.redo = append(h.redo, cmd)
		return err
	}
	h.undo = append(h.undo, cmd)
	return nil
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// UndoCount returns the number of undoable commands.
func (h *History) UndoCount() int {
	return len(h.undo)
}

// RedoCount returns the number of redoable commands.
func (h *History) RedoCount() int {
	return len(h.redo)
}

// Clear discards all undo and redo records.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// PeekUndo returns a description of the next undo, if any.
func (h *History) PeekUndo() (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	return h.undo[len(h.undo)-1].Description(), true
}

// PeekRedo returns a description of the next redo, if any.
func (h *History) PeekRedo() (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	return h.redo[len(h.redo)-1].Description(), true
}
