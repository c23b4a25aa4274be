package history

import (
	"fmt"

	"github.com/dshills/piecetable/internal/engine/table"
)

// Kind identifies the forward operation a command records.
type Kind uint8

const (
	// Insert placed Inserted at Pos.
	Insert Kind = iota
	// Remove deleted Length bytes (Removed) starting at Pos.
	Remove
	// Replace deleted Length bytes (Removed) at Pos and placed Inserted there.
	Replace
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Command is a self-contained record of one forward edit. It owns private
// copies of any text it references; nothing in it borrows from the piece
// chain or the backing buffers, so it stays valid across arbitrary later
// chain mutations. Undo and redo work purely from (position, text) pairs;
// no chain node identity is ever captured.
type Command struct {
	Kind     Kind
	Pos      int
	Length   int // bytes inserted (Insert) or removed (Remove, Replace)
	Inserted []byte
	Removed  []byte
}

// NewInsert records an insertion of text at pos. The text is copied.
func NewInsert(pos int, text []byte) *Command {
	return &Command{Kind: Insert, Pos: pos, Length: len(text), Inserted: cloneBytes(text)}
}

// NewRemove records a removal at pos of removed, captured before the edit.
func NewRemove(pos int, removed []byte) *Command {
	return &Command{Kind: Remove, Pos: pos, Length: len(removed), Removed: cloneBytes(removed)}
}

// NewReplace records a replacement of removed by text at pos.
func NewReplace(pos int, removed, text []byte) *Command {
	return &Command{
		Kind:     Replace,
		Pos:      pos,
		Length:   len(removed),
		Inserted: cloneBytes(text),
		Removed:  cloneBytes(removed),
	}
}

// revert applies the command's inverse structurally against the current
// chain without recording anything.
func (c *Command) revert(t *table.Table) error {
	switch c.Kind {
	case Insert:
		return t.Remove(c.Pos, len(c.Inserted))
	case Remove:
		return t.Insert(c.Pos, c.Removed)
	case Replace:
		// Replace appends the incoming bytes before removing anything, so
		// a failed append leaves the document on its pre-undo state rather
		// than half-reverted.
		return t.Replace(c.Pos, len(c.Inserted), c.Removed)
	default:
		return fmt.Errorf("revert: unknown command kind %d", c.Kind)
	}
}

// apply replays the command forward structurally without recording.
func (c *Command) apply(t *table.Table) error {
	switch c.Kind {
	case Insert:
		return t.Insert(c.Pos, c.Inserted)
	case Remove:
		return t.Remove(c.Pos, c.Length)
	case Replace:
		return t.Replace(c.Pos, c.Length, c.Inserted)
	default:
		return fmt.Errorf("apply: unknown command kind %d", c.Kind)
	}
}

// Description returns a human-readable summary for history displays.
func (c *Command) Description() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("insert %d bytes at %d", len(c.Inserted), c.Pos)
	case Remove:
		return fmt.Sprintf("remove %d bytes at %d", c.Length, c.Pos)
	case Replace:
		return fmt.Sprintf("replace %d bytes at %d with %d bytes", c.Length, c.Pos, len(c.Inserted))
	default:
		return "unknown"
	}
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
