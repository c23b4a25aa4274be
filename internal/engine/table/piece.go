package table

import "github.com/dshills/piecetable/internal/engine/store"

// ref addresses a piece inside the table's arena. Pieces refer to their
// successors by index rather than by pointer, so splitting, splicing and
// freeing are plain integer operations and a freed piece can never be
// reached through a stale link.
type ref int32

// none is the nil successor.
const none ref = -1

// piece describes a contiguous byte range in one backing buffer.
// Every piece reachable from the chain head has length > 0; zero-length
// pieces are unlinked and recycled immediately (the one exception is the
// run piece of an open micro-insert session, which starts empty).
type piece struct {
	slot   store.Slot
	start  int
	length int
	next   ref
}

// alloc places p in the arena, reusing a recycled slot when one exists.
// Growing the arena may move the backing slice, so callers must not hold
// *piece pointers across a call to alloc.
func (t *Table) alloc(p piece) ref {
	if n := len(t.free); n > 0 {
		r := t.free[n-1]
		t.free = t.free[:n-1]
		t.pieces[r] = p
		return r
	}
	t.pieces = append(t.pieces, piece{})
	r := ref(len(t.pieces) - 1)
	t.pieces[r] = p
	return r
}

// release returns r to the free list. The caller has already unlinked it.
func (t *Table) release(r ref) {
	t.pieces[r] = piece{next: none}
	t.free = append(t.free, r)
}
