package table

import (
	"errors"

	"github.com/dshills/piecetable/internal/engine/store"
)

// Errors returned by table operations.
var (
	// ErrOffsetOutOfRange indicates a position or range exceeds the document.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrLineOutOfRange indicates a line number past the last line.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrSessionOpen indicates a micro-insert session is already open.
	ErrSessionOpen = errors.New("micro-insert session already open")

	// ErrNoSession indicates no micro-insert session is open.
	ErrNoSession = errors.New("no micro-insert session open")
)

// errSplitOffset reports a split at offset 0 or at the piece's full length.
// Those are identity operations that callers handle without splitting.
var errSplitOffset = errors.New("split offset not inside piece")

// Table is the ordered chain of pieces whose concatenation is the current
// document. It mutates the chain through split and splice primitives and
// reads text through the backing store. All operations are structural:
// nothing here records history, that is the caller's concern.
type Table struct {
	store  *store.Store
	pieces []piece
	free   []ref
	head   ref

	// Open micro-insert session, none when closed.
	run      ref
	runPos   int
	runStart int
}

// New creates a table over st. A non-empty original buffer becomes a single
// piece spanning the whole of it; an empty one leaves the chain empty.
func New(st *store.Store) *Table {
	t := &Table{store: st, head: none, run: none}
	if n := st.OriginalLen(); n > 0 {
		t.head = t.alloc(piece{slot: store.Original, start: 0, length: n, next: none})
	}
	return t
}

// Store returns the backing store.
func (t *Table) Store() *store.Store {
	return t.store
}

// locate walks the chain from the head and resolves pos to the piece whose
// range includes it, together with that piece's predecessor and the
// remaining intra-piece offset. A position on a piece boundary resolves to
// the earlier piece with off equal to its length, which is the valid
// "insert at end" case; pos equal to the document length resolves to the
// last piece the same way. An empty chain resolves pos 0 to (none, none, 0).
func (t *Table) locate(pos int) (prev, cur ref, off int, err error) {
	if pos < 0 {
		return none, none, 0, ErrOffsetOutOfRange
	}
	prev = none
	cur = t.head
	remaining := pos
	for cur != none {
		p := t.pieces[cur]
		if remaining <= p.length {
			return prev, cur, remaining, nil
		}
		remaining -= p.length
		prev = cur
		cur = p.next
	}
	if remaining == 0 {
		return none, none, 0, nil
	}
	return none, none, 0, ErrOffsetOutOfRange
}

// prevOf walks the chain to find the predecessor of r, none if r is the head.
func (t *Table) prevOf(r ref) ref {
	if r == t.head {
		return none
	}
	p := t.head
	for p != none && t.pieces[p].next != r {
		p = t.pieces[p].next
	}
	return p
}

// split divides the piece at r into two adjacent pieces at an internal
// offset: r keeps the first off bytes, a new piece spliced after it takes
// the rest. Offsets 0 and length are rejected, those are identity cases
// the caller already handles.
func (t *Table) split(r ref, off int) error {
	p := t.pieces[r]
	if off <= 0 || off >= p.length {
		return errSplitOffset
	}
	right := t.alloc(piece{slot: p.slot, start: p.start + off, length: p.length - off, next: p.next})
	t.pieces[r].length = off
	t.pieces[r].next = right
	return nil
}

// insertAfter splices r into the chain immediately after after.
func (t *Table) insertAfter(r, after ref) {
	t.pieces[r].next = t.pieces[after].next
	t.pieces[after].next = r
}

// unlink removes r from the chain given its predecessor and recycles it.
func (t *Table) unlink(prev, r ref) {
	if prev == none {
		t.head = t.pieces[r].next
	} else {
		t.pieces[prev].next = t.pieces[r].next
	}
	t.release(r)
}

// splicePiece links np into the chain at document position pos.
// pos has already been validated by the caller.
func (t *Table) splicePiece(pos int, np ref) error {
	prev, cur, off, err := t.locate(pos)
	if err != nil {
		return err
	}

	switch {
	case cur == none:
		// Empty chain.
		t.pieces[np].next = none
		t.head = np
	case off == t.pieces[cur].length:
		// End of a piece, including pos == document length.
		t.insertAfter(np, cur)
	case off == 0:
		// Start of a piece; the chain head may change identity.
		t.pieces[np].next = cur
		if prev == none {
			t.head = np
		} else {
			t.pieces[prev].next = np
		}
	default:
		// Strictly inside: split, then append after the shortened left half.
		if err := t.split(cur, off); err != nil {
			return err
		}
		t.insertAfter(np, cur)
	}
	return nil
}

// spliceAdd creates a piece over the add-buffer range [start, start+length)
// and splices it in at pos.
func (t *Table) spliceAdd(pos, start, length int) error {
	np := t.alloc(piece{slot: store.Add, start: start, length: length, next: none})
	return t.splicePiece(pos, np)
}

// Insert places text at document position pos. The bytes are appended to
// the add buffer before any link is touched, so an allocation failure
// leaves the chain exactly as it was.
func (t *Table) Insert(pos int, text []byte) error {
	if len(text) == 0 {
		_, _, _, err := t.locate(pos)
		return err
	}
	if _, _, _, err := t.locate(pos); err != nil {
		return err
	}
	start, n, err := t.store.Append(text)
	if err != nil {
		return err
	}
	return t.spliceAdd(pos, start, n)
}

// Remove deletes length bytes starting at pos. The start and end boundaries
// are resolved independently by walking from the head; they may land in the
// same piece or in different ones. Any piece whose length would become zero
// is unlinked and recycled, never left reachable.
func (t *Table) Remove(pos, length int) error {
	if length < 0 {
		return ErrOffsetOutOfRange
	}
	if length == 0 {
		_, _, _, err := t.locate(pos)
		return err
	}

	sprev, scur, soff, err := t.locate(pos)
	if err != nil {
		return err
	}
	_, ecur, eoff, err := t.locate(pos + length)
	if err != nil {
		return err
	}

	if scur == ecur {
		t.removeWithin(sprev, scur, soff, eoff)
		return nil
	}
	t.removeAcross(sprev, scur, soff, ecur, eoff)
	return nil
}

// removeWithin drops the byte range [soff, eoff) of the single piece at r.
// length > 0 guarantees soff < eoff and soff < piece length.
func (t *Table) removeWithin(prev, r ref, soff, eoff int) {
	total := t.pieces[r].length
	switch {
	case soff == 0 && eoff == total:
		// The whole piece goes.
		t.unlink(prev, r)
	case eoff == total:
		// Range reaches the piece's end: split at the start offset and
		// drop the trailing fragment.
		_ = t.split(r, soff)
		t.unlink(r, t.pieces[r].next)
	case soff == 0:
		// Range starts the piece: split at the end offset and drop the
		// leading fragment.
		_ = t.split(r, eoff)
		t.unlink(prev, r)
	default:
		// Interior range: split at the end offset, then the start offset,
		// and drop the middle fragment.
		_ = t.split(r, eoff)
		_ = t.split(r, soff)
		t.unlink(r, t.pieces[r].next)
	}
}

// removeAcross drops everything from (scur, soff) up to (ecur, eoff) where
// the boundaries resolved to different pieces. Both boundary pieces are
// split at their offsets, then every whole piece strictly between the split
// points is unlinked and recycled, including boundary remainders that fall
// entirely inside the range.
func (t *Table) removeAcross(sprev, scur ref, soff int, ecur ref, eoff int) {
	// Anchor: the last surviving piece before the removed run, none when
	// the run starts at the chain head.
	var anchor ref
	switch {
	case soff == t.pieces[scur].length:
		// pos sits exactly at the end of scur; the run starts at the
		// next piece and scur survives whole.
		anchor = scur
	case soff == 0:
		anchor = sprev
	default:
		_ = t.split(scur, soff)
		anchor = scur
	}

	// Survivor: the first piece past the removed run. When the range ends
	// inside ecur, split it so its head falls inside the run and its tail
	// survives.
	if eoff < t.pieces[ecur].length {
		_ = t.split(ecur, eoff)
	}
	survivor := t.pieces[ecur].next

	first := t.head
	if anchor != none {
		first = t.pieces[anchor].next
	}
	for r := first; r != none && r != survivor; {
		next := t.pieces[r].next
		t.release(r)
		r = next
	}
	if anchor == none {
		t.head = survivor
	} else {
		t.pieces[anchor].next = survivor
	}
}

// Replace deletes length bytes at pos and splices text in their place.
// The replacement bytes are appended to the add buffer up front, so once
// the removal starts nothing can fail and the operation is atomic.
func (t *Table) Replace(pos, length int, text []byte) error {
	if len(text) == 0 {
		return t.Remove(pos, length)
	}
	if length < 0 {
		return ErrOffsetOutOfRange
	}
	if _, _, _, err := t.locate(pos + length); err != nil {
		return err
	}
	if _, _, _, err := t.locate(pos); err != nil {
		return err
	}
	start, n, err := t.store.Append(text)
	if err != nil {
		return err
	}
	if err := t.Remove(pos, length); err != nil {
		return err
	}
	return t.spliceAdd(pos, start, n)
}
