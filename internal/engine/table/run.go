package table

import "github.com/dshills/piecetable/internal/engine/store"

// Micro-insert sessions batch a burst of small consecutive inserts (think
// one keystroke at a time) into a single run piece. The run piece is
// spliced in once when the session opens, each extension appends bytes to
// the add buffer and grows the piece in place, and closing the session
// hands the caller the position and accumulated bytes so the whole burst
// can be recorded as one command. While a session is open the run piece is
// the only piece allowed to have length zero.

// RunOpen reports whether a micro-insert session is open.
func (t *Table) RunOpen() bool {
	return t.run != none
}

// OpenRun starts a micro-insert session at document position pos.
func (t *Table) OpenRun(pos int) error {
	if t.run != none {
		return ErrSessionOpen
	}
	if _, _, _, err := t.locate(pos); err != nil {
		return err
	}
	np := t.alloc(piece{slot: store.Add, start: t.store.AddLen(), length: 0, next: none})
	if err := t.splicePiece(pos, np); err != nil {
		t.release(np)
		return err
	}
	t.run = np
	t.runPos = pos
	t.runStart = t.store.AddLen()
	return nil
}

// ExtendRun appends text to the open session's run piece. The document
// reflects the bytes immediately; only the history record is deferred.
func (t *Table) ExtendRun(text []byte) error {
	if t.run == none {
		return ErrNoSession
	}
	if len(text) == 0 {
		return nil
	}
	if _, _, err := t.store.Append(text); err != nil {
		return err
	}
	t.pieces[t.run].length += len(text)
	return nil
}

// CloseRun ends the session and returns its position and a private copy of
// the accumulated bytes. A session that never received any bytes leaves no
// trace: its empty run piece is unlinked and recycled.
func (t *Table) CloseRun() (pos int, text []byte, err error) {
	if t.run == none {
		return 0, nil, ErrNoSession
	}
	r := t.run
	t.run = none
	pos = t.runPos

	n := t.pieces[r].length
	if n == 0 {
		t.unlink(t.prevOf(r), r)
		return pos, nil, nil
	}
	text = make([]byte, n)
	copy(text, t.store.Read(store.Add, t.runStart, n))
	return pos, text, nil
}
