package table

import "strings"

// Len returns the document length: the sum of reachable piece lengths.
func (t *Table) Len() int {
	total := 0
	for r := t.head; r != none; r = t.pieces[r].next {
		total += t.pieces[r].length
	}
	return total
}

// PieceCount returns the number of pieces reachable from the chain head.
func (t *Table) PieceCount() int {
	count := 0
	for r := t.head; r != none; r = t.pieces[r].next {
		count++
	}
	return count
}

// readStart normalizes a located position for reading: a boundary position
// resolves to the end of the left piece, but the byte itself lives at the
// start of the next piece holding any bytes. The run piece of an open
// micro-insert session may be zero-length, so empty pieces are skipped,
// not just stepped over once.
func (t *Table) readStart(cur ref, off int) (ref, int) {
	for cur != none && off == t.pieces[cur].length {
		cur = t.pieces[cur].next
		off = 0
	}
	return cur, off
}

// ByteAt returns the byte at document position pos.
func (t *Table) ByteAt(pos int) (byte, error) {
	_, cur, off, err := t.locate(pos)
	if err != nil {
		return 0, err
	}
	cur, off = t.readStart(cur, off)
	if cur == none {
		// pos == document length.
		return 0, ErrOffsetOutOfRange
	}
	p := t.pieces[cur]
	return t.store.Read(p.slot, p.start+off, 1)[0], nil
}

// Slice copies length bytes starting at pos into a freshly allocated
// buffer: the tail of the start piece, zero or more whole middle pieces,
// and the head of the end piece.
func (t *Table) Slice(pos, length int) ([]byte, error) {
	if length < 0 {
		return nil, ErrOffsetOutOfRange
	}
	if _, _, _, err := t.locate(pos + length); err != nil {
		return nil, err
	}
	_, cur, off, err := t.locate(pos)
	if err != nil {
		return nil, err
	}
	cur, off = t.readStart(cur, off)

	out := make([]byte, 0, length)
	need := length
	for need > 0 && cur != none {
		p := t.pieces[cur]
		n := p.length - off
		if n > need {
			n = need
		}
		out = append(out, t.store.Read(p.slot, p.start+off, n)...)
		need -= n
		off = 0
		cur = p.next
	}
	if need > 0 {
		return nil, ErrOffsetOutOfRange
	}
	return out, nil
}

// Line returns the n-th line, 1-based. A line begins just after the
// previous newline (or at the document start for n == 1) and ends just
// before its own newline, or at the document end for the last line. The
// delimiter is not included.
func (t *Table) Line(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrLineOutOfRange
	}

	newlines := 0
	start := 0
	end := -1
	offset := 0

scan:
	for r := t.head; r != none; r = t.pieces[r].next {
		p := t.pieces[r]
		view := t.store.Read(p.slot, p.start, p.length)
		for i, b := range view {
			if b != '\n' {
				continue
			}
			newlines++
			if newlines == n-1 {
				start = offset + i + 1
			}
			if newlines == n {
				end = offset + i
				break scan
			}
		}
		offset += p.length
	}

	if end < 0 {
		if n > newlines+1 {
			return nil, ErrLineOutOfRange
		}
		end = t.Len()
	}
	return t.Slice(start, end-start)
}

// String renders the whole document by concatenating every piece's bytes
// in chain order. O(document length).
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(t.Len())
	for r := t.head; r != none; r = t.pieces[r].next {
		p := t.pieces[r]
		sb.Write(t.store.Read(p.slot, p.start, p.length))
	}
	return sb.String()
}
