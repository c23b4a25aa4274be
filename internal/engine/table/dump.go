package table

import (
	"fmt"
	"io"
)

// Dump writes a diagnostic view of the chain and buffers to w. Debug aid
// only; the format is not a compatibility surface.
func (t *Table) Dump(w io.Writer) {
	fmt.Fprintf(w, "table: len=%d pieces=%d arena=%d free=%d\n",
		t.Len(), t.PieceCount(), len(t.pieces), len(t.free))
	fmt.Fprintf(w, "buffers: original=%d add=%d\n",
		t.store.OriginalLen(), t.store.AddLen())
	i := 0
	for r := t.head; r != none; r = t.pieces[r].next {
		p := t.pieces[r]
		fmt.Fprintf(w, "  [%d] #%d %s start=%d len=%d %q\n",
			i, r, p.slot, p.start, p.length, previewBytes(t.store.Read(p.slot, p.start, p.length)))
		i++
	}
	if t.run != none {
		fmt.Fprintf(w, "open micro-insert run: piece #%d pos=%d\n", t.run, t.runPos)
	}
}

// previewBytes truncates long piece contents for dump output.
func previewBytes(b []byte) []byte {
	const max = 32
	if len(b) <= max {
		return b
	}
	return b[:max]
}
