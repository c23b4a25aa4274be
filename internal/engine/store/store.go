package store

import "errors"

// ErrAllocationFailed indicates the add buffer could not grow.
var ErrAllocationFailed = errors.New("allocation failed")

// Slot identifies which backing buffer a piece draws from.
type Slot uint8

const (
	Original Slot = iota // bytes present at load time, write-once
	Add                  // bytes introduced after load, append-only
)

// String returns a string representation of the slot.
func (s Slot) String() string {
	switch s {
	case Original:
		return "original"
	case Add:
		return "add"
	default:
		return "unknown"
	}
}

// Store owns the two backing byte buffers of a piece table: the original
// buffer, written once at construction, and the add buffer, which only ever
// grows by append. Content already referenced by live pieces is never moved
// or shrunk, so (slot, start, length) triples stay valid for the lifetime of
// the store. The add buffer's backing array may be reallocated on growth,
// which is why pieces hold offsets rather than sub-slices.
type Store struct {
	original []byte
	add      []byte
	maxAdd   int // 0 means unbounded
}

// New creates a store whose original buffer holds the given bytes.
// The bytes are copied; the caller keeps ownership of its slice.
func New(original []byte, maxAdd int) *Store {
	s := &Store{maxAdd: maxAdd}
	if len(original) > 0 {
		s.original = make([]byte, len(original))
		copy(s.original, original)
	}
	return s
}

// Append grows the add buffer by exactly len(b) bytes and returns the offset
// range just written. If a growth cap is configured and would be exceeded,
// it fails with ErrAllocationFailed and the add buffer keeps its prior state.
func (s *Store) Append(b []byte) (start, length int, err error) {
	start = len(s.add)
	length = len(b)
	if s.maxAdd > 0 && start+length > s.maxAdd {
		return 0, 0, ErrAllocationFailed
	}
	s.add = append(s.add, b...)
	return start, length, nil
}

// Read returns a non-owning view of length bytes starting at start in the
// named buffer. The caller guarantees the range is within the buffer's
// current size; chain invariants enforce this, so it is not re-validated.
// The view is invalidated by the next Append.
func (s *Store) Read(slot Slot, start, length int) []byte {
	if slot == Original {
		return s.original[start : start+length]
	}
	return s.add[start : start+length]
}

// OriginalLen returns the size of the original buffer.
func (s *Store) OriginalLen() int {
	return len(s.original)
}

// AddLen returns the current size of the add buffer.
func (s *Store) AddLen() int {
	return len(s.add)
}
