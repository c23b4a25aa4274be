package engine

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures a TextBuffer during creation.
type Option func(*TextBuffer)

// WithContent sets the initial content of the buffer.
func WithContent(content string) Option {
	return func(b *TextBuffer) {
		b.initContent = content
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
// The oldest entries are evicted beyond the limit.
func WithMaxUndoEntries(max int) Option {
	return func(b *TextBuffer) {
		if max > 0 {
			b.maxUndoEntries = max
		}
	}
}

// WithMaxAddBytes caps add-buffer growth. Edits that would push the add
// buffer past the cap fail with ErrAllocationFailed and leave the document
// unchanged. Zero means unbounded.
func WithMaxAddBytes(max int) Option {
	return func(b *TextBuffer) {
		if max > 0 {
			b.maxAddBytes = max
		}
	}
}
