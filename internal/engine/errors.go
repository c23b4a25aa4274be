package engine

import (
	"errors"

	"github.com/dshills/piecetable/internal/engine/history"
	"github.com/dshills/piecetable/internal/engine/store"
	"github.com/dshills/piecetable/internal/engine/table"
)

// Errors returned by engine operations. Most are aliases for the sentinels
// of the package that detects the condition, so errors.Is works against
// either surface.
var (
	// ErrOffsetOutOfRange indicates a position or range exceeds the document.
	ErrOffsetOutOfRange = table.ErrOffsetOutOfRange

	// ErrLineOutOfRange indicates a line number past the last line.
	ErrLineOutOfRange = table.ErrLineOutOfRange

	// ErrAllocationFailed indicates buffer growth could not be satisfied.
	ErrAllocationFailed = store.ErrAllocationFailed

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrSessionOpen indicates a micro-insert session is open and blocks
	// the attempted operation.
	ErrSessionOpen = table.ErrSessionOpen

	// ErrNoSession indicates no micro-insert session is open.
	ErrNoSession = table.ErrNoSession

	// ErrMissingText indicates an empty text argument where text is required.
	ErrMissingText = errors.New("missing text argument")
)
