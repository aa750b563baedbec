package op

import (
	"errors"
	"fmt"
)

// Sentinel errors for empty history stacks.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultHistoryLimit caps the undo stack when no explicit limit is given.
const DefaultHistoryLimit = 100

// History runs operations and keeps bounded undo and redo stacks. Executing
// a new operation clears the redo stack; exceeding the limit drops the
// oldest undo entry.
type History struct {
	limit int
	undo  []Op
	redo  []Op
}

// NewHistory creates a history with the given limit. Limits below one fall
// back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Execute applies the operation and records it for undo. Nil and noop
// operations are ignored. A failed apply is not recorded.
func (h *History) Execute(o Op) error {
	if o == nil || o.IsNoop() {
		return nil
	}
	if err := o.Apply(); err != nil {
		return fmt.Errorf("execute %s: %w", o.Label(), err)
	}
	h.undo = append(h.undo, o)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
	return nil
}

// Undo reverts the most recent operation and moves it to the redo stack.
func (h *History) Undo() error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	o := h.undo[len(h.undo)-1]
	if err := o.Revert(); err != nil {
		return fmt.Errorf("undo %s: %w", o.Label(), err)
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, o)
	return nil
}

// Redo re-applies the most recently undone operation.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	o := h.redo[len(h.redo)-1]
	if err := o.Apply(); err != nil {
		return fmt.Errorf("redo %s: %w", o.Label(), err)
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, o)
	return nil
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoLabel returns the label of the operation Undo would revert, or the
// empty string when there is none.
func (h *History) UndoLabel() string {
	if len(h.undo) == 0 {
		return ""
	}
	return h.undo[len(h.undo)-1].Label()
}

// RedoLabel returns the label of the operation Redo would apply, or the
// empty string when there is none.
func (h *History) RedoLabel() string {
	if len(h.redo) == 0 {
		return ""
	}
	return h.redo[len(h.redo)-1].Label()
}
