package state

import "github.com/existflow/spacetask/internal/model"

// History is the undo/redo log over add and delete. The last element of each
// stack is the most recent; an entry lives in exactly one stack.
type History struct {
	undo  []model.HistoryEntry
	redo  []model.HistoryEntry
	limit int
}

// NewHistory restores a log from persisted stacks. limit caps the undo stack,
// dropping the oldest entries; 0 means unbounded.
func NewHistory(undo, redo []model.HistoryEntry, limit int) *History {
	h := &History{limit: limit}
	for _, e := range undo {
		h.undo = append(h.undo, e.Clone())
	}
	for _, e := range redo {
		h.redo = append(h.redo, e.Clone())
	}
	h.trim()
	return h
}

// Record pushes a new user action. Redo entries belong to the abandoned
// branch and are dropped.
func (h *History) Record(e model.HistoryEntry) {
	h.undo = append(h.undo, e.Clone())
	h.redo = nil
	h.trim()
}

// Undo moves the newest undo entry onto the redo stack and returns it
func (h *History) Undo() (model.HistoryEntry, bool) {
	if len(h.undo) == 0 {
		return model.HistoryEntry{}, false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)
	return e.Clone(), true
}

// Redo moves the newest redo entry back onto the undo stack and returns it
func (h *History) Redo() (model.HistoryEntry, bool) {
	if len(h.redo) == 0 {
		return model.HistoryEntry{}, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, e)
	h.trim()
	return e.Clone(), true
}

// CanUndo reports whether Undo would do anything
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear empties both stacks
func (h *History) Clear() {
	h.undo, h.redo = nil, nil
}

// UndoStack returns a copy of the undo stack, oldest first
func (h *History) UndoStack() []model.HistoryEntry { return cloneEntries(h.undo) }

// RedoStack returns a copy of the redo stack, oldest first
func (h *History) RedoStack() []model.HistoryEntry { return cloneEntries(h.redo) }

func (h *History) trim() {
	if h.limit > 0 && len(h.undo) > h.limit {
		h.undo = append([]model.HistoryEntry(nil), h.undo[len(h.undo)-h.limit:]...)
	}
}

func cloneEntries(in []model.HistoryEntry) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, len(in))
	for _, e := range in {
		out = append(out, e.Clone())
	}
	return out
}
