package t2048

import (
	"errors"
	"slices"
)

// DefaultMaxHistory is the default number of undoable states.
const DefaultMaxHistory = 5

// ErrInsufficientHistory is returned by Undo when fewer than two states are stored.
var ErrInsufficientHistory = errors.New("t2048: cannot undo: insufficient history")

type historyEntry struct {
	cells []int
	score int
}

// History is a bounded stack of grid snapshots with their scores.
type History struct {
	maxHistory int
	entries    []historyEntry
}

// NewHistory creates a history that keeps at most maxHistory+1 states.
func NewHistory(maxHistory int) *History {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &History{maxHistory: maxHistory}
}

// Push records a snapshot of cells and score.
// It is a no-op if cells equal the most recently stored grid.
func (h *History) Push(cells []int, score int) {
	if n := len(h.entries); n > 0 && slices.Equal(h.entries[n-1].cells, cells) {
		return
	}

	h.entries = append(h.entries, historyEntry{cells: slices.Clone(cells), score: score})

	// Evict the oldest
	if len(h.entries) > h.maxHistory+1 {
		h.entries = slices.Delete(h.entries, 0, 1)
	}
}

// CanUndo reports whether at least two states are stored.
func (h *History) CanUndo() bool {
	return len(h.entries) > 1
}

// Undo discards the two most recent entries and returns the older of them.
func (h *History) Undo() ([]int, int, error) {
	if !h.CanUndo() {
		return nil, 0, ErrInsufficientHistory
	}

	n := len(h.entries)
	restored := h.entries[n-2]
	h.entries = h.entries[:n-2]

	return restored.cells, restored.score, nil
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all stored states.
func (h *History) Clear() {
	h.entries = nil
}
