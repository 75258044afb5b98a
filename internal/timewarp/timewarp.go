// Package timewarp keeps a bounded undo/redo history of level tile grids.
//
// Edits are recorded in two phases so that a drag gesture touching many
// tiles produces a single history entry: SavePreviousState at the start of
// the gesture and PushCurrentState at its end.
package timewarp

import "github.com/vovakirdan/tui-breakout/internal/level"

// DefaultCapacity is the number of undo entries kept when none is configured.
const DefaultCapacity = 50

// Timewarp is the edit history of a single level.
type Timewarp struct {
	capacity int
	previous level.Grid
	pending  bool         // a gesture is open; previous is its start
	undo     []level.Grid // oldest first
	redo     []level.Grid // oldest first
}

// New creates a history whose baseline is lvl's current grid.
// A capacity <= 0 selects DefaultCapacity.
func New(lvl *level.Level, capacity int) *Timewarp {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Timewarp{
		capacity: capacity,
		previous: lvl.Grid(),
		undo:     make([]level.Grid, 0, capacity),
	}
}

// CanUndo reports whether Undo would change anything.
func (t *Timewarp) CanUndo() bool {
	return len(t.undo) > 0
}

// CanRedo reports whether Redo would change anything.
func (t *Timewarp) CanRedo() bool {
	return len(t.redo) > 0
}

// UndoLen returns the number of undo entries.
func (t *Timewarp) UndoLen() int {
	return len(t.undo)
}

// RedoLen returns the number of redo entries.
func (t *Timewarp) RedoLen() int {
	return len(t.redo)
}

// Capacity returns the maximum number of undo entries.
func (t *Timewarp) Capacity() int {
	return t.capacity
}

// SavePreviousState records lvl's grid as the "before" snapshot of an edit
// gesture. Repeated calls before the next PushCurrentState keep the first
// snapshot.
func (t *Timewarp) SavePreviousState(lvl *level.Level) {
	if t.pending {
		return
	}
	t.previous = lvl.Grid()
	t.pending = true
}

// PushCurrentState commits the saved snapshot as an undo entry, provided
// the gesture actually changed the grid. Any redo history is dropped.
func (t *Timewarp) PushCurrentState(lvl *level.Level) {
	t.pending = false
	g := lvl.Grid()
	if g == t.previous {
		return
	}
	t.pushUndo(t.previous)
	t.redo = t.redo[:0]
	t.previous = g
}

// ImmediatePush records a single-step edit: edit is applied to lvl and the
// grid it replaced becomes one undo entry.
func (t *Timewarp) ImmediatePush(lvl *level.Level, edit func(*level.Level)) {
	t.SavePreviousState(lvl)
	edit(lvl)
	t.PushCurrentState(lvl)
}

// Undo restores the most recent undo entry. No-op when empty.
func (t *Timewarp) Undo(lvl *level.Level) {
	n := len(t.undo)
	if n == 0 {
		return
	}
	t.pending = false
	state := t.undo[n-1]
	t.undo = t.undo[:n-1]
	t.redo = append(t.redo, lvl.Grid())
	lvl.SetGrid(state)
	t.previous = state
}

// Redo re-applies the most recently undone state. No-op when empty.
func (t *Timewarp) Redo(lvl *level.Level) {
	n := len(t.redo)
	if n == 0 {
		return
	}
	t.pending = false
	state := t.redo[n-1]
	t.redo = t.redo[:n-1]
	t.pushUndo(lvl.Grid())
	lvl.SetGrid(state)
	t.previous = state
}

// pushUndo appends an entry, evicting the oldest one when full.
func (t *Timewarp) pushUndo(g level.Grid) {
	if len(t.undo) >= t.capacity {
		copy(t.undo, t.undo[1:])
		t.undo = t.undo[:len(t.undo)-1]
	}
	t.undo = append(t.undo, g)
}
