package history

import (
	"time"

	"github.com/milk9111/tilesmith/tilemap"
)

const (
	// DefaultMaxDepth bounds the undo stack; exceeding it silently drops
	// the oldest entries.
	DefaultMaxDepth = 100

	// DefaultCoalesceWindow is how long after the last recorded change a
	// same-typed change still merges into the pending action.
	DefaultCoalesceWindow = 80 * time.Millisecond
)

type cellKey struct {
	x, y, layer int
}

// History is the undo/redo engine. At most one pending (uncommitted)
// action exists at a time; it accumulates coalesced changes until a
// commit, a type switch, or the coalescing window lapsing closes it.
type History struct {
	// Clock supplies wall-clock time for the coalescing window. Tests
	// substitute it to drive the window deterministically.
	Clock func() time.Time

	maxDepth int
	window   time.Duration

	undo []*Action
	redo []*Action

	pending     *Action
	pendingSeen map[cellKey]struct{}
	lastRecord  time.Time

	nextID int64
}

// New creates a history engine. Non-positive arguments select the
// defaults.
func New(maxDepth int, window time.Duration) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if window <= 0 {
		window = DefaultCoalesceWindow
	}
	return &History{
		Clock:    time.Now,
		maxDepth: maxDepth,
		window:   window,
	}
}

// RecordChange feeds one tile change into the engine. It coalesces into
// the pending action when that action has the same type and the last
// recorded change is within the coalescing window; within one pending
// action the first write to a cell wins and later writes to the same cell
// are dropped, since the grid already reflects the final overwrite.
// Otherwise any pending action is committed and a new one opens with this
// change. Opening a new action clears the redo stack.
func (h *History) RecordChange(ch TileChange, t ActionType) {
	now := h.Clock()
	if h.pending != nil && h.pending.Type == t && now.Sub(h.lastRecord) <= h.window {
		key := cellKey{ch.X, ch.Y, ch.LayerID}
		if _, dup := h.pendingSeen[key]; !dup {
			h.pending.Changes = append(h.pending.Changes, ch)
			h.pendingSeen[key] = struct{}{}
		}
		h.lastRecord = now
		return
	}

	h.CommitPending()
	h.redo = nil
	h.pending = &Action{
		ID:      h.nextID,
		Type:    t,
		Time:    now,
		Changes: []TileChange{ch},
	}
	h.nextID++
	h.pendingSeen = map[cellKey]struct{}{{ch.X, ch.Y, ch.LayerID}: {}}
	h.lastRecord = now
}

// CommitPending force-closes the pending action onto the undo stack,
// regardless of the coalescing window. Called on stroke end.
func (h *History) CommitPending() {
	if h.pending == nil {
		return
	}
	h.undo = append(h.undo, h.pending)
	h.pending = nil
	h.pendingSeen = nil
	h.trim()
}

// PushDelta records a never-coalesced delta action (fill, cut, paste,
// delete). It flushes any pending action first and clears the redo stack.
// Empty change lists are dropped.
func (h *History) PushDelta(t ActionType, changes []TileChange) {
	if len(changes) == 0 {
		return
	}
	h.push(&Action{Type: t, Changes: changes})
}

// PushStructural records a structural action holding full before and
// after snapshots, both captured by the caller around the operation.
func (h *History) PushStructural(t ActionType, before, after *tilemap.Snapshot) {
	if before == nil || after == nil {
		return
	}
	h.push(&Action{Type: t, Before: before, After: after})
}

func (h *History) push(a *Action) {
	h.CommitPending()
	h.redo = nil
	a.ID = h.nextID
	h.nextID++
	a.Time = h.Clock()
	h.undo = append(h.undo, a)
	h.trim()
}

func (h *History) trim() {
	if len(h.undo) > h.maxDepth {
		excess := len(h.undo) - h.maxDepth
		h.undo = append(h.undo[:0:0], h.undo[excess:]...)
	}
}

// Undo pops the most recent committed action onto the redo stack and
// returns it for the caller to replay (changes in reverse order, writing
// Old values through the raw path). A pending action is committed first so
// an in-flight stroke undoes as a unit.
func (h *History) Undo() (*Action, bool) {
	h.CommitPending()
	if len(h.undo) == 0 {
		return nil, false
	}
	a := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, a)
	return a, true
}

// Redo pops the most recently undone action back onto the undo stack and
// returns it for the caller to replay forward.
func (h *History) Redo() (*Action, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	a := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, a)
	return a, true
}

// CanUndo reports whether an undo is available (counting the pending
// action).
func (h *History) CanUndo() bool { return len(h.undo) > 0 || h.pending != nil }

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of committed undo levels.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redo levels.
func (h *History) RedoDepth() int { return len(h.redo) }

// Pending reports whether an uncommitted action is accumulating.
func (h *History) Pending() bool { return h.pending != nil }

// Clear drops all undo/redo state.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.pending = nil
	h.pendingSeen = nil
}
