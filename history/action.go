// Package history records, coalesces and replays reversible edits. The
// engine owns the undo/redo stacks but never touches the grid: undo and
// redo hand the action back to the caller, which replays it through the
// map's raw write path.
package history

import (
	"time"

	"github.com/milk9111/tilesmith/tilemap"
)

// ActionType tags what kind of edit an action records. Only actions of the
// same type coalesce.
type ActionType int

const (
	ActionBrush ActionType = iota
	ActionLine
	ActionErase
	ActionFill
	ActionCut
	ActionPaste
	ActionDelete
	ActionResize
)

func (t ActionType) String() string {
	switch t {
	case ActionBrush:
		return "brush"
	case ActionLine:
		return "line"
	case ActionErase:
		return "erase"
	case ActionFill:
		return "fill"
	case ActionCut:
		return "cut"
	case ActionPaste:
		return "paste"
	case ActionDelete:
		return "delete"
	case ActionResize:
		return "resize"
	default:
		return "unknown"
	}
}

// TileChange records one cell's transition within an action.
type TileChange struct {
	X       int
	Y       int
	LayerID int
	Old     uint16
	New     uint16
}

// Action is one undoable edit: either an ordered list of tile changes, or,
// for structural operations like resize, a pair of full map snapshots.
// Both snapshots are captured at push time; committed actions are never
// mutated afterwards.
type Action struct {
	ID   int64
	Type ActionType
	Time time.Time

	// Changes holds per-tile deltas in recording order. Undo replays them
	// in reverse writing Old; redo replays forward writing New.
	Changes []TileChange

	// Before and After are set only on structural actions.
	Before *tilemap.Snapshot
	After  *tilemap.Snapshot
}

// Structural reports whether the action restores via full snapshots rather
// than per-tile deltas.
func (a *Action) Structural() bool { return a.Before != nil }
