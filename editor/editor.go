// Package editor wires the editing core together: the tile map, the
// history engine, the selection engine and the tileset registry are
// constructed once and owned here, and every mutating operation flows
// through this package so tool edits, history records and selection writes
// stay consistent with each other.
package editor

import (
	"github.com/milk9111/tilesmith/history"
	"github.com/milk9111/tilesmith/selection"
	"github.com/milk9111/tilesmith/tilemap"
	"github.com/milk9111/tilesmith/tileset"
	"github.com/milk9111/tilesmith/tool"
)

// Editor is the editing core's public surface. All mutations happen
// synchronously on the caller's goroutine; one completes before the next
// begins.
type Editor struct {
	m    *tilemap.Map
	hist *history.History
	sel  *selection.Engine
	reg  *tileset.Registry

	brushSize  int
	brushShape tool.Shape
	paintTile  int

	strokeActive bool
	strokeType   history.ActionType
	strokeValue  int
	lastX, lastY int
}

// New builds an editor from config: a fresh map, empty history, idle
// selection and empty tileset registry.
func New(cfg *Config) *Editor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Editor{
		m:          tilemap.New(cfg.Map.Width, cfg.Map.Height, cfg.Map.TileSize),
		hist:       history.New(cfg.History.MaxDepth, cfg.CoalesceWindow()),
		sel:        selection.NewEngine(),
		reg:        tileset.NewRegistry(),
		brushSize:  cfg.Brush.Size,
		brushShape: cfg.BrushShape(),
	}
}

// Map returns the live map for read access (rendering, UI).
func (e *Editor) Map() *tilemap.Map { return e.m }

// History returns the history engine for read access.
func (e *Editor) History() *history.History { return e.hist }

// Selection returns the selection engine for read access.
func (e *Editor) Selection() *selection.Engine { return e.sel }

// Tilesets returns the tileset registry.
func (e *Editor) Tilesets() *tileset.Registry { return e.reg }

// NewMap replaces the current map with a fresh one and resets history and
// selection, which referenced the old grid.
func (e *Editor) NewMap(width, height, tileSize int) {
	e.m = tilemap.New(width, height, tileSize)
	e.hist.Clear()
	e.sel.Clear()
	e.strokeActive = false
}

// SetBrush sets the brush size and shape for subsequent strokes.
func (e *Editor) SetBrush(size int, shape tool.Shape) {
	if size < 1 {
		size = 1
	}
	e.brushSize = size
	e.brushShape = shape
}

// Brush returns the current brush size and shape.
func (e *Editor) Brush() (int, tool.Shape) { return e.brushSize, e.brushShape }

// SetPaintTile sets the global tile id painted by brush and fill strokes,
// clamped to the storable range.
func (e *Editor) SetPaintTile(globalID int) {
	if globalID < 0 {
		globalID = 0
	}
	if globalID > tilemap.MaxTile {
		globalID = tilemap.MaxTile
	}
	e.paintTile = globalID
}

// PaintTile returns the current paint tile id.
func (e *Editor) PaintTile() int { return e.paintTile }

// stampAt applies the brush footprint around one cell on the active
// layer, reporting each effective change to record. Writes where the cell
// already holds the value are skipped so they produce no history.
func (e *Editor) stampAt(x, y, value int, record func(history.TileChange)) {
	l := e.m.Layer(tilemap.ActiveLayer)
	if l == nil || l.Locked {
		return
	}
	for _, p := range tool.Footprint(x, y, e.brushSize, e.brushShape, e.m.Width, e.m.Height) {
		old := e.m.GetTile(p.X, p.Y, l.ID)
		e.m.SetTile(p.X, p.Y, value, l.ID)
		got := e.m.GetTile(p.X, p.Y, l.ID)
		if got == old {
			continue
		}
		record(history.TileChange{X: p.X, Y: p.Y, LayerID: l.ID, Old: old, New: got})
	}
}

// BeginStroke starts a brush (or erase) stroke at a cell and applies the
// first stamp. Change records flow into the history engine's pending
// action as the stroke continues.
func (e *Editor) BeginStroke(x, y int, erase bool) {
	e.strokeActive = true
	e.strokeType = history.ActionBrush
	e.strokeValue = e.paintTile
	if erase {
		e.strokeType = history.ActionErase
		e.strokeValue = 0
	}
	e.lastX, e.lastY = x, y
	e.stampAt(x, y, e.strokeValue, func(ch history.TileChange) {
		e.hist.RecordChange(ch, e.strokeType)
	})
}

// ContinueStroke extends the active stroke to a new cell, stamping every
// Bresenham-interpolated cell between the last position and this one so a
// fast pointer never leaves gaps.
func (e *Editor) ContinueStroke(x, y int) {
	if !e.strokeActive {
		return
	}
	if x == e.lastX && y == e.lastY {
		return
	}
	pts := tool.Line(e.lastX, e.lastY, x, y)
	for _, p := range pts[1:] {
		e.stampAt(p.X, p.Y, e.strokeValue, func(ch history.TileChange) {
			e.hist.RecordChange(ch, e.strokeType)
		})
	}
	e.lastX, e.lastY = x, y
}

// EndStroke terminates the stroke and commits the pending action as one
// undo level.
func (e *Editor) EndStroke() {
	if !e.strokeActive {
		return
	}
	e.strokeActive = false
	e.hist.CommitPending()
}

// PointerLeave is called when the pointer leaves the canvas mid-stroke.
// It commits the pending stroke rather than leaving it open.
func (e *Editor) PointerLeave() {
	e.EndStroke()
}

// StrokeLine applies the brush along a straight line between two cells as
// a single undoable action (the line tool's release).
func (e *Editor) StrokeLine(x0, y0, x1, y1 int, erase bool) {
	value := e.paintTile
	if erase {
		value = 0
	}
	var changes []history.TileChange
	seen := map[[3]int]struct{}{}
	for _, p := range tool.Line(x0, y0, x1, y1) {
		e.stampAt(p.X, p.Y, value, func(ch history.TileChange) {
			key := [3]int{ch.X, ch.Y, ch.LayerID}
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			changes = append(changes, ch)
		})
	}
	e.hist.PushDelta(history.ActionLine, changes)
}

// Fill flood-fills the 4-connected region under (x, y) on the active
// layer with the paint tile, pushing a single fill action. Locked layers
// and no-op fills do nothing.
func (e *Editor) Fill(x, y int) {
	l := e.m.Layer(tilemap.ActiveLayer)
	if l == nil || l.Locked {
		return
	}
	replacement := uint16(e.paintTile)
	positions := tool.FloodFill(e.m.Width, e.m.Height, x, y, replacement, func(px, py int) uint16 {
		return e.m.GetTile(px, py, l.ID)
	})
	if len(positions) == 0 {
		return
	}
	changes := make([]history.TileChange, 0, len(positions))
	for _, p := range positions {
		old := e.m.GetTile(p.X, p.Y, l.ID)
		e.m.SetTile(p.X, p.Y, int(replacement), l.ID)
		changes = append(changes, history.TileChange{
			X: p.X, Y: p.Y, LayerID: l.ID, Old: old, New: replacement,
		})
	}
	e.hist.PushDelta(history.ActionFill, changes)
}

// Resize changes the map dimensions around an anchor, recording one
// structural action with before and after snapshots captured atomically
// around the operation.
func (e *Editor) Resize(newWidth, newHeight int, anchor tilemap.Anchor) {
	before := e.m.Snapshot()
	e.m.Resize(newWidth, newHeight, anchor)
	if e.m.Width == before.Width && e.m.Height == before.Height {
		return
	}
	e.sel.Clear()
	after := e.m.Snapshot()
	e.hist.PushStructural(history.ActionResize, before, after)
}

// Undo reverses the most recent action: structural actions restore the
// before snapshot; delta actions replay their changes in reverse through
// the raw write path, so cells on a now-locked layer still restore.
func (e *Editor) Undo() bool {
	a, ok := e.hist.Undo()
	if !ok {
		return false
	}
	if a.Structural() {
		e.m.Restore(a.Before)
		return true
	}
	for i := len(a.Changes) - 1; i >= 0; i-- {
		ch := a.Changes[i]
		e.m.SetTileRaw(ch.X, ch.Y, int(ch.Old), ch.LayerID)
	}
	return true
}

// Redo re-applies the most recently undone action.
func (e *Editor) Redo() bool {
	a, ok := e.hist.Redo()
	if !ok {
		return false
	}
	if a.Structural() {
		e.m.Restore(a.After)
		return true
	}
	for _, ch := range a.Changes {
		e.m.SetTileRaw(ch.X, ch.Y, int(ch.New), ch.LayerID)
	}
	return true
}

// StartSelection begins a marquee drag, first committing any floating
// selection so its payload is not lost.
func (e *Editor) StartSelection(x, y int) {
	if e.sel.Floating() {
		e.CommitSelection()
	}
	e.sel.StartDrag(x, y)
}

// DragSelection updates the marquee corner during a drag.
func (e *Editor) DragSelection(x, y int) {
	e.sel.UpdateDrag(x, y)
}

// EndSelection fixes the marquee as a selection on the active layer.
func (e *Editor) EndSelection() {
	e.sel.EndDrag(e.m, e.m.ActiveLayerID())
}

// SelectAll selects the whole active layer.
func (e *Editor) SelectAll() {
	if e.sel.Floating() {
		e.CommitSelection()
	}
	e.sel.SelectAll(e.m, e.m.ActiveLayerID())
}

// CopySelection copies the fixed selection to the clipboard.
func (e *Editor) CopySelection() bool {
	return e.sel.Copy()
}

// CutSelection cuts the fixed selection: clipboard copy, source cells
// zeroed (one undoable cut action), selection floating.
func (e *Editor) CutSelection() bool {
	edits, ok := e.sel.Cut(e.m)
	if !ok {
		return false
	}
	e.hist.PushDelta(history.ActionCut, e.toChanges(edits, e.sel.LayerID()))
	return true
}

// DeleteSelection zeroes the fixed selection's cells as one undoable
// action without touching the clipboard.
func (e *Editor) DeleteSelection() bool {
	layerID := e.sel.LayerID()
	edits, ok := e.sel.Delete(e.m)
	if !ok {
		return false
	}
	e.hist.PushDelta(history.ActionDelete, e.toChanges(edits, layerID))
	return true
}

// PasteClipboard creates a floating selection from the clipboard at the
// target cell, committing any currently floating selection first.
func (e *Editor) PasteClipboard(x, y int) bool {
	if e.sel.Floating() {
		e.CommitSelection()
	}
	return e.sel.Paste(x, y)
}

// MoveSelection shifts the floating selection. No grid writes and no
// history until commit.
func (e *Editor) MoveSelection(dx, dy int) {
	e.sel.Move(dx, dy)
}

// CommitSelection writes the floating payload back into the grid as one
// undoable paste action and clears the selection.
func (e *Editor) CommitSelection() bool {
	layerID := e.sel.LayerID()
	edits, ok := e.sel.Commit(e.m)
	if !ok {
		return false
	}
	e.hist.PushDelta(history.ActionPaste, e.toChanges(edits, layerID))
	return true
}

// CancelSelection drops the selection (floating payload included) without
// writing anything.
func (e *Editor) CancelSelection() {
	e.sel.Clear()
}

func (e *Editor) toChanges(edits []selection.Edit, layerID int) []history.TileChange {
	changes := make([]history.TileChange, len(edits))
	for i, ed := range edits {
		changes[i] = history.TileChange{
			X: ed.X, Y: ed.Y, LayerID: layerID, Old: ed.Old, New: ed.New,
		}
	}
	return changes
}
