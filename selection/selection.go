// Package selection manages the rectangular selection, the clipboard and
// the floating (cut or pasted, not yet committed) region. The engine
// mutates the grid directly for cut and commit but does not push history
// itself; callers turn the returned edits into history actions so they
// control how undo entries are bucketed.
package selection

import "github.com/milk9111/tilesmith/tilemap"

// State is the selection life-cycle state.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateFixed
	StateFloating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateFixed:
		return "fixed"
	case StateFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// Rect is a cell-space rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Edit reports one cell the engine wrote during Cut, Commit or Delete.
type Edit struct {
	X, Y     int
	Old, New uint16
}

// Buffer is a rectangular block of tiles with its source layer. The
// clipboard holds one; it outlives the selection and pastes repeatedly.
type Buffer struct {
	Width   int
	Height  int
	LayerID int
	Tiles   []uint16
}

// Clone deep-copies the buffer.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	tiles := make([]uint16, len(b.Tiles))
	copy(tiles, b.Tiles)
	return &Buffer{Width: b.Width, Height: b.Height, LayerID: b.LayerID, Tiles: tiles}
}

// Engine is the selection/clipboard state machine. Its payload arrays are
// private copies and never alias the grid's backing arrays.
type Engine struct {
	state State

	dragStartX, dragStartY int
	dragCurX, dragCurY     int

	bounds  Rect
	layerID int
	tiles   []uint16

	offsetX, offsetY int

	clipboard *Buffer
}

// NewEngine creates an idle selection engine with an empty clipboard.
func NewEngine() *Engine {
	return &Engine{}
}

// State returns the current life-cycle state.
func (e *Engine) State() State { return e.state }

// Floating reports whether a floating payload exists.
func (e *Engine) Floating() bool { return e.state == StateFloating }

// StartDrag begins a marquee drag at the given cell, discarding any
// non-floating selection. Starting a drag while a floating selection
// exists is ignored; the caller must commit or cancel it first.
func (e *Engine) StartDrag(x, y int) {
	if e.state == StateFloating {
		return
	}
	e.state = StateDragging
	e.dragStartX, e.dragStartY = x, y
	e.dragCurX, e.dragCurY = x, y
	e.tiles = nil
	e.bounds = Rect{}
}

// UpdateDrag moves the marquee's far corner while dragging.
func (e *Engine) UpdateDrag(x, y int) {
	if e.state != StateDragging {
		return
	}
	e.dragCurX, e.dragCurY = x, y
}

// EndDrag normalizes the dragged rectangle (inclusive of both corners,
// clipped to the map), snapshots the tiles under it from the given layer
// and enters the fixed state. A drag fully outside the map clears back to
// idle.
func (e *Engine) EndDrag(m *tilemap.Map, layerID int) {
	if e.state != StateDragging || m == nil {
		return
	}
	r := normalize(e.dragStartX, e.dragStartY, e.dragCurX, e.dragCurY)
	r = clip(r, m.Width, m.Height)
	if r.Width <= 0 || r.Height <= 0 {
		e.Clear()
		return
	}
	if l := m.Layer(layerID); l != nil {
		layerID = l.ID
	}
	e.bounds = r
	e.layerID = layerID
	e.offsetX, e.offsetY = 0, 0
	e.tiles = make([]uint16, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			e.tiles[y*r.Width+x] = m.GetTile(r.X+x, r.Y+y, layerID)
		}
	}
	e.state = StateFixed
}

// SelectAll marks the whole map on the given layer as a fixed selection.
func (e *Engine) SelectAll(m *tilemap.Map, layerID int) {
	if m == nil || e.state == StateFloating {
		return
	}
	e.state = StateDragging
	e.dragStartX, e.dragStartY = 0, 0
	e.dragCurX, e.dragCurY = m.Width-1, m.Height-1
	e.EndDrag(m, layerID)
}

// Copy duplicates the fixed selection's payload into the clipboard. The
// clipboard is independent of the selection and survives its clearing.
func (e *Engine) Copy() bool {
	if e.state != StateFixed && e.state != StateFloating {
		return false
	}
	tiles := make([]uint16, len(e.tiles))
	copy(tiles, e.tiles)
	e.clipboard = &Buffer{
		Width:   e.bounds.Width,
		Height:  e.bounds.Height,
		LayerID: e.layerID,
		Tiles:   tiles,
	}
	return true
}

// Cut copies the fixed selection to the clipboard, zeroes the source cells
// in the grid and flips the selection to floating with zero offset. The
// returned edits describe the zeroed cells so the caller can record them.
// Cut requires a fixed (non-floating) selection.
func (e *Engine) Cut(m *tilemap.Map) ([]Edit, bool) {
	if e.state != StateFixed || m == nil {
		return nil, false
	}
	e.Copy()
	var edits []Edit
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			gx, gy := e.bounds.X+x, e.bounds.Y+y
			old := m.GetTile(gx, gy, e.layerID)
			if old == 0 {
				continue
			}
			m.SetTile(gx, gy, 0, e.layerID)
			if m.GetTile(gx, gy, e.layerID) == 0 {
				edits = append(edits, Edit{X: gx, Y: gy, Old: old, New: 0})
			}
		}
	}
	e.state = StateFloating
	e.offsetX, e.offsetY = 0, 0
	return edits, true
}

// Delete zeroes the fixed selection's cells without touching the
// clipboard, then clears the selection. The returned edits describe the
// zeroed cells.
func (e *Engine) Delete(m *tilemap.Map) ([]Edit, bool) {
	if e.state != StateFixed || m == nil {
		return nil, false
	}
	var edits []Edit
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			gx, gy := e.bounds.X+x, e.bounds.Y+y
			old := m.GetTile(gx, gy, e.layerID)
			if old == 0 {
				continue
			}
			m.SetTile(gx, gy, 0, e.layerID)
			if m.GetTile(gx, gy, e.layerID) == 0 {
				edits = append(edits, Edit{X: gx, Y: gy, Old: old, New: 0})
			}
		}
	}
	e.Clear()
	return edits, true
}

// Paste creates a new floating selection from the clipboard, positioned at
// the target cell. Any previously floating selection must be committed by
// the caller first or its payload is lost; that contract is the caller's,
// not enforced here. Returns false when the clipboard is empty.
func (e *Engine) Paste(targetX, targetY int) bool {
	if e.clipboard == nil {
		return false
	}
	c := e.clipboard
	e.bounds = Rect{X: targetX, Y: targetY, Width: c.Width, Height: c.Height}
	e.layerID = c.LayerID
	e.tiles = make([]uint16, len(c.Tiles))
	copy(e.tiles, c.Tiles)
	e.offsetX, e.offsetY = 0, 0
	e.state = StateFloating
	return true
}

// Move shifts a floating selection's accumulated offset. It is pure
// bookkeeping: no grid writes, no history, so repeated moves preview
// freely until commit.
func (e *Engine) Move(dx, dy int) {
	if e.state != StateFloating {
		return
	}
	e.offsetX += dx
	e.offsetY += dy
}

// Commit writes a floating selection's payload into the grid at
// bounds+offset, skipping empty cells so the payload's transparent areas
// do not erase what they were dragged over, then clears the selection.
// The returned edits describe every cell actually written.
func (e *Engine) Commit(m *tilemap.Map) ([]Edit, bool) {
	if e.state != StateFloating || m == nil {
		return nil, false
	}
	var edits []Edit
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			v := e.tiles[y*e.bounds.Width+x]
			if v == 0 {
				continue
			}
			gx := e.bounds.X + e.offsetX + x
			gy := e.bounds.Y + e.offsetY + y
			if !m.InBounds(gx, gy) {
				continue
			}
			old := m.GetTile(gx, gy, e.layerID)
			m.SetTile(gx, gy, int(v), e.layerID)
			if got := m.GetTile(gx, gy, e.layerID); got != old {
				edits = append(edits, Edit{X: gx, Y: gy, Old: old, New: got})
			}
		}
	}
	e.Clear()
	return edits, true
}

// Clear drops the selection entirely. The clipboard is untouched.
func (e *Engine) Clear() {
	e.state = StateIdle
	e.tiles = nil
	e.bounds = Rect{}
	e.offsetX, e.offsetY = 0, 0
}

// Bounds returns the selection's current visual bounds: the live marquee
// rectangle while dragging, bounds+offset otherwise. ok is false when
// idle.
func (e *Engine) Bounds() (Rect, bool) {
	switch e.state {
	case StateDragging:
		return normalize(e.dragStartX, e.dragStartY, e.dragCurX, e.dragCurY), true
	case StateFixed, StateFloating:
		r := e.bounds
		r.X += e.offsetX
		r.Y += e.offsetY
		return r, true
	default:
		return Rect{}, false
	}
}

// LayerID returns the selection's source layer id.
func (e *Engine) LayerID() int { return e.layerID }

// FloatingTile returns the floating payload tile at the payload-local
// cell, for rendering the floating preview. Zero for out-of-range cells
// or when not floating.
func (e *Engine) FloatingTile(x, y int) uint16 {
	if e.state != StateFloating || x < 0 || y < 0 || x >= e.bounds.Width || y >= e.bounds.Height {
		return 0
	}
	return e.tiles[y*e.bounds.Width+x]
}

// Clipboard returns the current clipboard buffer, or nil.
func (e *Engine) Clipboard() *Buffer { return e.clipboard }

// SetClipboard replaces the clipboard buffer with a private copy, used by
// the system-clipboard import path.
func (e *Engine) SetClipboard(b *Buffer) {
	if b == nil || b.Width <= 0 || b.Height <= 0 || len(b.Tiles) != b.Width*b.Height {
		return
	}
	e.clipboard = b.Clone()
}

func normalize(x0, y0, x1, y1 int) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}

func clip(r Rect, w, h int) Rect {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width-1, r.Y+r.Height-1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= w {
		x1 = w - 1
	}
	if y1 >= h {
		y1 = h - 1
	}
	if x1 < x0 || y1 < y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
}
