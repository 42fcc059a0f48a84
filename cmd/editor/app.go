package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilesmith/editor"
	"github.com/milk9111/tilesmith/tileset"
	"github.com/milk9111/tilesmith/tool"
)

type Tool int

const (
	ToolBrush Tool = iota
	ToolErase
	ToolFill
	ToolLine
	ToolSelect
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolErase:
		return "Erase"
	case ToolFill:
		return "Fill"
	case ToolLine:
		return "Line"
	case ToolSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// App is the Ebiten game driving the editor: it owns the UI, the canvas
// transform and the tool state, and forwards edits to the editing core.
type App struct {
	core    *editor.Editor
	store   *tilesetStore
	watcher *tileset.Watcher
	sysClip bool

	ui         *ebitenui.UI
	toolBar    *ToolBar
	layerPanel *LayerPanel
	palette    *TilesetPalette

	canvas      *Canvas
	currentTool Tool
	lastTool    Tool

	lineStart  *[2]int
	painting   bool
	selecting  bool
	movingSel  bool
	lastMoveX  int
	lastMoveY  int
	hoverCellX int
	hoverCellY int
	onCanvas   bool

	pixel *ebiten.Image
}

func newApp(core *editor.Editor, store *tilesetStore, watcher *tileset.Watcher, sysClip bool) *App {
	app := &App{
		core:        core,
		store:       store,
		watcher:     watcher,
		sysClip:     sysClip,
		canvas:      newCanvas(core.Map().TileSize),
		currentTool: ToolBrush,
		lastTool:    ToolBrush,
	}
	app.buildUI()
	return app
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.canvas.screenW = outsideWidth
	a.canvas.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

func (a *App) Update() error {
	a.drainWatcher()

	suppressHotkeys := false
	if a.ui != nil {
		if fw := a.ui.GetFocusedWidget(); fw != nil {
			if _, ok := fw.(*widget.TextInput); ok {
				suppressHotkeys = true
			}
		}
	}
	if !suppressHotkeys {
		a.handleHotkeys()
	}

	if a.currentTool != a.lastTool {
		if a.toolBar != nil {
			a.toolBar.SetTool(a.currentTool)
		}
		a.lastTool = a.currentTool
	}

	if a.ui != nil {
		a.ui.Update()
	}
	a.canvas.Update()
	a.handleMouse()
	return nil
}

func (a *App) drainWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			if err := a.store.Reload(path); err != nil {
				log.Printf("Failed to reload tileset %s: %v", path, err)
				continue
			}
			log.Printf("Reloaded tileset %s", path)
			if a.palette != nil {
				a.palette.Refresh()
			}
		case err, ok := <-a.watcher.Errors:
			if ok && err != nil {
				log.Printf("Tileset watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (a *App) handleHotkeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	// Tool switching
	if !ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyB) {
			a.currentTool = ToolBrush
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyE) {
			a.currentTool = ToolErase
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			a.currentTool = ToolFill
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			a.currentTool = ToolLine
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			a.currentTool = ToolSelect
		}
	}

	// Brush sizing
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		size, shape := a.core.Brush()
		a.core.SetBrush(size-1, shape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		size, shape := a.core.Brush()
		a.core.SetBrush(size+1, shape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && !ctrl {
		size, shape := a.core.Brush()
		if shape == tool.ShapeSquare {
			shape = tool.ShapeCircle
		} else {
			shape = tool.ShapeSquare
		}
		a.core.SetBrush(size, shape)
	}

	// Layer cycling, matching the panel selection
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && !ctrl {
		a.cycleLayer(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) && ctrl {
		a.cycleLayer(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !ctrl {
		a.core.Map().AddLayer("")
		a.syncLayers()
	}

	// History
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) && ctrl && !shift {
		a.core.Undo()
	}
	if (inpututil.IsKeyJustPressed(ebiten.KeyY) && ctrl) ||
		(inpututil.IsKeyJustPressed(ebiten.KeyZ) && ctrl && shift) {
		a.core.Redo()
	}

	// Selection and clipboard
	if inpututil.IsKeyJustPressed(ebiten.KeyA) && ctrl {
		a.core.SelectAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrl {
		if a.core.CopySelection() && a.sysClip {
			exportSystemClipboard(a.core.Selection().Clipboard())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) && ctrl {
		if a.core.CutSelection() && a.sysClip {
			exportSystemClipboard(a.core.Selection().Clipboard())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrl {
		a.pasteAtCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.core.DeleteSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.core.CommitSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.core.CancelSelection()
		a.lineStart = nil
	}
}

func (a *App) cycleLayer(dir int) {
	m := a.core.Map()
	layers := m.Layers()
	if len(layers) == 0 {
		return
	}
	cur := 0
	for i, l := range layers {
		if l.ID == m.ActiveLayerID() {
			cur = i
			break
		}
	}
	next := (cur + dir + len(layers)) % len(layers)
	m.SetActiveLayer(layers[next].ID)
	a.syncLayers()
}

// pasteAtCursor pastes at the hovered cell, falling back to the map center
// when the pointer is off the canvas. When the in-process clipboard is
// empty, the system clipboard is tried first.
func (a *App) pasteAtCursor() {
	if a.core.Selection().Clipboard() == nil && a.sysClip {
		if buf := importSystemClipboard(); buf != nil {
			a.core.Selection().SetClipboard(buf)
		}
	}
	x, y := a.hoverCellX, a.hoverCellY
	if !a.onCanvas {
		x = a.core.Map().Width / 2
		y = a.core.Map().Height / 2
	}
	a.core.PasteClipboard(x, y)
}

func (a *App) handleMouse() {
	sx, sy := ebiten.CursorPosition()
	a.onCanvas = a.canvas.OnCanvas(sx, sy) && !ebuiinput.UIHovered
	cellX, cellY := a.canvas.CellAt(sx, sy)
	a.hoverCellX, a.hoverCellY = cellX, cellY

	// A stroke that wanders off the canvas commits instead of staying open.
	if a.painting && !a.onCanvas {
		a.core.PointerLeave()
		a.painting = false
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a.painting {
			a.core.EndStroke()
			a.painting = false
		}
		if a.selecting {
			a.core.EndSelection()
			a.selecting = false
		}
		if a.lineStart != nil && a.onCanvas {
			a.core.StrokeLine(a.lineStart[0], a.lineStart[1], cellX, cellY, false)
		}
		a.lineStart = nil
		a.movingSel = false
	}

	if !a.onCanvas {
		return
	}

	switch a.currentTool {
	case ToolBrush, ToolErase:
		erase := a.currentTool == ToolErase
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.core.BeginStroke(cellX, cellY, erase)
			a.painting = true
		} else if a.painting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			a.core.ContinueStroke(cellX, cellY)
		}
	case ToolFill:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.core.Fill(cellX, cellY)
		}
	case ToolLine:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.lineStart = &[2]int{cellX, cellY}
		}
	case ToolSelect:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if a.core.Selection().Floating() {
				if r, ok := a.core.Selection().Bounds(); ok &&
					cellX >= r.X && cellX < r.X+r.Width && cellY >= r.Y && cellY < r.Y+r.Height {
					a.movingSel = true
					a.lastMoveX, a.lastMoveY = cellX, cellY
					break
				}
				a.core.CommitSelection()
			}
			a.core.StartSelection(cellX, cellY)
			a.selecting = true
		} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			if a.movingSel {
				a.core.MoveSelection(cellX-a.lastMoveX, cellY-a.lastMoveY)
				a.lastMoveX, a.lastMoveY = cellX, cellY
			} else if a.selecting {
				a.core.DragSelection(cellX, cellY)
			}
		}
	}
}

func (a *App) syncLayers() {
	if a.layerPanel == nil {
		return
	}
	m := a.core.Map()
	layers := m.Layers()
	names := make([]string, len(layers))
	selected := 0
	for i, l := range layers {
		names[i] = l.Name
		if l.ID == m.ActiveLayerID() {
			selected = i
		}
	}
	a.layerPanel.SetLayers(names)
	a.layerPanel.SetSelected(selected)
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.pixel == nil {
		a.pixel = ebiten.NewImage(1, 1)
		a.pixel.Fill(color.White)
	}
	screen.Fill(color.RGBA{28, 28, 32, 255})

	a.drawMapBackdrop(screen)
	a.drawLayers(screen)
	a.drawLinePreview(screen)
	a.drawSelection(screen)
	a.drawHover(screen)

	if a.ui != nil {
		a.ui.Draw(screen)
	}
}

func (a *App) drawMapBackdrop(screen *ebiten.Image) {
	m := a.core.Map()
	ox, oy := a.canvas.CellOrigin(0, 0)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.canvas.CellSize()*float64(m.Width), a.canvas.CellSize()*float64(m.Height))
	op.GeoM.Translate(ox, oy)
	op.ColorScale.Scale(0.22, 0.22, 0.25, 1)
	screen.DrawImage(a.pixel, op)
}

// drawTile renders one global tile id at a cell. Unresolvable nonzero ids
// render as a magenta placeholder so stale references stay visible.
func (a *App) drawTile(screen *ebiten.Image, cellX, cellY int, globalID uint16, alpha float32) {
	if globalID == 0 {
		return
	}
	x, y := a.canvas.CellOrigin(cellX, cellY)
	reg := a.core.Tilesets()
	if ts, local, ok := reg.Resolve(int(globalID)); ok {
		if img := a.store.Image(ts.ID); img != nil {
			sub := img.SubImage(ts.Rect(local)).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				a.canvas.CellSize()/float64(ts.TileWidth),
				a.canvas.CellSize()/float64(ts.TileHeight),
			)
			op.GeoM.Translate(x, y)
			op.ColorScale.ScaleAlpha(alpha)
			screen.DrawImage(sub, op)
			return
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.canvas.CellSize(), a.canvas.CellSize())
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(1, 0, 1, alpha)
	screen.DrawImage(a.pixel, op)
}

func (a *App) drawLayers(screen *ebiten.Image) {
	m := a.core.Map()
	for _, l := range m.Layers() {
		if !l.Visible {
			continue
		}
		alpha := float32(l.Opacity)
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				a.drawTile(screen, x, y, l.Tiles[y*m.Width+x], alpha)
			}
		}
	}
}

func (a *App) drawLinePreview(screen *ebiten.Image) {
	if a.currentTool != ToolLine || a.lineStart == nil || !a.onCanvas {
		return
	}
	id := uint16(a.core.PaintTile())
	for _, p := range tool.Line(a.lineStart[0], a.lineStart[1], a.hoverCellX, a.hoverCellY) {
		if !a.core.Map().InBounds(p.X, p.Y) {
			continue
		}
		a.drawTile(screen, p.X, p.Y, id, 0.5)
	}
}

func (a *App) drawSelection(screen *ebiten.Image) {
	sel := a.core.Selection()
	r, ok := sel.Bounds()
	if !ok {
		return
	}

	// Floating payload preview, drawn under the marquee tint.
	if sel.Floating() {
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				a.drawTile(screen, r.X+x, r.Y+y, sel.FloatingTile(x, y), 0.8)
			}
		}
	}

	x, y := a.canvas.CellOrigin(r.X, r.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.canvas.CellSize()*float64(r.Width), a.canvas.CellSize()*float64(r.Height))
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(0.3, 0.55, 1, 0.25)
	screen.DrawImage(a.pixel, op)
}

func (a *App) drawHover(screen *ebiten.Image) {
	if !a.onCanvas || !a.core.Map().InBounds(a.hoverCellX, a.hoverCellY) {
		return
	}
	x, y := a.canvas.CellOrigin(a.hoverCellX, a.hoverCellY)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.canvas.CellSize(), a.canvas.CellSize())
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(1, 1, 1, 0.15)
	screen.DrawImage(a.pixel, op)
}
