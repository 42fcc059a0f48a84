package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	leftPanelWidth  = 200
	rightPanelWidth = 260
	minZoom         = 0.25
	maxZoom         = 4.0
)

// Canvas maps between screen pixels and map cells, with middle-mouse
// panning and wheel zoom anchored at the cursor.
type Canvas struct {
	zoom       float64
	panX, panY float64
	tileSize   int

	isPanning          bool
	lastPanX, lastPanY int

	screenW, screenH int
}

func newCanvas(tileSize int) *Canvas {
	return &Canvas{zoom: 1.0, tileSize: tileSize}
}

// Update consumes middle-mouse pan and wheel zoom input.
func (c *Canvas) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		c.isPanning = true
		c.lastPanX, c.lastPanY = ebiten.CursorPosition()
	}
	if c.isPanning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		cx, cy := ebiten.CursorPosition()
		c.panX += float64(cx - c.lastPanX)
		c.panY += float64(cy - c.lastPanY)
		c.lastPanX, c.lastPanY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		c.isPanning = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		oldZoom := c.zoom
		if wy > 0 {
			c.zoom *= 1.1
		} else {
			c.zoom /= 1.1
		}
		if c.zoom < minZoom {
			c.zoom = minZoom
		}
		if c.zoom > maxZoom {
			c.zoom = maxZoom
		}
		if c.zoom != oldZoom {
			// Keep the world point under the cursor fixed while zooming.
			worldX := (float64(cx-leftPanelWidth) - c.panX) / oldZoom
			worldY := (float64(cy) - c.panY) / oldZoom
			c.panX = float64(cx-leftPanelWidth) - worldX*c.zoom
			c.panY = float64(cy) - worldY*c.zoom
		}
	}
}

// OnCanvas reports whether a screen position lies over the canvas area
// rather than one of the side panels.
func (c *Canvas) OnCanvas(sx, sy int) bool {
	return sx >= leftPanelWidth && sx < c.screenW-rightPanelWidth && sy >= 0 && sy < c.screenH
}

// CellAt converts a screen position to a map cell. The cell may be outside
// the map; callers bound-check against the map themselves.
func (c *Canvas) CellAt(sx, sy int) (int, int) {
	worldX := (float64(sx-leftPanelWidth) - c.panX) / c.zoom
	worldY := (float64(sy) - c.panY) / c.zoom
	cellX := int(worldX) / c.tileSize
	cellY := int(worldY) / c.tileSize
	if worldX < 0 {
		cellX = -1
	}
	if worldY < 0 {
		cellY = -1
	}
	return cellX, cellY
}

// CellOrigin returns the screen position of a cell's top-left corner.
func (c *Canvas) CellOrigin(cellX, cellY int) (float64, float64) {
	x := float64(cellX*c.tileSize)*c.zoom + c.panX + leftPanelWidth
	y := float64(cellY*c.tileSize)*c.zoom + c.panY
	return x, y
}

// CellSize returns the on-screen size of one cell.
func (c *Canvas) CellSize() float64 {
	return float64(c.tileSize) * c.zoom
}
