package tilemap

import "github.com/milk9111/tilesmith/common"

// Anchor selects which edge or corner of the old content stays fixed when
// the map is resized.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTop:
		return "top"
	case AnchorTopRight:
		return "top-right"
	case AnchorLeft:
		return "left"
	case AnchorCenter:
		return "center"
	case AnchorRight:
		return "right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottom:
		return "bottom"
	case AnchorBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// anchorOffset returns where old content lands in the new extent:
// newX = oldX + dx, newY = oldY + dy.
func anchorOffset(a Anchor, oldW, oldH, newW, newH int) (dx, dy int) {
	switch a {
	case AnchorTopLeft, AnchorLeft, AnchorBottomLeft:
		dx = 0
	case AnchorTop, AnchorCenter, AnchorBottom:
		dx = (newW - oldW) / 2
	case AnchorTopRight, AnchorRight, AnchorBottomRight:
		dx = newW - oldW
	}
	switch a {
	case AnchorTopLeft, AnchorTop, AnchorTopRight:
		dy = 0
	case AnchorLeft, AnchorCenter, AnchorRight:
		dy = (newH - oldH) / 2
	case AnchorBottomLeft, AnchorBottom, AnchorBottomRight:
		dy = newH - oldH
	}
	return dx, dy
}

// Resize changes the map dimensions, keeping old content positioned by the
// anchor. Cells that fall outside the new extent are discarded; new cells
// are empty. Dimensions are clamped to [MinSize, MaxSize], so the resize
// itself cannot fail. Callers that want the change undoable must snapshot
// the map before calling.
func (m *Map) Resize(newWidth, newHeight int, anchor Anchor) {
	newWidth = common.Clamp(newWidth, MinSize, MaxSize)
	newHeight = common.Clamp(newHeight, MinSize, MaxSize)
	if newWidth == m.Width && newHeight == m.Height {
		return
	}

	dx, dy := anchorOffset(anchor, m.Width, m.Height, newWidth, newHeight)
	for _, l := range m.layers {
		tiles := make([]uint16, newWidth*newHeight)
		for y := 0; y < m.Height; y++ {
			ny := y + dy
			if ny < 0 || ny >= newHeight {
				continue
			}
			for x := 0; x < m.Width; x++ {
				nx := x + dx
				if nx < 0 || nx >= newWidth {
					continue
				}
				tiles[ny*newWidth+nx] = l.Tiles[y*m.Width+x]
			}
		}
		l.Tiles = tiles
	}
	m.Width = newWidth
	m.Height = newHeight
}
