package tilemap

import (
	"fmt"

	"github.com/milk9111/tilesmith/common"
)

const (
	// MinSize and MaxSize bound map dimensions in tiles.
	MinSize = 8
	MaxSize = 256

	// MaxLayers caps the layer stack.
	MaxLayers = 20

	// MaxTile is the largest storable tile id. Id 0 means empty.
	MaxTile = 65535
)

// ActiveLayer selects the map's active layer in calls that take a layer id.
const ActiveLayer = -1

// Layer is one z-level of the map. Tiles is a dense row-major array of
// length Width*Height, indexed by y*Width+x. A zero tile is empty.
type Layer struct {
	ID      int
	Name    string
	Visible bool
	Locked  bool
	Opacity float64
	Tiles   []uint16
}

// Map is the authoritative multi-layer tile grid. Layer 0 is drawn first
// (bottom), then layer 1, etc. A map always has at least one layer and an
// active layer, which is the default write target.
type Map struct {
	Width    int
	Height   int
	TileSize int

	layers []*Layer
	active int // active layer id
	nextID int
}

// New creates a map with a single empty layer. Dimensions are clamped to
// [MinSize, MaxSize]; tileSize is a render hint only.
func New(width, height, tileSize int) *Map {
	m := &Map{
		Width:    common.Clamp(width, MinSize, MaxSize),
		Height:   common.Clamp(height, MinSize, MaxSize),
		TileSize: tileSize,
	}
	first := m.newLayer("Background")
	m.layers = append(m.layers, first)
	m.active = first.ID
	return m
}

func (m *Map) newLayer(name string) *Layer {
	l := &Layer{
		ID:      m.nextID,
		Name:    name,
		Visible: true,
		Opacity: 1,
		Tiles:   make([]uint16, m.Width*m.Height),
	}
	m.nextID++
	return l
}

// Layers returns the layer stack bottom-to-top. The slice is a copy; the
// layers themselves are shared and must be treated as read-only by callers.
func (m *Map) Layers() []*Layer {
	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Layer returns the layer with the given id, resolving ActiveLayer to the
// current active layer. Returns nil if no such layer exists.
func (m *Map) Layer(id int) *Layer {
	if id == ActiveLayer {
		id = m.active
	}
	for _, l := range m.layers {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (m *Map) layerIndex(id int) int {
	for i, l := range m.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// LayerCount returns the number of layers.
func (m *Map) LayerCount() int { return len(m.layers) }

// ActiveLayerID returns the id of the active layer.
func (m *Map) ActiveLayerID() int { return m.active }

// SetActiveLayer makes the given layer the default write target.
func (m *Map) SetActiveLayer(id int) bool {
	if m.layerIndex(id) < 0 {
		return false
	}
	m.active = id
	return true
}

// InBounds reports whether (x, y) is inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// GetTile returns the tile at (x, y) on the given layer. Out-of-bounds
// coordinates and unknown layers read as 0.
func (m *Map) GetTile(x, y int, layerID int) uint16 {
	if !m.InBounds(x, y) {
		return 0
	}
	l := m.Layer(layerID)
	if l == nil {
		return 0
	}
	return l.Tiles[y*m.Width+x]
}

// SetTile writes a tile through the checked path: out-of-bounds writes,
// unknown layers and locked layers are silent no-ops. The tile id is
// clamped to [0, MaxTile].
func (m *Map) SetTile(x, y int, tile int, layerID int) {
	l := m.Layer(layerID)
	if l == nil || l.Locked || !m.InBounds(x, y) {
		return
	}
	l.Tiles[y*m.Width+x] = uint16(common.Clamp(tile, 0, MaxTile))
}

// SetTileRaw writes a tile ignoring the layer lock. It exists for the
// undo/redo replay path, which must be able to restore a locked layer to
// its prior contents. Bounds and layer existence are still checked.
func (m *Map) SetTileRaw(x, y int, tile int, layerID int) {
	l := m.Layer(layerID)
	if l == nil || !m.InBounds(x, y) {
		return
	}
	l.Tiles[y*m.Width+x] = uint16(common.Clamp(tile, 0, MaxTile))
}

func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, %d layers)", m.Width, m.Height, len(m.layers))
}
