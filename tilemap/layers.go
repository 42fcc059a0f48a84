package tilemap

import (
	"fmt"

	"github.com/milk9111/tilesmith/common"
)

// AddLayer appends an empty layer on top of the stack and makes it active.
// Returns the new layer's id, or -1 if the layer cap is reached. An empty
// name gets a default "Layer N" name.
func (m *Map) AddLayer(name string) int {
	if len(m.layers) >= MaxLayers {
		return -1
	}
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(m.layers))
	}
	l := m.newLayer(name)
	m.layers = append(m.layers, l)
	m.active = l.ID
	return l.ID
}

// DuplicateLayer inserts a copy of the given layer directly above it and
// makes the copy active. Returns the new layer's id, or -1 if the source
// is unknown or the layer cap is reached.
func (m *Map) DuplicateLayer(id int) int {
	if len(m.layers) >= MaxLayers {
		return -1
	}
	idx := m.layerIndex(m.resolve(id))
	if idx < 0 {
		return -1
	}
	src := m.layers[idx]
	dup := m.newLayer(src.Name + " copy")
	dup.Visible = src.Visible
	dup.Locked = src.Locked
	dup.Opacity = src.Opacity
	copy(dup.Tiles, src.Tiles)

	m.layers = append(m.layers, nil)
	copy(m.layers[idx+2:], m.layers[idx+1:])
	m.layers[idx+1] = dup
	m.active = dup.ID
	return dup.ID
}

// DeleteLayer removes a layer. The last remaining layer cannot be deleted.
// If the active layer is deleted, the layer that takes its index (or the
// new top layer) becomes active.
func (m *Map) DeleteLayer(id int) bool {
	if len(m.layers) <= 1 {
		return false
	}
	id = m.resolve(id)
	idx := m.layerIndex(id)
	if idx < 0 {
		return false
	}
	m.layers = append(m.layers[:idx], m.layers[idx+1:]...)
	if m.active == id {
		ni := idx
		if ni >= len(m.layers) {
			ni = len(m.layers) - 1
		}
		m.active = m.layers[ni].ID
	}
	return true
}

// RenameLayer sets a layer's display name.
func (m *Map) RenameLayer(id int, name string) bool {
	l := m.Layer(id)
	if l == nil {
		return false
	}
	l.Name = name
	return true
}

// MoveLayer moves a layer to a new stack index, shifting the others.
func (m *Map) MoveLayer(id int, newIndex int) bool {
	idx := m.layerIndex(m.resolve(id))
	if idx < 0 || newIndex < 0 || newIndex >= len(m.layers) {
		return false
	}
	if idx == newIndex {
		return true
	}
	l := m.layers[idx]
	m.layers = append(m.layers[:idx], m.layers[idx+1:]...)
	m.layers = append(m.layers, nil)
	copy(m.layers[newIndex+1:], m.layers[newIndex:])
	m.layers[newIndex] = l
	return true
}

// SetLayerVisible toggles a layer's visibility flag.
func (m *Map) SetLayerVisible(id int, visible bool) bool {
	l := m.Layer(id)
	if l == nil {
		return false
	}
	l.Visible = visible
	return true
}

// SetLayerLocked toggles a layer's lock. A locked layer rejects writes
// through the checked path.
func (m *Map) SetLayerLocked(id int, locked bool) bool {
	l := m.Layer(id)
	if l == nil {
		return false
	}
	l.Locked = locked
	return true
}

// SetLayerOpacity sets a layer's opacity, clamped to [0, 1].
func (m *Map) SetLayerOpacity(id int, opacity float64) bool {
	l := m.Layer(id)
	if l == nil {
		return false
	}
	l.Opacity = common.Clamp(opacity, 0, 1)
	return true
}

func (m *Map) resolve(id int) int {
	if id == ActiveLayer {
		return m.active
	}
	return id
}
