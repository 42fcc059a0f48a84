package tilemap

// Snapshot is a point-in-time deep copy of a map's full state, used for
// undoing structural operations that cannot be expressed as sparse tile
// deltas. A snapshot never aliases the live map's arrays.
type Snapshot struct {
	Width    int
	Height   int
	TileSize int
	Layers   []LayerState
	Active   int

	nextID int
}

// LayerState is the snapshotted form of one layer.
type LayerState struct {
	ID      int
	Name    string
	Visible bool
	Locked  bool
	Opacity float64
	Tiles   []uint16
}

// Snapshot deep-copies the map's current state.
func (m *Map) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:    m.Width,
		Height:   m.Height,
		TileSize: m.TileSize,
		Layers:   make([]LayerState, len(m.layers)),
		Active:   m.active,
		nextID:   m.nextID,
	}
	for i, l := range m.layers {
		tiles := make([]uint16, len(l.Tiles))
		copy(tiles, l.Tiles)
		s.Layers[i] = LayerState{
			ID:      l.ID,
			Name:    l.Name,
			Visible: l.Visible,
			Locked:  l.Locked,
			Opacity: l.Opacity,
			Tiles:   tiles,
		}
	}
	return s
}

// Restore replaces the map's state with a deep copy of the snapshot. The
// snapshot stays valid and unaliased, so it can be restored again later.
func (m *Map) Restore(s *Snapshot) {
	m.Width = s.Width
	m.Height = s.Height
	m.TileSize = s.TileSize
	m.active = s.Active
	m.nextID = s.nextID
	m.layers = make([]*Layer, len(s.Layers))
	for i, ls := range s.Layers {
		tiles := make([]uint16, len(ls.Tiles))
		copy(tiles, ls.Tiles)
		m.layers[i] = &Layer{
			ID:      ls.ID,
			Name:    ls.Name,
			Visible: ls.Visible,
			Locked:  ls.Locked,
			Opacity: ls.Opacity,
			Tiles:   tiles,
		}
	}
}
