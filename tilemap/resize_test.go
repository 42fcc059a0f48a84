package tilemap

import "testing"

func TestResizeAnchors(t *testing.T) {
	cases := []struct {
		name   string
		anchor Anchor
		// tile planted at old position, expected at new position
		oldX, oldY int
		newX, newY int
		newW, newH int
	}{
		{"top_left_grow_keeps_origin", AnchorTopLeft, 0, 0, 0, 0, 24, 24},
		{"bottom_right_grow_maps_corner", AnchorBottomRight, 15, 15, 23, 23, 24, 24},
		{"center_grow", AnchorCenter, 8, 8, 12, 12, 24, 24},
		{"top_left_shrink", AnchorTopLeft, 0, 0, 0, 0, 8, 8},
		{"bottom_right_shrink", AnchorBottomRight, 15, 15, 7, 7, 8, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(16, 16, 32)
			m.SetTile(c.oldX, c.oldY, 42, ActiveLayer)
			m.Resize(c.newW, c.newH, c.anchor)
			if m.Width != c.newW || m.Height != c.newH {
				t.Fatalf("expected %dx%d, got %dx%d", c.newW, c.newH, m.Width, m.Height)
			}
			if got := m.GetTile(c.newX, c.newY, ActiveLayer); got != 42 {
				t.Fatalf("expected tile at (%d,%d), got %d", c.newX, c.newY, got)
			}
		})
	}
}

func TestResizeDiscardsOutOfExtent(t *testing.T) {
	m := New(16, 16, 32)
	m.SetTile(15, 15, 7, ActiveLayer)
	m.Resize(8, 8, AnchorTopLeft)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.GetTile(x, y, ActiveLayer) != 0 {
				t.Fatalf("expected all cells empty after discard, found tile at (%d,%d)", x, y)
			}
		}
	}
}

func TestResizeAffectsAllLayers(t *testing.T) {
	m := New(16, 16, 32)
	bottom := m.ActiveLayerID()
	top := m.AddLayer("top")
	m.SetTile(0, 0, 1, bottom)
	m.SetTile(0, 0, 2, top)

	m.Resize(32, 32, AnchorBottomRight)
	if got := m.GetTile(16, 16, bottom); got != 1 {
		t.Fatalf("bottom layer tile lost, got %d", got)
	}
	if got := m.GetTile(16, 16, top); got != 2 {
		t.Fatalf("top layer tile lost, got %d", got)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m := New(16, 16, 32)
	base := m.ActiveLayerID()
	m.SetTile(3, 3, 5, base)
	top := m.AddLayer("top")
	m.SetTile(4, 4, 6, top)
	m.SetLayerLocked(top, true)

	snap := m.Snapshot()

	// Later mutations must not leak into the snapshot.
	m.SetTileRaw(4, 4, 99, top)
	m.Resize(32, 32, AnchorTopLeft)
	m.DeleteLayer(top)

	m.Restore(snap)
	if m.Width != 16 || m.Height != 16 {
		t.Fatalf("restore dimensions wrong: %dx%d", m.Width, m.Height)
	}
	if got := m.GetTile(3, 3, base); got != 5 {
		t.Fatalf("restore lost base tile, got %d", got)
	}
	if got := m.GetTile(4, 4, top); got != 6 {
		t.Fatalf("restore lost top tile, got %d", got)
	}
	if !m.Layer(top).Locked {
		t.Fatalf("restore lost lock flag")
	}
	if m.ActiveLayerID() != top {
		t.Fatalf("restore lost active layer")
	}

	// Restoring twice from the same snapshot must work (no aliasing).
	m.SetTileRaw(3, 3, 77, base)
	m.Restore(snap)
	if got := m.GetTile(3, 3, base); got != 5 {
		t.Fatalf("second restore failed, got %d", got)
	}
}
