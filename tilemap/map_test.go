package tilemap

import "testing"

func TestNewClampsDimensions(t *testing.T) {
	cases := []struct {
		name       string
		w, h       int
		wantW, wantH int
	}{
		{"in_range", 40, 23, 40, 23},
		{"too_small", 2, 4, MinSize, MinSize},
		{"too_large", 999, 300, MaxSize, MaxSize},
		{"mixed", 4, 999, MinSize, MaxSize},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(c.w, c.h, 32)
			if m.Width != c.wantW || m.Height != c.wantH {
				t.Fatalf("expected %dx%d, got %dx%d", c.wantW, c.wantH, m.Width, m.Height)
			}
			if m.LayerCount() != 1 {
				t.Fatalf("expected one initial layer, got %d", m.LayerCount())
			}
		})
	}
}

func TestSetGetTile(t *testing.T) {
	cases := []struct {
		name string
		x, y int
		tile int
		want uint16
	}{
		{"plain", 3, 4, 7, 7},
		{"clamp_high", 5, 5, 70000, MaxTile},
		{"clamp_negative", 6, 6, -3, 0},
		{"max", 7, 7, MaxTile, MaxTile},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(16, 16, 32)
			m.SetTile(c.x, c.y, c.tile, ActiveLayer)
			if got := m.GetTile(c.x, c.y, ActiveLayer); got != c.want {
				t.Fatalf("expected %d, got %d", c.want, got)
			}
		})
	}
}

func TestOutOfBoundsReadsZeroWritesIgnored(t *testing.T) {
	m := New(16, 16, 32)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}, {-5, -5}} {
		m.SetTile(p[0], p[1], 9, ActiveLayer)
		if got := m.GetTile(p[0], p[1], ActiveLayer); got != 0 {
			t.Fatalf("out-of-bounds (%d,%d) should read 0, got %d", p[0], p[1], got)
		}
	}
	if got := m.GetTile(2, 2, 9999); got != 0 {
		t.Fatalf("unknown layer should read 0, got %d", got)
	}
}

func TestLockedLayerWrites(t *testing.T) {
	m := New(16, 16, 32)
	id := m.ActiveLayerID()
	m.SetTile(4, 4, 11, id)
	m.SetLayerLocked(id, true)

	m.SetTile(4, 4, 22, id)
	if got := m.GetTile(4, 4, id); got != 11 {
		t.Fatalf("locked layer should reject checked write, got %d", got)
	}

	m.SetTileRaw(4, 4, 22, id)
	if got := m.GetTile(4, 4, id); got != 22 {
		t.Fatalf("raw write should bypass lock, got %d", got)
	}
}

func TestActiveLayerIsDefaultWriteTarget(t *testing.T) {
	m := New(16, 16, 32)
	base := m.ActiveLayerID()
	top := m.AddLayer("Detail")
	if top == -1 {
		t.Fatalf("AddLayer failed")
	}
	if m.ActiveLayerID() != top {
		t.Fatalf("new layer should become active")
	}

	m.SetTile(1, 1, 5, ActiveLayer)
	if got := m.GetTile(1, 1, top); got != 5 {
		t.Fatalf("expected write on new active layer, got %d", got)
	}
	if got := m.GetTile(1, 1, base); got != 0 {
		t.Fatalf("base layer should be untouched, got %d", got)
	}
}
