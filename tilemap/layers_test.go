package tilemap

import "testing"

func TestAddLayerCap(t *testing.T) {
	m := New(16, 16, 32)
	for i := 1; i < MaxLayers; i++ {
		if id := m.AddLayer(""); id == -1 {
			t.Fatalf("AddLayer %d should succeed", i)
		}
	}
	if m.LayerCount() != MaxLayers {
		t.Fatalf("expected %d layers, got %d", MaxLayers, m.LayerCount())
	}
	if id := m.AddLayer("over"); id != -1 {
		t.Fatalf("AddLayer beyond cap should return -1, got %d", id)
	}
}

func TestDeleteLayer(t *testing.T) {
	t.Run("last_layer_protected", func(t *testing.T) {
		m := New(16, 16, 32)
		if m.DeleteLayer(m.ActiveLayerID()) {
			t.Fatalf("deleting the only layer should fail")
		}
	})

	t.Run("active_reassigned", func(t *testing.T) {
		m := New(16, 16, 32)
		a := m.ActiveLayerID()
		b := m.AddLayer("b")
		c := m.AddLayer("c")

		m.SetActiveLayer(c)
		if !m.DeleteLayer(c) {
			t.Fatalf("delete failed")
		}
		if m.ActiveLayerID() != b {
			t.Fatalf("expected active to fall to %d, got %d", b, m.ActiveLayerID())
		}

		m.SetActiveLayer(a)
		if !m.DeleteLayer(a) {
			t.Fatalf("delete failed")
		}
		if m.ActiveLayerID() != b {
			t.Fatalf("expected active %d after deleting bottom, got %d", b, m.ActiveLayerID())
		}
	})
}

func TestDuplicateLayerIndependentCopy(t *testing.T) {
	m := New(16, 16, 32)
	src := m.ActiveLayerID()
	m.SetTile(2, 2, 9, src)
	m.SetLayerOpacity(src, 0.5)

	dup := m.DuplicateLayer(src)
	if dup == -1 {
		t.Fatalf("duplicate failed")
	}
	if got := m.GetTile(2, 2, dup); got != 9 {
		t.Fatalf("duplicate should copy tiles, got %d", got)
	}
	if m.Layer(dup).Opacity != 0.5 {
		t.Fatalf("duplicate should copy metadata")
	}

	// mutating the copy must not touch the source
	m.SetTile(2, 2, 4, dup)
	if got := m.GetTile(2, 2, src); got != 9 {
		t.Fatalf("source layer changed with duplicate, got %d", got)
	}
}

func TestMoveLayer(t *testing.T) {
	m := New(16, 16, 32)
	a := m.ActiveLayerID()
	b := m.AddLayer("b")
	c := m.AddLayer("c")

	if !m.MoveLayer(c, 0) {
		t.Fatalf("move failed")
	}
	order := m.Layers()
	want := []int{c, a, b}
	for i, l := range order {
		if l.ID != want[i] {
			t.Fatalf("expected order %v, got layer %d at index %d", want, l.ID, i)
		}
	}

	if m.MoveLayer(a, 5) {
		t.Fatalf("move to out-of-range index should fail")
	}
}

func TestLayerMetadata(t *testing.T) {
	m := New(16, 16, 32)
	id := m.ActiveLayerID()

	if !m.RenameLayer(id, "Terrain") || m.Layer(id).Name != "Terrain" {
		t.Fatalf("rename failed")
	}
	if !m.SetLayerVisible(id, false) || m.Layer(id).Visible {
		t.Fatalf("visibility toggle failed")
	}
	m.SetLayerOpacity(id, 3.5)
	if m.Layer(id).Opacity != 1 {
		t.Fatalf("opacity should clamp to 1, got %v", m.Layer(id).Opacity)
	}
	m.SetLayerOpacity(id, -1)
	if m.Layer(id).Opacity != 0 {
		t.Fatalf("opacity should clamp to 0, got %v", m.Layer(id).Opacity)
	}
	if m.RenameLayer(12345, "x") {
		t.Fatalf("renaming an unknown layer should fail")
	}
}
