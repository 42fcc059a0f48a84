package tool

import "testing"

// gridAt builds an accessor over a rune picture: '#' is tile 1, '.' is 0.
func gridAt(rows []string) (w, h int, at func(x, y int) uint16) {
	h = len(rows)
	w = len(rows[0])
	return w, h, func(x, y int) uint16 {
		if rows[y][x] == '#' {
			return 1
		}
		return 0
	}
}

func toSet(t *testing.T, pts []Point) map[Point]struct{} {
	t.Helper()
	set := make(map[Point]struct{}, len(pts))
	for _, p := range pts {
		if _, dup := set[p]; dup {
			t.Fatalf("position (%d,%d) visited more than once", p.X, p.Y)
		}
		set[p] = struct{}{}
	}
	return set
}

func TestFloodFillIdempotent(t *testing.T) {
	w, h, at := gridAt([]string{
		"###",
		"###",
		"###",
	})
	// Region already holds the replacement id.
	if got := FloodFill(w, h, 1, 1, 1, at); len(got) != 0 {
		t.Fatalf("filling with the target's own id should be empty, got %d", len(got))
	}
}

func TestFloodFillOutOfBounds(t *testing.T) {
	w, h, at := gridAt([]string{"..", ".."})
	if got := FloodFill(w, h, -1, 0, 5, at); got != nil {
		t.Fatalf("out-of-bounds seed should return nil")
	}
	if got := FloodFill(w, h, 0, 2, 5, at); got != nil {
		t.Fatalf("out-of-bounds seed should return nil")
	}
}

func TestFloodFillEnclosedRegion(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		sx, sy int
		want  int
	}{
		{"single_cell", []string{
			"###",
			"#.#",
			"###",
		}, 1, 1, 1},
		{"rectangle", []string{
			"#####",
			"#...#",
			"#...#",
			"#####",
		}, 2, 1, 6},
		{"u_shape", []string{
			"#.#.#",
			"#.#.#",
			"#...#",
			"#####",
		}, 1, 0, 7},
		{"spiral", []string{
			".......",
			".#####.",
			".#...#.",
			".#.#.#.",
			".#.###.",
			".#.....",
			".######",
		}, 3, 3, 21},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, h, at := gridAt(c.rows)
			got := FloodFill(w, h, c.sx, c.sy, 5, at)
			set := toSet(t, got)
			if len(set) != c.want {
				t.Fatalf("expected %d filled cells, got %d: %v", c.want, len(set), got)
			}
			seedVal := at(c.sx, c.sy)
			for p := range set {
				if at(p.X, p.Y) != seedVal {
					t.Fatalf("cell (%d,%d) does not match the seed value", p.X, p.Y)
				}
			}
		})
	}
}

func TestFloodFillConcaveRegionComplete(t *testing.T) {
	// The empty region snakes around islands; overhang spans must find
	// every connected cell.
	rows := []string{
		"........",
		".##.##..",
		".#...#..",
		".#.#.#..",
		"...#....",
		".#####..",
		"........",
	}
	w, h, at := gridAt(rows)

	want := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if at(x, y) == 0 {
				want++
			}
		}
	}
	// All '.' cells are 4-connected in this picture.
	got := FloodFill(w, h, 0, 0, 9, at)
	set := toSet(t, got)
	if len(set) != want {
		t.Fatalf("expected %d cells, got %d", want, len(set))
	}
}

func TestFloodFillLargeGrid(t *testing.T) {
	// A 256x256 single-region fill; explicit stack, so no recursion depth
	// to worry about.
	const n = 256
	at := func(x, y int) uint16 { return 0 }
	got := FloodFill(n, n, 128, 128, 3, at)
	if len(got) != n*n {
		t.Fatalf("expected %d cells, got %d", n*n, len(got))
	}
	toSet(t, got)
}

func TestFloodFillStopsAtBoundary(t *testing.T) {
	rows := []string{
		"..#..",
		"..#..",
		"..#..",
	}
	w, h, at := gridAt(rows)
	got := FloodFill(w, h, 0, 0, 9, at)
	set := toSet(t, got)
	if len(set) != 6 {
		t.Fatalf("fill crossed the wall: got %d cells", len(set))
	}
	for p := range set {
		if p.X > 1 {
			t.Fatalf("fill leaked past the wall at (%d,%d)", p.X, p.Y)
		}
	}
}
