package tool

import "testing"

func TestLineEndpoints(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"single_point", 3, 3, 3, 3},
		{"horizontal", 0, 5, 9, 5},
		{"vertical", 4, 0, 4, 7},
		{"diagonal", 0, 0, 6, 6},
		{"shallow", 0, 0, 10, 3},
		{"steep", 0, 0, 3, 10},
		{"reversed", 9, 9, 1, 2},
		{"negative", -3, -3, 4, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pts := Line(c.x0, c.y0, c.x1, c.y1)
			if len(pts) == 0 {
				t.Fatalf("empty line")
			}
			if pts[0] != (Point{c.x0, c.y0}) {
				t.Fatalf("line must start at (%d,%d), got %v", c.x0, c.y0, pts[0])
			}
			if pts[len(pts)-1] != (Point{c.x1, c.y1}) {
				t.Fatalf("line must end at (%d,%d), got %v", c.x1, c.y1, pts[len(pts)-1])
			}

			seen := map[Point]struct{}{}
			for i, p := range pts {
				if _, dup := seen[p]; dup {
					t.Fatalf("duplicate point %v", p)
				}
				seen[p] = struct{}{}
				if i == 0 {
					continue
				}
				dx := p.X - pts[i-1].X
				dy := p.Y - pts[i-1].Y
				if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
					t.Fatalf("step %d jumps from %v to %v", i, pts[i-1], p)
				}
			}
		})
	}
}

func TestLineHorizontalLength(t *testing.T) {
	pts := Line(2, 1, 7, 1)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d", len(pts))
	}
	for i, p := range pts {
		if p.Y != 1 || p.X != 2+i {
			t.Fatalf("unexpected point %v at index %d", p, i)
		}
	}
}
