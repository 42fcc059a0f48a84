// Package tool holds the pure tool algorithms: flood fill, brush
// footprints and line interpolation. They compute affected grid positions
// and never touch the map or history themselves.
package tool

// Point is a grid cell position.
type Point struct {
	X, Y int
}

// FloodFill returns every cell of the 4-connected region containing
// (startX, startY) whose tiles match the start cell's value, read through
// at. If the start cell already holds replacement, or is out of bounds,
// the result is empty.
//
// The fill is span-based with an explicit work stack: each step claims one
// contiguous horizontal run, then queues the rows above and below it,
// including the overhang sub-spans directed back toward the current row
// that concave regions need. A recursive fill would reach stack depths of
// tens of thousands on a full 256x256 region.
func FloodFill(width, height, startX, startY int, replacement uint16, at func(x, y int) uint16) []Point {
	if startX < 0 || startY < 0 || startX >= width || startY >= height {
		return nil
	}
	target := at(startX, startY)
	if target == replacement {
		return nil
	}

	visited := make([]bool, width*height)
	inside := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < width && y < height &&
			!visited[y*width+x] && at(x, y) == target
	}
	var out []Point
	set := func(x, y int) {
		visited[y*width+x] = true
		out = append(out, Point{x, y})
	}

	// Each span is a candidate scan range on row y, reached while moving
	// in direction dy.
	type span struct{ x1, x2, y, dy int }
	stack := []span{
		{startX, startX, startY, 1},
		{startX, startX, startY - 1, -1},
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x := s.x1
		if inside(x, s.y) {
			for inside(x-1, s.y) {
				set(x-1, s.y)
				x--
			}
			if x < s.x1 {
				// Run extends left of the parent span: overhang back
				// toward the row we came from.
				stack = append(stack, span{x, s.x1 - 1, s.y - s.dy, -s.dy})
			}
		}
		for s.x1 <= s.x2 {
			for inside(s.x1, s.y) {
				set(s.x1, s.y)
				s.x1++
			}
			if s.x1 > x {
				stack = append(stack, span{x, s.x1 - 1, s.y + s.dy, s.dy})
			}
			if s.x1-1 > s.x2 {
				// Run extends right of the parent span.
				stack = append(stack, span{s.x2 + 1, s.x1 - 1, s.y - s.dy, -s.dy})
			}
			s.x1++
			for s.x1 <= s.x2 && !inside(s.x1, s.y) {
				s.x1++
			}
			x = s.x1
		}
	}
	return out
}
