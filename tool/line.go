package tool

import "github.com/milk9111/tilesmith/common"

// Line returns the cells connecting (x0, y0) to (x1, y1) inclusive, using
// Bresenham's integer error accumulation so fast pointer movement never
// leaves gaps in a stroke. Consecutive points are always orthogonally or
// diagonally adjacent.
func Line(x0, y0, x1, y1 int) []Point {
	var points []Point
	dx := common.Abs(x1 - x0)
	dy := -common.Abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		points = append(points, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}
