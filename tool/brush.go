package tool

import "math"

// Shape selects the brush footprint shape.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Footprint enumerates the in-bounds cells a brush of the given size and
// shape covers around (cx, cy). Size 1 is always exactly the center cell.
//
// Circles use cell centers at integer coordinates with a half-cell offset
// when the size is even, so an even-diameter circle sits centred between
// cells instead of lopsided around one. A cell belongs to the circle when
// its centre is within radius+0.5 of the (possibly offset) brush centre;
// the half-cell tolerance keeps small circles looking round.
func Footprint(cx, cy, size int, shape Shape, width, height int) []Point {
	if size < 1 {
		size = 1
	}
	radius := size / 2
	var out []Point

	if shape == ShapeSquare {
		for y := cy - radius; y < cy-radius+size; y++ {
			if y < 0 || y >= height {
				continue
			}
			for x := cx - radius; x < cx-radius+size; x++ {
				if x < 0 || x >= width {
					continue
				}
				out = append(out, Point{x, y})
			}
		}
		return out
	}

	ox, oy := float64(cx), float64(cy)
	if size%2 == 0 {
		ox -= 0.5
		oy -= 0.5
	}
	limit := float64(radius) + 0.5
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		if y < 0 || y >= height {
			continue
		}
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			if x < 0 || x >= width {
				continue
			}
			if math.Hypot(float64(x)-ox, float64(y)-oy) <= limit {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}
