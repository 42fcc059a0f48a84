package common

func Clamp[T int | int64 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
