package geometry

import "math"

// Eps is the tolerance for float comparisons in geometric predicates.
const Eps = 1e-9

// Eq reports whether two floats are equal within Eps.
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= Eps
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapToGrid rounds p to the nearest multiple of the cell size scaled by
// fraction. A fraction of 0.5 snaps to half-cell positions. Non-positive
// cell dimensions leave the point untouched.
func SnapToGrid(p Point, cell Dimension, fraction float64) Point {
	sw := cell.W * fraction
	sh := cell.H * fraction
	if sw <= 0 || sh <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/sw) * sw,
		Y: math.Round(p.Y/sh) * sh,
	}
}
