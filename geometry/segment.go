package geometry

import "math"

// Segment represents a straight line segment between two points.
type Segment struct {
	A, B Point
}

// Seg is shorthand for constructing a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// IsHorizontal reports whether both endpoints share a y coordinate.
func (s Segment) IsHorizontal() bool {
	return Eq(s.A.Y, s.B.Y)
}

// IsVertical reports whether both endpoints share an x coordinate.
func (s Segment) IsVertical() bool {
	return Eq(s.A.X, s.B.X)
}

// Contains reports whether p lies on the segment. The collinearity test is
// scaled by the segment length so the tolerance stays meaningful for long
// segments.
func (s Segment) Contains(p Point) bool {
	cross := (s.B.X-s.A.X)*(p.Y-s.A.Y) - (s.B.Y-s.A.Y)*(p.X-s.A.X)
	if math.Abs(cross) > Eps*(1+s.Length()) {
		return false
	}
	minX := math.Min(s.A.X, s.B.X) - Eps
	maxX := math.Max(s.A.X, s.B.X) + Eps
	minY := math.Min(s.A.Y, s.B.Y) - Eps
	maxY := math.Max(s.A.Y, s.B.Y) + Eps
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Dist returns the distance from p to the nearest point of the segment.
func (s Segment) Dist(p Point) float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return s.A.Dist(p)
	}
	t := Clamp(((p.X-s.A.X)*dx+(p.Y-s.A.Y)*dy)/l2, 0, 1)
	return p.Dist(Point{X: s.A.X + t*dx, Y: s.A.Y + t*dy})
}
