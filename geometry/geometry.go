// Package geometry contains the planar primitives used throughout elbow.
package geometry

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in scene or connection-local space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Eq reports whether p and q coincide within Eps.
func (p Point) Eq(q Point) bool {
	return Eq(p.X, q.X) && Eq(p.Y, q.Y)
}

// String returns the point as "(x, y)" with trimmed precision.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Dimension represents a width/height pair, e.g. a grid cell size.
type Dimension struct {
	W, H float64
}

// Dim is shorthand for constructing a Dimension.
func Dim(w, h float64) Dimension {
	return Dimension{W: w, H: h}
}

// Rect represents an axis-aligned rectangle given by its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains checks if a point is inside the rectangle (borders included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// BorderPoint projects p onto the nearest point of the rectangle's border.
// Points inside the rectangle are pushed to the closest edge, points outside
// are clamped onto it.
func (r Rect) BorderPoint(p Point) Point {
	cx := Clamp(p.X, r.X, r.Right())
	cy := Clamp(p.Y, r.Y, r.Bottom())

	dl := cx - r.Left()
	dr := r.Right() - cx
	dt := cy - r.Top()
	db := r.Bottom() - cy

	m := math.Min(math.Min(dl, dr), math.Min(dt, db))
	switch m {
	case dl:
		return Point{X: r.Left(), Y: cy}
	case dr:
		return Point{X: r.Right(), Y: cy}
	case dt:
		return Point{X: cx, Y: r.Top()}
	default:
		return Point{X: cx, Y: r.Bottom()}
	}
}
