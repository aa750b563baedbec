// Package scene holds the editable stage: shapes that connections can
// attach to, the wires connecting them, grid settings and an ordered
// selection, plus the JSON form everything is saved as.
package scene

import (
	"elbow/anchor"
	"elbow/geometry"
)

// Shape is a rectangular stage element. Wires attach to it through dynamic
// anchors; the shape resolves them by projecting the attachment reference
// onto its border.
type Shape struct {
	id     string
	label  string
	bounds geometry.Rect
}

// NewShape returns a shape with the given id, display label and bounds.
func NewShape(id, label string, bounds geometry.Rect) *Shape {
	return &Shape{id: id, label: label, bounds: bounds}
}

// ID returns the shape's identifier.
func (s *Shape) ID() string { return s.id }

// Label returns the shape's display label.
func (s *Shape) Label() string { return s.label }

// Bounds returns the shape's rectangle in scene space.
func (s *Shape) Bounds() geometry.Rect { return s.bounds }

// Center returns the center of the shape's bounds.
func (s *Shape) Center() geometry.Point { return s.bounds.Center() }

// Contains reports whether p lies within the shape's bounds.
func (s *Shape) Contains(p geometry.Point) bool { return s.bounds.Contains(p) }

// AnchorPosition resolves a dynamic anchor against the shape: the reference
// point projected onto the border.
func (s *Shape) AnchorPosition(ref geometry.Point) geometry.Point {
	return s.bounds.BorderPoint(ref)
}

// ProvideAnchor hands out a dynamic anchor bound to the shape, keeping the
// requested position as the attachment reference.
func (s *Shape) ProvideAnchor(at geometry.Point) (anchor.Anchor, bool) {
	return anchor.Dynamic(s, at), true
}
