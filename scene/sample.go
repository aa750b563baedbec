package scene

import (
	"elbow/anchor"
	"elbow/connection"
	"elbow/geometry"
)

// Sample returns a small starter scene: two labelled boxes joined by an
// orthogonal wire with one explicit way-point between them.
func Sample() *Scene {
	s := New()
	s.grid = GridSettings{Cell: geometry.Dim(10, 10), Snap: true}

	left := NewShape("box-a", "alpha", geometry.Rect{X: 10, Y: 10, W: 30, H: 14})
	right := NewShape("box-b", "beta", geometry.Rect{X: 90, Y: 40, W: 30, H: 14})
	s.shapes = append(s.shapes, left, right)

	c := connection.New(
		anchor.Dynamic(left, right.Center()),
		anchor.Dynamic(right, left.Center()),
		anchor.Static(geometry.Pt(65, 30)),
	)
	c.SetRouter(connection.Orthogonal{})
	s.wires = append(s.wires, NewWire("wire-1", c))
	return s
}
