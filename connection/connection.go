// Package connection implements the connector model: an ordered anchor
// sequence with on-demand resolved points, a pluggable router, and the
// scene<->local transform of the connection's own coordinate space.
package connection

import (
	"errors"

	"elbow/anchor"
	"elbow/geometry"
)

// ErrTooFewAnchors is returned when an anchor sequence would drop below the
// start and end points.
var ErrTooFewAnchors = errors.New("connection needs at least a start and an end anchor")

// Connection is a routed path between two endpoints. Index 0 is the start
// anchor, the last index the end anchor, everything between a way-point.
// The stored sequence includes router-contributed corner points.
type Connection struct {
	anchors []anchor.Anchor
	router  Router
	origin  geometry.Point
}

// New creates a connection from start to end using the straight router.
// Way-points, if given, sit between the endpoints in order.
func New(start, end anchor.Anchor, waypoints ...anchor.Anchor) *Connection {
	anchors := make([]anchor.Anchor, 0, len(waypoints)+2)
	anchors = append(anchors, start)
	anchors = append(anchors, waypoints...)
	anchors = append(anchors, end)
	return &Connection{
		anchors: anchors,
		router:  Straight{},
	}
}

// Router returns the active router.
func (c *Connection) Router() Router {
	return c.router
}

// SetRouter swaps the active router and re-routes the current sequence so
// router-contributed points match the new routing style.
func (c *Connection) SetRouter(r Router) {
	if r == nil {
		r = Straight{}
	}
	c.router = r
	c.anchors = r.Route(c, c.anchors)
}

// Origin returns the scene position of the connection's local origin.
func (c *Connection) Origin() geometry.Point {
	return c.origin
}

// SetOrigin moves the connection's local coordinate space within the scene.
func (c *Connection) SetOrigin(p geometry.Point) {
	c.origin = p
}

// ToLocal converts a scene-space point into the connection's local space.
func (c *Connection) ToLocal(scene geometry.Point) geometry.Point {
	return scene.Sub(c.origin)
}

// ToScene converts a local-space point into scene space.
func (c *Connection) ToScene(local geometry.Point) geometry.Point {
	return local.Add(c.origin)
}

// Len returns the number of anchors, router-contributed points included.
func (c *Connection) Len() int {
	return len(c.anchors)
}

// Anchor returns the anchor at the given index.
func (c *Connection) Anchor(i int) anchor.Anchor {
	return c.anchors[i]
}

// Anchors returns a copy of the current anchor sequence.
func (c *Connection) Anchors() []anchor.Anchor {
	out := make([]anchor.Anchor, len(c.anchors))
	copy(out, c.anchors)
	return out
}

// SetAnchors replaces the anchor sequence. The new sequence is routed before
// it is stored, so router-contributed corner points are refreshed in the
// same step. Sequences shorter than start+end are rejected.
func (c *Connection) SetAnchors(as []anchor.Anchor) error {
	if len(as) < 2 {
		return ErrTooFewAnchors
	}
	next := make([]anchor.Anchor, len(as))
	copy(next, as)
	c.anchors = c.router.Route(c, next)
	return nil
}

// Point returns the resolved local-space position of the anchor at index i.
func (c *Connection) Point(i int) geometry.Point {
	return c.resolveLocal(c.anchors[i])
}

// Points returns the resolved local-space positions of all anchors, in
// order. Positions are computed on demand; dynamic anchors delegate to
// their targets on every call.
func (c *Connection) Points() []geometry.Point {
	out := make([]geometry.Point, len(c.anchors))
	for i, a := range c.anchors {
		out[i] = c.resolveLocal(a)
	}
	return out
}

// IsStartConnected reports whether the start point is attached to an
// external target.
func (c *Connection) IsStartConnected() bool {
	return c.anchors[0].Kind() == anchor.KindDynamic
}

// IsEndConnected reports whether the end point is attached to an external
// target.
func (c *Connection) IsEndConnected() bool {
	return c.anchors[len(c.anchors)-1].Kind() == anchor.KindDynamic
}

// resolveLocal resolves one anchor to a local-space position. Static anchors
// already live in local space; dynamic anchors resolve in scene space and
// are converted.
func (c *Connection) resolveLocal(a anchor.Anchor) geometry.Point {
	if a.Kind() == anchor.KindDynamic {
		return c.ToLocal(a.Position())
	}
	return a.Position()
}
