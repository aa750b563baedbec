package editor

import (
	"elbow/anchor"
	"elbow/geometry"
)

// Element is anything the editor can address on the stage.
type Element interface {
	ID() string
}

// AnchorProvider is the attachment capability. Elements that can hand out
// anchors for connection endpoints implement it; ProvideAnchor returns
// false when the element declines the position.
type AnchorProvider interface {
	ProvideAnchor(at geometry.Point) (anchor.Anchor, bool)
}

// HitTester resolves a scene position to the elements under it, front to
// back. Sessions use it to decide what an endpoint dropped at a position
// should attach to.
type HitTester interface {
	HitTest(at geometry.Point) []Element
}

// Grid supplies the snapping settings a session consults while points are
// dragged.
type Grid interface {
	SnapEnabled() bool
	CellSize() geometry.Dimension
}
