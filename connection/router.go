package connection

import (
	"elbow/anchor"
)

// Router computes the concrete shape of a connection from its anchors.
type Router interface {
	// Name identifies the router in scene files and logs.
	Name() string

	// Route refreshes router-contributed points. A router may drop anchors
	// it inserted on an earlier pass and insert new ones, but it never
	// touches user-placed anchors. Route must be idempotent: routing an
	// already-routed sequence again yields the same sequence.
	Route(c *Connection, anchors []anchor.Anchor) []anchor.Anchor

	// Normalize removes user-placed points that no longer contribute shape,
	// such as collinear way-points on an orthogonal path. It never removes
	// the first or last anchor and returns the input unchanged when there
	// is nothing to remove.
	Normalize(anchors []anchor.Anchor) []anchor.Anchor
}

// RouterByName returns the router registered under the given name. Unknown
// names fall back to the straight router.
func RouterByName(name string) Router {
	if name == (Orthogonal{}).Name() {
		return Orthogonal{}
	}
	return Straight{}
}

// Straight connects the anchors with direct segments and contributes no
// points of its own.
type Straight struct{}

// Name implements Router.
func (Straight) Name() string { return "straight" }

// Route drops corner points left behind by a previous router and keeps the
// user-placed sequence as is.
func (Straight) Route(_ *Connection, anchors []anchor.Anchor) []anchor.Anchor {
	return dropRouterInserted(anchors)
}

// Normalize keeps every user-placed point; on a straight connection each one
// shapes the path.
func (Straight) Normalize(anchors []anchor.Anchor) []anchor.Anchor {
	return anchors
}

// dropRouterInserted filters router-contributed anchors out of a sequence.
func dropRouterInserted(anchors []anchor.Anchor) []anchor.Anchor {
	out := make([]anchor.Anchor, 0, len(anchors))
	for _, a := range anchors {
		if a.IsRouterInserted() {
			continue
		}
		out = append(out, a)
	}
	return out
}
