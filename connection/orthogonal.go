package connection

import (
	"elbow/anchor"
	"elbow/geometry"
)

// Orthogonal routes the connection with axis-aligned segments only. Wherever
// two consecutive anchors differ in both axes it contributes a corner point,
// horizontal first: the path leaves the earlier anchor along the x axis and
// turns once.
type Orthogonal struct{}

// Name implements Router.
func (Orthogonal) Name() string { return "orthogonal" }

// Route strips the corners contributed on earlier passes and re-inserts
// them from the user-placed anchors alone, which makes it idempotent.
func (Orthogonal) Route(c *Connection, anchors []anchor.Anchor) []anchor.Anchor {
	base := dropRouterInserted(anchors)
	out := make([]anchor.Anchor, 0, len(base)*2)
	for i, a := range base {
		out = append(out, a)
		if i == len(base)-1 {
			break
		}
		from := c.resolveLocal(a)
		to := c.resolveLocal(base[i+1])
		if !geometry.Eq(from.X, to.X) && !geometry.Eq(from.Y, to.Y) {
			out = append(out, anchor.RouterInserted(geometry.Pt(to.X, from.Y)))
		}
	}
	return out
}

// Normalize removes user-placed way-points that sit on the segment between
// their user-placed neighbours.
func (Orthogonal) Normalize(anchors []anchor.Anchor) []anchor.Anchor {
	doomed := CollinearWaypoints(anchors, nil)
	if len(doomed) == 0 {
		return anchors
	}

	out := make([]anchor.Anchor, len(anchors))
	copy(out, anchors)
	for i := len(doomed) - 1; i >= 0; i-- {
		d := doomed[i]
		out = append(out[:d], out[d+1:]...)
	}
	return out
}

// CollinearWaypoints returns the indices of user-placed anchors that lie on
// the segment between their user-placed neighbours and so contribute no
// shape. Router corners and attached endpoints are skipped when choosing
// neighbours, matching how the corners themselves are recomputed from
// user-placed anchors only. Removing a point can make an earlier one
// redundant in turn, so the scan re-anchors on the surviving predecessor
// and keeps going. skip marks indices that must survive; it may be nil.
// Indices come back ascending, so callers remove them highest first.
func CollinearWaypoints(anchors []anchor.Anchor, skip func(int) bool) []int {
	idx := make([]int, 0, len(anchors))
	for i, a := range anchors {
		if a.IsExplicitStatic() {
			idx = append(idx, i)
		}
	}
	if len(idx) < 3 || len(anchors) <= 2 {
		return nil
	}

	var doomed []int
	prev, cur := idx[0], idx[1]
	for k := 2; k < len(idx); k++ {
		next := idx[k]
		if skip == nil || !skip(cur) {
			seg := geometry.Seg(anchors[prev].Position(), anchors[next].Position())
			if seg.Contains(anchors[cur].Position()) {
				doomed = append(doomed, cur)
				cur = prev
			}
		}
		prev, cur = cur, next
	}
	return doomed
}
