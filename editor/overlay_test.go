package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elbow/anchor"
	"elbow/connection"
	"elbow/geometry"
)

func TestOverlayMergeAndRestore(t *testing.T) {
	c := threePointConn()
	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))

	// Dragging the way-point within the threshold of the unconnected start
	// merges the two.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(5, 0)))
	require.Equal(t, 2, c.Len())
	if got := c.Point(0); !got.Eq(geometry.Pt(0, 0)) {
		t.Errorf("start after merge = %v, want (0, 0)", got)
	}
	require.Equal(t, []int{0}, s.SelectedIndices())

	// Dragging it back past the threshold restores the removed anchor at
	// its original index and position.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(50, 0)))
	require.Equal(t, 3, c.Len())
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(50, 0), geometry.Pt(100, 0)}
	require.Equal(t, want, points(c))
	require.Equal(t, []int{1}, s.SelectedIndices())
}

func TestOverlayRestoreAtDraggedPosition(t *testing.T) {
	c := threePointConn()
	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))

	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(5, 0)))
	require.Equal(t, 2, c.Len())

	// Leaving the overlay to a different position keeps the drag: the
	// restored sequence has the way-point where the mouse is now.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(72, 8)))
	require.Equal(t, 3, c.Len())
	if got := c.Point(1); !got.Eq(geometry.Pt(72, 8)) {
		t.Errorf("way-point after restore = %v, want (72, 8)", got)
	}
	if got := c.Point(0); !got.Eq(geometry.Pt(0, 0)) {
		t.Errorf("start after restore = %v, want (0, 0)", got)
	}
}

func TestOverlayRequiresSameTarget(t *testing.T) {
	shapeA := &fakeShape{
		id:     "a",
		bounds: geometry.Rect{X: -5, Y: -5, W: 10, H: 10},
		at:     geometry.Pt(0, 0),
	}

	c := connection.New(
		anchor.Dynamic(shapeA, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(100, 0)),
	)
	require.NoError(t, c.SetAnchors([]anchor.Anchor{
		anchor.Dynamic(shapeA, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(50, 0)),
		anchor.Static(geometry.Pt(100, 0)),
	}))

	// No hit tester: an anchor resolved at the dragged position would be
	// unconnected, the neighbour is attached, so no merge happens.
	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(2, 0)))

	require.Equal(t, 3, c.Len())
	if got := c.Point(1); !got.Eq(geometry.Pt(2, 0)) {
		t.Errorf("way-point = %v, want (2, 0)", got)
	}
}

func TestOverlayMergeAdoptsEndpointAnchor(t *testing.T) {
	shapeA := &fakeShape{
		id:     "a",
		bounds: geometry.Rect{X: -5, Y: -5, W: 10, H: 10},
		at:     geometry.Pt(0, 0),
	}
	stage := &fakeStage{shapes: []*fakeShape{shapeA}}

	c := connection.New(
		anchor.Dynamic(shapeA, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(100, 0)),
	)
	require.NoError(t, c.SetAnchors([]anchor.Anchor{
		anchor.Dynamic(shapeA, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(50, 0)),
		anchor.Static(geometry.Pt(100, 0)),
	}))

	// With the mouse over the shape, an anchor resolved at the dragged
	// position attaches to the same target as the start anchor, so the
	// merge happens and keeps the connection attached.
	s := NewSession(c)
	s.SetHitTester(stage)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(2, 0)))

	require.Equal(t, 2, c.Len())
	require.Equal(t, anchor.KindDynamic, c.Anchor(0).Kind())
	if got := c.Point(0); !got.Eq(geometry.Pt(0, 0)) {
		t.Errorf("start after merge = %v, want (0, 0)", got)
	}
}

func TestOverlayThresholdFollowsGrid(t *testing.T) {
	// Snapping on: threshold is a quarter of the smaller cell side, here 5.
	grid := &fakeGrid{snap: true, cell: geometry.Dim(40, 20)}

	c := threePointConn()
	s := NewSession(c)
	s.SetGrid(grid)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))

	// 6 away from the start: outside the tightened threshold, no merge.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(6, 0)))
	require.Equal(t, 3, c.Len())

	// 3 away: inside, merges.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(3, 0)))
	require.Equal(t, 2, c.Len())
}

func TestOverlayNeverCollapsesBelowEndpoints(t *testing.T) {
	c := connection.New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))
	s := NewSession(c)
	s.Init()

	require.NoError(t, s.SelectPoint(0, 1, geometry.Pt(10, 0)))
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(1, 0)))

	// The end point sits within the threshold of the start, but a
	// connection never drops below its two endpoints.
	require.Equal(t, 2, c.Len())
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 0)}
	require.Equal(t, want, points(c))
}

func TestOverlayMultiSelectMergeKeepsEndpoints(t *testing.T) {
	c := connection.New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(30, 8)))
	require.NoError(t, c.SetAnchors([]anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(30, 0)),
		anchor.Static(geometry.Pt(30, 8)),
	}))

	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(30, 0)))
	require.NoError(t, s.SelectPoint(1, 1, geometry.Pt(30, 8)))

	// One move lands both selected points within the threshold of the
	// start. The first merges into it; merging the second as well would
	// collapse the connection below its endpoints, so it stays.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(0, 0)))
	require.Equal(t, 2, c.Len())
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(0, 8)}
	require.Equal(t, want, points(c))
	require.Equal(t, []int{0, 1}, s.SelectedIndices())

	// The session is still live after the skipped merge.
	done, err := s.Commit()
	require.NoError(t, err)
	require.NotNil(t, done)
}

func TestOverlayMultiSelectionBookkeeping(t *testing.T) {
	c := connection.New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(120, 0)))
	require.NoError(t, c.SetAnchors([]anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(40, 0)),
		anchor.Static(geometry.Pt(80, 0)),
		anchor.Static(geometry.Pt(120, 0)),
	}))

	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(40, 0)))
	require.NoError(t, s.SelectPoint(2, 0, geometry.Pt(80, 0)))

	// The first selected point merges into the start; the second stays.
	// Its bookkeeping shifts down with the removal.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(5, 0)))
	require.Equal(t, 3, c.Len())
	require.Equal(t, []int{0, 1}, s.SelectedIndices())
	if got := c.Point(1); !got.Eq(geometry.Pt(45, 0)) {
		t.Errorf("second selected point = %v, want (45, 0)", got)
	}

	// Moving back restores the removed anchor and shifts everything up
	// again; both points return to their initial positions.
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(40, 0)))
	require.Equal(t, 4, c.Len())
	require.Equal(t, []int{1, 2}, s.SelectedIndices())
	want := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(40, 0),
		geometry.Pt(80, 0),
		geometry.Pt(120, 0),
	}
	require.Equal(t, want, points(c))
}

func TestOverlayCancelAfterMerge(t *testing.T) {
	c := threePointConn()
	s := NewSession(c)
	s.Init()
	require.NoError(t, s.SelectPoint(1, 0, geometry.Pt(50, 0)))
	require.NoError(t, s.MoveSelectedPoints(geometry.Pt(5, 0)))
	require.Equal(t, 2, c.Len())

	// Cancel rolls the merge back along with the move.
	require.NoError(t, s.Cancel())
	require.Equal(t, 3, c.Len())
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(50, 0), geometry.Pt(100, 0)}
	require.Equal(t, want, points(c))
}
