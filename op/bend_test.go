package op

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elbow/anchor"
	"elbow/connection"
	"elbow/geometry"
)

func twoPointConn() *connection.Connection {
	return connection.New(
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	)
}

func TestBendApplyRevert(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)

	b.InsertWorkingAnchor(1, anchor.Static(geometry.Pt(5, 5)))
	require.NoError(t, b.Apply())
	require.Equal(t, 3, c.Len())
	if got := c.Point(1); !got.Eq(geometry.Pt(5, 5)) {
		t.Errorf("Point(1) = %v, want (5, 5)", got)
	}

	require.NoError(t, b.Revert())
	require.Equal(t, 2, c.Len())
	if got := c.Point(1); !got.Eq(geometry.Pt(10, 0)) {
		t.Errorf("Point(1) after revert = %v, want (10, 0)", got)
	}
}

func TestBendIsNoopByValue(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)

	if !b.IsNoop() {
		t.Fatal("fresh bend: IsNoop() = false, want true")
	}

	// Drag away and back to the exact position: still a noop.
	b.SetWorkingAnchor(1, anchor.Static(geometry.Pt(12, 3)))
	if b.IsNoop() {
		t.Error("after move: IsNoop() = true, want false")
	}
	b.SetWorkingAnchor(1, anchor.Static(geometry.Pt(10, 0)))
	if !b.IsNoop() {
		t.Error("after moving back: IsNoop() = false, want true")
	}
}

func TestBendIsNoopSeesInsertions(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)

	b.InsertWorkingAnchor(1, anchor.Static(geometry.Pt(10, 0)))
	if b.IsNoop() {
		t.Error("after insert: IsNoop() = true even though a point was added")
	}
}

func TestBendIsNoopSeesLocking(t *testing.T) {
	c := connection.New(
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 6)),
	)
	c.SetRouter(connection.Orthogonal{})
	require.Equal(t, 3, c.Len())
	b := NewBend(c)

	// Converting a router corner to a user point is a change even when the
	// position stays put.
	b.SetWorkingAnchor(1, anchor.Static(geometry.Pt(10, 0)))
	if b.IsNoop() {
		t.Error("after locking a router corner: IsNoop() = true, want false")
	}
}

func TestBendRemoveWorkingAnchor(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)
	b.InsertWorkingAnchor(1, anchor.Static(geometry.Pt(5, 5)))

	removed := b.RemoveWorkingAnchor(1)
	if !removed.Reference().Eq(geometry.Pt(5, 5)) {
		t.Errorf("removed anchor at %v, want (5, 5)", removed.Reference())
	}
	require.Equal(t, 2, b.WorkingLen())
	if !b.IsNoop() {
		t.Error("insert followed by remove: IsNoop() = false, want true")
	}
}

func TestBendWorkingReturnsCopy(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)

	w := b.Working()
	w[0] = anchor.Static(geometry.Pt(99, 99))
	if got := b.WorkingAnchor(0); !got.Reference().Eq(geometry.Pt(0, 0)) {
		t.Errorf("working anchor 0 = %v after mutating the copy, want (0, 0)", got.Reference())
	}
}

func TestBendSetWorkingReplacesSequence(t *testing.T) {
	c := twoPointConn()
	b := NewBend(c)

	next := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(4, 4)),
		anchor.Static(geometry.Pt(10, 0)),
	}
	b.SetWorking(next)
	require.Equal(t, 3, b.WorkingLen())

	// The bend keeps its own copy of the sequence.
	next[1] = anchor.Static(geometry.Pt(99, 99))
	if got := b.WorkingAnchor(1); !got.Reference().Eq(geometry.Pt(4, 4)) {
		t.Errorf("working anchor 1 = %v after mutating the input, want (4, 4)", got.Reference())
	}

	require.NoError(t, b.Apply())
	require.Equal(t, 3, c.Len())
}
