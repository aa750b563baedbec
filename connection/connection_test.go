package connection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"elbow/anchor"
	"elbow/geometry"
)

// boxTarget is a minimal anchor target for tests; it hands out a fixed
// scene position regardless of the reference point.
type boxTarget struct {
	at geometry.Point
}

func (b *boxTarget) AnchorPosition(_ geometry.Point) geometry.Point {
	return b.at
}

func TestNewConnection(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.Router().Name() != "straight" {
		t.Errorf("default router = %q, want straight", c.Router().Name())
	}
	pts := c.Points()
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 0)}
	require.Equal(t, want, pts)
}

func TestNewWithWaypoints(t *testing.T) {
	c := New(
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 10)),
		anchor.Static(geometry.Pt(5, 0)),
		anchor.Static(geometry.Pt(5, 10)),
	)

	// Way-points sit between the endpoints, in the order given.
	want := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(5, 0),
		geometry.Pt(5, 10),
		geometry.Pt(10, 10),
	}
	require.Equal(t, want, c.Points())
}

func TestSetAnchorsRejectsTooFew(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))

	err := c.SetAnchors([]anchor.Anchor{anchor.Static(geometry.Pt(5, 5))})
	if !errors.Is(err, ErrTooFewAnchors) {
		t.Errorf("SetAnchors with one anchor: err = %v, want ErrTooFewAnchors", err)
	}
	err = c.SetAnchors(nil)
	if !errors.Is(err, ErrTooFewAnchors) {
		t.Errorf("SetAnchors(nil): err = %v, want ErrTooFewAnchors", err)
	}
	// The connection is untouched after a rejected update.
	if c.Len() != 2 {
		t.Errorf("Len() after rejected update = %d, want 2", c.Len())
	}
}

func TestSetAnchorsCopiesInput(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))

	in := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(5, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	}
	require.NoError(t, c.SetAnchors(in))

	in[1] = anchor.Static(geometry.Pt(99, 99))
	if got := c.Point(1); !got.Eq(geometry.Pt(5, 0)) {
		t.Errorf("Point(1) = %v after caller mutated input, want (5, 0)", got)
	}
}

func TestDynamicAnchorResolvesThroughOrigin(t *testing.T) {
	target := &boxTarget{at: geometry.Pt(110, 60)}
	c := New(
		anchor.Dynamic(target, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(40, 10)),
	)
	c.SetOrigin(geometry.Pt(100, 50))

	if got := c.Point(0); !got.Eq(geometry.Pt(10, 10)) {
		t.Errorf("Point(0) = %v, want (10, 10)", got)
	}
	// Static anchors already live in local space and ignore the origin.
	if got := c.Point(1); !got.Eq(geometry.Pt(40, 10)) {
		t.Errorf("Point(1) = %v, want (40, 10)", got)
	}

	// Moving the target is visible on the next resolve, no refresh needed.
	target.at = geometry.Pt(130, 80)
	if got := c.Point(0); !got.Eq(geometry.Pt(30, 30)) {
		t.Errorf("Point(0) after target move = %v, want (30, 30)", got)
	}
}

func TestToLocalToScene(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))
	c.SetOrigin(geometry.Pt(7, -3))

	scene := geometry.Pt(12, 4)
	local := c.ToLocal(scene)
	if !local.Eq(geometry.Pt(5, 7)) {
		t.Errorf("ToLocal(%v) = %v, want (5, 7)", scene, local)
	}
	if back := c.ToScene(local); !back.Eq(scene) {
		t.Errorf("ToScene(ToLocal(p)) = %v, want %v", back, scene)
	}
}

func TestIsConnected(t *testing.T) {
	target := &boxTarget{at: geometry.Pt(0, 0)}
	c := New(
		anchor.Dynamic(target, geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	)

	if !c.IsStartConnected() {
		t.Error("IsStartConnected() = false, want true")
	}
	if c.IsEndConnected() {
		t.Error("IsEndConnected() = true, want false")
	}
}
