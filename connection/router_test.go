package connection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"elbow/anchor"
	"elbow/geometry"
)

func explicitPoints(c *Connection) []geometry.Point {
	var out []geometry.Point
	for i, a := range c.Anchors() {
		if a.IsRouterInserted() {
			continue
		}
		out = append(out, c.Point(i))
	}
	return out
}

func TestOrthogonalRouteInsertsCorner(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 10)))
	c.SetRouter(Orthogonal{})

	require.Equal(t, 3, c.Len())
	corner := c.Anchor(1)
	if !corner.IsRouterInserted() {
		t.Fatal("middle anchor is not router-contributed")
	}
	// Horizontal first: the path leaves the start along x.
	if got := c.Point(1); !got.Eq(geometry.Pt(10, 0)) {
		t.Errorf("corner = %v, want (10, 0)", got)
	}
}

func TestOrthogonalRouteSkipsAlignedPairs(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 0)))
	c.SetRouter(Orthogonal{})

	if c.Len() != 2 {
		t.Errorf("Len() = %d for an aligned pair, want 2", c.Len())
	}
}

func TestOrthogonalRouteIsIdempotent(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 10)))
	c.SetRouter(Orthogonal{})

	once := c.Anchors()
	require.NoError(t, c.SetAnchors(once))
	twice := c.Anchors()

	require.Equal(t, len(once), len(twice))
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Errorf("anchor %d changed on re-route: %v -> %v", i, once[i], twice[i])
		}
	}
}

func TestSwitchingRouterDropsStaleCorners(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(10, 10)))
	c.SetRouter(Orthogonal{})
	require.Equal(t, 3, c.Len())

	c.SetRouter(Straight{})
	if c.Len() != 2 {
		t.Errorf("Len() = %d after switch to straight, want 2", c.Len())
	}
	for i, a := range c.Anchors() {
		if a.IsRouterInserted() {
			t.Errorf("anchor %d is still router-contributed after switch", i)
		}
	}
}

func TestOrthogonalRoutePreservesWaypoints(t *testing.T) {
	c := New(anchor.Static(geometry.Pt(0, 0)), anchor.Static(geometry.Pt(20, 20)))
	c.SetRouter(Orthogonal{})

	require.NoError(t, c.SetAnchors([]anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 5)),
		anchor.Static(geometry.Pt(20, 20)),
	}))

	got := explicitPoints(c)
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 5), geometry.Pt(20, 20)}
	require.Equal(t, want, got)
}

func TestNormalizeRemovesCollinearWaypoint(t *testing.T) {
	as := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(5, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	}
	got := Orthogonal{}.Normalize(as)

	require.Len(t, got, 2)
	if !got[0].Reference().Eq(geometry.Pt(0, 0)) || !got[1].Reference().Eq(geometry.Pt(10, 0)) {
		t.Errorf("endpoints after normalize = %v, %v", got[0].Reference(), got[1].Reference())
	}
}

func TestNormalizeCollapsesChains(t *testing.T) {
	// Removing the first redundant point makes the next one redundant
	// against the same survivor.
	as := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(3, 0)),
		anchor.Static(geometry.Pt(7, 0)),
		anchor.Static(geometry.Pt(10, 0)),
		anchor.Static(geometry.Pt(10, 10)),
	}
	got := Orthogonal{}.Normalize(as)

	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(10, 10)}
	require.Len(t, got, len(want))
	for i := range want {
		if !got[i].Reference().Eq(want[i]) {
			t.Errorf("anchor %d = %v, want %v", i, got[i].Reference(), want[i])
		}
	}
}

func TestNormalizeSkipsRouterCorners(t *testing.T) {
	// The corner between the two way-points is router-contributed; the
	// collinearity test pairs user-placed anchors across it.
	as := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.RouterInserted(geometry.Pt(5, 0)),
		anchor.Static(geometry.Pt(5, 5)),
		anchor.Static(geometry.Pt(2.5, 2.5)),
		anchor.Static(geometry.Pt(10, 10)),
	}
	got := Orthogonal{}.Normalize(as)

	// (2.5, 2.5) is not on the segment (5,5)-(10,10), so nothing goes.
	require.Len(t, got, len(as))
}

func TestNormalizeKeepsShortSequences(t *testing.T) {
	as := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	}
	got := Orthogonal{}.Normalize(as)
	require.Equal(t, as, got)
}

func TestNormalizeLeavesInputUntouched(t *testing.T) {
	as := []anchor.Anchor{
		anchor.Static(geometry.Pt(0, 0)),
		anchor.Static(geometry.Pt(5, 0)),
		anchor.Static(geometry.Pt(10, 0)),
	}
	_ = Orthogonal{}.Normalize(as)

	if len(as) != 3 {
		t.Errorf("input length = %d after Normalize, want 3", len(as))
	}
	if !as[1].Reference().Eq(geometry.Pt(5, 0)) {
		t.Errorf("input anchor 1 = %v after Normalize, want (5, 0)", as[1].Reference())
	}
}

func TestRouterByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"orthogonal", "orthogonal"},
		{"straight", "straight"},
		{"", "straight"},
		{"bogus", "straight"},
	}
	for _, tt := range tests {
		if got := RouterByName(tt.name).Name(); got != tt.want {
			t.Errorf("RouterByName(%q).Name() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
