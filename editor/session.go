// Package editor implements the interactive bend session: the controller
// that drives point selection, movement, creation, and duplication on a
// connection and folds the result into a single undoable operation.
//
// A session owns exactly one bend operation at a time and runs
// synchronously on the caller's goroutine. Callers serialize sessions per
// connection; only one may be open at a time.
package editor

import (
	"fmt"

	"elbow/anchor"
	"elbow/connection"
	"elbow/geometry"
	"elbow/op"
)

// snapFraction places dragged points on half-cell boundaries.
const snapFraction = 0.5

// State tracks a session through its lifecycle.
type State int

// Session lifecycle states. Mutating calls are only valid while active.
const (
	StateUninitialized State = iota
	StateActive
	StateCommitted
	StateCancelled
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateCommitted:
		return "committed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// slot is the bookkeeping for one selected point: its current index into
// the working sequence, its local position at selection time, and the
// overlay record while a neighbour is merged away.
type slot struct {
	index   int
	initial geometry.Point
	overlay *overlayRecord
}

// overlayRecord remembers a removed neighbour so it can be restored when
// the dragged point leaves the overlay again.
type overlayRecord struct {
	anchor        anchor.Anchor
	originalIndex int
	preRemoval    int
}

// Session drives one interactive bend of a connection.
type Session struct {
	conn *connection.Connection
	bend *op.Bend

	hit    HitTester
	grid   Grid
	sel    op.Selector
	host   op.Refreshable
	hostID string

	state    State
	slots    []slot
	mouseRef geometry.Point
	haveRef  bool
}

// NewSession creates a session for the given connection. The session is
// uninitialized until Init is called.
func NewSession(c *connection.Connection) *Session {
	return &Session{conn: c}
}

// SetHitTester wires the spatial index used to attach endpoints. Without
// one, dropped endpoints always become unconnected anchors.
func (s *Session) SetHitTester(h HitTester) { s.hit = h }

// SetGrid wires the snapping settings. Without one, snapping is off and
// the default overlay threshold applies.
func (s *Session) SetGrid(g Grid) { s.grid = g }

// SetHost wires the selection model and the refresh switch of the element
// being bent, which Commit folds into the returned operation. Headless
// sessions skip this and Commit returns the bare bend operation.
func (s *Session) SetHost(sel op.Selector, host op.Refreshable, id string) {
	s.sel = sel
	s.host = host
	s.hostID = id
}

// Init starts (or restarts) the session: it snapshots the connection and
// clears any previous selection state.
func (s *Session) Init() {
	s.bend = op.NewBend(s.conn)
	s.slots = nil
	s.mouseRef = geometry.Point{}
	s.haveRef = false
	s.state = StateActive
}

// State returns the session's lifecycle state.
func (s *Session) State() State { return s.state }

// Connection returns the connection under edit.
func (s *Session) Connection() *connection.Connection { return s.conn }

// SelectedIndices returns the working-sequence index of every selected
// point, in selection order.
func (s *Session) SelectedIndices() []int {
	out := make([]int, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.index
	}
	return out
}

// SelectionCount returns the number of selected points.
func (s *Session) SelectionCount() int { return len(s.slots) }

// InitialPosition returns the local position the i-th selected point had
// when it was selected.
func (s *Session) InitialPosition(i int) geometry.Point {
	return s.slots[i].initial
}

// SelectPoint selects the point addressed by a segment index and parameter
// for manipulation: the segment's start point for parameter 0, its end
// point for parameter 1. The first selection records the reference mouse
// position all further deltas are measured against. Selecting a
// router-contributed corner locks it into an explicit anchor so the router
// may not remove it mid-drag.
func (s *Session) SelectPoint(segmentIndex int, segmentParameter float64, mouse geometry.Point) error {
	if s.state != StateActive {
		return fmt.Errorf("select point: %w", ErrNotActive)
	}
	idx := segmentIndex
	if geometry.Eq(segmentParameter, 1) {
		idx = segmentIndex + 1
	}
	if idx < 0 || idx >= s.bend.WorkingLen() {
		return fmt.Errorf("select anchor %d of %d: %w", idx, s.bend.WorkingLen(), ErrBadIndex)
	}

	if !s.haveRef {
		s.mouseRef = s.conn.ToLocal(mouse)
		s.haveRef = true
	}

	a := s.bend.WorkingAnchor(idx)
	pos := s.localPosition(a)
	if a.IsRouterInserted() {
		s.bend.SetWorkingAnchor(idx, anchor.Static(pos))
	}
	s.slots = append(s.slots, slot{index: idx, initial: pos})
	return s.applyWorking()
}

// MoveSelectedPoints moves every selected point by the delta between the
// given mouse position and the reference position recorded on first
// selection. Candidate positions snap to the grid when snapping is on;
// afterwards the overlay resolver merges or restores coincident
// neighbours.
func (s *Session) MoveSelectedPoints(mouse geometry.Point) error {
	if s.state != StateActive {
		return fmt.Errorf("move selected points: %w", ErrNotActive)
	}
	if len(s.slots) == 0 {
		return fmt.Errorf("move selected points: %w", ErrNoSelection)
	}

	rawDelta := s.conn.ToLocal(mouse).Sub(s.mouseRef)
	delta := s.constrainDelta(rawDelta)

	for i := range s.slots {
		sl := &s.slots[i]
		pos := sl.initial.Add(delta)
		if s.grid != nil && s.grid.SnapEnabled() {
			pos = geometry.SnapToGrid(pos, s.grid.CellSize(), snapFraction)
		}
		s.bend.SetWorkingAnchor(sl.index, s.findOrCreateAnchor(pos, s.canConnect(sl.index)))
	}
	if err := s.applyWorking(); err != nil {
		return err
	}
	return s.resolveOverlays(rawDelta)
}

// CreateAndSelectPoint inserts a new unconnected point on the given
// segment at the mouse position and selects it.
func (s *Session) CreateAndSelectPoint(segmentIndex int, mouse geometry.Point) error {
	if s.state != StateActive {
		return fmt.Errorf("create point: %w", ErrNotActive)
	}
	n := s.bend.WorkingLen()
	if segmentIndex < 0 || segmentIndex >= n-1 {
		return fmt.Errorf("create point on segment %d of %d: %w", segmentIndex, n-1, ErrBadIndex)
	}

	insertAt := segmentIndex + 1
	s.insertWorkingAt(insertAt, anchor.Static(s.conn.ToLocal(mouse)))
	if err := s.applyWorking(insertAt); err != nil {
		return err
	}
	return s.SelectPoint(insertAt, 0, mouse)
}

// CopyAndSelectPoint duplicates the point addressed by the segment index
// and parameter, inserts the duplicate immediately after the original, and
// selects it. The duplicate may attach to an external target only if the
// original was attached.
func (s *Session) CopyAndSelectPoint(segmentIndex int, segmentParameter float64, mouse geometry.Point) error {
	if s.state != StateActive {
		return fmt.Errorf("copy point: %w", ErrNotActive)
	}
	idx := segmentIndex
	if geometry.Eq(segmentParameter, 1) {
		idx = segmentIndex + 1
	}
	if idx < 0 || idx >= s.bend.WorkingLen() {
		return fmt.Errorf("copy anchor %d of %d: %w", idx, s.bend.WorkingLen(), ErrBadIndex)
	}

	orig := s.bend.WorkingAnchor(idx)
	pos := s.localPosition(orig)
	dup := s.findOrCreateAnchor(pos, orig.Kind() == anchor.KindDynamic)

	insertAt := idx + 1
	s.insertWorkingAt(insertAt, dup)
	if err := s.applyWorking(insertAt); err != nil {
		return err
	}
	return s.SelectPoint(insertAt, 0, mouse)
}

// Commit finalizes the session into one undoable operation, or (nil, nil)
// when nothing changed by value. With a host wired, the bend is bracketed
// by refresh suspension and followed by a re-select so selection handles
// regenerate; reverting unwinds in the opposite order. The session refuses
// further mutation afterwards.
func (s *Session) Commit() (op.Op, error) {
	if s.state != StateActive {
		return nil, fmt.Errorf("commit: %w", ErrNotActive)
	}

	// Final normalization without the in-flight exemptions, so a committed
	// sequence never keeps points that contribute no shape.
	s.bend.SetWorking(s.conn.Router().Normalize(s.bend.Working()))
	if err := s.bend.Apply(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	s.state = StateCommitted

	if s.bend.IsNoop() {
		return nil, nil
	}
	if s.sel == nil || s.host == nil {
		return s.bend, nil
	}

	label := s.bend.Label()
	update := op.NewForward(label,
		s.bend,
		op.NewReverse("re-select",
			op.NewDeselect(s.sel, s.hostID),
			op.NewSelect(s.sel, s.hostID),
		),
	)
	cur := s.host.RefreshEnabled()
	return op.NewReverse(label,
		op.NewSetRefresh(s.host, cur, false),
		update,
		op.NewSetRefresh(s.host, false, cur),
	), nil
}

// Cancel discards the session and restores the connection to its
// pre-session anchor snapshot.
func (s *Session) Cancel() error {
	if s.state != StateActive {
		return fmt.Errorf("cancel: %w", ErrNotActive)
	}
	s.state = StateCancelled
	if err := s.bend.Revert(); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	return nil
}

// canConnect reports whether the point at the given working index may
// attach to an external target. Only the start and end point qualify.
func (s *Session) canConnect(index int) bool {
	return index == 0 || index == s.bend.WorkingLen()-1
}

// constrainDelta restricts a multi-point drag on an orthogonal connection
// to one axis: the coordinate the first two selected points share is kept,
// so a horizontal pair moves horizontally and a vertical pair vertically.
func (s *Session) constrainDelta(delta geometry.Point) geometry.Point {
	if len(s.slots) < 2 {
		return delta
	}
	if _, ok := s.conn.Router().(connection.Orthogonal); !ok {
		return delta
	}
	if geometry.Eq(s.slots[0].initial.Y, s.slots[1].initial.Y) {
		delta.Y = 0
	} else {
		delta.X = 0
	}
	return delta
}

// findOrCreateAnchor resolves the anchor for a point at the given local
// position. When the point may connect, the hit test runs at the scene
// position and the frontmost element offering an anchor wins; otherwise
// the point gets an unconnected anchor where it is.
func (s *Session) findOrCreateAnchor(local geometry.Point, canConnect bool) anchor.Anchor {
	if canConnect && s.hit != nil {
		scenePos := s.conn.ToScene(local)
		for _, el := range s.hit.HitTest(scenePos) {
			prov, ok := el.(AnchorProvider)
			if !ok {
				continue
			}
			if a, ok := prov.ProvideAnchor(scenePos); ok {
				return a
			}
		}
	}
	return anchor.Static(local)
}

// localPosition resolves one working anchor to local coordinates.
func (s *Session) localPosition(a anchor.Anchor) geometry.Point {
	if a.Kind() == anchor.KindDynamic {
		return s.conn.ToLocal(a.Position())
	}
	return a.Reference()
}

// applyWorking pushes the working sequence to the connection. Orthogonal
// sequences are normalized first; selected points and the keep indices are
// exempt so a mutation never removes the point it is manipulating.
func (s *Session) applyWorking(keep ...int) error {
	if _, ok := s.conn.Router().(connection.Orthogonal); ok {
		protected := func(i int) bool {
			for _, k := range keep {
				if i == k {
					return true
				}
			}
			for _, sl := range s.slots {
				if i == sl.index {
					return true
				}
			}
			return false
		}
		marks := connection.CollinearWaypoints(s.bend.Working(), protected)
		for i := len(marks) - 1; i >= 0; i-- {
			s.removeWorkingAt(marks[i])
		}
	}
	return s.bend.Apply()
}

// insertWorkingAt inserts an anchor into the working sequence and
// re-aligns every slot and overlay index at or past the insertion point.
func (s *Session) insertWorkingAt(k int, a anchor.Anchor) {
	s.bend.InsertWorkingAnchor(k, a)
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.index >= k {
			sl.index++
		}
		if sl.overlay != nil {
			if sl.overlay.originalIndex >= k {
				sl.overlay.originalIndex++
			}
			if sl.overlay.preRemoval >= k {
				sl.overlay.preRemoval++
			}
		}
	}
}

// removeWorkingAt removes the working anchor at k and re-aligns every
// slot and overlay index past it.
func (s *Session) removeWorkingAt(k int) anchor.Anchor {
	a := s.bend.RemoveWorkingAnchor(k)
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.index > k {
			sl.index--
		}
		if sl.overlay != nil {
			if sl.overlay.originalIndex > k {
				sl.overlay.originalIndex--
			}
			if sl.overlay.preRemoval > k {
				sl.overlay.preRemoval--
			}
		}
	}
	return a
}
