package editor

import (
	"math"

	"elbow/anchor"
	"elbow/geometry"
)

// DefaultOverlayThreshold is the merge distance used when no grid is wired
// or snapping is off.
const DefaultOverlayThreshold = 10.0

// resolveOverlays keeps visually coincident neighbours merged while points
// are dragged and restores them once the drag leaves the overlay again. It
// runs after every movement. rawDelta is the unconstrained mouse delta in
// local coordinates; overlay tests always use it, not the constrained or
// snapped positions the points were placed at.
func (s *Session) resolveOverlays(rawDelta geometry.Point) error {
	// Put previously removed anchors back first. They may be removed again
	// below when the points still coincide.
	for si := range s.slots {
		sl := &s.slots[si]
		if sl.overlay == nil {
			continue
		}
		s.bend.InsertWorkingAnchor(sl.overlay.originalIndex, sl.overlay.anchor)
		sl.index = sl.overlay.preRemoval
		for j := si + 1; j < len(s.slots); j++ {
			other := &s.slots[j]
			other.index++
			if other.overlay != nil {
				other.overlay.originalIndex++
				other.overlay.preRemoval++
			}
		}
		sl.overlay = nil
		if err := s.applyWorking(); err != nil {
			return err
		}
	}

	for si := range s.slots {
		// Never collapse a connection below its two endpoints. An earlier
		// slot's merge may already have reduced the sequence to just those.
		if s.bend.WorkingLen() <= 2 {
			break
		}
		sl := &s.slots[si]
		pre := sl.index
		removedIdx := -1
		var neighbour anchor.Anchor

		// Left neighbour first. The dragged point adopts the absorbed
		// neighbour's anchor, so merging into an endpoint keeps the
		// connection attached to the endpoint's target.
		if sl.index > 0 {
			if a, ok := s.overlayNeighbour(sl, sl.index-1, rawDelta); ok {
				removedIdx = sl.index - 1
				neighbour = a
				sl.index--
			}
		}
		if removedIdx == -1 && sl.index < s.bend.WorkingLen()-1 {
			if a, ok := s.overlayNeighbour(sl, sl.index+1, rawDelta); ok {
				removedIdx = sl.index + 1
				neighbour = a
			}
		}
		if removedIdx == -1 {
			continue
		}

		for j := si + 1; j < len(s.slots); j++ {
			other := &s.slots[j]
			other.index--
			if other.overlay != nil {
				other.overlay.originalIndex--
				other.overlay.preRemoval--
			}
		}
		s.bend.SetWorkingAnchor(pre, neighbour)
		removed := s.bend.RemoveWorkingAnchor(removedIdx)
		sl.overlay = &overlayRecord{anchor: removed, originalIndex: removedIdx, preRemoval: pre}
		if err := s.applyWorking(); err != nil {
			return err
		}
	}
	return nil
}

// overlayNeighbour reports whether the anchor at candidateIndex is overlaid
// by the dragged point: within the threshold of the point's current
// position, and anchored to the same target an anchor resolved at that
// position would get. The returned anchor is the neighbour's own.
func (s *Session) overlayNeighbour(sl *slot, candidateIndex int, rawDelta geometry.Point) (anchor.Anchor, bool) {
	cand := s.bend.WorkingAnchor(candidateIndex)
	cur := sl.initial.Add(rawDelta)
	if s.localPosition(cand).Dist(cur) >= s.overlayThreshold() {
		return anchor.Anchor{}, false
	}
	resolved := s.findOrCreateAnchor(cur, true)
	if !cand.SameTarget(resolved) {
		return anchor.Anchor{}, false
	}
	return cand, true
}

// overlayThreshold returns the distance below which two neighbouring
// points merge: a quarter of the smaller grid cell side when snapping is
// on, the default otherwise.
func (s *Session) overlayThreshold() float64 {
	if s.grid != nil && s.grid.SnapEnabled() {
		cell := s.grid.CellSize()
		return math.Min(cell.W, cell.H) / 4
	}
	return DefaultOverlayThreshold
}
