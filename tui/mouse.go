package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"elbow/editor"
	"elbow/geometry"
	"elbow/logging"
	"elbow/scene"
)

// segmentTolerance is how far, in scene units, a press may land from a
// wire segment and still grab it.
const segmentTolerance = 0.75

// handleRef identifies one draggable point of one wire.
type handleRef struct {
	wire  *scene.Wire
	index int
}

// segmentRef identifies the segment between points index and index+1.
type segmentRef struct {
	wire  *scene.Wire
	index int
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch buttons {
	case tcell.WheelUp:
		a.panY -= 3
		return
	case tcell.WheelDown:
		a.panY += 3
		return
	case tcell.WheelLeft:
		a.panX -= 3
		return
	case tcell.WheelRight:
		a.panX += 3
		return
	}

	if buttons&tcell.Button1 != 0 {
		if !a.mouseDown {
			a.mouseDown = true
			a.downX, a.downY = x, y
			a.press(x, y, ev.Modifiers())
		} else if a.session != nil && (x != a.downX || y != a.downY) {
			a.drag(x, y)
		}
		return
	}

	if a.mouseDown {
		a.mouseDown = false
		a.release()
	}
}

// press starts a gesture at screen cell (x, y). Handles win over segments
// so a point sitting on a wire stays grabbable; shift duplicates the
// pressed handle instead of grabbing it.
func (a *App) press(x, y int, mods tcell.ModMask) {
	at := a.sceneAt(x, y)

	if h, ok := a.handleAt(at); ok {
		a.beginSession(h.wire)
		seg, t := pointParam(h.index, h.wire.Connection().Len())
		var err error
		if mods&tcell.ModShift != 0 {
			err = a.session.CopyAndSelectPoint(seg, t, at)
		} else {
			err = a.session.SelectPoint(seg, t, at)
		}
		if err != nil {
			logging.Warnf("selecting point %d on %s: %v", h.index, h.wire.ID(), err)
			a.session = nil
			a.active = nil
			return
		}
		a.scene.Select(h.wire.ID())
		return
	}

	if s, ok := a.segmentAt(at); ok {
		a.beginSession(s.wire)
		if err := a.session.CreateAndSelectPoint(s.index, at); err != nil {
			logging.Warnf("creating point on %s: %v", s.wire.ID(), err)
			a.session = nil
			a.active = nil
			return
		}
		a.scene.Select(s.wire.ID())
		return
	}

	// Nothing editable under the cursor. Clear the selection, then select
	// the shape there if any.
	for _, id := range a.scene.Selection() {
		a.scene.Deselect(id)
	}
	if els := a.scene.HitTest(at); len(els) > 0 {
		a.scene.Select(els[0].ID())
	}
}

func (a *App) drag(x, y int) {
	if err := a.session.MoveSelectedPoints(a.sceneAt(x, y)); err != nil {
		logging.Warnf("moving points on %s: %v", a.active.ID(), err)
	}
}

// release finishes the gesture. The session has already applied the final
// geometry, so executing the returned operation re-applies it harmlessly
// while pushing it onto the undo stack.
func (a *App) release() {
	if a.session == nil {
		return
	}
	o, err := a.session.Commit()
	a.session = nil
	a.active = nil
	if err != nil {
		logging.Warnf("commit: %v", err)
		a.message = "edit failed: " + err.Error()
		return
	}
	if o == nil {
		return
	}
	if err := a.history.Execute(o); err != nil {
		logging.Errorf("recording %s: %v", o.Label(), err)
		return
	}
	a.dirty = true
}

func (a *App) beginSession(w *scene.Wire) {
	s := editor.NewSession(w.Connection())
	s.SetHitTester(a.scene)
	s.SetGrid(a.scene.Grid())
	s.SetHost(a.scene, w, w.ID())
	s.Init()
	a.session = s
	a.active = w
}

// pointParam maps a point index onto the segment coordinates SelectPoint
// expects. Every point is the start of the segment it opens except the
// last, which is addressed as the end of the final segment.
func pointParam(index, n int) (int, float64) {
	if index == n-1 {
		return index - 1, 1
	}
	return index, 0
}

// sceneAt converts a screen cell to scene coordinates.
func (a *App) sceneAt(x, y int) geometry.Point {
	return geometry.Pt(float64(x+a.panX), float64(y+a.panY))
}

// handleAt finds a wire point occupying the given cell. Later wires paint
// on top, so they are checked first.
func (a *App) handleAt(at geometry.Point) (handleRef, bool) {
	wires := a.scene.Wires()
	for i := len(wires) - 1; i >= 0; i-- {
		c := wires[i].Connection()
		for j, p := range c.Points() {
			sp := c.ToScene(p)
			if math.Round(sp.X) == at.X && math.Round(sp.Y) == at.Y {
				return handleRef{wire: wires[i], index: j}, true
			}
		}
	}
	return handleRef{}, false
}

// segmentAt finds the wire segment nearest the given point, within
// segmentTolerance. Ties go to the topmost wire.
func (a *App) segmentAt(at geometry.Point) (segmentRef, bool) {
	var best segmentRef
	bestDist := math.Inf(1)
	wires := a.scene.Wires()
	for i := len(wires) - 1; i >= 0; i-- {
		c := wires[i].Connection()
		pts := c.Points()
		for j := 0; j+1 < len(pts); j++ {
			seg := geometry.Seg(c.ToScene(pts[j]), c.ToScene(pts[j+1]))
			if d := seg.Dist(at); d < bestDist {
				best = segmentRef{wire: wires[i], index: j}
				bestDist = d
			}
		}
	}
	if bestDist > segmentTolerance {
		return segmentRef{}, false
	}
	return best, true
}
