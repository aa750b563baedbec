package tui

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"elbow/geometry"
	"elbow/scene"
)

// wirePalette cycles per wire index, so neighbouring wires stay tellable
// apart without any per-wire configuration.
var wirePalette = []tcell.Color{
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorPurple,
	tcell.ColorMaroon,
	tcell.ColorNavy,
	tcell.ColorGreen,
}

type cellPt struct {
	x, y int
}

func (a *App) draw() {
	a.screen.Clear()

	for i, w := range a.scene.Wires() {
		a.drawWire(w, wireStyle(i, a.scene.IsSelected(w.ID())))
	}
	for _, sh := range a.scene.Shapes() {
		a.drawShape(sh)
	}
	for _, w := range a.scene.Wires() {
		if a.scene.IsSelected(w.ID()) {
			a.drawHandles(w)
		}
	}
	a.drawStatus()
}

func wireStyle(i int, selected bool) tcell.Style {
	st := tcell.StyleDefault.Foreground(wirePalette[i%len(wirePalette)])
	if selected {
		st = st.Bold(true)
	}
	return st
}

// drawWire renders the connection's polyline. Axis-aligned runs use box
// drawing characters with elbows at the bends; diagonal runs fall back to
// a dotted trace.
func (a *App) drawWire(w *scene.Wire, st tcell.Style) {
	c := w.Connection()
	pts := c.Points()
	cells := make([]cellPt, len(pts))
	for i, p := range pts {
		cells[i] = a.cellFor(c.ToScene(p))
	}

	for i := 0; i+1 < len(cells); i++ {
		a.drawRun(cells[i], cells[i+1], st)
	}
	for i := 1; i+1 < len(cells); i++ {
		if r, ok := elbowRune(cells[i-1], cells[i], cells[i+1]); ok {
			a.set(cells[i].x, cells[i].y, r, st)
		}
	}
}

func (a *App) drawRun(from, to cellPt, st tcell.Style) {
	switch {
	case from.y == to.y:
		x0, x1 := ordered(from.x, to.x)
		for x := x0; x <= x1; x++ {
			a.set(x, from.y, '─', st)
		}
	case from.x == to.x:
		y0, y1 := ordered(from.y, to.y)
		for y := y0; y <= y1; y++ {
			a.set(from.x, y, '│', st)
		}
	default:
		a.plotLine(from, to, st)
	}
}

// plotLine steps a diagonal run with Bresenham's algorithm.
func (a *App) plotLine(from, to cellPt, st tcell.Style) {
	dx := abs(to.x - from.x)
	dy := -abs(to.y - from.y)
	sx, sy := 1, 1
	if from.x > to.x {
		sx = -1
	}
	if from.y > to.y {
		sy = -1
	}
	err := dx + dy
	x, y := from.x, from.y
	for {
		a.set(x, y, '·', st)
		if x == to.x && y == to.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// elbowRune picks the corner glyph for a bend from the directions the two
// neighbouring points leave the cell in. Straight-through and diagonal
// joints report false.
func elbowRune(prev, at, next cellPt) (rune, bool) {
	up := (prev.x == at.x && prev.y < at.y) || (next.x == at.x && next.y < at.y)
	down := (prev.x == at.x && prev.y > at.y) || (next.x == at.x && next.y > at.y)
	left := (prev.y == at.y && prev.x < at.x) || (next.y == at.y && next.x < at.x)
	right := (prev.y == at.y && prev.x > at.x) || (next.y == at.y && next.x > at.x)

	switch {
	case down && right:
		return '┌', true
	case down && left:
		return '┐', true
	case up && right:
		return '└', true
	case up && left:
		return '┘', true
	}
	return 0, false
}

// drawShape paints the box outline, blanks the interior so wires routed
// underneath stay hidden, and centres the label.
func (a *App) drawShape(sh *scene.Shape) {
	b := sh.Bounds()
	tl := a.cellFor(geometry.Pt(b.Left(), b.Top()))
	br := a.cellFor(geometry.Pt(b.Right(), b.Bottom()))
	st := tcell.StyleDefault
	if a.scene.IsSelected(sh.ID()) {
		st = st.Bold(true)
	}

	for y := tl.y + 1; y < br.y; y++ {
		for x := tl.x + 1; x < br.x; x++ {
			a.set(x, y, ' ', st)
		}
	}
	for x := tl.x + 1; x < br.x; x++ {
		a.set(x, tl.y, '─', st)
		a.set(x, br.y, '─', st)
	}
	for y := tl.y + 1; y < br.y; y++ {
		a.set(tl.x, y, '│', st)
		a.set(br.x, y, '│', st)
	}
	a.set(tl.x, tl.y, '┌', st)
	a.set(br.x, tl.y, '┐', st)
	a.set(tl.x, br.y, '└', st)
	a.set(br.x, br.y, '┘', st)

	label := []rune(sh.Label())
	if len(label) > 0 {
		lx := (tl.x + br.x + 1 - len(label)) / 2
		ly := (tl.y + br.y) / 2
		for i, r := range label {
			a.set(lx+i, ly, r, st)
		}
	}
}

// drawHandles marks each point of the wire. User-placed points draw
// solid, router corners hollow, and points held by the current gesture
// get the grab colour.
func (a *App) drawHandles(w *scene.Wire) {
	c := w.Connection()
	grabbed := map[int]bool{}
	if a.session != nil && a.active == w {
		for _, i := range a.session.SelectedIndices() {
			grabbed[i] = true
		}
	}
	for i := 0; i < c.Len(); i++ {
		cell := a.cellFor(c.ToScene(c.Point(i)))
		r := '●'
		if c.Anchor(i).IsRouterInserted() {
			r = '○'
		}
		st := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if grabbed[i] {
			st = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		a.set(cell.x, cell.y, r, st)
	}
}

// drawStatus paints the bottom status line: file and snap state on the
// left, key hints on the right.
func (a *App) drawStatus() {
	w, h := a.screen.Size()
	if h == 0 {
		return
	}
	y := h - 1

	name := filepath.Base(a.path)
	if name == "." || name == "/" {
		name = "[no file]"
	}
	dirty := ""
	if a.dirty {
		dirty = "*"
	}
	snap := "off"
	if a.scene.Grid().SnapEnabled() {
		snap = "on"
	}
	left := fmt.Sprintf(" %s%s | snap %s", name, dirty, snap)
	if a.message != "" {
		left += " | " + a.message
	}

	st := tcell.StyleDefault.Reverse(true)
	leftRunes := []rune(left)
	rightRunes := []rune("q quit  s save  u undo  r redo  g snap  c copy ")
	rightStart := w - len(rightRunes)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(leftRunes) {
			r = leftRunes[x]
		}
		if x >= rightStart && x-rightStart < len(rightRunes) {
			r = rightRunes[x-rightStart]
		}
		a.screen.SetContent(x, y, r, nil, st)
	}
}

// cellFor converts a scene position to a screen cell.
func (a *App) cellFor(p geometry.Point) cellPt {
	return cellPt{
		x: int(math.Round(p.X)) - a.panX,
		y: int(math.Round(p.Y)) - a.panY,
	}
}

// set writes one cell, clipped to the canvas area above the status line.
func (a *App) set(x, y int, r rune, st tcell.Style) {
	w, h := a.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	a.screen.SetContent(x, y, r, nil, st)
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
