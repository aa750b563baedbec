package scene

import (
	"errors"
	"fmt"

	"elbow/anchor"
	"elbow/editor"
	"elbow/geometry"
)

var (
	// ErrDuplicateID is returned when adding an element under an id that is
	// already taken.
	ErrDuplicateID = errors.New("id already in use")
	// ErrUnknownShape is returned when a shape id does not resolve.
	ErrUnknownShape = errors.New("no such shape")
	// ErrUnknownWire is returned when a wire id does not resolve.
	ErrUnknownWire = errors.New("no such wire")
)

// GridSettings carries the stage grid: cell size and whether dragged points
// snap to it.
type GridSettings struct {
	Cell geometry.Dimension
	Snap bool
}

// SnapEnabled reports whether snapping is on.
func (g *GridSettings) SnapEnabled() bool { return g.Snap }

// CellSize returns the grid cell dimensions.
func (g *GridSettings) CellSize() geometry.Dimension { return g.Cell }

// DefaultGrid returns the grid new scenes start with: 10x10 cells, snapping
// off.
func DefaultGrid() GridSettings {
	return GridSettings{Cell: geometry.Dim(10, 10)}
}

// Scene is the stage: shapes in paint order (last on top), wires, grid
// settings and an ordered selection of element ids.
type Scene struct {
	shapes    []*Shape
	wires     []*Wire
	grid      GridSettings
	selection []string
}

// New returns an empty scene with the default grid.
func New() *Scene {
	return &Scene{grid: DefaultGrid()}
}

// Grid returns the scene's grid settings for reading and toggling.
func (s *Scene) Grid() *GridSettings { return &s.grid }

// Shapes returns the shapes in paint order.
func (s *Scene) Shapes() []*Shape {
	out := make([]*Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Wires returns the wires in insertion order.
func (s *Scene) Wires() []*Wire {
	out := make([]*Wire, len(s.wires))
	copy(out, s.wires)
	return out
}

// ShapeByID resolves a shape id.
func (s *Scene) ShapeByID(id string) (*Shape, bool) {
	for _, sh := range s.shapes {
		if sh.ID() == id {
			return sh, true
		}
	}
	return nil, false
}

// WireByID resolves a wire id.
func (s *Scene) WireByID(id string) (*Wire, bool) {
	for _, w := range s.wires {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}

// AddShape places a shape on the stage, on top of existing ones.
func (s *Scene) AddShape(sh *Shape) error {
	if s.idTaken(sh.ID()) {
		return fmt.Errorf("add shape %q: %w", sh.ID(), ErrDuplicateID)
	}
	s.shapes = append(s.shapes, sh)
	return nil
}

// AddWire places a wire on the stage.
func (s *Scene) AddWire(w *Wire) error {
	if s.idTaken(w.ID()) {
		return fmt.Errorf("add wire %q: %w", w.ID(), ErrDuplicateID)
	}
	s.wires = append(s.wires, w)
	return nil
}

// RemoveShape takes a shape off the stage. Dynamic anchors attached to it
// are replaced with static anchors at their last resolved positions, so
// wires keep their geometry but lose the attachment.
func (s *Scene) RemoveShape(id string) error {
	idx := -1
	for i, sh := range s.shapes {
		if sh.ID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("remove shape %q: %w", id, ErrUnknownShape)
	}
	doomed := s.shapes[idx]

	for _, w := range s.wires {
		c := w.Connection()
		anchors := c.Anchors()
		changed := false
		for i, a := range anchors {
			if a.Kind() == anchor.KindDynamic && a.Target() == anchor.Target(doomed) {
				anchors[i] = anchor.Static(c.ToLocal(a.Position()))
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := c.SetAnchors(anchors); err != nil {
			return fmt.Errorf("detach wire %q from shape %q: %w", w.ID(), id, err)
		}
	}

	s.shapes = append(s.shapes[:idx], s.shapes[idx+1:]...)
	s.Deselect(id)
	return nil
}

// RemoveWire takes a wire off the stage.
func (s *Scene) RemoveWire(id string) error {
	for i, w := range s.wires {
		if w.ID() == id {
			s.wires = append(s.wires[:i], s.wires[i+1:]...)
			s.Deselect(id)
			return nil
		}
	}
	return fmt.Errorf("remove wire %q: %w", id, ErrUnknownWire)
}

// HitTest returns the shapes under the given scene position, topmost first.
func (s *Scene) HitTest(at geometry.Point) []editor.Element {
	var out []editor.Element
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Contains(at) {
			out = append(out, s.shapes[i])
		}
	}
	return out
}

// Select adds an element id to the selection unless it is already in it.
// Selection order is preserved.
func (s *Scene) Select(id string) {
	for _, sel := range s.selection {
		if sel == id {
			return
		}
	}
	s.selection = append(s.selection, id)
}

// Deselect removes an element id from the selection. Unknown ids are
// ignored.
func (s *Scene) Deselect(id string) {
	for i, sel := range s.selection {
		if sel == id {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return
		}
	}
}

// Selection returns the selected ids in selection order.
func (s *Scene) Selection() []string {
	out := make([]string, len(s.selection))
	copy(out, s.selection)
	return out
}

// IsSelected reports whether an element id is in the selection.
func (s *Scene) IsSelected(id string) bool {
	for _, sel := range s.selection {
		if sel == id {
			return true
		}
	}
	return false
}

func (s *Scene) idTaken(id string) bool {
	if _, ok := s.ShapeByID(id); ok {
		return true
	}
	_, ok := s.WireByID(id)
	return ok
}
