package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"elbow/anchor"
	"elbow/connection"
	"elbow/geometry"
)

// sceneJSON is the file form of a scene. Wires store only their explicit
// anchors; router corners are re-derived on load.
type sceneJSON struct {
	Shapes []shapeJSON `json:"shapes"`
	Wires  []wireJSON  `json:"wires"`
	Grid   gridJSON    `json:"grid"`
}

type shapeJSON struct {
	ID    string  `json:"id"`
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

type wireJSON struct {
	ID      string       `json:"id"`
	Router  string       `json:"router,omitempty"`
	Origin  *pointJSON   `json:"origin,omitempty"`
	Anchors []anchorJSON `json:"anchors"`
}

type anchorJSON struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Target string  `json:"target,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type gridJSON struct {
	CellW float64 `json:"cellW"`
	CellH float64 `json:"cellH"`
	Snap  bool    `json:"snap"`
}

// Encode renders the scene as indented JSON.
func Encode(s *Scene) ([]byte, error) {
	file := sceneJSON{
		Shapes: []shapeJSON{},
		Wires:  []wireJSON{},
		Grid: gridJSON{
			CellW: s.grid.Cell.W,
			CellH: s.grid.Cell.H,
			Snap:  s.grid.Snap,
		},
	}
	for _, sh := range s.shapes {
		b := sh.Bounds()
		file.Shapes = append(file.Shapes, shapeJSON{
			ID:    sh.ID(),
			Label: sh.Label(),
			X:     b.X,
			Y:     b.Y,
			W:     b.W,
			H:     b.H,
		})
	}
	for _, w := range s.wires {
		wj, err := encodeWire(w)
		if err != nil {
			return nil, err
		}
		file.Wires = append(file.Wires, wj)
	}
	return json.MarshalIndent(file, "", "  ")
}

// Decode rebuilds a scene from its JSON form. Dynamic anchors are resolved
// against the decoded shapes; a wire referencing an unknown shape is an
// error.
func Decode(data []byte) (*Scene, error) {
	var file sceneJSON
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	s := New()
	if file.Grid.CellW > 0 && file.Grid.CellH > 0 {
		s.grid.Cell = geometry.Dim(file.Grid.CellW, file.Grid.CellH)
	}
	s.grid.Snap = file.Grid.Snap

	for _, sj := range file.Shapes {
		sh := NewShape(sj.ID, sj.Label, geometry.Rect{X: sj.X, Y: sj.Y, W: sj.W, H: sj.H})
		if err := s.AddShape(sh); err != nil {
			return nil, err
		}
	}
	for _, wj := range file.Wires {
		w, err := decodeWire(s, wj)
		if err != nil {
			return nil, err
		}
		if err := s.AddWire(w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Save writes the scene to a file.
func Save(path string, s *Scene) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a scene from a file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// MarshalWire renders a single wire as indented JSON, for handing its
// geometry to the clipboard.
func MarshalWire(w *Wire) ([]byte, error) {
	wj, err := encodeWire(w)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(wj, "", "  ")
}

func encodeWire(w *Wire) (wireJSON, error) {
	c := w.Connection()
	wj := wireJSON{
		ID:      w.ID(),
		Anchors: []anchorJSON{},
	}
	if name := c.Router().Name(); name != "straight" {
		wj.Router = name
	}
	if o := c.Origin(); !o.Eq(geometry.Pt(0, 0)) {
		wj.Origin = &pointJSON{X: o.X, Y: o.Y}
	}
	for _, a := range c.Anchors() {
		if a.IsRouterInserted() {
			continue
		}
		aj := anchorJSON{Kind: a.Kind().String()}
		switch a.Kind() {
		case anchor.KindStatic:
			p := a.Reference()
			aj.X, aj.Y = p.X, p.Y
		case anchor.KindDynamic:
			sh, ok := a.Target().(*Shape)
			if !ok {
				return wireJSON{}, fmt.Errorf("wire %q: anchor target is not a shape", w.ID())
			}
			ref := a.Reference()
			aj.X, aj.Y = ref.X, ref.Y
			aj.Target = sh.ID()
		}
		wj.Anchors = append(wj.Anchors, aj)
	}
	return wj, nil
}

func decodeWire(s *Scene, wj wireJSON) (*Wire, error) {
	if len(wj.Anchors) < 2 {
		return nil, fmt.Errorf("wire %q needs at least two anchors", wj.ID)
	}

	anchors := make([]anchor.Anchor, 0, len(wj.Anchors))
	for _, aj := range wj.Anchors {
		switch aj.Kind {
		case "static":
			anchors = append(anchors, anchor.Static(geometry.Pt(aj.X, aj.Y)))
		case "dynamic":
			sh, ok := s.ShapeByID(aj.Target)
			if !ok {
				return nil, fmt.Errorf("wire %q references unknown shape %q: %w", wj.ID, aj.Target, ErrUnknownShape)
			}
			anchors = append(anchors, anchor.Dynamic(sh, geometry.Pt(aj.X, aj.Y)))
		default:
			return nil, fmt.Errorf("wire %q: unknown anchor kind %q", wj.ID, aj.Kind)
		}
	}

	c := connection.New(anchors[0], anchors[len(anchors)-1])
	if wj.Origin != nil {
		c.SetOrigin(geometry.Pt(wj.Origin.X, wj.Origin.Y))
	}
	c.SetRouter(connection.RouterByName(wj.Router))
	if err := c.SetAnchors(anchors); err != nil {
		return nil, fmt.Errorf("wire %q: %w", wj.ID, err)
	}
	return NewWire(wj.ID, c), nil
}
