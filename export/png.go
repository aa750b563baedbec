package export

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"elbow/geometry"
	"elbow/scene"
)

// pngScale converts scene units to pixels.
const pngScale = 8.0

// PNGExporter renders scenes as raster images.
type PNGExporter struct{}

// NewPNGExporter creates a new PNG exporter
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{}
}

// Export renders the scene to PNG bytes. Wires are drawn behind shapes;
// explicit bend points get a marker dot.
func (e *PNGExporter) Export(s *scene.Scene) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	bounds, err := sceneBounds(s)
	if err != nil {
		return nil, err
	}

	width := int(bounds.W * pngScale)
	height := int(bounds.H * pngScale)
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	px := func(p geometry.Point) (float64, float64) {
		return (p.X - bounds.X) * pngScale, (p.Y - bounds.Y) * pngScale
	}

	for i, w := range s.Wires() {
		c := w.Connection()
		dc.SetColor(wireColor(i))
		dc.SetLineWidth(2.0)

		points := c.Points()
		for j := 0; j < len(points)-1; j++ {
			x1, y1 := px(c.ToScene(points[j]))
			x2, y2 := px(c.ToScene(points[j+1]))
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}

		for j := 0; j < c.Len(); j++ {
			if c.Anchor(j).IsRouterInserted() {
				continue
			}
			x, y := px(c.ToScene(c.Point(j)))
			dc.DrawCircle(x, y, 4)
			dc.Fill()
		}
	}

	for _, sh := range s.Shapes() {
		b := sh.Bounds()
		x, y := px(geometry.Pt(b.X, b.Y))
		dc.SetColor(color.White)
		dc.DrawRectangle(x, y, b.W*pngScale, b.H*pngScale)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(2.0)
		dc.Stroke()

		if sh.Label() != "" {
			cx, cy := px(sh.Center())
			dc.DrawStringAnchored(sh.Label(), cx, cy, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetFileExtension returns the file extension for PNG
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}
