package export

import (
	"fmt"
	"strings"

	"elbow/scene"
)

// svgScale blows the scene units up to a reasonable on-screen pixel size.
const svgScale = 8.0

// SVGExporter renders scenes as SVG with a viewBox fitted to the content.
type SVGExporter struct{}

// NewSVGExporter creates a new SVG exporter
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{}
}

// Export renders the scene as an SVG document. Wires are drawn behind
// shapes; explicit bend points get a marker dot.
func (e *SVGExporter) Export(s *scene.Scene) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	bounds, err := sceneBounds(s)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString(fmt.Sprintf(
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"%g %g %g %g\">\n",
		bounds.W*svgScale, bounds.H*svgScale, bounds.X, bounds.Y, bounds.W, bounds.H))

	for i, w := range s.Wires() {
		c := w.Connection()
		color := wireColor(i).Hex()

		var pts []string
		for _, p := range c.Points() {
			sp := c.ToScene(p)
			pts = append(pts, fmt.Sprintf("%g,%g", sp.X, sp.Y))
		}
		sb.WriteString(fmt.Sprintf(
			"  <polyline points=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			strings.Join(pts, " "), color))

		for j := 0; j < c.Len(); j++ {
			a := c.Anchor(j)
			if a.IsRouterInserted() {
				continue
			}
			sp := c.ToScene(c.Point(j))
			sb.WriteString(fmt.Sprintf(
				"  <circle cx=\"%g\" cy=\"%g\" r=\"1.2\" fill=\"%s\"/>\n",
				sp.X, sp.Y, color))
		}
	}

	for _, sh := range s.Shapes() {
		b := sh.Bounds()
		sb.WriteString(fmt.Sprintf(
			"  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"white\" stroke=\"black\" stroke-width=\"1\"/>\n",
			b.X, b.Y, b.W, b.H))
		if sh.Label() != "" {
			center := sh.Center()
			sb.WriteString(fmt.Sprintf(
				"  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" dominant-baseline=\"central\" font-family=\"monospace\" font-size=\"5\">%s</text>\n",
				center.X, center.Y, escapeXML(sh.Label())))
		}
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String()), nil
}

// GetFileExtension returns the file extension for SVG
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
