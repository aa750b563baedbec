// Package export renders scenes to image and data formats.
package export

import (
	"fmt"

	"elbow/geometry"
	"elbow/scene"
)

// Format represents an export format
type Format string

const (
	// FormatSVG exports to a scalable vector image
	FormatSVG Format = "svg"
	// FormatPNG exports to a raster image
	FormatPNG Format = "png"
	// FormatJSON exports the scene file form
	FormatJSON Format = "json"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export renders a scene in the target format
	Export(s *scene.Scene) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(), nil
	case FormatPNG:
		return NewPNGExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "json", "scene":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatSVG,
		FormatPNG,
		FormatJSON,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatSVG:  "scalable vector image",
		FormatPNG:  "raster image",
		FormatJSON: "scene file (elbow native format)",
	}
}

// sceneBounds returns the rectangle enclosing every shape and wire point,
// with a margin around it. An empty scene has no bounds.
func sceneBounds(s *scene.Scene) (geometry.Rect, error) {
	var bounds geometry.Rect
	have := false

	for _, sh := range s.Shapes() {
		if !have {
			bounds = sh.Bounds()
			have = true
			continue
		}
		bounds = bounds.Union(sh.Bounds())
	}
	for _, w := range s.Wires() {
		c := w.Connection()
		for _, p := range c.Points() {
			sp := c.ToScene(p)
			r := geometry.Rect{X: sp.X, Y: sp.Y}
			if !have {
				bounds = r
				have = true
				continue
			}
			bounds = bounds.Union(r)
		}
	}
	if !have {
		return geometry.Rect{}, fmt.Errorf("nothing to export")
	}

	const margin = 4.0
	bounds.X -= margin
	bounds.Y -= margin
	bounds.W += 2 * margin
	bounds.H += 2 * margin
	return bounds, nil
}
