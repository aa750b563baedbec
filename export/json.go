package export

import (
	"fmt"

	"elbow/scene"
)

// JSONExporter exports the scene in its native file form.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export converts a scene to JSON
func (e *JSONExporter) Export(s *scene.Scene) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("scene is nil")
	}
	return scene.Encode(s)
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}
