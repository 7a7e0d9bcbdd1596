package adapter

import (
	"encoding/json"
	"io"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// JSONRenderer writes the payload as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(w io.Writer, payload m.RenderPayload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(payload)
}
