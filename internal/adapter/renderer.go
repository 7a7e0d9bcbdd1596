package adapter

import (
	"fmt"
	"io"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// Renderer draws a finished graph payload into an artifact.
type Renderer interface {
	Render(w io.Writer, payload m.RenderPayload) error
}

// Marker colors shared by the renderers.
const (
	normalColor  = "green"
	flaggedColor = "red"
)

// NewRenderer returns the renderer for format.
func NewRenderer(format m.Format) (Renderer, error) {
	switch format {
	case m.FormatHTML:
		return NewHTMLRenderer("Include dependencies"), nil
	case m.FormatDOT:
		return NewDOTRenderer(), nil
	case m.FormatJSON:
		return NewJSONRenderer(), nil
	case m.FormatMermaid:
		return NewMermaidRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

func markerColor(marker m.Marker) string {
	if marker == m.MarkerFlagged {
		return flaggedColor
	}

	return normalColor
}
