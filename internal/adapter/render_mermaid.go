package adapter

import (
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// MermaidRenderer writes a Mermaid flowchart.
type MermaidRenderer struct{}

// NewMermaidRenderer creates a MermaidRenderer.
func NewMermaidRenderer() *MermaidRenderer {
	return &MermaidRenderer{}
}

// Render implements Renderer. Mermaid node IDs cannot hold paths, so nodes
// are numbered in payload order and labelled with their path.
func (r *MermaidRenderer) Render(w io.Writer, payload m.RenderPayload) error {
	var sb strings.Builder

	sb.WriteString("flowchart LR\n")
	sb.WriteString(fmt.Sprintf("    classDef normal fill:%s,color:#fff\n", normalColor))
	sb.WriteString(fmt.Sprintf("    classDef flagged fill:%s,color:#fff\n", flaggedColor))

	ids := make(map[string]string, len(payload.Nodes))

	for i, node := range payload.Nodes {
		id := fmt.Sprintf("n%d", i)
		ids[node.ID] = id

		open, closing := "(", ")"
		if node.Guarded {
			open, closing = "[", "]"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s:::%s\n", id, open, escapeMermaidLabel(node.ID), closing, node.Marker))
	}

	for _, edge := range payload.Edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", ids[edge.From], ids[edge.To]))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
