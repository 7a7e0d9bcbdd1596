package adapter

import (
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// DOTRenderer writes a Graphviz digraph. Flagged nodes and the edges of the
// reported cycle are drawn red, guarded files are boxes and dangling targets
// are dashed.
type DOTRenderer struct{}

// NewDOTRenderer creates a DOTRenderer.
func NewDOTRenderer() *DOTRenderer {
	return &DOTRenderer{}
}

// Render implements Renderer.
func (r *DOTRenderer) Render(w io.Writer, payload m.RenderPayload) error {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, node := range payload.Nodes {
		shape := "ellipse"
		if node.Guarded {
			shape = "box"
		}

		style := "filled"
		if !node.Discovered {
			style = "filled,dashed"
		}

		err := g.AddVertex(node.ID,
			graph.VertexAttribute("label", node.ID),
			graph.VertexAttribute("shape", shape),
			graph.VertexAttribute("style", style),
			graph.VertexAttribute("fillcolor", markerColor(node.Marker)),
			graph.VertexAttribute("fontcolor", "white"),
		)
		if err != nil {
			return fmt.Errorf("dot node %s: %w", node.ID, err)
		}
	}

	inCycle := make(map[m.RenderEdge]struct{}, len(payload.Cycle))
	for _, edge := range payload.Cycle {
		inCycle[edge] = struct{}{}
	}

	for _, edge := range payload.Edges {
		var options []func(*graph.EdgeProperties)
		if _, ok := inCycle[edge]; ok {
			options = append(options, graph.EdgeAttribute("color", flaggedColor))
		}

		if err := g.AddEdge(edge.From, edge.To, options...); err != nil {
			return fmt.Errorf("dot edge %s -> %s: %w", edge.From, edge.To, err)
		}
	}

	return draw.DOT(g, w)
}
