package domain

import (
	"path/filepath"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// Present packages g for a renderer. Every node starts out normal; nodes of
// the reported cycle, when there is one, are flagged. Node IDs are display
// paths with forward slashes so artifacts look the same on every platform.
func Present(g *DependencyGraph, report *m.CycleReport) m.RenderPayload {
	nodes := g.Nodes()
	edges := g.Edges()

	payload := m.RenderPayload{
		Nodes: make([]m.RenderNode, 0, len(nodes)),
		Edges: make([]m.RenderEdge, 0, len(edges)),
		Cycle: []m.RenderEdge{},
	}

	for _, node := range nodes {
		marker := m.MarkerNormal
		if report.Contains(node.CanonicalPath) {
			marker = m.MarkerFlagged
		}

		payload.Nodes = append(payload.Nodes, m.RenderNode{
			ID:         nodeID(node),
			Label:      filepath.Base(string(node.CanonicalPath)),
			Marker:     marker,
			Guarded:    node.GuardsAgainstReinclusion,
			Discovered: node.Discovered,
		})
	}

	for _, edge := range edges {
		payload.Edges = append(payload.Edges, renderEdge(edge))
	}

	if report != nil {
		for _, edge := range report.Edges {
			payload.Cycle = append(payload.Cycle, renderEdge(edge))
		}
	}

	return payload
}

func nodeID(file m.SourceFile) string {
	return filepath.ToSlash(string(file.DisplayPath))
}

func renderEdge(edge m.IncludeEdge) m.RenderEdge {
	return m.RenderEdge{From: nodeID(edge.From), To: nodeID(edge.To)}
}
