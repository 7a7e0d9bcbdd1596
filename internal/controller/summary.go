package controller

import (
	"strings"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// summary holds the counts shown after every scan.
type summary struct {
	files    int
	dangling int
	edges    int
	guarded  int
	flagged  int
	skipped  int
}

func summarize(analysis m.Analysis) summary {
	s := summary{
		edges:   len(analysis.Payload.Edges),
		skipped: len(analysis.Warnings),
	}

	for _, node := range analysis.Payload.Nodes {
		if node.Discovered {
			s.files++
		} else {
			s.dangling++
		}

		if node.Guarded {
			s.guarded++
		}

		if node.Marker == m.MarkerFlagged {
			s.flagged++
		}
	}

	return s
}

// cyclePath joins the reported cycle into "a -> b -> c -> a".
func cyclePath(edges []m.RenderEdge) string {
	if len(edges) == 0 {
		return ""
	}

	parts := make([]string, 0, len(edges)+1)
	for _, edge := range edges {
		parts = append(parts, edge.From)
	}

	parts = append(parts, edges[len(edges)-1].To)

	return strings.Join(parts, " -> ")
}

func componentNames(component []m.SourceFile) []string {
	names := make([]string, 0, len(component))
	for _, file := range component {
		names = append(names, string(file.DisplayPath))
	}

	return names
}
