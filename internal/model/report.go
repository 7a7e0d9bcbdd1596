package model

// CycleReport describes one closed walk found in the dependency graph.
type CycleReport struct {
	// Edges are ordered along the direction the cycle was discovered; the
	// last edge ends where the first one starts.
	Edges []IncludeEdge
	// Nodes are the distinct nodes touched by Edges, sorted by display path.
	Nodes []SourceFile
}

// Contains reports whether the node with the given canonical path is part of the cycle.
func (r *CycleReport) Contains(canonical Path) bool {
	if r == nil {
		return false
	}

	for _, n := range r.Nodes {
		if n.CanonicalPath == canonical {
			return true
		}
	}

	return false
}

// Analysis is the outcome of a single scan, handed to the UI for console reporting.
type Analysis struct {
	Root       Path
	Payload    RenderPayload
	Cycle      *CycleReport
	Components [][]SourceFile // strongly connected components, only with --all-cycles
	Warnings   []Warning
}

// HasCycle reports whether a cycle was found.
func (a Analysis) HasCycle() bool {
	return a.Cycle != nil && len(a.Cycle.Edges) > 0
}
