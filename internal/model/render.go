package model

// Marker is the visual attribute the renderer uses for a node.
type Marker string

const (
	// MarkerNormal is the default marker.
	MarkerNormal Marker = "normal"
	// MarkerFlagged marks nodes that take part in the reported cycle.
	MarkerFlagged Marker = "flagged"
)

// Format selects the output renderer.
type Format string

// Supported output formats.
const (
	FormatHTML    Format = "html"
	FormatDOT     Format = "dot"
	FormatJSON    Format = "json"
	FormatMermaid Format = "mermaid"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatHTML, FormatDOT, FormatJSON, FormatMermaid}
}

// RenderNode is a node with its visual attributes.
type RenderNode struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Marker     Marker `json:"marker"`
	Guarded    bool   `json:"guarded"`
	Discovered bool   `json:"discovered"`
}

// RenderEdge is a directed edge between two RenderNode IDs.
type RenderEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RenderPayload is everything an external renderer needs to draw the graph.
type RenderPayload struct {
	Nodes []RenderNode `json:"nodes"`
	Edges []RenderEdge `json:"edges"`
	// Cycle holds the reported cycle as edges between node IDs; empty when acyclic.
	Cycle []RenderEdge `json:"cycle"`
}

// Flagged returns the IDs of all flagged nodes.
func (p RenderPayload) Flagged() []string {
	var ids []string

	for _, n := range p.Nodes {
		if n.Marker == MarkerFlagged {
			ids = append(ids, n.ID)
		}
	}

	return ids
}
