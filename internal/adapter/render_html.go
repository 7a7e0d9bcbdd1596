package adapter

import (
	"html/template"
	"io"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// HTMLRenderer writes a single page drawing the payload as an interactive
// force-directed graph. The payload is embedded in the page, but D3 is loaded
// from d3js.org, so viewing it needs network access.
type HTMLRenderer struct {
	title string
}

// NewHTMLRenderer creates an HTMLRenderer with the given page title.
func NewHTMLRenderer(title string) *HTMLRenderer {
	return &HTMLRenderer{title: title}
}

type htmlPage struct {
	Title        string
	Payload      m.RenderPayload
	NormalColor  string
	FlaggedColor string
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(w io.Writer, payload m.RenderPayload) error {
	return htmlTemplate.Execute(w, htmlPage{
		Title:        r.title,
		Payload:      payload,
		NormalColor:  normalColor,
		FlaggedColor: flaggedColor,
	})
}

var htmlTemplate = template.Must(template.New("graph").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://d3js.org/d3.v7.min.js"></script>
  <style>
    body { margin: 0; font-family: Arial, sans-serif; }
    svg { width: 100%; height: 100vh; }
    .link { stroke: #999; stroke-opacity: 0.6; }
    .link.cycle { stroke: {{.FlaggedColor}}; stroke-opacity: 1; stroke-width: 2px; }
    .node circle { stroke: #333; stroke-width: 1.5px; }
    .node.guarded circle { stroke-width: 4px; }
    .node.dangling circle { stroke-dasharray: 4 2; }
    .node text { font-size: 12px; }
  </style>
</head>
<body>
  <svg></svg>
  <script>
    const data = {{.Payload}};
    const colors = { normal: {{.NormalColor}}, flagged: {{.FlaggedColor}} };

    const nodes = data.nodes.map(d => Object.assign({}, d));
    const cycle = new Set(data.cycle.map(e => e.from + "\u0000" + e.to));
    const links = data.edges.map(e => ({
      source: e.from,
      target: e.to,
      cycle: cycle.has(e.from + "\u0000" + e.to),
    }));

    const width = window.innerWidth;
    const height = window.innerHeight;
    const svg = d3.select("svg");

    svg.append("defs").selectAll("marker")
      .data(["normal", "cycle"])
      .join("marker")
      .attr("id", d => "arrow-" + d)
      .attr("viewBox", "0 -5 10 10")
      .attr("refX", 20)
      .attr("markerWidth", 6)
      .attr("markerHeight", 6)
      .attr("orient", "auto")
      .append("path")
      .attr("d", "M0,-5L10,0L0,5")
      .attr("fill", d => d === "cycle" ? colors.flagged : "#999");

    const simulation = d3.forceSimulation(nodes)
      .force("link", d3.forceLink(links).id(d => d.id).distance(100))
      .force("charge", d3.forceManyBody().strength(-250))
      .force("center", d3.forceCenter(width / 2, height / 2));

    const link = svg.append("g")
      .selectAll("line")
      .data(links)
      .join("line")
      .attr("class", d => "link" + (d.cycle ? " cycle" : ""))
      .attr("marker-end", d => "url(#arrow-" + (d.cycle ? "cycle" : "normal") + ")");

    const node = svg.append("g")
      .selectAll("g")
      .data(nodes)
      .join("g")
      .attr("class", d => "node" + (d.guarded ? " guarded" : "") + (d.discovered ? "" : " dangling"))
      .call(d3.drag()
        .on("start", dragstarted)
        .on("drag", dragged)
        .on("end", dragended));

    node.append("circle")
      .attr("r", 10)
      .attr("fill", d => colors[d.marker] || colors.normal);

    node.append("title")
      .text(d => d.id + (d.guarded ? "\n#include-once" : "") + (d.discovered ? "" : "\nnot scanned"));

    node.append("text")
      .attr("dx", 14)
      .attr("dy", 4)
      .text(d => d.label);

    simulation.on("tick", () => {
      link
        .attr("x1", d => d.source.x)
        .attr("y1", d => d.source.y)
        .attr("x2", d => d.target.x)
        .attr("y2", d => d.target.y);

      node.attr("transform", d => "translate(" + d.x + "," + d.y + ")");
    });

    function dragstarted(event) {
      if (!event.active) simulation.alphaTarget(0.3).restart();
      event.subject.fx = event.subject.x;
      event.subject.fy = event.subject.y;
    }

    function dragged(event) {
      event.subject.fx = event.x;
      event.subject.fy = event.y;
    }

    function dragended(event) {
      if (!event.active) simulation.alphaTarget(0);
      event.subject.fx = null;
      event.subject.fy = null;
    }
  </script>
</body>
</html>
`))
