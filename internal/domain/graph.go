package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// DependencyGraph is the directed include graph of one scan. Every vertex is
// keyed by its canonical path, so two spellings of the same file always land
// on the same node.
type DependencyGraph struct {
	root     m.Path
	graph    graph.Graph[string, m.SourceFile]
	warnings []m.Warning
}

func sourceHash(file m.SourceFile) string {
	return string(file.CanonicalPath)
}

func newDependencyGraph(root m.Path) *DependencyGraph {
	return &DependencyGraph{
		root:  root,
		graph: graph.New(sourceHash, graph.Directed()),
	}
}

// Root returns the canonical scan root.
func (g *DependencyGraph) Root() m.Path {
	return g.root
}

// Warnings lists the files and directories that were skipped during the scan.
func (g *DependencyGraph) Warnings() []m.Warning {
	return g.warnings
}

// addNode inserts file unless a node with the same canonical path exists.
func (g *DependencyGraph) addNode(file m.SourceFile) error {
	err := g.graph.AddVertex(file)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("add node %s: %w", file.CanonicalPath, err)
	}

	return nil
}

// addEdge links two existing nodes. Repeated includes collapse into one edge.
func (g *DependencyGraph) addEdge(from, to m.Path) error {
	err := g.graph.AddEdge(string(from), string(to))
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return fmt.Errorf("add edge %s -> %s: %w", from, to, err)
	}

	return nil
}

// Node looks up a node by canonical path.
func (g *DependencyGraph) Node(canonical m.Path) (m.SourceFile, bool) {
	file, err := g.graph.Vertex(string(canonical))
	if err != nil {
		return m.SourceFile{}, false
	}

	return file, true
}

// Nodes returns every node sorted by display path.
func (g *DependencyGraph) Nodes() []m.SourceFile {
	adjacency, err := g.graph.AdjacencyMap()
	if err != nil {
		return nil
	}

	nodes := make([]m.SourceFile, 0, len(adjacency))

	for hash := range adjacency {
		if file, ok := g.Node(m.Path(hash)); ok {
			nodes = append(nodes, file)
		}
	}

	sortSourceFiles(nodes)

	return nodes
}

// Edges returns every edge sorted by source, then target display path.
func (g *DependencyGraph) Edges() []m.IncludeEdge {
	edges, err := g.graph.Edges()
	if err != nil {
		return nil
	}

	result := make([]m.IncludeEdge, 0, len(edges))

	for _, edge := range edges {
		from, okFrom := g.Node(m.Path(edge.Source))
		to, okTo := g.Node(m.Path(edge.Target))

		if !okFrom || !okTo {
			continue
		}

		result = append(result, m.IncludeEdge{From: from, To: to})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].From.DisplayPath != result[j].From.DisplayPath {
			return result[i].From.DisplayPath < result[j].From.DisplayPath
		}

		return result[i].To.DisplayPath < result[j].To.DisplayPath
	})

	return result
}

// Order returns the number of nodes.
func (g *DependencyGraph) Order() int {
	order, err := g.graph.Order()
	if err != nil {
		return 0
	}

	return order
}

// Size returns the number of edges.
func (g *DependencyGraph) Size() int {
	size, err := g.graph.Size()
	if err != nil {
		return 0
	}

	return size
}

// successors returns the outgoing neighbours of every node, each list sorted
// by canonical path so traversals are deterministic.
func (g *DependencyGraph) successors() (map[m.Path][]m.Path, error) {
	adjacency, err := g.graph.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	result := make(map[m.Path][]m.Path, len(adjacency))

	for source, targets := range adjacency {
		next := make([]m.Path, 0, len(targets))
		for target := range targets {
			next = append(next, m.Path(target))
		}

		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		result[m.Path(source)] = next
	}

	return result, nil
}

func sortSourceFiles(files []m.SourceFile) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].DisplayPath != files[j].DisplayPath {
			return files[i].DisplayPath < files[j].DisplayPath
		}

		return files[i].CanonicalPath < files[j].CanonicalPath
	})
}
