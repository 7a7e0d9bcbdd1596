package domain

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"

	m "github.com/mouse-blink/au3deps/internal/model"
)

type visitState int

const (
	unvisited visitState = iota
	active               // on the current recursion path
	finished             // fully explored, known not to lead back into the path
)

// DetectCycle returns one cycle of g, or a nil report when g is acyclic. It runs a
// depth-first search tracking the active path; the first back edge to a node
// on that path closes the reported cycle. Which cycle is found when several
// exist is unspecified, but the result is stable for a given graph.
func DetectCycle(g *DependencyGraph) (*m.CycleReport, error) {
	next, err := g.successors()
	if err != nil {
		return nil, fmt.Errorf("detect cycle: %w", err)
	}

	starts := make([]m.Path, 0, len(next))
	for node := range next {
		starts = append(starts, node)
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	state := make(map[m.Path]visitState, len(next))
	position := make(map[m.Path]int, len(next))

	var (
		path  []m.Path
		cycle []m.Path
	)

	var visit func(node m.Path) bool
	visit = func(node m.Path) bool {
		state[node] = active
		position[node] = len(path)
		path = append(path, node)

		for _, succ := range next[node] {
			switch state[succ] {
			case active:
				// Back edge node -> succ: unwind the path from succ to node.
				cycle = append([]m.Path(nil), path[position[succ]:]...)
				return true
			case unvisited:
				if visit(succ) {
					return true
				}
			case finished:
			}
		}

		path = path[:len(path)-1]
		state[node] = finished

		return false
	}

	for _, start := range starts {
		if state[start] == unvisited && visit(start) {
			break
		}
	}

	if len(cycle) == 0 {
		return nil, nil
	}

	return newCycleReport(g, cycle), nil
}

func newCycleReport(g *DependencyGraph, cycle []m.Path) *m.CycleReport {
	report := &m.CycleReport{
		Edges: make([]m.IncludeEdge, 0, len(cycle)),
		Nodes: make([]m.SourceFile, 0, len(cycle)),
	}

	for i, from := range cycle {
		to := cycle[(i+1)%len(cycle)]

		fromNode, _ := g.Node(from)
		toNode, _ := g.Node(to)

		report.Edges = append(report.Edges, m.IncludeEdge{From: fromNode, To: toNode})
		report.Nodes = append(report.Nodes, fromNode)
	}

	sortSourceFiles(report.Nodes)

	return report
}

// StronglyConnected returns every group of nodes that include each other,
// directly or transitively. Single nodes only count when they include
// themselves.
func StronglyConnected(g *DependencyGraph) ([][]m.SourceFile, error) {
	components, err := graph.StronglyConnectedComponents(g.graph)
	if err != nil {
		return nil, fmt.Errorf("strongly connected components: %w", err)
	}

	next, err := g.successors()
	if err != nil {
		return nil, err
	}

	var result [][]m.SourceFile

	for _, component := range components {
		if len(component) == 1 && !includesSelf(next, m.Path(component[0])) {
			continue
		}

		files := make([]m.SourceFile, 0, len(component))

		for _, hash := range component {
			if file, ok := g.Node(m.Path(hash)); ok {
				files = append(files, file)
			}
		}

		sortSourceFiles(files)
		result = append(result, files)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i][0].DisplayPath < result[j][0].DisplayPath
	})

	return result, nil
}

func includesSelf(next map[m.Path][]m.Path, node m.Path) bool {
	for _, succ := range next[node] {
		if succ == node {
			return true
		}
	}

	return false
}
