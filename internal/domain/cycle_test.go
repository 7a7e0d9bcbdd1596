package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dominikbraun/graph"

	m "github.com/mouse-blink/au3deps/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGraph builds a graph over /p with the given "from -> to" pairs.
func newTestGraph(t *testing.T, nodes []string, edges [][2]string) *DependencyGraph {
	t.Helper()

	root := filepath.Join(string(filepath.Separator), "p")
	g := newDependencyGraph(m.Path(root))

	for _, name := range nodes {
		require.NoError(t, g.addNode(m.SourceFile{
			CanonicalPath: m.Path(filepath.Join(root, name)),
			DisplayPath:   m.Path(name),
			Discovered:    true,
		}))
	}

	for _, e := range edges {
		require.NoError(t, g.addEdge(m.Path(filepath.Join(root, e[0])), m.Path(filepath.Join(root, e[1]))))
	}

	return g
}

func reportNodeNames(report *m.CycleReport) []string {
	var names []string
	for _, n := range report.Nodes {
		names = append(names, string(n.DisplayPath))
	}

	return names
}

// assertClosedWalk checks that consecutive edges share endpoints and the
// last edge returns to the start.
func assertClosedWalk(t *testing.T, g *DependencyGraph, report *m.CycleReport) {
	t.Helper()

	require.NotEmpty(t, report.Edges)

	for i, edge := range report.Edges {
		next := report.Edges[(i+1)%len(report.Edges)]
		assert.Equal(t, edge.To.CanonicalPath, next.From.CanonicalPath)

		_, err := g.graph.Edge(string(edge.From.CanonicalPath), string(edge.To.CanonicalPath))
		assert.NoError(t, err, "reported edge missing from graph")
	}
}

func TestDetectCycle_Acyclic(t *testing.T) {
	g := newTestGraph(t,
		[]string{"a.au3", "b.au3", "c.au3", "d.au3"},
		[][2]string{{"a.au3", "b.au3"}, {"a.au3", "c.au3"}, {"b.au3", "d.au3"}, {"c.au3", "d.au3"}},
	)

	report, err := DetectCycle(g)
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestDetectCycle_Empty(t *testing.T) {
	report, err := DetectCycle(newTestGraph(t, nil, nil))
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	g := newTestGraph(t, []string{"a.au3", "b.au3"}, [][2]string{{"a.au3", "a.au3"}})

	report, err := DetectCycle(g)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Len(t, report.Edges, 1)
	assert.Equal(t, []string{"a.au3"}, reportNodeNames(report))
	assertClosedWalk(t, g, report)
}

func TestDetectCycle_TwoNodes(t *testing.T) {
	g := newTestGraph(t, []string{"a.au3", "b.au3"}, [][2]string{{"a.au3", "b.au3"}, {"b.au3", "a.au3"}})

	report, err := DetectCycle(g)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, []string{"a.au3", "b.au3"}, reportNodeNames(report))
	assertClosedWalk(t, g, report)
}

func TestDetectCycle_ThreeNodesBehindATail(t *testing.T) {
	g := newTestGraph(t,
		[]string{"a.au3", "b.au3", "c.au3", "d.au3", "e.au3"},
		[][2]string{
			{"a.au3", "b.au3"},
			{"b.au3", "c.au3"},
			{"c.au3", "d.au3"},
			{"d.au3", "b.au3"},
			{"d.au3", "e.au3"},
		},
	)

	report, err := DetectCycle(g)
	require.NoError(t, err)
	require.NotNil(t, report)

	// The tail a.au3 leads into the cycle but is not part of it.
	assert.Equal(t, []string{"b.au3", "c.au3", "d.au3"}, reportNodeNames(report))
	assert.Len(t, report.Edges, 3)
	assert.False(t, report.Contains(m.Path(filepath.Join(string(filepath.Separator), "p", "a.au3"))))
	assertClosedWalk(t, g, report)
}

func TestDetectCycle_Stable(t *testing.T) {
	edges := [][2]string{
		{"a.au3", "b.au3"}, {"b.au3", "a.au3"},
		{"c.au3", "d.au3"}, {"d.au3", "c.au3"},
	}
	nodes := []string{"a.au3", "b.au3", "c.au3", "d.au3"}

	first, err := DetectCycle(newTestGraph(t, nodes, edges))
	require.NoError(t, err)

	second, err := DetectCycle(newTestGraph(t, nodes, edges))
	require.NoError(t, err)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func TestStronglyConnected(t *testing.T) {
	g := newTestGraph(t,
		[]string{"a.au3", "b.au3", "c.au3", "d.au3", "e.au3", "f.au3"},
		[][2]string{
			{"a.au3", "b.au3"},
			{"b.au3", "a.au3"},
			{"b.au3", "c.au3"},
			{"d.au3", "e.au3"},
			{"e.au3", "d.au3"},
			{"f.au3", "f.au3"},
		},
	)

	components, err := StronglyConnected(g)
	require.NoError(t, err)

	var names [][]string
	for _, component := range components {
		var group []string
		for _, file := range component {
			group = append(group, string(file.DisplayPath))
		}

		names = append(names, group)
	}

	assert.Equal(t, [][]string{{"a.au3", "b.au3"}, {"d.au3", "e.au3"}, {"f.au3"}}, names)
}

func TestStronglyConnected_Acyclic(t *testing.T) {
	g := newTestGraph(t, []string{"a.au3", "b.au3"}, [][2]string{{"a.au3", "b.au3"}})

	components, err := StronglyConnected(g)
	require.NoError(t, err)
	assert.Empty(t, components)
}

// unavailableStore fails every vertex listing; all other calls are unused.
type unavailableStore struct {
	graph.Store[string, m.SourceFile]
}

var errStoreUnavailable = errors.New("store unavailable")

func (unavailableStore) ListVertices() ([]string, error) {
	return nil, errStoreUnavailable
}

func TestDetectCycle_StoreError(t *testing.T) {
	g := &DependencyGraph{
		root:  "/p",
		graph: graph.NewWithStore[string, m.SourceFile](sourceHash, unavailableStore{}, graph.Directed()),
	}

	report, err := DetectCycle(g)
	assert.ErrorContains(t, err, errStoreUnavailable.Error())
	assert.Nil(t, report)

	_, err = StronglyConnected(g)
	assert.ErrorContains(t, err, errStoreUnavailable.Error())
}
