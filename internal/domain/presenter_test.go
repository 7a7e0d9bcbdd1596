package domain

import (
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/au3deps/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresent_NoCycle(t *testing.T) {
	g := newTestGraph(t, []string{"a.au3", filepath.Join("lib", "b.au3")}, [][2]string{{filepath.Join("lib", "b.au3"), "a.au3"}})

	payload := Present(g, nil)

	require.Len(t, payload.Nodes, 2)
	for _, node := range payload.Nodes {
		assert.Equal(t, m.MarkerNormal, node.Marker, node.ID)
	}

	assert.Equal(t, "lib/b.au3", payload.Nodes[1].ID)
	assert.Equal(t, "b.au3", payload.Nodes[1].Label)
	assert.Equal(t, []m.RenderEdge{{From: "lib/b.au3", To: "a.au3"}}, payload.Edges)
	assert.NotNil(t, payload.Cycle)
	assert.Empty(t, payload.Cycle)
	assert.Empty(t, payload.Flagged())
}

func TestPresent_FlagsCycleNodes(t *testing.T) {
	g := newTestGraph(t,
		[]string{"a.au3", "b.au3", "c.au3"},
		[][2]string{{"a.au3", "b.au3"}, {"b.au3", "a.au3"}, {"c.au3", "a.au3"}},
	)

	report, err := DetectCycle(g)
	require.NoError(t, err)
	require.NotNil(t, report)

	payload := Present(g, report)

	assert.Equal(t, []string{"a.au3", "b.au3"}, payload.Flagged())
	assert.Len(t, payload.Edges, 3)
	assert.ElementsMatch(t, []m.RenderEdge{{From: "a.au3", To: "b.au3"}, {From: "b.au3", To: "a.au3"}}, payload.Cycle)

	for _, node := range payload.Nodes {
		if node.ID == "c.au3" {
			assert.Equal(t, m.MarkerNormal, node.Marker)
		}
	}
}

func TestPresent_CarriesNodeAttributes(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "p")
	g := newDependencyGraph(m.Path(root))

	require.NoError(t, g.addNode(m.SourceFile{
		CanonicalPath:            m.Path(filepath.Join(root, "a.au3")),
		DisplayPath:              "a.au3",
		GuardsAgainstReinclusion: true,
		Discovered:               true,
	}))
	require.NoError(t, g.addNode(m.SourceFile{
		CanonicalPath: m.Path(filepath.Join(root, "missing.au3")),
		DisplayPath:   "missing.au3",
	}))

	payload := Present(g, nil)

	require.Len(t, payload.Nodes, 2)
	assert.True(t, payload.Nodes[0].Guarded)
	assert.True(t, payload.Nodes[0].Discovered)
	assert.False(t, payload.Nodes[1].Guarded)
	assert.False(t, payload.Nodes[1].Discovered)
}

func TestPipeline_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantFlagged []string
		wantEdges   []m.RenderEdge
		wantCycle   int
	}{
		{
			name: "three file cycle",
			files: map[string]string{
				"a.au3": "#include \"b.au3\"\n",
				"b.au3": "#include \"c.au3\"\n",
				"c.au3": "#include \"a.au3\"\n",
			},
			wantFlagged: []string{"a.au3", "b.au3", "c.au3"},
			wantEdges: []m.RenderEdge{
				{From: "a.au3", To: "c.au3"},
				{From: "b.au3", To: "a.au3"},
				{From: "c.au3", To: "b.au3"},
			},
			wantCycle: 3,
		},
		{
			name: "single include",
			files: map[string]string{
				"a.au3": "#include \"b.au3\"\n",
				"b.au3": "",
			},
			wantEdges: []m.RenderEdge{{From: "b.au3", To: "a.au3"}},
		},
		{
			name: "dangling include",
			files: map[string]string{
				"a.au3": "#include \"missing.au3\"\n",
			},
			wantEdges: []m.RenderEdge{{From: "missing.au3", To: "a.au3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := buildTree(t, tt.files)

			report, err := DetectCycle(g)
			require.NoError(t, err)

			payload := Present(g, report)

			assert.Equal(t, tt.wantFlagged, payload.Flagged())
			assert.Equal(t, tt.wantEdges, payload.Edges)
			assert.Len(t, payload.Cycle, tt.wantCycle)
		})
	}
}
