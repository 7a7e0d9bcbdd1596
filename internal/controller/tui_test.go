package controller

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/au3deps/internal/model"
)

func TestTUI_DisplayAnalysis_PrintsWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	require.NoError(t, ui.DisplayAnalysis(cyclicAnalysis()))

	output := buf.String()
	assert.Contains(t, output, "Found dependency cycle")
	assert.Contains(t, output, "Strongly connected components")
	assert.Contains(t, output, "skipped /p/locked.au3: permission denied")
	assert.Contains(t, output, "Include-once files")
}

func TestTUI_DisplayAnalysis_NoCycle(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	require.NoError(t, ui.DisplayAnalysis(m.Analysis{Root: "/p"}))

	assert.Contains(t, buf.String(), "No dependency cycles found.")
}

func TestTUI_DisplayWatching_EnablesStreaming(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	ui.DisplayWatching("/p")

	assert.True(t, ui.streaming)
	assert.Contains(t, buf.String(), "/p")
}

func TestTUI_DisplayArtifact(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	ui.DisplayArtifact("deps.json", m.FormatJSON)

	assert.Contains(t, buf.String(), "json graph to")
	assert.Contains(t, buf.String(), "deps.json")
}

func TestPagerModel_Update(t *testing.T) {
	content := strings.Repeat("line\n", 50)
	model := newPagerModel(content, 40, 10)

	assert.Nil(t, model.Init())

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	pm := updated.(pagerModel)
	assert.Equal(t, 60, pm.viewport.Width)
	assert.Equal(t, 19, pm.viewport.Height)
	assert.Contains(t, pm.View(), "q quit")

	updated, cmd := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	pm = updated.(pagerModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, pm.View())
}
