package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// footerHeight is the number of lines reserved below the viewport.
const footerHeight = 1

// pagerModel shows a long report in a scrollable viewport.
type pagerModel struct {
	viewport viewport.Model
	quitting bool
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-footerHeight, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-footerHeight, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := dimStyle.Render(fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n" + footer
}
