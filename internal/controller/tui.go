package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/au3deps/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	flaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	normalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(20)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
)

// TUI implements UI with styled terminal output. Reports taller than the
// terminal open in a Bubble Tea pager.
type TUI struct {
	output io.Writer
	// streaming disables the pager so repeated reports never block.
	streaming bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayAnalysis prints the styled report, paging it when needed.
func (t *TUI) DisplayAnalysis(analysis m.Analysis) error {
	report := renderReport(analysis)

	width, height := t.terminalSize()
	if t.streaming || height == 0 || strings.Count(report, "\n") < height {
		_, err := fmt.Fprint(t.output, report)
		return err
	}

	program := tea.NewProgram(newPagerModel(report, width, height), tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayArtifact prints the output location.
func (t *TUI) DisplayArtifact(path m.Path, format m.Format) {
	_, _ = fmt.Fprintf(t.output, "%s %s graph to %s\n", dimStyle.Render("wrote"), format, titleStyle.Render(string(path)))
}

// DisplayWatching announces watch mode and switches to streaming output.
func (t *TUI) DisplayWatching(root m.Path) {
	t.streaming = true
	_, _ = fmt.Fprintf(t.output, "%s %s %s\n", titleStyle.Render("watching"), root, dimStyle.Render("(ctrl+c to stop)"))
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func renderReport(analysis m.Analysis) string {
	var sb strings.Builder

	if analysis.HasCycle() {
		sb.WriteString(flaggedStyle.Render("Found dependency cycle"))
		sb.WriteString("\n")

		for _, edge := range analysis.Payload.Cycle {
			sb.WriteString(fmt.Sprintf("  %s %s %s\n", flaggedStyle.Render(edge.From), dimStyle.Render("->"), flaggedStyle.Render(edge.To)))
		}
	} else {
		sb.WriteString(normalStyle.Render("No dependency cycles found."))
		sb.WriteString("\n")
	}

	if len(analysis.Components) > 0 {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render("Strongly connected components"))
		sb.WriteString("\n")

		for i, component := range analysis.Components {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, strings.Join(componentNames(component), dimStyle.Render(", "))))
		}
	}

	if len(analysis.Warnings) > 0 {
		sb.WriteString("\n")

		for _, warning := range analysis.Warnings {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("skipped %s: %v", warning.Path, warning.Err)))
			sb.WriteString("\n")
		}
	}

	sum := summarize(analysis)

	sb.WriteString("\n")

	for _, row := range []struct {
		label string
		count int
	}{
		{"Scanned files", sum.files},
		{"Dangling includes", sum.dangling},
		{"Include edges", sum.edges},
		{"Include-once files", sum.guarded},
		{"Flagged files", sum.flagged},
		{"Skipped paths", sum.skipped},
	} {
		sb.WriteString(fmt.Sprintf("%s%s\n", labelStyle.Render(row.label), countStyle.Render(fmt.Sprintf("%d", row.count))))
	}

	return sb.String()
}
