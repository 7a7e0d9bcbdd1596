package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/au3deps/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis prints the cycle message and the summary table.
func (s *SimpleUI) DisplayAnalysis(analysis m.Analysis) error {
	if analysis.HasCycle() {
		s.printf("Found dependency cycle: %s\n", cyclePath(analysis.Payload.Cycle))

		for _, edge := range analysis.Payload.Cycle {
			s.printf("  %s -> %s\n", edge.From, edge.To)
		}
	} else {
		s.printf("No dependency cycles found.\n")
	}

	if len(analysis.Components) > 0 {
		s.printf("\nStrongly connected components:\n")

		for i, component := range analysis.Components {
			s.printf("  %d. %s\n", i+1, strings.Join(componentNames(component), ", "))
		}
	}

	for _, warning := range analysis.Warnings {
		s.printf("skipped %s: %v\n", warning.Path, warning.Err)
	}

	sum := summarize(analysis)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Scanned files", fmt.Sprintf("%d", sum.files)},
		{"Dangling includes", fmt.Sprintf("%d", sum.dangling)},
		{"Include edges", fmt.Sprintf("%d", sum.edges)},
		{"Include-once files", fmt.Sprintf("%d", sum.guarded)},
		{"Flagged files", fmt.Sprintf("%d", sum.flagged)},
		{"Skipped paths", fmt.Sprintf("%d", sum.skipped)},
	})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayArtifact prints the output location.
func (s *SimpleUI) DisplayArtifact(path m.Path, format m.Format) {
	s.printf("Wrote %s graph to %s\n", format, path)
}

// DisplayWatching announces watch mode.
func (s *SimpleUI) DisplayWatching(root m.Path) {
	s.printf("Watching %s for changes (Ctrl+C to stop)\n", root)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
