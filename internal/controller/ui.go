// Package controller provides the console reporting for au3deps runs.
package controller

import (
	m "github.com/mouse-blink/au3deps/internal/model"
)

// UI defines how a run is reported on the console.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayAnalysis reports the cycle (or its absence) and a summary of the graph.
	DisplayAnalysis(analysis m.Analysis) error
	// DisplayArtifact reports where the rendered graph was written.
	DisplayArtifact(path m.Path, format m.Format)
	// DisplayWatching announces that the root is being watched for changes.
	DisplayWatching(root m.Path)
}
