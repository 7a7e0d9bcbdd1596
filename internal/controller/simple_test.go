package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/au3deps/internal/model"
	"github.com/spf13/cobra"
)

func cyclicAnalysis() m.Analysis {
	a := m.SourceFile{CanonicalPath: "/p/a.au3", DisplayPath: "a.au3", Discovered: true}
	b := m.SourceFile{CanonicalPath: "/p/b.au3", DisplayPath: "b.au3", Discovered: true, GuardsAgainstReinclusion: true}

	return m.Analysis{
		Root: "/p",
		Payload: m.RenderPayload{
			Nodes: []m.RenderNode{
				{ID: "a.au3", Label: "a.au3", Marker: m.MarkerFlagged, Discovered: true},
				{ID: "b.au3", Label: "b.au3", Marker: m.MarkerFlagged, Discovered: true, Guarded: true},
				{ID: "missing.au3", Label: "missing.au3", Marker: m.MarkerNormal},
			},
			Edges: []m.RenderEdge{
				{From: "a.au3", To: "b.au3"},
				{From: "b.au3", To: "a.au3"},
				{From: "missing.au3", To: "a.au3"},
			},
			Cycle: []m.RenderEdge{
				{From: "a.au3", To: "b.au3"},
				{From: "b.au3", To: "a.au3"},
			},
		},
		Cycle: &m.CycleReport{
			Edges: []m.IncludeEdge{{From: a, To: b}, {From: b, To: a}},
			Nodes: []m.SourceFile{a, b},
		},
		Components: [][]m.SourceFile{{a, b}},
		Warnings:   []m.Warning{{Path: "/p/locked.au3", Err: errors.New("permission denied")}},
	}
}

func TestSimpleUI_DisplayAnalysis_Cycle(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayAnalysis(cyclicAnalysis()); err != nil {
		t.Fatalf("DisplayAnalysis() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Found dependency cycle: a.au3 -> b.au3 -> a.au3",
		"  a.au3 -> b.au3",
		"Strongly connected components:",
		"1. a.au3, b.au3",
		"skipped /p/locked.au3: permission denied",
		"Scanned files",
		"Dangling includes",
		"Include-once files",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayAnalysis_NoCycle(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	analysis := m.Analysis{
		Root: "/p",
		Payload: m.RenderPayload{
			Nodes: []m.RenderNode{{ID: "a.au3", Label: "a.au3", Marker: m.MarkerNormal, Discovered: true}},
			Cycle: []m.RenderEdge{},
		},
	}

	if err := ui.DisplayAnalysis(analysis); err != nil {
		t.Fatalf("DisplayAnalysis() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "No dependency cycles found.") {
		t.Fatalf("output missing acyclic message\noutput:\n%s", output)
	}

	if strings.Contains(output, "Strongly connected components") {
		t.Fatalf("unexpected components section\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayArtifactAndWatching(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	ui.DisplayArtifact("out/deps.html", m.FormatHTML)
	ui.DisplayWatching("/p")

	output := buf.String()
	if !strings.Contains(output, "Wrote html graph to out/deps.html") {
		t.Fatalf("output missing artifact line\noutput:\n%s", output)
	}

	if !strings.Contains(output, "Watching /p for changes") {
		t.Fatalf("output missing watch line\noutput:\n%s", output)
	}
}

func TestSummarize(t *testing.T) {
	sum := summarize(cyclicAnalysis())

	want := summary{files: 2, dangling: 1, edges: 3, guarded: 1, flagged: 2, skipped: 1}
	if sum != want {
		t.Errorf("summarize() = %+v, want %+v", sum, want)
	}
}

func TestCyclePath(t *testing.T) {
	tests := []struct {
		name  string
		edges []m.RenderEdge
		want  string
	}{
		{name: "empty", edges: nil, want: ""},
		{name: "self loop", edges: []m.RenderEdge{{From: "a", To: "a"}}, want: "a -> a"},
		{
			name:  "three nodes",
			edges: []m.RenderEdge{{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"}},
			want:  "a -> b -> c -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cyclePath(tt.edges); got != tt.want {
				t.Errorf("cyclePath() = %q, want %q", got, tt.want)
			}
		})
	}
}
