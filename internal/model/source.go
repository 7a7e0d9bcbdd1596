// Package model defines the data structures shared by the include-graph scanner.
package model

// Path represents a file system path.
type Path string

// SourceExt is the extension of the script files the scanner discovers.
const SourceExt = ".au3"

// SourceFile is one node of the dependency graph.
type SourceFile struct {
	// CanonicalPath is absolute and lexically normalized. It is the node identity.
	CanonicalPath Path
	// DisplayPath is CanonicalPath relative to the scan root. Presentation only.
	DisplayPath Path
	// GuardsAgainstReinclusion is true when the file declares #include-once.
	GuardsAgainstReinclusion bool
	// Discovered is false for dangling include targets that were never scanned.
	Discovered bool
}

// IncludeEdge is a directed graph edge From -> To.
//
// The builder records "F includes G" as From: G, To: F, so arrows lead from a
// dependency to its dependent.
type IncludeEdge struct {
	From SourceFile
	To   SourceFile
}

// Warning records a file the scanner had to skip.
type Warning struct {
	Path Path
	Err  error
}
