package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mouse-blink/au3deps/internal/adapter"
	m "github.com/mouse-blink/au3deps/internal/model"
)

// GraphBuilder discovers the script files under a root and assembles their
// include graph.
type GraphBuilder interface {
	Build(root m.Path, excluded []string) (*DependencyGraph, error)
}

type graphBuilder struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *slog.Logger
}

// NewGraphBuilder creates a GraphBuilder reading files through fsAdapter.
func NewGraphBuilder(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) GraphBuilder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &graphBuilder{
		fsAdapter: fsAdapter,
		logger:    logger,
	}
}

// scannedFile is a discovered file together with its resolved include targets.
type scannedFile struct {
	canonical m.Path
	targets   []m.Path
}

// Build walks root, extracts and resolves every include directive and
// records an edge from each included file to its includer. Files whose base
// name is listed in excluded are not scanned, although they may still show up
// as dangling targets of other files.
func (b *graphBuilder) Build(root m.Path, excluded []string) (*DependencyGraph, error) {
	canonicalRoot, err := b.validateRoot(root)
	if err != nil {
		return nil, err
	}

	paths, warnings, err := b.fsAdapter.FindSources(canonicalRoot, m.SourceExt)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}

	g := newDependencyGraph(canonicalRoot)

	for _, w := range warnings {
		b.warn(g, m.Warning{Path: b.displayPath(canonicalRoot, w.Path), Err: w.Err})
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, name := range excluded {
		skip[name] = struct{}{}
	}

	scanned := make([]scannedFile, 0, len(paths))

	for _, path := range paths {
		if _, ok := skip[filepath.Base(string(path))]; ok {
			b.logger.Debug("excluded file", "path", path)
			continue
		}

		file, targets, err := b.scanFile(g, path)
		if err != nil {
			return nil, err
		}

		if err := g.addNode(file); err != nil {
			return nil, err
		}

		scanned = append(scanned, scannedFile{canonical: file.CanonicalPath, targets: targets})
	}

	// Edges are added once every discovered file is a node, so only targets
	// that were never scanned become dangling placeholders.
	for _, s := range scanned {
		for _, target := range s.targets {
			if _, ok := g.Node(target); !ok {
				dangling := m.SourceFile{
					CanonicalPath: target,
					DisplayPath:   b.displayPath(canonicalRoot, target),
				}
				if err := g.addNode(dangling); err != nil {
					return nil, err
				}

				b.logger.Debug("dangling include", "target", dangling.DisplayPath)
			}

			if err := g.addEdge(target, s.canonical); err != nil {
				return nil, err
			}
		}
	}

	b.logger.Info("graph built",
		"root", canonicalRoot,
		"nodes", g.Order(),
		"edges", g.Size(),
		"skipped", len(g.warnings))

	return g, nil
}

func (b *graphBuilder) validateRoot(root m.Path) (m.Path, error) {
	canonical, err := Canonicalize(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidRoot, root, err)
	}

	info, err := b.fsAdapter.FileInfo(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	return canonical, nil
}

// scanFile reads one discovered file. A file that cannot be read still
// becomes a node, it just contributes no includes.
func (b *graphBuilder) scanFile(g *DependencyGraph, path m.Path) (m.SourceFile, []m.Path, error) {
	canonical, err := Canonicalize(path)
	if err != nil {
		return m.SourceFile{}, nil, fmt.Errorf("canonicalize %s: %w", path, err)
	}

	file := m.SourceFile{
		CanonicalPath: canonical,
		DisplayPath:   b.displayPath(g.Root(), canonical),
		Discovered:    true,
	}

	text, err := b.fsAdapter.ReadSource(canonical)
	if err != nil {
		b.warn(g, m.Warning{Path: file.DisplayPath, Err: err})
		return file, nil, nil
	}

	guarded, tokens := ExtractIncludes(text)
	file.GuardsAgainstReinclusion = guarded

	targets := make([]m.Path, 0, len(tokens))

	for _, token := range tokens {
		target := ResolveInclude(canonical, token)
		b.logger.Debug("include", "file", file.DisplayPath, "token", token, "target", target)
		targets = append(targets, target)
	}

	return file, targets, nil
}

func (b *graphBuilder) displayPath(root, canonical m.Path) m.Path {
	rel, err := b.fsAdapter.RelPath(root, canonical)
	if err != nil {
		return canonical
	}

	return rel
}

func (b *graphBuilder) warn(g *DependencyGraph, w m.Warning) {
	b.logger.Warn("skipping path", "path", w.Path, "error", w.Err)
	g.warnings = append(g.warnings, w)
}
