// Package adapter contains the infrastructure adapters for the au3deps CLI:
// file system access, output renderers, artifact persistence and watching.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning a script project. It intentionally hides direct `os`
// access so the graph builder can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// FindSources returns every regular file under root whose name ends in
	// ext, sorted. Symlinks to regular files are included under the link
	// path. Subtrees that cannot be read and broken links are reported as
	// warnings.
	FindSources(root m.Path, ext string) ([]m.Path, []m.Warning, error)

	// Walk traverses the provided root path recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadSource loads a file and decodes it to text, never failing on
	// undecodable bytes.
	ReadSource(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FindSources collects the script files under root.
func (a *LocalSourceFSAdapter) FindSources(root m.Path, ext string) ([]m.Path, []m.Warning, error) {
	if ext == "" {
		return nil, nil, errors.New("extension must not be empty")
	}

	rootStr := string(root)

	var (
		files    []m.Path
		warnings []m.Warning
	)

	err := a.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == rootStr {
				return err
			}

			warnings = append(warnings, m.Warning{Path: m.Path(path), Err: err})

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasExt(info.Name(), ext) {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			// Links keep their own path as identity; only the target type is checked.
			target, statErr := os.Stat(path)
			if statErr != nil {
				warnings = append(warnings, m.Warning{Path: m.Path(path), Err: statErr})
				return nil
			}

			info = target
		}

		if info.Mode().IsRegular() {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, warnings, nil
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from the directory walk of the scan root
	return os.ReadFile(string(path))
}

// ReadSource loads a script file and decodes it to text.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) (string, error) {
	raw, err := a.ReadFile(path)
	if err != nil {
		return "", err
	}

	return DecodeSource(raw), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// hasExt matches case-insensitively; script projects often come from
// case-insensitive file systems.
func hasExt(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
