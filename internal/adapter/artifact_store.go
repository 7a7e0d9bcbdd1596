package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// ArtifactStore persists rendered output.
type ArtifactStore interface {
	// Write renders into path. The file is replaced atomically so an
	// interrupted run never leaves a truncated artifact behind.
	Write(path m.Path, render func(w io.Writer) error) error
}

type artifactStore struct{}

// NewArtifactStore constructs an ArtifactStore writing to the local disk.
func NewArtifactStore() ArtifactStore {
	return &artifactStore{}
}

func (s *artifactStore) Write(path m.Path, render func(w io.Writer) error) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := render(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("render artifact: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp artifact: %w", err)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // artifacts are meant to be shared
		return fmt.Errorf("chmod artifact: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replace artifact: %w", err)
	}

	committed = true

	return nil
}
