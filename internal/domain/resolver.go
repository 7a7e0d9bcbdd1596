package domain

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// ResolveInclude turns a raw include token into a canonical path. The token
// is interpreted relative to the directory of the includer, which must itself
// be canonical. Resolution is purely lexical: the target does not have to
// exist and symlinks are left alone.
func ResolveInclude(includer m.Path, token string) m.Path {
	normalized := filepath.FromSlash(strings.ReplaceAll(token, `\`, "/"))

	if filepath.IsAbs(normalized) {
		return m.Path(filepath.Clean(normalized))
	}

	return m.Path(filepath.Join(filepath.Dir(string(includer)), normalized))
}

// Canonicalize returns the absolute, lexically cleaned form of path.
func Canonicalize(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
