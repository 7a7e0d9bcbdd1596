package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/au3deps/internal/model"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher reports changes to script files below a root directory.
type FileWatcher interface {
	// Watch blocks until ctx is done. onChange receives the changed script
	// files of each debounced burst of events.
	Watch(ctx context.Context, root m.Path, onChange func(changed []m.Path)) error
}

type fsFileWatcher struct {
	debounce time.Duration
	ignore   []string
	logger   *slog.Logger
}

// NewFileWatcher creates a FileWatcher backed by fsnotify. A non-positive
// debounce selects DefaultDebounce.
func NewFileWatcher(debounce time.Duration, logger *slog.Logger) FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &fsFileWatcher{
		debounce: debounce,
		ignore:   []string{".git", ".svn", ".hg", "node_modules"},
		logger:   logger,
	}
}

func (w *fsFileWatcher) Watch(ctx context.Context, root m.Path, onChange func(changed []m.Path)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	if err := w.addRecursive(watcher, string(root)); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	pending := make(map[m.Path]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				// New directories must be watched explicitly.
				_ = w.addRecursive(watcher, event.Name)
			}

			if event.Op == fsnotify.Chmod || !hasExt(filepath.Base(event.Name), m.SourceExt) {
				continue
			}

			pending[m.Path(event.Name)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			changed := make([]m.Path, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}

			sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })
			clear(pending)
			onChange(changed)
		}
	}
}

func (w *fsFileWatcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are not watched, the scan reports them.
			return nil //nolint:nilerr
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && w.shouldIgnore(path) {
			return filepath.SkipDir
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}

func (w *fsFileWatcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)

	for _, pattern := range w.ignore {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
