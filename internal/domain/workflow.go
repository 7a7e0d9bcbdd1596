package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/au3deps/internal/adapter"
	"github.com/mouse-blink/au3deps/internal/controller"
	m "github.com/mouse-blink/au3deps/internal/model"
)

// RunArgs holds the inputs of a single scan.
type RunArgs struct {
	Root    m.Path
	Output  m.Path
	Format  m.Format
	Exclude []string
	// AllCycles adds the strongly connected components to the report.
	AllCycles bool
	// FailOnCycle turns a detected cycle into ErrCycleFound once the
	// artifact has been written.
	FailOnCycle bool
}

// Workflow runs the scan, analysis and rendering pipeline.
type Workflow interface {
	Run(args RunArgs) error
	Watch(ctx context.Context, args RunArgs) error
}

type workflow struct {
	builder GraphBuilder
	store   adapter.ArtifactStore
	watcher adapter.FileWatcher
	ui      controller.UI
	logger  *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	builder GraphBuilder,
	store adapter.ArtifactStore,
	watcher adapter.FileWatcher,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		builder: builder,
		store:   store,
		watcher: watcher,
		ui:      ui,
		logger:  logger,
	}
}

// Run scans args.Root once, writes the artifact and reports the outcome.
func (w *workflow) Run(args RunArgs) error {
	renderer, err := adapter.NewRenderer(args.Format)
	if err != nil {
		return err
	}

	g, err := w.builder.Build(args.Root, args.Exclude)
	if err != nil {
		return err
	}

	report, err := DetectCycle(g)
	if err != nil {
		return err
	}

	analysis := m.Analysis{
		Root:     g.Root(),
		Payload:  Present(g, report),
		Cycle:    report,
		Warnings: g.Warnings(),
	}

	if args.AllCycles {
		components, err := StronglyConnected(g)
		if err != nil {
			return fmt.Errorf("strongly connected components: %w", err)
		}

		analysis.Components = components
	}

	err = w.store.Write(args.Output, func(out io.Writer) error {
		return renderer.Render(out, analysis.Payload)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}

	if err := w.ui.DisplayAnalysis(analysis); err != nil {
		return err
	}

	w.ui.DisplayArtifact(args.Output, args.Format)

	if args.FailOnCycle && analysis.HasCycle() {
		return ErrCycleFound
	}

	return nil
}

// Watch runs once and then again after every change to a script under
// args.Root until ctx is cancelled. Failed rebuilds are logged and do not
// stop watching.
func (w *workflow) Watch(ctx context.Context, args RunArgs) error {
	if err := w.Run(args); err != nil && !errors.Is(err, ErrCycleFound) {
		return err
	}

	w.ui.DisplayWatching(args.Root)

	// Capacity one coalesces changes that arrive during a rebuild.
	triggers := make(chan []m.Path, 1)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(triggers)

		return w.watcher.Watch(ctx, args.Root, func(changed []m.Path) {
			select {
			case triggers <- changed:
			default:
				w.logger.Debug("rebuild already pending", "changed", len(changed))
			}
		})
	})

	group.Go(func() error {
		for changed := range triggers {
			w.logger.Info("rebuilding", "changed", len(changed))

			if err := w.Run(args); err != nil && !errors.Is(err, ErrCycleFound) {
				w.logger.Error("rebuild failed", "error", err)
			}
		}

		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
