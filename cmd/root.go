// Package cmd provides the root command and CLI setup for au3deps.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/au3deps/internal/adapter"
	"github.com/mouse-blink/au3deps/internal/config"
	"github.com/mouse-blink/au3deps/internal/controller"
	"github.com/mouse-blink/au3deps/internal/domain"
	"github.com/mouse-blink/au3deps/internal/logging"
	m "github.com/mouse-blink/au3deps/internal/model"
	"github.com/spf13/cobra"
)

var ui controller.UI

// newWorkflow wires the production collaborators around logger.
var newWorkflow = func(logger *slog.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	return domain.NewWorkflow(
		domain.NewGraphBuilder(fsAdapter, logger),
		adapter.NewArtifactStore(),
		adapter.NewFileWatcher(adapter.DefaultDebounce, logger),
		ui,
		logger,
	)
}

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

var outputFlag string
var excludeFlag []string
var formatFlag string
var configFlag string
var logLevelFlag string
var logFormatFlag string
var watchFlag bool
var allCyclesFlag bool
var failOnCycleFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "au3deps <proj_dir>",
		Short: "AutoIt include dependency graph",
		Long: `au3deps scans a directory of AutoIt (.au3) scripts, follows their
#include directives and renders the resulting dependency graph. Files that
take part in an include cycle are highlighted.

Settings are read from .au3deps.yaml, .au3deps.yml or .au3deps.hcl in the
project directory, then from AU3DEPS_* environment variables (a .env file in
the working directory is honoured), then from flags.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadArgs{
				Root:       args[0],
				ConfigFile: configFlag,
				EnvFile:    config.DefaultEnvFile,
				Flags:      overridesFrom(cmd),
			})
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			if cfg.File != "" {
				logger.Info("loaded config file", "path", cfg.File)
			}

			wf := newWorkflow(logger)
			runArgs := domain.RunArgs{
				Root:        cfg.Root,
				Output:      cfg.Output,
				Format:      cfg.Format,
				Exclude:     cfg.Exclude,
				AllCycles:   cfg.AllCycles,
				FailOnCycle: cfg.FailOnCycle,
			}

			if !cfg.Watch {
				return wf.Run(runArgs)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return wf.Watch(ctx, runArgs)
		},
	}
	cmd.Flags().StringVarP(&outputFlag, "output-path", "o", config.DefaultOutput, "path of the rendered graph")
	cmd.Flags().StringArrayVarP(&excludeFlag, "exclude-filename", "e", nil, "base name of a file to skip (repeatable)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", string(m.FormatHTML), fmt.Sprintf("output format %v", m.Formats()))
	cmd.Flags().StringVar(&configFlag, "config", "", "config file (default: .au3deps.{yaml,yml,hcl} in the project directory)")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&logFormatFlag, "log-format", logging.FormatText, "log format: text or json")
	cmd.Flags().BoolVar(&watchFlag, "watch", false, "rebuild the graph whenever a script changes")
	cmd.Flags().BoolVar(&allCyclesFlag, "all-cycles", false, "also report every strongly connected component")
	cmd.Flags().BoolVar(&failOnCycleFlag, "fail-on-cycle", false, "exit with status 1 when a cycle is found")

	return cmd
}

// overridesFrom collects the flags the user set explicitly.
func overridesFrom(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	o := config.Overrides{
		Exclude: excludeFlag,
		Watch:   watchFlag,
	}

	if flags.Changed("output-path") {
		o.Output = &outputFlag
	}

	if flags.Changed("format") {
		o.Format = &formatFlag
	}

	if flags.Changed("log-level") {
		o.LogLevel = &logLevelFlag
	}

	if flags.Changed("log-format") {
		o.LogFormat = &logFormatFlag
	}

	if flags.Changed("all-cycles") {
		o.AllCycles = &allCyclesFlag
	}

	if flags.Changed("fail-on-cycle") {
		o.FailOnCycle = &failOnCycleFlag
	}

	return o
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
