// Package app wires configuration, kernels, the runner, and the output
// surfaces into the application entry point.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/config"
	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/kernel"
	"github.com/agbru/benchkit/internal/logging"
	"github.com/agbru/benchkit/internal/metrics"
	"github.com/agbru/benchkit/internal/server"
	"github.com/agbru/benchkit/internal/tui"
	"github.com/agbru/benchkit/internal/ui"
)

// Application represents the benchkit application instance.
type Application struct {
	Config    config.AppConfig
	Factory   kernel.Factory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom kernel factory for the application.
func WithFactory(f kernel.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = kernel.NewDefaultFactory()
	}
	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}

	availableKernels := app.Factory.List()

	programName := "benchkit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableKernels)
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptiveReps(cfg)
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	specs, err := bench.SpecsFor(a.Config, a.Factory)
	if err != nil {
		return apperrors.HandleBenchError(err, 0, a.ErrWriter, nil)
	}

	// Lifecycle: total timeout plus interrupt signals.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	collector := metrics.NewBenchCollector()
	runner := bench.NewRunner(a.Logger, collector, bench.WithVerify(a.Config.Verify))

	if a.Config.MetricsAddr != "" {
		srv := server.New(a.Config.MetricsAddr, collector, a.Logger)
		go func() {
			if err := srv.Start(ctx); err != nil {
				a.Logger.Error("metrics server failed", err)
			}
		}()
	}

	if a.Config.TUI {
		return tui.Run(ctx, specs, a.Config, runner, Version)
	}

	return a.runBench(ctx, specs, runner, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
