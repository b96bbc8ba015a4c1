package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/cli"
	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/metrics"
)

// runBench executes the CLI benchmark mode.
func (a *Application) runBench(ctx context.Context, specs []bench.Spec, runner *bench.Runner, out io.Writer) int {
	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, specs, out)
		cli.PrintExecutionMode(specs, out)
	}

	// Choose progress reporter based on quiet mode
	var reporter bench.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = bench.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	start := time.Now()
	results := runner.Execute(ctx, specs, reporter, progressOut)
	totalDuration := time.Since(start)

	if a.Config.Verbose && !a.Config.Quiet {
		snap := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayMemoryStats(snap.HeapAlloc, snap.TotalAlloc, snap.NumGC, snap.PauseTotalNs, out)
	}

	return a.presentResults(results, totalDuration, out)
}

// presentResults renders the run outcome and resolves the exit code.
func (a *Application) presentResults(results []bench.Result, totalDuration time.Duration, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if a.Config.Quiet {
		if err := firstError(results); err != nil {
			return presenter.HandleError(err, totalDuration, a.ErrWriter)
		}
		cli.DisplayQuietResults(results, out)
		return a.saveReportIfNeeded(results, out)
	}

	presenter.PresentComparisonTable(results, out)

	if err := firstError(results); err != nil {
		return presenter.HandleError(err, totalDuration, out)
	}

	return a.saveReportIfNeeded(results, out)
}

// firstError returns the first run error, if any.
func firstError(results []bench.Result) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// saveReportIfNeeded writes the run report when an output file is
// configured. A write failure is a generic error, not a benchmark failure.
func (a *Application) saveReportIfNeeded(results []bench.Result, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}

	report := bench.NewReport(results)
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Format:     a.Config.Format,
		Quiet:      a.Config.Quiet,
	}
	if err := cli.WriteReportToFile(report, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		cli.DisplayReportSaved(a.Config.OutputFile, out)
	}
	return apperrors.ExitSuccess
}
