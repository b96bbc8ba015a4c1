// Package bench coordinates the execution of benchmark kernels, collects
// per-repetition timings, and assembles the run report.
package bench

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/benchkit/internal/progress"
)

// Result encapsulates the outcome of benchmarking a single kernel.
// It serves as the shared domain type between the runner and the
// presentation layers.
type Result struct {
	// Name is the kernel identifier (e.g. "counter").
	Name string
	// Workload is the configured workload value for the kernel.
	Workload int64
	// Reps is the number of repetitions that were executed.
	Reps int
	// Value is the kernel's result from the final repetition.
	Value int64
	// Durations holds the wall-clock time of each repetition.
	Durations []time.Duration
	// Best is the fastest repetition.
	Best time.Duration
	// Mean is the arithmetic mean over all repetitions.
	Mean time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// OpsPerSec derives a throughput figure from the best repetition. It
// returns 0 when the workload is non-positive or the timing is unusable.
func (r Result) OpsPerSec() float64 {
	if r.Workload <= 0 || r.Best <= 0 {
		return 0
	}
	return float64(r.Workload) / r.Best.Seconds()
}

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking the
// runner when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the runner from the presentation layer so the
// same execution path serves the CLI, the TUI, and quiet mode.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, out io.Writer) {
	f(wg, progressChan, numKernels, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting benchmark results.
// Implementations provide the output format (comparison table, quiet
// values, report files) without the runner knowing about any of them.
type ResultPresenter interface {
	// PresentComparisonTable displays the summary table for all kernels.
	PresentComparisonTable(results []Result, out io.Writer)

	// HandleError reports a run error and returns the process exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
