package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/benchkit/internal/bench"
	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/format"
	"github.com/agbru/benchkit/internal/progress"
	"github.com/agbru/benchkit/internal/ui"
)

// CLIProgressReporter implements bench.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during benchmark runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements bench.ProgressReporter.
var _ bench.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, out io.Writer) {
	DisplayProgress(wg, progressChan, numKernels, out)
}

// CLIColorProvider exposes the active theme's error colors to the error
// handling layer without coupling it to the ui package.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// ErrorColor returns the error color code of the active theme.
func (CLIColorProvider) ErrorColor() string { return ui.ColorRed() }

// WarningColor returns the warning color code of the active theme.
func (CLIColorProvider) WarningColor() string { return ui.ColorYellow() }

// ResetColor returns the reset code of the active theme.
func (CLIColorProvider) ResetColor() string { return ui.ColorReset() }

// CLIResultPresenter implements bench.ResultPresenter for CLI output.
// It provides formatted, colorized output for benchmark results in the
// command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ bench.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the summary table with kernel names,
// best/mean timings, throughput, and status in a formatted tabular layout.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []bench.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Benchmark Summary ---\n")

	// Find the maximum column widths for proper alignment
	maxNameLen := 6 // "Kernel" header length
	maxBestLen := 4 // "Best" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if l := len(formatTiming(res.Best)); l > maxBestLen {
			maxBestLen = l
		}
	}

	fmt.Fprintf(out, "%sKernel%s%s   %sBest%s%s   %sMean%s       %sThroughput%s     %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-6),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxBestLen-4),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		best := formatTiming(res.Best)
		mean := formatTiming(res.Mean)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%-8s%s   %s%-12s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), best, ui.ColorReset(), padRight("", maxBestLen-len(best)),
			ui.ColorYellow(), mean, ui.ColorReset(),
			ui.ColorCyan(), format.FormatRate(res.OpsPerSec()), ui.ColorReset(),
			status)
	}
}

// formatTiming renders a repetition timing, flooring sub-microsecond values.
func formatTiming(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by the given number of spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// HandleError handles run errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleBenchError(err, duration, out, CLIColorProvider{})
}

// FormatDuration formats a duration for display using the standard
// duration formatting.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
