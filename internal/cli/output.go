// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResults], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/ui"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Format selects the report encoding: "text", "json", or "yaml".
	Format string
	// Quiet mode suppresses everything except the final kernel values.
	Quiet bool
}

// WriteReport encodes a run report to w in the requested format.
func WriteReport(report bench.Report, reportFormat string, w io.Writer) error {
	switch reportFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(report)
	case "text":
		return writeTextReport(report, w)
	default:
		return fmt.Errorf("unknown report format %q", reportFormat)
	}
}

// writeTextReport renders a human-readable report.
func writeTextReport(report bench.Report, w io.Writer) error {
	fmt.Fprintf(w, "# Benchmark Report\n")
	fmt.Fprintf(w, "# Session:    %s\n", report.SessionID)
	fmt.Fprintf(w, "# Generated:  %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "# Go version: %s\n", report.GoVersion)
	fmt.Fprintf(w, "# CPUs:       %d\n\n", report.NumCPU)

	for _, r := range report.Results {
		fmt.Fprintf(w, "kernel=%s workload=%d reps=%d value=%d best_ns=%d mean_ns=%d ops_per_sec=%.1f",
			r.Kernel, r.Workload, r.Reps, r.Value, r.BestNs, r.MeanNs, r.OpsPerSec)
		if r.Error != "" {
			fmt.Fprintf(w, " error=%q", r.Error)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteReportToFile writes a run report to the configured file, creating
// parent directories as needed. A missing OutputFile is a no-op.
func WriteReportToFile(report bench.Report, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return WriteReport(report, cfg.Format, file)
}

// DisplayQuietResults outputs only the final kernel values, one per line,
// suitable for scripting.
func DisplayQuietResults(results []bench.Result, out io.Writer) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		fmt.Fprintln(out, r.Value)
	}
}

// DisplayReportSaved confirms where the report was written.
func DisplayReportSaved(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
