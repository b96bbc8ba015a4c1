// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over environment variables, which take
// precedence over built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/benchkit/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "BENCHKIT_"

// Default configuration values.
const (
	DefaultKernel  = "all"
	DefaultLimit   = int64(100000000)
	DefaultN       = int64(40)
	DefaultTimeout = 5 * time.Minute
	DefaultFormat  = "text"
)

// AppConfig holds the complete runtime configuration of a benchmark run.
type AppConfig struct {
	// Kernel selects which kernel(s) to run ("counter", "fib", or "all").
	Kernel string
	// Limit is the counter kernel workload (iteration count).
	Limit int64
	// N is the Fibonacci kernel workload (sequence index).
	N int64
	// Reps is the number of repetitions per kernel. Zero selects an
	// adaptive default based on the host CPU count.
	Reps int
	// Timeout bounds the total benchmark run.
	Timeout time.Duration
	// Verify cross-checks each kernel result against an exact reference.
	Verify bool
	// Quiet prints only the final kernel values, one per line.
	Quiet bool
	// Verbose enables debug-level logging.
	Verbose bool
	// TUI launches the interactive dashboard instead of the CLI output.
	TUI bool
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
	// OutputFile, when set, receives the run report.
	OutputFile string
	// Format selects the report format: "text", "json", or "yaml".
	Format string
	// MetricsAddr, when set, serves Prometheus metrics on that address
	// for the duration of the run.
	MetricsAddr string
}

// validFormats lists the accepted report formats.
var validFormats = []string{"text", "json", "yaml"}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not set on the command line,
// and validates the result. availableKernels is used for validation and
// for the usage text.
func ParseConfig(progName string, args []string, errWriter io.Writer, availableKernels []string) (AppConfig, error) {
	cfg := AppConfig{
		Kernel:  DefaultKernel,
		Limit:   DefaultLimit,
		N:       DefaultN,
		Timeout: DefaultTimeout,
		Format:  DefaultFormat,
	}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	kernelUsage := fmt.Sprintf("kernel to run: %s, or 'all'", strings.Join(availableKernels, ", "))
	fs.StringVar(&cfg.Kernel, "kernel", cfg.Kernel, kernelUsage)
	fs.StringVar(&cfg.Kernel, "k", cfg.Kernel, "shorthand for -kernel")
	fs.Int64Var(&cfg.Limit, "limit", cfg.Limit, "counter kernel iteration limit")
	fs.Int64Var(&cfg.N, "n", cfg.N, "Fibonacci sequence index")
	fs.IntVar(&cfg.Reps, "reps", cfg.Reps, "repetitions per kernel (0 = adaptive)")
	fs.IntVar(&cfg.Reps, "r", cfg.Reps, "shorthand for -reps")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "total run timeout")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check results against an exact reference")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the final kernel values")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive dashboard")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the run report to this file")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "shorthand for -output")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "report format: text, json, or yaml")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address (e.g. :9090)")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\n", progName)
		fmt.Fprintf(errWriter, "Runs cross-language micro-benchmark kernels and reports timings.\n\n")
		fmt.Fprintf(errWriter, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableKernels); err != nil {
		// Mirror the flag package, which reports parse errors on errWriter.
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the semantic constraints on a parsed configuration.
func validate(cfg AppConfig, availableKernels []string) error {
	if cfg.Kernel != "all" && !slices.Contains(availableKernels, cfg.Kernel) {
		return apperrors.NewConfigError("unknown kernel %q (available: %s, all)",
			cfg.Kernel, strings.Join(availableKernels, ", "))
	}
	if cfg.Reps < 0 {
		return apperrors.NewConfigError("reps must be >= 0, got %d", cfg.Reps)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %v", cfg.Timeout)
	}
	if !slices.Contains(validFormats, cfg.Format) {
		return apperrors.NewConfigError("unknown format %q (available: %s)",
			cfg.Format, strings.Join(validFormats, ", "))
	}
	return nil
}
