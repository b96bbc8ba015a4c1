package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the program
// execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the benchmark timed out.
	ExitErrorMismatch = 3   // Indicates a kernel result failed verification.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// BenchError encapsulates a benchmark execution error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong while driving a kernel.
type BenchError struct {
	// Cause is the underlying error that interrupted the benchmark.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e BenchError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e BenchError) Unwrap() error { return e.Cause }

// TimeoutError represents a benchmark timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure at the driver
// boundary. It identifies which field failed validation and provides a
// human-readable explanation. The kernels themselves never validate.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError represents a verification failure: a kernel returned a
// value that disagrees with the reference oracle.
type MismatchError struct {
	// Kernel is the name of the kernel whose result was wrong.
	Kernel string
	// Got is the value the kernel produced.
	Got int64
	// Want is the value the oracle expected.
	Want int64
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("kernel %q: result mismatch: got %d, want %d", e.Kernel, e.Got, e.Want)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As(). Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI escape codes for error output. A nil
// provider disables colorization.
type ColorProvider interface {
	// ErrorColor returns the escape code for error text.
	ErrorColor() string
	// WarningColor returns the escape code for warning text.
	WarningColor() string
	// ResetColor returns the escape code clearing all formatting.
	ResetColor() string
}

// HandleBenchError maps a benchmark error onto an exit code, writing a
// human-readable diagnostic to out.
func HandleBenchError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	errColor, warnColor, reset := "", "", ""
	if colors != nil {
		errColor, warnColor, reset = colors.ErrorColor(), colors.WarningColor(), colors.ResetColor()
	}

	var timeoutErr TimeoutError
	var mismatchErr MismatchError
	var configErr ConfigError

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%sBenchmark timed out after %s: %v%s\n", warnColor, duration, err, reset)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sBenchmark canceled: %v%s\n", warnColor, err, reset)
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		fmt.Fprintf(out, "%sVerification failed: %v%s\n", errColor, err, reset)
		return ExitErrorMismatch
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", errColor, err, reset)
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", errColor, err, reset)
		return ExitErrorGeneric
	}
}
