package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/logging"
)

func silentLogger() logging.Logger {
	return logging.NewLogger(io.Discard, "test")
}

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"benchkit"}, args...), &errBuf, WithLogger(silentLogger()))
	if err != nil {
		t.Fatalf("New() error = %v (stderr: %s)", err, errBuf.String())
	}
	return a
}

func TestNew(t *testing.T) {
	a := newTestApp(t)

	if a.Config.Kernel != "all" {
		t.Errorf("Kernel = %q, want default %q", a.Config.Kernel, "all")
	}
	if a.Config.Reps <= 0 {
		t.Errorf("Reps = %d, want adaptive positive value", a.Config.Reps)
	}
	if a.Factory == nil {
		t.Error("Factory should default to the standard kernel set")
	}
}

func TestNew_InvalidFlag(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"benchkit", "-kernel", "bogus"}, &errBuf)

	if err == nil {
		t.Fatal("expected an error for an unknown kernel")
	}
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("error type = %T, want ConfigError", err)
	}
}

func TestIsHelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"benchkit", "--help"}, &errBuf)

	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
	if IsHelpError(errors.New("other")) {
		t.Error("IsHelpError should be false for unrelated errors")
	}
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("help error should wrap flag.ErrHelp, got %v", err)
	}
}

func TestRun_QuietSingleKernel(t *testing.T) {
	a := newTestApp(t, "-kernel", "fib", "-n", "10", "-reps", "1", "-q")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if got := strings.TrimSpace(out.String()); got != "55" {
		t.Errorf("quiet output = %q, want %q", got, "55")
	}
}

func TestRun_QuietAllKernels(t *testing.T) {
	a := newTestApp(t, "-limit", "1000", "-n", "40", "-reps", "1", "-q", "-verify")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}

	lines := strings.Fields(out.String())
	if len(lines) != 2 || lines[0] != "1000" || lines[1] != "102334155" {
		t.Errorf("quiet output = %q, want counter then fib values", out.String())
	}
}

func TestRun_ComparisonTable(t *testing.T) {
	a := newTestApp(t, "-limit", "100", "-n", "10", "-reps", "1", "-no-color")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Execution Configuration", "Benchmark Summary", "counter", "fib", "Success"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output should contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRun_Timeout(t *testing.T) {
	// A huge workload with a tiny timeout must abort between repetitions.
	a := newTestApp(t, "-kernel", "counter", "-limit", "5000000000", "-reps", "100", "-q", "-timeout", "1ms")

	var out bytes.Buffer
	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestRun_WritesReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	a := newTestApp(t, "-kernel", "fib", "-n", "10", "-reps", "1", "-q", "-o", path, "-format", "json")

	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}

	data := readFile(t, path)
	for _, want := range []string{"session_id", `"kernel": "fib"`, `"value": 55`} {
		if !strings.Contains(data, want) {
			t.Errorf("report should contain %q, got:\n%s", want, data)
		}
	}
}

func TestRun_CanceledContext(t *testing.T) {
	a := newTestApp(t, "-kernel", "counter", "-limit", "10", "-reps", "1", "-q")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code := a.Run(ctx, &out)

	if code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-version"}, true},
		{[]string{"-n", "40"}, false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)

	if !strings.Contains(buf.String(), "benchkit") || !strings.Contains(buf.String(), Version) {
		t.Errorf("version banner = %q", buf.String())
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not readable: %v", err)
	}
	return string(data)
}
