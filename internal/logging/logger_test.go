package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("kernel", "counter"), "kernel", "counter"},
		{"Int", Int("reps", 5), "reps", 5},
		{"Int64", Int64("workload", 100000000), "workload", int64(100000000)},
		{"Uint64", Uint64("bytes", 18446744073709551615), "bytes", uint64(18446744073709551615)},
		{"Float64", Float64("ops", 3.14), "ops", 3.14},
		{"Dur", Dur("best", time.Second), "best", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}

	t.Run("Err uses the error key", func(t *testing.T) {
		cause := errors.New("boom")
		f := Err(cause)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != cause {
			t.Errorf("Err().Value = %v, want %v", f.Value, cause)
		}
	})
}

func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("adapter not wired to buffer, output: %s", buf.String())
	}
}

func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "bench")

	logger.Info("starting")
	out := buf.String()
	if !strings.Contains(out, "bench") {
		t.Errorf("output should include the component field, got: %s", out)
	}
	if !strings.Contains(out, "starting") {
		t.Errorf("output should include the message, got: %s", out)
	}
}

func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{"no fields", "run complete", nil, []string{"run complete", "info"}},
		{"string field", "run complete", []Field{String("kernel", "fib")}, []string{"run complete", "fib"}},
		{"multiple fields", "run complete", []Field{String("kernel", "counter"), Int("rep", 3)}, []string{"counter", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info(tt.msg, tt.fields...)

			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q, got: %s", want, buf.String())
				}
			}
		})
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Error("benchmark failed", errors.New("deadline exceeded"), String("kernel", "counter"))

	out := buf.String()
	for _, want := range []string{"benchmark failed", "deadline exceeded", "counter", "error"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("rep done", Int("rep", 1))

	out := buf.String()
	if !strings.Contains(out, "rep done") || !strings.Contains(out, "debug") {
		t.Errorf("debug output missing message or level, got: %s", out)
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("value is %d", 55)
	if !strings.Contains(buf.String(), "value is 55") {
		t.Errorf("Printf should format, got: %s", buf.String())
	}

	buf.Reset()
	logger.Println("a", "b")
	if !strings.Contains(buf.String(), "a b") {
		t.Errorf("Println should join arguments, got: %s", buf.String())
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int", Field{Key: "i", Value: 42}, "42"},
		{"int64", Field{Key: "i64", Value: int64(-6246583658587674878)}, "-6246583658587674878"},
		{"uint64", Field{Key: "u64", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "f", Value: 2.5}, "2.5"},
		{"bool", Field{Key: "b", Value: true}, "true"},
		{"error", Field{Key: "e", Value: errors.New("oops")}, "oops"},
		{"fallback", Field{Key: "x", Value: struct{ N int }{N: 7}}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("msg", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("field type %s not rendered, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	newAdapter := func() (*StdLoggerAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		return NewStdLoggerAdapter(log.New(&buf, "", 0)), &buf
	}

	t.Run("Info with fields", func(t *testing.T) {
		a, buf := newAdapter()
		a.Info("run complete", String("kernel", "fib"))
		out := buf.String()
		for _, want := range []string{"[INFO]", "run complete", "kernel=fib"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("Error includes cause", func(t *testing.T) {
		a, buf := newAdapter()
		a.Error("failed", errors.New("boom"), Int("rep", 2))
		out := buf.String()
		for _, want := range []string{"[ERROR]", "failed", "boom", "rep=2"} {
			if !strings.Contains(out, want) {
				t.Errorf("output should contain %q, got: %s", want, out)
			}
		}
	})

	t.Run("Debug", func(t *testing.T) {
		a, buf := newAdapter()
		a.Debug("trace", Int("line", 9))
		if !strings.Contains(buf.String(), "[DEBUG]") || !strings.Contains(buf.String(), "line=9") {
			t.Errorf("debug output wrong: %s", buf.String())
		}
	})

	t.Run("Printf and Println", func(t *testing.T) {
		a, buf := newAdapter()
		a.Printf("n=%d", 40)
		a.Println("x", "y")
		out := buf.String()
		if !strings.Contains(out, "n=40") || !strings.Contains(out, "x y") {
			t.Errorf("printf/println output wrong: %s", out)
		}
	})
}

func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
