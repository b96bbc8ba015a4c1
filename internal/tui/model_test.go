package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/config"
	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/kernel"
	"github.com/agbru/benchkit/internal/logging"
	"github.com/agbru/benchkit/internal/metrics"
	"github.com/agbru/benchkit/internal/progress"
)

func testSpecs() []bench.Spec {
	return []bench.Spec{
		{Name: "counter", New: kernel.NewCounterKernel, Workload: 100, Reps: 1},
		{Name: "fib", New: kernel.NewFibonacciKernel, Workload: 10, Reps: 1},
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	runner := bench.NewRunner(logging.NewLogger(io.Discard, "test"), metrics.NewBenchCollector())
	m := NewModel(context.Background(), testSpecs(), config.AppConfig{}, runner, "test")
	t.Cleanup(m.cancel)
	return m
}

func TestNewModel(t *testing.T) {
	m := testModel(t)

	if m.done {
		t.Error("new model should not be done")
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitSuccess)
	}
	if len(m.kernelProgress) != 2 {
		t.Errorf("kernelProgress length = %d, want 2", len(m.kernelProgress))
	}
	if m.Init() == nil {
		t.Error("Init should return startup commands")
	}
}

func TestModel_ProgressMsg(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(ProgressMsg{KernelIndex: 1, Value: 0.5, AverageProgress: 0.25, ETA: time.Second})
	got := updated.(Model)

	if got.kernelProgress[1] != 0.5 {
		t.Errorf("kernelProgress[1] = %f, want 0.5", got.kernelProgress[1])
	}
	if got.avgProgress != 0.25 {
		t.Errorf("avgProgress = %f, want 0.25", got.avgProgress)
	}
}

func TestModel_ProgressMsg_IgnoredWhenPaused(t *testing.T) {
	m := testModel(t)
	m.paused = true

	updated, _ := m.Update(ProgressMsg{KernelIndex: 0, Value: 0.9, AverageProgress: 0.9})
	got := updated.(Model)

	if got.kernelProgress[0] != 0 {
		t.Errorf("paused model should not record progress, got %f", got.kernelProgress[0])
	}
}

func TestModel_BenchCompleteMsg(t *testing.T) {
	m := testModel(t)

	results := []bench.Result{
		{Name: "counter", Value: 100},
		{Name: "fib", Value: 55, Err: errors.New("boom")},
	}
	updated, _ := m.Update(BenchCompleteMsg{Results: results, ExitCode: apperrors.ExitErrorGeneric, Generation: 0})
	got := updated.(Model)

	if !got.done {
		t.Error("model should be done after completion")
	}
	if got.exitCode != apperrors.ExitErrorGeneric {
		t.Errorf("exitCode = %d, want %d", got.exitCode, apperrors.ExitErrorGeneric)
	}
	if got.avgProgress != 1.0 {
		t.Errorf("avgProgress = %f, want 1.0 after completion", got.avgProgress)
	}
}

func TestModel_StaleGenerationIgnored(t *testing.T) {
	m := testModel(t)
	m.generation = 2

	updated, _ := m.Update(BenchCompleteMsg{ExitCode: apperrors.ExitErrorGeneric, Generation: 1})
	got := updated.(Model)

	if got.done || got.exitCode != apperrors.ExitSuccess {
		t.Error("stale completion message should be ignored")
	}

	updated, cmd := m.Update(ContextCancelledMsg{Generation: 1})
	got = updated.(Model)
	if got.done || cmd != nil {
		t.Error("stale cancellation message should be ignored")
	}
}

func TestModel_PauseToggle(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	got := updated.(Model)
	if !got.paused {
		t.Error("p should pause the display")
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	got = updated.(Model)
	if got.paused {
		t.Error("second p should resume the display")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
}

func TestModel_ResetKey(t *testing.T) {
	m := testModel(t)
	m.done = true
	m.results = []bench.Result{{Name: "counter", Value: 100}}
	m.avgProgress = 1.0

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	got := updated.(Model)
	t.Cleanup(got.cancel)

	if got.done {
		t.Error("reset should clear the done flag")
	}
	if got.generation != 1 {
		t.Errorf("generation = %d, want 1 after reset", got.generation)
	}
	if got.results != nil || got.avgProgress != 0 {
		t.Error("reset should clear prior results and progress")
	}
	if cmd == nil {
		t.Error("reset should restart the run commands")
	}
}

func TestModel_View(t *testing.T) {
	m := testModel(t)

	if got := m.View(); got != "Initializing..." {
		t.Errorf("zero-size view = %q, want initializing placeholder", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := updated.(Model)

	view := got.View()
	for _, want := range []string{"benchkit", "counter", "fib", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}
}

func TestTUIProgressReporter(t *testing.T) {
	// Without a program attached, Send is a no-op; the reporter must still
	// drain the channel and release the wait group.
	reporter := &TUIProgressReporter{ref: &programRef{}}

	var wg sync.WaitGroup
	wg.Add(1)

	ch := make(chan progress.Update, 2)
	ch <- progress.Update{KernelIndex: 0, Value: 0.5}
	ch <- progress.Update{KernelIndex: 1, Value: 1.0}
	close(ch)

	reporter.DisplayProgress(&wg, ch, 2, io.Discard)
	wg.Wait()
}
