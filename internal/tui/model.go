// Package tui implements the interactive dashboard for watching benchmark
// runs: live per-kernel progress, runtime and system stats, and the final
// comparison once all kernels complete.
package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/config"
	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/format"
	"github.com/agbru/benchkit/internal/sysmon"
)

// progressBarWidth is the width of the per-kernel progress bars.
const progressBarWidth = 30

// Model is the root bubbletea model for the dashboard.
type Model struct {
	keymap  KeyMap
	specs   []bench.Spec
	cfg     config.AppConfig
	runner  *bench.Runner
	version string

	parentCtx  context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	ref        *programRef
	generation uint64

	startTime time.Time
	width     int
	height    int
	paused    bool
	done      bool
	exitCode  int

	kernelProgress []float64
	avgProgress    float64
	eta            time.Duration
	results        []bench.Result
	memStats       MemStatsMsg
	sysStats       SysStatsMsg
}

// NewModel creates a new dashboard model.
func NewModel(parentCtx context.Context, specs []bench.Spec, cfg config.AppConfig, runner *bench.Runner, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		keymap:         DefaultKeyMap(),
		specs:          specs,
		cfg:            cfg,
		runner:         runner,
		version:        version,
		parentCtx:      parentCtx,
		ctx:            ctx,
		cancel:         cancel,
		ref:            &programRef{},
		startTime:      time.Now(),
		exitCode:       apperrors.ExitSuccess,
		kernelProgress: make([]float64, len(specs)),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startBenchCmd(m.ref, m.ctx, m.specs, m.runner, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProgressMsg:
		if !m.paused {
			if msg.KernelIndex >= 0 && msg.KernelIndex < len(m.kernelProgress) {
				m.kernelProgress[msg.KernelIndex] = msg.Value
			}
			m.avgProgress = msg.AverageProgress
			m.eta = msg.ETA
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case BenchCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.done = true
		m.results = msg.Results
		m.exitCode = msg.ExitCode
		for i := range m.kernelProgress {
			m.kernelProgress[i] = 1.0
		}
		m.avgProgress = 1.0
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.memStats = msg
		return m, nil

	case SysStatsMsg:
		m.sysStats = msg
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		if m.cancel != nil {
			m.cancel()
		}

		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.startTime = time.Now()
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		m.results = nil
		m.kernelProgress = make([]float64, len(m.specs))
		m.avgProgress = 0
		m.eta = 0

		return m, tea.Batch(
			tickCmd(),
			startBenchCmd(m.ref, m.ctx, m.specs, m.runner, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}

	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := panelStyle.Width(m.width - 2).Render(m.renderBody())
	stats := m.renderStats()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, stats, footer)
}

func (m Model) renderHeader() string {
	elapsed := time.Since(m.startTime).Round(time.Second)
	title := titleStyle.Render("benchkit")
	version := versionStyle.Render(m.version)

	var status string
	switch {
	case m.done:
		status = statusDoneStyle.Render("DONE")
	case m.paused:
		status = statusPauseStyle.Render("PAUSED")
	default:
		status = statusRunStyle.Render("RUNNING")
	}

	return headerStyle.Render(fmt.Sprintf("%s %s  %s  elapsed %s", title, version, status, elapsed))
}

func (m Model) renderBody() string {
	lines := make([]string, 0, len(m.specs)+1)
	for i, spec := range m.specs {
		lines = append(lines, m.renderKernelLine(i, spec))
	}
	if !m.done {
		lines = append(lines, labelStyle.Render(
			fmt.Sprintf("overall %s", format.FormatProgressBarWithETA(m.avgProgress, m.eta, progressBarWidth))))
	}
	return strings.Join(lines, "\n")
}

// renderKernelLine shows either the live progress bar or the final result
// for one kernel.
func (m Model) renderKernelLine(i int, spec bench.Spec) string {
	name := kernelStyle.Render(fmt.Sprintf("%-8s", spec.Name))

	if m.done && i < len(m.results) {
		res := m.results[i]
		if res.Err != nil {
			return fmt.Sprintf("%s %s", name, errorStyle.Render(fmt.Sprintf("failed: %v", res.Err)))
		}
		return fmt.Sprintf("%s %s  best %s  %s", name,
			valueStyle.Render(fmt.Sprintf("value=%d", res.Value)),
			format.FormatExecutionDuration(res.Best),
			successStyle.Render("ok"))
	}

	return fmt.Sprintf("%s %s", name,
		progressStyle.Render(format.ProgressBar(m.kernelProgress[i], progressBarWidth)))
}

func (m Model) renderStats() string {
	return labelStyle.Render(fmt.Sprintf(" heap %s | goroutines %d | gc %d | %s",
		format.FormatBytes(m.memStats.Alloc),
		m.memStats.NumGoroutine,
		m.memStats.NumGC,
		sysmon.Stats{CPUPercent: m.sysStats.CPUPercent, MemPercent: m.sysStats.MemPercent}))
}

func (m Model) renderFooter() string {
	parts := []string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("p") + footerDescStyle.Render(" pause"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" restart"),
	}
	return " " + strings.Join(parts, "  ")
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, specs []bench.Spec, cfg config.AppConfig, runner *bench.Runner, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, specs, cfg, runner, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startBenchCmd returns a tea.Cmd that launches the benchmark run.
func startBenchCmd(ref *programRef, ctx context.Context, specs []bench.Spec, runner *bench.Runner, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		results := runner.Execute(ctx, specs, reporter, io.Discard)

		exitCode := apperrors.ExitSuccess
		for _, res := range results {
			if res.Err != nil {
				exitCode = apperrors.HandleBenchError(res.Err, 0, io.Discard, nil)
				break
			}
		}

		return BenchCompleteMsg{Results: results, ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
