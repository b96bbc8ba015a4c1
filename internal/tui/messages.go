package tui

import (
	"time"

	"github.com/agbru/benchkit/internal/bench"
)

// ProgressMsg carries one aggregated progress update from the runner.
type ProgressMsg struct {
	KernelIndex     int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been closed.
type ProgressDoneMsg struct{}

// BenchCompleteMsg signals that the benchmark run has finished.
// Generation guards against stale messages after a restart.
type BenchCompleteMsg struct {
	Results    []bench.Result
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the run context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic refresh of the stats panels.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}
