package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/format"
	"github.com/agbru/benchkit/internal/progress"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements bench.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ bench.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends ProgressMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, _ io.Writer) {
	defer wg.Done()

	if numKernels == 0 {
		for range progressChan {
		}
		return
	}

	tracker := format.NewProgressWithETA(numKernels)
	for update := range progressChan {
		avg, eta := tracker.UpdateWithETA(update.KernelIndex, update.Value)
		t.ref.Send(ProgressMsg{
			KernelIndex:     update.KernelIndex,
			Value:           update.Value,
			AverageProgress: avg,
			ETA:             eta,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}
