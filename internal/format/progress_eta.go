package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// etaSmoothingFactor controls the exponential smoothing of the progress
	// rate. Lower values give smoother but slower-reacting ETA estimates.
	etaSmoothingFactor = 0.3
	// maxETA caps displayed ETA estimates so a near-zero rate does not
	// produce absurd values.
	maxETA = 24 * time.Hour
)

// ProgressState tracks the per-kernel progress fractions of a run and
// aggregates them into a single average. It is safe for concurrent use.
type ProgressState struct {
	mu         sync.Mutex
	progresses []float64
	numKernels int
}

// NewProgressState creates a ProgressState for the given number of kernels.
func NewProgressState(numKernels int) *ProgressState {
	if numKernels < 0 {
		numKernels = 0
	}
	return &ProgressState{
		progresses: make([]float64, numKernels),
		numKernels: numKernels,
	}
}

// Update records the progress fraction for one kernel. Out-of-range indexes
// are ignored and fractions are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index < 0 || index >= ps.numKernels {
		return
	}
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	ps.progresses[index] = value
}

// CalculateAverage returns the mean progress across all kernels.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numKernels == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps.progresses {
		sum += p
	}
	return sum / float64(ps.numKernels)
}

// ProgressWithETA extends ProgressState with an estimated time to completion
// derived from an exponentially smoothed progress rate.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64
}

// NewProgressWithETA creates a progress tracker with ETA estimation for the
// given number of kernels.
func NewProgressWithETA(numKernels int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numKernels),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records one kernel's progress and returns the new average
// progress along with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	p.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	if elapsed > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = etaSmoothingFactor*rate + (1-etaSmoothingFactor)*p.progressRate
		}
		p.lastUpdate = now
		p.lastProgress = avg
	}
	p.mu.Unlock()

	return avg, p.GetETA()
}

// GetETA returns the estimated time until completion, or 0 when no rate has
// been established yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()

	p.mu.Lock()
	rate := p.progressRate
	p.mu.Unlock()

	if rate <= 0 || avg >= 1 {
		return 0
	}
	eta := time.Duration((1 - avg) / rate * float64(time.Second))
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA estimate for display. Zero or negative estimates
// render as "calculating..." since no rate is known yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a textual progress bar of the given length using block
// characters. The fraction is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders a progress bar with percentage and ETA,
// e.g. "[█████░░░░░]  50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s",
		ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousand separators into a decimal number
// string, e.g. "100000000" becomes "100,000,000".
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(s[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
