//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/benchkit/internal/format"
	"github.com/agbru/benchkit/internal/progress"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// 200ms keeps terminal updates cheap next to the kernels being timed.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the DisplayProgress function to be decoupled from a specific
// spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with an aggregated progress bar and ETA
// while kernels are running. It consumes updates until progressChan is
// closed and signals completion through wg.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numKernels int, out io.Writer) {
	defer wg.Done()

	if numKernels == 0 {
		for range progressChan {
			// Nothing to display, just drain.
		}
		return
	}

	tracker := format.NewProgressWithETA(numKernels)
	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				sp.UpdateSuffix(fmt.Sprintf(" %s",
					format.FormatProgressBarWithETA(tracker.CalculateAverage(), 0, ProgressBarWidth)))
				return
			}
			tracker.UpdateWithETA(update.KernelIndex, update.Value)
		case <-ticker.C:
			sp.UpdateSuffix(fmt.Sprintf(" %s",
				format.FormatProgressBarWithETA(tracker.CalculateAverage(), tracker.GetETA(), ProgressBarWidth)))
		}
	}
}
