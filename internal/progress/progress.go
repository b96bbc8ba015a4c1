// Package progress defines the update type flowing from the benchmark
// driver to whichever frontend is displaying it (CLI spinner or TUI).
package progress

// Update reports the fractional completion of one kernel's benchmark.
type Update struct {
	// KernelIndex identifies which kernel the update belongs to, matching
	// the order of the executed specs.
	KernelIndex int
	// Value is the completion fraction, 0.0 to 1.0.
	Value float64
}

// Observer consumes progress updates.
type Observer interface {
	Notify(Update)
}

// ChannelObserver forwards updates onto a channel without blocking the
// benchmark loop: if the consumer lags behind, updates are dropped rather
// than letting display latency leak into kernel timings.
type ChannelObserver struct {
	ch chan<- Update
}

// NewChannelObserver creates an observer writing to ch.
func NewChannelObserver(ch chan<- Update) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Notify sends the update if the channel has room, dropping it otherwise.
func (o *ChannelObserver) Notify(u Update) {
	select {
	case o.ch <- u:
	default:
	}
}

// NullObserver discards every update.
type NullObserver struct{}

// Notify discards the update.
func (NullObserver) Notify(Update) {}
