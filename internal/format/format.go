// Package format provides pure string-formatting helpers for durations,
// byte counts, rates, and progress bars. Functions here perform no I/O.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatRate renders an operations-per-second rate with a metric suffix,
// e.g. "476.2 Mops/s". Zero and negative rates render as "0 ops/s".
func FormatRate(opsPerSec float64) string {
	if opsPerSec <= 0 {
		return "0 ops/s"
	}
	switch {
	case opsPerSec >= 1e9:
		return fmt.Sprintf("%.1f Gops/s", opsPerSec/1e9)
	case opsPerSec >= 1e6:
		return fmt.Sprintf("%.1f Mops/s", opsPerSec/1e6)
	case opsPerSec >= 1e3:
		return fmt.Sprintf("%.1f Kops/s", opsPerSec/1e3)
	default:
		return fmt.Sprintf("%.1f ops/s", opsPerSec)
	}
}
