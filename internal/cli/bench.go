package cli

import (
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/agbru/benchkit/internal/bench"
	"github.com/agbru/benchkit/internal/config"
	"github.com/agbru/benchkit/internal/format"
	"github.com/agbru/benchkit/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: selected kernels, workloads, repetitions, and environment details.
func PrintExecutionConfig(cfg config.AppConfig, specs []bench.Spec, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	for _, s := range specs {
		fmt.Fprintf(out, "Kernel %s%s%s with workload %s%s%s, %s%d%s repetitions.\n",
			ui.ColorBlue(), s.Name, ui.ColorReset(),
			ui.ColorYellow(), format.FormatNumberString(strconv.FormatInt(s.Workload, 10)), ui.ColorReset(),
			ui.ColorCyan(), s.Reps, ui.ColorReset())
	}
	fmt.Fprintf(out, "Timeout: %s%s%s.\n", ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	if cfg.Verify {
		fmt.Fprintf(out, "Verification: %senabled%s (exact reference cross-check).\n",
			ui.ColorGreen(), ui.ColorReset())
	}
}

// PrintExecutionMode displays the execution mode (single kernel vs comparison).
func PrintExecutionMode(specs []bench.Spec, out io.Writer) {
	var modeDesc string
	if len(specs) > 1 {
		modeDesc = "Sequential comparison of all kernels"
	} else {
		modeDesc = fmt.Sprintf("Single benchmark of the %s%s%s kernel",
			ui.ColorGreen(), specs[0].Name, ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
