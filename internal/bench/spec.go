package bench

import (
	"sort"

	"github.com/agbru/benchkit/internal/config"
	"github.com/agbru/benchkit/internal/kernel"
)

// Spec describes one kernel to benchmark: which kernel to construct, the
// workload to configure it with, and how many repetitions to time.
type Spec struct {
	// Name is the kernel identifier.
	Name string
	// New constructs a fresh kernel instance. Each repetition gets its own
	// instance so state never leaks between timed runs.
	New kernel.Constructor
	// Workload is passed to Kernel.Configure before each repetition.
	Workload int64
	// Reps is the number of timed repetitions.
	Reps int
}

// workloadFor maps a kernel name to its configured workload value.
func workloadFor(name string, cfg config.AppConfig) int64 {
	if name == kernel.CounterName {
		return cfg.Limit
	}
	return cfg.N
}

// SpecsFor resolves the configured kernel selection into concrete benchmark
// specs. The selection "all" expands to every registered kernel in name
// order so runs are deterministic.
func SpecsFor(cfg config.AppConfig, factory kernel.Factory) ([]Spec, error) {
	var names []string
	if cfg.Kernel == "all" {
		names = factory.List()
		sort.Strings(names)
	} else {
		names = []string{cfg.Kernel}
	}

	specs := make([]Spec, 0, len(names))
	for _, name := range names {
		ctor, err := factory.Get(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, Spec{
			Name:     name,
			New:      ctor,
			Workload: workloadFor(name, cfg),
			Reps:     cfg.Reps,
		})
	}
	return specs, nil
}
