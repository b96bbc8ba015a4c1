package config

import "runtime"

// Repetition resolution chain (highest priority first):
//   1. CLI flag (-reps)
//   2. Environment variable (BENCHKIT_REPS)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveReps fills in the repetition count when it is left at its
// zero default, based on the host CPU count. User-specified values are
// preserved unchanged.
func ApplyAdaptiveReps(cfg AppConfig) AppConfig {
	if cfg.Reps == 0 {
		cfg.Reps = DefaultRepsForCPU(runtime.NumCPU())
	}
	return cfg
}

// DefaultRepsForCPU provides a heuristic repetition count for a host with
// the given number of CPUs. More cores usually means a desktop or server
// class machine where extra repetitions are cheap and reduce timing noise.
func DefaultRepsForCPU(numCPU int) int {
	switch {
	case numCPU <= 1:
		return 3
	case numCPU <= 4:
		return 5
	case numCPU <= 16:
		return 7
	default:
		return 10
	}
}
