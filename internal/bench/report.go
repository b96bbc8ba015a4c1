package bench

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// ResultSummary is the serializable projection of a Result for reports.
type ResultSummary struct {
	Kernel    string  `json:"kernel" yaml:"kernel"`
	Workload  int64   `json:"workload" yaml:"workload"`
	Reps      int     `json:"reps" yaml:"reps"`
	Value     int64   `json:"value" yaml:"value"`
	BestNs    int64   `json:"best_ns" yaml:"best_ns"`
	MeanNs    int64   `json:"mean_ns" yaml:"mean_ns"`
	OpsPerSec float64 `json:"ops_per_sec" yaml:"ops_per_sec"`
	Error     string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the full run report, suitable for JSON or YAML export and for
// correlating runs across machines and languages.
type Report struct {
	SessionID string          `json:"session_id" yaml:"session_id"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	GoVersion string          `json:"go_version" yaml:"go_version"`
	NumCPU    int             `json:"num_cpu" yaml:"num_cpu"`
	Results   []ResultSummary `json:"results" yaml:"results"`
}

// NewReport assembles a Report from benchmark results, stamping it with a
// unique session id and host facts.
func NewReport(results []Result) Report {
	summaries := make([]ResultSummary, 0, len(results))
	for _, r := range results {
		s := ResultSummary{
			Kernel:    r.Name,
			Workload:  r.Workload,
			Reps:      r.Reps,
			Value:     r.Value,
			BestNs:    r.Best.Nanoseconds(),
			MeanNs:    r.Mean.Nanoseconds(),
			OpsPerSec: r.OpsPerSec(),
		}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		summaries = append(summaries, s)
	}
	return Report{
		SessionID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Results:   summaries,
	}
}
