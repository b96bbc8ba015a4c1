package bench

import (
	"context"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/benchkit/internal/errors"
	"github.com/agbru/benchkit/internal/kernel"
	"github.com/agbru/benchkit/internal/logging"
	"github.com/agbru/benchkit/internal/metrics"
	"github.com/agbru/benchkit/internal/progress"
	"github.com/agbru/benchkit/internal/reference"
)

// tracerName identifies the runner's tracer with the OpenTelemetry provider.
const tracerName = "github.com/agbru/benchkit/internal/bench"

// Runner executes benchmark specs and collects timing results.
type Runner struct {
	logger    logging.Logger
	collector *metrics.BenchCollector
	tracer    trace.Tracer
	verify    bool
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithVerify enables cross-checking each kernel value against an exact
// reference computation.
func WithVerify(verify bool) RunnerOption {
	return func(r *Runner) { r.verify = verify }
}

// WithTracer overrides the default OpenTelemetry tracer.
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) { r.tracer = t }
}

// NewRunner creates a Runner. The collector may not be nil; pass a fresh
// one when metrics exposition is disabled.
func NewRunner(logger logging.Logger, collector *metrics.BenchCollector, opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:    logger,
		collector: collector,
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Execute runs all specs in order and returns one Result per spec.
//
// Kernels run sequentially: overlapping CPU-bound kernels would contend for
// cores and corrupt each other's timings. Progress display runs on its own
// goroutine, fed through a buffered channel that is closed once all specs
// have finished.
func (r *Runner) Execute(ctx context.Context, specs []Spec, reporter ProgressReporter, out io.Writer) []Result {
	results := make([]Result, len(specs))
	progressChan := make(chan progress.Update, len(specs)*ProgressBufferMultiplier)
	observer := progress.NewChannelObserver(progressChan)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(specs), out)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	for i, spec := range specs {
		idx, s := i, spec
		g.Go(func() error {
			results[idx] = r.runSpec(ctx, s, idx, observer)
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runSpec times all repetitions of one spec. A fresh kernel instance is
// constructed per repetition so accumulated state never spans timed runs.
// Cancellation is checked between repetitions; the kernels themselves have
// no suspension points.
func (r *Runner) runSpec(ctx context.Context, spec Spec, idx int, observer progress.Observer) Result {
	res := Result{
		Name:      spec.Name,
		Workload:  spec.Workload,
		Reps:      spec.Reps,
		Durations: make([]time.Duration, 0, spec.Reps),
	}

	r.logger.Debug("starting kernel",
		logging.String("kernel", spec.Name),
		logging.Int64("workload", spec.Workload),
		logging.Int("reps", spec.Reps))

	for rep := 0; rep < spec.Reps; rep++ {
		if err := ctx.Err(); err != nil {
			res.Err = apperrors.BenchError{Cause: err}
			return res
		}

		k := spec.New()
		k.Configure(spec.Workload)

		_, span := r.tracer.Start(ctx, "kernel.run", trace.WithAttributes(
			attribute.String("kernel", spec.Name),
			attribute.Int64("workload", spec.Workload),
			attribute.Int("rep", rep),
		))
		start := time.Now()
		value := k.Run()
		elapsed := time.Since(start)
		span.End()

		r.collector.ObserveRun(spec.Name, elapsed, spec.Workload)
		res.Value = value
		res.Durations = append(res.Durations, elapsed)

		observer.Notify(progress.Update{
			KernelIndex: idx,
			Value:       float64(rep+1) / float64(spec.Reps),
		})
	}

	res.Best, res.Mean = summarize(res.Durations)

	if r.verify && res.Err == nil && len(res.Durations) > 0 {
		if err := verifyValue(spec, res.Value); err != nil {
			res.Err = err
			return res
		}
	}

	r.logger.Info("kernel complete",
		logging.String("kernel", spec.Name),
		logging.Int64("value", res.Value),
		logging.Dur("best", res.Best),
		logging.Dur("mean", res.Mean))

	return res
}

// summarize reduces per-repetition timings to best and mean values.
func summarize(durations []time.Duration) (best, mean time.Duration) {
	if len(durations) == 0 {
		return 0, 0
	}
	var total time.Duration
	best = durations[0]
	for _, d := range durations {
		total += d
		if d < best {
			best = d
		}
	}
	return best, total / time.Duration(len(durations))
}

// verifyValue cross-checks a kernel result against its exact expected value.
// The counter must equal its limit (zero for non-positive limits); the
// Fibonacci kernel is checked against an arbitrary-precision oracle reduced
// to the kernel's fixed-width result domain.
func verifyValue(spec Spec, got int64) error {
	var want int64
	switch spec.Name {
	case kernel.CounterName:
		if spec.Workload > 0 {
			want = spec.Workload
		}
	case kernel.FibonacciName:
		want = reference.FibInt64(spec.Workload)
	default:
		return nil
	}
	if got != want {
		return apperrors.MismatchError{Kernel: spec.Name, Got: got, Want: want}
	}
	return nil
}
