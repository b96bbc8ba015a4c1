// Package metrics exposes Prometheus instrumentation and runtime memory
// snapshots for benchmark runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Namespace prefixes all benchmark metrics.
const Namespace = "benchkit"

// BenchCollector bundles the Prometheus metrics recorded during a run.
// Each collector owns its registry so tests can create instances freely
// without hitting duplicate-registration panics.
type BenchCollector struct {
	registry       *prometheus.Registry
	runsTotal      *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	iterations     *prometheus.CounterVec
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
}

// NewBenchCollector creates a collector with its own registry, pre-populated
// with the Go runtime and process collectors.
func NewBenchCollector() *BenchCollector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &BenchCollector{
		registry: reg,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Number of completed kernel runs.",
		}, []string{"kernel"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of individual kernel runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"kernel"}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "iterations_total",
			Help:      "Total workload units executed per kernel.",
		}, []string{"kernel"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_requests",
			Help:      "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "requests_total",
			Help:      "Total HTTP requests served.",
		}),
	}
	reg.MustRegister(c.runsTotal, c.runDuration, c.iterations, c.activeRequests, c.requestsTotal)
	return c
}

// Registry returns the collector's Prometheus registry for exposition.
func (c *BenchCollector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveRun records one completed kernel run.
func (c *BenchCollector) ObserveRun(kernel string, d time.Duration, iterations int64) {
	c.runsTotal.WithLabelValues(kernel).Inc()
	c.runDuration.WithLabelValues(kernel).Observe(d.Seconds())
	if iterations > 0 {
		c.iterations.WithLabelValues(kernel).Add(float64(iterations))
	}
}

// IncrementActiveRequests increments the in-flight request gauge.
func (c *BenchCollector) IncrementActiveRequests() {
	c.activeRequests.Inc()
}

// DecrementActiveRequests decrements the in-flight request gauge.
func (c *BenchCollector) DecrementActiveRequests() {
	c.activeRequests.Dec()
}

// CountRequest increments the served-request counter.
func (c *BenchCollector) CountRequest() {
	c.requestsTotal.Inc()
}
