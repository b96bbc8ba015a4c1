// Package server provides an optional HTTP endpoint exposing Prometheus
// metrics and a health check while a benchmark run is in progress.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/benchkit/internal/logging"
	"github.com/agbru/benchkit/internal/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves /metrics and /healthz on a dedicated listener.
type Server struct {
	addr        string
	metrics     *metrics.BenchCollector
	logger      logging.Logger
	promHandler http.Handler
	httpServer  *http.Server
}

// New creates a Server exposing the given collector on addr.
func New(addr string, collector *metrics.BenchCollector, logger logging.Logger) *Server {
	s := &Server{
		addr:    addr,
		metrics: collector,
		logger:  logger,
		promHandler: promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(s.handleMetrics))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealth))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully. It returns nil on clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown failed", err)
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

// metricsMiddleware tracks request counts and in-flight requests around the
// next handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition format. Only GET is allowed.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		if s.logger != nil {
			s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.promHandler.ServeHTTP(w, r)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
