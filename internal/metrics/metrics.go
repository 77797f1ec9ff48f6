// Package metrics counts calculator activity on a private prometheus registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tipsplit/internal/calculator"
)

const namespace = "tipcalc"

// Metrics holds the collectors for one process.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	resets       prometheus.Counter
	tipRate      prometheus.Histogram
}

// New registers the tipcalc collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Splits computed, by validity.",
		}, []string{"result"}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Times the form was reset.",
		}),
		tipRate: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tip_rate",
			Help:      "Effective tip rate of valid splits.",
			Buckets:   []float64{0, 0.05, 0.10, 0.15, 0.20, 0.25, 0.50, 1},
		}),
	}
	m.registry.MustRegister(m.calculations, m.resets, m.tipRate)
	return m
}

// ObserveResult records one computed split.
func (m *Metrics) ObserveResult(res calculator.Result, rate float64) {
	if !res.Valid {
		m.calculations.WithLabelValues("invalid").Inc()
		return
	}
	m.calculations.WithLabelValues("valid").Inc()
	m.tipRate.Observe(rate)
}

// ObserveReset records a form reset.
func (m *Metrics) ObserveReset() {
	m.resets.Inc()
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Metrics endpoint listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop metrics server: %w", err)
		}
		return nil
	}
}
