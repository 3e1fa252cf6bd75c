package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// Metrics holds the SSH server collectors.
type Metrics struct {
	registry       *prometheus.Registry
	SessionsTotal  prometheus.Counter
	SessionsActive prometheus.Gauge
	GamesFinished  *prometheus.CounterVec
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mines_ssh_sessions_total",
			Help: "SSH sessions started",
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mines_ssh_sessions_active",
			Help: "SSH sessions currently connected",
		}),
		GamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mines_games_finished_total",
				Help: "Finished games by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.SessionsTotal, m.SessionsActive, m.GamesFinished)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// GameFinished counts a game that ended in phase p.
func (m *Metrics) GameFinished(p minesweeper.Phase) {
	m.GamesFinished.WithLabelValues(p.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
