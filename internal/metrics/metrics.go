// Package metrics exposes Prometheus metrics for simulated games.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wordle"

// Recorder owns a registry and the collectors the simulator updates. It is
// safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	Games   *prometheus.CounterVec
	Guesses *prometheus.HistogramVec
	Runs    *prometheus.CounterVec
}

// New creates a Recorder with its own registry, so tests and multiple
// servers do not collide on the global one.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_total",
			Help:      "Simulated games by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		Guesses: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "guesses",
			Help:      "Guesses used per simulated game.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}, []string{"strategy"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_runs_total",
			Help:      "Completed simulation runs by strategy.",
		}, []string{"strategy"}),
	}
	r.registry.MustRegister(r.Games, r.Guesses, r.Runs)
	return r
}

// ObserveGame records one finished game.
func (r *Recorder) ObserveGame(strategy, outcome string, guesses int) {
	if r == nil {
		return
	}
	r.Games.WithLabelValues(strategy, outcome).Inc()
	r.Guesses.WithLabelValues(strategy).Observe(float64(guesses))
}

// ObserveRun records one completed simulation run.
func (r *Recorder) ObserveRun(strategy string) {
	if r == nil {
		return
	}
	r.Runs.WithLabelValues(strategy).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
