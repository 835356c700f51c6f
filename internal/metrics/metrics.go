// Package metrics exposes Prometheus counters for generation activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "energy_synth_generation_runs_total",
		Help: "Completed generation runs.",
	})

	GenerationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "energy_synth_generation_failures_total",
		Help: "Generation runs that failed.",
	})

	ObservationsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "energy_synth_observations_generated_total",
		Help: "Observations produced across all runs.",
	})

	GenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "energy_synth_generation_duration_seconds",
		Help:    "Wall-clock duration of generation runs.",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
	})
)
