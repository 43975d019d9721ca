// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initOperationMetrics() {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmat_operations_total",
			Help: "Total number of matroid operations",
		},
		[]string{"operation", "status"}, // ok, error
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphmat_operation_duration_seconds",
			Help:    "Matroid operation latency in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"operation"},
	)
}

func (r *Registry) initModelMetrics() {
	r.GroundsetElements = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmat_groundset_elements",
			Help: "Number of elements in the ground set of the loaded model",
		},
	)

	r.Rank = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmat_rank",
			Help: "Rank of the loaded model",
		},
	)

	r.SequenceYields = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmat_sequence_models_total",
			Help: "Models produced by extension and coextension enumerations",
		},
		[]string{"sequence"},
	)
}
