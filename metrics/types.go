// SPDX-License-Identifier: MIT

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds all graphmat collectors.
type Registry struct {
	// Operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Model metrics
	GroundsetElements prometheus.Gauge
	Rank              prometheus.Gauge
	SequenceYields    *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry, created on first use.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initOperationMetrics()
	r.initModelMetrics()

	return r
}

// Gatherer exposes the underlying registry for exporters and tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
