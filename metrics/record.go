// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordOperation records one operation with its outcome and duration.
func (r *Registry) RecordOperation(operation string, err error, duration time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Time runs fn and records it under operation.
func (r *Registry) Time(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.RecordOperation(operation, err, time.Since(start))

	return err
}

// SetModel publishes the size and rank of the current model.
func (r *Registry) SetModel(elements, rank int) {
	r.GroundsetElements.Set(float64(elements))
	r.Rank.Set(float64(rank))
}

// AddYields counts n models produced by the named enumeration.
func (r *Registry) AddYields(sequence string, n int) {
	r.SequenceYields.WithLabelValues(sequence).Add(float64(n))
}

// WriteTextfile writes every collector to path in the text exposition
// format. The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
