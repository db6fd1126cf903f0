package reliefgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    estimateCounter   *prometheus.CounterVec
//	    estimateHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordEstimate(name string, duration time.Duration, err error) {
//	    p.estimateCounter.WithLabelValues(name).Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordEstimate is called after each weight estimation.
	// name is the algorithm name, duration is the total time taken,
	// err is nil if successful.
	RecordEstimate(name string, duration time.Duration, err error)

	// RecordIteration is called after each completed pass of an
	// iterative estimator. delta is the largest absolute weight change
	// of the pass.
	RecordIteration(iteration int, delta float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEstimate(string, time.Duration, error) {}
func (NoopMetricsCollector) RecordIteration(int, float64)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EstimateCount      atomic.Int64
	EstimateErrors     atomic.Int64
	EstimateTotalNanos atomic.Int64
	IterationCount     atomic.Int64
}

// RecordEstimate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEstimate(name string, duration time.Duration, err error) {
	b.EstimateCount.Add(1)
	b.EstimateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EstimateErrors.Add(1)
	}
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(iteration int, delta float64) {
	b.IterationCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EstimateCount:    b.EstimateCount.Load(),
		EstimateErrors:   b.EstimateErrors.Load(),
		EstimateAvgNanos: b.getAvgEstimateNanos(),
		IterationCount:   b.IterationCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgEstimateNanos() int64 {
	count := b.EstimateCount.Load()
	if count == 0 {
		return 0
	}
	return b.EstimateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EstimateCount    int64
	EstimateErrors   int64
	EstimateAvgNanos int64
	IterationCount   int64
}
