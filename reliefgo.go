// Package reliefgo provides Relief-family feature weighting for Go.
//
// Supported estimators and surfaces include:
//
//   - ReliefF with three update modes: k-nearest, all-pairs diff, exponential rank decay
//   - IterativeRelief: weights feed back into the distance metric each pass
//   - SURF, SURF* and MultiSURF: distance-cutoff neighborhoods instead of fixed k
//   - Fluent immutable builders: ReliefF(), IterativeRelief(), SURF(), MultiSURF()
//   - Deterministic parallel estimation: bit-identical results at any worker count
//   - Feature selection on top of the weights via the selection package
//   - Opt-in structured logging (log/slog) and pluggable metrics collection
package reliefgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/estimator"
)

// Estimator runs a Relief-family engine with error translation, logging
// and metrics collection attached. Create one with New or through the
// fluent builders (ReliefF, IterativeRelief, SURF, SURFStar, MultiSURF).
//
// An Estimator is stateless between calls and safe for concurrent use.
type Estimator struct {
	inner   estimator.Estimator
	metrics MetricsCollector
	logger  *Logger
}

// New wraps a configured engine in a facade Estimator.
func New(inner estimator.Estimator, optFns ...Option) (*Estimator, error) {
	if inner == nil {
		return nil, ErrNilEstimator
	}

	opts := applyOptions(optFns)

	return &Estimator{
		inner:   inner,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// Name returns the wrapped engine's algorithm name.
func (e *Estimator) Name() string {
	return e.inner.Name()
}

// Estimate scores every feature of data against target and returns one
// weight per feature. Rows are instances, columns are features; target
// holds one class label per row. The input is deep-copied, so data and
// target may be reused or mutated after the call returns.
func (e *Estimator) Estimate(ctx context.Context, data [][]float64, target []int) ([]float64, error) {
	start := time.Now()

	ds, err := dataset.New(data, target)
	if err != nil {
		err = translateError(err)
		e.metrics.RecordEstimate(e.inner.Name(), time.Since(start), err)
		e.logger.LogEstimate(ctx, e.inner.Name(), len(data), 0, err)

		return nil, err
	}

	return e.estimate(ctx, ds, start)
}

// EstimateDataset scores every feature of a pre-built dataset. Use this
// to run several estimators over the same data without re-validating
// and re-copying it each time.
func (e *Estimator) EstimateDataset(ctx context.Context, ds *dataset.Dataset) ([]float64, error) {
	start := time.Now()

	if ds == nil {
		err := fmt.Errorf("%w: %w", ErrInvalidDataset, dataset.ErrNoData)
		e.metrics.RecordEstimate(e.inner.Name(), time.Since(start), err)
		e.logger.LogEstimate(ctx, e.inner.Name(), 0, 0, err)

		return nil, err
	}

	return e.estimate(ctx, ds, start)
}

func (e *Estimator) estimate(ctx context.Context, ds *dataset.Dataset, start time.Time) ([]float64, error) {
	w, err := e.inner.Estimate(ctx, ds)
	duration := time.Since(start)

	err = translateError(err)

	e.metrics.RecordEstimate(e.inner.Name(), duration, err)
	e.logger.LogEstimate(ctx, e.inner.Name(), ds.Len(), ds.Features(), err)

	if err != nil {
		return nil, err
	}

	return w, nil
}
