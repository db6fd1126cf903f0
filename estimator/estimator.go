// Package estimator provides the interface and shared plumbing for
// Relief-family feature-weight estimators.
package estimator

import (
	"context"

	"github.com/hupe1980/reliefgo/dataset"
)

// Estimator scores every feature of a dataset by how consistently it
// separates instances with different labels from instances with the same
// label among their neighbors.
type Estimator interface {
	// Name returns the algorithm name for logging and metrics.
	Name() string

	// Estimate computes one weight per feature. The returned vector is
	// exclusively owned by the caller; estimators keep no state between
	// calls.
	Estimate(ctx context.Context, ds *dataset.Dataset) (Weights, error)
}
