// Package multisurf implements the MultiSURF feature weight estimator.
//
// Where SURF applies one global distance cutoff, MultiSURF derives a
// cutoff per instance: the mean of the instance's distances to all
// other rows minus half their standard deviation. Rows below the cutoff
// are near; the half-deviation band under the mean is excluded, which
// adapts the neighborhood to each instance's local density.
package multisurf

import (
	"context"
	"math"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator"
	"github.com/hupe1980/reliefgo/neighbor"
)

// Compile-time check to ensure MultiSURF satisfies the estimator
// interface.
var _ estimator.Estimator = (*MultiSURF)(nil)

// Options contains configuration options for the MultiSURF estimator.
type Options struct {
	// FeatureType declares how per-feature differences are computed.
	// It is required and has no default; the zero value fails validation.
	FeatureType distance.FeatureType

	// Parallelism caps the number of worker goroutines. Values <= 0
	// select GOMAXPROCS.
	Parallelism int
}

// DefaultOptions contains the default configuration options for the
// MultiSURF estimator. FeatureType is required and has no default.
var DefaultOptions = Options{}

// MultiSURF estimates per-feature relevance weights using per-instance
// distance cutoffs.
type MultiSURF struct {
	opts Options
}

// New creates a new MultiSURF estimator.
// FeatureType is required and must be set at creation time.
func New(optFns ...func(o *Options)) (*MultiSURF, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.FeatureType.Validate(); err != nil {
		return nil, err
	}

	return &MultiSURF{opts: opts}, nil
}

func (*MultiSURF) Name() string { return "MultiSURF" }

// Estimate computes one relevance weight per feature.
//
// Weights are normalized by the instance count and lie in [-1, 1]. An
// instance whose distances have zero spread sees no near rows, so a
// dataset of identical rows yields the zero vector.
func (ms *MultiSURF) Estimate(ctx context.Context, ds *dataset.Dataset) (estimator.Weights, error) {
	n, m := ds.Len(), ds.Features()

	setup := func() (estimator.InstanceFunc, error) {
		scan, err := neighbor.NewScanner(ds, ms.opts.FeatureType, nil)
		if err != nil {
			return nil, err
		}
		diff := make([]float64, m)
		dists := make([]float64, n)
		var nearHits, nearMisses []neighbor.Neighbor

		return func(row int, acc estimator.Weights) error {
			scan.Distances(row, dists)
			cutoff := deadBandCutoff(dists, row)
			label := ds.Label(row)

			nearHits, nearMisses = nearHits[:0], nearMisses[:0]
			for r, d := range dists {
				if r == row || d >= cutoff {
					continue
				}
				if ds.Label(r) == label {
					nearHits = append(nearHits, neighbor.Neighbor{Row: r})
				} else {
					nearMisses = append(nearMisses, neighbor.Neighbor{Row: r})
				}
			}

			scan.AddMeanDiff(row, nearHits, diff, acc, -1)
			scan.AddMeanDiff(row, nearMisses, diff, acc, +1)
			return nil
		}, nil
	}

	w, err := estimator.Fold(ctx, n, m, ms.opts.Parallelism, setup)
	if err != nil {
		return nil, err
	}

	w.Scale(1 / float64(n))
	return w, nil
}

// deadBandCutoff returns the near cutoff for one instance: the mean of
// its distances to all other rows minus half their standard deviation.
func deadBandCutoff(dists []float64, row int) float64 {
	count := float64(len(dists) - 1)

	var sum float64
	for r, d := range dists {
		if r == row {
			continue
		}
		sum += d
	}
	mean := sum / count

	var sq float64
	for r, d := range dists {
		if r == row {
			continue
		}
		dev := d - mean
		sq += dev * dev
	}

	return mean - math.Sqrt(sq/count)/2
}
