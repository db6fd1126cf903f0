// Package surf implements the SURF and SURF* feature weight estimators.
//
// SURF replaces ReliefF's fixed neighbor count with a distance cutoff:
// the mean distance over all instance pairs. Rows closer to the query
// than the cutoff form its neighborhood; near misses add their mean
// per-feature differences, near hits subtract them. SURF* additionally
// scores the far zone with inverted signs, recovering signal from the
// informative extremes on interaction problems.
package surf

import (
	"context"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator"
	"github.com/hupe1980/reliefgo/neighbor"
)

// Compile-time check to ensure SURF satisfies the estimator interface.
var _ estimator.Estimator = (*SURF)(nil)

// Options contains configuration options for the SURF estimator.
type Options struct {
	// FeatureType declares how per-feature differences are computed.
	// It is required and has no default; the zero value fails validation.
	FeatureType distance.FeatureType

	// Star additionally scores the far zone with inverted signs (SURF*).
	Star bool

	// Parallelism caps the number of worker goroutines. Values <= 0
	// select GOMAXPROCS.
	Parallelism int
}

// DefaultOptions contains the default configuration options for the
// SURF estimator. FeatureType is required and has no default.
var DefaultOptions = Options{}

// SURF estimates per-feature relevance weights using a global distance
// cutoff instead of a fixed neighbor count.
type SURF struct {
	opts Options
}

// New creates a new SURF estimator.
// FeatureType is required and must be set at creation time.
func New(optFns ...func(o *Options)) (*SURF, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.FeatureType.Validate(); err != nil {
		return nil, err
	}

	return &SURF{opts: opts}, nil
}

func (s *SURF) Name() string {
	if s.opts.Star {
		return "SURFStar"
	}
	return "SURF"
}

// Estimate computes one relevance weight per feature.
//
// Weights are normalized by the instance count: each lies in [-1, 1],
// or [-2, 2] with Star enabled since both zones contribute. A dataset
// whose rows are all identical yields the zero vector, as no row falls
// strictly below the cutoff.
func (s *SURF) Estimate(ctx context.Context, ds *dataset.Dataset) (estimator.Weights, error) {
	n, m := ds.Len(), ds.Features()

	cutoff, err := s.cutoff(ctx, ds)
	if err != nil {
		return nil, err
	}

	setup := func() (estimator.InstanceFunc, error) {
		scan, err := neighbor.NewScanner(ds, s.opts.FeatureType, nil)
		if err != nil {
			return nil, err
		}
		diff := make([]float64, m)
		dists := make([]float64, n)
		var nearHits, nearMisses, farHits, farMisses []neighbor.Neighbor

		return func(row int, acc estimator.Weights) error {
			scan.Distances(row, dists)
			label := ds.Label(row)

			nearHits, nearMisses = nearHits[:0], nearMisses[:0]
			farHits, farMisses = farHits[:0], farMisses[:0]

			for r, d := range dists {
				if r == row {
					continue
				}
				hit := ds.Label(r) == label
				switch {
				case d < cutoff:
					if hit {
						nearHits = append(nearHits, neighbor.Neighbor{Row: r})
					} else {
						nearMisses = append(nearMisses, neighbor.Neighbor{Row: r})
					}
				case s.opts.Star && d > cutoff:
					if hit {
						farHits = append(farHits, neighbor.Neighbor{Row: r})
					} else {
						farMisses = append(farMisses, neighbor.Neighbor{Row: r})
					}
				}
			}

			scan.AddMeanDiff(row, nearHits, diff, acc, -1)
			scan.AddMeanDiff(row, nearMisses, diff, acc, +1)
			if s.opts.Star {
				scan.AddMeanDiff(row, farHits, diff, acc, +1)
				scan.AddMeanDiff(row, farMisses, diff, acc, -1)
			}
			return nil
		}, nil
	}

	w, err := estimator.Fold(ctx, n, m, s.opts.Parallelism, setup)
	if err != nil {
		return nil, err
	}

	w.Scale(1 / float64(n))
	return w, nil
}

// cutoff computes the mean aggregate distance over all ordered instance
// pairs under uniform weights.
func (s *SURF) cutoff(ctx context.Context, ds *dataset.Dataset) (float64, error) {
	n := ds.Len()

	setup := func() (estimator.InstanceFunc, error) {
		scan, err := neighbor.NewScanner(ds, s.opts.FeatureType, nil)
		if err != nil {
			return nil, err
		}
		dists := make([]float64, n)

		return func(row int, acc estimator.Weights) error {
			scan.Distances(row, dists)
			var sum float64
			for _, d := range dists {
				sum += d
			}
			acc[0] += sum
			return nil
		}, nil
	}

	total, err := estimator.Fold(ctx, n, 1, s.opts.Parallelism, setup)
	if err != nil {
		return 0, err
	}

	return total[0] / (float64(n) * float64(n-1)), nil
}
