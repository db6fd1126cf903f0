package relieff

import (
	"math"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/estimator"
	"github.com/hupe1980/reliefgo/neighbor"
)

// policySetup returns the per-worker setup for the selected mode. Each
// worker builds its own Scanner and scratch buffers; the exp_rank kernel
// is precomputed once and shared read-only.
func (r *ReliefF) policySetup(ds *dataset.Dataset) (func() (estimator.InstanceFunc, error), error) {
	n, m := ds.Len(), ds.Features()

	switch r.opts.Mode {
	case ModeKNearest:
		k := r.opts.K
		return func() (estimator.InstanceFunc, error) {
			scan, err := neighbor.NewScanner(ds, r.opts.FeatureType, nil)
			if err != nil {
				return nil, err
			}
			diff := make([]float64, m)

			return func(row int, acc estimator.Weights) error {
				hits, misses, err := scan.KNearest(row, k)
				if err != nil {
					return err
				}
				scan.AddMeanDiff(row, hits, diff, acc, -1)
				scan.AddMeanDiff(row, misses, diff, acc, +1)
				return nil
			}, nil
		}, nil

	case ModeDiff:
		return func() (estimator.InstanceFunc, error) {
			scan, err := neighbor.NewScanner(ds, r.opts.FeatureType, nil)
			if err != nil {
				return nil, err
			}
			diff := make([]float64, m)
			ranked := make([]neighbor.Neighbor, 0, n-1)

			return func(row int, acc estimator.Weights) error {
				ranked = scan.RankAll(row, ranked[:0])
				for _, nb := range ranked {
					scan.Diff(row, nb.Row, diff)
					sign := 1.0
					if nb.Hit {
						sign = -1.0
					}
					for j, d := range diff {
						acc[j] += sign * d
					}
				}
				return nil
			}, nil
		}, nil

	case ModeExpRank:
		kernel := expRankKernel(n-1, r.sigma(n))
		return func() (estimator.InstanceFunc, error) {
			scan, err := neighbor.NewScanner(ds, r.opts.FeatureType, nil)
			if err != nil {
				return nil, err
			}
			diff := make([]float64, m)
			ranked := make([]neighbor.Neighbor, 0, n-1)

			return func(row int, acc estimator.Weights) error {
				ranked = scan.RankAll(row, ranked[:0])

				var hitMass, missMass float64
				for i, nb := range ranked {
					if nb.Hit {
						hitMass += kernel[i]
					} else {
						missMass += kernel[i]
					}
				}

				for i, nb := range ranked {
					var f float64
					if nb.Hit {
						if hitMass == 0 {
							continue
						}
						f = -kernel[i] / hitMass
					} else {
						if missMass == 0 {
							continue
						}
						f = kernel[i] / missMass
					}
					scan.Diff(row, nb.Row, diff)
					for j, d := range diff {
						acc[j] += f * d
					}
				}
				return nil
			}, nil
		}, nil

	default:
		return nil, &ErrInvalidMode{Mode: r.opts.Mode}
	}
}

// sigma resolves the exp_rank decay constant: the configured value, or
// the standard deviation of the rank distribution 1..n-1, floored at 1.
func (r *ReliefF) sigma(n int) float64 {
	if r.opts.Sigma > 0 {
		return r.opts.Sigma
	}
	ranks := float64(n - 1)
	sigma := math.Sqrt((ranks*ranks - 1) / 12)
	if sigma < 1 {
		return 1
	}
	return sigma
}

// expRankKernel precomputes exp(-(rank/sigma)^2) for ranks 1..size.
// The kernel depends only on the rank position, not on the query row.
func expRankKernel(size int, sigma float64) []float64 {
	kernel := make([]float64, size)
	for i := range kernel {
		r := float64(i+1) / sigma
		kernel[i] = math.Exp(-r * r)
	}
	return kernel
}
