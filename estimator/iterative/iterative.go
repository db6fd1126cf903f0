// Package iterative implements the Iterative Relief feature weight
// estimator.
//
// Unlike the single-pass ReliefF, Iterative Relief re-estimates the
// metric: the weights produced by pass t bias the distance used for
// neighbor search in pass t+1, so discriminative features progressively
// dominate neighbor selection. The loop ends when the weight change
// falls below a tolerance or the iteration budget is exhausted.
package iterative

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator"
	"github.com/hupe1980/reliefgo/neighbor"
)

// Compile-time check to ensure IterativeRelief satisfies the estimator
// interface.
var _ estimator.Estimator = (*IterativeRelief)(nil)

// IterationStats describes one completed pass. It is passed to the
// OnIteration hook; Weights is a snapshot the receiver may retain.
type IterationStats struct {
	// Iteration is the 1-based pass number.
	Iteration int

	// Delta is the largest absolute per-feature change against the
	// previous pass.
	Delta float64

	// Weights is the normalized weight vector after this pass.
	Weights estimator.Weights
}

// Options contains configuration options for the IterativeRelief
// estimator.
type Options struct {
	// FeatureType declares how per-feature differences are computed.
	// It is required and has no default; the zero value fails validation.
	FeatureType distance.FeatureType

	// Iterations caps the number of passes. Values <= 0 select the
	// default of 20.
	Iterations int

	// Tolerance ends the loop early once the largest absolute weight
	// change of a pass drops below it. Values <= 0 disable early
	// termination.
	Tolerance float64

	// KNeighbors is the per-side neighbor count used within each pass.
	// The default of 1 follows the original formulation: nearest hit,
	// nearest miss under the current metric.
	KNeighbors int

	// Parallelism caps the number of worker goroutines within one pass.
	// Values <= 0 select GOMAXPROCS. Passes themselves are sequential.
	Parallelism int

	// Logger receives throttled per-pass progress events. Nil disables
	// logging.
	Logger *slog.Logger

	// OnIteration is invoked after every completed pass. Nil disables
	// the hook.
	OnIteration func(stats IterationStats)
}

// DefaultOptions contains the default configuration options for
// IterativeRelief.
var DefaultOptions = Options{
	Iterations: 20,
	Tolerance:  1e-4,
	KNeighbors: 1,
}

// IterativeRelief estimates per-feature relevance weights by repeated
// passes under a self-adjusting metric.
type IterativeRelief struct {
	opts Options
}

// New creates a new IterativeRelief estimator.
// FeatureType is required and must be set at creation time.
func New(optFns ...func(o *Options)) (*IterativeRelief, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.FeatureType.Validate(); err != nil {
		return nil, err
	}
	if opts.KNeighbors < 1 {
		return nil, &neighbor.ErrInvalidNeighborCount{K: opts.KNeighbors}
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultOptions.Iterations
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &IterativeRelief{opts: opts}, nil
}

func (*IterativeRelief) Name() string { return "IterativeRelief" }

// Estimate computes one relevance weight per feature.
//
// The returned vector is the last pass's normalized estimate: entries
// are non-negative and sum to 1 (negative raw contributions are clamped
// to zero before rescaling; a pass with no positive mass falls back to
// uniform weights so the next metric stays usable).
func (ir *IterativeRelief) Estimate(ctx context.Context, ds *dataset.Dataset) (estimator.Weights, error) {
	n, m := ds.Len(), ds.Features()
	k := ir.opts.KNeighbors

	if k >= n {
		return nil, &neighbor.ErrInvalidNeighborCount{K: k, N: n}
	}

	ir.opts.Logger.DebugContext(ctx, "iterative relief started",
		"feature_type", ir.opts.FeatureType.String(),
		"instances", n,
		"features", m,
		"max_iterations", ir.opts.Iterations,
	)

	progress := rate.Sometimes{First: 3, Interval: time.Second}

	w := estimator.Uniform(m)
	for iter := 1; iter <= ir.opts.Iterations; iter++ {
		cur := w

		setup := func() (estimator.InstanceFunc, error) {
			scan, err := neighbor.NewScanner(ds, ir.opts.FeatureType, cur)
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
		}

		raw, err := estimator.Fold(ctx, n, m, ir.opts.Parallelism, setup)
		if err != nil {
			return nil, err
		}

		next := normalize(raw)
		delta := next.MaxAbsDiff(cur)
		w = next

		progress.Do(func() {
			ir.opts.Logger.DebugContext(ctx, "iterative relief pass",
				"iteration", iter,
				"delta", delta,
			)
		})
		if ir.opts.OnIteration != nil {
			ir.opts.OnIteration(IterationStats{Iteration: iter, Delta: delta, Weights: w.Clone()})
		}

		if ir.opts.Tolerance > 0 && delta < ir.opts.Tolerance {
			ir.opts.Logger.DebugContext(ctx, "iterative relief converged",
				"iteration", iter,
				"delta", delta,
			)
			break
		}
	}

	return w, nil
}

// normalize clamps negative entries to zero and rescales to unit L1
// mass, in place. A vector without positive mass falls back to uniform.
func normalize(w estimator.Weights) estimator.Weights {
	var sum float64
	for j, v := range w {
		if v < 0 {
			w[j] = 0
			continue
		}
		sum += v
	}
	if sum == 0 {
		return estimator.Uniform(len(w))
	}
	w.Scale(1 / sum)
	return w
}
