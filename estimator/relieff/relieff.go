// Package relieff implements the ReliefF feature weight estimator.
//
// ReliefF scores each feature by contrasting its per-feature differences
// toward same-class neighbors (hits) against different-class neighbors
// (misses): features that separate classes gain weight, features that
// vary within a class lose it. Three interchangeable update policies are
// provided: k-nearest averaging, raw pairwise accumulation, and
// exponential rank decay.
package relieff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator"
	"github.com/hupe1980/reliefgo/neighbor"
)

// Compile-time check to ensure ReliefF satisfies the estimator interface.
var _ estimator.Estimator = (*ReliefF)(nil)

// Mode selects the weight update policy applied per instance.
//
// The zero value is intentionally invalid so an unset mode is caught by
// validation instead of silently picking a policy.
type Mode int

const (
	// ModeKNearest averages differences over the k nearest hits and the
	// k nearest misses (classic ReliefF hit/miss averaging).
	ModeKNearest Mode = iota + 1

	// ModeDiff accumulates raw differences over every other instance,
	// unscaled by rank. Cheaper but noisier than ModeKNearest.
	ModeDiff

	// ModeExpRank weights each neighbor's difference by an exponential
	// decay kernel over its distance rank, interpolating between the
	// hard cutoff of ModeKNearest and the flat ModeDiff.
	ModeExpRank
)

// String returns a string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeKNearest:
		return "k_nearest"
	case ModeDiff:
		return "diff"
	case ModeExpRank:
		return "exp_rank"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Validate reports whether m is one of the recognized modes.
func (m Mode) Validate() error {
	switch m {
	case ModeKNearest, ModeDiff, ModeExpRank:
		return nil
	default:
		return &ErrInvalidMode{Mode: m}
	}
}

// ErrInvalidMode indicates an unrecognized update mode.
type ErrInvalidMode struct {
	Mode Mode
}

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("invalid mode: %s", e.Mode)
}

// Options contains configuration options for the ReliefF estimator.
type Options struct {
	// FeatureType declares how per-feature differences are computed.
	// It is required and has no default; the zero value fails validation.
	FeatureType distance.FeatureType

	// Mode selects the weight update policy.
	Mode Mode

	// K is the neighbor count per side for ModeKNearest. It must be at
	// least 1 and smaller than the dataset's instance count.
	K int

	// Sigma is the decay constant of the ModeExpRank kernel
	// exp(-(rank/sigma)^2). Values <= 0 select the default: the standard
	// deviation of the rank distribution, floored at 1.
	Sigma float64

	// Parallelism caps the number of worker goroutines for the
	// per-instance reduction. Values <= 0 select GOMAXPROCS. Results are
	// identical for any setting.
	Parallelism int

	// Logger receives debug-level progress events. Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for ReliefF.
var DefaultOptions = Options{
	Mode: ModeKNearest,
	K:    10,
}

// ReliefF estimates per-feature relevance weights in a single pass over
// the dataset under uniform feature weights.
type ReliefF struct {
	opts Options
}

// New creates a new ReliefF estimator.
// FeatureType is required and must be set at creation time.
func New(optFns ...func(o *Options)) (*ReliefF, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.FeatureType.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Mode.Validate(); err != nil {
		return nil, err
	}
	if opts.Mode == ModeKNearest && opts.K < 1 {
		return nil, &neighbor.ErrInvalidNeighborCount{K: opts.K}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &ReliefF{opts: opts}, nil
}

func (*ReliefF) Name() string { return "ReliefF" }

// Estimate computes one relevance weight per feature.
//
// Weights are normalized to [-1, 1]: by the instance count for
// ModeKNearest and ModeExpRank (whose per-instance deltas are per-side
// means), and by instances times comparisons for ModeDiff (whose deltas
// are raw sums over all pairs).
func (r *ReliefF) Estimate(ctx context.Context, ds *dataset.Dataset) (estimator.Weights, error) {
	n, m := ds.Len(), ds.Features()

	if r.opts.Mode == ModeKNearest && r.opts.K >= n {
		return nil, &neighbor.ErrInvalidNeighborCount{K: r.opts.K, N: n}
	}

	r.opts.Logger.DebugContext(ctx, "relieff estimate started",
		"mode", r.opts.Mode.String(),
		"feature_type", r.opts.FeatureType.String(),
		"instances", n,
		"features", m,
	)

	setup, err := r.policySetup(ds)
	if err != nil {
		return nil, err
	}

	w, err := estimator.Fold(ctx, n, m, r.opts.Parallelism, setup)
	if err != nil {
		return nil, err
	}

	switch r.opts.Mode {
	case ModeDiff:
		w.Scale(1 / (float64(n) * float64(n-1)))
	default:
		w.Scale(1 / float64(n))
	}

	r.opts.Logger.DebugContext(ctx, "relieff estimate completed",
		"mode", r.opts.Mode.String(),
		"instances", n,
		"features", m,
	)
	return w, nil
}
