// Package reliefgo provides Relief-family feature weighting for Go.
//
// This file implements algorithm-specific fluent builder APIs for creating and configuring facade Estimators.
// Builders are immutable - each method returns a new builder with the updated configuration.
package reliefgo

import (
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/estimator/iterative"
	"github.com/hupe1980/reliefgo/estimator/multisurf"
	"github.com/hupe1980/reliefgo/estimator/relieff"
	"github.com/hupe1980/reliefgo/estimator/surf"
)

// =============================================================================
// ReliefF Builder (Immutable)
// =============================================================================

// ReliefF creates a new ReliefF estimator builder.
// ReliefF scores each feature by how well it separates every instance
// from its nearest misses while keeping it close to its nearest hits.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	est, err := reliefgo.ReliefF().
//	    Continuous().
//	    ExpRank().
//	    Sigma(8).
//	    Build()
func ReliefF() ReliefFBuilder {
	return ReliefFBuilder{
		mode: relieff.DefaultOptions.Mode,
		k:    relieff.DefaultOptions.K,
	}
}

// ReliefFBuilder is an immutable fluent builder for creating ReliefF-based Estimators.
// Each method returns a new builder with the updated configuration.
type ReliefFBuilder struct {
	featureType distance.FeatureType
	mode        relieff.Mode
	k           int
	sigma       float64
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

// Continuous declares the features continuous. Differences are
// range-normalized absolute differences.
func (b ReliefFBuilder) Continuous() ReliefFBuilder {
	b.featureType = distance.Continuous
	return b
}

// Discrete declares the features discrete. Differences are equality
// indicators.
func (b ReliefFBuilder) Discrete() ReliefFBuilder {
	b.featureType = distance.Discrete
	return b
}

// KNearest selects the k-nearest update mode: differences are averaged
// over the k nearest hits and the k nearest misses per class.
// This is the default mode.
func (b ReliefFBuilder) KNearest() ReliefFBuilder {
	b.mode = relieff.ModeKNearest
	return b
}

// Diff selects the diff update mode: raw differences are accumulated
// over every other instance. Cheaper but noisier than KNearest.
func (b ReliefFBuilder) Diff() ReliefFBuilder {
	b.mode = relieff.ModeDiff
	return b
}

// ExpRank selects the exponential-rank update mode: each neighbor's
// difference is weighted by exp(-(rank/sigma)^2).
func (b ReliefFBuilder) ExpRank() ReliefFBuilder {
	b.mode = relieff.ModeExpRank
	return b
}

// K sets the neighbor count per side for the KNearest mode.
// Default: 10. Must be at least 1 and smaller than the instance count.
func (b ReliefFBuilder) K(k int) ReliefFBuilder {
	b.k = k
	return b
}

// Sigma sets the decay constant of the ExpRank kernel.
// Values <= 0 select the default: the standard deviation of the rank
// distribution, floored at 1.
func (b ReliefFBuilder) Sigma(sigma float64) ReliefFBuilder {
	b.sigma = sigma
	return b
}

// Parallelism caps the number of worker goroutines.
// Default: 0 (GOMAXPROCS). Results are identical for any setting.
func (b ReliefFBuilder) Parallelism(n int) ReliefFBuilder {
	b.parallelism = n
	return b
}

// Logger configures structured logging for the engine and the facade.
func (b ReliefFBuilder) Logger(logger *Logger) ReliefFBuilder {
	b.logger = logger
	return b
}

// Metrics configures a metrics collector for the facade.
func (b ReliefFBuilder) Metrics(mc MetricsCollector) ReliefFBuilder {
	b.metrics = mc
	return b
}

// Build creates the Estimator with the accumulated configuration.
func (b ReliefFBuilder) Build() (*Estimator, error) {
	inner, err := relieff.New(func(o *relieff.Options) {
		o.FeatureType = b.featureType
		o.Mode = b.mode
		o.K = b.k
		o.Sigma = b.sigma
		o.Parallelism = b.parallelism
		if b.logger != nil {
			o.Logger = b.logger.Logger
		}
	})
	if err != nil {
		return nil, translateError(err)
	}

	return New(inner, b.facadeOptions()...)
}

// MustBuild creates the Estimator and panics on error.
func (b ReliefFBuilder) MustBuild() *Estimator {
	est, err := b.Build()
	if err != nil {
		panic(err)
	}
	return est
}

func (b ReliefFBuilder) facadeOptions() []Option {
	var optFns []Option
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return optFns
}

// =============================================================================
// IterativeRelief Builder (Immutable)
// =============================================================================

// IterativeRelief creates a new IterativeRelief estimator builder.
// IterativeRelief refines weights over repeated passes, feeding each
// pass's weights back into the distance metric of the next.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
//
// Example:
//
//	est, err := reliefgo.IterativeRelief().
//	    Continuous().
//	    Iterations(30).
//	    Tolerance(1e-5).
//	    Build()
func IterativeRelief() IterativeReliefBuilder {
	return IterativeReliefBuilder{
		iterations: iterative.DefaultOptions.Iterations,
		tolerance:  iterative.DefaultOptions.Tolerance,
		kNeighbors: iterative.DefaultOptions.KNeighbors,
	}
}

// IterativeReliefBuilder is an immutable fluent builder for creating
// IterativeRelief-based Estimators.
// Each method returns a new builder with the updated configuration.
type IterativeReliefBuilder struct {
	featureType distance.FeatureType
	iterations  int
	tolerance   float64
	kNeighbors  int
	parallelism int
	onIteration func(stats iterative.IterationStats)
	logger      *Logger
	metrics     MetricsCollector
}

// Continuous declares the features continuous.
func (b IterativeReliefBuilder) Continuous() IterativeReliefBuilder {
	b.featureType = distance.Continuous
	return b
}

// Discrete declares the features discrete.
func (b IterativeReliefBuilder) Discrete() IterativeReliefBuilder {
	b.featureType = distance.Discrete
	return b
}

// Iterations caps the number of passes.
// Default: 20.
func (b IterativeReliefBuilder) Iterations(n int) IterativeReliefBuilder {
	b.iterations = n
	return b
}

// Tolerance ends the loop early once the largest absolute weight change
// of a pass drops below it. Values <= 0 disable early termination.
// Default: 1e-4.
func (b IterativeReliefBuilder) Tolerance(tol float64) IterativeReliefBuilder {
	b.tolerance = tol
	return b
}

// KNeighbors sets the per-side neighbor count used within each pass.
// Default: 1 (nearest hit, nearest miss under the current metric).
func (b IterativeReliefBuilder) KNeighbors(k int) IterativeReliefBuilder {
	b.kNeighbors = k
	return b
}

// OnIteration registers a hook invoked after every completed pass.
func (b IterativeReliefBuilder) OnIteration(fn func(stats iterative.IterationStats)) IterativeReliefBuilder {
	b.onIteration = fn
	return b
}

// Parallelism caps the number of worker goroutines within one pass.
// Default: 0 (GOMAXPROCS). Results are identical for any setting.
func (b IterativeReliefBuilder) Parallelism(n int) IterativeReliefBuilder {
	b.parallelism = n
	return b
}

// Logger configures structured logging for the engine and the facade.
func (b IterativeReliefBuilder) Logger(logger *Logger) IterativeReliefBuilder {
	b.logger = logger
	return b
}

// Metrics configures a metrics collector for the facade. Iterative
// passes are reported through MetricsCollector.RecordIteration.
func (b IterativeReliefBuilder) Metrics(mc MetricsCollector) IterativeReliefBuilder {
	b.metrics = mc
	return b
}

// Build creates the Estimator with the accumulated configuration.
func (b IterativeReliefBuilder) Build() (*Estimator, error) {
	metrics := b.metrics
	hook := b.onIteration

	inner, err := iterative.New(func(o *iterative.Options) {
		o.FeatureType = b.featureType
		o.Iterations = b.iterations
		o.Tolerance = b.tolerance
		o.KNeighbors = b.kNeighbors
		o.Parallelism = b.parallelism
		if b.logger != nil {
			o.Logger = b.logger.Logger
		}
		if metrics != nil || hook != nil {
			o.OnIteration = func(stats iterative.IterationStats) {
				if metrics != nil {
					metrics.RecordIteration(stats.Iteration, stats.Delta)
				}
				if hook != nil {
					hook(stats)
				}
			}
		}
	})
	if err != nil {
		return nil, translateError(err)
	}

	return New(inner, b.facadeOptions()...)
}

// MustBuild creates the Estimator and panics on error.
func (b IterativeReliefBuilder) MustBuild() *Estimator {
	est, err := b.Build()
	if err != nil {
		panic(err)
	}
	return est
}

func (b IterativeReliefBuilder) facadeOptions() []Option {
	var optFns []Option
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return optFns
}

// =============================================================================
// SURF / SURF* Builder (Immutable)
// =============================================================================

// SURF creates a new SURF estimator builder.
// SURF replaces the fixed neighbor count with a distance cutoff: every
// instance inside the mean pairwise distance contributes.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
//
// Example:
//
//	est, err := reliefgo.SURF().
//	    Continuous().
//	    Build()
func SURF() SURFBuilder {
	return SURFBuilder{}
}

// SURFStar creates a new SURF* estimator builder.
// SURF* additionally scores the far zone with inverted signs, which
// picks up feature interactions that SURF misses.
func SURFStar() SURFBuilder {
	return SURFBuilder{star: true}
}

// SURFBuilder is an immutable fluent builder for creating SURF-based Estimators.
// Each method returns a new builder with the updated configuration.
type SURFBuilder struct {
	featureType distance.FeatureType
	star        bool
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

// Continuous declares the features continuous.
func (b SURFBuilder) Continuous() SURFBuilder {
	b.featureType = distance.Continuous
	return b
}

// Discrete declares the features discrete.
func (b SURFBuilder) Discrete() SURFBuilder {
	b.featureType = distance.Discrete
	return b
}

// Parallelism caps the number of worker goroutines.
// Default: 0 (GOMAXPROCS). Results are identical for any setting.
func (b SURFBuilder) Parallelism(n int) SURFBuilder {
	b.parallelism = n
	return b
}

// Logger configures structured logging for the facade.
func (b SURFBuilder) Logger(logger *Logger) SURFBuilder {
	b.logger = logger
	return b
}

// Metrics configures a metrics collector for the facade.
func (b SURFBuilder) Metrics(mc MetricsCollector) SURFBuilder {
	b.metrics = mc
	return b
}

// Build creates the Estimator with the accumulated configuration.
func (b SURFBuilder) Build() (*Estimator, error) {
	inner, err := surf.New(func(o *surf.Options) {
		o.FeatureType = b.featureType
		o.Star = b.star
		o.Parallelism = b.parallelism
	})
	if err != nil {
		return nil, translateError(err)
	}

	return New(inner, b.facadeOptions()...)
}

// MustBuild creates the Estimator and panics on error.
func (b SURFBuilder) MustBuild() *Estimator {
	est, err := b.Build()
	if err != nil {
		panic(err)
	}
	return est
}

func (b SURFBuilder) facadeOptions() []Option {
	var optFns []Option
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return optFns
}

// =============================================================================
// MultiSURF Builder (Immutable)
// =============================================================================

// MultiSURF creates a new MultiSURF estimator builder.
// MultiSURF adapts the distance cutoff per instance and subtracts half
// a standard deviation as a dead band around the boundary.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
//
// Example:
//
//	est, err := reliefgo.MultiSURF().
//	    Discrete().
//	    Build()
func MultiSURF() MultiSURFBuilder {
	return MultiSURFBuilder{}
}

// MultiSURFBuilder is an immutable fluent builder for creating MultiSURF-based Estimators.
// Each method returns a new builder with the updated configuration.
type MultiSURFBuilder struct {
	featureType distance.FeatureType
	parallelism int
	logger      *Logger
	metrics     MetricsCollector
}

// Continuous declares the features continuous.
func (b MultiSURFBuilder) Continuous() MultiSURFBuilder {
	b.featureType = distance.Continuous
	return b
}

// Discrete declares the features discrete.
func (b MultiSURFBuilder) Discrete() MultiSURFBuilder {
	b.featureType = distance.Discrete
	return b
}

// Parallelism caps the number of worker goroutines.
// Default: 0 (GOMAXPROCS). Results are identical for any setting.
func (b MultiSURFBuilder) Parallelism(n int) MultiSURFBuilder {
	b.parallelism = n
	return b
}

// Logger configures structured logging for the facade.
func (b MultiSURFBuilder) Logger(logger *Logger) MultiSURFBuilder {
	b.logger = logger
	return b
}

// Metrics configures a metrics collector for the facade.
func (b MultiSURFBuilder) Metrics(mc MetricsCollector) MultiSURFBuilder {
	b.metrics = mc
	return b
}

// Build creates the Estimator with the accumulated configuration.
func (b MultiSURFBuilder) Build() (*Estimator, error) {
	inner, err := multisurf.New(func(o *multisurf.Options) {
		o.FeatureType = b.featureType
		o.Parallelism = b.parallelism
	})
	if err != nil {
		return nil, translateError(err)
	}

	return New(inner, b.facadeOptions()...)
}

// MustBuild creates the Estimator and panics on error.
func (b MultiSURFBuilder) MustBuild() *Estimator {
	est, err := b.Build()
	if err != nil {
		panic(err)
	}
	return est
}

func (b MultiSURFBuilder) facadeOptions() []Option {
	var optFns []Option
	if b.logger != nil {
		optFns = append(optFns, WithLogger(b.logger))
	}
	if b.metrics != nil {
		optFns = append(optFns, WithMetricsCollector(b.metrics))
	}
	return optFns
}
