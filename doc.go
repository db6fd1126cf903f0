// Package reliefgo provides Relief-family feature weighting for Go.
//
// Relief algorithms score the features of a labeled dataset by how
// consistently each feature separates instances with different labels
// from instances with the same label among their nearest neighbors.
// Unlike univariate filters they are sensitive to feature interactions
// while staying linear in the number of features.
//
// # Quick Start
//
// Score features with ReliefF:
//
//	ctx := context.Background()
//	est, _ := reliefgo.ReliefF().
//	    Continuous(). // Range-normalized differences
//	    KNearest().   // Update mode
//	    K(10).        // Neighbors per side
//	    Build()
//	weights, _ := est.Estimate(ctx, data, target)
//
// Keep the strongest features:
//
//	sel := &selection.Selector{NFeatures: 10}
//	reduced, _ := sel.FitTransform(weights, data)
//
// # Algorithms
//
// Five estimators share one facade:
//
//	// ReliefF: single pass, k nearest hits and misses per class.
//	reliefgo.ReliefF().Continuous().Build()
//
//	// ReliefF variants: all-pairs diff and exponential rank decay.
//	reliefgo.ReliefF().Continuous().Diff().Build()
//	reliefgo.ReliefF().Continuous().ExpRank().Sigma(8).Build()
//
//	// IterativeRelief: weights feed back into the metric each pass.
//	reliefgo.IterativeRelief().Continuous().Iterations(30).Build()
//
//	// SURF and SURF*: distance cutoff instead of a neighbor count.
//	reliefgo.SURF().Continuous().Build()
//	reliefgo.SURFStar().Continuous().Build()
//
//	// MultiSURF: per-instance cutoff with a dead band.
//	reliefgo.MultiSURF().Continuous().Build()
//
// # Feature Types
//
// Every estimator requires a feature type. Continuous compares features
// by range-normalized absolute difference, Discrete by an equality
// indicator. The choice applies to all columns of the dataset.
//
// # Determinism and Parallelism
//
// Estimation fans out across instances but accumulates in a fixed
// order, so results are bit-identical for any Parallelism setting.
// There is no randomness anywhere; equal inputs give equal weights.
//
// # Observability
//
// Logging and metrics are off by default and opt-in per estimator:
//
//	metrics := &reliefgo.BasicMetricsCollector{}
//	est, _ := reliefgo.ReliefF().
//	    Continuous().
//	    Logger(reliefgo.NewJSONLogger(slog.LevelDebug)).
//	    Metrics(metrics).
//	    Build()
package reliefgo
