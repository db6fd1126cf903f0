// Package testutil provides testing utilities for reliefgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and synthetic dataset
// builders for the discriminative-ranking properties used across the
// estimator tests.
//
// # Random Matrix Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformMatrix(1000, 10)   // continuous, [0, 1)
//	data := rng.DiscreteMatrix(100, 4, 3) // categories {0, 1, 2}
//
// # Separable Targets
//
//	target := testutil.ThresholdTarget(data, 0, 1) // 1 where col0 > col1
package testutil
