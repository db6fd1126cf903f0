// Package dataset holds the immutable sample matrix and target labels a
// Relief estimator works on, together with the derived per-feature ranges
// and the class index used to partition rows into hits and misses.
package dataset
