// Package distance provides the per-feature difference model shared by
// every Relief-family estimator.
//
// A difference kernel compares two dataset rows feature by feature and
// writes one non-negative contribution per feature:
//
//   - Continuous: |a[j]-b[j]| normalized by the feature's observed range,
//     keeping every contribution in [0,1] and comparable across features.
//   - Discrete: 0 when the values match, 1 otherwise.
//
// # Usage
//
//	diff, err := distance.Provider(distance.Continuous, ds.Ranges())
//	if err != nil { ... }
//	dst := make([]float64, ds.Features())
//	diff(ds.Row(i), ds.Row(j), dst)
//
// The feature type is always declared by the caller; there is no
// inference. Unknown values (including the zero value) fail fast with
// ErrInvalidFeatureType before any computation.
package distance
