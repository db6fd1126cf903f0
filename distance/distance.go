package distance

import (
	"fmt"
	"math"
)

// FeatureType declares how a dataset's features are compared.
//
// The zero value is intentionally invalid: callers must state the type
// explicitly on every estimator, and anything outside the two recognized
// values is rejected up front.
type FeatureType int

const (
	// Continuous compares features by range-normalized absolute difference.
	Continuous FeatureType = iota + 1

	// Discrete compares features by an equality indicator.
	Discrete
)

// String returns a string representation of the FeatureType.
func (ft FeatureType) String() string {
	switch ft {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	default:
		return fmt.Sprintf("FeatureType(%d)", int(ft))
	}
}

// Validate reports whether ft is one of the recognized feature types.
// It is the shared fail-fast check run at the top of every public entry
// point, before any dataset is touched.
func (ft FeatureType) Validate() error {
	switch ft {
	case Continuous, Discrete:
		return nil
	default:
		return &ErrInvalidFeatureType{FeatureType: ft}
	}
}

// ErrInvalidFeatureType indicates an unrecognized feature type.
type ErrInvalidFeatureType struct {
	FeatureType FeatureType
}

func (e *ErrInvalidFeatureType) Error() string {
	return fmt.Sprintf("invalid feature type: %s", e.FeatureType)
}

// Func is a per-feature difference kernel. It compares rows a and b and
// writes one non-negative contribution per feature into dst. All three
// slices must have the same length; that is the caller's responsibility.
type Func func(a, b, dst []float64)

// Provider returns the difference kernel for the given feature type.
//
// ranges carries the observed max-min per feature and is only consulted
// by the continuous kernel; entries must be positive (degenerate features
// are expected to be pre-guarded to 1 by the dataset). Discrete callers
// may pass nil.
func Provider(ft FeatureType, ranges []float64) (Func, error) {
	switch ft {
	case Continuous:
		return func(a, b, dst []float64) {
			for j := range dst {
				dst[j] = math.Abs(a[j]-b[j]) / ranges[j]
			}
		}, nil
	case Discrete:
		return func(a, b, dst []float64) {
			for j := range dst {
				if a[j] == b[j] {
					dst[j] = 0
				} else {
					dst[j] = 1
				}
			}
		}, nil
	default:
		return nil, &ErrInvalidFeatureType{FeatureType: ft}
	}
}

// Weighted returns the aggregate distance between a and b: the sum of
// per-feature differences produced by diff, scaled element-wise by
// weights. A nil weights slice means uniform weights of one. scratch
// receives the per-feature differences and must match the row length.
func Weighted(diff Func, a, b, weights, scratch []float64) float64 {
	diff(a, b, scratch)
	var sum float64
	if weights == nil {
		for _, d := range scratch {
			sum += d
		}
		return sum
	}
	for j, d := range scratch {
		sum += weights[j] * d
	}
	return sum
}
