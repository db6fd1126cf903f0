package estimator

import (
	"math"
	"slices"
)

// Weights is a per-feature relevance vector, one entry per dataset
// column. Higher means more discriminative.
type Weights []float64

// Zero returns an all-zero weight vector of length m.
func Zero(m int) Weights {
	return make(Weights, m)
}

// Uniform returns a weight vector of length m with every entry 1/m.
func Uniform(m int) Weights {
	w := make(Weights, m)
	for j := range w {
		w[j] = 1 / float64(m)
	}
	return w
}

// Clone returns a copy of w.
func (w Weights) Clone() Weights {
	return Weights(slices.Clone(w))
}

// Add adds other into w element-wise. Lengths must match.
func (w Weights) Add(other Weights) {
	for j := range w {
		w[j] += other[j]
	}
}

// Scale multiplies every entry by f.
func (w Weights) Scale(f float64) {
	for j := range w {
		w[j] *= f
	}
}

// MaxAbsDiff returns the largest absolute element-wise difference
// between w and other. Lengths must match.
func (w Weights) MaxAbsDiff(other Weights) float64 {
	var max float64
	for j := range w {
		if d := math.Abs(w[j] - other[j]); d > max {
			max = d
		}
	}
	return max
}
