package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// UniformMatrix generates num rows of features random values in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformMatrix(num, features int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*features)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*features : (i+1)*features]
		for j := range row {
			row[j] = r.rand.Float64()
		}
		rows[i] = row
	}

	return rows
}

// DiscreteMatrix generates num rows of categorical features, each value
// drawn uniformly from {0, ..., cardinality-1}.
func (r *RNG) DiscreteMatrix(num, features, cardinality int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*features)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*features : (i+1)*features]
		for j := range row {
			row[j] = float64(r.rand.Intn(cardinality))
		}
		rows[i] = row
	}

	return rows
}

// BandedMatrix returns rows whose first feature falls into one of two
// disjoint bands selected by an alternating class label, separated by
// gap; all other features are uniform noise in [0, 1). The classes are
// separable on feature 0 alone, with no instances inside the gap.
func (r *RNG) BandedMatrix(num, features int, gap float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := (1 - gap) / 2
	data := make([]float64, num*features)
	rows := make([][]float64, num)
	target := make([]int, num)

	for i := range num {
		row := data[i*features : (i+1)*features]
		for j := range row {
			row[j] = r.rand.Float64()
		}

		label := i % 2
		if label == 0 {
			row[0] = r.rand.Float64() * width
		} else {
			row[0] = 1 - width + r.rand.Float64()*width
		}

		rows[i] = row
		target[i] = label
	}

	return rows, target
}

// ThresholdTarget labels each row 1 where row[a] > row[b] and 0
// otherwise. The classification is fully determined by features a and b,
// so a discriminating estimator must rank both above every other
// feature.
func ThresholdTarget(data [][]float64, a, b int) []int {
	target := make([]int, len(data))
	for i, row := range data {
		if row[a] > row[b] {
			target[i] = 1
		}
	}
	return target
}

// XORTarget labels each row by the exclusive or of row[a] > t and
// row[b] > t. Neither feature predicts the class on its own; only the
// interaction does.
func XORTarget(data [][]float64, a, b int, t float64) []int {
	target := make([]int, len(data))
	for i, row := range data {
		if (row[a] > t) != (row[b] > t) {
			target[i] = 1
		}
	}
	return target
}

// ConstantMatrix returns num identical rows filled with value. No
// feature distinguishes anything, so estimator weights must collapse
// toward zero.
func ConstantMatrix(num, features int, value float64) [][]float64 {
	data := make([]float64, num*features)
	rows := make([][]float64, num)

	for i := range num {
		row := data[i*features : (i+1)*features]
		for j := range row {
			row[j] = value
		}
		rows[i] = row
	}

	return rows
}

// AlternatingTarget returns labels 0,1,0,1,... for n rows.
func AlternatingTarget(n int) []int {
	target := make([]int, n)
	for i := range target {
		target[i] = i % 2
	}
	return target
}
