// Package selection turns estimated feature weights into feature
// subsets: Ranks orders features by weight, and Selector restricts a
// sample matrix to the top ranked columns.
package selection

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotFitted is returned by Transform before a successful Fit.
var ErrNotFitted = errors.New("selection: selector not fitted")

// ErrInvalidFeatureCount indicates an NFeatures outside [1, M].
type ErrInvalidFeatureCount struct {
	NFeatures int // NFeatures is the requested selection size.
	Features  int // Features is the number of weighted features M.
}

func (e *ErrInvalidFeatureCount) Error() string {
	return fmt.Sprintf("selection: cannot select %d of %d features", e.NFeatures, e.Features)
}

// ErrFeatureMismatch indicates a row whose width differs from the
// fitted weight vector.
type ErrFeatureMismatch struct {
	Row  int // Row is the offending row index.
	Want int // Want is the fitted feature count.
	Got  int // Got is the actual row width.
}

func (e *ErrFeatureMismatch) Error() string {
	return fmt.Sprintf("selection: row %d has %d features, want %d", e.Row, e.Got, e.Want)
}

// Ranks assigns each feature an ordinal rank by descending weight:
// rank 1 is the largest weight, ties resolve to the lower feature
// index. Every rank in 1..M is assigned exactly once.
func Ranks(weights []float64) []int {
	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		if weights[a] > weights[b] {
			return -1
		}
		if weights[a] < weights[b] {
			return 1
		}
		return a - b
	})

	ranks := make([]int, len(weights))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}
	return ranks
}

// Selector restricts sample matrices to the NFeatures best features of
// a fitted weight vector.
type Selector struct {
	// NFeatures is the number of top ranked features to keep.
	NFeatures int

	cols     []int
	features int
}

// Fit ranks the weight vector and records the NFeatures best columns.
// NFeatures must lie in [1, len(weights)].
func (s *Selector) Fit(weights []float64) error {
	if s.NFeatures < 1 || s.NFeatures > len(weights) {
		return &ErrInvalidFeatureCount{NFeatures: s.NFeatures, Features: len(weights)}
	}

	cols := make([]int, 0, s.NFeatures)
	for j, rank := range Ranks(weights) {
		if rank <= s.NFeatures {
			cols = append(cols, j)
		}
	}
	s.cols = cols
	s.features = len(weights)
	return nil
}

// Columns returns the selected column indices in ascending order, or
// nil before Fit.
func (s *Selector) Columns() []int {
	return slices.Clone(s.cols)
}

// Transform returns data restricted to the fitted columns. Column order
// follows the input matrix, not the ranking. The result shares no
// backing memory with the input.
func (s *Selector) Transform(data [][]float64) ([][]float64, error) {
	if s.cols == nil {
		return nil, ErrNotFitted
	}

	out := make([][]float64, len(data))
	for i, row := range data {
		if len(row) != s.features {
			return nil, &ErrFeatureMismatch{Row: i, Want: s.features, Got: len(row)}
		}
		kept := make([]float64, len(s.cols))
		for c, j := range s.cols {
			kept[c] = row[j]
		}
		out[i] = kept
	}
	return out, nil
}

// FitTransform fits on weights and immediately transforms data.
func (s *Selector) FitTransform(weights []float64, data [][]float64) ([][]float64, error) {
	if err := s.Fit(weights); err != nil {
		return nil, err
	}
	return s.Transform(data)
}
