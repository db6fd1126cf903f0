package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData is returned when the sample matrix is nil or empty.
	ErrNoData = errors.New("dataset: no data")

	// ErrTooFewInstances is returned when fewer than two rows are supplied;
	// neighbor-based weighting needs at least one other row per query.
	ErrTooFewInstances = errors.New("dataset: at least two instances required")

	// ErrNoFeatures is returned when rows have zero columns.
	ErrNoFeatures = errors.New("dataset: at least one feature required")
)

// ErrRaggedRow indicates a row whose length differs from the first row.
type ErrRaggedRow struct {
	Row  int // Row is the offending row index.
	Want int // Want is the expected number of features.
	Got  int // Got is the actual number of features.
}

func (e *ErrRaggedRow) Error() string {
	return fmt.Sprintf("dataset: row %d has %d features, want %d", e.Row, e.Got, e.Want)
}

// ErrTargetLength indicates a target vector not aligned with the rows.
type ErrTargetLength struct {
	Rows   int // Rows is the number of data rows.
	Labels int // Labels is the number of target labels supplied.
}

func (e *ErrTargetLength) Error() string {
	return fmt.Sprintf("dataset: %d labels for %d rows", e.Labels, e.Rows)
}

// Dataset is an immutable N x M sample matrix with aligned target labels.
//
// Rows are instances, columns are features. Construction deep-copies the
// input into a single row-major backing array, computes the observed
// per-feature ranges and builds the class index, so a Dataset can be
// shared across estimators and goroutines without further validation.
type Dataset struct {
	data    []float64 // row-major backing, len n*m
	target  []int
	n, m    int
	ranges  []float64
	classes *ClassIndex
}

// New validates and copies the sample matrix and target vector.
//
// Invariants enforced: at least two rows, at least one feature, all rows
// the same length, one label per row. Labels are arbitrary ints.
func New(data [][]float64, target []int) (*Dataset, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if len(data) < 2 {
		return nil, ErrTooFewInstances
	}

	m := len(data[0])
	if m == 0 {
		return nil, ErrNoFeatures
	}
	for i, row := range data {
		if len(row) != m {
			return nil, &ErrRaggedRow{Row: i, Want: m, Got: len(row)}
		}
	}
	if len(target) != len(data) {
		return nil, &ErrTargetLength{Rows: len(data), Labels: len(target)}
	}

	n := len(data)
	flat := make([]float64, n*m)
	for i, row := range data {
		copy(flat[i*m:(i+1)*m], row)
	}

	labels := make([]int, n)
	copy(labels, target)

	d := &Dataset{
		data:    flat,
		target:  labels,
		n:       n,
		m:       m,
		classes: newClassIndex(labels),
	}
	d.ranges = computeRanges(flat, n, m)

	return d, nil
}

// Len returns the number of instances N.
func (d *Dataset) Len() int { return d.n }

// Features returns the number of features M.
func (d *Dataset) Features() int { return d.m }

// Row returns instance i as a view into the backing array.
// Callers must treat the returned slice as read-only.
func (d *Dataset) Row(i int) []float64 {
	return d.data[i*d.m : (i+1)*d.m]
}

// Label returns the target label of instance i.
func (d *Dataset) Label(i int) int { return d.target[i] }

// Ranges returns the observed max-min per feature, with degenerate
// features (constant columns) guarded to 1 so normalized differences
// stay well-defined. The returned slice is a read-only view.
func (d *Dataset) Ranges() []float64 { return d.ranges }

// Classes returns the class index over the target labels.
func (d *Dataset) Classes() *ClassIndex { return d.classes }

func computeRanges(flat []float64, n, m int) []float64 {
	mins := make([]float64, m)
	maxs := make([]float64, m)
	copy(mins, flat[:m])
	copy(maxs, flat[:m])

	for i := 1; i < n; i++ {
		row := flat[i*m : (i+1)*m]
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	ranges := make([]float64, m)
	for j := range ranges {
		r := maxs[j] - mins[j]
		if r == 0 {
			r = 1
		}
		ranges[j] = r
	}
	return ranges
}
