// Package neighbor implements neighbor retrieval over a dataset under
// the per-feature difference metric, optionally biased by feature
// weights.
//
// Two retrieval shapes are provided: KNearest returns the k closest
// same-class and different-class rows (the hit/miss split consumed by
// k-nearest weight updates), and RankAll returns every other row in
// ascending distance order (consumed by policies that weight the whole
// ranking). Both are deterministic: distances tie-break on the lower row
// index, never on iteration or scheduling order.
package neighbor

import (
	"fmt"
	"slices"

	"github.com/hupe1980/reliefgo/dataset"
	"github.com/hupe1980/reliefgo/distance"
	"github.com/hupe1980/reliefgo/internal/queue"
)

// ErrInvalidNeighborCount indicates a neighbor count outside [1, N).
// N is zero when the count was rejected before any dataset was seen.
type ErrInvalidNeighborCount struct {
	K int // K is the requested neighbor count.
	N int // N is the number of dataset instances.
}

func (e *ErrInvalidNeighborCount) Error() string {
	if e.N == 0 {
		return fmt.Sprintf("invalid neighbor count %d", e.K)
	}
	return fmt.Sprintf("invalid neighbor count %d for %d instances", e.K, e.N)
}

// ErrWeightLength indicates a feature-weight vector not matching the
// dataset's feature count.
type ErrWeightLength struct {
	Want int
	Got  int
}

func (e *ErrWeightLength) Error() string {
	return fmt.Sprintf("feature weights have length %d, want %d", e.Got, e.Want)
}

// Neighbor is one retrieved row with its aggregate distance to the query.
type Neighbor struct {
	Row      int     // Row is the dataset row index.
	Distance float64 // Distance is the (possibly weighted) aggregate distance.
	Hit      bool    // Hit reports whether the row shares the query's label.
}

// Scanner retrieves neighbors for query rows of one dataset.
//
// A Scanner owns the scratch buffers for its distance computations and is
// therefore NOT safe for concurrent use; parallel workers each construct
// their own.
type Scanner struct {
	ds      *dataset.Dataset
	diff    distance.Func
	weights []float64
	scratch []float64
}

// NewScanner builds a Scanner for the dataset under the given feature
// type. weights biases the metric element-wise; nil means uniform. The
// feature type is validated here, before any row is touched.
func NewScanner(ds *dataset.Dataset, ft distance.FeatureType, weights []float64) (*Scanner, error) {
	diff, err := distance.Provider(ft, ds.Ranges())
	if err != nil {
		return nil, err
	}
	if weights != nil && len(weights) != ds.Features() {
		return nil, &ErrWeightLength{Want: ds.Features(), Got: len(weights)}
	}

	return &Scanner{
		ds:      ds,
		diff:    diff,
		weights: weights,
		scratch: make([]float64, ds.Features()),
	}, nil
}

// Diff writes the per-feature differences between rows a and b into dst.
// dst must have length Features.
func (s *Scanner) Diff(a, b int, dst []float64) {
	s.diff(s.ds.Row(a), s.ds.Row(b), dst)
}

// Distance returns the aggregate distance between rows a and b: the
// weighted sum of per-feature differences.
func (s *Scanner) Distance(a, b int) float64 {
	return distance.Weighted(s.diff, s.ds.Row(a), s.ds.Row(b), s.weights, s.scratch)
}

// KNearest returns the k nearest hits (rows sharing q's label) and the k
// nearest misses (rows with any other label), each ascending by
// (distance, row). Either side may come back shorter when the class is
// small; a class with no other members yields an empty side.
//
// k must satisfy 1 <= k < N.
func (s *Scanner) KNearest(q, k int) (hits, misses []Neighbor, err error) {
	n := s.ds.Len()
	if k < 1 || k >= n {
		return nil, nil, &ErrInvalidNeighborCount{K: k, N: n}
	}

	label := s.ds.Label(q)
	classes := s.ds.Classes()

	hitHeap := queue.NewMax(k)
	for row := range classes.HitRows(label) {
		if row == q {
			continue
		}
		hitHeap.PushBounded(queue.Item{Row: row, Distance: s.Distance(q, row)}, k)
	}

	missHeap := queue.NewMax(k)
	for row := range classes.MissRows(label) {
		missHeap.PushBounded(queue.Item{Row: row, Distance: s.Distance(q, row)}, k)
	}

	hits = neighbors(hitHeap, true, nil)
	misses = neighbors(missHeap, false, nil)
	return hits, misses, nil
}

// RankAll appends every row other than q to dst, ascending by
// (distance, row), and returns the extended slice. Pass dst[:0] to reuse
// an existing buffer across queries.
func (s *Scanner) RankAll(q int, dst []Neighbor) []Neighbor {
	n := s.ds.Len()
	label := s.ds.Label(q)

	start := len(dst)
	for row := 0; row < n; row++ {
		if row == q {
			continue
		}
		dst = append(dst, Neighbor{
			Row:      row,
			Distance: s.Distance(q, row),
			Hit:      s.ds.Label(row) == label,
		})
	}

	slices.SortFunc(dst[start:], cmpNeighbor)
	return dst
}

// AddMeanDiff adds sign times the mean per-feature difference between q
// and the given rows into acc. diff is scratch for one row of
// differences and must have length Features, as must acc. An empty side
// contributes nothing.
func (s *Scanner) AddMeanDiff(q int, side []Neighbor, diff, acc []float64, sign float64) {
	if len(side) == 0 {
		return
	}
	f := sign / float64(len(side))
	for _, nb := range side {
		s.Diff(q, nb.Row, diff)
		for j, d := range diff {
			acc[j] += f * d
		}
	}
}

// Distances fills dst with the aggregate distance from q to every row;
// dst[q] is set to 0. dst must have length N.
func (s *Scanner) Distances(q int, dst []float64) {
	for row := range dst {
		if row == q {
			dst[row] = 0
			continue
		}
		dst[row] = s.Distance(q, row)
	}
}

func neighbors(h *queue.Heap, hit bool, dst []Neighbor) []Neighbor {
	items := h.Drain(nil)
	for _, item := range items {
		dst = append(dst, Neighbor{Row: item.Row, Distance: item.Distance, Hit: hit})
	}
	return dst
}

// cmpNeighbor orders by distance ascending, breaking ties on the lower
// row index. Package-level so SortFunc needs no closure allocation.
func cmpNeighbor(a, b Neighbor) int {
	if a.Distance < b.Distance {
		return -1
	}
	if a.Distance > b.Distance {
		return 1
	}
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	return 0
}
