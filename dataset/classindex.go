package dataset

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// ClassIndex partitions row indices by target label.
//
// For each distinct label it keeps a roaring bitmap of the rows carrying
// that label (the hit set of a query with that label) and the precomputed
// complement (the miss set). Bitmap iteration is in ascending row order,
// which keeps every scan that walks a class deterministic.
type ClassIndex struct {
	labels []int
	hits   map[int]*roaring.Bitmap
	misses map[int]*roaring.Bitmap
	n      int
}

func newClassIndex(target []int) *ClassIndex {
	c := &ClassIndex{
		hits:   make(map[int]*roaring.Bitmap),
		misses: make(map[int]*roaring.Bitmap),
		n:      len(target),
	}

	for row, label := range target {
		bm, ok := c.hits[label]
		if !ok {
			bm = roaring.New()
			c.hits[label] = bm
			c.labels = append(c.labels, label)
		}
		bm.Add(uint32(row))
	}
	slices.Sort(c.labels)

	universe := roaring.New()
	universe.AddRange(0, uint64(len(target)))
	for label, bm := range c.hits {
		miss := universe.Clone()
		miss.AndNot(bm)
		c.misses[label] = miss
	}

	return c
}

// Labels returns the distinct labels in ascending order.
func (c *ClassIndex) Labels() []int {
	return slices.Clone(c.labels)
}

// Count returns the number of distinct classes.
func (c *ClassIndex) Count() int { return len(c.labels) }

// Members returns how many rows carry the given label.
func (c *ClassIndex) Members(label int) int {
	bm, ok := c.hits[label]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Prior returns the empirical class prior P(label).
func (c *ClassIndex) Prior(label int) float64 {
	if c.n == 0 {
		return 0
	}
	return float64(c.Members(label)) / float64(c.n)
}

// HitRows iterates, in ascending order, the rows sharing the given label.
func (c *ClassIndex) HitRows(label int) iter.Seq[int] {
	return bitmapRows(c.hits[label])
}

// MissRows iterates, in ascending order, the rows whose label differs
// from the given label.
func (c *ClassIndex) MissRows(label int) iter.Seq[int] {
	return bitmapRows(c.misses[label])
}

func bitmapRows(bm *roaring.Bitmap) iter.Seq[int] {
	return func(yield func(int) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
