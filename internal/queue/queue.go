// Package queue provides a small value-based binary heap used by the
// neighbor scanner to keep bounded candidate sets during a scan.
package queue

// Item is a (row, distance) pair held by the heap.
type Item struct {
	Row      int     // Row is the dataset row index of the candidate.
	Distance float64 // Distance is the aggregate distance to the query row.
}

// Heap is a binary heap of Items ordered by (Distance, Row).
//
// The order is lexicographic so that equal distances resolve by the lower
// row index. This makes every bounded top-k selection deterministic: the
// retained set is always the k lexicographically smallest pairs,
// independent of insertion order.
type Heap struct {
	max   bool // true = max-heap (largest pair on top), false = min-heap
	items []Item
}

// NewMin initializes a min-heap with the given capacity.
func NewMin(capacity int) *Heap {
	return &Heap{max: false, items: make([]Item, 0, capacity)}
}

// NewMax initializes a max-heap with the given capacity.
func NewMax(capacity int) *Heap {
	return &Heap{max: true, items: make([]Item, 0, capacity)}
}

// Len returns the number of elements in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Top returns the top element without removing it.
func (h *Heap) Top() (Item, bool) {
	if len(h.items) == 0 {
		return Item{}, false
	}
	return h.items[0], true
}

// Push inserts an item while maintaining the heap invariant.
func (h *Heap) Push(item Item) {
	h.items = append(h.items, item)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the top element while maintaining the heap
// invariant.
func (h *Heap) Pop() (Item, bool) {
	n := len(h.items)
	if n == 0 {
		return Item{}, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = Item{}
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

// PushBounded inserts into a max-heap holding at most k elements: once
// full, the incoming item replaces the top only when it orders before it.
// The retained set is the k smallest (Distance, Row) pairs seen so far.
func (h *Heap) PushBounded(item Item, k int) {
	if len(h.items) < k {
		h.Push(item)
		return
	}
	if less(item, h.items[0]) {
		h.items[0] = item
		h.siftDown(0)
	}
}

// Drain pops every element into dst ordered ascending by (Distance, Row)
// and returns the extended slice. Draining empties the heap.
func (h *Heap) Drain(dst []Item) []Item {
	start := len(dst)
	for {
		item, ok := h.Pop()
		if !ok {
			break
		}
		dst = append(dst, item)
	}
	if h.max {
		// A max-heap pops largest first; reverse into ascending order.
		for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
			dst[i], dst[j] = dst[j], dst[i]
		}
	}
	return dst
}

// Reset clears the heap for reuse without freeing memory.
func (h *Heap) Reset() {
	h.items = h.items[:0]
}

// less is the lexicographic (Distance, Row) order shared by both heap
// directions.
func less(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Row < b.Row
}

func (h *Heap) before(i, j int) bool {
	if h.max {
		return less(h.items[j], h.items[i])
	}
	return less(h.items[i], h.items[j])
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.before(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.before(r, l) {
			best = r
		}
		if !h.before(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
