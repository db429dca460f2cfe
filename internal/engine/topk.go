package engine

import (
	"container/heap"
	"sort"
)

// candidate is the unit flowing through the selection and adjustment stages.
type candidate struct {
	index  int // arrival order, tiebreaker
	score  float64
	parts  map[string]float64
	course int // position in the source course slice
}

// topK maintains a bounded best-K working set over a course stream using a
// min-heap keyed by (score, index). Course objects are never compared
// directly; ties resolve by arrival index so selection is deterministic.
// Cost is O(N log K) over a stream of N candidates.
type topK struct {
	k int
	h candidateHeap
}

func newTopK(k int) *topK {
	return &topK{k: k, h: make(candidateHeap, 0, k)}
}

// Offer admits a candidate if the working set has room, or if it strictly
// beats the current minimum.
func (t *topK) Offer(c candidate) {
	if t.k <= 0 {
		return
	}
	if t.h.Len() < t.k {
		heap.Push(&t.h, c)
		return
	}
	if c.score > t.h[0].score {
		t.h[0] = c
		heap.Fix(&t.h, 0)
	}
}

// Drain empties the heap into a slice sorted descending by score, ascending
// by arrival index on ties.
func (t *topK) Drain() []candidate {
	out := make([]candidate, t.h.Len())
	copy(out, t.h)
	t.h = t.h[:0]
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].index < out[j].index
	})
	return out
}

type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

// Less orders by score ascending; on equal scores the later arrival is
// considered smaller so it is evicted first.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].index > h[j].index
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
