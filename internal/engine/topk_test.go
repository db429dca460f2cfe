package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopKCapsWorkingSet(t *testing.T) {
	t.Parallel()
	sel := newTopK(3)
	scores := []float64{0.1, 0.9, 0.3, 0.7, 0.5, 0.8}
	for i, s := range scores {
		sel.Offer(candidate{index: i, course: i, score: s})
	}
	got := sel.Drain()
	require.Len(t, got, 3)
	assert.InDelta(t, 0.9, got[0].score, 1e-9)
	assert.InDelta(t, 0.8, got[1].score, 1e-9)
	assert.InDelta(t, 0.7, got[2].score, 1e-9)
}

func TestTopKFewerThanK(t *testing.T) {
	t.Parallel()
	sel := newTopK(100)
	for i, s := range []float64{0.2, 0.6} {
		sel.Offer(candidate{index: i, score: s})
	}
	got := sel.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].index)
	assert.Equal(t, 0, got[1].index)
}

func TestTopKEqualScoreDoesNotReplace(t *testing.T) {
	t.Parallel()
	sel := newTopK(2)
	sel.Offer(candidate{index: 0, score: 0.5})
	sel.Offer(candidate{index: 1, score: 0.5})
	// equal score must not displace an incumbent
	sel.Offer(candidate{index: 2, score: 0.5})
	got := sel.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].index)
	assert.Equal(t, 1, got[1].index)
}

func TestTopKTiesEvictLaterArrival(t *testing.T) {
	t.Parallel()
	sel := newTopK(2)
	sel.Offer(candidate{index: 0, score: 0.5})
	sel.Offer(candidate{index: 1, score: 0.5})
	// strictly better: evicts the minimum, which on a tie is the later arrival
	sel.Offer(candidate{index: 2, score: 0.9})
	got := sel.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].index)
	assert.Equal(t, 0, got[1].index)
}

func TestTopKDrainDeterministicTieOrder(t *testing.T) {
	t.Parallel()
	sel := newTopK(4)
	sel.Offer(candidate{index: 3, score: 0.5})
	sel.Offer(candidate{index: 1, score: 0.5})
	sel.Offer(candidate{index: 2, score: 0.9})
	sel.Offer(candidate{index: 0, score: 0.5})
	got := sel.Drain()
	require.Len(t, got, 4)
	assert.Equal(t, []int{2, 0, 1, 3}, []int{got[0].index, got[1].index, got[2].index, got[3].index})
}
