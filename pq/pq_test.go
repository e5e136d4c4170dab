package pq_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wayfarer-engine/wayfarer/core"
	"github.com/wayfarer-engine/wayfarer/pq"
)

func vertexN(n int64) *core.Vertex {
	return core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{{Key: "n", Value: core.NewIntValue(n)}})
}

func TestPriorityQueueExtractsInCostOrder(t *testing.T) {
	q := pq.New()
	costs := []float64{5, 1, 4, 2, 3}
	for i, c := range costs {
		q.Insert(vertexN(int64(i)), c)
	}
	require.True(t, q.ValidateHeap())

	var seen []float64
	for !q.IsEmpty() {
		e, ok := q.ExtractMin()
		require.True(t, ok)
		seen = append(seen, e.Cost)
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5}, seen)
}

func TestPriorityQueueHeapPropertyUnderRandomInserts(t *testing.T) {
	q := pq.New()
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		q.Insert(vertexN(int64(i)), r.Float64()*1000)
		require.True(t, q.ValidateHeap())
	}
	for !q.IsEmpty() {
		_, ok := q.ExtractMin()
		require.True(t, ok)
		require.True(t, q.ValidateHeap())
	}
}

func TestPriorityQueueDecreaseKey(t *testing.T) {
	q := pq.New()
	q.Insert(vertexN(1), 10)
	q.Insert(vertexN(2), 20)

	require.True(t, q.DecreaseKey(vertexN(2), 1))
	require.True(t, q.ValidateHeap())
	e, _ := q.PeekMin()
	require.Equal(t, float64(1), e.Cost)
}

func TestPriorityQueueDecreaseKeyNoOpWhenNotLower(t *testing.T) {
	q := pq.New()
	q.Insert(vertexN(1), 10)
	require.False(t, q.DecreaseKey(vertexN(1), 10))
	require.False(t, q.DecreaseKey(vertexN(1), 15))
}

func TestPriorityQueueContains(t *testing.T) {
	q := pq.New()
	q.Insert(vertexN(1), 10)
	require.True(t, q.Contains(vertexN(1)))
	require.False(t, q.Contains(vertexN(2)))
}
