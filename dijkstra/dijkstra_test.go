package dijkstra_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wayfarer-engine/wayfarer/core"
	"github.com/wayfarer-engine/wayfarer/dijkstra"
	"github.com/wayfarer-engine/wayfarer/engine"
)

func gridVertex(x, y int64) *core.Vertex {
	return core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{
		{Key: "x", Value: core.NewIntValue(x)},
		{Key: "y", Value: core.NewIntValue(y)},
	})
}

func gridCoords(v *core.Vertex) (int64, int64) {
	xv, _ := v.Get("x")
	yv, _ := v.Get("y")
	x, _ := xv.Int()
	y, _ := yv.Int()
	return x, y
}

// grid4Provider generates unit-cost edges to 4-connected neighbors within a
// 10x10 grid ([0,9] on each axis).
func grid4Provider(vertex *core.Vertex, out *core.EdgeList, _ interface{}) error {
	x, y := gridCoords(vertex)
	deltas := [][2]int64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx > 9 || ny < 0 || ny > 9 {
			continue
		}
		edge, err := core.NewEdge(gridVertex(nx, ny), []float64{1})
		if err != nil {
			return err
		}
		out.Append(edge)
	}
	return nil
}

func goalAt(tx, ty int64) dijkstra.GoalFunc {
	return func(v *core.Vertex, _ interface{}) bool {
		x, y := gridCoords(v)
		return x == tx && y == ty
	}
}

func TestSearchGrid4ShortestPath(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("grid", grid4Provider, nil))

	path, stats, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(3, 0), nil)
	require.NoError(t, err)
	require.True(t, stats.GoalFound)
	require.Equal(t, 3, path.Len())
	require.InDelta(t, 3.0, path.TotalCost[0], 1e-9)
}

func TestSearchLShape(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("grid", grid4Provider, nil))

	path, _, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(2, 2), nil)
	require.NoError(t, err)
	require.Equal(t, 4, path.Len())
	require.InDelta(t, 4.0, path.TotalCost[0], 1e-9)
}

func TestSearchUnreachableGoal(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("grid", grid4Provider, nil))

	_, stats, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(-5, -5), nil)
	require.ErrorIs(t, err, core.ErrNoPathFound)
	require.False(t, stats.GoalFound)
}

func linearChainProvider(vertex *core.Vertex, out *core.EdgeList, _ interface{}) error {
	idv, _ := vertex.Get("id")
	id, _ := idv.Int()
	if id >= 10 {
		return nil
	}
	target := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{{Key: "id", Value: core.NewIntValue(id + 1)}})
	edge, err := core.NewEdge(target, []float64{1})
	if err != nil {
		return err
	}
	out.Append(edge)
	return nil
}

func TestSearchLinearChain(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("chain", linearChainProvider, nil))

	start := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{{Key: "id", Value: core.NewIntValue(0)}})

	goal := func(v *core.Vertex, _ interface{}) bool {
		idv, _ := v.Get("id")
		id, _ := idv.Int()
		return id == 8
	}

	path, stats, err := dijkstra.Search(e, start, goal, nil)
	require.NoError(t, err)
	require.Equal(t, 8, path.Len())
	require.InDelta(t, 8.0, path.TotalCost[0], 1e-9)
	require.Equal(t, uint64(9), stats.VerticesExpanded)
}

func TestSearchStartEqualsGoal(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("grid", grid4Provider, nil))

	path, stats, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(0, 0), nil)
	require.NoError(t, err)
	require.True(t, stats.GoalFound)
	require.Equal(t, 0, path.Len())
	require.InDelta(t, 0.0, path.TotalCost[0], 1e-9)
}

func TestSearchWithArenaSizeOption(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("grid", grid4Provider, nil))

	path, stats, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(3, 0), nil, dijkstra.WithArenaSize(4096))
	require.NoError(t, err)
	require.True(t, stats.GoalFound)
	require.Equal(t, 3, path.Len())
}

func TestSearchWithTimeoutOptionExceeded(t *testing.T) {
	e := engine.New()
	slow := func(vertex *core.Vertex, out *core.EdgeList, _ interface{}) error {
		time.Sleep(2 * time.Millisecond)
		return grid4Provider(vertex, out, nil)
	}
	require.NoError(t, e.Register("grid", slow, nil))

	_, stats, err := dijkstra.Search(e, gridVertex(0, 0), goalAt(9, 9), nil, dijkstra.WithTimeout(1*time.Millisecond.Seconds()))
	require.ErrorIs(t, err, core.ErrTimeout)
	require.True(t, stats.TimeoutReached)
}

func TestSearchWithTimeoutOptionPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithTimeout(-1) })
}

func TestSearchWithArenaSizeOptionPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithArenaSize(0) })
}

func TestSearchCacheHitAccounting(t *testing.T) {
	calls := 0
	provider := func(vertex *core.Vertex, out *core.EdgeList, _ interface{}) error {
		calls++
		return grid4Provider(vertex, out, nil)
	}
	e := engine.New(engine.WithEdgeCaching(true))
	require.NoError(t, e.Register("grid", provider, nil))

	out := core.NewEdgeList()
	require.NoError(t, e.Expand(gridVertex(0, 0), out))
	require.NoError(t, e.Expand(gridVertex(0, 0), out))

	stats := e.Stats()
	require.Equal(t, uint64(1), stats.CacheHits)
	require.Equal(t, uint64(1), stats.CacheMisses)
	require.Equal(t, uint64(1), stats.CachePuts)
	require.Equal(t, uint64(1), stats.ProvidersCalled)
}
