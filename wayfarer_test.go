package wayfarer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wayfarer-engine/wayfarer"
	"github.com/wayfarer-engine/wayfarer/core"
	"github.com/wayfarer-engine/wayfarer/engine"
)

func chainVertex(id int64) *core.Vertex {
	return core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{{Key: "id", Value: core.NewIntValue(id)}})
}

func chainProvider(vertex *core.Vertex, out *core.EdgeList, _ interface{}) error {
	idv, _ := vertex.Get("id")
	id, _ := idv.Int()
	if id >= 5 {
		return nil
	}
	edge, err := core.NewEdge(chainVertex(id+1), []float64{1})
	if err != nil {
		return err
	}
	out.Append(edge)
	return nil
}

func TestPlanSimpleEndToEnd(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("chain", chainProvider, nil))

	goal := func(v *core.Vertex, _ interface{}) bool {
		idv, _ := v.Get("id")
		id, _ := idv.Int()
		return id == 3
	}

	result, err := wayfarer.PlanSimple(e, chainVertex(0), goal, nil)
	require.NoError(t, err)
	require.Len(t, result.Paths, 1)
	require.Equal(t, 3, result.Paths[0].Len())
}

func TestPlanNoPathFoundReturnsEmptyPathsList(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.Register("chain", chainProvider, nil))

	goal := func(v *core.Vertex, _ interface{}) bool {
		idv, _ := v.Get("id")
		id, _ := idv.Int()
		return id == 999
	}

	result, err := wayfarer.PlanSimple(e, chainVertex(0), goal, nil)
	require.ErrorIs(t, err, core.ErrNoPathFound)
	require.Len(t, result.Paths, 0)
}
