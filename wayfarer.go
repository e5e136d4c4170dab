package wayfarer

import (
	"github.com/wayfarer-engine/wayfarer/core"
	"github.com/wayfarer-engine/wayfarer/dijkstra"
	"github.com/wayfarer-engine/wayfarer/engine"
)

// Result is the outcome of a planning request: a list of paths (length 0 on
// no-path, length 1 on success — multiple path alternatives are not
// supported, per spec.md's Non-goals) plus search statistics.
type Result struct {
	Paths []*core.Path
	Stats dijkstra.Stats
}

// Plan runs a single-objective Dijkstra search from start to the first
// vertex satisfying isGoal, over eng's implicit graph. opts overrides eng's
// configured default timeout/arena size for this call; see
// dijkstra.WithTimeout and dijkstra.WithArenaSize.
func Plan(eng *engine.Engine, start *core.Vertex, isGoal dijkstra.GoalFunc, userData interface{}, opts ...dijkstra.Option) (Result, error) {
	path, stats, err := dijkstra.Search(eng, start, isGoal, userData, opts...)
	if err != nil {
		return Result{Stats: stats}, err
	}
	return Result{Paths: []*core.Path{path}, Stats: stats}, nil
}

// PlanSimple runs Plan with eng's configured default timeout and arena size.
func PlanSimple(eng *engine.Engine, start *core.Vertex, isGoal dijkstra.GoalFunc, userData interface{}) (Result, error) {
	return Plan(eng, start, isGoal, userData)
}
