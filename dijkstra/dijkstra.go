package dijkstra

import (
	"math"
	"time"

	"github.com/wayfarer-engine/wayfarer/core"
	"github.com/wayfarer-engine/wayfarer/closedset"
	"github.com/wayfarer-engine/wayfarer/engine"
	"github.com/wayfarer-engine/wayfarer/memory"
	"github.com/wayfarer-engine/wayfarer/pq"
)

// estimateVertexBytes attributes an approximate byte cost to a cloned
// vertex for arena accounting purposes; see the package doc comment on the
// memory model for why this is accounting rather than storage.
func estimateVertexBytes(v *core.Vertex) int {
	const perPairOverhead = 32
	return 16 + v.Len()*perPairOverhead
}

// Search runs Dijkstra's algorithm from start over eng's implicit graph,
// stopping at the first vertex satisfying isGoal. Without WithTimeout or
// WithArenaSize, the search uses eng's configured DefaultTimeoutSeconds and
// DefaultArenaSize.
//
// Returns core.ErrNoPathFound if the open set empties before the goal is
// reached, or core.ErrTimeout if the timeout elapses first. Stats are
// populated in both cases.
func Search(eng *engine.Engine, start *core.Vertex, isGoal GoalFunc, userData interface{}, opts ...Option) (*core.Path, Stats, error) {
	if eng == nil || start == nil || isGoal == nil {
		return nil, Stats{}, core.ErrNullPointer
	}

	cfg := searchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	arenaSize := eng.Config().DefaultArenaSize
	if cfg.hasArenaSize {
		arenaSize = cfg.arenaSize
	}
	timeoutSeconds := eng.Config().DefaultTimeoutSeconds
	if cfg.hasTimeout {
		timeoutSeconds = cfg.timeoutSeconds
	}

	arena := memory.New(arenaSize)
	defer func() {
		eng.RecordPeakMemory(uint64(arena.Stats().PeakUsage))
		arena.Destroy()
	}()

	startTime := time.Now()
	open := pq.New()
	closed := closedset.New()
	nodes := make(nodeTable)
	var stats Stats

	startClone := start.Clone()
	arena.Alloc(estimateVertexBytes(startClone))
	startNode := &node{vertex: startClone, parent: nil, cost: 0}
	nodes.insert(startNode)
	open.Insert(startClone, 0)

	edgeList := core.NewEdgeList()

	for !open.IsEmpty() {
		if timeoutSeconds > 0 && time.Since(startTime).Seconds() > timeoutSeconds {
			stats.TimeoutReached = true
			stats.PlanningTimeSeconds = time.Since(startTime).Seconds()
			return nil, stats, core.ErrTimeout
		}

		entry, _ := open.ExtractMin()
		u := entry.Vertex
		cu := entry.Cost

		closed.Add(u)
		stats.VerticesExpanded++

		if isGoal(u, userData) {
			uNode := nodes.find(u)
			path := reconstructPath(uNode)
			stats.GoalFound = true
			stats.PlanningTimeSeconds = time.Since(startTime).Seconds()
			return path, stats, nil
		}

		if err := eng.Expand(u, edgeList); err != nil {
			continue
		}
		uNode := nodes.find(u)

		for _, edge := range edgeList.Edges {
			stats.EdgesExamined++
			v := edge.Target
			if closed.Contains(v) {
				continue
			}

			newCost := cu + edge.Cost[0]
			existing := nodes.find(v)
			if existing == nil {
				vClone := v.Clone()
				arena.Alloc(estimateVertexBytes(vClone))
				existing = &node{vertex: vClone, parent: nil, cost: math.Inf(1)}
				nodes.insert(existing)
			}

			if newCost < existing.cost {
				existing.cost = newCost
				existing.parent = uNode
				if open.Contains(v) {
					open.DecreaseKey(v, newCost)
				} else {
					open.Insert(existing.vertex, newCost)
					stats.NodesGenerated++
				}
			}
		}
	}

	stats.PlanningTimeSeconds = time.Since(startTime).Seconds()
	return nil, stats, core.ErrNoPathFound
}

// reconstructPath walks parent pointers from goalNode back to the start,
// building the path's edge slice in forward order.
func reconstructPath(goalNode *node) *core.Path {
	length := 0
	for n := goalNode; n.parent != nil; n = n.parent {
		length++
	}

	path := &core.Path{
		Edges:     make([]*core.Edge, length),
		TotalCost: []float64{goalNode.cost},
	}

	n := goalNode
	for i := length - 1; i >= 0; i-- {
		parent := n.parent
		edge := &core.Edge{
			Target:     n.vertex.Clone(),
			Cost:       []float64{n.cost - parent.cost},
			OwnsTarget: true,
		}
		path.Edges[i] = edge
		n = parent
	}
	return path
}
