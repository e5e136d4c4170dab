package dijkstra

import "github.com/wayfarer-engine/wayfarer/core"

// GoalFunc reports whether vertex satisfies the search's goal condition.
// userData is the opaque pointer the caller supplied to Search.
type GoalFunc func(vertex *core.Vertex, userData interface{}) bool

// Option configures a single Search call's optional tunables, overriding
// the engine's configured defaults for that call only.
type Option func(*searchConfig)

type searchConfig struct {
	timeoutSeconds float64
	hasTimeout     bool
	arenaSize      int
	hasArenaSize   bool
}

// WithTimeout overrides the engine's configured default timeout for this
// search. Zero disables the timeout check entirely; it panics if seconds is
// negative, since a negative timeout is a programmer error caught at
// call time, not a runtime data error.
func WithTimeout(seconds float64) Option {
	if seconds < 0 {
		panic("dijkstra: timeout seconds must not be negative")
	}
	return func(c *searchConfig) {
		c.timeoutSeconds = seconds
		c.hasTimeout = true
	}
}

// WithArenaSize overrides the engine's configured default arena size for
// this search. It panics if n is not positive.
func WithArenaSize(n int) Option {
	if n <= 0 {
		panic("dijkstra: arena size must be positive")
	}
	return func(c *searchConfig) {
		c.arenaSize = n
		c.hasArenaSize = true
	}
}

// Stats reports the outcome of one Search call.
type Stats struct {
	VerticesExpanded    uint64
	EdgesExamined       uint64
	NodesGenerated      uint64
	PlanningTimeSeconds float64
	GoalFound           bool
	TimeoutReached      bool
}

// node is the search's per-vertex bookkeeping entry: best-known cost and a
// parent link used to reconstruct the path once the goal is reached.
type node struct {
	vertex *core.Vertex
	parent *node
	cost   float64
}

// nodeTable is a Go map from vertex hash to the (possibly
// several, on hash collision) nodes sharing that hash, disambiguated by
// Vertex.Equal. The historical implementation keys this table by a raw
// vertex-pointer hash over a fixed 1024-slot linearly probed array; Go has
// no stable pointer hash, so this table keys on the vertex's own
// FNV-1a/identity hash instead — the same hash core.Vertex already
// computes and the same one cache.EdgeCache and closedset.ClosedSet key on.
type nodeTable map[uint64][]*node

func (t nodeTable) find(v *core.Vertex) *node {
	for _, n := range t[v.Hash()] {
		if n.vertex.Equal(v) {
			return n
		}
	}
	return nil
}

func (t nodeTable) insert(n *node) {
	h := n.vertex.Hash()
	t[h] = append(t[h], n)
}
