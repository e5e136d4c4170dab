// Package wayfarer implements a multi-modal shortest-path planning engine.
//
// The engine searches over a graph that is implicit: vertices and their
// outgoing transitions are produced on demand by pluggable edge providers
// (engine.ProviderFunc), and a planner (dijkstra.Search) explores this
// graph to find a least-cost path from a start vertex to any vertex
// satisfying a goal predicate.
//
// # Components
//
//   - core: Value, Vertex, Edge/EdgeList, Path — the data model.
//   - memory: Arena, a bump allocator bounding per-search allocation cost.
//   - cache: EdgeCache, memoizing provider output per vertex.
//   - pq: PriorityQueue, the search's open set.
//   - closedset: ClosedSet, the search's visited-vertex set.
//   - engine: Engine, the provider registry and cached expansion layer.
//   - dijkstra: Search, the planning loop itself.
//
// This root package is a thin facade over engine and dijkstra for callers
// who want a single entry point; using those packages directly gives the
// same behavior with more control over configuration.
//
// # Concurrency
//
// One Engine serves one search at a time. See the engine package doc
// comment for the full concurrency model.
package wayfarer
