// Package dijkstra implements the planner's search loop: a single-source
// shortest-path search over an Engine's implicit graph, using a binary
// min-heap open set, a Robin Hood closed set, and a node table keyed by
// vertex hash.
//
// Overview
//
// Search repeatedly pops the least-cost open vertex, adds it to the closed
// set, checks whether it satisfies the goal predicate, and otherwise asks
// the Engine to expand it and relaxes every resulting edge. On the first
// pop of a goal-satisfying vertex, Search walks parent pointers back to the
// start and returns the reconstructed Path.
//
// Memory model
//
// Search allocates one memory.Arena per call and tears it down before
// returning, bounding and accounting for per-search allocation cost as the
// specification requires. Because Go already garbage-collects the actual
// Vertex/Edge graph built during a search, the arena here tracks allocation
// accounting (bytes attributed to each cloned vertex, surfaced as
// Stats.PeakMemoryBytes via the engine) rather than owning the storage
// itself — a deliberate adaptation of the historical arena-owns-everything
// model to a garbage-collected host language.
//
// Goal predicates
//
// A GoalFunc receives the live candidate Vertex and an opaque user value;
// it is expected to use Vertex.Equal (typically against a target vertex
// built with an identity hash) rather than comparing individual fields, so
// that providers using identity hashes to collapse equivalent states keep
// working correctly.
//
// Timeout
//
// Search checks wall-clock elapsed time at each loop iteration boundary once
// the effective timeout is positive, and returns core.ErrTimeout once
// exceeded. The effective timeout is WithTimeout's value if supplied,
// otherwise the engine's configured DefaultTimeoutSeconds; an effective
// timeout of exactly zero disables the check.
//
// Configuration
//
// Search's per-call tunables (timeout, arena size) are overridden via
// Option rather than trailing positional parameters, the way engine.Option
// configures an Engine: WithTimeout, WithArenaSize. Omitting an option uses
// the engine's configured default for that tunable.
package dijkstra
