// Package engine implements the provider registry and cached vertex
// expansion that sit between the planner and the pluggable edge providers.
//
// Overview
//
// An Engine holds a list of named providers, an optional EdgeCache, and
// aggregate statistics. Expand(vertex) consults the cache first (when
// caching is enabled); on a miss it calls every enabled provider in
// registration order, concatenates their output, and — again if caching is
// enabled — stores the result for next time.
//
// Any mutation to the provider registry (Register, Unregister, SetEnabled)
// clears the cache and resets cache statistics, since a changed provider
// set can change what a given vertex expands to.
//
// Thread safety
//
// One Engine serves one search at a time: the scheduling model is
// single-threaded cooperative.
// Register/Unregister/SetEnabled/SetConfig/Expand are guarded by an
// internal mutex, which serializes overlapping calls; it does not detect
// or report concurrent use. Two
// genuinely concurrent searches against the same Engine are not supported;
// run one Engine per goroutine instead.
package engine
