package engine

import "github.com/wayfarer-engine/wayfarer/core"

// ProviderFunc is the provider contract: given the vertex being expanded
// and the list to append generated edges to, it returns nil on success or
// a non-nil error on failure. A failing provider must not have mutated
// vertex and must only have appended to out (callers/engine discard
// partial output on failure regardless).
//
// A provider must tolerate being called repeatedly with identical
// arguments: repeated calls must produce logically equivalent output, and
// it must not mutate vertex.
type ProviderFunc func(vertex *core.Vertex, out *core.EdgeList, userData interface{}) error

type providerEntry struct {
	name     string
	fn       ProviderFunc
	userData interface{}
	enabled  bool
}
