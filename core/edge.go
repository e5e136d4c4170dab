package core

import "sort"

// Edge is a transition from an implicit source vertex (the one being
// expanded) to a Target vertex, carrying a fixed-length Cost vector — element
// 0 is the scalar cost the planner consumes — and optional sorted-key
// metadata. OwnsTarget records whether this Edge owns its Target: NewEdge
// and Clone set it to true, and edges stored in the cache or in a
// reconstructed Path always own their target. Clone deep-clones Target
// whatever the flag's value.
type Edge struct {
	Target     *Vertex
	Cost       []float64
	OwnsTarget bool

	metadata []pair
}

// NewEdge constructs an Edge to target with the given cost vector. The cost
// vector must have at least one element; element 0 is the scalar cost.
func NewEdge(target *Vertex, cost []float64) (*Edge, error) {
	if target == nil {
		return nil, ErrNullPointer
	}
	if len(cost) == 0 {
		return nil, ErrInvalidArgument
	}
	return &Edge{
		Target:     target,
		Cost:       append([]float64(nil), cost...),
		OwnsTarget: true,
	}, nil
}

// SetMetadata stores value under key, replacing any prior value for that key.
func (e *Edge) SetMetadata(key string, value Value) {
	i := sort.Search(len(e.metadata), func(i int) bool { return e.metadata[i].key >= key })
	if i < len(e.metadata) && e.metadata[i].key == key {
		e.metadata[i].value = value
		return
	}
	e.metadata = append(e.metadata, pair{})
	copy(e.metadata[i+1:], e.metadata[i:])
	e.metadata[i] = pair{key: key, value: value}
}

// GetMetadata returns a copy of the Value stored under key.
func (e *Edge) GetMetadata(key string) (Value, error) {
	i := sort.Search(len(e.metadata), func(i int) bool { return e.metadata[i].key >= key })
	if i >= len(e.metadata) || e.metadata[i].key != key {
		return Value{}, ErrKeyNotFound
	}
	return e.metadata[i].value.Copy(), nil
}

// RemoveMetadata deletes the entry stored under key, if present.
func (e *Edge) RemoveMetadata(key string) {
	i := sort.Search(len(e.metadata), func(i int) bool { return e.metadata[i].key >= key })
	if i < len(e.metadata) && e.metadata[i].key == key {
		e.metadata = append(e.metadata[:i], e.metadata[i+1:]...)
	}
}

// Equal reports structural equality: equal targets, equal cost vectors, and
// equal metadata sets.
func (e *Edge) Equal(o *Edge) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	if !e.Target.Equal(o.Target) {
		return false
	}
	if len(e.Cost) != len(o.Cost) {
		return false
	}
	for i := range e.Cost {
		if e.Cost[i] != o.Cost[i] {
			return false
		}
	}
	if len(e.metadata) != len(o.metadata) {
		return false
	}
	for i := range e.metadata {
		if e.metadata[i].key != o.metadata[i].key || !e.metadata[i].value.Equal(o.metadata[i].value) {
			return false
		}
	}
	return true
}

// Clone always deep-clones Target and metadata, regardless of OwnsTarget.
func (e *Edge) Clone() *Edge {
	if e == nil {
		return nil
	}
	clone := &Edge{
		Target:     e.Target.Clone(),
		Cost:       append([]float64(nil), e.Cost...),
		OwnsTarget: true,
		metadata:   make([]pair, len(e.metadata)),
	}
	for i, p := range e.metadata {
		clone.metadata[i] = pair{key: p.key, value: p.value.Copy()}
	}
	return clone
}

// EdgeList is a growable sequence of Edges. OwnsEdges declares whether
// clearing the list also discards the contained edges (cascading through
// their owned targets) or merely releases the list's own storage.
type EdgeList struct {
	Edges     []*Edge
	OwnsEdges bool
}

// NewEdgeList constructs an empty EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{OwnsEdges: false}
}

// Append adds e to the end of the list.
func (l *EdgeList) Append(e *Edge) {
	l.Edges = append(l.Edges, e)
}

// At returns the edge at index i.
func (l *EdgeList) At(i int) (*Edge, error) {
	if i < 0 || i >= len(l.Edges) {
		return nil, ErrKeyNotFound
	}
	return l.Edges[i], nil
}

// Len returns the number of edges in the list.
func (l *EdgeList) Len() int { return len(l.Edges) }

// Clear empties the list. Deep-clearing vs. shallow release is purely a
// matter of Go's garbage collector reclaiming unreferenced Edges; OwnsEdges
// is retained on the struct for parity with the spec's ownership model and
// to document caller intent.
func (l *EdgeList) Clear() {
	l.Edges = nil
}

// Clone returns a deep copy of l: every edge is cloned, and the result
// always owns its edges.
func (l *EdgeList) Clone() *EdgeList {
	if l == nil {
		return nil
	}
	clone := &EdgeList{Edges: make([]*Edge, len(l.Edges)), OwnsEdges: true}
	for i, e := range l.Edges {
		clone.Edges[i] = e.Clone()
	}
	return clone
}

// Equal reports whether l and o contain structurally equal edges in the same order.
func (l *EdgeList) Equal(o *EdgeList) bool {
	if l == o {
		return true
	}
	if l == nil || o == nil {
		return false
	}
	if len(l.Edges) != len(o.Edges) {
		return false
	}
	for i := range l.Edges {
		if !l.Edges[i].Equal(o.Edges[i]) {
			return false
		}
	}
	return true
}

// Path is an ordered sequence of edges produced by a successful planning
// request, plus its total scalar cost. Path edges always own their target
// vertices, so a Path outlives any per-search arena.
type Path struct {
	Edges     []*Edge
	TotalCost []float64
}

// Len returns the number of edges in the path.
func (p *Path) Len() int { return len(p.Edges) }
