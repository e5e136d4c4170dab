package engine

// Stats reports aggregate engine activity across one or more Expand calls
// and, transitively, across planning requests that use this engine.
type Stats struct {
	VerticesExpanded uint64
	EdgesGenerated   uint64
	ProvidersCalled  uint64
	CacheHits        uint64
	CacheMisses      uint64
	CachePuts        uint64
	PeakMemoryBytes  uint64
}

func (s *Stats) resetCacheStats() {
	s.CacheHits = 0
	s.CacheMisses = 0
	s.CachePuts = 0
}
