package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wayfarer-engine/wayfarer/cache"
	"github.com/wayfarer-engine/wayfarer/closedset"
	"github.com/wayfarer-engine/wayfarer/core"
)

// Engine holds a provider registry, an optional EdgeCache, and aggregate
// statistics. See the package doc comment for the expansion algorithm and
// concurrency model.
type Engine struct {
	mu        sync.Mutex
	providers []providerEntry
	cache     *cache.EdgeCache
	cfg       Config
	stats     Stats
	logger    *zap.Logger
}

// New constructs an Engine with DefaultConfig, then applies opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.EnableEdgeCaching {
		e.cache = cache.New()
	}
	return e
}

// Register adds a new provider under name, called in registration order
// during expansion. Registering a duplicate name returns
// core.ErrInvalidArgument and leaves the registry unchanged. Any successful
// registry mutation clears the cache and resets cache statistics.
func (e *Engine) Register(name string, fn ProviderFunc, userData interface{}) error {
	if name == "" || fn == nil {
		return core.ErrNullPointer
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.providers {
		if p.name == name {
			return core.ErrInvalidArgument
		}
	}
	e.providers = append(e.providers, providerEntry{name: name, fn: fn, userData: userData, enabled: true})
	e.clearCacheLocked()
	e.logger.Debug("provider registered", zap.String("name", name))
	return nil
}

// Unregister removes the provider named name. Relative order of the
// remaining providers after a splice is undefined. Clears the cache.
func (e *Engine) Unregister(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, p := range e.providers {
		if p.name == name {
			e.providers[i] = e.providers[len(e.providers)-1]
			e.providers = e.providers[:len(e.providers)-1]
			e.clearCacheLocked()
			e.logger.Debug("provider unregistered", zap.String("name", name))
			return nil
		}
	}
	return core.ErrKeyNotFound
}

// SetEnabled flips the enabled flag of the named provider without
// reordering the registry. Clears the cache.
func (e *Engine) SetEnabled(name string, enabled bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, p := range e.providers {
		if p.name == name {
			e.providers[i].enabled = enabled
			e.clearCacheLocked()
			return nil
		}
	}
	return core.ErrKeyNotFound
}

// SetConfig replaces the engine's configuration. If caching transitions
// false→true a fresh cache is created; true→false destroys the existing
// cache. Either way the cache is cleared and cache stats reset.
func (e *Engine) SetConfig(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	wasEnabled := e.cfg.EnableEdgeCaching
	e.cfg = cfg
	switch {
	case !wasEnabled && cfg.EnableEdgeCaching:
		e.cache = cache.New()
	case wasEnabled && !cfg.EnableEdgeCaching:
		e.cache = nil
	}
	e.clearCacheLocked()
}

// Config returns a copy of the engine's current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// RecordPeakMemory updates the engine's peak-memory statistic if bytes
// exceeds the previously recorded peak. The planner calls this once per
// search with its arena's observed peak usage.
func (e *Engine) RecordPeakMemory(bytes uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if bytes > e.stats.PeakMemoryBytes {
		e.stats.PeakMemoryBytes = bytes
	}
}

// Stats returns a snapshot of the engine's aggregate statistics.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

func (e *Engine) clearCacheLocked() {
	if e.cache != nil {
		e.cache.Clear()
	}
	e.stats.resetCacheStats()
}

// Expand fills out with vertex's outgoing edges: a cache hit short-circuits
// straight to a deep-copied result; a miss calls every enabled provider in
// registration order, concatenating their output, then stores it in the
// cache if caching is enabled. out is cleared first. A provider that
// returns an error is skipped; its partial output is discarded and
// expansion continues with the remaining providers.
func (e *Engine) Expand(vertex *core.Vertex, out *core.EdgeList) error {
	if vertex == nil || out == nil {
		return core.ErrNullPointer
	}
	out.Clear()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.EnableEdgeCaching && e.cache != nil {
		if cached, err := e.cache.Get(vertex); err == nil {
			for _, edge := range cached.Edges {
				out.Append(edge)
			}
			e.stats.CacheHits++
			e.stats.VerticesExpanded++
			return nil
		}
		e.stats.CacheMisses++
	}

	for _, p := range e.providers {
		if !p.enabled {
			continue
		}
		tmp := core.NewEdgeList()
		if err := p.fn(vertex, tmp, p.userData); err != nil {
			e.logger.Debug("provider failed, skipping", zap.String("name", p.name), zap.Error(err))
			continue
		}
		for _, edge := range tmp.Edges {
			out.Append(edge)
		}
		e.stats.ProvidersCalled++
	}

	if e.cfg.EnableEdgeCaching && e.cache != nil {
		_ = e.cache.Put(vertex, out)
		e.stats.CachePuts++
	}

	e.stats.VerticesExpanded++
	e.stats.EdgesGenerated += uint64(out.Len())
	return nil
}

// PrecacheSubgraph performs a breadth-first warm-up of the cache starting
// from seeds, expanding only via the named provider, up to maxDepth hops
// and maxVertices total expansions. It fails if caching is disabled, seeds
// is empty, or providerName is not registered.
func (e *Engine) PrecacheSubgraph(providerName string, seeds []*core.Vertex, maxDepth, maxVertices int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.EnableEdgeCaching || e.cache == nil {
		return core.ErrInvalidArgument
	}
	if len(seeds) == 0 {
		return core.ErrInvalidArgument
	}

	var target *providerEntry
	for i := range e.providers {
		if e.providers[i].name == providerName {
			target = &e.providers[i]
			break
		}
	}
	if target == nil {
		return core.ErrKeyNotFound
	}

	type frontierItem struct {
		vertex *core.Vertex
		depth  int
	}

	visited := closedset.New()
	queue := make([]frontierItem, 0, len(seeds))
	for _, s := range seeds {
		queue = append(queue, frontierItem{vertex: s, depth: 0})
	}

	expanded := 0
	for len(queue) > 0 && expanded < maxVertices {
		item := queue[0]
		queue = queue[1:]
		if visited.Contains(item.vertex) {
			continue
		}
		visited.Add(item.vertex)

		tmp := core.NewEdgeList()
		if err := target.fn(item.vertex, tmp, target.userData); err != nil {
			e.logger.Debug("precache provider failed, skipping vertex", zap.Error(err))
			continue
		}
		_ = e.cache.Put(item.vertex, tmp)
		e.stats.CachePuts++
		expanded++

		if item.depth >= maxDepth {
			continue
		}
		for _, edge := range tmp.Edges {
			if !visited.Contains(edge.Target) {
				queue = append(queue, frontierItem{vertex: edge.Target, depth: item.depth + 1})
			}
		}
	}

	e.logger.Debug("precache complete", zap.Int("vertices", expanded))
	return nil
}
