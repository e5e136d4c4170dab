package cache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/wayfarer-engine/wayfarer/core"
)

const (
	initialBucketCount = 32
	maxLoadFactor       = 0.75
)

type entry struct {
	vertex *core.Vertex
	edges  *core.EdgeList
	hash   uint64 // vertex.Hash(), used for equality confirmation
	next   *entry
}

// EdgeCache is a never-evicting hash table from Vertex to an owned,
// deep-copied EdgeList, keyed by the vertex's FNV-1a/identity hash.
type EdgeCache struct {
	buckets []*entry
	mask    uint64
	size    int
}

// New constructs an empty EdgeCache.
func New() *EdgeCache {
	return &EdgeCache{
		buckets: make([]*entry, initialBucketCount),
		mask:    initialBucketCount - 1,
	}
}

// bucketIndex mixes v's content/identity hash through xxhash to spread
// bucket occupancy evenly; the spec-mandated FNV-1a/identity hash itself is
// used only for equality confirmation within a bucket chain.
func (c *EdgeCache) bucketIndex(h uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	return xxhash.Sum64(buf[:]) & c.mask
}

// Get looks up vertex and, on a hit, returns an independent deep copy of
// the cached EdgeList. The returned list shares no storage with the
// cache's internal entry.
func (c *EdgeCache) Get(vertex *core.Vertex) (*core.EdgeList, error) {
	if vertex == nil {
		return nil, core.ErrNullPointer
	}
	h := vertex.Hash()
	idx := c.bucketIndex(h)
	for e := c.buckets[idx]; e != nil; e = e.next {
		if e.hash == h && e.vertex.Equal(vertex) {
			return e.edges.Clone(), nil
		}
	}
	return nil, core.ErrKeyNotFound
}

// Contains reports whether vertex has a cached entry.
func (c *EdgeCache) Contains(vertex *core.Vertex) bool {
	if vertex == nil {
		return false
	}
	h := vertex.Hash()
	idx := c.bucketIndex(h)
	for e := c.buckets[idx]; e != nil; e = e.next {
		if e.hash == h && e.vertex.Equal(vertex) {
			return true
		}
	}
	return false
}

// Put stores a deep copy of edges under a cloned key of vertex, replacing
// any prior entry for the same vertex. Modifying vertex or edges after Put
// returns has no effect on the stored entry.
func (c *EdgeCache) Put(vertex *core.Vertex, edges *core.EdgeList) error {
	if vertex == nil || edges == nil {
		return core.ErrNullPointer
	}
	h := vertex.Hash()
	idx := c.bucketIndex(h)
	for e := c.buckets[idx]; e != nil; e = e.next {
		if e.hash == h && e.vertex.Equal(vertex) {
			e.edges = edges.Clone()
			return nil
		}
	}

	if float64(c.size+1)/float64(len(c.buckets)) > maxLoadFactor {
		c.resize()
		idx = c.bucketIndex(h)
	}

	c.buckets[idx] = &entry{
		vertex: vertex.Clone(),
		edges:  edges.Clone(),
		hash:   h,
		next:   c.buckets[idx],
	}
	c.size++
	return nil
}

// Clear discards every cached entry.
func (c *EdgeCache) Clear() {
	for i := range c.buckets {
		c.buckets[i] = nil
	}
	c.size = 0
}

// Size returns the number of cached entries.
func (c *EdgeCache) Size() int { return c.size }

func (c *EdgeCache) resize() {
	old := c.buckets
	newBuckets := make([]*entry, len(old)*2)
	newMask := uint64(len(newBuckets) - 1)

	c.buckets = newBuckets
	c.mask = newMask
	c.size = 0

	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := c.bucketIndex(e.hash)
			e.next = c.buckets[idx]
			c.buckets[idx] = e
			c.size++
			e = next
		}
	}
}
