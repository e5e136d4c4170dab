// Package closedset implements ClosedSet, an open-addressed hash set of
// visited vertices using Robin Hood probing, as required by the planner's
// closed-set component.
//
// Robin Hood hashing keeps probe-sequence lengths (PSL) low and evenly
// distributed: on insertion, if the element currently occupying a slot has
// a shorter PSL than the element being inserted, the two swap and insertion
// continues with the displaced element. This bounds worst-case probe length
// far better than plain linear probing under the same load factor.
package closedset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/wayfarer-engine/wayfarer/core"
)

const (
	initialCapacity = 32
	maxLoadFactor    = 0.7
)

type slot struct {
	occupied bool
	vertex   *core.Vertex
	hash     uint64
	psl      int // probe sequence length: distance from the slot's ideal index
}

// ClosedSet is a Robin-Hood open-addressed hash set of Vertex pointers,
// compared by Vertex.Equal.
type ClosedSet struct {
	slots []slot
	mask  uint64
	size  int
}

// New constructs an empty ClosedSet.
func New() *ClosedSet {
	return &ClosedSet{
		slots: make([]slot, initialCapacity),
		mask:  initialCapacity - 1,
	}
}

// normalizeHash reserves zero as the empty-slot sentinel: a vertex whose
// hash is genuinely zero is coerced to one for storage and lookup.
func normalizeHash(h uint64) uint64 {
	if h == 0 {
		return 1
	}
	return h
}

func mix(h uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], h)
	return xxhash.Sum64(buf[:])
}

func (s *ClosedSet) idealIndex(h uint64) uint64 {
	return mix(h) & s.mask
}

// Contains reports whether vertex has already been added.
func (s *ClosedSet) Contains(vertex *core.Vertex) bool {
	if vertex == nil {
		return false
	}
	h := normalizeHash(vertex.Hash())
	idx := s.idealIndex(h)
	for psl := 0; psl < len(s.slots); psl++ {
		sl := &s.slots[(idx+uint64(psl))%uint64(len(s.slots))]
		if !sl.occupied {
			return false
		}
		if sl.psl < psl {
			// Robin Hood invariant: no later slot in this probe chain can
			// hold our key once we pass a slot with a shorter PSL than ours.
			return false
		}
		if sl.hash == h && sl.vertex.Equal(vertex) {
			return true
		}
	}
	return false
}

// Add inserts vertex into the set. Adding a vertex already present is a no-op.
func (s *ClosedSet) Add(vertex *core.Vertex) {
	if vertex == nil || s.Contains(vertex) {
		return
	}
	if float64(s.size+1)/float64(len(s.slots)) > maxLoadFactor {
		s.grow()
	}
	h := normalizeHash(vertex.Hash())
	s.insert(slot{occupied: true, vertex: vertex, hash: h, psl: 0}, s.idealIndex(h))
	s.size++
}

func (s *ClosedSet) insert(incoming slot, idx uint64) {
	n := uint64(len(s.slots))
	for {
		cur := &s.slots[idx%n]
		if !cur.occupied {
			*cur = incoming
			return
		}
		if cur.psl < incoming.psl {
			incoming, *cur = *cur, incoming
		}
		incoming.psl++
		idx++
	}
}

func (s *ClosedSet) grow() {
	old := s.slots
	s.slots = make([]slot, len(old)*2)
	s.mask = uint64(len(s.slots) - 1)
	s.size = 0
	for _, sl := range old {
		if sl.occupied {
			sl.psl = 0
			s.insert(sl, s.idealIndex(sl.hash))
			s.size++
		}
	}
}

// Clear empties the set.
func (s *ClosedSet) Clear() {
	s.slots = make([]slot, initialCapacity)
	s.mask = initialCapacity - 1
	s.size = 0
}

// Size returns the number of vertices currently in the set.
func (s *ClosedSet) Size() int { return s.size }
