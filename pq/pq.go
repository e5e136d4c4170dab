// Package pq implements PriorityQueue, a binary min-heap over
// (vertex, cost) entries supporting linear-scan decrease-key.
//
// Complexity: Insert and ExtractMin are O(log n). DecreaseKey and Contains
// are O(n): they locate an entry by scanning the backing array and
// comparing vertices with Vertex.Equal. This mirrors the historical
// implementation and is a documented, accepted bottleneck — a hash-indexed
// variant bringing decrease-key to O(log n) is an equally compliant
// alternative, since only externally observable behavior is specified.
package pq

import "github.com/wayfarer-engine/wayfarer/core"

// Entry is one (vertex, cost) slot of the heap. HeapIndex mirrors the
// entry's current array position and is kept consistent by every mutating
// operation; it anchors any future position-indexed decrease-key variant.
type Entry struct {
	Vertex    *core.Vertex
	Cost      float64
	HeapIndex int
}

// PriorityQueue is a binary min-heap ordered by Entry.Cost.
type PriorityQueue struct {
	entries []*Entry
}

// New constructs an empty PriorityQueue.
func New() *PriorityQueue {
	return &PriorityQueue{}
}

// Len returns the number of entries in the queue.
func (q *PriorityQueue) Len() int { return len(q.entries) }

// IsEmpty reports whether the queue holds no entries.
func (q *PriorityQueue) IsEmpty() bool { return len(q.entries) == 0 }

// Clear empties the queue.
func (q *PriorityQueue) Clear() { q.entries = nil }

// PeekMin returns the minimum-cost entry without removing it.
func (q *PriorityQueue) PeekMin() (*Entry, bool) {
	if len(q.entries) == 0 {
		return nil, false
	}
	return q.entries[0], true
}

// Insert appends a new (vertex, cost) entry and bubbles it up to restore
// the heap property.
func (q *PriorityQueue) Insert(vertex *core.Vertex, cost float64) {
	e := &Entry{Vertex: vertex, Cost: cost, HeapIndex: len(q.entries)}
	q.entries = append(q.entries, e)
	q.bubbleUp(e.HeapIndex)
}

// ExtractMin removes and returns the minimum-cost entry.
func (q *PriorityQueue) ExtractMin() (*Entry, bool) {
	n := len(q.entries)
	if n == 0 {
		return nil, false
	}
	min := q.entries[0]
	last := q.entries[n-1]
	q.entries = q.entries[:n-1]
	if n > 1 {
		q.entries[0] = last
		last.HeapIndex = 0
		q.bubbleDown(0)
	}
	min.HeapIndex = -1
	return min, true
}

// find returns the array index of vertex via linear scan, or -1 if absent.
func (q *PriorityQueue) find(vertex *core.Vertex) int {
	for i, e := range q.entries {
		if e.Vertex.Equal(vertex) {
			return i
		}
	}
	return -1
}

// Contains reports whether vertex currently has an entry in the queue.
func (q *PriorityQueue) Contains(vertex *core.Vertex) bool {
	return q.find(vertex) >= 0
}

// DecreaseKey lowers the cost of vertex's entry to newCost and restores the
// heap property. It returns false, making no change, if vertex is absent or
// newCost is not strictly less than the entry's current cost.
func (q *PriorityQueue) DecreaseKey(vertex *core.Vertex, newCost float64) bool {
	i := q.find(vertex)
	if i < 0 {
		return false
	}
	if newCost >= q.entries[i].Cost {
		return false
	}
	q.entries[i].Cost = newCost
	q.bubbleUp(i)
	return true
}

func parent(i int) int     { return (i - 1) / 2 }
func leftChild(i int) int  { return 2*i + 1 }
func rightChild(i int) int { return 2*i + 2 }

func (q *PriorityQueue) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].HeapIndex = i
	q.entries[j].HeapIndex = j
}

func (q *PriorityQueue) bubbleUp(i int) {
	for i > 0 {
		p := parent(i)
		if q.entries[i].Cost >= q.entries[p].Cost {
			break
		}
		q.swap(i, p)
		i = p
	}
}

func (q *PriorityQueue) bubbleDown(i int) {
	n := len(q.entries)
	for {
		smallest := i
		if l := leftChild(i); l < n && q.entries[l].Cost < q.entries[smallest].Cost {
			smallest = l
		}
		if r := rightChild(i); r < n && q.entries[r].Cost < q.entries[smallest].Cost {
			smallest = r
		}
		if smallest == i {
			break
		}
		q.swap(i, smallest)
		i = smallest
	}
}

// ValidateHeap reports whether the binary-heap property holds at every
// index: entries[i].Cost <= entries[left(i)].Cost and <= entries[right(i)].Cost
// whenever those indices exist. It exists for use in tests.
func (q *PriorityQueue) ValidateHeap() bool {
	n := len(q.entries)
	for i := 0; i < n; i++ {
		if l := leftChild(i); l < n && q.entries[i].Cost > q.entries[l].Cost {
			return false
		}
		if r := rightChild(i); r < n && q.entries[i].Cost > q.entries[r].Cost {
			return false
		}
	}
	return true
}
