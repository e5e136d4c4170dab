// Package memory implements Arena, a bump allocator with reset/destroy
// lifecycle.
//
// Overview
//
// An Arena owns a chain of fixed-size blocks. Allocation bumps a cursor
// within the current block; when a block has insufficient room, a new block
// is appended to the chain, sized to the larger of the arena's default
// block size and the requested size. Reset rewinds every block's cursor to
// zero without releasing any block, making repeated alloc/reset cycles
// allocation-free after the first pass reaches steady-state block sizes.
//
// When to use
//
// One Arena per search: the planner creates a fresh Arena per call, records
// an estimated byte cost for each vertex it clones, and destroys the Arena
// when the search completes. The cloned vertices, node-table entries and
// priority-queue entries themselves are ordinary Go values, not stored in
// the Arena's blocks.
//
// Thread safety
//
// An Arena is not safe for concurrent use; each search owns its own Arena
// exclusively, consistent with the engine's single-threaded-cooperative
// scheduling model.
package memory
