package memory

// DefaultBlockSize is the block size used when a zero initial size is given
// to New, matching the historical default of 1 MiB.
const DefaultBlockSize = 1 << 20

// MinBlockSize is the default floor on the size of every block an Arena
// creates, regardless of a smaller requested initial size. WithMinBlockSize
// replaces it per Arena, with a lower or higher floor.
const MinBlockSize = 4096

// DefaultAlignment is substituted whenever a caller requests a zero or
// non-power-of-two alignment.
const DefaultAlignment = 8

// Stats reports cumulative allocation statistics for an Arena. Counters
// accumulate across Reset calls, and PeakUsage is the maximum usage seen
// across all of them; none of these fields is cleared by Reset.
type Stats struct {
	TotalAllocated uint64 // bytes consumed after alignment padding
	TotalRequested uint64 // bytes requested by callers, pre-alignment
	NumAllocations uint64
	NumBlocks      uint64
	NumResets      uint64
	PeakUsage      uint64 // maximum concurrent usage observed across all resets
}

type block struct {
	data []byte
	used int
}

// Arena is a bump allocator over a chain of blocks. The zero value is not
// usable; construct one with New.
type Arena struct {
	blocks           []*block
	current          int
	defaultBlockSize int
	minBlockSize     int
	stats            Stats
}

// Option configures an Arena at construction time.
type Option func(*arenaConfig)

type arenaConfig struct {
	minBlockSize int
}

// WithMinBlockSize overrides the floor New otherwise imposes via
// MinBlockSize on every block it creates, including growth blocks. It
// panics if n is not positive, since a non-positive floor is a programmer
// error caught at wiring time, not a runtime data error.
func WithMinBlockSize(n int) Option {
	if n <= 0 {
		panic("memory: min block size must be positive")
	}
	return func(c *arenaConfig) {
		c.minBlockSize = n
	}
}

// New creates an Arena whose blocks default to initialSize bytes. A zero
// initialSize substitutes DefaultBlockSize; any size below the arena's
// minimum block size (MinBlockSize unless overridden by WithMinBlockSize)
// is raised to that minimum.
func New(initialSize int, opts ...Option) *Arena {
	cfg := arenaConfig{minBlockSize: MinBlockSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if initialSize == 0 {
		initialSize = DefaultBlockSize
	}
	a := &Arena{defaultBlockSize: initialSize, minBlockSize: cfg.minBlockSize}
	a.blocks = append(a.blocks, a.newBlock(initialSize))
	a.current = 0
	a.stats.NumBlocks = 1
	return a
}

func (a *Arena) newBlock(size int) *block {
	if size < a.minBlockSize {
		size = a.minBlockSize
	}
	return &block{data: make([]byte, size)}
}

func alignUp(v, alignment int) int {
	return (v + alignment - 1) &^ (alignment - 1)
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// findBlockWithSpace returns the index of a block with at least size bytes
// free, preferring the current block, then scanning the chain, then
// appending a freshly created block sized to the larger of the arena's
// default block size and the request.
func (a *Arena) findBlockWithSpace(size int) int {
	if cur := a.blocks[a.current]; len(cur.data)-cur.used >= size {
		return a.current
	}
	for i, b := range a.blocks {
		if len(b.data)-b.used >= size {
			a.current = i
			return i
		}
	}
	newSize := a.defaultBlockSize
	if size > newSize {
		newSize = alignUp(size, DefaultAlignment)
	}
	a.blocks = append(a.blocks, a.newBlock(newSize))
	a.current = len(a.blocks) - 1
	a.stats.NumBlocks++
	return a.current
}

// AllocAligned returns a size-byte slice whose start offset within its
// backing block is a multiple of alignment. alignment must be a power of
// two; otherwise DefaultAlignment is substituted. A zero size returns nil.
func (a *Arena) AllocAligned(size, alignment int) []byte {
	if a == nil || size == 0 {
		return nil
	}
	if alignment == 0 || !isPowerOfTwo(alignment) {
		alignment = DefaultAlignment
	}

	// Reserve enough slack to cover alignment padding within the chosen block.
	idx := a.findBlockWithSpace(size + alignment - 1)
	b := a.blocks[idx]

	alignedStart := alignUp(b.used, alignment)
	spaceNeeded := alignedStart - b.used + size
	if len(b.data)-b.used < spaceNeeded {
		// findBlockWithSpace reserved slack for exactly this case.
		return nil
	}

	out := b.data[alignedStart : alignedStart+size : alignedStart+size]
	b.used += spaceNeeded

	a.stats.TotalAllocated += uint64(spaceNeeded)
	a.stats.TotalRequested += uint64(size)
	a.stats.NumAllocations++
	if usage := a.usage(); usage > a.stats.PeakUsage {
		a.stats.PeakUsage = usage
	}
	return out
}

// Alloc returns a size-byte slice aligned to DefaultAlignment.
func (a *Arena) Alloc(size int) []byte {
	return a.AllocAligned(size, DefaultAlignment)
}

// Calloc allocates count*size bytes, zero-filled (Go's make already
// zero-fills, so this differs from Alloc only in its overflow check and its
// count*size signature). Returns nil on zero count/size or on count*size
// overflow.
func (a *Arena) Calloc(count, size int) []byte {
	if a == nil || count == 0 || size == 0 {
		return nil
	}
	total := count * size
	if total/count != size {
		return nil
	}
	return a.Alloc(total)
}

// Reset rewinds every block's used counter to zero but keeps the block
// chain, so a subsequent identical allocation sequence needs no new blocks.
// Cumulative counters are preserved across Reset; only NumResets increments.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	for _, b := range a.blocks {
		b.used = 0
	}
	a.current = 0
	a.stats.NumResets++
}

// Destroy releases the arena's blocks. Go's garbage collector reclaims the
// backing storage once unreferenced; Destroy exists for parity with the
// spec's explicit teardown step and to guard against further use.
func (a *Arena) Destroy() {
	if a == nil {
		return
	}
	a.blocks = nil
	a.current = 0
}

// Stats returns a snapshot of the arena's cumulative allocation statistics.
func (a *Arena) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	return a.stats
}

// Usage returns current bytes in use across every block in the chain.
func (a *Arena) Usage() int {
	if a == nil {
		return 0
	}
	return a.usage()
}

func (a *Arena) usage() int {
	total := 0
	for _, b := range a.blocks {
		total += b.used
	}
	return total
}

// CanAlloc reports whether an allocation of size bytes would currently
// succeed without examining whether the underlying system can still grow
// the chain. Like the historical implementation, this is optimistic: a
// false negative never occurs, but a true result does not guarantee the
// subsequent Alloc will not itself need to append a new block.
func (a *Arena) CanAlloc(size int) bool {
	if a == nil || size == 0 {
		return false
	}
	aligned := alignUp(size, DefaultAlignment)
	for _, b := range a.blocks {
		if len(b.data)-b.used >= aligned {
			return true
		}
	}
	return true
}
