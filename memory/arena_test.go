package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wayfarer-engine/wayfarer/memory"
)

func TestArenaAllocWithinBlock(t *testing.T) {
	a := memory.New(1024)
	b1 := a.Alloc(16)
	b2 := a.Alloc(16)
	require.Len(t, b1, 16)
	require.Len(t, b2, 16)

	stats := a.Stats()
	require.Equal(t, uint64(2), stats.NumAllocations)
	require.Equal(t, uint64(1), stats.NumBlocks)
}

func TestArenaGrowsNewBlockWhenFull(t *testing.T) {
	a := memory.New(64, memory.WithMinBlockSize(64))
	a.Alloc(32)
	a.Alloc(48) // does not fit remaining space, should grow chain

	stats := a.Stats()
	require.GreaterOrEqual(t, stats.NumBlocks, uint64(2))
}

func TestArenaResetReproducesUsage(t *testing.T) {
	a := memory.New(1024)
	a.Alloc(100)
	first := a.Usage()

	a.Reset()
	require.Equal(t, 0, a.Usage())

	a.Alloc(100)
	require.Equal(t, first, a.Usage())

	stats := a.Stats()
	require.Equal(t, uint64(1), stats.NumResets)
}

func TestArenaCallocOverflow(t *testing.T) {
	a := memory.New(1024)
	const big = 1 << 62
	require.Nil(t, a.Calloc(big, big))
}

func TestArenaZeroSizeReturnsNil(t *testing.T) {
	a := memory.New(1024)
	require.Nil(t, a.Alloc(0))
}

func TestArenaWithMinBlockSizeRaisesFloor(t *testing.T) {
	a := memory.New(16, memory.WithMinBlockSize(1<<16))
	a.Alloc(16)
	a.Alloc(1 << 17) // forces a growth block, which must also honor the floor

	stats := a.Stats()
	require.GreaterOrEqual(t, stats.NumBlocks, uint64(2))
}

func TestArenaWithMinBlockSizePanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { memory.WithMinBlockSize(0) })
	require.Panics(t, func() { memory.WithMinBlockSize(-1) })
}
