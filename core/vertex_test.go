package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wayfarer-engine/wayfarer/core"
)

func kv(key string, v core.Value) struct {
	Key   string
	Value core.Value
} {
	return struct {
		Key   string
		Value core.Value
	}{Key: key, Value: v}
}

func TestVertexSortedKeys(t *testing.T) {
	v := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{
		kv("y", core.NewIntValue(2)),
		kv("x", core.NewIntValue(1)),
		kv("z", core.NewIntValue(3)),
	})

	require.Equal(t, 3, v.Len())
	k0, err := v.KeyAt(0)
	require.NoError(t, err)
	require.Equal(t, "x", k0)
	k1, _ := v.KeyAt(1)
	require.Equal(t, "y", k1)
	k2, _ := v.KeyAt(2)
	require.Equal(t, "z", k2)
}

func TestVertexDuplicateKeyFirstWins(t *testing.T) {
	v := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{
		kv("x", core.NewIntValue(1)),
		kv("x", core.NewIntValue(99)),
	})

	require.Equal(t, 1, v.Len())
	val, err := v.Get("x")
	require.NoError(t, err)
	i, err := val.Int()
	require.NoError(t, err)
	require.Equal(t, int64(1), i)
}

func TestVertexEqualityImpliesEqualHash(t *testing.T) {
	a := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{kv("x", core.NewIntValue(1))})
	b := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{kv("x", core.NewIntValue(1))})

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestVertexCloneRoundTrip(t *testing.T) {
	v := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{kv("x", core.NewIntValue(1)), kv("y", core.NewStringValue("hi"))})

	clone := v.Clone()
	require.True(t, v.Equal(clone))
	require.Equal(t, v.Hash(), clone.Hash())
}

func TestVertexIdentityHashOverridesStructuralEquality(t *testing.T) {
	a := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{kv("x", core.NewIntValue(1))}, core.WithIdentityHash(42))
	b := core.NewVertex([]struct {
		Key   string
		Value core.Value
	}{kv("x", core.NewIntValue(1))}, core.WithIdentityHash(43))

	require.False(t, a.Equal(b))
}

func TestVertexEmptyHashesToZero(t *testing.T) {
	v := core.NewVertex(nil)
	require.Equal(t, uint64(0), v.Hash())
	require.False(t, v.HasIdentityHash())

	other := core.NewVertex(nil)
	require.True(t, v.Equal(other))
}

func TestVertexEmptyWithIdentityHashIsNotCoercedToZero(t *testing.T) {
	v := core.NewVertex(nil, core.WithIdentityHash(7))
	require.Equal(t, uint64(7), v.Hash())
	require.True(t, v.HasIdentityHash())
}

func TestValueCopyIsIndependent(t *testing.T) {
	v := core.NewIntArrayValue([]int64{1, 2, 3})
	cp := v.Copy()
	require.True(t, v.Equal(cp))

	arr, err := v.IntArray()
	require.NoError(t, err)
	arr[0] = 999
	arr2, _ := cp.IntArray()
	require.Equal(t, int64(1), arr2[0])
}
