package store

import (
	"testing"

	"github.com/gencam/genicam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidationCascade(t *testing.T) {
	// Nodes A, B, C where B.p_invalidators = [A] and C.p_invalidators = [B].
	const (
		a types.NodeID = 1
		b types.NodeID = 2
		c types.NodeID = 3
	)
	cs := NewCacheStore()
	cs.RegisterInvalidators(b, []types.NodeID{a})
	cs.RegisterInvalidators(c, []types.NodeID{b})

	cs.Put(a, 1)
	cs.Put(b, 2)
	cs.Put(c, 3)

	_, ok := cs.Get(b)
	require.True(t, ok)
	_, ok = cs.Get(c)
	require.True(t, ok)

	// Write A; B's and C's cache entries must both be absent (S4).
	cs.Invalidate(a)

	_, ok = cs.Get(a)
	assert.False(t, ok)
	_, ok = cs.Get(b)
	assert.False(t, ok)
	_, ok = cs.Get(c)
	assert.False(t, ok)
}

func TestInvalidationOnlyAffectsTransitiveDependents(t *testing.T) {
	const (
		a types.NodeID = 1
		b types.NodeID = 2
		unrelated types.NodeID = 3
	)
	cs := NewCacheStore()
	cs.RegisterInvalidators(b, []types.NodeID{a})

	cs.Put(a, 1)
	cs.Put(b, 2)
	cs.Put(unrelated, 99)

	cs.Invalidate(a)

	_, ok := cs.Get(unrelated)
	assert.True(t, ok, "unrelated node's cache should survive an unrelated invalidation")
}

func TestCacheModeDefaultsToWriteThrough(t *testing.T) {
	cs := NewCacheStore()
	assert.Equal(t, types.WriteThrough, cs.CacheMode(1))
	cs.SetCacheMode(1, types.NoCache)
	assert.Equal(t, types.NoCache, cs.CacheMode(1))
}

func TestDetectCycleFindsSelfInvalidation(t *testing.T) {
	const (
		a types.NodeID = 1
		b types.NodeID = 2
	)
	cs := NewCacheStore()
	cs.RegisterInvalidators(b, []types.NodeID{a})
	cs.RegisterInvalidators(a, []types.NodeID{b})

	_, found := cs.DetectCycle()
	assert.True(t, found)
}

func TestDetectCycleCleanOnAcyclicGraph(t *testing.T) {
	const (
		a types.NodeID = 1
		b types.NodeID = 2
		c types.NodeID = 3
	)
	cs := NewCacheStore()
	cs.RegisterInvalidators(b, []types.NodeID{a})
	cs.RegisterInvalidators(c, []types.NodeID{b})

	_, found := cs.DetectCycle()
	assert.False(t, found)
}

// TestInvalidationDropsBeforeNextRead is property test 4: for any node N and
// any node M in the transitive invalidators of N, writing N drops M's cache
// entry before the next read of M.
func TestInvalidationDropsBeforeNextRead(t *testing.T) {
	const (
		n types.NodeID = 1
		m types.NodeID = 2
	)
	cs := NewCacheStore()
	cs.RegisterInvalidators(m, []types.NodeID{n})
	cs.Put(m, "cached")

	cs.Invalidate(n)

	_, ok := cs.Get(m)
	assert.False(t, ok)
}
