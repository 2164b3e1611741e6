package moire

import (
	"testing"

	"github.com/akmonengine/moire/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCacheMemoizes(t *testing.T) {
	cache := NewResultCache(4)
	params := DefaultParams(2.0, 60, geom.AxisZ)

	first, err := cache.Analyze(params)
	require.NoError(t, err)
	second, err := cache.Analyze(params)
	require.NoError(t, err)

	assert.Same(t, first, second, "second call should return the cached result")
	assert.Equal(t, 1, cache.Len())
}

func TestResultCacheKeyAppliesDefaults(t *testing.T) {
	cache := NewResultCache(4)

	explicit := DefaultParams(2.0, 60, geom.AxisZ)
	explicit.Tolerance = DEFAULT_TOLERANCE
	explicit.MaxDistancePairs = DEFAULT_MAX_DISTANCE_PAIRS

	first, err := cache.Analyze(DefaultParams(2.0, 60, geom.AxisZ))
	require.NoError(t, err)
	second, err := cache.Analyze(explicit)
	require.NoError(t, err)

	assert.Same(t, first, second, "zero-valued and explicit defaults should share an entry")
}

func TestResultCacheDistinguishesParams(t *testing.T) {
	cache := NewResultCache(4)

	a, err := cache.Analyze(DefaultParams(2.0, 60, geom.AxisZ))
	require.NoError(t, err)
	b, err := cache.Analyze(DefaultParams(2.0, 45, geom.AxisZ))
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, cache.Len())
}

func TestResultCacheEviction(t *testing.T) {
	cache := NewResultCache(2)

	angles := []float64{10, 20, 30}
	for _, angle := range angles {
		_, err := cache.Analyze(DefaultParams(2.0, angle, geom.AxisZ))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get(DefaultParams(2.0, 10, geom.AxisZ))
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = cache.Get(DefaultParams(2.0, 30, geom.AxisZ))
	assert.True(t, ok)
}

func TestResultCacheGetRefreshesRecency(t *testing.T) {
	cache := NewResultCache(2)

	_, err := cache.Analyze(DefaultParams(2.0, 10, geom.AxisZ))
	require.NoError(t, err)
	_, err = cache.Analyze(DefaultParams(2.0, 20, geom.AxisZ))
	require.NoError(t, err)

	// Touch the older entry, then insert a third: the untouched one goes
	_, ok := cache.Get(DefaultParams(2.0, 10, geom.AxisZ))
	require.True(t, ok)

	_, err = cache.Analyze(DefaultParams(2.0, 30, geom.AxisZ))
	require.NoError(t, err)

	_, ok = cache.Get(DefaultParams(2.0, 10, geom.AxisZ))
	assert.True(t, ok, "recently used entry should survive")
	_, ok = cache.Get(DefaultParams(2.0, 20, geom.AxisZ))
	assert.False(t, ok, "least recently used entry should be evicted")
}

func TestResultCacheDoesNotCacheErrors(t *testing.T) {
	cache := NewResultCache(2)

	_, err := cache.Analyze(DefaultParams(-1, 60, geom.AxisZ))
	require.Error(t, err)
	assert.Equal(t, 0, cache.Len())

	_, err = cache.Analyze(DefaultParams(-1, 60, geom.AxisZ))
	assert.Error(t, err, "failing parameters should fail on every call")
}
