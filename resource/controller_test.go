package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Concurrency(t *testing.T) {
	c := NewController(Config{MaxConcurrentSearches: 2})

	// Acquire 2
	require.NoError(t, c.AcquireSearch(context.Background()))
	require.NoError(t, c.AcquireSearch(context.Background()))

	// Try 3rd
	assert.False(t, c.TryAcquireSearch())

	// Blocking 3rd should time out
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireSearch(ctx), context.DeadlineExceeded)

	// Release 1
	c.ReleaseSearch()

	// Try 3rd again
	assert.True(t, c.TryAcquireSearch())
}

func TestController_Rate(t *testing.T) {
	c := NewController(Config{SearchesPerSecond: 10, Burst: 2})

	// Burst of 2 admits immediately
	assert.True(t, c.TryAcquireSearch())
	assert.True(t, c.TryAcquireSearch())

	// Burst exhausted
	assert.False(t, c.TryAcquireSearch())

	// Rate denial must not leak a concurrency slot; with no semaphore
	// configured this is just a throttle.
	c.ReleaseSearch()
	assert.False(t, c.TryAcquireSearch())

	// Waiting admits once a token refills (100ms at 10/s)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.AcquireSearch(ctx))
}

func TestController_RateDenialReleasesSlot(t *testing.T) {
	c := NewController(Config{MaxConcurrentSearches: 1, SearchesPerSecond: 10, Burst: 1})

	assert.True(t, c.TryAcquireSearch())
	c.ReleaseSearch()

	// Rate burst is spent; the failed try must hand the slot back.
	assert.False(t, c.TryAcquireSearch())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.AcquireSearch(ctx))
	c.ReleaseSearch()
}

func TestController_Unlimited(t *testing.T) {
	for _, c := range []*Controller{NewController(Config{}), nil} {
		require.NoError(t, c.AcquireSearch(context.Background()))
		assert.True(t, c.TryAcquireSearch())
		c.ReleaseSearch()
		c.ReleaseSearch()
	}
}
