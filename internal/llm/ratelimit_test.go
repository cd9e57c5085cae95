package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAcquireUpToCapacity(t *testing.T) {
	rl := newRateLimiter(3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.tryAcquire(), "acquire %d", i)
	}
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	rl := newRateLimiter(60)

	for i := 0; i < 60; i++ {
		require.True(t, rl.tryAcquire())
	}
	require.False(t, rl.tryAcquire())

	// Backdate the last refill by two token intervals.
	rl.mu.Lock()
	rl.lastRefill = rl.lastRefill.Add(-2 * time.Second)
	rl.mu.Unlock()

	assert.True(t, rl.tryAcquire())
	assert.True(t, rl.tryAcquire())
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterRefillCapsAtCapacity(t *testing.T) {
	rl := newRateLimiter(5)

	rl.mu.Lock()
	rl.lastRefill = rl.lastRefill.Add(-time.Hour)
	rl.mu.Unlock()

	for i := 0; i < 5; i++ {
		assert.True(t, rl.tryAcquire(), "acquire %d", i)
	}
	assert.False(t, rl.tryAcquire())
}

func TestRateLimiterDefaultsInvalidRate(t *testing.T) {
	rl := newRateLimiter(0)

	assert.Equal(t, 60, rl.capacity)
}

func TestRateLimiterWaitHonorsCanceledContext(t *testing.T) {
	rl := newRateLimiter(1)
	require.True(t, rl.tryAcquire())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rl.wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
