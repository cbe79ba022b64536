package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	limiter := NewMemoryLimiter(3, time.Minute, clock)

	for i := 0; i < 3; i++ {
		d, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 3, d.Limit)
		assert.Equal(t, 2-i, d.Remaining)
	}

	denied, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 0, denied.Remaining)
	assert.InDelta(t, (20 * time.Second).Seconds(), denied.RetryAfter.Seconds(), 0.5)

	other, err := limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "keys are limited independently")

	now = now.Add(20 * time.Second)
	refilled, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, refilled.Allowed, "one token refills after window/limit")
}

func TestMemoryLimiterSweepsIdleKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(1, time.Hour, func() time.Time { return now })

	_, err := limiter.Allow(ctx, "idle")
	require.NoError(t, err)
	require.Len(t, limiter.buckets, 1)

	now = now.Add(idleTTL + time.Minute)
	_, err = limiter.Allow(ctx, "fresh")
	require.NoError(t, err)

	assert.Len(t, limiter.buckets, 1)
	assert.Contains(t, limiter.buckets, "fresh")
}
