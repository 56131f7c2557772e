package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIncrementAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("new key starts fresh window", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		current, ttl, err := store.IncrementAndGet(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), current)
		assert.Equal(t, time.Minute, ttl)
	})

	t.Run("increments within window keep original ttl", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		_, _, err := store.IncrementAndGet(ctx, "k", 1, time.Minute)
		require.NoError(t, err)

		current, ttl, err := store.IncrementAndGet(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(2), current)
		assert.LessOrEqual(t, ttl, time.Minute)
		assert.Positive(t, ttl)
	})

	t.Run("expired window resets", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		_, _, err := store.IncrementAndGet(ctx, "k", 1, 10*time.Millisecond)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		current, _, err := store.IncrementAndGet(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), current)
	})

	t.Run("concurrent increments are atomic", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore()
		t.Cleanup(func() { _ = store.Close() })

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _, _ = store.IncrementAndGet(ctx, "k", 1, time.Minute)
			}()
		}
		wg.Wait()

		current, _, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, int64(50), current)
	})
}

func TestMemoryStoreGetAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	current, ttl, err := store.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Zero(t, current)
	assert.Zero(t, ttl)

	_, _, err = store.IncrementAndGet(ctx, "k", 3, time.Minute)
	require.NoError(t, err)

	current, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(3), current)

	require.NoError(t, store.Delete(ctx, "k"))

	current, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, current)
}

func TestMemoryStoreCleanup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(10 * time.Millisecond))
	t.Cleanup(func() { _ = store.Close() })

	_, _, err := store.IncrementAndGet(ctx, "stale", 1, 5*time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		store.mu.RLock()
		defer store.mu.RUnlock()
		_, exists := store.buckets["stale"]
		return !exists
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStoreClose(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	require.NoError(t, store.Close())
	// Repeated close is a no-op.
	require.NoError(t, store.Close())
}
