package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	k := New()
	require.NoError(t, k.Lock(context.Background(), "core/engineer"))
	k.Unlock("core/engineer")
	require.NoError(t, k.Lock(context.Background(), "core/engineer"))
	k.Unlock("core/engineer")
}

func TestIndependentKeys(t *testing.T) {
	k := New()
	require.NoError(t, k.Lock(context.Background(), "core/engineer"))
	defer k.Unlock("core/engineer")

	// A different key must not block.
	assert.True(t, k.TryLock("core/designer", 0))
	k.Unlock("core/designer")
}

func TestTryLockHeldKey(t *testing.T) {
	k := New()
	require.NoError(t, k.Lock(context.Background(), "core/engineer"))

	assert.False(t, k.TryLock("core/engineer", 10*time.Millisecond))

	k.Unlock("core/engineer")
	assert.True(t, k.TryLock("core/engineer", 10*time.Millisecond))
	k.Unlock("core/engineer")
}

func TestLockContextCancelled(t *testing.T) {
	k := New()
	require.NoError(t, k.Lock(context.Background(), "core/engineer"))
	defer k.Unlock("core/engineer")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := k.Lock(ctx, "core/engineer")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMutualExclusion(t *testing.T) {
	k := New()
	const workers = 32

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, k.Lock(context.Background(), "shared"))
			defer k.Unlock("shared")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}
