package keymutex

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_MutualExclusion(t *testing.T) {
	r := New()
	ctx := context.Background()

	var inside int32
	var maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.Run(ctx, "addr1", func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					old := atomic.LoadInt32(&maxInside)
					if n <= old || atomic.CompareAndSwapInt32(&maxInside, old, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside), "two callers held the same key at once")
}

func TestRegistry_DifferentKeysDoNotContend(t *testing.T) {
	r := New()
	ctx := context.Background()

	release1, err := r.Acquire(ctx, "addr1")
	require.NoError(t, err)
	defer release1()

	done := make(chan struct{})
	go func() {
		release2, err := r.Acquire(ctx, "addr2")
		assert.NoError(t, err)
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire on a different key blocked behind addr1")
	}
}

func TestRegistry_FIFOHandoff(t *testing.T) {
	r := New()
	ctx := context.Background()

	release, err := r.Acquire(ctx, "addr1")
	require.NoError(t, err)

	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup
	ready := make(chan struct{}, 3)

	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Stagger arrival so queue order is deterministic.
			time.Sleep(time.Duration(n) * 20 * time.Millisecond)
			ready <- struct{}{}
			err := r.Run(ctx, "addr1", func(ctx context.Context) error {
				mu.Lock()
				order = append(order, n)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}

	for i := 0; i < 3; i++ {
		<-ready
	}
	time.Sleep(20 * time.Millisecond) // let the last goroutine enqueue
	release()
	wg.Wait()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRegistry_AcquireCancelled(t *testing.T) {
	r := New()

	release, err := r.Acquire(context.Background(), "addr1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = r.Acquire(ctx, "addr1")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The cancelled waiter must not wedge the queue.
	release()
	release2, err := r.Acquire(context.Background(), "addr1")
	require.NoError(t, err)
	release2()
}

func TestRegistry_EvictsIdleEntries(t *testing.T) {
	r := New()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, r.Run(ctx, key, func(ctx context.Context) error { return nil }))
	}

	assert.Equal(t, 0, r.size(), "entries with empty wait queues should be evicted")
}

func TestRegistry_ReleaseAfterPanic(t *testing.T) {
	r := New()
	ctx := context.Background()

	func() {
		defer func() { _ = recover() }()
		_ = r.Run(ctx, "addr1", func(ctx context.Context) error {
			panic("boom")
		})
	}()

	// Lock must have been released by the deferred release.
	acquired := make(chan struct{})
	go func() {
		require.NoError(t, r.Run(ctx, "addr1", func(ctx context.Context) error { return nil }))
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock still held after panic")
	}
}
