package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddressLock(t *testing.T) (*AddressLock, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewAddressLock(client, time.Minute), s
}

func TestAddressLock_RunExecutesAndReleases(t *testing.T) {
	lock, s := newTestAddressLock(t)
	ctx := context.Background()

	var ran bool
	err := lock.Run(ctx, "addr1", func(ctx context.Context) error {
		ran = true
		assert.True(t, s.Exists("addrlock:addr1"))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.False(t, s.Exists("addrlock:addr1"), "lock must be released")
}

func TestAddressLock_ReleasesOnError(t *testing.T) {
	lock, s := newTestAddressLock(t)

	boom := errors.New("mint failed")
	err := lock.Run(context.Background(), "addr1", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Exists("addrlock:addr1"))
}

func TestAddressLock_MutualExclusion(t *testing.T) {
	lock, _ := newTestAddressLock(t)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := lock.Run(ctx, "addr1", func(ctx context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				for {
					prev := atomic.LoadInt32(&maxInside)
					if n <= prev || atomic.CompareAndSwapInt32(&maxInside, prev, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInside), "critical sections must not overlap")
}

func TestAddressLock_DifferentAddressesDoNotContend(t *testing.T) {
	lock, _ := newTestAddressLock(t)
	ctx := context.Background()

	release := make(chan struct{})
	holding := make(chan struct{})
	go func() {
		_ = lock.Run(ctx, "addr1", func(ctx context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding
	defer close(release)

	done := make(chan struct{})
	go func() {
		_ = lock.Run(ctx, "addr2", func(ctx context.Context) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on addr2 blocked behind addr1")
	}
}

func TestAddressLock_AcquireCancelled(t *testing.T) {
	lock, _ := newTestAddressLock(t)

	release := make(chan struct{})
	holding := make(chan struct{})
	go func() {
		_ = lock.Run(context.Background(), "addr1", func(ctx context.Context) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := lock.Run(ctx, "addr1", func(ctx context.Context) error {
		t.Fatal("must not run while the lock is held")
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAddressLock_ExpiredLeaseNotReleasedByStaleHolder(t *testing.T) {
	lock, s := newTestAddressLock(t)
	ctx := context.Background()

	err := lock.Run(ctx, "addr1", func(ctx context.Context) error {
		// Simulate the lease expiring mid-section and another instance
		// grabbing the lock.
		s.Del("addrlock:addr1")
		require.NoError(t, s.Set("addrlock:addr1", "other-holder-token"))
		return nil
	})
	require.NoError(t, err)

	// The stale holder's release must not have deleted the new holder's
	// lock.
	got, err := s.Get("addrlock:addr1")
	require.NoError(t, err)
	assert.Equal(t, "other-holder-token", got)
}
