package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only if this holder still owns it,
// so an expired lease can never release another holder's lock.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// AddressLock is a leased distributed lock per wallet address, backing the
// same contract as the in-process registry for multi-instance deployments.
// Unlike the in-process registry, arrival order across processes is
// best-effort: waiters poll rather than queue.
type AddressLock struct {
	client *goredis.Client
	lease  time.Duration
	retry  time.Duration
	prefix string
}

// NewAddressLock creates a Redis-backed address lock. The lease bounds how
// long a crashed holder can block other instances.
func NewAddressLock(client *goredis.Client, lease time.Duration) *AddressLock {
	if lease <= 0 {
		lease = 2 * time.Minute
	}
	return &AddressLock{
		client: client,
		lease:  lease,
		retry:  100 * time.Millisecond,
		prefix: "addrlock:",
	}
}

// Run executes fn while holding the address's lock, releasing it on every
// exit path. Acquisition blocks until the lock is free or ctx is done.
func (l *AddressLock) Run(ctx context.Context, address string, fn func(ctx context.Context) error) error {
	key := l.prefix + address
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.lease).Result()
		if err != nil {
			return fmt.Errorf("acquire address lock: %w", err)
		}
		if ok {
			break
		}
		t := time.NewTimer(l.retry)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		}
	}

	defer func() {
		// Release must not be cut short by the caller's cancellation.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}()

	return fn(ctx)
}
