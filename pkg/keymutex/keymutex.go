// Package keymutex provides per-key mutual exclusion with FIFO handoff.
//
// One lock exists per distinct key, created on first use and evicted once
// its wait queue drains. Waiters for a held key are served strictly in
// arrival order; a release hands the lock to exactly one waiter.
package keymutex

import (
	"context"
	"sync"
)

// Registry is a lazily populated map of per-key locks.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	held    bool
	waiters []chan struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Acquire blocks until the caller holds the key's lock or ctx is done.
// On success the returned release function must be called exactly once.
func (r *Registry) Acquire(ctx context.Context, key string) (func(), error) {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	if !e.held {
		e.held = true
		r.mu.Unlock()
		return func() { r.release(key) }, nil
	}

	ch := make(chan struct{})
	e.waiters = append(e.waiters, ch)
	r.mu.Unlock()

	select {
	case <-ch:
		return func() { r.release(key) }, nil
	case <-ctx.Done():
		r.mu.Lock()
		select {
		case <-ch:
			// Handoff raced with cancellation: we own the lock now,
			// pass it on immediately.
			r.releaseLocked(key)
			r.mu.Unlock()
		default:
			r.removeWaiterLocked(key, ch)
			r.mu.Unlock()
		}
		return nil, ctx.Err()
	}
}

// Run executes fn while holding the key's lock. The lock is released on
// every exit path, including panics inside fn.
func (r *Registry) Run(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	release, err := r.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx)
}

func (r *Registry) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked(key)
}

// releaseLocked hands the lock to the oldest waiter, or evicts the entry
// when the queue is empty. Caller holds r.mu.
func (r *Registry) releaseLocked(key string) {
	e := r.entries[key]
	if e == nil {
		return
	}
	if len(e.waiters) > 0 {
		ch := e.waiters[0]
		e.waiters = e.waiters[1:]
		close(ch) // ownership transfers; held stays true
		return
	}
	e.held = false
	delete(r.entries, key)
}

func (r *Registry) removeWaiterLocked(key string, ch chan struct{}) {
	e := r.entries[key]
	if e == nil {
		return
	}
	for i, w := range e.waiters {
		if w == ch {
			e.waiters = append(e.waiters[:i], e.waiters[i+1:]...)
			return
		}
	}
}

// size reports the number of live entries (test hook).
func (r *Registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
