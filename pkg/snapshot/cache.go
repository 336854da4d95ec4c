// Package snapshot holds whole key/value snapshots of slowly changing data
// and refreshes them from a loader with single-flight semantics.
package snapshot

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const loadKey = "snapshot"

// Loader fetches the complete key/value set behind a Cache.
// The returned map is owned by the cache afterwards and must not be modified.
type Loader[K comparable, V any] func(ctx context.Context) (map[K]V, error)

// LoadError is returned to the callers that triggered or joined a failed load.
type LoadError struct {
	Cache string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("snapshot %s: load failed: %v", e.Cache, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Observer is notified after every load attempt.
type Observer interface {
	ObserveLoad(cache string, duration time.Duration, err error)
}

// Options control when a Cache reloads.
type Options struct {
	// TTL expires a loaded snapshot. Zero keeps it until Invalidate.
	TTL time.Duration
	// RetryBackoff is how long the last good snapshot keeps being served
	// after a failed refresh before the next access retries. Zero retries on every access.
	RetryBackoff time.Duration
	// LoadTimeout bounds a single load. Zero leaves it unbounded.
	LoadTimeout time.Duration

	Observer Observer
	Clock    func() time.Time
}

type entry[K comparable, V any] struct {
	values   map[K]V
	loadedAt time.Time
}

// Cache is a concurrency-safe snapshot of a key/value set.
//
// At most one load runs at a time; concurrent callers share it. A completed load
// replaces the whole snapshot at once, so readers see either the previous or the
// new snapshot and never a mix. Failed loads are not cached.
type Cache[K comparable, V any] struct {
	name  string
	load  Loader[K, V]
	opts  Options
	group singleflight.Group

	mu       sync.RWMutex
	current  *entry[K, V]
	stale    bool
	gen      uint64
	failedAt time.Time
}

// New creates an empty Cache. Nothing is loaded until first access.
func New[K comparable, V any](name string, load Loader[K, V], opts Options) *Cache[K, V] {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Cache[K, V]{
		name: name,
		load: load,
		opts: opts,
	}
}

// Name returns the name the cache reports in errors and metrics.
func (c *Cache[K, V]) Name() string {
	return c.name
}

// Get returns the value for key from the current snapshot.
// The bool is false when the key is not in the snapshot.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	var zero V

	e, err := c.snapshot(ctx)
	if err != nil {
		return zero, false, err
	}

	v, ok := e.values[key]
	return v, ok, nil
}

// GetAll returns a copy of the current snapshot.
func (c *Cache[K, V]) GetAll(ctx context.Context) (map[K]V, error) {
	e, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return maps.Clone(e.values), nil
}

// Invalidate marks the snapshot stale so the next access loads a fresh one.
// A load already in flight still completes, but its result is not considered fresh.
func (c *Cache[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stale = true
	c.gen++
	c.failedAt = time.Time{}
}

// snapshot returns a usable snapshot, loading one if needed.
// The caller's ctx only bounds how long it waits; the shared load runs detached from it.
func (c *Cache[K, V]) snapshot(ctx context.Context) (*entry[K, V], error) {
	if e, ok := c.usable(); ok {
		return e, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(loadKey, func() (any, error) {
		return c.refresh(loadCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entry[K, V]), nil
	}
}

func (c *Cache[K, V]) usable() (*entry[K, V], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return nil, false
	}

	now := c.opts.Clock()
	expired := c.opts.TTL > 0 && now.Sub(c.current.loadedAt) >= c.opts.TTL
	if !c.stale && !expired {
		return c.current, true
	}

	if !c.failedAt.IsZero() && now.Sub(c.failedAt) < c.opts.RetryBackoff {
		return c.current, true
	}

	return nil, false
}

func (c *Cache[K, V]) refresh(ctx context.Context) (*entry[K, V], error) {
	c.mu.RLock()
	gen := c.gen
	c.mu.RUnlock()

	if c.opts.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.LoadTimeout)
		defer cancel()
	}

	start := time.Now()
	values, err := c.load(ctx)
	if c.opts.Observer != nil {
		c.opts.Observer.ObserveLoad(c.name, time.Since(start), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		if c.current != nil {
			c.failedAt = c.opts.Clock()
		}
		return nil, &LoadError{Cache: c.name, Err: err}
	}

	if values == nil {
		values = make(map[K]V)
	}

	e := &entry[K, V]{values: values, loadedAt: c.opts.Clock()}
	c.current = e
	c.failedAt = time.Time{}
	if c.gen == gen {
		c.stale = false
	}

	return e, nil
}
