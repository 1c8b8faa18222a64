// Package storecache keeps the store selector list per session owner and
// refreshes it in the background once it is older than its TTL.
package storecache

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a cached list is served before a background refresh
const DefaultTTL = 24 * time.Hour

// FetchFunc loads a fresh value for a cache key
type FetchFunc[T any] func(ctx context.Context) (T, error)

type entry[T any] struct {
	value       T
	lastUpdated time.Time
}

// Cache is a stale-while-revalidate cache keyed by session owner
type Cache[T any] struct {
	ttl     time.Duration
	clock   clockz.Clock
	log     *logrus.Logger
	group   singleflight.Group
	entries map[string]*entry[T]
	mu      sync.RWMutex
	wg      sync.WaitGroup
	stopped bool
}

// New creates a cache. A ttl of zero uses DefaultTTL.
func New[T any](ttl time.Duration, clock clockz.Clock, log *logrus.Logger) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockz.RealClock
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cache[T]{
		ttl:     ttl,
		clock:   clock,
		log:     log,
		entries: make(map[string]*entry[T]),
	}
}

// GetOrRefresh returns the cached value for key. An empty slot is filled
// synchronously. A stale value is returned as is while a refresh runs in the
// background; refresh errors are logged and the stale value is kept.
func (c *Cache[T]) GetOrRefresh(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return c.load(ctx, key, fetch)
	}

	if c.clock.Now().Sub(e.lastUpdated) >= c.ttl {
		c.refreshInBackground(context.WithoutCancel(ctx), key, fetch)
	}

	return e.value, nil
}

// ForceRefresh fetches synchronously and replaces the cached value
func (c *Cache[T]) ForceRefresh(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	return c.load(ctx, key, fetch)
}

// LastUpdated returns when key was last stored, or false if it is not cached
func (c *Cache[T]) LastUpdated(key string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return time.Time{}, false
	}
	return e.lastUpdated, true
}

// Clear drops the cached value for key
func (c *Cache[T]) Clear(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Stop waits for in-flight background refreshes. Stale values are still
// served afterwards but no new background refresh is started.
func (c *Cache[T]) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Cache[T]) load(ctx context.Context, key string, fetch FetchFunc[T]) (T, error) {
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache[T]) refreshInBackground(ctx context.Context, key string, fetch FetchFunc[T]) {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		if _, err := c.load(ctx, key, fetch); err != nil {
			c.log.WithError(err).WithField("key", key).Warn("background store list refresh failed")
		}
	}()
}

func (c *Cache[T]) store(key string, value T) {
	c.mu.Lock()
	c.entries[key] = &entry[T]{
		value:       value,
		lastUpdated: c.clock.Now(),
	}
	c.mu.Unlock()
}
