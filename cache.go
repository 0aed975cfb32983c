package folio

import (
	"context"
	"sync"
	"time"
)

// SiteCache holds the current Snapshot for the preview server with a TTL.
type SiteCache struct {
	mu      sync.RWMutex
	snap    *Snapshot
	fetched time.Time
	ttl     time.Duration
	load    func(context.Context) (*Snapshot, error)
}

// NewSiteCache creates a SiteCache that refreshes through load.
func NewSiteCache(load func(context.Context) (*Snapshot, error), ttl time.Duration) *SiteCache {
	return &SiteCache{load: load, ttl: ttl}
}

func (c *SiteCache) valid() bool {
	return c.snap != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *SiteCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}

// Snapshot returns the cached snapshot after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *SiteCache) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	if c.valid() {
		snap := c.snap
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.snap, nil
	}
	snap, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.snap = snap
	c.fetched = time.Now()
	return snap, nil
}
