package engine

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Result kinds, also used as metric labels.
const (
	kindConnectivity  = "connectivity"
	kindAccessibility = "accessibility"
	kindNetwork       = "network"
)

// resultCache memoizes derived results per building or road system ID.
//
// Population is check-then-compute-then-store, so the map is guarded by one
// mutex and concurrent misses for the same key share one computation. Each
// key carries a generation; an invalidation that lands while a computation
// is in flight bumps it and the stale result is not stored. clear bumps the
// epoch, which does the same for every key.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]any
	gens    map[string]uint64
	epoch   uint64
	group   singleflight.Group
	hits    uint64
	misses  uint64
}

func newResultCache() *resultCache {
	return &resultCache{
		entries: map[string]any{},
		gens:    map[string]uint64{},
	}
}

func entryKey(kind, id string) string {
	return kind + "\x00" + id
}

// get returns the cached value for kind/id, computing it on a miss.
func (c *resultCache) get(kind, id string, compute func() any) (any, bool) {
	key := entryKey(kind, id)

	c.mu.Lock()
	if v, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return v, true
	}
	c.misses++
	gen, epoch := c.gens[id], c.epoch
	c.mu.Unlock()

	// Callers arriving after an invalidation must not join a stale flight.
	flight := key + "\x00" + strconv.FormatUint(epoch, 10) + "." + strconv.FormatUint(gen, 10)
	v, _, _ := c.group.Do(flight, func() (any, error) {
		v := compute()
		c.mu.Lock()
		if c.gens[id] == gen && c.epoch == epoch {
			c.entries[key] = v
		}
		c.mu.Unlock()
		return v, nil
	})
	return v, false
}

// invalidate drops every result kind cached for id and reports whether
// anything was removed.
func (c *resultCache) invalidate(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[id]++
	removed := false
	for _, kind := range []string{kindConnectivity, kindAccessibility, kindNetwork} {
		key := entryKey(kind, id)
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			removed = true
		}
	}
	return removed
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for key := range c.entries {
		delete(c.entries, key)
	}
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

func (c *resultCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}
