package scorer

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

// resultCache memoizes calculation results keyed by customer identity
// plus a content fingerprint of the metrics. Entries expire after a
// fixed TTL; when the cache reaches capacity the half with the nearest
// expiries is evicted. One mutex guards the whole read-check-write
// sequence, which is sufficient at the engine's call frequency.
type resultCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

type cacheEntry struct {
	result    *model.HealthScoreResult
	expiresAt time.Time
}

func newResultCache(ttl time.Duration, capacity int, now func() time.Time) *resultCache {
	return &resultCache{
		entries:  make(map[string]cacheEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      now,
	}
}

// cacheKey derives the content-addressed key: the customer identifier
// concatenated with the full metrics serialization. Any change to the
// input is a guaranteed miss, so no explicit invalidation is needed.
func cacheKey(customerID string, m *model.CustomerMetrics) string {
	payload, err := json.Marshal(m)
	if err != nil {
		// Metrics are plain numeric structs; this cannot happen.
		return customerID
	}
	return customerID + "|" + string(payload)
}

// get returns the cached result if present and unexpired. An expired
// entry is pruned on the way out.
func (c *resultCache) get(key string) (*model.HealthScoreResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.result, true
}

// set inserts a result with expiry now+TTL, evicting the oldest half of
// the cache first if it is at or over capacity.
func (c *resultCache) set(key string, result *model.HealthScoreResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.evictOldestLocked(c.capacity / 2)
	}

	c.entries[key] = cacheEntry{
		result:    result,
		expiresAt: c.now().Add(c.ttl),
	}
}

// evictOldestLocked removes the n entries with the nearest expiry
// times. Caller must hold c.mu.
func (c *resultCache) evictOldestLocked(n int) {
	type keyed struct {
		key       string
		expiresAt time.Time
	}
	ranked := make([]keyed, 0, len(c.entries))
	for k, e := range c.entries {
		ranked = append(ranked, keyed{key: k, expiresAt: e.expiresAt})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].expiresAt.Before(ranked[j].expiresAt)
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	for _, e := range ranked[:n] {
		delete(c.entries, e.key)
	}
}

// size returns the current entry count.
func (c *resultCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
