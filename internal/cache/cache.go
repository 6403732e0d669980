// Package cache provides an explicit time-to-live cache for computed
// dividend summaries. The cache key is declared as (symbol, lookback) and
// the invalidation policy is a fixed TTL per entry; it is injected into the
// analysis service as a visible dependency rather than wrapping fetch calls
// invisibly.
package cache

import (
	"sync"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

// Key identifies one cached summary: the symbol and the lookback window it
// was computed over. Different lookbacks for the same symbol are independent
// entries.
type Key struct {
	Symbol   string
	Lookback int
}

type entry struct {
	summary   model.DividendSummary
	expiresAt time.Time
}

// SummaryCache memoizes dividend summaries with a fixed TTL.
// Safe for concurrent use by parallel batch fetches.
type SummaryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[Key]entry
	now     func() time.Time
}

// NewSummaryCache creates a cache whose entries expire ttl after insertion.
// A non-positive ttl disables caching entirely: Get never hits.
func NewSummaryCache(ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		ttl:     ttl,
		entries: make(map[Key]entry),
		now:     time.Now,
	}
}

// Get returns the cached summary for (symbol, lookback) if present and not
// expired. Expired entries are removed on access.
func (c *SummaryCache) Get(symbol string, lookback int) (model.DividendSummary, bool) {
	if c.ttl <= 0 {
		return model.DividendSummary{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key{Symbol: symbol, Lookback: lookback}
	cached, ok := c.entries[key]
	if !ok {
		return model.DividendSummary{}, false
	}
	if c.now().After(cached.expiresAt) {
		delete(c.entries, key)
		return model.DividendSummary{}, false
	}
	return cached.summary, true
}

// Put stores a summary under (symbol, lookback), resetting its TTL.
func (c *SummaryCache) Put(symbol string, lookback int, summary model.DividendSummary) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Key{Symbol: symbol, Lookback: lookback}] = entry{
		summary:   summary,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate drops every cached lookback window for a symbol. Called after
// the history store receives fresh records for that symbol.
func (c *SummaryCache) Invalidate(symbol string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if key.Symbol == symbol {
			delete(c.entries, key)
		}
	}
}
