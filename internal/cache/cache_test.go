package cache

import (
	"testing"
	"time"

	"github.com/ndewijer/Put-Option-Screener-Backend/internal/model"
)

func TestSummaryCache(t *testing.T) {
	summary := model.DividendSummary{
		Symbol:  "TSLY",
		Count:   6,
		Average: 0.50,
	}

	t.Run("returns stored summary within TTL", func(t *testing.T) {
		c := NewSummaryCache(15 * time.Minute)

		c.Put("TSLY", 6, summary)

		cached, ok := c.Get("TSLY", 6)
		if !ok {
			t.Fatal("Expected cache hit")
		}
		if cached.Average != 0.50 {
			t.Errorf("Expected average 0.50, got %f", cached.Average)
		}
	})

	t.Run("different lookbacks are independent entries", func(t *testing.T) {
		c := NewSummaryCache(15 * time.Minute)

		c.Put("TSLY", 6, summary)

		if _, ok := c.Get("TSLY", 3); ok {
			t.Error("Expected miss for a different lookback")
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c := NewSummaryCache(15 * time.Minute)
		current := time.Date(2025, 2, 15, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return current }

		c.Put("TSLY", 6, summary)

		current = current.Add(14 * time.Minute)
		if _, ok := c.Get("TSLY", 6); !ok {
			t.Error("Expected hit before expiry")
		}

		current = current.Add(2 * time.Minute)
		if _, ok := c.Get("TSLY", 6); ok {
			t.Error("Expected miss after expiry")
		}
	})

	t.Run("invalidate drops all lookbacks for a symbol", func(t *testing.T) {
		c := NewSummaryCache(15 * time.Minute)

		c.Put("TSLY", 6, summary)
		c.Put("TSLY", 3, summary)
		c.Put("NVDY", 6, model.DividendSummary{Symbol: "NVDY"})

		c.Invalidate("TSLY")

		if _, ok := c.Get("TSLY", 6); ok {
			t.Error("Expected TSLY lookback 6 invalidated")
		}
		if _, ok := c.Get("TSLY", 3); ok {
			t.Error("Expected TSLY lookback 3 invalidated")
		}
		if _, ok := c.Get("NVDY", 6); !ok {
			t.Error("Expected NVDY entry untouched")
		}
	})

	t.Run("non-positive TTL disables caching", func(t *testing.T) {
		c := NewSummaryCache(0)

		c.Put("TSLY", 6, summary)

		if _, ok := c.Get("TSLY", 6); ok {
			t.Error("Expected caching disabled with zero TTL")
		}
	})
}
