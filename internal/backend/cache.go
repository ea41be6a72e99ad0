package backend

// cache.go keeps analytics responses warm. The aggregation endpoints
// are the slowest calls the console makes and their data only changes
// as deliveries land, so results are held in a TTL map and the default
// periods are refreshed by a background scheduler. Everything else is
// fetched live.

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// AnalyticsCache wraps a Client with a TTL cache over the analytics
// reads. It is safe for concurrent use.
type AnalyticsCache struct {
	client *Client
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	fetched time.Time
}

// NewAnalyticsCache creates a cache with the given TTL (default 5m).
func NewAnalyticsCache(client *Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AnalyticsCache{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Summary returns the cached summary for the period, fetching on miss
// or expiry.
func (a *AnalyticsCache) Summary(ctx context.Context, days int) (*Summary, error) {
	return cached(a, ctx, key("summary", days), func(ctx context.Context) (*Summary, error) {
		return a.client.Summary(ctx, days)
	})
}

// Timeseries returns the cached timeseries for the period.
func (a *AnalyticsCache) Timeseries(ctx context.Context, days int) ([]SeriesPoint, error) {
	return cached(a, ctx, key("timeseries", days), func(ctx context.Context) ([]SeriesPoint, error) {
		return a.client.Timeseries(ctx, days)
	})
}

// EventBreakdown returns the cached per-event counts for the period.
func (a *AnalyticsCache) EventBreakdown(ctx context.Context, days int) ([]Breakdown, error) {
	return cached(a, ctx, key("events", days), func(ctx context.Context) ([]Breakdown, error) {
		return a.client.EventBreakdown(ctx, days)
	})
}

// TopChannels returns the cached per-channel counts for the period.
func (a *AnalyticsCache) TopChannels(ctx context.Context, days int) ([]Breakdown, error) {
	return cached(a, ctx, key("channels", days), func(ctx context.Context) ([]Breakdown, error) {
		return a.client.TopChannels(ctx, days)
	})
}

// Invalidate drops every cached entry. Mutating handlers call this so
// the next analytics read reflects the change.
func (a *AnalyticsCache) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = make(map[string]cacheEntry)
}

// StartRefresh runs a background loop that re-fetches the default
// periods every interval, so the dashboard usually serves warm data.
// It returns when the context is cancelled. Individual refresh failures
// are logged and do not stop the loop.
func (a *AnalyticsCache) StartRefresh(ctx context.Context, interval time.Duration, periods []int) {
	if interval <= 0 {
		interval = a.ttl
	}
	slog.Info("analytics refresh started", "interval", interval, "periods", periods)

	a.refreshAll(ctx, periods)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("analytics refresh stopped")
			return
		case <-ticker.C:
			a.refreshAll(ctx, periods)
		}
	}
}

func (a *AnalyticsCache) refreshAll(ctx context.Context, periods []int) {
	a.Invalidate()
	for _, days := range periods {
		if ctx.Err() != nil {
			return
		}
		if _, err := a.Summary(ctx, days); err != nil {
			slog.Warn("analytics refresh failed", "period_days", days, "error", err)
			continue
		}
		if _, err := a.Timeseries(ctx, days); err != nil {
			slog.Warn("analytics refresh failed", "period_days", days, "error", err)
		}
	}
}

func key(name string, days int) string {
	return name + ":" + strconv.Itoa(days)
}

// cached implements the lookup-or-fetch path generically so each
// endpoint keeps its concrete return type.
func cached[T any](a *AnalyticsCache, ctx context.Context, key string, fetch func(context.Context) (T, error)) (T, error) {
	a.mu.RLock()
	entry, ok := a.entries[key]
	a.mu.RUnlock()

	if ok && time.Since(entry.fetched) < a.ttl {
		return entry.value.(T), nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	a.mu.Lock()
	a.entries[key] = cacheEntry{value: value, fetched: time.Now()}
	a.mu.Unlock()

	return value, nil
}
