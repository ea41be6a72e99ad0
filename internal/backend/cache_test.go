package backend

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestAnalyticsCache_ServesFromCache(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"totalSent": 10, "failed": 1, "successRate": 0.9, "activeRules": 2}`))
	})
	cache := NewAnalyticsCache(c, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cache.Summary(ctx, 30); err != nil {
			t.Fatalf("Summary: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 backend call for 3 cached reads, got %d", got)
	}
}

func TestAnalyticsCache_PeriodsAreSeparateEntries(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"totalSent": 10}`))
	})
	cache := NewAnalyticsCache(c, time.Minute)
	ctx := context.Background()

	cache.Summary(ctx, 7)
	cache.Summary(ctx, 30)
	cache.Summary(ctx, 7)

	if got := calls.Load(); got != 2 {
		t.Errorf("expected one call per period, got %d", got)
	}
}

func TestAnalyticsCache_InvalidateForcesRefetch(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"totalSent": 10}`))
	})
	cache := NewAnalyticsCache(c, time.Minute)
	ctx := context.Background()

	cache.Summary(ctx, 30)
	cache.Invalidate()
	cache.Summary(ctx, 30)

	if got := calls.Load(); got != 2 {
		t.Errorf("expected refetch after Invalidate, got %d calls", got)
	}
}

func TestAnalyticsCache_ExpiredEntryRefetches(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"totalSent": 10}`))
	})
	cache := NewAnalyticsCache(c, 10*time.Millisecond)
	ctx := context.Background()

	cache.Summary(ctx, 30)
	time.Sleep(25 * time.Millisecond)
	cache.Summary(ctx, 30)

	if got := calls.Load(); got != 2 {
		t.Errorf("expected refetch after TTL expiry, got %d calls", got)
	}
}

func TestAnalyticsCache_ErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int64
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"totalSent": 10}`))
	})
	cache := NewAnalyticsCache(c, time.Minute)
	ctx := context.Background()

	if _, err := cache.Summary(ctx, 30); err == nil {
		t.Fatal("expected first call to fail")
	}
	if _, err := cache.Summary(ctx, 30); err != nil {
		t.Fatalf("second call should retry and succeed: %v", err)
	}
}
