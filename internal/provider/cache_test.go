package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

type fakeRedis struct {
	store    map[string]string
	setErr   error
	setCalls int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if v, ok := f.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.setCalls++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	if b, ok := value.([]byte); ok {
		f.store[key] = string(b)
	}
	return redis.NewStatusResult("OK", nil)
}

func TestCachedFlightProviderMissThenHit(t *testing.T) {
	inner := &MockFlightProvider{Flights: []domain.FlightOption{{ID: "F1", Airline: "Cached Air", OutboundTime: "09:00"}}}
	cache := newFakeRedis()
	cached := &CachedFlightProvider{inner: inner, client: cache, ttl: time.Minute, logger: zap.NewNop()}

	query := fallbackQuery()

	first, err := cached.SearchFlights(context.Background(), query)
	if err != nil {
		t.Fatalf("miss path failed: %v", err)
	}
	if inner.Calls != 1 || cache.setCalls != 1 {
		t.Fatalf("miss: inner calls=%d set calls=%d; want 1/1", inner.Calls, cache.setCalls)
	}

	second, err := cached.SearchFlights(context.Background(), query)
	if err != nil {
		t.Fatalf("hit path failed: %v", err)
	}
	if inner.Calls != 1 {
		t.Fatalf("hit should not call inner again, calls=%d", inner.Calls)
	}
	if len(second) != len(first) || second[0].ID != "F1" {
		t.Fatalf("cached result mismatch: %+v", second)
	}
}

func TestCachedFlightProviderCorruptEntryRefetches(t *testing.T) {
	inner := &MockFlightProvider{Flights: []domain.FlightOption{{ID: "F1", OutboundTime: "09:00"}}}
	cache := newFakeRedis()
	query := fallbackQuery()
	cache.store[cacheKey("flights", query)] = "{not json"

	cached := &CachedFlightProvider{inner: inner, client: cache, ttl: time.Minute, logger: zap.NewNop()}

	got, err := cached.SearchFlights(context.Background(), query)
	if err != nil {
		t.Fatalf("corrupt entry must refetch, got error: %v", err)
	}
	if inner.Calls != 1 || len(got) != 1 {
		t.Fatalf("refetch failed: inner calls=%d results=%d", inner.Calls, len(got))
	}
}

func TestCachedFlightProviderInnerErrorPropagates(t *testing.T) {
	wantErr := errors.New("upstream down")
	cached := &CachedFlightProvider{
		inner:  &MockFlightProvider{Err: wantErr},
		client: newFakeRedis(),
		ttl:    time.Minute,
		logger: zap.NewNop(),
	}

	if _, err := cached.SearchFlights(context.Background(), fallbackQuery()); !errors.Is(err, wantErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
}

func TestCachedFlightProviderSetFailureDegrades(t *testing.T) {
	inner := &MockFlightProvider{Flights: []domain.FlightOption{{ID: "F1", OutboundTime: "09:00"}}}
	cache := newFakeRedis()
	cache.setErr = errors.New("redis down")
	cached := &CachedFlightProvider{inner: inner, client: cache, ttl: time.Minute, logger: zap.NewNop()}

	got, err := cached.SearchFlights(context.Background(), fallbackQuery())
	if err != nil {
		t.Fatalf("cache write failure must not fail the request: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected provider results despite cache failure, got %d", len(got))
	}
}

func TestCachedHotelProviderMissThenHit(t *testing.T) {
	inner := &MockHotelProvider{Hotels: []domain.HotelOption{{ID: "H1", Name: "Cached Palace", StarRating: 4}}}
	cache := newFakeRedis()
	cached := &CachedHotelProvider{inner: inner, client: cache, ttl: time.Minute, logger: zap.NewNop()}

	query := fallbackQuery()

	if _, err := cached.SearchHotels(context.Background(), query); err != nil {
		t.Fatalf("miss path failed: %v", err)
	}
	got, err := cached.SearchHotels(context.Background(), query)
	if err != nil {
		t.Fatalf("hit path failed: %v", err)
	}
	if inner.Calls != 1 {
		t.Fatalf("hit should not call inner again, calls=%d", inner.Calls)
	}
	if len(got) != 1 || got[0].Name != "Cached Palace" {
		t.Fatalf("cached result mismatch: %+v", got)
	}
}

func TestCacheKeySeparatesRoutesAndKinds(t *testing.T) {
	q1 := fallbackQuery()
	q2 := fallbackQuery()
	q2.Destination = "GOI"

	if cacheKey("flights", q1) == cacheKey("flights", q2) {
		t.Fatal("different routes share a cache key")
	}
	if cacheKey("flights", q1) == cacheKey("hotels", q1) {
		t.Fatal("flights and hotels share a cache key")
	}
}
