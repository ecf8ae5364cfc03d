package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
)

// redisGetSetter es el subset de go-redis que usan los decoradores de cache;
// permite inyectar un fake en tests.
type redisGetSetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// cacheKey arma la clave por ruta y fechas; dos requests iguales comparten entrada.
func cacheKey(kind string, q domain.TripQuery) string {
	return fmt.Sprintf("trips:%s:%s:%s:%s:%s",
		kind, q.Origin, q.Destination,
		q.DepartureDate.Format("2006-01-02"), q.ReturnDate.Format("2006-01-02"))
}

// CachedFlightProvider cachea en redis los resultados del proveedor de vuelos.
// Errores de cache degradan a llamada directa; nunca fallan el request.
type CachedFlightProvider struct {
	inner  FlightProvider
	client redisGetSetter
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedFlightProvider(inner FlightProvider, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedFlightProvider {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedFlightProvider{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedFlightProvider) SearchFlights(ctx context.Context, query domain.TripQuery) ([]domain.FlightOption, error) {
	key := cacheKey("flights", query)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var flights []domain.FlightOption
		if err := json.Unmarshal([]byte(raw), &flights); err == nil {
			return flights, nil
		}
		c.logger.Warn("flight cache entry corrupt, refetching", zap.String("key", key))
	}

	flights, err := c.inner.SearchFlights(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(flights); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("flight cache write failed", zap.Error(err))
		}
	}
	return flights, nil
}

// CachedHotelProvider cachea en redis los resultados del proveedor de hoteles.
type CachedHotelProvider struct {
	inner  HotelProvider
	client redisGetSetter
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedHotelProvider(inner HotelProvider, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedHotelProvider {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedHotelProvider{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedHotelProvider) SearchHotels(ctx context.Context, query domain.TripQuery) ([]domain.HotelOption, error) {
	key := cacheKey("hotels", query)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var hotels []domain.HotelOption
		if err := json.Unmarshal([]byte(raw), &hotels); err == nil {
			return hotels, nil
		}
		c.logger.Warn("hotel cache entry corrupt, refetching", zap.String("key", key))
	}

	hotels, err := c.inner.SearchHotels(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(hotels); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("hotel cache write failed", zap.Error(err))
		}
	}
	return hotels, nil
}
