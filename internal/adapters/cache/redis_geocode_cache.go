package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"traffic-nav-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "geocode:"

// RedisGeocodeCache is a TTL-bounded cache of resolved places. Unlike the
// SQL variants it expires entries, so stale geocodes age out on their own.
type RedisGeocodeCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisGeocodeCache{rdb: rdb, ttl: ttl}
}

type cachedPlace struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

// Fetch the cached place for the given query.
func (c *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.PlaceSuggestion, bool, error) {
	if c.rdb == nil {
		return domain.PlaceSuggestion{}, false, errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.PlaceSuggestion{}, false, nil
	}

	raw, err := c.rdb.Get(ctx, geocodeKeyPrefix+query).Result()
	if errors.Is(err, redis.Nil) {
		return domain.PlaceSuggestion{}, false, nil
	}
	if err != nil {
		return domain.PlaceSuggestion{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var p cachedPlace
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.PlaceSuggestion{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return domain.PlaceSuggestion{
		ID:     p.ID,
		Name:   p.Name,
		Center: domain.Coordinates{Lon: p.Lon, Lat: p.Lat},
	}, true, nil
}

// Store a query -> place mapping with the cache TTL.
func (c *RedisGeocodeCache) Put(ctx context.Context, query string, place domain.PlaceSuggestion) error {
	if c.rdb == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	b, err := json.Marshal(cachedPlace{
		ID:   place.ID,
		Name: place.Name,
		Lon:  place.Center.Lon,
		Lat:  place.Center.Lat,
	})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := c.rdb.Set(ctx, geocodeKeyPrefix+query, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
