package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"traffic-nav-service/internal/domain"
)

// SQLite-backed cache mapping normalized query text to resolved places.
// Query keys are expected to be consistent (e.g., normalized) by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

// Fetch the cached place for the given query.
func (s *SqliteGeocodeCache) Get(ctx context.Context, query string) (domain.PlaceSuggestion, bool, error) {
	if s.DB == nil {
		return domain.PlaceSuggestion{}, false, errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.PlaceSuggestion{}, false, nil
	}

	q := `
	SELECT place_id, name, lon, lat
    FROM geocode_cache
    WHERE query = ?;
	`

	var place domain.PlaceSuggestion
	err := s.DB.QueryRowContext(ctx, q, query).Scan(
		&place.ID, &place.Name, &place.Center.Lon, &place.Center.Lat,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PlaceSuggestion{}, false, nil
	}
	if err != nil {
		return domain.PlaceSuggestion{}, false, fmt.Errorf("get geocode cache: query geocode_cache table: %w", err)
	}

	return place, true, nil
}

// Store a query -> place mapping in the cache.
func (s *SqliteGeocodeCache) Put(ctx context.Context, query string, place domain.PlaceSuggestion) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, place_id, name, lon, lat)
    VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (query) DO UPDATE
	SET place_id = excluded.place_id,
		name = excluded.name,
		lon = excluded.lon,
		lat = excluded.lat;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.ID, place.Name, place.Center.Lon, place.Center.Lat); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
