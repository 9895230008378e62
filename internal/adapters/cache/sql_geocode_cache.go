package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/platform/obs"
)

// SQLGeocodeCache is a Postgres-backed cache mapping normalized query text
// to the place it resolved to.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

// Initialize the Postgres cache schema. Used by cmd/dbtool.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        query TEXT PRIMARY KEY,
        place_id TEXT NOT NULL,
        name TEXT NOT NULL,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create geocode_cache: %w", err)
	}

	return nil
}

// Fetch the cached place for the given query.
func (s *SQLGeocodeCache) Get(ctx context.Context, query string) (_ domain.PlaceSuggestion, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

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
    WHERE query = $1;
	`

	var place domain.PlaceSuggestion
	err = s.DB.QueryRowContext(ctx, q, query).Scan(
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
func (s *SQLGeocodeCache) Put(ctx context.Context, query string, place domain.PlaceSuggestion) error {
	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	q := `
	INSERT INTO geocode_cache (query, place_id, name, lon, lat)
    VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (query) DO UPDATE
	SET place_id = EXCLUDED.place_id,
		name = EXCLUDED.name,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`

	if _, err := s.DB.ExecContext(ctx, q, query, place.ID, place.Name, place.Center.Lon, place.Center.Lat); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: %w", query, err)
	}

	return nil
}
