package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"traffic-nav-service/internal/domain"
)

// SqliteHistoryRepository persists recent destination searches.
type SqliteHistoryRepository struct {
	db *sql.DB
}

func NewSqliteHistoryRepository(db *sql.DB) *SqliteHistoryRepository {
	return &SqliteHistoryRepository{db: db}
}

// Record appends one resolved search.
func (r *SqliteHistoryRepository) Record(ctx context.Context, query string, place domain.PlaceSuggestion) error {
	if r.db == nil {
		return errors.New("history repository: db is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("record search: empty query")
	}

	q := `
	INSERT INTO search_history (query, name, lon, lat)
	VALUES (?, ?, ?, ?);
	`

	if _, err := r.db.ExecContext(ctx, q, query, place.Name, place.Center.Lon, place.Center.Lat); err != nil {
		return fmt.Errorf("record search %q: %w", query, err)
	}

	return nil
}

// Recent returns the most recent searches, newest first.
func (r *SqliteHistoryRepository) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if r.db == nil {
		return nil, errors.New("history repository: db is nil")
	}

	if limit <= 0 {
		limit = 20
	}

	q := `
	SELECT query, name, lon, lat, searched_at
    FROM search_history
    ORDER BY id DESC
    LIMIT ?;
	`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent searches: query search_history table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SearchRecord, 0, limit)
	for rows.Next() {
		var rec domain.SearchRecord
		if err := rows.Scan(&rec.Query, &rec.Name, &rec.Center.Lon, &rec.Center.Lat, &rec.SearchedAt); err != nil {
			return nil, fmt.Errorf("list recent searches: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent searches: row iteration: %w", err)
	}

	return out, nil
}
