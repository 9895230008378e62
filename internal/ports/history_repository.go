package ports

import (
	"context"

	"traffic-nav-service/internal/domain"
)

// Port: a boundary for persisting and listing recent destination searches.
type HistoryRepository interface {
	Record(ctx context.Context, query string, place domain.PlaceSuggestion) error
	// Retrieve the most recent searches, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error)
}
