package ports

import (
	"context"

	"traffic-nav-service/internal/domain"
)

// Cache of resolved places keyed by normalized query text.
// Implementations must treat a miss as (zero, false, nil), not an error.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (domain.PlaceSuggestion, bool, error)
	Put(ctx context.Context, query string, place domain.PlaceSuggestion) error
}
