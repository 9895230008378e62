package ports

import (
	"context"
	"errors"

	"traffic-nav-service/internal/domain"
)

// Returned when a lookup completes but the service has no candidate for the
// query. Callers map it to their own not-found condition.
var ErrNoResult = errors.New("no geocode result")

// Contract for resolving free text to places.
type Geocoder interface {
	// Return up to limit ranked autocomplete candidates for a partial query.
	Suggest(ctx context.Context, query string, limit int) ([]domain.PlaceSuggestion, error)

	// Resolve a query to its single highest-confidence place.
	// Returns ErrNoResult when the service finds nothing.
	Geocode(ctx context.Context, query string) (domain.PlaceSuggestion, error)
}
