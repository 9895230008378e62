package ports

import (
	"context"

	"traffic-nav-service/internal/domain"
)

// Contract for retrieving alternative driving routes annotated with live
// per-segment congestion.
type DirectionsProvider interface {
	// Return route alternatives from origin to destination, best-ranked
	// first. Providers without congestion data return candidates with empty
	// tag lists, which classify as free.
	Routes(ctx context.Context, origin, destination domain.Coordinates) ([]domain.RouteCandidate, error)
}
