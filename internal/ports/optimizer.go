package ports

import (
	"context"

	"traffic-nav-service/internal/domain"
)

// The externally computed minimal-travel visiting order for a coordinate
// chain. Order maps each visiting position to the index of the input
// coordinate visited there (position 0 is always input 0, the origin).
type OptimizedTrip struct {
	Geometry        []domain.Coordinates
	Order           []int
	DurationSeconds int
	DistanceMeters  int
}

// Contract for multi-stop trip optimization with the first coordinate fixed
// as the start and no return leg.
type TripOptimizer interface {
	OptimizeTrip(ctx context.Context, coords []domain.Coordinates) (OptimizedTrip, error)
}
