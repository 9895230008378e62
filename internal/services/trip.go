package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
)

var (
	// Optimization needs an origin fix and at least two stops.
	ErrNotEnoughWaypoints = errors.New("at least two waypoints are required")

	// An optimization request is already in flight for this planner.
	ErrOptimizeBusy = errors.New("an optimization is already running")
)

// Display label for the fixed starting position in an optimized order.
const originLabel = "Origin"

// TripPlanner owns one multi-stop planning session: the waypoint list, the
// transient add-field text, the panel-open flag, and a busy flag that keeps
// optimization requests from overlapping. Waypoint mutation is deliberately
// not blocked while an optimization runs; the request operates on a snapshot
// taken at submission.
type TripPlanner struct {
	geocoder  ports.Geocoder
	cache     ports.GeocodeCache
	optimizer ports.TripOptimizer

	mu        sync.Mutex
	waypoints domain.WaypointList
	input     string
	busy      bool
	panelOpen bool
}

func NewTripPlanner(geocoder ports.Geocoder, cache ports.GeocodeCache, optimizer ports.TripOptimizer) *TripPlanner {
	return &TripPlanner{
		geocoder:  geocoder,
		cache:     cache,
		optimizer: optimizer,
	}
}

// AddStop resolves free text to a single place and appends it as a waypoint.
// A failed resolution leaves the list unmutated.
func (p *TripPlanner) AddStop(ctx context.Context, text string) (domain.Waypoint, error) {
	place, err := resolvePlace(ctx, p.geocoder, p.cache, text)
	if errors.Is(err, ports.ErrNoResult) {
		return domain.Waypoint{}, ErrLocationNotFound
	}
	if err != nil {
		return domain.Waypoint{}, fmt.Errorf("add stop: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = ""
	return p.waypoints.Add(place.Name, place.Center), nil
}

func (p *TripPlanner) RemoveStop(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waypoints.Remove(id)
}

func (p *TripPlanner) ClearStops() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waypoints.Clear()
}

func (p *TripPlanner) Stops() []domain.Waypoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waypoints.Items()
}

func (p *TripPlanner) SetInput(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = text
}

func (p *TripPlanner) Input() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

func (p *TripPlanner) OpenPanel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.panelOpen = true
}

func (p *TripPlanner) ClosePanel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.panelOpen = false
}

func (p *TripPlanner) PanelOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.panelOpen
}

// OptimizedPlan pairs the trip geometry with the visiting order mapped back
// to display names, origin first.
type OptimizedPlan struct {
	Geometry        []domain.Coordinates
	Stops           []string
	DurationSeconds int
	DistanceMeters  int
}

// Optimize requests a minimal-travel ordering over origin plus the current
// waypoints, origin fixed first and no return. Validation failures issue no
// request. On success the panel-open state clears.
func (p *TripPlanner) Optimize(ctx context.Context, origin domain.Coordinates) (*OptimizedPlan, error) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return nil, ErrOptimizeBusy
	}
	waypoints := p.waypoints.Items()
	if len(waypoints) < 2 {
		p.mu.Unlock()
		return nil, ErrNotEnoughWaypoints
	}
	p.busy = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	chain := make([]domain.Coordinates, 0, 1+len(waypoints))
	chain = append(chain, origin)
	for _, wp := range waypoints {
		chain = append(chain, wp.Coord)
	}

	trip, err := p.optimizer.OptimizeTrip(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("optimize trip: %w", err)
	}

	stops := make([]string, 0, len(trip.Order))
	for _, input := range trip.Order {
		stops = append(stops, stopLabel(input, waypoints))
	}

	p.mu.Lock()
	p.panelOpen = false
	p.mu.Unlock()

	return &OptimizedPlan{
		Geometry:        trip.Geometry,
		Stops:           stops,
		DurationSeconds: trip.DurationSeconds,
		DistanceMeters:  trip.DistanceMeters,
	}, nil
}

// stopLabel maps an input index back to a display name. Index 0 is the
// origin; indices the snapshot cannot resolve fall back to a generic label.
func stopLabel(input int, waypoints []domain.Waypoint) string {
	if input == 0 {
		return originLabel
	}
	if input < 1 || input > len(waypoints) {
		return fmt.Sprintf("Stop %d", input)
	}
	return waypoints[input-1].Name
}
