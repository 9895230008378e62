// Package mocks provides in-memory implementations of the provider ports
// for tests.
package mocks

import (
	"context"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
)

// Geocoder serves canned suggestions and keyed geocode results while
// counting calls, so tests can assert exactly how many lookups a flow
// issued.
type Geocoder struct {
	Suggestions []domain.PlaceSuggestion
	Places      map[string]domain.PlaceSuggestion
	Err         error

	SuggestCalls int
	GeocodeCalls int

	// Optional hook invoked before Suggest returns, used to interleave
	// session input with an in-flight lookup.
	OnSuggest func(query string)
}

func (g *Geocoder) Suggest(ctx context.Context, query string, limit int) ([]domain.PlaceSuggestion, error) {
	g.SuggestCalls++
	if g.OnSuggest != nil {
		g.OnSuggest(query)
	}
	if g.Err != nil {
		return nil, g.Err
	}

	out := g.Suggestions
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (g *Geocoder) Geocode(ctx context.Context, query string) (domain.PlaceSuggestion, error) {
	g.GeocodeCalls++
	if g.Err != nil {
		return domain.PlaceSuggestion{}, g.Err
	}

	p, ok := g.Places[query]
	if !ok {
		return domain.PlaceSuggestion{}, ports.ErrNoResult
	}
	return p, nil
}

// Directions returns a fixed candidate list.
type Directions struct {
	Candidates []domain.RouteCandidate
	Err        error
	Calls      int
}

func (d *Directions) Routes(ctx context.Context, origin, destination domain.Coordinates) ([]domain.RouteCandidate, error) {
	d.Calls++
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Candidates, nil
}

// Optimizer returns a fixed trip.
type Optimizer struct {
	Trip  ports.OptimizedTrip
	Err   error
	Calls int

	// Optional hook invoked while the optimization is "in flight".
	OnOptimize func()
}

func (o *Optimizer) OptimizeTrip(ctx context.Context, coords []domain.Coordinates) (ports.OptimizedTrip, error) {
	o.Calls++
	if o.OnOptimize != nil {
		o.OnOptimize()
	}
	if o.Err != nil {
		return ports.OptimizedTrip{}, o.Err
	}
	return o.Trip, nil
}
