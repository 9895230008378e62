package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
)

var (
	// The destination text produced no geocode result.
	ErrDestinationNotFound = errors.New("destination not found")

	// A waypoint's text produced no geocode result.
	ErrLocationNotFound = errors.New("location not found")
)

// RouteService resolves a destination and fetches classified route
// alternatives. Both the geocode cache and the history repository are
// optional; nil disables them.
type RouteService struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Cache      ports.GeocodeCache
	History    ports.HistoryRepository
}

// RouteQuery carries a resolved origin plus a destination as either raw text
// or, when a suggestion was selected upstream, ready coordinates.
type RouteQuery struct {
	Origin          domain.Coordinates
	DestinationText string
	Destination     *domain.Coordinates
}

// RouteResult is the outcome of one search: the resolved destination, the
// freshly replaced candidate set (selection reset to zero), and the advisory
// that a less-congested alternative exists.
type RouteResult struct {
	Destination     domain.PlaceSuggestion
	Routes          domain.RouteSet
	FreeAlternative bool
}

// Search geocodes the destination when coordinates were not supplied (first
// result only), then requests traffic-annotated alternatives. The returned
// candidate list replaces any prior one wholesale.
func (s *RouteService) Search(ctx context.Context, q RouteQuery) (*RouteResult, error) {
	var dest domain.PlaceSuggestion

	if q.Destination != nil {
		dest = domain.PlaceSuggestion{
			Name:   q.DestinationText,
			Center: *q.Destination,
		}
	} else {
		resolved, err := resolvePlace(ctx, s.Geocoder, s.Cache, q.DestinationText)
		if errors.Is(err, ports.ErrNoResult) {
			return nil, ErrDestinationNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("search routes: resolve destination: %w", err)
		}
		dest = resolved
	}

	candidates, err := s.Directions.Routes(ctx, q.Origin, dest.Center)
	if err != nil {
		return nil, fmt.Errorf("search routes: fetch alternatives: %w", err)
	}

	set := domain.NewRouteSet(candidates)

	// History is best-effort; a write failure never fails the search.
	if s.History != nil && dest.Name != "" {
		if err := s.History.Record(ctx, dest.Name, dest); err != nil {
			log.Printf("history write failed: %v", err)
		}
	}

	return &RouteResult{
		Destination:     dest,
		Routes:          set,
		FreeAlternative: set.HasFreeAlternative(),
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolvePlace turns free text into a single place, consulting the cache
// first. Cache read failures propagate; write failures are only logged.
func resolvePlace(ctx context.Context, geocoder ports.Geocoder, cache ports.GeocodeCache, text string) (domain.PlaceSuggestion, error) {
	norm := normalize(text)
	if norm == "" {
		return domain.PlaceSuggestion{}, ports.ErrNoResult
	}

	if cache != nil {
		place, ok, err := cache.Get(ctx, norm)
		if err != nil {
			return domain.PlaceSuggestion{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return place, nil
		}
	}

	place, err := geocoder.Geocode(ctx, norm)
	if err != nil {
		return domain.PlaceSuggestion{}, err
	}

	if cache != nil {
		if err := cache.Put(ctx, norm, place); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return place, nil
}
