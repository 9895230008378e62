package google

import (
	"context"
	"fmt"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/platform/obs"
	"traffic-nav-service/internal/ports"

	maps "googlemaps.github.io/maps"
)

// Provider implements the Geocoder and DirectionsProvider ports on the
// Google Maps SDK. The SDK exposes no per-segment congestion data, so every
// route it produces carries an empty tag list and classifies as free.
// It does not implement trip optimization.
type Provider struct {
	client *maps.Client
}

func NewProvider(apiKey string) (*Provider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create google maps client: %w", err)
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Suggest(ctx context.Context, query string, limit int) (_ []domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "google.Suggest")(&err)

	results, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", query, err)
	}

	if limit <= 0 || limit > 5 {
		limit = 5
	}
	if len(results) > limit {
		results = results[:limit]
	}

	out := make([]domain.PlaceSuggestion, 0, len(results))
	for _, r := range results {
		out = append(out, toSuggestion(r))
	}
	return out, nil
}

func (p *Provider) Geocode(ctx context.Context, query string) (_ domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "google.Geocode")(&err)

	results, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return domain.PlaceSuggestion{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return domain.PlaceSuggestion{}, ports.ErrNoResult
	}

	return toSuggestion(results[0]), nil
}

func (p *Provider) Routes(ctx context.Context, origin, destination domain.Coordinates) (_ []domain.RouteCandidate, err error) {
	defer obs.Time(ctx, "google.Routes")(&err)

	req := &maps.DirectionsRequest{
		Origin:       fmt.Sprintf("%f,%f", origin.Lat, origin.Lon),
		Destination:  fmt.Sprintf("%f,%f", destination.Lat, destination.Lon),
		Mode:         maps.TravelModeDriving,
		Alternatives: true,
	}

	routes, _, err := p.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("directions service returned no routes")
	}

	out := make([]domain.RouteCandidate, 0, len(routes))
	for i, rt := range routes {
		line, err := rt.OverviewPolyline.Decode()
		if err != nil {
			return nil, fmt.Errorf("route %d: decode polyline: %w", i, err)
		}

		geometry := make([]domain.Coordinates, 0, len(line))
		for _, p := range line {
			geometry = append(geometry, domain.Coordinates{Lon: p.Lng, Lat: p.Lat})
		}

		seconds := 0
		meters := 0
		for _, leg := range rt.Legs {
			seconds += int(leg.Duration.Seconds())
			meters += leg.Distance.Meters
		}

		out = append(out, domain.NewRouteCandidate(geometry, seconds, meters, nil))
	}

	return out, nil
}

func toSuggestion(r maps.GeocodingResult) domain.PlaceSuggestion {
	return domain.PlaceSuggestion{
		ID:   r.PlaceID,
		Name: r.FormattedAddress,
		Center: domain.Coordinates{
			Lon: r.Geometry.Location.Lng,
			Lat: r.Geometry.Location.Lat,
		},
		PlaceTypes: r.Types,
	}
}
