package mapbox

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/platform/obs"
	"traffic-nav-service/internal/ports"
)

// The most suggestions a single autocomplete lookup surfaces, regardless of
// how many the service returns.
const maxSuggestions = 5

type geocodeResponse struct {
	Features []struct {
		ID        string    `json:"id"`
		PlaceName string    `json:"place_name"`
		PlaceType []string  `json:"place_type"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

// Suggest returns ranked autocomplete candidates for a partial query,
// capped to the first limit entries (at most maxSuggestions).
func (c *Client) Suggest(ctx context.Context, query string, limit int) (_ []domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "mapbox.Suggest")(&err)

	if limit <= 0 || limit > maxSuggestions {
		limit = maxSuggestions
	}

	features, err := c.forward(ctx, query, limit, true)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", query, err)
	}

	out := make([]domain.PlaceSuggestion, 0, len(features))
	for _, f := range features {
		if len(out) == limit {
			break
		}
		out = append(out, f)
	}

	return out, nil
}

// Geocode resolves a query to its single highest-confidence place.
func (c *Client) Geocode(ctx context.Context, query string) (_ domain.PlaceSuggestion, err error) {
	defer obs.Time(ctx, "mapbox.Geocode")(&err)

	features, err := c.forward(ctx, query, 1, false)
	if err != nil {
		return domain.PlaceSuggestion{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(features) == 0 {
		return domain.PlaceSuggestion{}, ports.ErrNoResult
	}

	return features[0], nil
}

// forward performs one Geocoding v5 forward lookup.
func (c *Client) forward(ctx context.Context, query string, limit int, autocomplete bool) ([]domain.PlaceSuggestion, error) {
	endpoint := fmt.Sprintf(
		"%s/geocoding/v5/mapbox.places/%s.json",
		c.baseURL, url.PathEscape(query),
	)

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("autocomplete", strconv.FormatBool(autocomplete))

	var decoded geocodeResponse
	if err := c.getJSON(ctx, endpoint, params, &decoded); err != nil {
		return nil, err
	}

	out := make([]domain.PlaceSuggestion, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		if len(f.Center) != 2 {
			return nil, fmt.Errorf("invalid center for feature %q", f.ID)
		}
		out = append(out, domain.PlaceSuggestion{
			ID:         f.ID,
			Name:       f.PlaceName,
			Center:     domain.Coordinates{Lon: f.Center[0], Lat: f.Center[1]},
			PlaceTypes: f.PlaceType,
		})
	}

	return out, nil
}
