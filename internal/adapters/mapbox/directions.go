package mapbox

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/platform/obs"
)

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Annotation struct {
				Congestion []string `json:"congestion"`
			} `json:"annotation"`
		} `json:"legs"`
	} `json:"routes"`
}

// Routes requests driving alternatives with per-segment congestion
// annotations. Candidates are returned in the service's ranking order; the
// congestion tags come from the first leg only, and their absence means the
// route classifies as free.
func (c *Client) Routes(ctx context.Context, origin, destination domain.Coordinates) (_ []domain.RouteCandidate, err error) {
	defer obs.Time(ctx, "mapbox.Routes")(&err)

	endpoint := fmt.Sprintf(
		"%s/directions/v5/mapbox/%s/%s;%s",
		c.baseURL, c.profile, origin.PathSegment(), destination.PathSegment(),
	)

	params := url.Values{}
	params.Set("alternatives", "true")
	params.Set("geometries", "geojson")
	params.Set("overview", "full")
	params.Set("annotations", "congestion")

	var decoded directionsResponse
	if err := c.getJSON(ctx, endpoint, params, &decoded); err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}

	if decoded.Code != "Ok" {
		return nil, fmt.Errorf("directions service returned code %q", decoded.Code)
	}
	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("directions service returned no routes")
	}

	out := make([]domain.RouteCandidate, 0, len(decoded.Routes))
	for i, rt := range decoded.Routes {
		geometry, err := decodeLine(rt.Geometry.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		var tags []domain.Congestion
		if len(rt.Legs) > 0 {
			raw := rt.Legs[0].Annotation.Congestion
			tags = make([]domain.Congestion, 0, len(raw))
			for _, t := range raw {
				tags = append(tags, domain.Congestion(t))
			}
		}

		out = append(out, domain.NewRouteCandidate(
			geometry,
			int(math.Round(rt.Duration)),
			int(math.Round(rt.Distance)),
			tags,
		))
	}

	return out, nil
}

func decodeLine(coords [][]float64) ([]domain.Coordinates, error) {
	out := make([]domain.Coordinates, 0, len(coords))
	for i, p := range coords {
		if len(p) != 2 {
			return nil, fmt.Errorf("invalid coordinate pair at position %d", i)
		}
		out = append(out, domain.Coordinates{Lon: p[0], Lat: p[1]})
	}
	return out, nil
}
