package mapbox

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/platform/obs"
	"traffic-nav-service/internal/ports"
)

type optimizeResponse struct {
	Code  string `json:"code"`
	Trips []struct {
		Duration float64 `json:"duration"`
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"trips"`
	Waypoints []struct {
		WaypointIndex int `json:"waypoint_index"`
	} `json:"waypoints"`
}

// OptimizeTrip requests a minimal-travel visiting order for the coordinate
// chain with the first coordinate fixed as the start and no return leg.
// The optimization profile ignores live traffic; ordering is by travel time
// on free-flowing roads.
func (c *Client) OptimizeTrip(ctx context.Context, coords []domain.Coordinates) (_ ports.OptimizedTrip, err error) {
	defer obs.Time(ctx, "mapbox.OptimizeTrip")(&err)

	if len(coords) < 2 {
		return ports.OptimizedTrip{}, fmt.Errorf("optimize trip: need at least 2 coordinates, got %d", len(coords))
	}

	segs := make([]string, 0, len(coords))
	for _, co := range coords {
		segs = append(segs, co.PathSegment())
	}

	endpoint := fmt.Sprintf(
		"%s/optimized-trips/v1/mapbox/driving/%s",
		c.baseURL, strings.Join(segs, ";"),
	)

	params := url.Values{}
	params.Set("source", "first")
	params.Set("destination", "any")
	params.Set("roundtrip", "false")
	params.Set("geometries", "geojson")
	params.Set("overview", "full")

	var decoded optimizeResponse
	if err := c.getJSON(ctx, endpoint, params, &decoded); err != nil {
		return ports.OptimizedTrip{}, fmt.Errorf("optimized-trips request: %w", err)
	}

	if decoded.Code != "Ok" {
		return ports.OptimizedTrip{}, fmt.Errorf("optimization service returned code %q", decoded.Code)
	}
	if len(decoded.Trips) == 0 {
		return ports.OptimizedTrip{}, fmt.Errorf("optimization service returned no trips")
	}
	if len(decoded.Waypoints) != len(coords) {
		return ports.OptimizedTrip{}, fmt.Errorf(
			"optimization service returned %d waypoints for %d inputs",
			len(decoded.Waypoints), len(coords),
		)
	}

	trip := decoded.Trips[0]
	geometry, err := decodeLine(trip.Geometry.Coordinates)
	if err != nil {
		return ports.OptimizedTrip{}, fmt.Errorf("trip geometry: %w", err)
	}

	// The service reports, per input coordinate, its position in the
	// optimized trip; invert that into visiting order -> input index.
	order := make([]int, len(coords))
	for i := range order {
		order[i] = -1
	}
	for input, wp := range decoded.Waypoints {
		if wp.WaypointIndex < 0 || wp.WaypointIndex >= len(order) {
			return ports.OptimizedTrip{}, fmt.Errorf(
				"waypoint_index %d out of range for %d inputs",
				wp.WaypointIndex, len(coords),
			)
		}
		order[wp.WaypointIndex] = input
	}
	for pos, input := range order {
		if input == -1 {
			return ports.OptimizedTrip{}, fmt.Errorf("no input mapped to visiting position %d", pos)
		}
	}

	return ports.OptimizedTrip{
		Geometry:        geometry,
		Order:           order,
		DurationSeconds: int(math.Round(trip.Duration)),
		DistanceMeters:  int(math.Round(trip.Distance)),
	}, nil
}
