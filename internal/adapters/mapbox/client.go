package mapbox

import (
	"errors"
	"net/http"
	"time"
)

// Client implements the Geocoder, DirectionsProvider and TripOptimizer ports
// against the Mapbox HTTP APIs.
//
// It coordinates:
//   - Forward geocoding and autocomplete (Geocoding v5)
//   - Traffic-annotated alternative routes (Directions v5, driving-traffic)
//   - Multi-stop trip ordering (Optimized Trips v1)
//
// Every call is a single attempt: failures are terminal for that user action
// and surface to the caller unretried. The client is safe for concurrent use.
type Client struct {
	session *http.Client
	token   string
	baseURL string
	profile string
}

func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("mapbox access token is empty")
	}

	c := &Client{
		session: &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: "https://api.mapbox.com",
		profile: "driving-traffic",
	}

	return c, nil
}
