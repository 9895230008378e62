package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"traffic-nav-service/internal/adapters/mocks"
	"traffic-nav-service/internal/api/dto"
	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
)

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSuggestEmptyQueryNoLookup(t *testing.T) {
	geo := &mocks.Geocoder{}
	h := NewRouter(Deps{Geocoder: geo, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodGet, "/suggest?q=", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if geo.SuggestCalls != 0 {
		t.Fatalf("suggest calls = %d, want 0 for empty input", geo.SuggestCalls)
	}

	var res dto.ListSuggestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("suggestions = %v, want empty", res.Suggestions)
	}
}

func TestSuggestReturnsRankedCandidates(t *testing.T) {
	geo := &mocks.Geocoder{
		Suggestions: []domain.PlaceSuggestion{
			{ID: "poi.1", Name: "Library, Springfield", Center: domain.Coordinates{Lon: -112.1, Lat: 33.4}, PlaceTypes: []string{"poi"}},
			{ID: "address.2", Name: "Library Ave", Center: domain.Coordinates{Lon: -112.2, Lat: 33.5}, PlaceTypes: []string{"address"}},
		},
	}
	h := NewRouter(Deps{Geocoder: geo, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodGet, "/suggest?q=Library", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.ListSuggestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("suggestion count = %d, want 2", len(res.Suggestions))
	}
	if res.Suggestions[0].Kind != "poi" {
		t.Fatalf("kind = %q, want poi", res.Suggestions[0].Kind)
	}
}

func TestSuggestRejectsBadLimit(t *testing.T) {
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodGet, "/suggest?q=x&limit=9", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRoutesDestinationNotFound(t *testing.T) {
	geo := &mocks.Geocoder{Places: map[string]domain.PlaceSuggestion{}}
	dir := &mocks.Directions{}
	h := NewRouter(Deps{Geocoder: geo, Directions: dir})

	rec := doRequest(t, h, http.MethodPost, "/routes",
		`{"origin": {"lon": -112.0, "lat": 33.5}, "destination": "nowhere"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
	if dir.Calls != 0 {
		t.Fatalf("directions calls = %d, want 0 when geocoding fails", dir.Calls)
	}
}

func TestRoutesSearchResponse(t *testing.T) {
	geo := &mocks.Geocoder{
		Places: map[string]domain.PlaceSuggestion{
			"airport": {ID: "poi.9", Name: "Springfield Airport", Center: domain.Coordinates{Lon: -112.3, Lat: 33.6}},
		},
	}
	dir := &mocks.Directions{
		Candidates: []domain.RouteCandidate{
			domain.NewRouteCandidate(
				[]domain.Coordinates{{Lon: -112.0, Lat: 33.5}, {Lon: -112.3, Lat: 33.6}},
				845, 12438,
				[]domain.Congestion{domain.CongestionHeavy, domain.CongestionLow},
			),
			domain.NewRouteCandidate(
				[]domain.Coordinates{{Lon: -112.0, Lat: 33.5}, {Lon: -112.3, Lat: 33.6}},
				920, 13000,
				[]domain.Congestion{domain.CongestionLow},
			),
		},
	}
	h := NewRouter(Deps{Geocoder: geo, Directions: dir})

	rec := doRequest(t, h, http.MethodPost, "/routes",
		`{"origin": {"lon": -112.0, "lat": 33.5}, "destination": "airport"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteSearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if res.DestinationName != "Springfield Airport" {
		t.Fatalf("destination = %q", res.DestinationName)
	}
	if res.SelectedIndex != 0 {
		t.Fatalf("selected index = %d, want 0", res.SelectedIndex)
	}
	if !res.FreeAlternative {
		t.Fatal("expected a free-alternative advisory")
	}
	if len(res.Routes) != 2 {
		t.Fatalf("route count = %d, want 2", len(res.Routes))
	}
	if res.Routes[0].Severity != "moderate" || !res.Routes[0].HasTraffic {
		t.Fatalf("route 0 = %q/%v, want moderate/true", res.Routes[0].Severity, res.Routes[0].HasTraffic)
	}
	if res.Routes[0].DurationText != "14 min" {
		t.Fatalf("duration text = %q, want 14 min", res.Routes[0].DurationText)
	}
}

func TestRoutesWithDestinationPointSkipsGeocode(t *testing.T) {
	geo := &mocks.Geocoder{}
	dir := &mocks.Directions{
		Candidates: []domain.RouteCandidate{
			domain.NewRouteCandidate(
				[]domain.Coordinates{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}},
				60, 500, nil,
			),
		},
	}
	h := NewRouter(Deps{Geocoder: geo, Directions: dir})

	rec := doRequest(t, h, http.MethodPost, "/routes",
		`{"origin": {"lon": 0, "lat": 0}, "destination_point": {"lon": 1, "lat": 1}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if geo.GeocodeCalls != 0 {
		t.Fatalf("geocode calls = %d, want 0 when coordinates are supplied", geo.GeocodeCalls)
	}
}

func TestRoutesRejectsMissingDestination(t *testing.T) {
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodPost, "/routes", `{"origin": {"lon": 0, "lat": 0}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRoutesRejectsUnknownFields(t *testing.T) {
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodPost, "/routes",
		`{"origin": {"lon": 0, "lat": 0}, "destination": "x", "bogus": true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeTripRequiresTwoStops(t *testing.T) {
	opt := &mocks.Optimizer{}
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}, Optimizer: opt})

	rec := doRequest(t, h, http.MethodPost, "/trips/optimize",
		`{"origin": {"lon": 0, "lat": 0}, "stops": ["only one"]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if opt.Calls != 0 {
		t.Fatalf("optimizer calls = %d, want 0", opt.Calls)
	}
}

func TestOptimizeTripWithoutOptimizer(t *testing.T) {
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodPost, "/trips/optimize",
		`{"origin": {"lon": 0, "lat": 0}, "stops": ["a", "b"]}`)
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", rec.Code)
	}
}

func TestOptimizeTripOrdersStops(t *testing.T) {
	geo := &mocks.Geocoder{
		Places: map[string]domain.PlaceSuggestion{
			"a street": {ID: "1", Name: "A Street", Center: domain.Coordinates{Lon: 1, Lat: 1}},
			"b plaza":  {ID: "2", Name: "B Plaza", Center: domain.Coordinates{Lon: 2, Lat: 2}},
		},
	}
	opt := &mocks.Optimizer{
		Trip: ports.OptimizedTrip{
			Geometry:        []domain.Coordinates{{Lon: 0, Lat: 0}, {Lon: 2, Lat: 2}, {Lon: 1, Lat: 1}},
			Order:           []int{0, 2, 1},
			DurationSeconds: 1200,
			DistanceMeters:  9000,
		},
	}
	h := NewRouter(Deps{Geocoder: geo, Directions: &mocks.Directions{}, Optimizer: opt})

	rec := doRequest(t, h, http.MethodPost, "/trips/optimize",
		`{"origin": {"lon": 0, "lat": 0}, "stops": ["a street", "b plaza"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var res dto.OptimizeTripResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	want := []string{"Origin", "B Plaza", "A Street"}
	if len(res.Order) != len(want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}
	for i := range want {
		if res.Order[i] != want[i] {
			t.Fatalf("order = %v, want %v", res.Order, want)
		}
	}
}

func TestOptimizeTripUnknownStop(t *testing.T) {
	geo := &mocks.Geocoder{Places: map[string]domain.PlaceSuggestion{}}
	opt := &mocks.Optimizer{}
	h := NewRouter(Deps{Geocoder: geo, Directions: &mocks.Directions{}, Optimizer: opt})

	rec := doRequest(t, h, http.MethodPost, "/trips/optimize",
		`{"origin": {"lon": 0, "lat": 0}, "stops": ["nowhere", "also nowhere"]}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
	if opt.Calls != 0 {
		t.Fatalf("optimizer calls = %d, want 0", opt.Calls)
	}
}

func TestHealth(t *testing.T) {
	h := NewRouter(Deps{Geocoder: &mocks.Geocoder{}, Directions: &mocks.Directions{}})

	rec := doRequest(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
