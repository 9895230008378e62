package dto

// Destination is either free text (geocoded server-side, first result only)
// or ready coordinates from a previously selected suggestion.
type RouteRequest struct {
	Origin           Point  `json:"origin"`
	Destination      string `json:"destination"`
	DestinationPoint *Point `json:"destination_point"`
}

type RouteCandidateResponse struct {
	Geometry        [][]float64 `json:"geometry"`
	DurationSeconds int         `json:"duration_seconds"`
	DurationText    string      `json:"duration_text"`
	DistanceMeters  int         `json:"distance_meters"`
	DistanceText    string      `json:"distance_text"`
	Severity        string      `json:"severity"`
	HasTraffic      bool        `json:"has_traffic"`
}

type RouteSearchResponse struct {
	DestinationName string                   `json:"destination_name"`
	Destination     Point                    `json:"destination"`
	Routes          []RouteCandidateResponse `json:"routes"`
	SelectedIndex   int                      `json:"selected_index"`
	FreeAlternative bool                     `json:"free_alternative"`
}
