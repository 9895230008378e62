package dto

type OptimizeTripRequest struct {
	Origin Point    `json:"origin"`
	Stops  []string `json:"stops"`
}

type OptimizeTripResponse struct {
	Geometry        [][]float64 `json:"geometry"`
	Order           []string    `json:"order"`
	DurationSeconds int         `json:"duration_seconds"`
	DistanceMeters  int         `json:"distance_meters"`
}
