package dto

// Geographic point on the wire, longitude first to match the providers.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
