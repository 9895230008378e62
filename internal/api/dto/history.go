package dto

import "time"

type SearchRecordResponse struct {
	Query      string    `json:"query"`
	Name       string    `json:"name"`
	Lon        float64   `json:"lon"`
	Lat        float64   `json:"lat"`
	SearchedAt time.Time `json:"searched_at"`
}

type ListHistoryResponse struct {
	Searches []SearchRecordResponse `json:"searches"`
}
