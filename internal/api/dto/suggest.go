package dto

type SuggestionResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Lon  float64 `json:"lon"`
	Lat  float64 `json:"lat"`
}

type ListSuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}
