package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"traffic-nav-service/internal/api/dto"
	"traffic-nav-service/internal/ports"
)

// SuggestHandler exposes the autocomplete half of destination resolution.
// Debouncing stays client-side; this endpoint is stateless.
type SuggestHandler struct {
	Geocoder ports.Geocoder
}

func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	res := dto.ListSuggestionsResponse{
		Suggestions: []dto.SuggestionResponse{},
	}

	// Empty or whitespace input produces no suggestions and no lookup.
	if q == "" {
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 5")
			return
		}
		limit = n
	}

	suggestions, err := h.Geocoder.Suggest(r.Context(), q, limit)
	if err != nil {
		log.Printf("suggest failed: q=%q err=%v", q, err)
		writeError(w, r, http.StatusBadGateway, "unable to look up suggestions")
		return
	}

	for _, s := range suggestions {
		res.Suggestions = append(res.Suggestions, dto.SuggestionResponse{
			ID:   s.ID,
			Name: s.Name,
			Kind: s.Kind(),
			Lon:  s.Center.Lon,
			Lat:  s.Center.Lat,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
