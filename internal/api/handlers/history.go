package handlers

import (
	"log"
	"net/http"
	"strconv"

	"traffic-nav-service/internal/api/dto"
	"traffic-nav-service/internal/ports"
)

// HistoryHandler exposes read-only access to recent destination searches.
type HistoryHandler struct {
	Repo ports.HistoryRepository
}

func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := h.Repo.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("list history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListHistoryResponse{
		Searches: make([]dto.SearchRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Searches = append(res.Searches, dto.SearchRecordResponse{
			Query:      rec.Query,
			Name:       rec.Name,
			Lon:        rec.Center.Lon,
			Lat:        rec.Center.Lat,
			SearchedAt: rec.SearchedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
