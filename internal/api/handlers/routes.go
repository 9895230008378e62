package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"traffic-nav-service/internal/api/dto"
	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/services"
)

// RoutesHandler resolves a destination and returns classified route
// alternatives.
type RoutesHandler struct {
	Service *services.RouteService
}

func (h *RoutesHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.DestinationPoint == nil && strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	q := services.RouteQuery{
		Origin:          domain.Coordinates{Lon: req.Origin.Lon, Lat: req.Origin.Lat},
		DestinationText: req.Destination,
	}
	if req.DestinationPoint != nil {
		q.Destination = &domain.Coordinates{
			Lon: req.DestinationPoint.Lon,
			Lat: req.DestinationPoint.Lat,
		}
	}

	result, err := h.Service.Search(r.Context(), q)
	if errors.Is(err, services.ErrDestinationNotFound) {
		writeError(w, r, http.StatusNotFound, "destination not found")
		return
	}
	if err != nil {
		log.Printf("route search failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "unable to get route")
		return
	}

	res := dto.RouteSearchResponse{
		DestinationName: result.Destination.Name,
		Destination: dto.Point{
			Lon: result.Destination.Center.Lon,
			Lat: result.Destination.Center.Lat,
		},
		Routes:          make([]dto.RouteCandidateResponse, 0, len(result.Routes.Candidates)),
		SelectedIndex:   result.Routes.Selected,
		FreeAlternative: result.FreeAlternative,
	}

	for _, c := range result.Routes.Candidates {
		geometry := make([][]float64, 0, len(c.Geometry))
		for _, p := range c.Geometry {
			geometry = append(geometry, p.CoordsToList())
		}

		res.Routes = append(res.Routes, dto.RouteCandidateResponse{
			Geometry:        geometry,
			DurationSeconds: c.DurationSeconds,
			DurationText:    services.FormatDuration(c.DurationSeconds),
			DistanceMeters:  c.DistanceMeters,
			DistanceText:    services.FormatDistance(c.DistanceMeters),
			Severity:        string(c.Severity),
			HasTraffic:      c.HasTraffic,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
