package handlers

import (
	"errors"
	"log"
	"net/http"

	"traffic-nav-service/internal/api/dto"
	"traffic-nav-service/internal/domain"
	"traffic-nav-service/internal/ports"
	"traffic-nav-service/internal/services"
)

// TripsHandler runs multi-stop optimization. Each request builds its own
// planning session: stop texts resolve to waypoints one by one, then the
// optimizer orders them with the origin fixed first.
type TripsHandler struct {
	Geocoder  ports.Geocoder
	Cache     ports.GeocodeCache
	Optimizer ports.TripOptimizer
}

func (h *TripsHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if h.Optimizer == nil {
		writeError(w, r, http.StatusNotImplemented, "trip optimization is not supported by the configured provider")
		return
	}

	var req dto.OptimizeTripRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if len(req.Stops) < 2 {
		writeError(w, r, http.StatusUnprocessableEntity, "at least two stops are required")
		return
	}

	planner := services.NewTripPlanner(h.Geocoder, h.Cache, h.Optimizer)
	for _, stop := range req.Stops {
		if _, err := planner.AddStop(r.Context(), stop); err != nil {
			if errors.Is(err, services.ErrLocationNotFound) {
				writeError(w, r, http.StatusNotFound, "location not found: "+stop)
				return
			}
			log.Printf("add stop failed: stop=%q err=%v", stop, err)
			writeError(w, r, http.StatusBadGateway, "unable to resolve stop: "+stop)
			return
		}
	}

	origin := domain.Coordinates{Lon: req.Origin.Lon, Lat: req.Origin.Lat}

	plan, err := planner.Optimize(r.Context(), origin)
	if errors.Is(err, services.ErrNotEnoughWaypoints) {
		writeError(w, r, http.StatusUnprocessableEntity, "at least two stops are required")
		return
	}
	if err != nil {
		log.Printf("optimize trip failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "unable to optimize trip; try fewer stops")
		return
	}

	geometry := make([][]float64, 0, len(plan.Geometry))
	for _, p := range plan.Geometry {
		geometry = append(geometry, p.CoordsToList())
	}

	res := dto.OptimizeTripResponse{
		Geometry:        geometry,
		Order:           plan.Stops,
		DurationSeconds: plan.DurationSeconds,
		DistanceMeters:  plan.DistanceMeters,
	}

	writeJSON(w, r, http.StatusOK, res)
}
