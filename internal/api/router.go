package api

import (
	"net/http"

	"traffic-nav-service/internal/api/handlers"
	"traffic-nav-service/internal/ports"
	"traffic-nav-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Deps are the ports the API needs. Optimizer, Cache and History may be nil:
// a nil optimizer disables /trips/optimize, a nil cache disables caching,
// a nil history disables /history.
type Deps struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Optimizer  ports.TripOptimizer
	Cache      ports.GeocodeCache
	History    ports.HistoryRepository
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters). CORS is wide open because the consumer is a browser
// map UI served from elsewhere.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	suggestHandler := &handlers.SuggestHandler{Geocoder: deps.Geocoder}
	routesHandler := &handlers.RoutesHandler{
		Service: &services.RouteService{
			Geocoder:   deps.Geocoder,
			Directions: deps.Directions,
			Cache:      deps.Cache,
			History:    deps.History,
		},
	}
	tripsHandler := &handlers.TripsHandler{
		Geocoder:  deps.Geocoder,
		Cache:     deps.Cache,
		Optimizer: deps.Optimizer,
	}

	r.Get("/health", handlers.Health)
	r.Get("/suggest", suggestHandler.Suggest)
	r.Post("/routes", routesHandler.Search)
	r.Post("/trips/optimize", tripsHandler.Optimize)

	if deps.History != nil {
		historyHandler := &handlers.HistoryHandler{Repo: deps.History}
		r.Get("/history", historyHandler.Recent)
	}

	return r
}
