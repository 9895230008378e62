package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"traffic-nav-service/internal/adapters/cache"
	"traffic-nav-service/internal/adapters/google"
	"traffic-nav-service/internal/adapters/mapbox"
	"traffic-nav-service/internal/adapters/repositories"
	"traffic-nav-service/internal/api"
	"traffic-nav-service/internal/config"
	"traffic-nav-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Mapbox or Google, Redis/Postgres/SQLite cache)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")
	provider := config.Get("PROVIDER", "mapbox")
	cacheKind := config.Get("GEOCODE_CACHE", "sqlite")

	// Local SQLite backs search history and the default geocode cache.
	sqliteDB, err := db.OpenSqlite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatal(err)
	}

	deps := api.Deps{
		History: repositories.NewSqliteHistoryRepository(sqliteDB),
	}

	switch cacheKind {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		deps.Cache = cache.NewRedisGeocodeCache(rdb, 24*time.Hour)
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required for the postgres geocode cache")
		}
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		deps.Cache = cache.NewSQLGeocodeCache(pg)
	case "sqlite":
		deps.Cache = cache.NewSqliteGeocodeCache(sqliteDB)
	case "off":
		// No cache; every resolution hits the provider.
	default:
		log.Fatalf("unknown GEOCODE_CACHE %q (want redis, postgres, sqlite or off)", cacheKind)
	}

	// The access token is read exactly once, here.
	switch provider {
	case "mapbox":
		token := os.Getenv("MAPBOX_ACCESS_TOKEN")
		if strings.TrimSpace(token) == "" {
			log.Fatal("MAPBOX_ACCESS_TOKEN is required")
		}
		client, err := mapbox.NewClient(token)
		if err != nil {
			log.Fatal(err)
		}
		deps.Geocoder = client
		deps.Directions = client
		deps.Optimizer = client
	case "google":
		apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
		if strings.TrimSpace(apiKey) == "" {
			log.Fatal("GOOGLE_MAPS_API_KEY is required")
		}
		p, err := google.NewProvider(apiKey)
		if err != nil {
			log.Fatal(err)
		}
		deps.Geocoder = p
		deps.Directions = p
		// The Google adapter has no trip optimization; the endpoint
		// reports itself unsupported.
	default:
		log.Fatalf("unknown PROVIDER %q (want mapbox or google)", provider)
	}

	router := api.NewRouter(deps)

	// Timeouts are tuned for cold-cache route searches (external API latency).
	log.Printf("Server listening addr=:%s provider=%s cache=%s", port, provider, cacheKind)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
