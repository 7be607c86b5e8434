// README: Config loader with env defaults for HTTP, DB, Redis, and collaborator settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN may be empty; the local vehicle catalog is then disabled.
		DSN string
	}
	Redis struct {
		// Addr may be empty; vehicle-list caching is then disabled.
		Addr string
	}
	Inventory struct {
		BookingAPIURL string
		CacheTTL      time.Duration
	}
	Scoring struct {
		TopN int
	}
	Maps struct {
		// APIKey may be empty; requests must then carry an inline trace.
		APIKey string
	}
	AI struct {
		// GeminiKey may be empty; the advisor note is then disabled.
		GeminiKey string
	}
}

func Load() (Config, error) {
	// Load .env into environment (ignore if missing).
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ROADFIT_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("ROADFIT_DB_DSN")
	cfg.Redis.Addr = os.Getenv("ROADFIT_REDIS_ADDR")
	cfg.Inventory.BookingAPIURL = envOrDefault("ROADFIT_BOOKING_API_URL", "https://api.sixt.com/v1")
	cfg.Inventory.CacheTTL = time.Duration(envOrDefaultInt("ROADFIT_VEHICLE_CACHE_TTL_SEC", 300)) * time.Second
	cfg.Scoring.TopN = envOrDefaultInt("ROADFIT_TOP_N", 3)
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
