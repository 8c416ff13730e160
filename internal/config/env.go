package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first; variables already set in the
// environment win over the file.
//
// Recognized variables:
//
//	EVIZOR_API_URL          backend REST base URL
//	EVIZOR_QUEUE_FEED_URL   websocket queue feed URL
//	EVIZOR_DEVICE_DB        SQLite device store path
//	EVIZOR_REQUEST_TIMEOUT  per-request timeout, e.g. "30s"
//	EVIZOR_MAPBOX_ACCESS_TOKEN  token for map-rendering integrations
func parseEnv(cfg *Config) {
	// Missing .env is not an error, the file is optional.
	_ = godotenv.Load()

	if v := os.Getenv("EVIZOR_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("EVIZOR_QUEUE_FEED_URL"); v != "" {
		cfg.QueueFeedURL = v
	}
	if v := os.Getenv("EVIZOR_DEVICE_DB"); v != "" {
		cfg.DeviceDBPath = v
	}
	if v := os.Getenv("EVIZOR_MAPBOX_ACCESS_TOKEN"); v != "" {
		cfg.MapboxAccessToken = v
	}
	if v := os.Getenv("EVIZOR_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
