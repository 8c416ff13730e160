// Package config assembles the console's runtime configuration from layered
// sources. Later sources take precedence: defaults, then a .env file and
// environment variables, then an optional JSON file, then command-line flags.
package config

import "time"

// Config holds runtime settings for the console.
type Config struct {
	// APIBaseURL is the backend REST base, including the /api prefix.
	APIBaseURL string
	// QueueFeedURL is the websocket endpoint for the live patient queue.
	QueueFeedURL string
	// DeviceDBPath is the SQLite file holding the sealed session and
	// console preferences.
	DeviceDBPath string
	// RequestTimeout bounds every HTTP call.
	RequestTimeout time.Duration
	// RequestsPerSecond caps outgoing request rate; 0 disables the limiter.
	RequestsPerSecond float64
	// MapboxAccessToken is handed to map-rendering integrations (pharmacy
	// locations). The console itself never calls Mapbox.
	MapboxAccessToken string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.QueueFeedURL = "ws://localhost:3000/api/queue/feed"
	c.DeviceDBPath = "evizor-console.db"
	c.RequestTimeout = 30 * time.Second
	c.RequestsPerSecond = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), JSON (if present) and
// command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
