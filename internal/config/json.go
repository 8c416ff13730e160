package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/evizor/console/internal/flagx"
	"github.com/evizor/console/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	QueueFeedURL      string         `json:"queue_feed_url"`
	DeviceDBPath      string         `json:"device_db_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	RequestsPerSecond float64        `json:"requests_per_second"`
	MapboxAccessToken string         `json:"mapbox_access_token"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; if no path
// is given, nothing is loaded. Only fields present in the JSON override the
// current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.QueueFeedURL != "" {
		cfg.QueueFeedURL = jc.QueueFeedURL
	}
	if jc.DeviceDBPath != "" {
		cfg.DeviceDBPath = jc.DeviceDBPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RequestsPerSecond != 0 {
		cfg.RequestsPerSecond = jc.RequestsPerSecond
	}
	if jc.MapboxAccessToken != "" {
		cfg.MapboxAccessToken = jc.MapboxAccessToken
	}
}
