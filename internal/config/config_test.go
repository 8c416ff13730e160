package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api", c.APIBaseURL)
	assert.Equal(t, "ws://localhost:3000/api/queue/feed", c.QueueFeedURL)
	assert.Equal(t, "evizor-console.db", c.DeviceDBPath)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Zero(t, c.RequestsPerSecond)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("EVIZOR_API_URL", "https://api.evizor.test/api")
	t.Setenv("EVIZOR_REQUEST_TIMEOUT", "5s")
	t.Setenv("EVIZOR_MAPBOX_ACCESS_TOKEN", "pk.test-token")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.evizor.test/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "pk.test-token", cfg.MapboxAccessToken)
	assert.Equal(t, "ws://localhost:3000/api/queue/feed", cfg.QueueFeedURL, "unset vars leave defaults alone")
}

func Test_parseEnv_IgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("EVIZOR_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://staging.evizor.test/api",
		"request_timeout": "10s",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://staging.evizor.test/api", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "evizor-console.db", cfg.DeviceDBPath, "absent fields keep earlier values")
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIBaseURL:     "defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "https://flag.evizor.test/api", "-t", "7"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flag.evizor.test/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "ws://localhost:3000/api/queue/feed", cfg.QueueFeedURL)
}
