package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "eventcoach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
event:
  title: End of Season Party
  contactEmail: transport@example.com
data:
  bookingsPath: /data/bookings.csv
  routesDir: /data/routes
osrm:
  url: http://osrm:5000
  timeout: 1500ms
geometryCache:
  expiration: 6h
`))
	require.NoError(t, err)

	assert.Equal(t, "End of Season Party", cfg.Event.Title)
	assert.Equal(t, "transport@example.com", cfg.Event.ContactEmail)
	assert.Equal(t, Defaults().Event.ReturnNotice, cfg.Event.ReturnNotice)
	assert.Equal(t, "/data/bookings.csv", cfg.Data.BookingsPath)
	assert.Equal(t, "route", cfg.Data.RouteFilePrefix)
	assert.Equal(t, "http://osrm:5000", cfg.OSRM.URL)
	assert.Equal(t, 1500*time.Millisecond, cfg.OSRM.Timeout)
	assert.Equal(t, 6*time.Hour, cfg.GeometryCache.Expiration)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("EVENTCOACH_BOOKINGS_PATH", "/env/bookings.csv")
	t.Setenv("EVENTCOACH_REDIS_ADDRESS", "redis:6379")
	t.Setenv("EVENTCOACH_REDIS_DATABASE", "3")

	cfg, err := Load(writeConfig(t, "data:\n  bookingsPath: /file/bookings.csv\n"))
	require.NoError(t, err)

	assert.Equal(t, "/env/bookings.csv", cfg.Data.BookingsPath)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Redis.Database)
}

func TestLoadInvalidRedisDatabase(t *testing.T) {
	t.Setenv("EVENTCOACH_REDIS_DATABASE", "zero")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "bad email", contents: "event:\n  contactEmail: not-an-email\n"},
		{name: "bad osrm url", contents: "osrm:\n  url: osrm without scheme\n"},
		{name: "empty title", contents: "event:\n  title: \"\"\n"},
		{name: "negative database", contents: "redis:\n  database: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))

			assert.Error(t, err)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "event: [unterminated\n"))

	assert.Error(t, err)
}
