package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.True(t, cfg.Booking.BusinessHours)
	assert.Equal(t, 1500, cfg.Server.ArtificialDelayMs)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8081
artificial_delay_ms = 0

[storage]
driver = "redis"

[redis]
addr = "redis:6379"
key = "beauty:bookings"

[booking]
business_hours = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, 0, cfg.Server.ArtificialDelayMs)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "beauty:bookings", cfg.Redis.Key)
	assert.False(t, cfg.Booking.BusinessHours)
	assert.Equal(t, 5, cfg.Booking.OpenHour)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[server\nhttp_port = "},
		{"unknown driver", "[storage]\ndriver = \"mongo\""},
		{"bad log level", "[logs]\nlevel = \"trace\""},
		{"inverted business window", "[booking]\nopen_hour = 18\nclose_hour = 9"},
		{"postgres without dbname", "[storage]\ndriver = \"postgres\"\n[database]\ndbname = \"\""},
		{"redis without addr", "[storage]\ndriver = \"redis\"\n[redis]\naddr = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "beauty", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=beauty sslmode=disable", d.DSN())
}
