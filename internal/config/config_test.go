package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexzavalny/chessstats/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		APIBaseURL:         "https://api.chess.com/pub",
		Roster:             []string{"alice", "bob"},
		DisplayNames:       map[string]string{"alice": "Alice"},
		FetchRetries:       3,
		RetryDelay:         time.Second,
		HTTPTimeout:        15 * time.Second,
		CacheBackend:       config.CacheBackendMemory,
		CachePath:          "file:chessstats.db",
		MaxConcurrentFetch: 4,
		RefreshWorkerCount: 1,
		RefreshQueueSize:   8,
		LogLevel:           "INFO",
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.APIBaseURL = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL cannot be empty")
}

func TestValidate_EmptyRoster(t *testing.T) {
	cfg := validConfig()
	cfg.Roster = nil

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ROSTER cannot be empty")
}

func TestValidate_NegativeRetries(t *testing.T) {
	cfg := validConfig()
	cfg.FetchRetries = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_RETRIES cannot be negative")
}

func TestValidate_UnknownCacheBackend(t *testing.T) {
	cfg := validConfig()
	cfg.CacheBackend = "redis"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_BACKEND")
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.CacheBackend = config.CacheBackendSQLite
	cfg.CachePath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_PATH")
}

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://api.chess.com/pub", cfg.APIBaseURL)
	assert.Equal(t, 3, cfg.FetchRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.NotEmpty(t, cfg.Roster)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROSTER", "alice, bob ,carol")
	t.Setenv("DISPLAY_NAMES", "Alice=A,bob=Bobby")
	t.Setenv("FETCH_RETRIES", "5")
	t.Setenv("RETRY_DELAY_MS", "250")

	cfg := config.Load()
	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.Roster)
	assert.Equal(t, 5, cfg.FetchRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)

	// Display name lookup is case-insensitive.
	assert.Equal(t, "A", cfg.DisplayName("alice"))
	assert.Equal(t, "Bobby", cfg.DisplayName("BOB"))
	assert.Equal(t, "unknownplayer", cfg.DisplayName("unknownplayer"))
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("FETCH_RETRIES", "many")

	cfg := config.Load()
	assert.Equal(t, 3, cfg.FetchRetries)
}
