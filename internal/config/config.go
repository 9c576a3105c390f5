package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
)

type Config struct {
	Addr               string
	APIBaseURL         string
	Roster             []string
	DisplayNames       map[string]string
	FetchRetries       int
	RetryDelay         time.Duration
	HTTPTimeout        time.Duration
	CacheBackend       string
	CachePath          string
	MaxConcurrentFetch int
	RefreshWorkerCount int
	RefreshQueueSize   int
	LogLevel           string
}

// defaultRoster is the roster used when ROSTER is not configured.
var defaultRoster = []string{
	"sonicspeedmate",
	"jefimserg",
	"TheErix",
	"vadimostapchuk",
	"KsenijaTojeckina",
	"gregory_z",
	"AGS_real",
}

// defaultDisplayNames maps roster usernames to the labels shown instead.
var defaultDisplayNames = map[string]string{
	"sonicspeedmate":   "Alex",
	"jefimserg":        "Sergey",
	"theerix":          "Erik",
	"vadimostapchuk":   "Vadim",
	"ksenijatojeckina": "Ksjuwa",
	"gregory_z":        "Gregory",
	"ags_real":         "Artur",
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		APIBaseURL:         envOr("API_BASE_URL", "https://api.chess.com/pub"),
		Roster:             envListOr("ROSTER", defaultRoster),
		DisplayNames:       envMapOr("DISPLAY_NAMES", defaultDisplayNames),
		FetchRetries:       envIntOr("FETCH_RETRIES", 3),
		RetryDelay:         time.Duration(envIntOr("RETRY_DELAY_MS", 1000)) * time.Millisecond,
		HTTPTimeout:        time.Duration(envIntOr("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		CacheBackend:       envOr("CACHE_BACKEND", CacheBackendMemory),
		CachePath:          envOr("CACHE_PATH", "file:chessstats.db"),
		MaxConcurrentFetch: envIntOr("MAX_CONCURRENT_FETCH", 4),
		RefreshWorkerCount: envIntOr("REFRESH_WORKER_COUNT", 1),
		RefreshQueueSize:   envIntOr("REFRESH_QUEUE_SIZE", 8),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}
	if len(c.Roster) == 0 {
		return fmt.Errorf("ROSTER cannot be empty")
	}
	if c.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES cannot be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RETRY_DELAY_MS cannot be negative")
	}
	if c.CacheBackend != CacheBackendMemory && c.CacheBackend != CacheBackendSQLite {
		return fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendSQLite, c.CacheBackend)
	}
	if c.CacheBackend == CacheBackendSQLite && c.CachePath == "" {
		return fmt.Errorf("CACHE_PATH cannot be empty when CACHE_BACKEND is sqlite")
	}
	if c.MaxConcurrentFetch < 1 {
		return fmt.Errorf("MAX_CONCURRENT_FETCH must be at least 1")
	}
	return nil
}

// DisplayName resolves a username to its configured label, falling back to
// the username itself. Lookup is case-insensitive like username matching.
func (c Config) DisplayName(username string) string {
	if name, ok := c.DisplayNames[strings.ToLower(username)]; ok {
		return name
	}
	return username
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

// envListOr parses a comma-separated list, e.g. ROSTER=alice,bob.
func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// envMapOr parses comma-separated key=value pairs, e.g.
// DISPLAY_NAMES=alice=Alice,bob=Bob. Keys are lowercased.
func envMapOr(key string, def map[string]string) map[string]string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(v, ",") {
		k, val, ok := strings.Cut(pair, "=")
		if !ok {
			log.Printf("invalid %s entry %q, skipping", key, pair)
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(val)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
