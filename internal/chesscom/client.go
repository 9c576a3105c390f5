package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/alexzavalny/chessstats/internal/cache"
	apperrors "github.com/alexzavalny/chessstats/internal/errors"
	"github.com/alexzavalny/chessstats/internal/logger"
)

// Client fetches game history and player statistics from the chess.com
// published-data API. Failed requests are retried a bounded number of
// times with a fixed delay; a freshness cache, when configured, is
// consulted before any network call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retries    int
	retryDelay time.Duration
	store      cache.Store
	log        *logger.Logger

	mu        sync.Mutex
	lastFetch time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetries sets the retry count. N retries means at most N+1 attempts.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.retries = n
	}
}

// WithRetryDelay sets the fixed delay between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithCache attaches a freshness cache consulted before network calls.
func WithCache(store cache.Store) Option {
	return func(c *Client) {
		c.store = store
	}
}

// New creates a Client for the given API base URL, e.g.
// "https://api.chess.com/pub".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		retries:    3,
		retryDelay: time.Second,
		log:        logger.Default().WithPrefix("chesscom"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchMonthlyGames returns every game the player finished in the given
// month, in the upstream's order (chronological, oldest first).
func (c *Client) FetchMonthlyGames(ctx context.Context, username string, year int, month time.Month) ([]Game, error) {
	url := fmt.Sprintf("%s/player/%s/games/%d/%02d", c.baseURL, username, year, int(month))

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Games []Game `json:"games"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode monthly games: %w", err)
	}
	return payload.Games, nil
}

// FetchPlayerStats returns the player-statistics resource for a username.
func (c *Client) FetchPlayerStats(ctx context.Context, username string) (PlayerStats, error) {
	url := fmt.Sprintf("%s/player/%s/stats", c.baseURL, username)

	body, err := c.fetch(ctx, url)
	if err != nil {
		return PlayerStats{}, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return PlayerStats{}, fmt.Errorf("decode player stats: %w", err)
	}
	return stats, nil
}

// LastFetch returns the wall-clock time data was last obtained, for
// display by the presentation layer. Zero until the first success.
func (c *Client) LastFetch() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetch
}

// fetch resolves a URL through the cache or the network with retries.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("chesscom")

	if c.store != nil {
		if body, ok := c.store.Get(url); ok {
			log.Debug("cache hit: %s", url)
			c.markFetched()
			return body, nil
		}
	}

	attempts := c.retries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := c.doRequest(ctx, url)
		if err == nil {
			if c.store != nil {
				c.store.Put(url, body)
			}
			c.markFetched()
			return body, nil
		}
		lastErr = err
		log.Warn("attempt %d/%d failed for %s: %v", attempt, attempts, url, err)

		if attempt == attempts {
			break
		}
		select {
		case <-time.After(c.retryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	log.Error("giving up on %s after %d attempts: %v", url, attempts, lastErr)
	return nil, apperrors.NewFetchExhaustedError(url, attempts, lastErr)
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(snippet))
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) markFetched() {
	c.mu.Lock()
	c.lastFetch = time.Now()
	c.mu.Unlock()
}
