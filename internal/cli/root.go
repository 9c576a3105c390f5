package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexzavalny/chessstats/internal/cache"
	"github.com/alexzavalny/chessstats/internal/chesscom"
	"github.com/alexzavalny/chessstats/internal/config"
	"github.com/alexzavalny/chessstats/internal/logger"
	"github.com/alexzavalny/chessstats/internal/services"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chessstats",
	Short: "Chess.com roster statistics",
	Long:  "Fetch and aggregate daily game statistics for a roster of chess.com players.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
}

// appContext bundles the services a command needs, plus the cleanups
// the command must run before exiting.
type appContext struct {
	cfg         config.Config
	roster      services.RosterService
	leaderboard services.LeaderboardService
	close       func()
}

func newAppContext() (*appContext, error) {
	cfg := config.Load()
	cfg.LogLevel = logLevel
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithOutput(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(false),
	)
	logger.SetDefault(log)

	var store cache.Store
	var closeStore func()
	if cfg.CacheBackend == config.CacheBackendSQLite {
		sqlStore, err := cache.OpenSQLite(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		store = sqlStore
		closeStore = func() { sqlStore.Close() }
	} else {
		memStore := cache.NewMemory()
		store = memStore
		closeStore = memStore.Stop
	}

	client := chesscom.New(cfg.APIBaseURL,
		chesscom.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		chesscom.WithRetries(cfg.FetchRetries),
		chesscom.WithRetryDelay(cfg.RetryDelay),
		chesscom.WithCache(store),
	)

	return &appContext{
		cfg:         cfg,
		roster:      services.NewRosterService(client, cfg),
		leaderboard: services.NewLeaderboardService(client, cfg),
		close:       closeStore,
	}, nil
}
