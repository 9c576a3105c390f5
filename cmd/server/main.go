package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexzavalny/chessstats/internal/api"
	"github.com/alexzavalny/chessstats/internal/cache"
	"github.com/alexzavalny/chessstats/internal/chesscom"
	"github.com/alexzavalny/chessstats/internal/config"
	"github.com/alexzavalny/chessstats/internal/logger"
	"github.com/alexzavalny/chessstats/internal/services"
	"github.com/alexzavalny/chessstats/internal/stats"
	"github.com/alexzavalny/chessstats/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ChessStats Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("api_base_url=%s", cfg.APIBaseURL)
	log.Debug("roster=%v", cfg.Roster)
	log.Debug("fetch_retries=%d", cfg.FetchRetries)
	log.Debug("retry_delay=%v", cfg.RetryDelay)
	log.Debug("cache_backend=%s", cfg.CacheBackend)
	log.Debug("max_concurrent_fetch=%d", cfg.MaxConcurrentFetch)
	log.Debug("refresh_worker_count=%d", cfg.RefreshWorkerCount)
	log.Debug("refresh_queue_size=%d", cfg.RefreshQueueSize)
	log.Debug("log_level=%s", cfg.LogLevel)

	// Open response cache
	var store cache.Store
	switch cfg.CacheBackend {
	case config.CacheBackendSQLite:
		sqlStore, err := cache.OpenSQLite(cfg.CachePath)
		if err != nil {
			log.Error("failed to open cache at %s: %v", cfg.CachePath, err)
			os.Exit(1)
		}
		defer func() {
			log.Debug("closing cache")
			sqlStore.Close()
		}()
		if err := sqlStore.Prune(); err != nil {
			log.Warn("cache prune failed: %v", err)
		}
		store = sqlStore
	default:
		memStore := cache.NewMemory()
		defer memStore.Stop()
		store = memStore
	}

	// Initialize chess.com client
	client := chesscom.New(cfg.APIBaseURL,
		chesscom.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		chesscom.WithRetries(cfg.FetchRetries),
		chesscom.WithRetryDelay(cfg.RetryDelay),
		chesscom.WithCache(store),
	)

	// Initialize services
	rosterService := services.NewRosterService(client, cfg)
	leaderboardService := services.NewLeaderboardService(client, cfg)

	// Initialize refresh worker pool
	refreshPool := worker.NewPool(cfg.RefreshWorkerCount, cfg.RefreshQueueSize)

	srv := &api.Server{
		RosterService:      rosterService,
		LeaderboardService: leaderboardService,
		RefreshPool:        refreshPool,
	}

	ctx, cancel := context.WithCancel(context.Background())
	refreshPool.Start(ctx)

	// Warm today's stats so the first request hits the cache
	refreshPool.Submit(&worker.RefreshJob{Roster: rosterService, Window: stats.WindowToday})

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping refresh pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	refreshPool.Stop()

	log.Info("===========================================")
	log.Info("ChessStats Server Stopped")
	log.Info("===========================================")
}
