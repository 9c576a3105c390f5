package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexzavalny/chessstats/internal/chesscom"
	"github.com/alexzavalny/chessstats/internal/config"
	"github.com/alexzavalny/chessstats/internal/logger"
	"github.com/alexzavalny/chessstats/internal/models"
	"github.com/alexzavalny/chessstats/internal/stats"
)

// RosterService fans the fetch+aggregate pipeline out over the configured
// roster and collects per-player summaries for presentation.
type RosterService interface {
	// FetchAll runs one independent pipeline per roster player. A failed
	// player is logged and omitted; the others still complete. Results
	// are sorted descending by non-daily playing duration.
	FetchAll(ctx context.Context, window stats.Window, ref time.Time) ([]models.PlayerResult, error)
	// LastFetch is the wall-clock time of the last successful upstream
	// fetch, for display.
	LastFetch() time.Time
}

type rosterService struct {
	client        chesscom.ClientInterface
	cfg           config.Config
	maxConcurrent int
}

// NewRosterService creates a RosterService over the given upstream client.
func NewRosterService(client chesscom.ClientInterface, cfg config.Config) RosterService {
	maxConc := cfg.MaxConcurrentFetch
	if maxConc <= 0 {
		maxConc = 4
	}
	return &rosterService{client: client, cfg: cfg, maxConcurrent: maxConc}
}

func (s *rosterService) FetchAll(ctx context.Context, window stats.Window, ref time.Time) ([]models.PlayerResult, error) {
	log := logger.FromContext(ctx).WithPrefix("roster")
	log.Info("fetching stats for %d players, window=%s", len(s.cfg.Roster), window)

	year, month := window.ArchiveMonth(ref)

	type pipelineResult struct {
		result models.PlayerResult
		err    error
	}

	results := make(chan pipelineResult, len(s.cfg.Roster))
	sem := make(chan struct{}, s.maxConcurrent)

	var wg sync.WaitGroup
	for _, username := range s.cfg.Roster {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			// Fetch completes (or exhausts its retries) before
			// aggregation begins; each pipeline owns its own data.
			games, err := s.client.FetchMonthlyGames(ctx, username, year, month)
			if err != nil {
				select {
				case results <- pipelineResult{err: err, result: models.PlayerResult{Username: username}}:
				case <-ctx.Done():
				}
				return
			}

			result := models.PlayerResult{
				Username:    username,
				DisplayName: s.cfg.DisplayName(username),
				StatsByType: stats.Aggregate(games, username, window, ref),
			}
			select {
			case results <- pipelineResult{result: result}:
			case <-ctx.Done():
			}
		}(username)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []models.PlayerResult
	for res := range results {
		if res.err != nil {
			// Failure is isolated to this player; everyone else's
			// pipeline carries on.
			log.Error("skipping player %s: %v", res.result.Username, res.err)
			continue
		}
		collected = append(collected, res.result)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Daily games run for days, so they are excluded from the ordering
	// metric. Ties carry no guaranteed order.
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].NonDailyDuration() > collected[j].NonDailyDuration()
	})

	log.Info("collected %d/%d player results", len(collected), len(s.cfg.Roster))
	return collected, nil
}

func (s *rosterService) LastFetch() time.Time {
	return s.client.LastFetch()
}
