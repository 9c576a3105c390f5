package services

import (
	"context"
	"sort"
	"sync"

	"github.com/alexzavalny/chessstats/internal/chesscom"
	"github.com/alexzavalny/chessstats/internal/config"
	"github.com/alexzavalny/chessstats/internal/logger"
	"github.com/alexzavalny/chessstats/internal/models"
)

// LeaderboardService reports the roster's standing ratings from the
// upstream player-statistics resource.
type LeaderboardService interface {
	Standings(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	client        chesscom.ClientInterface
	cfg           config.Config
	maxConcurrent int
}

// NewLeaderboardService creates a LeaderboardService over the given client.
func NewLeaderboardService(client chesscom.ClientInterface, cfg config.Config) LeaderboardService {
	maxConc := cfg.MaxConcurrentFetch
	if maxConc <= 0 {
		maxConc = 4
	}
	return &leaderboardService{client: client, cfg: cfg, maxConcurrent: maxConc}
}

func (s *leaderboardService) Standings(ctx context.Context) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard")

	results := make(chan models.LeaderboardEntry, len(s.cfg.Roster))
	sem := make(chan struct{}, s.maxConcurrent)

	var wg sync.WaitGroup
	for _, username := range s.cfg.Roster {
		wg.Add(1)
		go func(username string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			playerStats, err := s.client.FetchPlayerStats(ctx, username)
			if err != nil {
				log.Error("skipping player %s: %v", username, err)
				return
			}

			entry := models.LeaderboardEntry{
				Username:    username,
				DisplayName: s.cfg.DisplayName(username),
				GameTypes:   toRecords(playerStats.GameTypes()),
			}
			if playerStats.Tactics != nil {
				entry.TacticsHigh = playerStats.Tactics.Highest.Rating
			}
			if playerStats.PuzzleRush != nil {
				entry.PuzzleRush = playerStats.PuzzleRush.Best.Score
			}

			select {
			case results <- entry:
			case <-ctx.Done():
			}
		}(username)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var entries []models.LeaderboardEntry
	for entry := range results {
		entries = append(entries, entry)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Highest current blitz rating first; username breaks ties so the
	// board renders stably.
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := blitzRating(entries[i]), blitzRating(entries[j])
		if ri != rj {
			return ri > rj
		}
		return entries[i].Username < entries[j].Username
	})
	return entries, nil
}

func toRecords(types map[string]chesscom.GameTypeStats) map[string]models.GameTypeRecord {
	out := make(map[string]models.GameTypeRecord, len(types))
	for name, t := range types {
		out[name] = models.GameTypeRecord{
			Last: models.RatingRecord{Rating: t.Last.Rating, Date: t.Last.Date},
			Best: models.RatingRecord{Rating: t.Best.Rating},
		}
	}
	return out
}

func blitzRating(e models.LeaderboardEntry) int {
	return e.GameTypes["blitz"].Last.Rating
}
