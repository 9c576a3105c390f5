package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alexzavalny/chessstats/internal/chesscom"
	"github.com/alexzavalny/chessstats/internal/config"
	apperrors "github.com/alexzavalny/chessstats/internal/errors"
	"github.com/alexzavalny/chessstats/internal/services"
	"github.com/alexzavalny/chessstats/internal/stats"
	"github.com/alexzavalny/chessstats/internal/testutil/mocks"
)

var ref = time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)

func testConfig(roster ...string) config.Config {
	return config.Config{
		Roster:             roster,
		DisplayNames:       map[string]string{"alice": "Alice"},
		MaxConcurrentFetch: 2,
	}
}

// timedGame builds a blitz win for username ending today with the given
// playing duration embedded in the PGN clock tags.
func timedGame(username string, durationSeconds int, timeClass string) chesscom.Game {
	end := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(durationSeconds) * time.Second)
	return chesscom.Game{
		PGN: fmt.Sprintf("[StartTime \"12:00:00\"]\n[EndTime \"%s\"]\n", end.Format("15:04:05")),
		TimeClass: timeClass,
		Rules:     "chess",
		EndTime:   time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC).Unix(),
		White:     chesscom.Side{Username: username, Rating: 1500, Result: "win"},
		Black:     chesscom.Side{Username: "opponent", Rating: 1400, Result: "checkmated"},
	}
}

func TestFetchAll_SortsByNonDailyDuration(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchMonthlyGames", mock.Anything, "alice", 2026, time.August).
		Return([]chesscom.Game{timedGame("alice", 300, "blitz")}, nil)
	client.On("FetchMonthlyGames", mock.Anything, "bob", 2026, time.August).
		Return([]chesscom.Game{timedGame("bob", 600, "rapid")}, nil)
	// carol has a long daily game that must not dominate the ordering.
	client.On("FetchMonthlyGames", mock.Anything, "carol", 2026, time.August).
		Return([]chesscom.Game{timedGame("carol", 100, "blitz"), timedGame("carol", 7200, "daily")}, nil)

	svc := services.NewRosterService(client, testConfig("alice", "bob", "carol"))
	results, err := svc.FetchAll(context.Background(), stats.WindowToday, ref)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "bob", results[0].Username)
	assert.Equal(t, "alice", results[1].Username)
	assert.Equal(t, "carol", results[2].Username)
	assert.Equal(t, "Alice", results[1].DisplayName)
	assert.Equal(t, "bob", results[0].DisplayName, "unmapped usernames fall back to themselves")
}

func TestFetchAll_FailedPlayerIsIsolated(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchMonthlyGames", mock.Anything, "alice", 2026, time.August).
		Return([]chesscom.Game{timedGame("alice", 300, "blitz")}, nil)
	client.On("FetchMonthlyGames", mock.Anything, "bob", 2026, time.August).
		Return(nil, apperrors.NewFetchExhaustedError("url", 4, fmt.Errorf("status 500")))

	svc := services.NewRosterService(client, testConfig("alice", "bob"))
	results, err := svc.FetchAll(context.Background(), stats.WindowToday, ref)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "alice", results[0].Username)
}

func TestFetchAll_AllPlayersFail(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchMonthlyGames", mock.Anything, "alice", 2026, time.August).
		Return(nil, apperrors.NewFetchExhaustedError("url", 4, fmt.Errorf("boom")))

	svc := services.NewRosterService(client, testConfig("alice"))
	results, err := svc.FetchAll(context.Background(), stats.WindowToday, ref)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFetchAll_PrevMonthRequestsPreviousArchive(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchMonthlyGames", mock.Anything, "alice", 2026, time.July).
		Return([]chesscom.Game{}, nil)

	svc := services.NewRosterService(client, testConfig("alice"))
	_, err := svc.FetchAll(context.Background(), stats.WindowPrevMonth, ref)
	require.NoError(t, err)

	client.AssertExpectations(t)
}

func TestStandings_SortedByBlitzRating(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchPlayerStats", mock.Anything, "alice").Return(chesscom.PlayerStats{
		Blitz: &chesscom.GameTypeStats{Last: chesscom.RatingSnapshot{Rating: 1400}},
	}, nil)
	client.On("FetchPlayerStats", mock.Anything, "bob").Return(chesscom.PlayerStats{
		Blitz: &chesscom.GameTypeStats{Last: chesscom.RatingSnapshot{Rating: 1600}, Best: chesscom.RatingSnapshot{Rating: 1650}},
	}, nil)

	svc := services.NewLeaderboardService(client, testConfig("alice", "bob"))
	entries, err := svc.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "bob", entries[0].Username)
	assert.Equal(t, 1600, entries[0].GameTypes["blitz"].Last.Rating)
	assert.Equal(t, 1650, entries[0].GameTypes["blitz"].Best.Rating)
	assert.Equal(t, "alice", entries[1].Username)
}

func TestStandings_FailedPlayerIsIsolated(t *testing.T) {
	client := new(mocks.MockChessClient)
	client.On("FetchPlayerStats", mock.Anything, "alice").Return(chesscom.PlayerStats{
		Blitz: &chesscom.GameTypeStats{Last: chesscom.RatingSnapshot{Rating: 1400}},
	}, nil)
	client.On("FetchPlayerStats", mock.Anything, "bob").
		Return(chesscom.PlayerStats{}, apperrors.NewFetchExhaustedError("url", 4, fmt.Errorf("boom")))

	svc := services.NewLeaderboardService(client, testConfig("alice", "bob"))
	entries, err := svc.Standings(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].Username)
}
