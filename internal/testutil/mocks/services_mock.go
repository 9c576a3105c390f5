package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/alexzavalny/chessstats/internal/models"
	"github.com/alexzavalny/chessstats/internal/services"
	"github.com/alexzavalny/chessstats/internal/stats"
)

// MockRosterService is a mock implementation of services.RosterService
type MockRosterService struct {
	mock.Mock
}

func (m *MockRosterService) FetchAll(ctx context.Context, window stats.Window, ref time.Time) ([]models.PlayerResult, error) {
	args := m.Called(ctx, window, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlayerResult), args.Error(1)
}

func (m *MockRosterService) LastFetch() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

var _ services.RosterService = (*MockRosterService)(nil)

// MockLeaderboardService is a mock implementation of services.LeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Standings(ctx context.Context) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

var _ services.LeaderboardService = (*MockLeaderboardService)(nil)
