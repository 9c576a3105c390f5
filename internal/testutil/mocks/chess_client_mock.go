package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/alexzavalny/chessstats/internal/chesscom"
)

// MockChessClient is a mock implementation of chesscom.ClientInterface
type MockChessClient struct {
	mock.Mock
}

func (m *MockChessClient) FetchMonthlyGames(ctx context.Context, username string, year int, month time.Month) ([]chesscom.Game, error) {
	args := m.Called(ctx, username, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chesscom.Game), args.Error(1)
}

func (m *MockChessClient) FetchPlayerStats(ctx context.Context, username string) (chesscom.PlayerStats, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(chesscom.PlayerStats), args.Error(1)
}

func (m *MockChessClient) LastFetch() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

var _ chesscom.ClientInterface = (*MockChessClient)(nil)
