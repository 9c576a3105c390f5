package chesscom

import (
	"context"
	"time"
)

// ClientInterface defines the interface for chess.com API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchMonthlyGames(ctx context.Context, username string, year int, month time.Month) ([]Game, error)
	FetchPlayerStats(ctx context.Context, username string) (PlayerStats, error)
	LastFetch() time.Time
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
