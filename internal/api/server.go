package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexzavalny/chessstats/internal/services"
	"github.com/alexzavalny/chessstats/internal/worker"
)

// Server holds the handler dependencies. The core hands it ordered
// player results and a last-fetch timestamp; all rendering decisions
// stay on this side of the boundary.
type Server struct {
	RosterService      services.RosterService
	LeaderboardService services.LeaderboardService
	RefreshPool        *worker.Pool
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/api/stats", s.handleStats)
	r.Get("/api/leaderboard", s.handleLeaderboard)
	r.Post("/api/refresh", s.handleRefresh)
	r.Get("/healthz", s.handleHealth)

	return r
}
