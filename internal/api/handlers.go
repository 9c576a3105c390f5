package api

import (
	"net/http"
	"time"

	"github.com/alexzavalny/chessstats/internal/errors"
	"github.com/alexzavalny/chessstats/internal/stats"
	"github.com/alexzavalny/chessstats/internal/worker"
)

// statsResponse is the envelope for the roster stats endpoint.
type statsResponse struct {
	Period    string `json:"period"`
	LastFetch string `json:"last_fetch,omitempty"`
	Results   any    `json:"results"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindowParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	results, err := s.RosterService.FetchAll(r.Context(), window, time.Now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := statsResponse{
		Period:  string(window),
		Results: results,
	}
	if last := s.RosterService.LastFetch(); !last.IsZero() {
		resp.LastFetch = last.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.LeaderboardService.Standings(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": entries})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindowParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if s.RefreshPool == nil {
		handleError(w, r, errors.NewInternalError(nil))
		return
	}

	s.RefreshPool.Submit(&worker.RefreshJob{Roster: s.RosterService, Window: window})
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued", "period": string(window)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// parseWindowParam reads the period query parameter, defaulting to today.
func parseWindowParam(r *http.Request) (stats.Window, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return stats.WindowToday, nil
	}
	return stats.ParseWindow(raw)
}
