package worker

import (
	"context"
	"time"

	"github.com/alexzavalny/chessstats/internal/logger"
	"github.com/alexzavalny/chessstats/internal/services"
	"github.com/alexzavalny/chessstats/internal/stats"
)

// RefreshJob runs the roster pipeline for one window so the day's
// archives land in the freshness cache before anyone asks for them.
// The results themselves are discarded; subsequent requests re-aggregate
// from the cached responses without touching the network.
type RefreshJob struct {
	Roster services.RosterService
	Window stats.Window
}

func (j *RefreshJob) Name() string { return "refresh_" + string(j.Window) }

func (j *RefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("warming cache for window %s", j.Window)

	results, err := j.Roster.FetchAll(ctx, j.Window, time.Now())
	if err != nil {
		return err
	}
	log.Info("cache warmed: %d player results", len(results))
	return nil
}
