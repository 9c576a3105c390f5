package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alexzavalny/chessstats/internal/models"
	"github.com/alexzavalny/chessstats/internal/stats"
	"github.com/alexzavalny/chessstats/internal/testutil/mocks"
)

type countingJob struct {
	runs int32
	done chan struct{}
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	j.done <- struct{}{}
	return nil
}

func TestPoolRunsSubmittedJobs(t *testing.T) {
	pool := NewPool(2, 4)
	pool.Start(context.Background())
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, 3)}
	for i := 0; i < 3; i++ {
		pool.Submit(job)
	}

	for i := 0; i < 3; i++ {
		select {
		case <-job.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for job")
		}
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&job.runs))
}

func TestPoolDefaults(t *testing.T) {
	pool := NewPool(0, 0)
	require.NotNil(t, pool)
	assert.Equal(t, 1, pool.workers)
	assert.Equal(t, 8, cap(pool.jobs))
}

func TestRefreshJobWarmsRoster(t *testing.T) {
	roster := new(mocks.MockRosterService)
	roster.On("FetchAll", mock.Anything, stats.WindowToday, mock.Anything).
		Return([]models.PlayerResult{{Username: "bob"}}, nil)

	job := &RefreshJob{Roster: roster, Window: stats.WindowToday}
	assert.Equal(t, "refresh_today", job.Name())

	err := job.Run(context.Background())
	require.NoError(t, err)
	roster.AssertExpectations(t)
}
