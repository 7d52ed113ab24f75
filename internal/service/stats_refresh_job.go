package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-writenest/internal/logger"
)

// DefaultStatsRefreshInterval is used when the job is given no interval.
const DefaultStatsRefreshInterval = 30 * time.Second

type statsRefreshJob struct {
	admin    AdminService
	interval time.Duration
	logger   *logger.Logger
	updates  chan StatsUpdate

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatsRefreshJob creates a statsRefreshJob that calls admin.Stats on a
// ticker. The job is idle until Start is called.
func NewStatsRefreshJob(admin AdminService, interval time.Duration, logger *logger.Logger) StatsRefreshJob {
	if interval <= 0 {
		interval = DefaultStatsRefreshInterval
	}

	return &statsRefreshJob{
		admin:    admin,
		interval: interval,
		logger:   logger,
		updates:  make(chan StatsUpdate, 1),
	}
}

// Start implements StatsRefreshJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *statsRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				stats, err := j.admin.Stats(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if err != nil {
					j.logger.Warn().Err(err).Str("func", "statsRefreshJob.Start").Msg("periodic stats refresh failed")
				}
				j.publish(StatsUpdate{Stats: stats, Err: err})
			}
		}
	}()
}

func (j *statsRefreshJob) publish(update StatsUpdate) {
	select {
	case j.updates <- update:
	default:
	}
}

// Stop implements StatsRefreshJob. Safe to call when the job is not running.
// An unread update is discarded so the next Start begins clean.
func (j *statsRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()

	select {
	case <-j.updates:
	default:
	}
}

func (j *statsRefreshJob) Updates() <-chan StatsUpdate {
	return j.updates
}
