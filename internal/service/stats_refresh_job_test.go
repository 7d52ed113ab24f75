// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyAdminService считает вызовы Stats.
type spyAdminService struct {
	calls atomic.Int64
	err   error
}

func (s *spyAdminService) Stats(_ context.Context) (models.Stats, error) {
	n := s.calls.Add(1)
	return models.Stats{TotalArticles: n}, s.err
}

func (s *spyAdminService) ExportCSV(_ context.Context, _ []models.Article, _ time.Time) (string, error) {
	return "", nil
}

// ── NewStatsRefreshJob ───────────────────────────────────────────────────────

func TestNewStatsRefreshJob_DefaultInterval(t *testing.T) {
	job := NewStatsRefreshJob(&spyAdminService{}, 0, logger.Nop())
	require.NotNil(t, job)

	assert.Equal(t, DefaultStatsRefreshInterval, job.(*statsRefreshJob).interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestStatsRefreshJob_DeliversUpdates(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	select {
	case update := <-job.Updates():
		require.NoError(t, update.Err)
		assert.Positive(t, update.Stats.TotalArticles)
	case <-time.After(time.Second):
		t.Fatal("no stats update delivered")
	}
}

func TestStatsRefreshJob_DeliversErrors(t *testing.T) {
	spy := &spyAdminService{err: errors.New("502")}
	job := NewStatsRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	select {
	case update := <-job.Updates():
		assert.Error(t, update.Err)
	case <-time.After(time.Second):
		t.Fatal("no stats update delivered")
	}
}

func TestStatsRefreshJob_DropsWhileUnread(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()
	time.Sleep(60 * time.Millisecond)

	// Stats ran several times but only one update is buffered
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Len(t, job.Updates(), 1)
}

func TestStatsRefreshJob_Stop_DiscardsUnreadUpdate(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 5*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	require.Eventually(t, func() bool { return len(job.Updates()) == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	assert.Empty(t, job.Updates(), "a stale update must not reach the next dashboard visit")

	job.Start(context.Background())
	defer job.Stop()

	select {
	case update := <-job.Updates():
		assert.Greater(t, update.Stats.TotalArticles, int64(1), "first update after restart comes from the new loop")
	case <-time.After(time.Second):
		t.Fatal("no stats update delivered after restart")
	}
}

func TestStatsRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestStatsRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewStatsRefreshJob(&spyAdminService{}, time.Second, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestStatsRefreshJob_ContextCancel(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	cancel()
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
}

func TestStatsRefreshJob_RestartReplacesLoop(t *testing.T) {
	spy := &spyAdminService{}
	job := NewStatsRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	job.Stop()

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load(), "a restarted job must leave no loop running")
}
