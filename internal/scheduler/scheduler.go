// Package scheduler periodically re-analyzes the known-service catalog so
// that stored history stays current and the report cache stays warm.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/policyscope/policyscope/internal/directory"
	"github.com/policyscope/policyscope/internal/pipeline"
)

// Scheduler drives the background catalog refresh.
type Scheduler struct {
	pipe     *pipeline.Pipeline
	interval time.Duration
	workers  int
	log      *zap.Logger
}

// New creates a scheduler. An interval <= 0 disables it.
func New(pipe *pipeline.Pipeline, interval time.Duration, workers int, log *zap.Logger) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	return &Scheduler{
		pipe:     pipe,
		interval: interval,
		workers:  workers,
		log:      log,
	}
}

// Start runs the refresh loop until the context is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		s.log.Info("catalog refresh disabled")
		return nil
	}

	s.log.Info("scheduler starting",
		zap.Duration("interval", s.interval),
		zap.Int("workers", s.workers))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return nil
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh re-analyzes every cataloged service using a fixed worker pool.
func (s *Scheduler) refresh(ctx context.Context) {
	services := directory.Known()
	s.log.Info("refreshing catalog", zap.Int("services", len(services)))

	jobs := make(chan directory.Service)
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for svc := range jobs {
				if ctx.Err() != nil {
					return
				}
				if _, err := s.pipe.Analyze(ctx, svc.Name); err != nil {
					s.log.Warn("refresh failed",
						zap.String("service", svc.Name),
						zap.Error(err))
				}
			}
		}()
	}

	for _, svc := range services {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return
		case jobs <- svc:
		}
	}
	close(jobs)
	wg.Wait()

	s.log.Info("catalog refresh complete")
}
