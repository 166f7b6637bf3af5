package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops state that has been idle for longer than maxIdle and reports
// how many entries it removed.
type Sweeper interface {
	Sweep(now time.Time, maxIdle time.Duration) int
}

// Scheduler runs background housekeeping.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	maxIdle  time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
}

func NewScheduler(sweeper Sweeper, interval, maxIdle time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		maxIdle:  maxIdle,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Stop ends the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
	<-s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.sweep(now)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			s.logger.Info("Scheduler cancelled")
			return
		}
	}
}

func (s *Scheduler) sweep(now time.Time) {
	if removed := s.sweeper.Sweep(now, s.maxIdle); removed > 0 {
		s.logger.Debug("Swept idle rate limiters", zap.Int("removed", removed))
	}
}
