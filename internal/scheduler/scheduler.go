package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/wb-go/wbf/logger"
)

type expirySweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	CleanupStale(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the expiry sweeper in the background until Stop is called.
type Scheduler struct {
	sweeper  expirySweeper
	clock    clock.Clock
	interval time.Duration
	logger   logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(
	sweeper expirySweeper,
	clk clock.Clock,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the loop and returns immediately. The loop first catches up
// on long-overdue reservations, sweeps once, and then sweeps every interval.
// Calling Start on a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.cleanup(ctx)
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) cleanup(ctx context.Context) {
	n, err := s.sweeper.CleanupStale(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("failed to clean up stale reservations",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("stale reservations cleaned up", logger.Int("count", n))
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	n, err := s.sweeper.SweepExpired(ctx, s.clock.Now())
	if err != nil {
		s.logger.Error("failed to sweep expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("expired reservations swept", logger.Int("count", n))
	}
}
