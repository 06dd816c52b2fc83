package scheduler

import (
	"context"
	"sync"
	"time"

	"gamelog/internal/logger"
)

// CheckpointFunc folds pending database writes into the main file.
type CheckpointFunc func(ctx context.Context) error

// Scheduler runs a database checkpoint on a fixed interval.
type Scheduler struct {
	checkpoint CheckpointFunc
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the running checkpoint
	mu         sync.Mutex         // protects cancelFunc
}

func New(checkpoint CheckpointFunc, interval time.Duration) *Scheduler {
	return &Scheduler{
		checkpoint: checkpoint,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "checkpoint", "resource", "db", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running checkpoint and waits for the loop to exit. It is
// safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "checkpoint", "resource", "db", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runCheckpoint()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) runCheckpoint() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	start := time.Now()
	if err := s.checkpoint(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("checkpoint cancelled", "module", "scheduler", "action", "checkpoint", "resource", "db", "result", "cancelled")
			return
		}
		logger.Error("checkpoint failed", "module", "scheduler", "action", "checkpoint", "resource", "db", "result", "failed", "error", err)
		return
	}
	logger.Debug("checkpoint completed", "module", "scheduler", "action", "checkpoint", "resource", "db", "result", "ok", "duration_ms", time.Since(start).Milliseconds())
}
