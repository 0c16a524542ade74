// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/ticketsla/ticketsla/internal/shared/logger"
)

// SessionPurger removes sessions past their expiry.
type SessionPurger interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionCleanupScheduler purges expired database sessions on an interval.
// Login also purges, so this only bounds growth between logins.
type SessionCleanupScheduler struct {
	purger   SessionPurger
	logger   logger.Interface
	stopChan chan struct{}
	interval time.Duration
}

func NewSessionCleanupScheduler(purger SessionPurger, interval time.Duration, log logger.Interface) *SessionCleanupScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionCleanupScheduler{
		purger:   purger,
		logger:   log.With("component", "scheduler.session_cleanup"),
		stopChan: make(chan struct{}),
		interval: interval,
	}
}

// Start blocks until ctx is done or Stop is called. It purges once immediately.
func (s *SessionCleanupScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting session cleanup scheduler", "interval", s.interval)

	s.purge(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("session cleanup scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("session cleanup scheduler stopped")
			return
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

func (s *SessionCleanupScheduler) Stop() {
	close(s.stopChan)
}

func (s *SessionCleanupScheduler) purge(ctx context.Context) {
	removed, err := s.purger.DeleteExpired(ctx)
	if err != nil {
		s.logger.Errorw("failed to purge expired sessions", "error", err)
		return
	}
	if removed > 0 {
		s.logger.Infow("expired sessions purged", "count", removed)
	}
}
