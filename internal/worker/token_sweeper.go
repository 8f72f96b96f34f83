package worker

import (
	"context"
	"time"

	"seungpyo.lee/PeakTrack/internal/domain"
	"seungpyo.lee/PeakTrack/internal/observability"
	"seungpyo.lee/PeakTrack/pkg/logger"
)

// TokenSweeper periodically purges blacklisted tokens that have expired.
type TokenSweeper struct {
	repo             domain.BlacklistedTokenRepository
	interval         time.Duration
	log              *logger.Logger
	now              func() time.Time
	shutdownComplete chan struct{}
}

// NewTokenSweeper constructs a TokenSweeper.
func NewTokenSweeper(repo domain.BlacklistedTokenRepository, interval time.Duration, log *logger.Logger) *TokenSweeper {
	return &TokenSweeper{
		repo:             repo,
		interval:         interval,
		log:              log.Named("token-sweeper"),
		now:              time.Now,
		shutdownComplete: make(chan struct{}),
	}
}

// Start runs a sweep immediately and then on every tick until ctx is cancelled.
// It should be called in a goroutine.
func (s *TokenSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer func() {
		ticker.Stop()
		close(s.shutdownComplete)
	}()

	for {
		s.Sweep()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Wait blocks until Start has returned.
func (s *TokenSweeper) Wait() {
	<-s.shutdownComplete
}

// Sweep deletes expired rows once and reports how many were removed.
func (s *TokenSweeper) Sweep() int64 {
	n, err := s.repo.DeleteExpired(s.now())
	if err != nil {
		s.log.Errorf("sweep failed: %v", err)
		return 0
	}
	observability.RecordBlacklistSwept(n)
	s.log.Debugf("removed %d expired tokens", n)
	return n
}
