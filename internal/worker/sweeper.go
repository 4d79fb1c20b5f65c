package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/worker/sweeper_mock.go -package=mocks

type lifecycleService interface {
	Sweep(ctx context.Context, now time.Time) ([]model.TransitionEvent, error)
}

// Sweeper drives the lifecycle sweep on a fixed interval. One sweep runs
// immediately at startup so a restarted process never waits a full interval
// with stale contract statuses. Sweeps are sequential; a slow sweep delays the
// next tick rather than overlapping it.
type Sweeper struct {
	service  lifecycleService
	clock    clock.Clock
	interval time.Duration
}

func NewSweeper(service lifecycleService, clk clock.Clock, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, clock: clk, interval: interval}
}

// Run sweeps until ctx is cancelled. Cancellation stops scheduling new
// sweeps; an in-flight sweep finishes.
func (s *Sweeper) Run(ctx context.Context) {
	zlog.Logger.Info().Dur("interval", s.interval).Msg("lifecycle sweeper started")

	s.sweep(context.WithoutCancel(ctx))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("lifecycle sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(context.WithoutCancel(ctx))
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	events, err := s.service.Sweep(ctx, s.clock.Now())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("sweep failed")
		return
	}

	zlog.Logger.Info().Int("transitions", len(events)).Msg("sweep finished")
}
