package worker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

//go:generate mockgen -source=delivery.go -destination=../mocks/worker/mock.go -package=mocks

type outboxStore interface {
	ClaimBatch(ctx context.Context, limit int, now time.Time) ([]model.QueuedMessage, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	RequeueStale(ctx context.Context, olderThan time.Time) (int, error)
}

type transport interface {
	Send(to, subject, body string) error
}

// DeliveryConfig bounds one delivery tick.
type DeliveryConfig struct {
	PollInterval    time.Duration // delay between ticks
	BatchSize       int           // max messages claimed per tick
	StaleClaimAfter time.Duration // age after which a processing row is considered abandoned
}

// Delivery drains the outbox on a fixed interval. Each tick runs to
// completion before the next one may start, so ticks never overlap within a
// process; concurrent processes partition work through the store's atomic
// claim.
type Delivery struct {
	store    outboxStore
	sender   transport
	clock    clock.Clock
	strategy retry.Strategy
	cfg      DeliveryConfig
}

func NewDelivery(store outboxStore, sender transport, clk clock.Clock, strategy retry.Strategy, cfg DeliveryConfig) *Delivery {
	return &Delivery{
		store:    store,
		sender:   sender,
		clock:    clk,
		strategy: strategy,
		cfg:      cfg,
	}
}

// Run ticks until ctx is cancelled. Cancellation stops scheduling new ticks;
// an in-flight tick finishes so no message is left mid-send without a status
// write.
func (d *Delivery) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("poll_interval", d.cfg.PollInterval).Msg("delivery worker started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("delivery worker stopped")
			return
		case <-ticker.C:
			d.ProcessBatch(context.WithoutCancel(ctx))
		}
	}
}

// ProcessBatch performs one delivery tick: recover stale claims, claim due
// messages, attempt each one. An empty batch is a normal no-op tick. If the
// store is unreachable at claim time the tick is abandoned with no state
// advanced; the next tick retries the same work.
func (d *Delivery) ProcessBatch(ctx context.Context) {
	now := d.clock.Now()

	requeued, err := d.store.RequeueStale(ctx, now.Add(-d.cfg.StaleClaimAfter))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to requeue stale claims")
	} else if requeued > 0 {
		zlog.Logger.Warn().Int("count", requeued).Msg("requeued stale claims")
	}

	batch, err := d.store.ClaimBatch(ctx, d.cfg.BatchSize, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim batch, abandoning tick")
		return
	}

	for _, msg := range batch {
		d.deliver(ctx, msg)
	}
}

// deliver attempts one message up to the strategy's attempt cap within the
// current tick. First success marks it sent; exhaustion marks it failed, a
// terminal state no later tick revisits. Shutdown does not interrupt the
// attempt loop; cancellation is honored at the tick boundary in Run, so a
// claimed message always reaches a terminal status write.
func (d *Delivery) deliver(ctx context.Context, msg model.QueuedMessage) {
	err := retry.Do(func() error {
		return d.sender.Send(msg.To, msg.Subject, msg.Body)
	}, d.strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Str("to", msg.To).Msg("delivery failed, marking message failed")

		if markErr := d.store.MarkFailed(ctx, msg.ID); markErr != nil {
			zlog.Logger.Error().Err(markErr).Str("id", msg.ID.String()).Msg("failed to mark message failed")
		}

		return
	}

	if markErr := d.store.MarkSent(ctx, msg.ID); markErr != nil {
		zlog.Logger.Error().Err(markErr).Str("id", msg.ID.String()).Msg("failed to mark message sent")
	}
}
