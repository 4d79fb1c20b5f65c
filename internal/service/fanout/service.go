package fanout

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/fanout/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
	HasUnread(ctx context.Context, recipientID uuid.UUID, message string) (bool, error)
}

type messageEnqueuer interface {
	Enqueue(ctx context.Context, msg model.QueuedMessage) (uuid.UUID, error)
}

// Input describes one event to distribute: who may receive it, who must not,
// and what the notification says.
type Input struct {
	Title         string
	Message       string
	Type          string
	CorrelationID uuid.UUID // related record id; uuid.Nil when absent
	Candidates    []model.Account
	ExcludedActor uuid.UUID // typically the actor who owns the triggering entity
}

// Service distributes one event to many recipients as in-app notifications
// plus queued email copies.
type Service struct {
	notifications notificationRepository
	outbox        messageEnqueuer
	clock         clock.Clock
}

func NewService(notifications notificationRepository, outbox messageEnqueuer, clk clock.Clock) *Service {
	return &Service{notifications: notifications, outbox: outbox, clock: clk}
}

// FanOut delivers the event to every candidate except the excluded actor and
// anyone who already has an unread notification with identical message text.
// Each surviving candidate gets one notification record and one queued email.
// It returns the number of recipients fully fanned out to.
//
// An empty candidate set is a no-op, not an error. Repeating a call with
// identical input before any notification is read creates nothing new; once a
// recipient marks theirs read, a repeat event reaches them again.
//
// The notification and outbox writes are separate statements. A crash between
// them leaves a notification without its email copy; the next sweep will not
// recreate either, since the contract status has already transitioned.
func (s *Service) FanOut(ctx context.Context, in Input) (int, error) {
	created := 0

	for _, candidate := range in.Candidates {
		if candidate.ID == in.ExcludedActor {
			continue
		}

		seen, err := s.notifications.HasUnread(ctx, candidate.ID, in.Message)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("recipient", candidate.ID.String()).Msg("failed to check for duplicate notification, skipping recipient")
			continue
		}

		if seen {
			continue
		}

		n := model.Notification{
			RecipientID:   candidate.ID,
			Title:         in.Title,
			Message:       in.Message,
			Type:          in.Type,
			CorrelationID: in.CorrelationID,
		}

		if _, err := s.notifications.CreateNotification(ctx, n); err != nil {
			zlog.Logger.Error().Err(err).Str("recipient", candidate.ID.String()).Msg("failed to create notification")
			continue
		}

		msg := model.QueuedMessage{
			To:          candidate.Email,
			Subject:     in.Title,
			Body:        in.Message,
			ScheduledAt: s.clock.Now(),
		}

		if _, err := s.outbox.Enqueue(ctx, msg); err != nil {
			zlog.Logger.Error().Err(err).Str("recipient", candidate.ID.String()).Msg("failed to enqueue email copy")
			continue
		}

		created++
	}

	return created, nil
}
