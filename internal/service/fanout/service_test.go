package fanout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	mocks "github.com/dbekbolat/contract-notifier/internal/mocks/service/fanout"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *mocks.MocknotificationRepository, *mocks.MockmessageEnqueuer, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	notifications := mocks.NewMocknotificationRepository(ctrl)
	outbox := mocks.NewMockmessageEnqueuer(ctrl)

	return NewService(notifications, outbox, clock.Fixed(now)), notifications, outbox, ctrl
}

func TestService_FanOut_CreatesNotificationAndEmail(t *testing.T) {
	svc, notifications, outbox, ctrl := newService(t)
	defer ctrl.Finish()

	recipient := model.Account{ID: uuid.New(), Email: "admin@example.com"}
	correlation := uuid.New()

	in := Input{
		Title:         "Contract expiring soon",
		Message:       `Contract "Hosting" expires on 2025-05-18.`,
		Type:          model.TypeContractExpiring,
		CorrelationID: correlation,
		Candidates:    []model.Account{recipient},
		ExcludedActor: uuid.New(),
	}

	notifications.EXPECT().HasUnread(gomock.Any(), recipient.ID, in.Message).Return(false, nil)

	notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, recipient.ID, n.RecipientID)
			assert.Equal(t, in.Title, n.Title)
			assert.Equal(t, in.Message, n.Message)
			assert.Equal(t, in.Type, n.Type)
			assert.Equal(t, correlation, n.CorrelationID)
			return uuid.New(), nil
		},
	)

	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg model.QueuedMessage) (uuid.UUID, error) {
			assert.Equal(t, recipient.Email, msg.To)
			assert.Equal(t, in.Title, msg.Subject)
			assert.Equal(t, in.Message, msg.Body)
			assert.Equal(t, now, msg.ScheduledAt)
			return uuid.New(), nil
		},
	)

	count, err := svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_FanOut_DeduplicatesUnread(t *testing.T) {
	svc, notifications, outbox, ctrl := newService(t)
	defer ctrl.Finish()

	fresh := model.Account{ID: uuid.New(), Email: "fresh@example.com"}
	seen := model.Account{ID: uuid.New(), Email: "seen@example.com"}

	in := Input{
		Title:      "Contract expiring soon",
		Message:    `Contract "Hosting" expires on 2025-05-18.`,
		Candidates: []model.Account{fresh, seen},
	}

	notifications.EXPECT().HasUnread(gomock.Any(), fresh.ID, in.Message).Return(false, nil)
	notifications.EXPECT().HasUnread(gomock.Any(), seen.ID, in.Message).Return(true, nil)

	notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

	count, err := svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_FanOut_RepeatBeforeReadCreatesNothing(t *testing.T) {
	svc, notifications, outbox, ctrl := newService(t)
	defer ctrl.Finish()

	recipient := model.Account{ID: uuid.New(), Email: "admin@example.com"}

	in := Input{
		Title:      "Contract expiring soon",
		Message:    `Contract "Hosting" expires on 2025-05-18.`,
		Candidates: []model.Account{recipient},
	}

	gomock.InOrder(
		notifications.EXPECT().HasUnread(gomock.Any(), recipient.ID, in.Message).Return(false, nil),
		notifications.EXPECT().HasUnread(gomock.Any(), recipient.ID, in.Message).Return(true, nil),
	)

	notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)

	count, err := svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_FanOut_ExcludesActor(t *testing.T) {
	svc, notifications, _, ctrl := newService(t)
	defer ctrl.Finish()

	actor := model.Account{ID: uuid.New(), Email: "owner@example.com"}
	other := model.Account{ID: uuid.New(), Email: "admin@example.com"}

	in := Input{
		Message:       "something happened",
		Candidates:    []model.Account{actor, other},
		ExcludedActor: actor.ID,
	}

	notifications.EXPECT().HasUnread(gomock.Any(), other.ID, in.Message).Return(true, nil)

	count, err := svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_FanOut_EmptyCandidatesIsNoop(t *testing.T) {
	svc, _, _, ctrl := newService(t)
	defer ctrl.Finish()

	count, err := svc.FanOut(context.Background(), Input{Message: "nobody cares"})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_FanOut_EnqueueFailureDoesNotCount(t *testing.T) {
	svc, notifications, outbox, ctrl := newService(t)
	defer ctrl.Finish()

	recipient := model.Account{ID: uuid.New(), Email: "admin@example.com"}

	in := Input{
		Title:      "Contract expired",
		Message:    `Contract "Hosting" expired on 2025-04-30.`,
		Candidates: []model.Account{recipient},
	}

	notifications.EXPECT().HasUnread(gomock.Any(), recipient.ID, in.Message).Return(false, nil)
	notifications.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("store unavailable"))

	count, err := svc.FanOut(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
