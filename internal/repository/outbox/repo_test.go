package outbox

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestEnqueue(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()
	msg := model.QueuedMessage{
		To:          "admin@example.com",
		Subject:     "Contract expiring soon",
		Body:        `Contract "Hosting" expires on 2025-05-18.`,
		ScheduledAt: time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO outbox_messages (
		    to_address, subject, body, status, scheduled_at
		) VALUES ($1, $2, $3, 'pending', $4)
		RETURNING id;
    `)).
		WithArgs(msg.To, msg.Subject, msg.Body, msg.ScheduledAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(messageID))

	id, err := repo.Enqueue(context.Background(), msg)
	assert.NoError(t, err)
	assert.Equal(t, messageID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimBatch(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	messageID := uuid.New()
	scheduled := now.Add(-time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE outbox_messages
		SET status = 'processing', updated_at = NOW()
		WHERE id IN (
		    SELECT id FROM outbox_messages
		    WHERE status = 'pending' AND scheduled_at <= $1
		    ORDER BY scheduled_at
		    LIMIT $2
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING id, to_address, subject, body, status, scheduled_at, created_at, updated_at;
    `)).
		WithArgs(now, 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "to_address", "subject", "body", "status", "scheduled_at", "created_at", "updated_at",
		}).AddRow(messageID, "admin@example.com", "s", "b", "processing", scheduled, scheduled, now))

	batch, err := repo.ClaimBatch(context.Background(), 10, now)
	assert.NoError(t, err)
	assert.Len(t, batch, 1)
	assert.Equal(t, messageID, batch[0].ID)
	assert.Equal(t, model.StatusProcessing, batch[0].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent_Idempotent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE outbox_messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status IN ('pending', 'processing');
    `)

	mock.ExpectExec(query).
		WithArgs(model.StatusSent, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id)
	assert.NoError(t, err)

	// Second terminal write hits zero rows and stays a no-op.
	mock.ExpectExec(query).
		WithArgs(model.StatusSent, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkSent(context.Background(), id)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE outbox_messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status IN ('pending', 'processing');
    `)).
		WithArgs(model.StatusFailed, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), id)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequeueStale(t *testing.T) {
	repo, mock := setupMockDB(t)

	cutoff := time.Date(2025, 5, 1, 11, 55, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE outbox_messages
		SET status = 'pending', updated_at = NOW()
		WHERE status = 'processing' AND updated_at < $1;
    `)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.RequeueStale(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMessageStatusByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	query := regexp.QuoteMeta(`
		SELECT status
		FROM outbox_messages
		WHERE id = $1;
    `)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("sent"))

	status, err := repo.GetMessageStatusByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetMessageStatusByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
