package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

var ErrMessageNotFound = errors.New("queued message not found")

// Repository provides methods to interact with the outbox_messages table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new outbox repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Enqueue inserts a new pending message into the outbox and returns its ID.
// It never waits on delivery; the delivery worker picks the row up on a later tick.
func (r *Repository) Enqueue(ctx context.Context, msg model.QueuedMessage) (uuid.UUID, error) {
	query := `
		INSERT INTO outbox_messages (
		    to_address, subject, body, status, scheduled_at
		) VALUES ($1, $2, $3, 'pending', $4)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query, msg.To, msg.Subject, msg.Body, msg.ScheduledAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to enqueue message: %w", err)
	}

	return id, nil
}

// ClaimBatch atomically claims up to limit due pending messages, oldest first,
// and returns them. Claimed rows are moved to processing in the same statement,
// so concurrent workers partition the outbox without double-claiming.
func (r *Repository) ClaimBatch(ctx context.Context, limit int, now time.Time) ([]model.QueuedMessage, error) {
	query := `
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
    `

	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim batch: %w", err)
	}
	defer rows.Close()

	var messages []model.QueuedMessage
	for rows.Next() {
		var m model.QueuedMessage
		if err := rows.Scan(&m.ID, &m.To, &m.Subject, &m.Body, &m.Status, &m.ScheduledAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// MarkSent moves a message to its terminal sent state. Calling it again after
// a terminal write is a no-op.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.markTerminal(ctx, id, model.StatusSent)
}

// MarkFailed moves a message to its terminal failed state. Calling it again
// after a terminal write is a no-op.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.markTerminal(ctx, id, model.StatusFailed)
}

func (r *Repository) markTerminal(ctx context.Context, id uuid.UUID, status model.MessageStatus) error {
	query := `
		UPDATE outbox_messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status IN ('pending', 'processing');
    `

	// Zero rows means the message is already terminal; the guard keeps the
	// write idempotent, so that is not an error.
	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("failed to mark message %s: %w", status, err)
	}

	return nil
}

// RequeueStale returns messages stuck in processing since before the cutoff
// back to pending. A row can get stuck when a worker crashes between claiming
// and writing a terminal status.
func (r *Repository) RequeueStale(ctx context.Context, olderThan time.Time) (int, error) {
	query := `
		UPDATE outbox_messages
		SET status = 'pending', updated_at = NOW()
		WHERE status = 'processing' AND updated_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stale messages: %w", err)
	}

	n, _ := res.RowsAffected()

	return int(n), nil
}

// GetMessageStatusByID retrieves the delivery status of a message by its ID.
func (r *Repository) GetMessageStatusByID(ctx context.Context, id uuid.UUID) (model.MessageStatus, error) {
	query := `
		SELECT status
		FROM outbox_messages
		WHERE id = $1;
    `

	var status model.MessageStatus
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrMessageNotFound
		}

		return "", fmt.Errorf("failed to get message status: %w", err)
	}

	return status, nil
}
