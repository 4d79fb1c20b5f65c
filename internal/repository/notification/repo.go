package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new unread notification and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    recipient_id, title, message, type, correlation_id
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	correlation := uuid.NullUUID{UUID: n.CorrelationID, Valid: n.CorrelationID != uuid.Nil}

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(
		ctx, query, n.RecipientID, n.Title, n.Message, n.Type, correlation,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// HasUnread reports whether the recipient already has an unread notification
// with exactly this message text. The fan-out engine uses it as its dedup key.
func (r *Repository) HasUnread(ctx context.Context, recipientID uuid.UUID, message string) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM notifications
		    WHERE recipient_id = $1 AND message = $2 AND NOT is_read
		);
    `

	var exists bool
	err := r.db.Master.QueryRowContext(ctx, query, recipientID, message).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check unread notifications: %w", err)
	}

	return exists, nil
}

// ListByRecipient retrieves all notifications for a recipient, newest first.
func (r *Repository) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]model.Notification, error) {
	query := `
		SELECT id, recipient_id, title, message, type, correlation_id, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var (
			n           model.Notification
			correlation uuid.NullUUID
		)
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Title, &n.Message, &n.Type, &correlation, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}

		n.CorrelationID = correlation.UUID

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead marks a notification as read. Only the owning recipient may do so.
func (r *Repository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification. Only the owning recipient may do so.
func (r *Repository) Delete(ctx context.Context, id, recipientID uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND recipient_id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
