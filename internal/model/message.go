package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus is the delivery state of a queued message.
type MessageStatus string

const (
	StatusPending    MessageStatus = "pending"    // waiting to be claimed by a worker
	StatusProcessing MessageStatus = "processing" // claimed by a worker, delivery in progress
	StatusSent       MessageStatus = "sent"       // delivered successfully, terminal
	StatusFailed     MessageStatus = "failed"     // retry budget exhausted, terminal
)

// QueuedMessage represents one outbound email in the outbox.
//
// Status only ever moves forward: pending -> processing -> sent|failed.
// A row stuck in processing after a crash is requeued to pending by the
// delivery worker's stale-claim recovery.
type QueuedMessage struct {
	ID          uuid.UUID     `json:"id"`
	To          string        `json:"to_address"` // recipient email address
	Subject     string        `json:"subject"`
	Body        string        `json:"body"`
	Status      MessageStatus `json:"status"`
	ScheduledAt time.Time     `json:"scheduled_at"` // not-before time; never claimed earlier
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
