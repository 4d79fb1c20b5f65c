package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags.
const (
	TypeContractExpiring = "contract_expiring"
	TypeContractExpired  = "contract_expired"
)

// Notification is an in-app message directed at a single recipient.
//
// At most one unread notification with the same (recipient, message) pair may
// exist at a time; the fan-out engine enforces this, not the database.
type Notification struct {
	ID            uuid.UUID `json:"id"`
	RecipientID   uuid.UUID `json:"recipient_id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`           // category tag, e.g. "contract_expiring"
	CorrelationID uuid.UUID `json:"correlation_id"` // related record, e.g. contract id; uuid.Nil when absent
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
