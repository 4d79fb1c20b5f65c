package model

import (
	"time"

	"github.com/google/uuid"
)

// TransitionEvent describes one contract status change detected by a sweep.
// It is an in-process value; a JSON copy is mirrored to RabbitMQ for
// downstream consumers, best-effort.
type TransitionEvent struct {
	ContractID   uuid.UUID      `json:"contract_id"`
	ContractName string         `json:"contract_name"`
	OldStatus    ContractStatus `json:"old_status"`
	NewStatus    ContractStatus `json:"new_status"`
	EndDate      time.Time      `json:"end_date"`
	AsOf         time.Time      `json:"as_of"` // the "now" the sweep classified against
}
