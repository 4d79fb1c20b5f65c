package model

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus is the lifecycle state of a contract relative to its end date.
type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpiring ContractStatus = "expiring" // end date falls inside the warning window
	ContractExpired  ContractStatus = "expired"
)

// Contract is a time-bound agreement whose status is recomputed by the
// lifecycle sweep. The status column is owned exclusively by the sweep;
// everything else is written by the contract management flows.
type Contract struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	DepartmentID uuid.UUID      `json:"department_id"` // uuid.Nil when not department-scoped
	OwnerID      uuid.UUID      `json:"owner_id"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Status       ContractStatus `json:"status"`
}

// ClassifyContract derives the status a contract should have at the given
// instant. A contract is expired once now is strictly past the end date, and
// expiring when the end date falls inside (now, now+window]. An end date equal
// to now is still active.
func ClassifyContract(end, now time.Time, window time.Duration) ContractStatus {
	if now.After(end) {
		return ContractExpired
	}

	if end.After(now) && !end.After(now.Add(window)) {
		return ContractExpiring
	}

	return ContractActive
}
