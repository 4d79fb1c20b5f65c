package model

import "github.com/google/uuid"

// Directory roles relevant to contract lifecycle notifications.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Account is the directory projection of a user: just enough to route a
// notification and its email copy.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DepartmentID uuid.UUID `json:"department_id"` // uuid.Nil when the account has no department
}
