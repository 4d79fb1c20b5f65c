package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

// Repository provides read-only directory lookups over the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new directory repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListByRole retrieves all accounts holding the given role.
func (r *Repository) ListByRole(ctx context.Context, role string) ([]model.Account, error) {
	query := `
		SELECT id, name, email, role, department_id
		FROM users
		WHERE role = $1
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by role: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

// ListDepartmentManagers retrieves all manager accounts of a department.
func (r *Repository) ListDepartmentManagers(ctx context.Context, departmentID uuid.UUID) ([]model.Account, error) {
	query := `
		SELECT id, name, email, role, department_id
		FROM users
		WHERE role = $1 AND department_id = $2
		ORDER BY name;
    `

	rows, err := r.db.QueryContext(ctx, query, model.RoleManager, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department managers: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func scanAccounts(rows *sql.Rows) ([]model.Account, error) {
	var accounts []model.Account
	for rows.Next() {
		var (
			a          model.Account
			department uuid.NullUUID
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Role, &department); err != nil {
			return nil, err
		}

		a.DepartmentID = department.UUID

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}
