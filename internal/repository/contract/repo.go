package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dbekbolat/contract-notifier/internal/model"
)

var ErrContractNotFound = errors.New("contract not found")

// Repository provides methods to interact with the contracts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new contract repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListContracts retrieves all contracts ordered by end date.
func (r *Repository) ListContracts(ctx context.Context) ([]model.Contract, error) {
	query := `
		SELECT id, name, department_id, owner_id, start_date, end_date, status
		FROM contracts
		ORDER BY end_date;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []model.Contract
	for rows.Next() {
		var (
			c          model.Contract
			department uuid.NullUUID
		)
		if err := rows.Scan(&c.ID, &c.Name, &department, &c.OwnerID, &c.StartDate, &c.EndDate, &c.Status); err != nil {
			return nil, err
		}

		c.DepartmentID = department.UUID

		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// UpdateStatus persists a recomputed lifecycle status for a contract.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContractStatus) error {
	query := `
		UPDATE contracts
		SET status = $1, updated_at = NOW()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update contract status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrContractNotFound
	}

	return nil
}
