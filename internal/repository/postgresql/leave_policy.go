package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leavePolicyRepositoryImpl struct {
	db *database.DB
}

func NewLeavePolicyRepository(db *database.DB) leave.PolicyRepository {
	return &leavePolicyRepositoryImpl{db: db}
}

// Upsert relies on the unique (role, year) index: a later write for the
// same key replaces the categories instead of appending a duplicate.
func (r *leavePolicyRepositoryImpl) Upsert(ctx context.Context, policy leave.LeavePolicy) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_policies (id, role, year, categories, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (role, year) DO UPDATE
		SET categories = EXCLUDED.categories, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, policy.Role, policy.Year, policy.Categories).
		Scan(&policy.ID, &policy.CreatedAt, &policy.UpdatedAt)
	if err != nil {
		return leave.LeavePolicy{}, fmt.Errorf("failed to upsert leave policy: %w", err)
	}

	return policy, nil
}

func (r *leavePolicyRepositoryImpl) GetByRoleYear(ctx context.Context, role employee.Role, year int) (leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, role, year, categories, created_at, updated_at
		FROM leave_policies
		WHERE role = $1 AND year = $2
	`

	var policy leave.LeavePolicy
	err := q.QueryRow(ctx, query, role, year).Scan(
		&policy.ID, &policy.Role, &policy.Year, &policy.Categories,
		&policy.CreatedAt, &policy.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeavePolicy{}, leave.ErrPolicyNotFound
		}
		return leave.LeavePolicy{}, err
	}

	return policy, nil
}

func (r *leavePolicyRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeavePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, role, year, categories, created_at, updated_at
		FROM leave_policies
		WHERE year = $1
		ORDER BY role
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []leave.LeavePolicy
	for rows.Next() {
		var policy leave.LeavePolicy
		err := rows.Scan(
			&policy.ID, &policy.Role, &policy.Year, &policy.Categories,
			&policy.CreatedAt, &policy.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return policies, nil
}
