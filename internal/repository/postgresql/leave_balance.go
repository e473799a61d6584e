package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, year, balances, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, balance.EmployeeID, balance.Year, balance.Balances).
		Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveBalance{}, leave.ErrBalanceExists
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) Get(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, balances, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&balance.ID, &balance.EmployeeID, &balance.Year, &balance.Balances,
		&balance.CreatedAt, &balance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

// AddUsage re-reads the ledger row under FOR UPDATE inside a transaction
// so two concurrent approvals cannot both pass the remaining check.
func (r *leaveBalanceRepositoryImpl) AddUsage(ctx context.Context, employeeID string, year int, category leave.Category, deltaDays int) (leave.LeaveBalance, error) {
	var updated leave.LeaveBalance

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			SELECT id, employee_id, year, balances, created_at, updated_at
			FROM leave_balances
			WHERE employee_id = $1 AND year = $2
			FOR UPDATE
		`

		var balance leave.LeaveBalance
		err := q.QueryRow(txCtx, query, employeeID, year).Scan(
			&balance.ID, &balance.EmployeeID, &balance.Year, &balance.Balances,
			&balance.CreatedAt, &balance.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return leave.ErrBalanceNotFound
			}
			return err
		}

		cat, ok := balance.Balances[category]
		if !ok {
			return leave.ErrCategoryNotInLedger
		}

		cat.Used += deltaDays
		cat.Remaining = cat.Allocated - cat.Used
		if cat.Remaining < 0 {
			return leave.ErrInsufficientBalance
		}
		balance.Balances[category] = cat

		updateQuery := `
			UPDATE leave_balances
			SET balances = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING updated_at
		`

		if err := q.QueryRow(txCtx, updateQuery, balance.Balances, balance.ID).Scan(&balance.UpdatedAt); err != nil {
			return fmt.Errorf("failed to update leave balance: %w", err)
		}

		updated = balance
		return nil
	})
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return updated, nil
}

func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, balances, created_at, updated_at
		FROM leave_balances
		WHERE year = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var balance leave.LeaveBalance
		err := rows.Scan(
			&balance.ID, &balance.EmployeeID, &balance.Year, &balance.Balances,
			&balance.CreatedAt, &balance.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		balances = append(balances, balance)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return balances, nil
}
