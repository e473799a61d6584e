package leave

import (
	"context"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
)

// PolicyRepository - interface for the leave_policies table
type PolicyRepository interface {
	// Upsert replaces any existing policy for the same (role, year).
	Upsert(ctx context.Context, policy LeavePolicy) (LeavePolicy, error)
	GetByRoleYear(ctx context.Context, role employee.Role, year int) (LeavePolicy, error)
	ListByYear(ctx context.Context, year int) ([]LeavePolicy, error)
}

// BalanceRepository - interface for the leave_balances table
type BalanceRepository interface {
	// Create fails with ErrBalanceExists when a record for the same
	// (employee, year) already exists.
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	Get(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
	// AddUsage atomically increases used for one category, recomputes
	// remaining, and fails with ErrInsufficientBalance when remaining
	// would drop below zero.
	AddUsage(ctx context.Context, employeeID string, year int, category Category, deltaDays int) (LeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}
