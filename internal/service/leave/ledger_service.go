package leave

import (
	"context"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/pkg/metrics"
)

// LedgerService owns the per-employee, per-year balance ledger and the
// policy catalog it derives from.
type LedgerService struct {
	leave.BalanceRepository
	employees employee.Repository
	resolver  *PolicyResolver
	metrics   *metrics.Manager
}

func NewLedgerService(balances leave.BalanceRepository, employees employee.Repository, resolver *PolicyResolver, m *metrics.Manager) *LedgerService {
	return &LedgerService{
		BalanceRepository: balances,
		employees:         employees,
		resolver:          resolver,
		metrics:           m,
	}
}

// UpsertPolicy writes the policy for a (role, year), replacing any
// existing one. Year defaults to the current year.
func (s *LedgerService) UpsertPolicy(ctx context.Context, req leave.UpsertPolicyRequest) (leave.LeavePolicy, error) {
	if err := req.Validate(); err != nil {
		return leave.LeavePolicy{}, err
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	categories := make(leave.CategoryAllocations, len(req.LeaveCategories))
	for category, days := range req.LeaveCategories {
		categories[leave.Category(category)] = days
	}

	return s.resolver.Upsert(ctx, leave.LeavePolicy{
		Role:       employee.Role(req.Role),
		Year:       year,
		Categories: categories,
	})
}

func (s *LedgerService) ListPolicies(ctx context.Context, year int) ([]leave.LeavePolicy, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.resolver.ListByYear(ctx, year)
}

// InitializeBalance derives a fresh ledger for an employee from the
// resolved entitlement. A ledger that already exists for the (employee,
// year) is never overwritten; the caller gets ErrBalanceExists instead.
func (s *LedgerService) InitializeBalance(ctx context.Context, employeeID string, req leave.InitializeBalanceRequest) (leave.LeaveBalance, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	year := req.Year
	if year == 0 {
		year = time.Now().Year()
	}

	allocations, err := s.resolver.ResolveEntitlement(ctx, emp, year)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	balances := make(leave.BalanceSet, len(allocations))
	for category, days := range allocations {
		balances[category] = leave.CategoryBalance{
			Allocated: days,
			Used:      0,
			Remaining: days,
		}
	}

	created, err := s.BalanceRepository.Create(ctx, leave.LeaveBalance{
		EmployeeID: emp.ID,
		Year:       year,
		Balances:   balances,
	})
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	s.metrics.RecordLedgerInit()
	return created, nil
}

// RecordUsage applies a usage mutation to one category of the ledger.
func (s *LedgerService) RecordUsage(ctx context.Context, employeeID string, req leave.RecordUsageRequest) (leave.LeaveBalance, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalance{}, err
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveBalance{}, err
	}

	updated, err := s.BalanceRepository.AddUsage(ctx, employeeID, req.Year, leave.Category(req.Category), req.Days)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	s.metrics.RecordUsage()
	return updated, nil
}

func (s *LedgerService) GetBalance(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveBalance{}, err
	}

	if year == 0 {
		year = time.Now().Year()
	}
	return s.BalanceRepository.Get(ctx, employeeID, year)
}

func (s *LedgerService) ListBalances(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.BalanceRepository.ListByYear(ctx, year)
}
