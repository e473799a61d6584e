// Package analytics rolls the entitlement ledgers up into the per-year
// summary report.
package analytics

import (
	"context"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/analytics"
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type Service struct {
	balances  leave.BalanceRepository
	employees employee.Repository
}

func NewService(balances leave.BalanceRepository, employees employee.Repository) *Service {
	return &Service{balances: balances, employees: employees}
}

// Summary aggregates every ledger for one year. Employees without an
// initialized ledger contribute nothing. Year defaults to the current
// year.
func (s *Service) Summary(ctx context.Context, year int) (analytics.Summary, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	balances, err := s.balances.ListByYear(ctx, year)
	if err != nil {
		return analytics.Summary{}, err
	}

	summary := analytics.Summary{
		Year:              year,
		TotalEmployees:    len(balances),
		CategoryBreakdown: make(map[leave.Category]analytics.CategoryTotals),
		RoleBreakdown:     make(map[employee.Role]analytics.RoleTotals),
	}

	for _, balance := range balances {
		emp, err := s.employees.GetByID(ctx, balance.EmployeeID)
		if err != nil {
			return analytics.Summary{}, err
		}

		roleTotals := summary.RoleBreakdown[emp.Role]
		roleTotals.Employees++

		for category, cb := range balance.Balances {
			summary.TotalAllocated += cb.Allocated
			summary.TotalUsed += cb.Used

			catTotals := summary.CategoryBreakdown[category]
			catTotals.Allocated += cb.Allocated
			catTotals.Used += cb.Used
			catTotals.Remaining += cb.Remaining
			summary.CategoryBreakdown[category] = catTotals

			roleTotals.TotalAllocated += cb.Allocated
			roleTotals.TotalUsed += cb.Used
		}

		summary.RoleBreakdown[emp.Role] = roleTotals
	}

	summary.UtilizationRate = utilizationRate(summary.TotalUsed, summary.TotalAllocated)

	return summary, nil
}

// utilizationRate is used/allocated as a percentage rounded to one
// decimal place, and 0 when nothing is allocated.
func utilizationRate(used, allocated int) float64 {
	if allocated == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(used)).
		Div(decimal.NewFromInt(int64(allocated))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
	f, _ := rate.Float64()
	return f
}
