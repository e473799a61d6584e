// Package analytics holds the read-only roll-up types derived from the
// entitlement ledgers. Nothing here is persisted.
package analytics

import (
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
)

type CategoryTotals struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type RoleTotals struct {
	Employees      int `json:"employees"`
	TotalAllocated int `json:"totalAllocated"`
	TotalUsed      int `json:"totalUsed"`
}

// Summary is the per-year roll-up across every ledger entry.
// UtilizationRate is totalUsed/totalAllocated as a percentage rounded to
// one decimal, and 0 when nothing is allocated.
type Summary struct {
	Year              int                               `json:"year"`
	TotalEmployees    int                               `json:"totalEmployees"`
	TotalAllocated    int                               `json:"totalLeaveDaysAllocated"`
	TotalUsed         int                               `json:"totalLeaveDaysUsed"`
	CategoryBreakdown map[leave.Category]CategoryTotals `json:"categoryBreakdown"`
	RoleBreakdown     map[employee.Role]RoleTotals      `json:"roleBreakdown"`
	UtilizationRate   float64                           `json:"utilizationRate"`
}
