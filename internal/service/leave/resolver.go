// Package leave implements policy resolution and the entitlement ledger.
package leave

import (
	"context"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
)

// PolicyResolver resolves the effective entitlements for one employee:
// the (role, year) policy filtered by the employee's eligibility.
type PolicyResolver struct {
	leave.PolicyRepository
}

func NewPolicyResolver(policies leave.PolicyRepository) *PolicyResolver {
	return &PolicyResolver{PolicyRepository: policies}
}

// ResolveEntitlement returns the category allocations an employee is
// entitled to for a year. Fails with ErrPolicyNotFound when no policy
// covers the employee's role for that year.
func (r *PolicyResolver) ResolveEntitlement(ctx context.Context, emp employee.Employee, year int) (leave.CategoryAllocations, error) {
	policy, err := r.PolicyRepository.GetByRoleYear(ctx, emp.Role, year)
	if err != nil {
		return nil, err
	}
	return leave.EligibleAllocations(policy.Categories, emp.Gender, emp.MaritalStatus), nil
}
