package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

type policyKey struct {
	role employee.Role
	year int
}

type LeavePolicyRepository struct {
	mu       sync.RWMutex
	policies map[policyKey]leave.LeavePolicy
}

func NewLeavePolicyRepository() *LeavePolicyRepository {
	return &LeavePolicyRepository{policies: make(map[policyKey]leave.LeavePolicy)}
}

func (r *LeavePolicyRepository) Upsert(_ context.Context, policy leave.LeavePolicy) (leave.LeavePolicy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := policyKey{role: policy.Role, year: policy.Year}
	now := time.Now()
	if existing, ok := r.policies[key]; ok {
		policy.ID = existing.ID
		policy.CreatedAt = existing.CreatedAt
	} else {
		policy.ID = uuid.NewString()
		policy.CreatedAt = now
	}
	policy.UpdatedAt = now
	r.policies[key] = policy

	return policy, nil
}

func (r *LeavePolicyRepository) GetByRoleYear(_ context.Context, role employee.Role, year int) (leave.LeavePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.policies[policyKey{role: role, year: year}]
	if !ok {
		return leave.LeavePolicy{}, leave.ErrPolicyNotFound
	}
	return policy, nil
}

func (r *LeavePolicyRepository) ListByYear(_ context.Context, year int) ([]leave.LeavePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.LeavePolicy
	for key, policy := range r.policies {
		if key.year == year {
			out = append(out, policy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Role < out[j].Role })
	return out, nil
}

type balanceKey struct {
	employeeID string
	year       int
}

type LeaveBalanceRepository struct {
	mu       sync.Mutex
	balances map[balanceKey]leave.LeaveBalance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{balances: make(map[balanceKey]leave.LeaveBalance)}
}

func (r *LeaveBalanceRepository) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := balanceKey{employeeID: balance.EmployeeID, year: balance.Year}
	if _, ok := r.balances[key]; ok {
		return leave.LeaveBalance{}, leave.ErrBalanceExists
	}

	balance.ID = uuid.NewString()
	now := time.Now()
	balance.CreatedAt = now
	balance.UpdatedAt = now
	r.balances[key] = balance

	return balance, nil
}

func (r *LeaveBalanceRepository) Get(_ context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[balanceKey{employeeID: employeeID, year: year}]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return cloneBalance(balance), nil
}

func (r *LeaveBalanceRepository) AddUsage(_ context.Context, employeeID string, year int, category leave.Category, deltaDays int) (leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := balanceKey{employeeID: employeeID, year: year}
	balance, ok := r.balances[key]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}

	cat, ok := balance.Balances[category]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrCategoryNotInLedger
	}

	cat.Used += deltaDays
	cat.Remaining = cat.Allocated - cat.Used
	if cat.Remaining < 0 {
		return leave.LeaveBalance{}, leave.ErrInsufficientBalance
	}

	updated := cloneBalance(balance)
	updated.Balances[category] = cat
	updated.UpdatedAt = time.Now()
	r.balances[key] = updated

	return cloneBalance(updated), nil
}

func (r *LeaveBalanceRepository) ListByYear(_ context.Context, year int) ([]leave.LeaveBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.LeaveBalance
	for key, balance := range r.balances {
		if key.year == year {
			out = append(out, cloneBalance(balance))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// cloneBalance deep-copies the balance map so callers cannot mutate
// stored state through the returned value.
func cloneBalance(b leave.LeaveBalance) leave.LeaveBalance {
	out := b
	out.Balances = make(leave.BalanceSet, len(b.Balances))
	for cat, cb := range b.Balances {
		out.Balances[cat] = cb
	}
	return out
}
