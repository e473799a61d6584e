// Package memory holds in-memory repository implementations. They back
// the service tests and mirror the behavior of the postgresql package,
// including sentinel errors and uniqueness constraints.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.Email = strings.ToLower(emp.Email)
	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	emp.ID = uuid.NewString()
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp

	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *EmployeeRepository) CountByTeamRole(_ context.Context, team string, role employee.Role) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, emp := range r.employees {
		if emp.Team == team && emp.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *EmployeeRepository) CountByTeam(_ context.Context, team string) (map[employee.Role]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[employee.Role]int)
	for _, emp := range r.employees {
		if emp.Team == team {
			counts[emp.Role]++
		}
	}
	return counts, nil
}
