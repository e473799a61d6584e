// Package employee implements the employee directory operations.
package employee

import (
	"context"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
)

type Service struct {
	employee.Repository
}

func NewService(repo employee.Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		Name:          req.Name,
		Email:         req.Email,
		Role:          employee.Role(req.Role),
		Team:          req.Team,
		Gender:        employee.Gender(req.Gender),
		MaritalStatus: employee.MaritalStatus(req.MaritalStatus),
	}

	return s.Repository.Create(ctx, emp)
}

func (s *Service) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return s.Repository.List(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	return s.Repository.GetByID(ctx, id)
}
