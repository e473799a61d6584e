package pto

import (
	"context"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
)

// Repository - interface for the pto_requests table. Records are
// append-only; only status is ever mutated in place.
type Repository interface {
	Create(ctx context.Context, req PTORequest) (PTORequest, error)
	GetByID(ctx context.Context, id string) (PTORequest, error)
	List(ctx context.Context) ([]PTORequest, error)

	// UpdateStatus transitions a request from one status to another.
	// The write is conditional on from, so two concurrent deciders
	// cannot both win; the loser fails with ErrAlreadyDecided.
	UpdateStatus(ctx context.Context, id string, from, to Status) (PTORequest, error)

	// CountOverlapping counts requests of one (team, role) whose
	// inclusive interval intersects [from, to] and whose status is in
	// statuses. Closed-interval semantics on both sides.
	CountOverlapping(ctx context.Context, team string, role employee.Role, from, to time.Time, statuses []Status) (int, error)

	// CountOverlappingByRole is CountOverlapping across all roles of a
	// team at once, for the aggregate coverage report.
	CountOverlappingByRole(ctx context.Context, team string, from, to time.Time, statuses []Status) (map[employee.Role]int, error)
}
