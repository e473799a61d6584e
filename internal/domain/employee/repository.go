package employee

import "context"

// Repository - interface for the employees table
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)

	// CountByTeamRole returns the current headcount for one (team, role).
	CountByTeamRole(ctx context.Context, team string, role Role) (int, error)
	// CountByTeam returns the current headcount of a team grouped by role.
	CountByTeam(ctx context.Context, team string) (map[Role]int, error)
}
