package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ptoRequestRepositoryImpl struct {
	db *database.DB
}

func NewPTORequestRepository(db *database.DB) pto.Repository {
	return &ptoRequestRepositoryImpl{db: db}
}

func (r *ptoRequestRepositoryImpl) Create(ctx context.Context, req pto.PTORequest) (pto.PTORequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pto_requests (
			id, employee_id, role, team,
			start_date, end_date, leave_type, reason,
			status, days_requested, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Role, req.Team,
		req.StartDate, req.EndDate, req.LeaveType, req.Reason,
		req.Status, req.DaysRequested,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return pto.PTORequest{}, fmt.Errorf("failed to create pto request: %w", err)
	}

	return req, nil
}

func (r *ptoRequestRepositoryImpl) GetByID(ctx context.Context, id string) (pto.PTORequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id, p.employee_id, p.role, p.team,
			p.start_date, p.end_date, p.leave_type, p.reason,
			p.status, p.days_requested, p.created_at, p.updated_at,
			e.name, e.email
		FROM pto_requests p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var req pto.PTORequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Role, &req.Team,
		&req.StartDate, &req.EndDate, &req.LeaveType, &req.Reason,
		&req.Status, &req.DaysRequested, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.EmployeeEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pto.PTORequest{}, pto.ErrRequestNotFound
		}
		return pto.PTORequest{}, err
	}

	return req, nil
}

func (r *ptoRequestRepositoryImpl) List(ctx context.Context) ([]pto.PTORequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id, p.employee_id, p.role, p.team,
			p.start_date, p.end_date, p.leave_type, p.reason,
			p.status, p.days_requested, p.created_at, p.updated_at,
			e.name, e.email
		FROM pto_requests p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY p.start_date, p.created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []pto.PTORequest
	for rows.Next() {
		var req pto.PTORequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Role, &req.Team,
			&req.StartDate, &req.EndDate, &req.LeaveType, &req.Reason,
			&req.Status, &req.DaysRequested, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.EmployeeEmail,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

func (r *ptoRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to pto.Status) (pto.PTORequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pto_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, to, id, from).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the request does not exist or another decider won.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return pto.PTORequest{}, getErr
			}
			return pto.PTORequest{}, pto.ErrAlreadyDecided
		}
		return pto.PTORequest{}, fmt.Errorf("failed to update pto request status: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *ptoRequestRepositoryImpl) CountOverlapping(ctx context.Context, team string, role employee.Role, from, to time.Time, statuses []pto.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Closed intervals intersect iff start <= to AND end >= from.
	query := `
		SELECT COUNT(*)
		FROM pto_requests
		WHERE team = $1 AND role = $2
		  AND start_date <= $3 AND end_date >= $4
		  AND status = ANY($5)
	`

	var count int
	if err := q.QueryRow(ctx, query, team, role, to, from, statusStrings(statuses)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overlapping requests: %w", err)
	}

	return count, nil
}

func statusStrings(statuses []pto.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *ptoRequestRepositoryImpl) CountOverlappingByRole(ctx context.Context, team string, from, to time.Time, statuses []pto.Status) (map[employee.Role]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT role, COUNT(*)
		FROM pto_requests
		WHERE team = $1
		  AND start_date <= $2 AND end_date >= $3
		  AND status = ANY($4)
		GROUP BY role
	`

	rows, err := q.Query(ctx, query, team, to, from, statusStrings(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[employee.Role]int)
	for rows.Next() {
		var role employee.Role
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts[role] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
