// Package pto implements PTO request admission and the approval
// workflow.
package pto

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/pkg/keylock"
	"github.com/athena-hr/pto-backend-go/internal/pkg/metrics"
	coveragesvc "github.com/athena-hr/pto-backend-go/internal/service/coverage"
)

// admissionWait is how long one TryLock attempt waits before the
// service counts it as a contention and retries.
const admissionWait = 50 * time.Millisecond

// AdmissionResult pairs the created request with the risk analysis the
// caller should surface. Risk is advisory: the request is created even
// when flagged.
type AdmissionResult struct {
	Request  pto.PTORequest        `json:"request"`
	Analysis coverage.RiskAnalysis `json:"analysis"`
}

type Service struct {
	pto.Repository
	employees employee.Repository
	coverage  *coveragesvc.Service
	ledger    LedgerRecorder

	admission *keylock.KeyLock
	retries   int
	metrics   *metrics.Manager
}

// LedgerRecorder is the slice of the ledger service the approval path
// needs: recording the approved days as usage.
type LedgerRecorder interface {
	RecordUsage(ctx context.Context, employeeID string, req leave.RecordUsageRequest) (leave.LeaveBalance, error)
}

func NewService(repo pto.Repository, employees employee.Repository, coverageSvc *coveragesvc.Service, ledger LedgerRecorder, retries int, m *metrics.Manager) *Service {
	return &Service{
		Repository: repo,
		employees:  employees,
		coverage:   coverageSvc,
		ledger:     ledger,
		admission:  keylock.New(),
		retries:    retries,
		metrics:    m,
	}
}

// CreateRequest admits a new PTO request. The overlap count and the
// insert happen under a per-(team, role) lock so two simultaneous
// requests cannot both observe the same pre-insert count. Lock
// acquisition is bounded; callers that lose every retry get
// ErrAdmissionContention rather than waiting indefinitely.
func (s *Service) CreateRequest(ctx context.Context, req pto.CreateRequestRequest) (AdmissionResult, error) {
	if err := req.Validate(); err != nil {
		return AdmissionResult{}, err
	}

	emp, err := s.employees.GetByEmail(ctx, req.EmployeeEmail)
	if err != nil {
		return AdmissionResult{}, err
	}

	key := fmt.Sprintf("%s/%s", emp.Team, emp.Role)
	if !s.acquire(key) {
		slog.Warn("admission check contended", "team", emp.Team, "role", emp.Role)
		return AdmissionResult{}, pto.ErrAdmissionContention
	}
	defer s.admission.Unlock(key)

	start := time.Now()
	analysis, err := s.coverage.EvaluateRequest(ctx, emp, req.Start, req.End)
	if err != nil {
		return AdmissionResult{}, err
	}

	created, err := s.Repository.Create(ctx, pto.PTORequest{
		EmployeeID:    emp.ID,
		Role:          emp.Role,
		Team:          emp.Team,
		StartDate:     req.Start,
		EndDate:       req.End,
		LeaveType:     leave.Category(req.LeaveType),
		Reason:        req.Reason,
		Status:        pto.StatusPending,
		DaysRequested: pto.InclusiveDays(req.Start, req.End),
	})
	if err != nil {
		return AdmissionResult{}, err
	}
	s.metrics.RecordAdmissionCheck(analysis.Risk, time.Since(start))

	created.EmployeeName = &emp.Name
	created.EmployeeEmail = &emp.Email

	return AdmissionResult{Request: created, Analysis: analysis}, nil
}

func (s *Service) acquire(key string) bool {
	for attempt := 0; attempt < s.retries; attempt++ {
		if s.admission.TryLock(key, admissionWait) {
			return true
		}
	}
	return false
}

// UpdateStatus moves a pending request to approved or denied. The
// transition is a conditional write on the pending status, so when two
// deciders race only one wins; the loser gets ErrAlreadyDecided.
// Approval records the requested days as usage in the employee's ledger
// for the start date's year; an exhausted balance reverts the
// transition and leaves the request pending.
func (s *Service) UpdateStatus(ctx context.Context, id string, req pto.UpdateStatusRequest) (pto.PTORequest, error) {
	if err := req.Validate(); err != nil {
		return pto.PTORequest{}, err
	}

	current, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return pto.PTORequest{}, err
	}
	if current.Status.Terminal() {
		return pto.PTORequest{}, pto.ErrAlreadyDecided
	}

	status := pto.Status(req.Status)
	updated, err := s.Repository.UpdateStatus(ctx, id, pto.StatusPending, status)
	if err != nil {
		return pto.PTORequest{}, err
	}

	if status == pto.StatusApproved {
		if err := s.recordApproval(ctx, current); err != nil {
			if _, revertErr := s.Repository.UpdateStatus(ctx, id, pto.StatusApproved, pto.StatusPending); revertErr != nil {
				slog.Error("failed to revert approval after ledger error",
					"request_id", id, "error", revertErr)
			}
			return pto.PTORequest{}, err
		}
	}

	return updated, nil
}

func (s *Service) recordApproval(ctx context.Context, current pto.PTORequest) error {
	_, err := s.ledger.RecordUsage(ctx, current.EmployeeID, leave.RecordUsageRequest{
		Year:     current.StartDate.Year(),
		Category: string(current.LeaveType),
		Days:     current.DaysRequested,
	})
	if err != nil {
		// A missing ledger is not a blocker; usage is simply not
		// tracked until the balance is initialized.
		if !errors.Is(err, leave.ErrBalanceNotFound) {
			return err
		}
		slog.Warn("approved request without an initialized ledger",
			"request_id", current.ID, "employee_id", current.EmployeeID)
	}
	return nil
}

func (s *Service) ListRequests(ctx context.Context) ([]pto.PTORequest, error) {
	return s.Repository.List(ctx)
}

func (s *Service) GetRequest(ctx context.Context, id string) (pto.PTORequest, error) {
	return s.Repository.GetByID(ctx, id)
}
