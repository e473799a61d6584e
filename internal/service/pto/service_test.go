package pto

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/pkg/metrics"
	"github.com/athena-hr/pto-backend-go/internal/repository/memory"
	coveragesvc "github.com/athena-hr/pto-backend-go/internal/service/coverage"
	leavesvc "github.com/athena-hr/pto-backend-go/internal/service/leave"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ptoFixture struct {
	service   *Service
	ledger    *leavesvc.LedgerService
	employees *memory.EmployeeRepository
}

func newPTOFixture() *ptoFixture {
	employees := memory.NewEmployeeRepository()
	requests := memory.NewPTORequestRepository()
	m := metrics.New(prometheus.NewRegistry())

	resolver := leavesvc.NewPolicyResolver(memory.NewLeavePolicyRepository())
	ledger := leavesvc.NewLedgerService(memory.NewLeaveBalanceRepository(), employees, resolver, m)
	coverageSvc := coveragesvc.NewService(memory.NewCoverageRuleRepository(), employees, requests)

	service := NewService(requests, employees, coverageSvc, ledger, 3, m)
	return &ptoFixture{service: service, ledger: ledger, employees: employees}
}

func (f *ptoFixture) createEmployee(t *testing.T, ctx context.Context, name, team string, role employee.Role) employee.Employee {
	t.Helper()
	emp, err := f.employees.Create(ctx, employee.Employee{
		Name:          name,
		Email:         name + "@example.com",
		Role:          role,
		Team:          team,
		Gender:        employee.GenderFemale,
		MaritalStatus: employee.MaritalMarried,
	})
	require.NoError(t, err)
	return emp
}

func TestPTOService_CreateRequest_SnapshotsRoleAndTeam(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	emp := f.createEmployee(t, ctx, "alice", "platform", employee.RoleEngineer)

	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "alice@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-06",
		LeaveType:     "personal",
		Reason:        "vacation",
	})
	require.NoError(t, err)

	req := result.Request
	assert.Equal(t, emp.ID, req.EmployeeID)
	assert.Equal(t, employee.RoleEngineer, req.Role)
	assert.Equal(t, "platform", req.Team)
	assert.Equal(t, pto.StatusPending, req.Status)
	assert.Equal(t, 5, req.DaysRequested)
	assert.NotEmpty(t, req.ID)
}

func TestPTOService_CreateRequest_RiskyButAdmitted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	f.createEmployee(t, ctx, "solo", "ops", employee.RoleSupport)

	// Single support person, default min-on-duty: any request is risky,
	// yet it is still created with the flag attached.
	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "solo@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-02",
		LeaveType:     "sick",
	})
	require.NoError(t, err)

	assert.True(t, result.Analysis.Risk)
	assert.Equal(t, pto.StatusPending, result.Request.Status)

	listed, err := f.service.ListRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestPTOService_CreateRequest_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()

	_, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "ghost@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-02",
		LeaveType:     "personal",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPTOService_CreateRequest_InvalidDates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	f.createEmployee(t, ctx, "bob", "platform", employee.RoleEngineer)

	_, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "bob@example.com",
		StartDate:     "2026-03-06",
		EndDate:       "2026-03-02",
		LeaveType:     "personal",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPTOService_UpdateStatus_TerminalIsImmutable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	f.createEmployee(t, ctx, "carol", "platform", employee.RoleEngineer)

	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "carol@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-03",
		LeaveType:     "personal",
	})
	require.NoError(t, err)

	denied, err := f.service.UpdateStatus(ctx, result.Request.ID, pto.UpdateStatusRequest{Status: "denied"})
	require.NoError(t, err)
	assert.Equal(t, pto.StatusDenied, denied.Status)

	_, err = f.service.UpdateStatus(ctx, result.Request.ID, pto.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, pto.ErrAlreadyDecided)

	// Still denied after the rejected transition.
	got, err := f.service.GetRequest(ctx, result.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, pto.StatusDenied, got.Status)
}

func TestPTOService_UpdateStatus_ApprovalRecordsUsage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	emp := f.createEmployee(t, ctx, "dave", "platform", employee.RoleEngineer)

	_, err := f.ledger.UpsertPolicy(ctx, leave.UpsertPolicyRequest{
		Role:            "engineer",
		Year:            2026,
		LeaveCategories: map[string]int{"personal": 20},
	})
	require.NoError(t, err)
	_, err = f.ledger.InitializeBalance(ctx, emp.ID, leave.InitializeBalanceRequest{Year: 2026})
	require.NoError(t, err)

	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "dave@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-06",
		LeaveType:     "personal",
	})
	require.NoError(t, err)

	approved, err := f.service.UpdateStatus(ctx, result.Request.ID, pto.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, pto.StatusApproved, approved.Status)

	balance, err := f.ledger.GetBalance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 5, balance.Balances[leave.CategoryPersonal].Used)
	assert.Equal(t, 15, balance.Balances[leave.CategoryPersonal].Remaining)
}

func TestPTOService_UpdateStatus_ApprovalBlockedByExhaustedBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	emp := f.createEmployee(t, ctx, "erin", "platform", employee.RoleEngineer)

	_, err := f.ledger.UpsertPolicy(ctx, leave.UpsertPolicyRequest{
		Role:            "engineer",
		Year:            2026,
		LeaveCategories: map[string]int{"personal": 3},
	})
	require.NoError(t, err)
	_, err = f.ledger.InitializeBalance(ctx, emp.ID, leave.InitializeBalanceRequest{Year: 2026})
	require.NoError(t, err)

	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "erin@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-06",
		LeaveType:     "personal",
	})
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(ctx, result.Request.ID, pto.UpdateStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// The request stays pending and the ledger is untouched.
	got, err := f.service.GetRequest(ctx, result.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, pto.StatusPending, got.Status)

	balance, err := f.ledger.GetBalance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Balances[leave.CategoryPersonal].Used)
	assert.Equal(t, 3, balance.Balances[leave.CategoryPersonal].Remaining)
}

// A pending request transitions at most once: of N simultaneous
// approvals, exactly one wins and the ledger is debited exactly once.
func TestPTOService_UpdateStatus_ConcurrentApprovalsSingleDebit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()
	emp := f.createEmployee(t, ctx, "frank", "platform", employee.RoleEngineer)

	_, err := f.ledger.UpsertPolicy(ctx, leave.UpsertPolicyRequest{
		Role:            "engineer",
		Year:            2026,
		LeaveCategories: map[string]int{"personal": 20},
	})
	require.NoError(t, err)
	_, err = f.ledger.InitializeBalance(ctx, emp.ID, leave.InitializeBalanceRequest{Year: 2026})
	require.NoError(t, err)

	result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
		EmployeeEmail: "frank@example.com",
		StartDate:     "2026-03-02",
		EndDate:       "2026-03-06",
		LeaveType:     "personal",
	})
	require.NoError(t, err)

	const deciders = 8
	var wg sync.WaitGroup
	errs := make(chan error, deciders)

	for i := 0; i < deciders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.UpdateStatus(ctx, result.Request.ID, pto.UpdateStatusRequest{Status: "approved"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	won := 0
	for err := range errs {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, pto.ErrAlreadyDecided)
	}
	assert.Equal(t, 1, won)

	got, err := f.service.GetRequest(ctx, result.Request.ID)
	require.NoError(t, err)
	assert.Equal(t, pto.StatusApproved, got.Status)

	balance, err := f.ledger.GetBalance(ctx, emp.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, 5, balance.Balances[leave.CategoryPersonal].Used)
	assert.Equal(t, 15, balance.Balances[leave.CategoryPersonal].Remaining)
}

// Concurrent admissions for the same (team, role) and window must be
// serialized: with maxAllowedOff = 1, exactly one of N simultaneous
// requests may come back unflagged, no matter the interleaving.
func TestPTOService_CreateRequest_ConcurrentAdmissionsSerialized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newPTOFixture()

	const workers = 16
	for i := 0; i < workers; i++ {
		f.createEmployee(t, ctx, fmt.Sprintf("eng%d", i), "platform", employee.RoleEngineer)
	}

	var wg sync.WaitGroup
	results := make(chan AdmissionResult, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := f.service.CreateRequest(ctx, pto.CreateRequestRequest{
				EmployeeEmail: fmt.Sprintf("eng%d@example.com", i),
				StartDate:     "2026-03-02",
				EndDate:       "2026-03-06",
				LeaveType:     "personal",
			})
			if err != nil {
				errs <- err
				return
			}
			results <- result
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// With 16 engineers and min-on-duty 1, maxAllowedOff is 15, and the
	// overlap count each admission observes must include every earlier
	// admission. Exactly one interleaving-independent outcome exists:
	// 15 unflagged admissions, then flags.
	safe := 0
	admitted := 0
	for result := range results {
		admitted++
		if !result.Analysis.Risk {
			safe++
		}
	}

	assert.Equal(t, workers, admitted)
	assert.Equal(t, 15, safe, "every admission past the ceiling must be flagged")

	listed, err := f.service.ListRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, admitted)
}
