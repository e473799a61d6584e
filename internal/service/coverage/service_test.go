package coverage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coverageFixture struct {
	service   *Service
	employees *memory.EmployeeRepository
	requests  *memory.PTORequestRepository
}

func newCoverageFixture() *coverageFixture {
	employees := memory.NewEmployeeRepository()
	requests := memory.NewPTORequestRepository()
	service := NewService(memory.NewCoverageRuleRepository(), employees, requests)
	return &coverageFixture{service: service, employees: employees, requests: requests}
}

func (f *coverageFixture) seedTeam(t *testing.T, ctx context.Context, team string, role employee.Role, n int) []employee.Employee {
	t.Helper()
	out := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		emp, err := f.employees.Create(ctx, employee.Employee{
			Name:  fmt.Sprintf("%s-%s-%d", team, role, i),
			Email: fmt.Sprintf("%s-%s-%d@example.com", team, role, i),
			Role:  role,
			Team:  team,
		})
		require.NoError(t, err)
		out = append(out, emp)
	}
	return out
}

func (f *coverageFixture) addRequest(t *testing.T, ctx context.Context, emp employee.Employee, start, end string, status pto.Status) {
	t.Helper()
	from := date(t, start)
	to := date(t, end)
	_, err := f.requests.Create(ctx, pto.PTORequest{
		EmployeeID:    emp.ID,
		Role:          emp.Role,
		Team:          emp.Team,
		StartDate:     from,
		EndDate:       to,
		Status:        status,
		DaysRequested: pto.InclusiveDays(from, to),
	})
	require.NoError(t, err)
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func TestCoverageService_EvaluateRequest_FlagsRisk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	// Three engineers, min-on-duty 2: at most one may be off at once.
	engineers := f.seedTeam(t, ctx, "platform", employee.RoleEngineer, 3)
	_, err := f.service.UpsertRule(ctx, coverage.UpsertRuleRequest{
		Team:      "platform",
		MinOnDuty: map[string]int{"engineer": 2},
	})
	require.NoError(t, err)

	f.addRequest(t, ctx, engineers[0], "2026-03-02", "2026-03-06", pto.StatusApproved)

	analysis, err := f.service.EvaluateRequest(ctx, engineers[1], date(t, "2026-03-04"), date(t, "2026-03-05"))
	require.NoError(t, err)

	assert.True(t, analysis.Risk)
	assert.Equal(t, 3, analysis.TeamCount)
	assert.Equal(t, 2, analysis.MinOnDuty)
	assert.Equal(t, 1, analysis.MaxAllowedOff)
	assert.Equal(t, 1, analysis.Overlapping)
	assert.Contains(t, analysis.Message, "Coverage risk")
}

func TestCoverageService_EvaluateRequest_SafeWhenNoOverlap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	engineers := f.seedTeam(t, ctx, "platform", employee.RoleEngineer, 3)
	_, err := f.service.UpsertRule(ctx, coverage.UpsertRuleRequest{
		Team:      "platform",
		MinOnDuty: map[string]int{"engineer": 2},
	})
	require.NoError(t, err)

	f.addRequest(t, ctx, engineers[0], "2026-03-02", "2026-03-06", pto.StatusApproved)

	// Disjoint window: the existing absence does not count.
	analysis, err := f.service.EvaluateRequest(ctx, engineers[1], date(t, "2026-03-09"), date(t, "2026-03-10"))
	require.NoError(t, err)

	assert.False(t, analysis.Risk)
	assert.Zero(t, analysis.Overlapping)
	assert.Equal(t, "Looks safe to approve.", analysis.Message)
}

func TestCoverageService_EvaluateRequest_SharedBoundaryDayCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	engineers := f.seedTeam(t, ctx, "platform", employee.RoleEngineer, 2)

	// Existing request ends the day the proposed one starts.
	f.addRequest(t, ctx, engineers[0], "2026-03-02", "2026-03-04", pto.StatusPending)

	analysis, err := f.service.EvaluateRequest(ctx, engineers[1], date(t, "2026-03-04"), date(t, "2026-03-06"))
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.Overlapping)
}

func TestCoverageService_EvaluateRequest_DeniedDoesNotCount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	engineers := f.seedTeam(t, ctx, "platform", employee.RoleEngineer, 3)

	f.addRequest(t, ctx, engineers[0], "2026-03-02", "2026-03-06", pto.StatusDenied)

	analysis, err := f.service.EvaluateRequest(ctx, engineers[1], date(t, "2026-03-04"), date(t, "2026-03-05"))
	require.NoError(t, err)

	assert.Zero(t, analysis.Overlapping)
	assert.False(t, analysis.Risk)
}

func TestCoverageService_EvaluateRequest_DefaultMinOnDuty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	// No rule configured for the team at all.
	designers := f.seedTeam(t, ctx, "design", employee.RoleDesigner, 2)

	analysis, err := f.service.EvaluateRequest(ctx, designers[0], date(t, "2026-05-01"), date(t, "2026-05-02"))
	require.NoError(t, err)

	assert.Equal(t, coverage.DefaultMinOnDuty, analysis.MinOnDuty)
	assert.Equal(t, 1, analysis.MaxAllowedOff)
	assert.False(t, analysis.Risk)
}

func TestCoverageService_EvaluateRequest_SoloRoleAlwaysRisky(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	// One manager, default min-on-duty 1: maxAllowedOff is 0, and
	// 0 >= 0 flags even the first request.
	managers := f.seedTeam(t, ctx, "platform", employee.RoleManager, 1)

	analysis, err := f.service.EvaluateRequest(ctx, managers[0], date(t, "2026-05-01"), date(t, "2026-05-02"))
	require.NoError(t, err)

	assert.Zero(t, analysis.MaxAllowedOff)
	assert.True(t, analysis.Risk)
}

func TestCoverageService_Report_PerRoleRows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newCoverageFixture()

	engineers := f.seedTeam(t, ctx, "platform", employee.RoleEngineer, 3)
	qa := f.seedTeam(t, ctx, "platform", employee.RoleQA, 1)
	f.seedTeam(t, ctx, "design", employee.RoleDesigner, 2)

	_, err := f.service.UpsertRule(ctx, coverage.UpsertRuleRequest{
		Team:      "platform",
		MinOnDuty: map[string]int{"engineer": 2},
	})
	require.NoError(t, err)

	f.addRequest(t, ctx, engineers[0], "2026-03-02", "2026-03-06", pto.StatusApproved)
	f.addRequest(t, ctx, qa[0], "2026-03-03", "2026-03-03", pto.StatusPending)

	report, err := f.service.Report(ctx, "platform", date(t, "2026-03-01"), date(t, "2026-03-07"))
	require.NoError(t, err)

	assert.Equal(t, "platform", report.Team)
	// Other teams' roles never leak into the report.
	assert.Len(t, report.ByRole, 2)

	eng := report.ByRole[employee.RoleEngineer]
	assert.Equal(t, 3, eng.TeamCount)
	assert.Equal(t, 1, eng.Off)
	assert.Equal(t, 1, eng.MaxAllowedOff)
	assert.True(t, eng.Risk, "off == maxAllowedOff is already risky")

	qaRow := report.ByRole[employee.RoleQA]
	assert.Equal(t, 1, qaRow.TeamCount)
	assert.Equal(t, 1, qaRow.Off)
	assert.Zero(t, qaRow.MaxAllowedOff)
	assert.True(t, qaRow.Risk)
}

func TestAssess_Boundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		teamCount   int
		minOnDuty   int
		overlapping int
		wantMax     int
		wantRisk    bool
	}{
		{"below ceiling", 5, 2, 2, 3, false},
		{"at ceiling", 5, 2, 3, 3, true},
		{"above ceiling", 5, 2, 4, 3, true},
		{"min exceeds headcount", 1, 2, 0, 0, true},
		{"zero overlap small team", 3, 1, 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMax, gotRisk := coverage.Assess(tt.teamCount, tt.minOnDuty, tt.overlapping)
			assert.Equal(t, tt.wantMax, gotMax)
			assert.Equal(t, tt.wantRisk, gotRisk)
		})
	}
}
