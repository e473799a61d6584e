// Package coverage implements the staffing risk checks that gate PTO
// admission and the aggregate per-team coverage report.
package coverage

import (
	"context"
	"errors"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
)

type Service struct {
	rules     coverage.RuleRepository
	employees employee.Repository
	requests  pto.Repository
}

func NewService(rules coverage.RuleRepository, employees employee.Repository, requests pto.Repository) *Service {
	return &Service{
		rules:     rules,
		employees: employees,
		requests:  requests,
	}
}

func (s *Service) UpsertRule(ctx context.Context, req coverage.UpsertRuleRequest) (coverage.CoverageRule, error) {
	if err := req.Validate(); err != nil {
		return coverage.CoverageRule{}, err
	}

	minOnDuty := make(coverage.MinOnDutySet, len(req.MinOnDuty))
	for role, min := range req.MinOnDuty {
		minOnDuty[employee.Role(role)] = min
	}

	return s.rules.Upsert(ctx, coverage.CoverageRule{
		Team:      req.Team,
		MinOnDuty: minOnDuty,
	})
}

// ruleFor returns the team's rule, or the zero rule when none is
// configured. The zero rule yields DefaultMinOnDuty for every role.
func (s *Service) ruleFor(ctx context.Context, team string) (coverage.CoverageRule, error) {
	rule, err := s.rules.GetByTeam(ctx, team)
	if err != nil {
		if errors.Is(err, coverage.ErrRuleNotFound) {
			return coverage.CoverageRule{}, nil
		}
		return coverage.CoverageRule{}, err
	}
	return rule, nil
}

// EvaluateRequest runs the admission check for one proposed absence:
// how many same-team, same-role requests already overlap the window,
// and whether admitting one more would breach the minimum on-duty
// floor. The proposed request itself is not yet counted.
func (s *Service) EvaluateRequest(ctx context.Context, emp employee.Employee, from, to time.Time) (coverage.RiskAnalysis, error) {
	rule, err := s.ruleFor(ctx, emp.Team)
	if err != nil {
		return coverage.RiskAnalysis{}, err
	}

	teamCount, err := s.employees.CountByTeamRole(ctx, emp.Team, emp.Role)
	if err != nil {
		return coverage.RiskAnalysis{}, err
	}

	overlapping, err := s.requests.CountOverlapping(ctx, emp.Team, emp.Role, from, to, pto.CountingStatuses)
	if err != nil {
		return coverage.RiskAnalysis{}, err
	}

	return coverage.AssessRequest(emp.Team, emp.Role, teamCount, rule.Min(emp.Role), overlapping), nil
}

// Report builds the aggregate coverage picture for one team and window,
// one row per role present in the team.
func (s *Service) Report(ctx context.Context, team string, from, to time.Time) (coverage.Report, error) {
	rule, err := s.ruleFor(ctx, team)
	if err != nil {
		return coverage.Report{}, err
	}

	headcount, err := s.employees.CountByTeam(ctx, team)
	if err != nil {
		return coverage.Report{}, err
	}

	off, err := s.requests.CountOverlappingByRole(ctx, team, from, to, pto.CountingStatuses)
	if err != nil {
		return coverage.Report{}, err
	}

	byRole := make(map[employee.Role]coverage.RoleCoverage, len(headcount))
	for role, count := range headcount {
		maxAllowedOff, risk := coverage.Assess(count, rule.Min(role), off[role])
		byRole[role] = coverage.RoleCoverage{
			TeamCount:     count,
			MinOnDuty:     rule.Min(role),
			Off:           off[role],
			MaxAllowedOff: maxAllowedOff,
			Risk:          risk,
		}
	}

	return coverage.Report{
		Team:   team,
		From:   from.Format("2006-01-02"),
		To:     to.Format("2006-01-02"),
		ByRole: byRole,
	}, nil
}
