package coverage

import "context"

// RuleRepository - interface for the coverage_rules table
type RuleRepository interface {
	// Upsert replaces any existing rule for the same team.
	Upsert(ctx context.Context, rule CoverageRule) (CoverageRule, error)
	GetByTeam(ctx context.Context, team string) (CoverageRule, error)
}
