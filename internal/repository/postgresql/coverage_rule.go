package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type coverageRuleRepositoryImpl struct {
	db *database.DB
}

func NewCoverageRuleRepository(db *database.DB) coverage.RuleRepository {
	return &coverageRuleRepositoryImpl{db: db}
}

func (r *coverageRuleRepositoryImpl) Upsert(ctx context.Context, rule coverage.CoverageRule) (coverage.CoverageRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO coverage_rules (id, team, min_on_duty, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		ON CONFLICT (team) DO UPDATE
		SET min_on_duty = EXCLUDED.min_on_duty, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rule.Team, rule.MinOnDuty).
		Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return coverage.CoverageRule{}, fmt.Errorf("failed to upsert coverage rule: %w", err)
	}

	return rule, nil
}

func (r *coverageRuleRepositoryImpl) GetByTeam(ctx context.Context, team string) (coverage.CoverageRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, team, min_on_duty, created_at, updated_at
		FROM coverage_rules
		WHERE team = $1
	`

	var rule coverage.CoverageRule
	err := q.QueryRow(ctx, query, team).Scan(
		&rule.ID, &rule.Team, &rule.MinOnDuty,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return coverage.CoverageRule{}, coverage.ErrRuleNotFound
		}
		return coverage.CoverageRule{}, err
	}

	return rule, nil
}
