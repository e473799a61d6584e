package memory

import (
	"context"
	"sync"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/google/uuid"
)

type CoverageRuleRepository struct {
	mu    sync.RWMutex
	rules map[string]coverage.CoverageRule
}

func NewCoverageRuleRepository() *CoverageRuleRepository {
	return &CoverageRuleRepository{rules: make(map[string]coverage.CoverageRule)}
}

func (r *CoverageRuleRepository) Upsert(_ context.Context, rule coverage.CoverageRule) (coverage.CoverageRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.rules[rule.Team]; ok {
		rule.ID = existing.ID
		rule.CreatedAt = existing.CreatedAt
	} else {
		rule.ID = uuid.NewString()
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now
	r.rules[rule.Team] = rule

	return rule, nil
}

func (r *CoverageRuleRepository) GetByTeam(_ context.Context, team string) (coverage.CoverageRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[team]
	if !ok {
		return coverage.CoverageRule{}, coverage.ErrRuleNotFound
	}
	return rule, nil
}
