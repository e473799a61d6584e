package coverage

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
)

// DefaultMinOnDuty applies when a team has no explicit rule for a role.
// Process-wide policy, kept in one place so tests can pin it.
const DefaultMinOnDuty = 1

// MinOnDutySet maps role -> minimum on-duty headcount. Stored as JSONB.
type MinOnDutySet map[employee.Role]int

// Value implements driver.Valuer for database storage
func (m MinOnDutySet) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *MinOnDutySet) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan MinOnDutySet: invalid type")
	}

	return json.Unmarshal(bytes, m)
}

// CoverageRule entity, keyed by team.
type CoverageRule struct {
	ID        string
	Team      string
	MinOnDuty MinOnDutySet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Min returns the configured minimum for a role, or DefaultMinOnDuty
// when the rule (or the role entry) is absent.
func (r CoverageRule) Min(role employee.Role) int {
	if min, ok := r.MinOnDuty[role]; ok {
		return min
	}
	return DefaultMinOnDuty
}

// RiskAnalysis is the advisory output of a single-request admission check.
type RiskAnalysis struct {
	TeamCount     int    `json:"teamCount"`
	MinOnDuty     int    `json:"minOnDuty"`
	MaxAllowedOff int    `json:"maxAllowedOff"`
	Overlapping   int    `json:"overlapping"`
	Risk          bool   `json:"risk"`
	Message       string `json:"message"`
}

// RoleCoverage is one row of the aggregate team report.
type RoleCoverage struct {
	TeamCount     int  `json:"teamCount"`
	MinOnDuty     int  `json:"minOnDuty"`
	Off           int  `json:"off"`
	MaxAllowedOff int  `json:"maxAllowedOff"`
	Risk          bool `json:"risk"`
}

// Assess applies the shared risk rule. The boundary is deliberately >=:
// a team already at its allowed-off ceiling is flagged for one more
// absence.
func Assess(teamCount, minOnDuty, overlapping int) (maxAllowedOff int, risk bool) {
	maxAllowedOff = teamCount - minOnDuty
	if maxAllowedOff < 0 {
		maxAllowedOff = 0
	}
	return maxAllowedOff, overlapping >= maxAllowedOff
}

// AssessRequest runs the admission check for one proposed request and
// renders the advisory message.
func AssessRequest(team string, role employee.Role, teamCount, minOnDuty, overlapping int) RiskAnalysis {
	maxAllowedOff, risk := Assess(teamCount, minOnDuty, overlapping)

	message := "Looks safe to approve."
	if risk {
		message = fmt.Sprintf("Coverage risk: %d already off in %s (%s). Min on-duty = %d.",
			overlapping, role, team, minOnDuty)
	}

	return RiskAnalysis{
		TeamCount:     teamCount,
		MinOnDuty:     minOnDuty,
		MaxAllowedOff: maxAllowedOff,
		Overlapping:   overlapping,
		Risk:          risk,
		Message:       message,
	}
}
