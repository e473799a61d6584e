package coverage

import (
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/pkg/validator"
)

type UpsertRuleRequest struct {
	Team      string         `json:"team"`
	MinOnDuty map[string]int `json:"minOnDuty"`
}

func (r *UpsertRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Team) {
		errs = append(errs, validator.ValidationError{
			Field:   "team",
			Message: "team is required",
		})
	}

	for role, min := range r.MinOnDuty {
		if !employee.IsValidRole(role) {
			errs = append(errs, validator.ValidationError{
				Field:   "minOnDuty",
				Message: "unknown role " + role,
			})
		}
		if min < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "minOnDuty",
				Message: "minimum for " + role + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Report is the aggregate coverage report for one team and window.
type Report struct {
	Team   string                         `json:"team"`
	From   string                         `json:"from"`
	To     string                         `json:"to"`
	ByRole map[employee.Role]RoleCoverage `json:"byRole"`
}
