package leave

import (
	"github.com/athena-hr/pto-backend-go/internal/domain/employee"
	"github.com/athena-hr/pto-backend-go/internal/pkg/validator"
)

type UpsertPolicyRequest struct {
	Role            string         `json:"role"`
	LeaveCategories map[string]int `json:"leaveCategories"`
	Year            int            `json:"year,omitempty"`
}

func (r *UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !employee.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of engineer, designer, manager, qa, support",
		})
	}

	if len(r.LeaveCategories) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveCategories",
			Message: "leaveCategories is required",
		})
	}
	for category, days := range r.LeaveCategories {
		if !IsValidCategory(category) {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveCategories",
				Message: "unknown category " + category,
			})
		}
		if days < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "leaveCategories",
				Message: "allocation for " + category + " must not be negative",
			})
		}
	}

	if r.Year != 0 && !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a plausible four-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type InitializeBalanceRequest struct {
	Year int `json:"year,omitempty"`
}

type RecordUsageRequest struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
	Days     int    `json:"days"`
}

func (r *RecordUsageRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a plausible four-digit year",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !IsValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "unknown category " + r.Category,
		})
	}

	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
