package pto

import (
	"time"

	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeEmail string `json:"employeeEmail"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	LeaveType     string `json:"leaveType"`
	Reason        string `json:"reason,omitempty"`

	// Parsed during validation
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeEmail",
			Message: "employeeEmail is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if start, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be formatted YYYY-MM-DD",
		})
	} else {
		r.Start = start
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if end, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be formatted YYYY-MM-DD",
		})
	} else {
		r.End = end
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.Start.After(r.End) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType is required",
		})
	} else if !leave.IsValidCategory(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "unknown leaveType " + r.LeaveType,
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be pending, approved or denied",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
